package safetx

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// DeploymentPropsType is the discriminator of the DeploymentProps union
type DeploymentPropsType string

const (
	// DeploymentPredicted is a Safe whose address was predicted from its setup parameters
	DeploymentPredicted DeploymentPropsType = "PREDICTED"
	// DeploymentReplayed is a Safe reconstructed from a known factory, mastercopy and salt
	DeploymentReplayed DeploymentPropsType = "REPLAYED"
)

// DeploymentProps holds what is needed to deploy an undeployed Safe. Implemented only by
// *PredictedSafeProps and *ReplayedSafeProps.
type DeploymentProps interface {
	Type() DeploymentPropsType
	SafeVersion() string
	deploymentProps()
}

// PredictedSafeProps are the setup parameters of a counterfactual Safe
type PredictedSafeProps struct {
	Owners          []common.Address `json:"owners"`
	Threshold       uint32           `json:"threshold"`
	FallbackHandler common.Address   `json:"fallbackHandler"`
	SaltNonce       string           `json:"saltNonce"`
	Version         string           `json:"version"`
}

// SafeAccountConfig is the stored setup call of a replayed Safe
type SafeAccountConfig struct {
	Owners          []common.Address `json:"owners"`
	Threshold       uint32           `json:"threshold"`
	To              common.Address   `json:"to"`
	Data            hexutil.Bytes    `json:"data"`
	FallbackHandler common.Address   `json:"fallbackHandler"`
	PaymentToken    common.Address   `json:"paymentToken"`
	Payment         string           `json:"payment"`
	PaymentReceiver common.Address   `json:"paymentReceiver"`
}

// ReplayedSafeProps describe a Safe rebuilt from a factory, mastercopy and salt triple
type ReplayedSafeProps struct {
	FactoryAddress    common.Address    `json:"factoryAddress"`
	MasterCopy        common.Address    `json:"masterCopy"`
	SaltNonce         string            `json:"saltNonce"`
	Version           string            `json:"safeVersion"`
	SafeAccountConfig SafeAccountConfig `json:"safeAccountConfig"`
}

// Type returns DeploymentPredicted
func (props *PredictedSafeProps) Type() DeploymentPropsType { return DeploymentPredicted }

// SafeVersion returns the version the Safe will be deployed with
func (props *PredictedSafeProps) SafeVersion() string { return props.Version }

// Type returns DeploymentReplayed
func (props *ReplayedSafeProps) Type() DeploymentPropsType { return DeploymentReplayed }

// SafeVersion returns the version the Safe will be deployed with
func (props *ReplayedSafeProps) SafeVersion() string { return props.Version }

func (props *PredictedSafeProps) deploymentProps() {}
func (props *ReplayedSafeProps) deploymentProps()  {}

// UndeployedSafe is a Safe whose address is known but which has no code yet on the given chain
type UndeployedSafe struct {
	ChainID string          `json:"chainId"`
	Address common.Address  `json:"address"`
	Props   DeploymentProps `json:"props"`
}
