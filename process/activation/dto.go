package activation

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/multiversx/mx-chain-safe-go/data/safetx"
)

// Status is the outcome of an activation
type Status string

const (
	// StatusSuccess marks a deployment mined successfully, or replaced by a repriced one
	StatusSuccess Status = "SUCCESS"
	// StatusReverted marks a deployment mined but reverted
	StatusReverted Status = "REVERTED"
	// StatusFailed marks a deployment never observed on chain
	StatusFailed Status = "FAILED"
	// StatusRelayed marks a deployment handed to the relay, its outcome is reported by the relay monitor
	StatusRelayed Status = "RELAYED"
)

// ActivationRequest asks for the deployment of an undeployed Safe. TxID names the bundled Safe
// transaction when the deployment carries one.
type ActivationRequest struct {
	Safe     *safetx.UndeployedSafe
	Wallet   common.Address
	UseRelay bool
	TxID     string
}

// ActivationResult is what an activation produced
type ActivationResult struct {
	TrackingID string
	TxHash     common.Hash
	TaskID     string
	Status     Status
	Replaced   bool
}

type deployment struct {
	factory   common.Address
	data      []byte
	threshold uint32
	version   string
}
