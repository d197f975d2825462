package activation

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/multiversx/mx-chain-safe-go/abi"
	"github.com/multiversx/mx-chain-safe-go/process/execution"
)

// CallDispatcher submits raw calls through the selected execution backend
type CallDispatcher interface {
	ExecuteCall(ctx context.Context, request *execution.CallRequest) (*execution.Artifact, error)
	IsInterfaceNil() bool
}

// DeploymentCodec encodes the deployment calls of a Safe
type DeploymentCodec interface {
	EncodeSetup(args *abi.SetupArgs) ([]byte, error)
	EncodeCreateProxyWithNonce(singleton common.Address, initializer []byte, saltNonce *big.Int) ([]byte, error)
	EncodeMultiSend(calls []*abi.MultiSendCall) ([]byte, error)
	IsInterfaceNil() bool
}
