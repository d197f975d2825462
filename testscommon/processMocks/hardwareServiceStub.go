package processMocks

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/multiversx/mx-chain-safe-go/process"
)

// HardwareServiceStub -
type HardwareServiceStub struct {
	ExecuteTransactionCalled func(ctx context.Context, request *process.HardwareExecutionRequest) (common.Hash, error)
	DisconnectCalled         func() error
}

// ExecuteTransaction -
func (stub *HardwareServiceStub) ExecuteTransaction(ctx context.Context, request *process.HardwareExecutionRequest) (common.Hash, error) {
	if stub.ExecuteTransactionCalled != nil {
		return stub.ExecuteTransactionCalled(ctx, request)
	}

	return common.Hash{}, nil
}

// Disconnect -
func (stub *HardwareServiceStub) Disconnect() error {
	if stub.DisconnectCalled != nil {
		return stub.DisconnectCalled()
	}

	return nil
}

// IsInterfaceNil -
func (stub *HardwareServiceStub) IsInterfaceNil() bool {
	return stub == nil
}
