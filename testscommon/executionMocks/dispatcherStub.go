package executionMocks

import (
	"context"

	"github.com/multiversx/mx-chain-safe-go/process/execution"
)

// DispatcherStub -
type DispatcherStub struct {
	ExecuteTransactionCalled func(ctx context.Context, request *execution.ExecutionRequest) (*execution.Artifact, error)
	ExecuteCallCalled        func(ctx context.Context, request *execution.CallRequest) (*execution.Artifact, error)
}

// ExecuteTransaction -
func (stub *DispatcherStub) ExecuteTransaction(ctx context.Context, request *execution.ExecutionRequest) (*execution.Artifact, error) {
	if stub.ExecuteTransactionCalled != nil {
		return stub.ExecuteTransactionCalled(ctx, request)
	}

	return &execution.Artifact{}, nil
}

// ExecuteCall -
func (stub *DispatcherStub) ExecuteCall(ctx context.Context, request *execution.CallRequest) (*execution.Artifact, error) {
	if stub.ExecuteCallCalled != nil {
		return stub.ExecuteCallCalled(ctx, request)
	}

	return &execution.Artifact{}, nil
}

// IsInterfaceNil -
func (stub *DispatcherStub) IsInterfaceNil() bool {
	return stub == nil
}
