package executionMocks

import (
	"context"

	"github.com/multiversx/mx-chain-safe-go/data/pending"
	"github.com/multiversx/mx-chain-safe-go/process/execution"
)

// ExecutorStub -
type ExecutorStub struct {
	ExecuteTransactionCalled func(ctx context.Context, request *execution.ExecutionRequest) (*execution.Artifact, error)
	ExecuteCallCalled        func(ctx context.Context, request *execution.CallRequest) (*execution.Artifact, error)
	KindValue                pending.ExecutionKind
}

// ExecuteTransaction -
func (stub *ExecutorStub) ExecuteTransaction(ctx context.Context, request *execution.ExecutionRequest) (*execution.Artifact, error) {
	if stub.ExecuteTransactionCalled != nil {
		return stub.ExecuteTransactionCalled(ctx, request)
	}

	return &execution.Artifact{}, nil
}

// ExecuteCall -
func (stub *ExecutorStub) ExecuteCall(ctx context.Context, request *execution.CallRequest) (*execution.Artifact, error) {
	if stub.ExecuteCallCalled != nil {
		return stub.ExecuteCallCalled(ctx, request)
	}

	return &execution.Artifact{}, nil
}

// Kind -
func (stub *ExecutorStub) Kind() pending.ExecutionKind {
	if len(stub.KindValue) == 0 {
		return pending.KindSingle
	}

	return stub.KindValue
}

// IsInterfaceNil -
func (stub *ExecutorStub) IsInterfaceNil() bool {
	return stub == nil
}
