package processMocks

import (
	"context"

	"github.com/multiversx/mx-chain-safe-go/data/safetx"
	"github.com/multiversx/mx-chain-safe-go/process/activation"
)

// ActivatorStub -
type ActivatorStub struct {
	ActivateCalled                func(ctx context.Context, request *activation.ActivationRequest) (*activation.ActivationResult, error)
	ActivateWithTransactionCalled func(ctx context.Context, request *activation.ActivationRequest, tx *safetx.SafeTransaction) (*activation.ActivationResult, error)
}

// Activate -
func (stub *ActivatorStub) Activate(ctx context.Context, request *activation.ActivationRequest) (*activation.ActivationResult, error) {
	if stub.ActivateCalled != nil {
		return stub.ActivateCalled(ctx, request)
	}

	return &activation.ActivationResult{}, nil
}

// ActivateWithTransaction -
func (stub *ActivatorStub) ActivateWithTransaction(ctx context.Context, request *activation.ActivationRequest, tx *safetx.SafeTransaction) (*activation.ActivationResult, error) {
	if stub.ActivateWithTransactionCalled != nil {
		return stub.ActivateWithTransactionCalled(ctx, request, tx)
	}

	return &activation.ActivationResult{}, nil
}

// IsInterfaceNil -
func (stub *ActivatorStub) IsInterfaceNil() bool {
	return stub == nil
}
