package processMocks

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/multiversx/mx-chain-safe-go/data/safetx"
	"github.com/multiversx/mx-chain-safe-go/process/proposal"
)

// ProposerStub -
type ProposerStub struct {
	RecommendedNonceCalled func(ctx context.Context, chainID string, safe common.Address) (uint64, error)
	ProposeCalled          func(ctx context.Context, request *proposal.ProposeRequest) (*safetx.TransactionDetails, error)
	ConfirmCalled          func(ctx context.Context, request *proposal.ConfirmRequest) error
}

// RecommendedNonce -
func (stub *ProposerStub) RecommendedNonce(ctx context.Context, chainID string, safe common.Address) (uint64, error) {
	if stub.RecommendedNonceCalled != nil {
		return stub.RecommendedNonceCalled(ctx, chainID, safe)
	}

	return 0, nil
}

// Propose -
func (stub *ProposerStub) Propose(ctx context.Context, request *proposal.ProposeRequest) (*safetx.TransactionDetails, error) {
	if stub.ProposeCalled != nil {
		return stub.ProposeCalled(ctx, request)
	}

	return &safetx.TransactionDetails{}, nil
}

// Confirm -
func (stub *ProposerStub) Confirm(ctx context.Context, request *proposal.ConfirmRequest) error {
	if stub.ConfirmCalled != nil {
		return stub.ConfirmCalled(ctx, request)
	}

	return nil
}

// IsInterfaceNil -
func (stub *ProposerStub) IsInterfaceNil() bool {
	return stub == nil
}
