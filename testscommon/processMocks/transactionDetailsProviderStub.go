package processMocks

import (
	"context"

	"github.com/multiversx/mx-chain-safe-go/data/safetx"
)

// TransactionDetailsProviderStub -
type TransactionDetailsProviderStub struct {
	GetTransactionDetailsCalled func(ctx context.Context, chainID string, txID string) (*safetx.TransactionDetails, error)
}

// GetTransactionDetails -
func (stub *TransactionDetailsProviderStub) GetTransactionDetails(ctx context.Context, chainID string, txID string) (*safetx.TransactionDetails, error) {
	if stub.GetTransactionDetailsCalled != nil {
		return stub.GetTransactionDetailsCalled(ctx, chainID, txID)
	}

	return nil, nil
}

// IsInterfaceNil -
func (stub *TransactionDetailsProviderStub) IsInterfaceNil() bool {
	return stub == nil
}
