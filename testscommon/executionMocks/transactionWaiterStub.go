package executionMocks

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/multiversx/mx-chain-safe-go/process/txWaiter"
)

// TransactionWaiterStub -
type TransactionWaiterStub struct {
	WaitForTransactionCalled func(ctx context.Context, chainID string, txHash common.Hash) (*txWaiter.Result, error)
}

// WaitForTransaction -
func (stub *TransactionWaiterStub) WaitForTransaction(ctx context.Context, chainID string, txHash common.Hash) (*txWaiter.Result, error) {
	if stub.WaitForTransactionCalled != nil {
		return stub.WaitForTransactionCalled(ctx, chainID, txHash)
	}

	return &txWaiter.Result{TxHash: txHash}, nil
}

// IsInterfaceNil -
func (stub *TransactionWaiterStub) IsInterfaceNil() bool {
	return stub == nil
}
