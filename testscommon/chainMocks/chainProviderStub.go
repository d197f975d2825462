package chainMocks

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// ChainProviderStub -
type ChainProviderStub struct {
	ChainIDCalled            func(ctx context.Context) (*big.Int, error)
	BlockNumberCalled        func(ctx context.Context) (uint64, error)
	EstimateGasCalled        func(ctx context.Context, msg ethereum.CallMsg) (uint64, error)
	SuggestGasPriceCalled    func(ctx context.Context) (*big.Int, error)
	PendingNonceAtCalled     func(ctx context.Context, account common.Address) (uint64, error)
	SendTransactionCalled    func(ctx context.Context, tx *types.Transaction) error
	TransactionByHashCalled  func(ctx context.Context, hash common.Hash) (*types.Transaction, bool, error)
	TransactionReceiptCalled func(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

// ChainID -
func (stub *ChainProviderStub) ChainID(ctx context.Context) (*big.Int, error) {
	if stub.ChainIDCalled != nil {
		return stub.ChainIDCalled(ctx)
	}

	return big.NewInt(1), nil
}

// BlockNumber -
func (stub *ChainProviderStub) BlockNumber(ctx context.Context) (uint64, error) {
	if stub.BlockNumberCalled != nil {
		return stub.BlockNumberCalled(ctx)
	}

	return 0, nil
}

// EstimateGas -
func (stub *ChainProviderStub) EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error) {
	if stub.EstimateGasCalled != nil {
		return stub.EstimateGasCalled(ctx, msg)
	}

	return 21000, nil
}

// SuggestGasPrice -
func (stub *ChainProviderStub) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	if stub.SuggestGasPriceCalled != nil {
		return stub.SuggestGasPriceCalled(ctx)
	}

	return big.NewInt(1), nil
}

// PendingNonceAt -
func (stub *ChainProviderStub) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	if stub.PendingNonceAtCalled != nil {
		return stub.PendingNonceAtCalled(ctx, account)
	}

	return 0, nil
}

// SendTransaction -
func (stub *ChainProviderStub) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	if stub.SendTransactionCalled != nil {
		return stub.SendTransactionCalled(ctx, tx)
	}

	return nil
}

// TransactionByHash -
func (stub *ChainProviderStub) TransactionByHash(ctx context.Context, hash common.Hash) (*types.Transaction, bool, error) {
	if stub.TransactionByHashCalled != nil {
		return stub.TransactionByHashCalled(ctx, hash)
	}

	return nil, false, ethereum.NotFound
}

// TransactionReceipt -
func (stub *ChainProviderStub) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	if stub.TransactionReceiptCalled != nil {
		return stub.TransactionReceiptCalled(ctx, txHash)
	}

	return nil, ethereum.NotFound
}
