package processMocks

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/multiversx/mx-chain-safe-go/data/safetx"
	"github.com/multiversx/mx-chain-safe-go/gateway"
)

// GatewayStub -
type GatewayStub struct {
	GetNoncesCalled             func(ctx context.Context, chainID string, safe common.Address) (*gateway.SafeNonces, error)
	ProposeTransactionCalled    func(ctx context.Context, chainID string, safe common.Address, request *gateway.ProposeTransactionRequest) (*safetx.TransactionDetails, error)
	AddConfirmationCalled       func(ctx context.Context, chainID string, safeTxHash common.Hash, signature []byte) error
	GetTransactionDetailsCalled func(ctx context.Context, chainID string, txID string) (*safetx.TransactionDetails, error)
	GetTransactionHistoryCalled func(ctx context.Context, chainID string, safe common.Address, cursor string) (*gateway.HistoryPage, error)
	GetSafeInfoCalled           func(ctx context.Context, chainID string, safe common.Address) (*safetx.SafeInfo, error)
}

// GetNonces -
func (stub *GatewayStub) GetNonces(ctx context.Context, chainID string, safe common.Address) (*gateway.SafeNonces, error) {
	if stub.GetNoncesCalled != nil {
		return stub.GetNoncesCalled(ctx, chainID, safe)
	}

	return &gateway.SafeNonces{}, nil
}

// ProposeTransaction -
func (stub *GatewayStub) ProposeTransaction(ctx context.Context, chainID string, safe common.Address, request *gateway.ProposeTransactionRequest) (*safetx.TransactionDetails, error) {
	if stub.ProposeTransactionCalled != nil {
		return stub.ProposeTransactionCalled(ctx, chainID, safe, request)
	}

	return &safetx.TransactionDetails{}, nil
}

// AddConfirmation -
func (stub *GatewayStub) AddConfirmation(ctx context.Context, chainID string, safeTxHash common.Hash, signature []byte) error {
	if stub.AddConfirmationCalled != nil {
		return stub.AddConfirmationCalled(ctx, chainID, safeTxHash, signature)
	}

	return nil
}

// GetTransactionDetails -
func (stub *GatewayStub) GetTransactionDetails(ctx context.Context, chainID string, txID string) (*safetx.TransactionDetails, error) {
	if stub.GetTransactionDetailsCalled != nil {
		return stub.GetTransactionDetailsCalled(ctx, chainID, txID)
	}

	return &safetx.TransactionDetails{}, nil
}

// GetTransactionHistory -
func (stub *GatewayStub) GetTransactionHistory(ctx context.Context, chainID string, safe common.Address, cursor string) (*gateway.HistoryPage, error) {
	if stub.GetTransactionHistoryCalled != nil {
		return stub.GetTransactionHistoryCalled(ctx, chainID, safe, cursor)
	}

	return &gateway.HistoryPage{}, nil
}

// GetSafeInfo -
func (stub *GatewayStub) GetSafeInfo(ctx context.Context, chainID string, safe common.Address) (*safetx.SafeInfo, error) {
	if stub.GetSafeInfoCalled != nil {
		return stub.GetSafeInfoCalled(ctx, chainID, safe)
	}

	return &safetx.SafeInfo{}, nil
}

// IsInterfaceNil -
func (stub *GatewayStub) IsInterfaceNil() bool {
	return stub == nil
}
