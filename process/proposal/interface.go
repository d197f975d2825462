package proposal

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/multiversx/mx-chain-safe-go/data/safetx"
	"github.com/multiversx/mx-chain-safe-go/gateway"
)

// Gateway is the transaction service endpoint set used by the proposal flow
type Gateway interface {
	GetNonces(ctx context.Context, chainID string, safe common.Address) (*gateway.SafeNonces, error)
	ProposeTransaction(ctx context.Context, chainID string, safe common.Address, request *gateway.ProposeTransactionRequest) (*safetx.TransactionDetails, error)
	AddConfirmation(ctx context.Context, chainID string, safeTxHash common.Hash, signature []byte) error
	IsInterfaceNil() bool
}

// MessageSigner produces an owner signature over a Safe transaction hash
type MessageSigner interface {
	SignHash(ctx context.Context, signer common.Address, hash common.Hash) ([]byte, error)
	IsInterfaceNil() bool
}
