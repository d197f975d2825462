package proposal

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/multiversx/mx-chain-safe-go/data/safetx"
)

// ProposeRequest asks for a new Safe transaction to be registered with the gateway
type ProposeRequest struct {
	ChainID string
	Safe    *safetx.SafeInfo
	Tx      *safetx.TransactionData
	Sender  common.Address
	Origin  string
}

// ConfirmRequest asks for an owner signature to be added to a proposed transaction
type ConfirmRequest struct {
	ChainID    string
	SafeTxHash common.Hash
	Signer     common.Address
}
