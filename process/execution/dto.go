package execution

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/multiversx/mx-chain-safe-go/data/safetx"
)

// ExecutionRequest asks for the on-chain execution of an authorized Safe transaction
type ExecutionRequest struct {
	ChainID     string
	TxID        string
	Safe        *safetx.SafeInfo
	Transaction *safetx.SafeTransaction
	Wallet      common.Address
	UseRelay    bool
}

// CallRequest asks for the submission of a raw call, as used by the Safe activation. SafeNonce is only
// considered when HasSafeNonce is set.
type CallRequest struct {
	ChainID      string
	TrackingID   string
	Safe         common.Address
	SafeVersion  string
	Wallet       common.Address
	SafeNonce    uint64
	HasSafeNonce bool
	To           common.Address
	Value        *big.Int
	Data         []byte
	UseRelay     bool
}

// Artifact is what an executor hands back once the chain or the relay accepted the submission
type Artifact struct {
	TxHash        common.Hash
	TaskID        string
	SafeNonce     uint64
	WalletAddress common.Address
	WalletNonce   uint64
}
