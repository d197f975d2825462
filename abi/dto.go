package abi

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/multiversx/mx-chain-safe-go/data/safetx"
)

// SetupArgs are the arguments of the Safe setup call, run as the proxy initializer
type SetupArgs struct {
	Owners          []common.Address
	Threshold       *big.Int
	To              common.Address
	Data            []byte
	FallbackHandler common.Address
	PaymentToken    common.Address
	Payment         *big.Int
	PaymentReceiver common.Address
}

// MultiSendCall is one call of a MultiSend batch
type MultiSendCall struct {
	Operation safetx.Operation
	To        common.Address
	Value     *big.Int
	Data      []byte
}
