package hardware

import "github.com/ethereum/go-ethereum/common"

// SendTransactionRequest asks the bridge to sign a transaction on the device and broadcast it
type SendTransactionRequest struct {
	ChainID        string         `json:"chainId"`
	DerivationPath string         `json:"derivationPath"`
	From           common.Address `json:"from"`
	To             common.Address `json:"to"`
	Value          string         `json:"value"`
	Data           string         `json:"data"`
}

// SendTransactionResponse is the bridge answer for a broadcast transaction
type SendTransactionResponse struct {
	TxHash common.Hash `json:"txHash"`
}
