package gateway

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/multiversx/mx-chain-safe-go/data/safetx"
)

// ProposeTransactionRequest is the payload used to propose a new Safe transaction
type ProposeTransactionRequest struct {
	To             common.Address   `json:"to"`
	Value          string           `json:"value"`
	Data           string           `json:"data,omitempty"`
	Nonce          string           `json:"nonce"`
	Operation      safetx.Operation `json:"operation"`
	SafeTxGas      string           `json:"safeTxGas"`
	BaseGas        string           `json:"baseGas"`
	GasPrice       string           `json:"gasPrice"`
	GasToken       common.Address   `json:"gasToken"`
	RefundReceiver common.Address   `json:"refundReceiver"`
	SafeTxHash     common.Hash      `json:"safeTxHash"`
	Sender         common.Address   `json:"sender"`
	Signature      string           `json:"signature,omitempty"`
	Origin         string           `json:"origin,omitempty"`
}

// AddConfirmationRequest is the payload used to add an owner signature to a proposed transaction
type AddConfirmationRequest struct {
	SignedSafeTxHash string `json:"signedSafeTxHash"`
}

// SafeNonces holds the on-chain and the next free nonce of a Safe
type SafeNonces struct {
	CurrentNonce     uint64 `json:"currentNonce"`
	RecommendedNonce uint64 `json:"recommendedNonce"`
}

// HistoryPage is one page of the indexed transaction history
type HistoryPage struct {
	Next     string
	Previous string
	Results  []safetx.HistoryItem
}

type rawHistoryPage struct {
	Next     *string       `json:"next"`
	Previous *string       `json:"previous"`
	Results  []interface{} `json:"results"`
}

type ownedSafesResponse struct {
	Safes []common.Address `json:"safes"`
}

type rawSafeInfo struct {
	Address struct {
		Value common.Address `json:"value"`
	} `json:"address"`
	ChainID   string  `json:"chainId"`
	Nonce     uint64  `json:"nonce"`
	Threshold uint32  `json:"threshold"`
	Version   *string `json:"version"`
	Owners    []struct {
		Value common.Address `json:"value"`
	} `json:"owners"`
	FallbackHandler *struct {
		Value common.Address `json:"value"`
	} `json:"fallbackHandler"`
}
