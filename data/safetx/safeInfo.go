package safetx

import "github.com/ethereum/go-ethereum/common"

// SafeInfo is the on-chain state of a Safe as reported by the gateway
type SafeInfo struct {
	ChainID         string           `json:"chainId"`
	Address         common.Address   `json:"address"`
	Version         *string          `json:"version"`
	Nonce           uint64           `json:"nonce"`
	Threshold       uint32           `json:"threshold"`
	Owners          []common.Address `json:"owners"`
	FallbackHandler common.Address   `json:"fallbackHandler"`
	Deployed        bool             `json:"deployed"`
}

// IsOwner returns true if the address is one of the Safe owners
func (info *SafeInfo) IsOwner(address common.Address) bool {
	for _, owner := range info.Owners {
		if owner == address {
			return true
		}
	}

	return false
}
