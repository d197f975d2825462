package signer

import "github.com/ethereum/go-ethereum/common"

// Type is the kind of signing backend a wallet uses
type Type string

const (
	// TypePrivateKey is a wallet whose raw key is held by the secret store
	TypePrivateKey Type = "PRIVATE_KEY"
	// TypeHardware is a wallet held by a hardware device
	TypeHardware Type = "HARDWARE"
)

// Record describes a wallet able to execute Safe transactions
type Record struct {
	Address        common.Address `json:"address"`
	Type           Type           `json:"type"`
	DerivationPath string         `json:"derivationPath"`
}
