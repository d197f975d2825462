package disabled

import (
	"crypto/ecdsa"

	"github.com/ethereum/go-ethereum/common"
)

// SecretStore is the secret store used when no keystore directory is configured
type SecretStore struct {
}

// GetPrivateKey returns ErrKeystoreDisabled
func (ss *SecretStore) GetPrivateKey(_ common.Address) (*ecdsa.PrivateKey, error) {
	return nil, ErrKeystoreDisabled
}

// IsInterfaceNil returns true if there is no value under the interface
func (ss *SecretStore) IsInterfaceNil() bool {
	return ss == nil
}
