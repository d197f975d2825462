package processMocks

import (
	"crypto/ecdsa"

	"github.com/ethereum/go-ethereum/common"
)

// SecretStoreStub -
type SecretStoreStub struct {
	GetPrivateKeyCalled func(address common.Address) (*ecdsa.PrivateKey, error)
}

// GetPrivateKey -
func (stub *SecretStoreStub) GetPrivateKey(address common.Address) (*ecdsa.PrivateKey, error) {
	if stub.GetPrivateKeyCalled != nil {
		return stub.GetPrivateKeyCalled(address)
	}

	return nil, nil
}

// IsInterfaceNil -
func (stub *SecretStoreStub) IsInterfaceNil() bool {
	return stub == nil
}
