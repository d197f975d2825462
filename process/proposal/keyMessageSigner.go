package proposal

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-safe-go/process"
)

// ethereum signatures carry the recovery id in [0, 1], the Safe contract expects it in [27, 28]
const recoveryIDOffset = 27

type keyMessageSigner struct {
	secretStore process.SecretStore
}

// NewKeyMessageSigner creates a message signer backed by the wallet keys of the secret store
func NewKeyMessageSigner(secretStore process.SecretStore) (*keyMessageSigner, error) {
	if check.IfNil(secretStore) {
		return nil, ErrNilSecretStore
	}

	return &keyMessageSigner{
		secretStore: secretStore,
	}, nil
}

// SignHash signs the raw hash with the signer key
func (signer *keyMessageSigner) SignHash(_ context.Context, address common.Address, hash common.Hash) ([]byte, error) {
	privateKey, err := signer.secretStore.GetPrivateKey(address)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", process.ErrSignerUnavailable, err)
	}
	if privateKey == nil {
		return nil, process.ErrSignerUnavailable
	}

	signature, err := crypto.Sign(hash.Bytes(), privateKey)
	if err != nil {
		return nil, err
	}
	signature[crypto.RecoveryIDOffset] += recoveryIDOffset

	return signature, nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (signer *keyMessageSigner) IsInterfaceNil() bool {
	return signer == nil
}
