package keystore

import (
	"crypto/ecdsa"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	logger "github.com/multiversx/mx-chain-logger-go"
)

var log = logger.GetOrCreate("storage/keystore")

// KeyFileExtension is the extension of the hex encoded private key files
const KeyFileExtension = ".key"

type fileSecretStore struct {
	keys map[common.Address]*ecdsa.PrivateKey
}

// NewFileSecretStore loads every <address>.key file of the directory. Each file holds one hex encoded secp256k1
// private key and must derive to the address in its name.
func NewFileSecretStore(directory string) (*fileSecretStore, error) {
	if len(directory) == 0 {
		return nil, ErrEmptyDirectory
	}

	entries, err := os.ReadDir(directory)
	if err != nil {
		return nil, err
	}

	store := &fileSecretStore{
		keys: make(map[common.Address]*ecdsa.PrivateKey),
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != KeyFileExtension {
			continue
		}

		address, privateKey, errLoad := loadKeyFile(directory, entry.Name())
		if errLoad != nil {
			return nil, errLoad
		}

		store.keys[address] = privateKey
	}

	log.Info("keystore loaded", "directory", directory, "num keys", len(store.keys))

	return store, nil
}

func loadKeyFile(directory string, name string) (common.Address, *ecdsa.PrivateKey, error) {
	addressHex := strings.TrimSuffix(name, KeyFileExtension)
	if !common.IsHexAddress(addressHex) {
		return common.Address{}, nil, fmt.Errorf("%w: %s is not named after an address", ErrAddressMismatch, name)
	}

	privateKey, err := crypto.LoadECDSA(filepath.Join(directory, name))
	if err != nil {
		return common.Address{}, nil, fmt.Errorf("%w while loading %s", err, name)
	}

	address := common.HexToAddress(addressHex)
	derived := crypto.PubkeyToAddress(privateKey.PublicKey)
	if derived != address {
		return common.Address{}, nil, fmt.Errorf("%w: %s holds the key of %s", ErrAddressMismatch, name, derived.Hex())
	}

	return address, privateKey, nil
}

// GetPrivateKey returns the key of the address
func (store *fileSecretStore) GetPrivateKey(address common.Address) (*ecdsa.PrivateKey, error) {
	privateKey, found := store.keys[address]
	if !found {
		return nil, fmt.Errorf("%w for %s", ErrKeyNotFound, address.Hex())
	}

	return privateKey, nil
}

// Addresses returns the addresses of the loaded keys
func (store *fileSecretStore) Addresses() []common.Address {
	addresses := make([]common.Address, 0, len(store.keys))
	for address := range store.keys {
		addresses = append(addresses, address)
	}

	return addresses
}

// IsInterfaceNil returns true if there is no value under the interface
func (store *fileSecretStore) IsInterfaceNil() bool {
	return store == nil
}
