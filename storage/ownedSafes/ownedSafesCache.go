package ownedSafes

import (
	"bytes"
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
)

var log = logger.GetOrCreate("storage/ownedSafes")

const keySeparator = "_"

// ArgsOwnedSafesCache holds the arguments needed to create a new owned safes cache
type ArgsOwnedSafesCache struct {
	Provider OwnedSafesProvider
	Cacher   Cacher
}

type ownedSafesCache struct {
	provider OwnedSafesProvider
	cacher   Cacher
}

// NewOwnedSafesCache creates a read-through cache of the Safes owned by an address
func NewOwnedSafesCache(args ArgsOwnedSafesCache) (*ownedSafesCache, error) {
	if check.IfNil(args.Provider) {
		return nil, ErrNilOwnedSafesProvider
	}
	if check.IfNil(args.Cacher) {
		return nil, ErrNilCacher
	}

	return &ownedSafesCache{
		provider: args.Provider,
		cacher:   args.Cacher,
	}, nil
}

// GetOwnedSafes returns the cached list, fetching it on a miss. The returned slice is never shared with the cache.
func (osc *ownedSafesCache) GetOwnedSafes(ctx context.Context, chainID string, owner common.Address) ([]common.Address, error) {
	key := cacheKey(chainID, owner)
	value, found := osc.cacher.Get(key)
	if found {
		safes, ok := value.([]common.Address)
		if ok {
			return copyAddresses(safes), nil
		}
	}

	safes, err := osc.provider.GetOwnedSafes(ctx, chainID, owner)
	if err != nil {
		return nil, err
	}

	stored := copyAddresses(safes)
	osc.cacher.Put(key, stored, len(stored)*common.AddressLength)

	return copyAddresses(stored), nil
}

// InvalidateChain drops every cached list of the chain
func (osc *ownedSafesCache) InvalidateChain(chainID string) {
	prefix := []byte(chainID + keySeparator)

	numRemoved := 0
	for _, key := range osc.cacher.Keys() {
		if !bytes.HasPrefix(key, prefix) {
			continue
		}

		osc.cacher.Remove(key)
		numRemoved++
	}

	log.Debug("owned safes invalidated", "chainID", chainID, "num entries", numRemoved)
}

// IsInterfaceNil returns true if there is no value under the interface
func (osc *ownedSafesCache) IsInterfaceNil() bool {
	return osc == nil
}

func cacheKey(chainID string, owner common.Address) []byte {
	return []byte(chainID + keySeparator + owner.Hex())
}

func copyAddresses(addresses []common.Address) []common.Address {
	result := make([]common.Address, len(addresses))
	copy(result, addresses)

	return result
}
