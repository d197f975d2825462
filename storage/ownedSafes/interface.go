package ownedSafes

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
)

// OwnedSafesProvider fetches the Safes an address owns on a chain
type OwnedSafesProvider interface {
	GetOwnedSafes(ctx context.Context, chainID string, owner common.Address) ([]common.Address, error)
	IsInterfaceNil() bool
}

// Cacher is the LRU cache used to keep the fetched lists
type Cacher interface {
	Get(key []byte) (value interface{}, ok bool)
	Put(key []byte, value interface{}, sizeInBytes int) (evicted bool)
	Remove(key []byte)
	Keys() [][]byte
	IsInterfaceNil() bool
}
