package ownedSafes

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-storage-go/lrucache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testOwner = common.HexToAddress("0x0a")
	testSafeA = common.HexToAddress("0xaa")
	testSafeB = common.HexToAddress("0xbb")
)

type ownedSafesProviderStub struct {
	GetOwnedSafesCalled func(ctx context.Context, chainID string, owner common.Address) ([]common.Address, error)
}

// GetOwnedSafes -
func (stub *ownedSafesProviderStub) GetOwnedSafes(ctx context.Context, chainID string, owner common.Address) ([]common.Address, error) {
	if stub.GetOwnedSafesCalled != nil {
		return stub.GetOwnedSafesCalled(ctx, chainID, owner)
	}

	return nil, nil
}

// IsInterfaceNil -
func (stub *ownedSafesProviderStub) IsInterfaceNil() bool {
	return stub == nil
}

func createCountingProvider(numCalls *uint32) *ownedSafesProviderStub {
	return &ownedSafesProviderStub{
		GetOwnedSafesCalled: func(ctx context.Context, chainID string, owner common.Address) ([]common.Address, error) {
			atomic.AddUint32(numCalls, 1)
			return []common.Address{testSafeA, testSafeB}, nil
		},
	}
}

func createCache(t *testing.T) Cacher {
	cacher, err := lrucache.NewCache(100)
	require.Nil(t, err)

	return cacher
}

func TestNewOwnedSafesCache(t *testing.T) {
	t.Parallel()

	t.Run("nil provider should error", func(t *testing.T) {
		t.Parallel()

		osc, err := NewOwnedSafesCache(ArgsOwnedSafesCache{Cacher: createCache(t)})
		assert.True(t, check.IfNil(osc))
		assert.Equal(t, ErrNilOwnedSafesProvider, err)
	})
	t.Run("nil cacher should error", func(t *testing.T) {
		t.Parallel()

		osc, err := NewOwnedSafesCache(ArgsOwnedSafesCache{Provider: &ownedSafesProviderStub{}})
		assert.True(t, check.IfNil(osc))
		assert.Equal(t, ErrNilCacher, err)
	})
	t.Run("should work", func(t *testing.T) {
		t.Parallel()

		osc, err := NewOwnedSafesCache(ArgsOwnedSafesCache{Provider: &ownedSafesProviderStub{}, Cacher: createCache(t)})
		assert.False(t, check.IfNil(osc))
		assert.Nil(t, err)
	})
}

func TestOwnedSafesCache_GetOwnedSafes(t *testing.T) {
	t.Parallel()

	t.Run("provider error should not be cached", func(t *testing.T) {
		t.Parallel()

		expectedErr := errors.New("expected error")
		numCalls := uint32(0)
		osc, _ := NewOwnedSafesCache(ArgsOwnedSafesCache{
			Provider: &ownedSafesProviderStub{
				GetOwnedSafesCalled: func(ctx context.Context, chainID string, owner common.Address) ([]common.Address, error) {
					atomic.AddUint32(&numCalls, 1)
					return nil, expectedErr
				},
			},
			Cacher: createCache(t),
		})

		_, err := osc.GetOwnedSafes(context.Background(), "1", testOwner)
		assert.Equal(t, expectedErr, err)
		_, err = osc.GetOwnedSafes(context.Background(), "1", testOwner)
		assert.Equal(t, expectedErr, err)
		assert.Equal(t, uint32(2), atomic.LoadUint32(&numCalls))
	})
	t.Run("second read should hit the cache", func(t *testing.T) {
		t.Parallel()

		numCalls := uint32(0)
		osc, _ := NewOwnedSafesCache(ArgsOwnedSafesCache{
			Provider: createCountingProvider(&numCalls),
			Cacher:   createCache(t),
		})

		first, err := osc.GetOwnedSafes(context.Background(), "1", testOwner)
		require.Nil(t, err)
		first[0] = common.Address{}

		second, err := osc.GetOwnedSafes(context.Background(), "1", testOwner)
		require.Nil(t, err)
		assert.Equal(t, []common.Address{testSafeA, testSafeB}, second)
		assert.Equal(t, uint32(1), atomic.LoadUint32(&numCalls))
	})
}

func TestOwnedSafesCache_InvalidateChain(t *testing.T) {
	t.Parallel()

	numCalls := uint32(0)
	osc, _ := NewOwnedSafesCache(ArgsOwnedSafesCache{
		Provider: createCountingProvider(&numCalls),
		Cacher:   createCache(t),
	})

	_, _ = osc.GetOwnedSafes(context.Background(), "1", testOwner)
	_, _ = osc.GetOwnedSafes(context.Background(), "10", testOwner)
	_, _ = osc.GetOwnedSafes(context.Background(), "100", testOwner)
	assert.Equal(t, uint32(3), atomic.LoadUint32(&numCalls))

	osc.InvalidateChain("10")

	_, _ = osc.GetOwnedSafes(context.Background(), "1", testOwner)
	_, _ = osc.GetOwnedSafes(context.Background(), "100", testOwner)
	assert.Equal(t, uint32(3), atomic.LoadUint32(&numCalls))

	_, _ = osc.GetOwnedSafes(context.Background(), "10", testOwner)
	assert.Equal(t, uint32(4), atomic.LoadUint32(&numCalls))
}
