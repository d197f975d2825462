package processMocks

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
)

// OwnedSafesProviderStub -
type OwnedSafesProviderStub struct {
	GetOwnedSafesCalled func(ctx context.Context, chainID string, owner common.Address) ([]common.Address, error)
}

// GetOwnedSafes -
func (stub *OwnedSafesProviderStub) GetOwnedSafes(ctx context.Context, chainID string, owner common.Address) ([]common.Address, error) {
	if stub.GetOwnedSafesCalled != nil {
		return stub.GetOwnedSafesCalled(ctx, chainID, owner)
	}

	return nil, nil
}

// IsInterfaceNil -
func (stub *OwnedSafesProviderStub) IsInterfaceNil() bool {
	return stub == nil
}
