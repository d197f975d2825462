package processMocks

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
)

// MessageSignerStub -
type MessageSignerStub struct {
	SignHashCalled func(ctx context.Context, signer common.Address, hash common.Hash) ([]byte, error)
}

// SignHash -
func (stub *MessageSignerStub) SignHash(ctx context.Context, signer common.Address, hash common.Hash) ([]byte, error) {
	if stub.SignHashCalled != nil {
		return stub.SignHashCalled(ctx, signer, hash)
	}

	return make([]byte, 65), nil
}

// IsInterfaceNil -
func (stub *MessageSignerStub) IsInterfaceNil() bool {
	return stub == nil
}
