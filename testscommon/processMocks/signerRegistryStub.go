package processMocks

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/multiversx/mx-chain-safe-go/data/signer"
)

// SignerRegistryStub -
type SignerRegistryStub struct {
	GetSignerCalled func(address common.Address) (*signer.Record, error)
}

// GetSigner -
func (stub *SignerRegistryStub) GetSigner(address common.Address) (*signer.Record, error) {
	if stub.GetSignerCalled != nil {
		return stub.GetSignerCalled(address)
	}

	return &signer.Record{Address: address, Type: signer.TypePrivateKey}, nil
}

// IsInterfaceNil -
func (stub *SignerRegistryStub) IsInterfaceNil() bool {
	return stub == nil
}
