package chainMocks

import "github.com/multiversx/mx-chain-safe-go/process"

// ChainProvidersHolderStub -
type ChainProvidersHolderStub struct {
	ProviderForChainCalled func(chainID string) (process.ChainProvider, error)
}

// ProviderForChain -
func (stub *ChainProvidersHolderStub) ProviderForChain(chainID string) (process.ChainProvider, error) {
	if stub.ProviderForChainCalled != nil {
		return stub.ProviderForChainCalled(chainID)
	}

	return &ChainProviderStub{}, nil
}

// IsInterfaceNil -
func (stub *ChainProvidersHolderStub) IsInterfaceNil() bool {
	return stub == nil
}
