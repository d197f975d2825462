package chainMocks

import "github.com/multiversx/mx-chain-safe-go/config"

// ChainsConfigStub -
type ChainsConfigStub struct {
	ChainConfigCalled func(chainID string) (config.ChainConfig, error)
}

// ChainConfig -
func (stub *ChainsConfigStub) ChainConfig(chainID string) (config.ChainConfig, error) {
	if stub.ChainConfigCalled != nil {
		return stub.ChainConfigCalled(chainID)
	}

	return config.ChainConfig{ChainID: chainID, LatestSafeVersion: "1.4.1"}, nil
}

// IsInterfaceNil -
func (stub *ChainsConfigStub) IsInterfaceNil() bool {
	return stub == nil
}
