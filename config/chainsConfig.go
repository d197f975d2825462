package config

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

type chainsConfig struct {
	chains map[string]ChainConfig
}

// NewChainsConfig indexes and validates the configured chains
func NewChainsConfig(chains []ChainConfig) (*chainsConfig, error) {
	if len(chains) == 0 {
		return nil, ErrNoChainsConfigured
	}

	cc := &chainsConfig{
		chains: make(map[string]ChainConfig, len(chains)),
	}
	for _, chain := range chains {
		_, exists := cc.chains[chain.ChainID]
		if exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatedChain, chain.ChainID)
		}

		err := chain.check()
		if err != nil {
			return nil, err
		}

		cc.chains[chain.ChainID] = chain
	}

	return cc, nil
}

// ChainConfig returns the configuration of the provided chain
func (cc *chainsConfig) ChainConfig(chainID string) (ChainConfig, error) {
	chain, found := cc.chains[chainID]
	if !found {
		return ChainConfig{}, fmt.Errorf("%w: %s", ErrUnknownChain, chainID)
	}

	return chain, nil
}

// ChainIDs returns the identifiers of all configured chains
func (cc *chainsConfig) ChainIDs() []string {
	chainIDs := make([]string, 0, len(cc.chains))
	for chainID := range cc.chains {
		chainIDs = append(chainIDs, chainID)
	}

	return chainIDs
}

// IsInterfaceNil returns true if there is no value under the interface
func (cc *chainsConfig) IsInterfaceNil() bool {
	return cc == nil
}

func (chain ChainConfig) check() error {
	if len(chain.LatestSafeVersion) == 0 {
		return fmt.Errorf("%w for chain %s", ErrMissingLatestSafeVersion, chain.ChainID)
	}

	addresses := map[string]string{
		"ProxyFactory":      chain.ProxyFactory,
		"SafeSingleton":     chain.SafeSingleton,
		"FallbackHandler":   chain.FallbackHandler,
		"MultiSend":         chain.MultiSend,
		"MultiSendCallOnly": chain.MultiSendCallOnly,
	}
	for name, address := range addresses {
		if !common.IsHexAddress(address) {
			return fmt.Errorf("%w for %s on chain %s: %q", ErrInvalidAddress, name, chain.ChainID, address)
		}
	}

	return nil
}

// ProxyFactoryAddress returns the canonical proxy factory of the chain
func (chain ChainConfig) ProxyFactoryAddress() common.Address {
	return common.HexToAddress(chain.ProxyFactory)
}

// SafeSingletonAddress returns the canonical Safe mastercopy of the chain
func (chain ChainConfig) SafeSingletonAddress() common.Address {
	return common.HexToAddress(chain.SafeSingleton)
}

// FallbackHandlerAddress returns the canonical fallback handler of the chain
func (chain ChainConfig) FallbackHandlerAddress() common.Address {
	return common.HexToAddress(chain.FallbackHandler)
}

// MultiSendAddress returns the MultiSend deployment of the chain
func (chain ChainConfig) MultiSendAddress() common.Address {
	return common.HexToAddress(chain.MultiSend)
}

// MultiSendCallOnlyAddress returns the MultiSendCallOnly deployment of the chain
func (chain ChainConfig) MultiSendCallOnlyAddress() common.Address {
	return common.HexToAddress(chain.MultiSendCallOnly)
}
