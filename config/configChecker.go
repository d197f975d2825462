package config

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

const (
	signerTypePrivateKey = "PRIVATE_KEY"
	signerTypeHardware   = "HARDWARE"
)

// Check validates the loaded configuration
func (cfg *Config) Check() error {
	if len(cfg.Gateway.URL) == 0 {
		return ErrMissingGatewayURL
	}
	if len(cfg.Relay.URL) == 0 {
		return ErrMissingRelayURL
	}
	if cfg.OwnedSafesCache.Capacity <= 0 {
		return fmt.Errorf("%w for OwnedSafesCache", ErrInvalidCacheCapacity)
	}
	if cfg.ReconciliationCache.Capacity <= 0 {
		return fmt.Errorf("%w for ReconciliationCache", ErrInvalidCacheCapacity)
	}
	if cfg.RelayPolling.PollingIntervalInMs == 0 || cfg.RelayPolling.TimeoutInSec == 0 {
		return fmt.Errorf("%w for RelayPolling", ErrInvalidPollingConfig)
	}
	if cfg.Activation.MaxLookupRetries == 0 || cfg.Activation.InitialRetryIntervalInMs == 0 {
		return fmt.Errorf("%w for Activation", ErrInvalidPollingConfig)
	}
	if cfg.HistoryMonitor.Enabled && cfg.HistoryMonitor.PollingIntervalInSec == 0 {
		return fmt.Errorf("%w for HistoryMonitor", ErrInvalidPollingConfig)
	}

	for _, signerCfg := range cfg.Signers {
		err := checkSigner(signerCfg)
		if err != nil {
			return err
		}
	}
	for _, watched := range cfg.HistoryMonitor.WatchedSafes {
		if !common.IsHexAddress(watched.Address) {
			return fmt.Errorf("%w for watched safe: %s", ErrInvalidAddress, watched.Address)
		}
	}

	_, err := NewChainsConfig(cfg.Chains)
	return err
}

func checkSigner(signerCfg SignerConfig) error {
	if !common.IsHexAddress(signerCfg.Address) {
		return fmt.Errorf("%w for signer: %s", ErrInvalidAddress, signerCfg.Address)
	}

	switch signerCfg.Type {
	case signerTypePrivateKey, signerTypeHardware:
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrInvalidSignerType, signerCfg.Type)
	}
}
