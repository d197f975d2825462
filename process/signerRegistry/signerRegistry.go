package signerRegistry

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/multiversx/mx-chain-safe-go/config"
	"github.com/multiversx/mx-chain-safe-go/data/signer"
)

type signerRegistry struct {
	records map[common.Address]*signer.Record
}

// NewSignerRegistry builds the wallet registry from the configured signers. Hardware signers need a derivation
// path, which is checked when the hardware executor runs.
func NewSignerRegistry(signers []config.SignerConfig) (*signerRegistry, error) {
	sr := &signerRegistry{
		records: make(map[common.Address]*signer.Record, len(signers)),
	}

	for _, cfg := range signers {
		if !common.IsHexAddress(cfg.Address) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidSignerAddress, cfg.Address)
		}

		signerType := signer.Type(cfg.Type)
		if signerType != signer.TypePrivateKey && signerType != signer.TypeHardware {
			return nil, fmt.Errorf("%w: %q for %s", ErrInvalidSignerType, cfg.Type, cfg.Address)
		}

		address := common.HexToAddress(cfg.Address)
		_, exists := sr.records[address]
		if exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatedSigner, address.Hex())
		}

		sr.records[address] = &signer.Record{
			Address:        address,
			Type:           signerType,
			DerivationPath: cfg.DerivationPath,
		}
	}

	return sr, nil
}

// GetSigner returns a copy of the signer record of the wallet
func (sr *signerRegistry) GetSigner(address common.Address) (*signer.Record, error) {
	record, found := sr.records[address]
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrSignerNotFound, address.Hex())
	}

	cloned := *record
	return &cloned, nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (sr *signerRegistry) IsInterfaceNil() bool {
	return sr == nil
}
