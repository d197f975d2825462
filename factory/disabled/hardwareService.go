package disabled

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/multiversx/mx-chain-safe-go/process"
)

// HardwareService is the hardware service used when no hardware bridge is configured
type HardwareService struct {
}

// ExecuteTransaction returns ErrHardwareSignerDisabled
func (hs *HardwareService) ExecuteTransaction(_ context.Context, _ *process.HardwareExecutionRequest) (common.Hash, error) {
	return common.Hash{}, ErrHardwareSignerDisabled
}

// Disconnect does nothing
func (hs *HardwareService) Disconnect() error {
	return nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (hs *HardwareService) IsInterfaceNil() bool {
	return hs == nil
}
