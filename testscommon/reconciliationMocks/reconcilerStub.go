package reconciliationMocks

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/multiversx/mx-chain-safe-go/data/safetx"
	"github.com/multiversx/mx-chain-safe-go/process/reconciliation"
)

// ReconcilerStub -
type ReconcilerStub struct {
	ReconcileCalled func(chainID string, safe common.Address, items []safetx.HistoryItem) *reconciliation.Result
}

// Reconcile -
func (stub *ReconcilerStub) Reconcile(chainID string, safe common.Address, items []safetx.HistoryItem) *reconciliation.Result {
	if stub.ReconcileCalled != nil {
		return stub.ReconcileCalled(chainID, safe, items)
	}

	return &reconciliation.Result{}
}

// IsInterfaceNil -
func (stub *ReconcilerStub) IsInterfaceNil() bool {
	return stub == nil
}
