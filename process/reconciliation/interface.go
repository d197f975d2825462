package reconciliation

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/multiversx/mx-chain-safe-go/data/safetx"
	"github.com/multiversx/mx-chain-safe-go/gateway"
)

// SeenCache remembers the transactions already checked for Safe creations. *lrucache.lruCache satisfies it.
type SeenCache interface {
	Has(key []byte) bool
	Put(key []byte, value interface{}, sizeInBytes int) (evicted bool)
	IsInterfaceNil() bool
}

// Reconciler matches a history batch against the pending executions
type Reconciler interface {
	Reconcile(chainID string, safe common.Address, items []safetx.HistoryItem) *Result
	IsInterfaceNil() bool
}

// HistoryProvider fetches a page of the indexed history of a Safe
type HistoryProvider interface {
	GetTransactionHistory(ctx context.Context, chainID string, safe common.Address, cursor string) (*gateway.HistoryPage, error)
	IsInterfaceNil() bool
}
