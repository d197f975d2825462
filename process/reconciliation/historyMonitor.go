package reconciliation

import (
	"context"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-safe-go/data/safetx"
)

// WatchedSafe identifies a Safe whose indexed history is polled
type WatchedSafe struct {
	ChainID string
	Address common.Address
}

// ArgsHistoryMonitor holds the arguments needed to create a new history monitor
type ArgsHistoryMonitor struct {
	HistoryProvider HistoryProvider
	Reconciler      Reconciler
	WatchedSafes    []WatchedSafe
	PollingInterval time.Duration
	RequestTimeout  time.Duration
}

type historyMonitor struct {
	historyProvider HistoryProvider
	reconciler      Reconciler
	watchedSafes    []WatchedSafe
	pollingInterval time.Duration
	requestTimeout  time.Duration

	mutHeads  sync.RWMutex
	heads     map[WatchedSafe]string
	cancel    context.CancelFunc
	loopEnded chan struct{}
}

// NewHistoryMonitor creates and starts the component feeding the indexed history of the watched Safes
// to the reconciler
func NewHistoryMonitor(args ArgsHistoryMonitor) (*historyMonitor, error) {
	if check.IfNil(args.HistoryProvider) {
		return nil, ErrNilHistoryProvider
	}
	if check.IfNil(args.Reconciler) {
		return nil, ErrNilReconciler
	}
	if len(args.WatchedSafes) == 0 {
		return nil, ErrNoWatchedSafes
	}
	if args.PollingInterval <= 0 {
		return nil, ErrInvalidPollingInterval
	}

	requestTimeout := args.RequestTimeout
	if requestTimeout <= 0 || requestTimeout > args.PollingInterval {
		requestTimeout = args.PollingInterval
	}

	ctx, cancel := context.WithCancel(context.Background())
	hm := &historyMonitor{
		historyProvider: args.HistoryProvider,
		reconciler:      args.Reconciler,
		watchedSafes:    args.WatchedSafes,
		pollingInterval: args.PollingInterval,
		requestTimeout:  requestTimeout,
		heads:           make(map[WatchedSafe]string),
		cancel:          cancel,
		loopEnded:       make(chan struct{}),
	}

	go hm.processLoop(ctx)

	return hm, nil
}

func (hm *historyMonitor) processLoop(ctx context.Context) {
	defer close(hm.loopEnded)

	ticker := time.NewTicker(hm.pollingInterval)
	defer ticker.Stop()

	hm.pollAll(ctx)
	for {
		select {
		case <-ctx.Done():
			log.Debug("history monitor's go routine is stopping...")
			return
		case <-ticker.C:
			hm.pollAll(ctx)
		}
	}
}

func (hm *historyMonitor) pollAll(ctx context.Context) {
	for _, watched := range hm.watchedSafes {
		if ctx.Err() != nil {
			return
		}

		hm.poll(ctx, watched)
	}
}

func (hm *historyMonitor) poll(ctx context.Context, watched WatchedSafe) {
	requestCtx, cancel := context.WithTimeout(ctx, hm.requestTimeout)
	defer cancel()

	page, err := hm.historyProvider.GetTransactionHistory(requestCtx, watched.ChainID, watched.Address, "")
	if err != nil {
		log.Debug("cannot fetch the safe history", "chainID", watched.ChainID, "safe", watched.Address.Hex(), "error", err)
		return
	}
	if page == nil {
		return
	}

	head := headOf(page.Results)
	previousHead, found := hm.Head(watched)
	if found && previousHead == head {
		return
	}

	result := hm.reconciler.Reconcile(watched.ChainID, watched.Address, page.Results)
	if result == nil {
		return
	}
	log.Debug("history page reconciled", "chainID", watched.ChainID, "safe", watched.Address.Hex(), "head", head,
		"confirmed", len(result.Confirmed), "replaced", len(result.Replaced), "safe creations", result.SafeCreations,
		"incomplete", result.Incomplete)
	if result.Incomplete {
		// head not recorded so the same page is applied again on the next poll
		return
	}

	hm.mutHeads.Lock()
	hm.heads[watched] = head
	hm.mutHeads.Unlock()
}

func headOf(items []safetx.HistoryItem) string {
	for _, item := range items {
		transactionItem, ok := item.(*safetx.TransactionItem)
		if ok && transactionItem != nil {
			return transactionItem.Transaction.ID
		}
	}

	return ""
}

// Head returns the newest transaction seen for a watched Safe
func (hm *historyMonitor) Head(watched WatchedSafe) (string, bool) {
	hm.mutHeads.RLock()
	defer hm.mutHeads.RUnlock()

	head, found := hm.heads[watched]
	return head, found
}

// Close stops the polling loop
func (hm *historyMonitor) Close() error {
	hm.cancel()
	<-hm.loopEnded

	return nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (hm *historyMonitor) IsInterfaceNil() bool {
	return hm == nil
}
