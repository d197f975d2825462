package reconciliation

import (
	"context"
	"fmt"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/ethereum/go-ethereum/common"
	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/multiversx/mx-chain-safe-go/data/pending"
	"github.com/multiversx/mx-chain-safe-go/data/safetx"
	"github.com/multiversx/mx-chain-safe-go/process"

	safeCommon "github.com/multiversx/mx-chain-safe-go/common"
)

var log = logger.GetOrCreate("process/reconciliation")

const defaultDetailsRequestTimeout = time.Second * 10

// Result holds what a reconciliation pass changed. Incomplete is set when an entry could not be fully
// checked, applying the same batch again may then change the outcome.
type Result struct {
	Confirmed     []string
	Replaced      []string
	SafeCreations int
	Incomplete    bool
}

// ArgsHistoryReconciler holds the arguments needed to create a new history reconciler
type ArgsHistoryReconciler struct {
	PendingTracker        process.PendingTracker
	DetailsProvider       process.TransactionDetailsProvider
	ChainsConfig          process.ChainsConfigHandler
	OwnedSafesInvalidator process.OwnedSafesInvalidator
	SeenCache             SeenCache
	AppStatusHandler      safeCommon.AppStatusHandler
	DetailsRequestTimeout time.Duration
}

type historyReconciler struct {
	pendingTracker        process.PendingTracker
	detailsProvider       process.TransactionDetailsProvider
	chainsConfig          process.ChainsConfigHandler
	ownedSafesInvalidator process.OwnedSafesInvalidator
	seenCache             SeenCache
	appStatusHandler      safeCommon.AppStatusHandler
	detailsRequestTimeout time.Duration
}

// NewHistoryReconciler creates the component converging the pending executions with the indexed history
func NewHistoryReconciler(args ArgsHistoryReconciler) (*historyReconciler, error) {
	err := checkArgs(args)
	if err != nil {
		return nil, err
	}

	detailsRequestTimeout := args.DetailsRequestTimeout
	if detailsRequestTimeout <= 0 {
		detailsRequestTimeout = defaultDetailsRequestTimeout
	}

	return &historyReconciler{
		pendingTracker:        args.PendingTracker,
		detailsProvider:       args.DetailsProvider,
		chainsConfig:          args.ChainsConfig,
		ownedSafesInvalidator: args.OwnedSafesInvalidator,
		seenCache:             args.SeenCache,
		appStatusHandler:      args.AppStatusHandler,
		detailsRequestTimeout: detailsRequestTimeout,
	}, nil
}

func checkArgs(args ArgsHistoryReconciler) error {
	if check.IfNil(args.PendingTracker) {
		return process.ErrNilPendingTracker
	}
	if check.IfNil(args.DetailsProvider) {
		return process.ErrNilTransactionDetailsProvider
	}
	if check.IfNil(args.ChainsConfig) {
		return process.ErrNilChainsConfig
	}
	if check.IfNil(args.OwnedSafesInvalidator) {
		return ErrNilOwnedSafesInvalidator
	}
	if check.IfNil(args.SeenCache) {
		return ErrNilSeenCache
	}
	if check.IfNil(args.AppStatusHandler) {
		return process.ErrNilAppStatusHandler
	}

	return nil
}

// Reconcile applies a batch of indexed history entries of a Safe. Items can arrive in any order and
// the same batch can be applied any number of times.
func (hr *historyReconciler) Reconcile(chainID string, safe common.Address, items []safetx.HistoryItem) *Result {
	result := &Result{
		Confirmed: make([]string, 0),
		Replaced:  make([]string, 0),
	}

	factories := hr.proxyFactories(chainID)
	for _, item := range items {
		transactionItem, ok := item.(*safetx.TransactionItem)
		if !ok || transactionItem == nil {
			continue
		}

		summary := &transactionItem.Transaction
		hr.reconcilePending(chainID, safe, summary, result)
		isCreation, err := hr.checkSafeCreation(chainID, summary, factories)
		if err != nil {
			log.Debug("cannot check batch for safe creations", "chainID", chainID, "txID", summary.ID, "error", err)
			result.Incomplete = true
			continue
		}
		if isCreation {
			result.SafeCreations++
		}
	}

	if result.SafeCreations > 0 {
		log.Debug("new safes created, invalidating owned safes", "chainID", chainID, "num creations", result.SafeCreations)
		hr.ownedSafesInvalidator.InvalidateChain(chainID)
	}

	hr.appStatusHandler.AddUint64(safeCommon.MetricReconciledTransactions, uint64(len(result.Confirmed)))
	hr.appStatusHandler.AddUint64(safeCommon.MetricReplacedTransactions, uint64(len(result.Replaced)))
	log.Trace("history reconciled", "chainID", chainID, "safe", safe.Hex(), "result", spew.Sdump(result))

	return result
}

func (hr *historyReconciler) reconcilePending(chainID string, safe common.Address, summary *safetx.TransactionSummary, result *Result) {
	nonce, isMultisig := summary.MultisigNonce()
	if !isMultisig {
		return
	}

	records := hr.pendingTracker.FindBySafeNonce(chainID, safe, nonce)
	for _, record := range records {
		if record.TxID == summary.ID {
			if record.Status != pending.StatusExecuting {
				continue
			}

			hr.pendingTracker.MarkSuccess(record.TxID, summary.TxHash)
			result.Confirmed = append(result.Confirmed, record.TxID)
			continue
		}

		log.Debug("pending execution replaced", "chainID", chainID, "safe", safe.Hex(), "nonce", nonce,
			"pending txID", record.TxID, "executed txID", summary.ID,
			"reason", fmt.Errorf("%w: nonce %d executed by %s", process.ErrNonceConflict, nonce, summary.ID))
		hr.pendingTracker.Clear(record.TxID)
		result.Replaced = append(result.Replaced, record.TxID)
	}
}

func (hr *historyReconciler) checkSafeCreation(chainID string, summary *safetx.TransactionSummary, factories []common.Address) (bool, error) {
	if summary.TxStatus != safetx.TxStatusSuccess || len(factories) == 0 {
		return false, nil
	}

	key := []byte(chainID + "_" + summary.ID)
	if hr.seenCache.Has(key) {
		return false, nil
	}

	isCreation := safetx.IsSafeCreation(summary.TxInfo, factories)
	if !isCreation && safetx.IsBatch(summary.TxInfo) {
		var err error
		isCreation, err = hr.batchContainsSafeCreation(chainID, summary.ID, factories)
		if err != nil {
			return false, err
		}
	}

	hr.seenCache.Put(key, isCreation, 1)

	return isCreation, nil
}

func (hr *historyReconciler) batchContainsSafeCreation(chainID string, txID string, factories []common.Address) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), hr.detailsRequestTimeout)
	defer cancel()

	details, err := hr.detailsProvider.GetTransactionDetails(ctx, chainID, txID)
	if err != nil {
		return false, err
	}
	if details == nil || details.TxData == nil {
		return false, nil
	}

	return details.TxData.DataDecoded.ContainsSafeCreation(details.TxData.To, factories), nil
}

func (hr *historyReconciler) proxyFactories(chainID string) []common.Address {
	chainConfig, err := hr.chainsConfig.ChainConfig(chainID)
	if err != nil {
		log.Debug("no chain config, safe creations not tracked", "chainID", chainID, "error", err)
		return nil
	}

	return []common.Address{chainConfig.ProxyFactoryAddress()}
}

// IsInterfaceNil returns true if there is no value under the interface
func (hr *historyReconciler) IsInterfaceNil() bool {
	return hr == nil
}
