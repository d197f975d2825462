package pending

import (
	"sort"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/multiversx/mx-chain-safe-go/common/disabled"
	"github.com/multiversx/mx-chain-safe-go/data/pending"
	"github.com/multiversx/mx-chain-safe-go/process"

	safeCommon "github.com/multiversx/mx-chain-safe-go/common"
)

var log = logger.GetOrCreate("process/pending")

// ChangeHandler is notified, outside of the tracker lock, after every mutation
type ChangeHandler func(record *pending.Record, change pending.ChangeType)

// ArgsPendingTracker holds the arguments needed to create a new pending tracker
type ArgsPendingTracker struct {
	Persister        Persister
	AppStatusHandler safeCommon.AppStatusHandler
}

type pendingTracker struct {
	mutRecords       sync.RWMutex
	records          map[string]*pending.Record
	mutPersister     sync.Mutex
	persister        Persister
	appStatusHandler safeCommon.AppStatusHandler

	mutHandlers sync.RWMutex
	handlers    []ChangeHandler

	getTimeHandler func() time.Time
}

// NewPendingTracker creates the owner of the in-flight execution records. A nil persister keeps the state
// in memory only.
func NewPendingTracker(args ArgsPendingTracker) (*pendingTracker, error) {
	if check.IfNil(args.AppStatusHandler) {
		return nil, process.ErrNilAppStatusHandler
	}

	persister := args.Persister
	if check.IfNil(persister) {
		persister = disabled.NewPendingPersister()
	}

	pt := &pendingTracker{
		records:          make(map[string]*pending.Record),
		persister:        persister,
		appStatusHandler: args.AppStatusHandler,
		handlers:         make([]ChangeHandler, 0),
		getTimeHandler:   time.Now,
	}

	err := pt.loadPersisted()
	if err != nil {
		return nil, err
	}

	return pt, nil
}

func (pt *pendingTracker) loadPersisted() error {
	records, err := pt.persister.LoadAll()
	if err != nil {
		return err
	}

	pt.mutRecords.Lock()
	for _, record := range records {
		if record == nil || len(record.TxID) == 0 {
			continue
		}
		pt.records[record.TxID] = record
	}
	numRecords := len(pt.records)
	pt.mutRecords.Unlock()

	if numRecords > 0 {
		log.Info("restored pending executions", "num", numRecords)
	}
	pt.updateMetric()

	return nil
}

// Start registers an EXECUTING record for the transaction. Starting an already tracked transaction
// overwrites its record, a retry restarts tracking.
func (pt *pendingTracker) Start(txID string, kind pending.ExecutionKind, artifact pending.Artifact) {
	if len(txID) == 0 {
		log.Warn("pendingTracker.Start called with empty txID")
		return
	}

	record := &pending.Record{
		TxID:      txID,
		Kind:      kind,
		Artifact:  artifact,
		Status:    pending.StatusExecuting,
		StartedAt: pt.getTimeHandler(),
	}

	pt.mutRecords.Lock()
	_, restarted := pt.records[txID]
	pt.records[txID] = record
	pt.mutRecords.Unlock()

	log.Debug("pending execution started", "txID", txID, "kind", kind, "restarted", restarted,
		"txHash", artifact.TxHash.Hex(), "taskID", artifact.TaskID)

	pt.persistIfTracked(record)
	pt.updateMetric()
	pt.notify(record.Clone(), pending.ChangeStarted)
}

// MarkSuccess moves an EXECUTING record to SUCCESS. Does nothing if there is no EXECUTING record.
func (pt *pendingTracker) MarkSuccess(txID string, txHash common.Hash) {
	record, ok := pt.complete(txID, func(record *pending.Record) {
		record.Status = pending.StatusSuccess
		if txHash != (common.Hash{}) {
			record.Artifact.TxHash = txHash
		}
	})
	if !ok {
		return
	}

	log.Debug("pending execution succeeded", "txID", txID, "txHash", txHash.Hex())
	pt.notify(record, pending.ChangeSucceeded)
}

// MarkError moves an EXECUTING record to ERROR. Does nothing if there is no EXECUTING record.
func (pt *pendingTracker) MarkError(txID string, reason error) {
	record, ok := pt.complete(txID, func(record *pending.Record) {
		record.Status = pending.StatusError
		if reason != nil {
			record.Error = reason.Error()
		}
	})
	if !ok {
		return
	}

	log.Debug("pending execution failed", "txID", txID, "reason", reason)
	pt.notify(record, pending.ChangeFailed)
}

func (pt *pendingTracker) complete(txID string, mutate func(record *pending.Record)) (*pending.Record, bool) {
	pt.mutRecords.Lock()
	existing, found := pt.records[txID]
	if !found || existing.Status != pending.StatusExecuting {
		pt.mutRecords.Unlock()
		return nil, false
	}

	record := existing.Clone()
	mutate(record)
	completedAt := pt.getTimeHandler()
	record.CompletedAt = &completedAt
	pt.records[txID] = record
	pt.mutRecords.Unlock()

	pt.persistIfTracked(record)
	pt.updateMetric()

	return record.Clone(), true
}

// Clear removes the record of the transaction, whatever its status
func (pt *pendingTracker) Clear(txID string) {
	pt.mutPersister.Lock()
	pt.mutRecords.Lock()
	record, found := pt.records[txID]
	delete(pt.records, txID)
	pt.mutRecords.Unlock()

	if !found {
		pt.mutPersister.Unlock()
		return
	}

	err := pt.persister.Remove(txID)
	pt.mutPersister.Unlock()
	if err != nil {
		log.Warn("cannot remove persisted pending execution", "txID", txID, "error", err)
	}

	log.Debug("pending execution cleared", "txID", txID, "status", record.Status)
	pt.updateMetric()
	pt.notify(record.Clone(), pending.ChangeCleared)
}

// Get returns a copy of the record of the transaction
func (pt *pendingTracker) Get(txID string) (*pending.Record, bool) {
	pt.mutRecords.RLock()
	defer pt.mutRecords.RUnlock()

	record, found := pt.records[txID]
	if !found {
		return nil, false
	}

	return record.Clone(), true
}

// GetAll returns copies of all records, oldest first
func (pt *pendingTracker) GetAll() []*pending.Record {
	pt.mutRecords.RLock()
	records := make([]*pending.Record, 0, len(pt.records))
	for _, record := range pt.records {
		records = append(records, record.Clone())
	}
	pt.mutRecords.RUnlock()

	sortOldestFirst(records)

	return records
}

func sortOldestFirst(records []*pending.Record) {
	sort.Slice(records, func(i, j int) bool {
		if records[i].StartedAt.Equal(records[j].StartedAt) {
			return records[i].TxID < records[j].TxID
		}
		return records[i].StartedAt.Before(records[j].StartedAt)
	})
}

// FindBySafeNonce returns the records tracking the given Safe nonce, oldest first. Records started
// without a Safe nonce never match.
func (pt *pendingTracker) FindBySafeNonce(chainID string, safe common.Address, nonce uint64) []*pending.Record {
	pt.mutRecords.RLock()
	records := make([]*pending.Record, 0)
	for _, record := range pt.records {
		artifact := record.Artifact
		if !artifact.HasSafeNonce {
			continue
		}
		if artifact.ChainID == chainID && artifact.SafeAddress == safe && artifact.SafeNonce == nonce {
			records = append(records, record.Clone())
		}
	}
	pt.mutRecords.RUnlock()

	sortOldestFirst(records)

	return records
}

// RegisterHandler adds a handler notified after every mutation
func (pt *pendingTracker) RegisterHandler(handler ChangeHandler) {
	if handler == nil {
		return
	}

	pt.mutHandlers.Lock()
	pt.handlers = append(pt.handlers, handler)
	pt.mutHandlers.Unlock()
}

func (pt *pendingTracker) notify(record *pending.Record, change pending.ChangeType) {
	pt.mutHandlers.RLock()
	handlers := make([]ChangeHandler, len(pt.handlers))
	copy(handlers, pt.handlers)
	pt.mutHandlers.RUnlock()

	for _, handler := range handlers {
		handler(record.Clone(), change)
	}
}

// persistIfTracked saves the record unless it was replaced or cleared in the meantime. Persister writes
// are serialized so a late save can not resurrect a cleared record.
func (pt *pendingTracker) persistIfTracked(record *pending.Record) {
	pt.mutPersister.Lock()
	defer pt.mutPersister.Unlock()

	pt.mutRecords.RLock()
	current := pt.records[record.TxID]
	pt.mutRecords.RUnlock()
	if current != record {
		return
	}

	err := pt.persister.Save(record)
	if err != nil {
		log.Warn("cannot persist pending execution", "txID", record.TxID, "error", err)
	}
}

func (pt *pendingTracker) updateMetric() {
	pt.mutRecords.RLock()
	numExecuting := 0
	for _, record := range pt.records {
		if record.Status == pending.StatusExecuting {
			numExecuting++
		}
	}
	pt.mutRecords.RUnlock()

	pt.appStatusHandler.SetUInt64Value(safeCommon.MetricPendingExecutions, uint64(numExecuting))
}

// IsInterfaceNil returns true if there is no value under the interface
func (pt *pendingTracker) IsInterfaceNil() bool {
	return pt == nil
}
