package pending

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-safe-go/data/pending"
	"github.com/multiversx/mx-chain-safe-go/process"
	"github.com/multiversx/mx-chain-safe-go/testscommon/pendingMocks"
	"github.com/multiversx/mx-chain-safe-go/testscommon/statusHandler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	safeCommon "github.com/multiversx/mx-chain-safe-go/common"
)

var (
	testSafe = common.HexToAddress("0x00000000000000000000000000000000000000aa")
	testHash = common.HexToHash("0x01")
)

func createMockArgs() ArgsPendingTracker {
	return ArgsPendingTracker{
		Persister:        &pendingMocks.PersisterStub{},
		AppStatusHandler: &statusHandler.AppStatusHandlerStub{},
	}
}

func createArtifact(nonce uint64) pending.Artifact {
	return pending.Artifact{
		ChainID:      "1",
		SafeAddress:  testSafe,
		SafeNonce:    nonce,
		HasSafeNonce: true,
		TxHash:       testHash,
	}
}

func TestNewPendingTracker(t *testing.T) {
	t.Parallel()

	t.Run("nil app status handler should error", func(t *testing.T) {
		t.Parallel()

		args := createMockArgs()
		args.AppStatusHandler = nil
		pt, err := NewPendingTracker(args)
		assert.Nil(t, pt)
		assert.Equal(t, process.ErrNilAppStatusHandler, err)
	})
	t.Run("nil persister should use the disabled one", func(t *testing.T) {
		t.Parallel()

		args := createMockArgs()
		args.Persister = nil
		pt, err := NewPendingTracker(args)
		assert.Nil(t, err)
		assert.False(t, check.IfNil(pt))
	})
	t.Run("load error should error", func(t *testing.T) {
		t.Parallel()

		expectedErr := errors.New("expected error")
		args := createMockArgs()
		args.Persister = &pendingMocks.PersisterStub{
			LoadAllCalled: func() ([]*pending.Record, error) {
				return nil, expectedErr
			},
		}
		pt, err := NewPendingTracker(args)
		assert.Nil(t, pt)
		assert.Equal(t, expectedErr, err)
	})
	t.Run("should restore persisted records", func(t *testing.T) {
		t.Parallel()

		args := createMockArgs()
		args.Persister = &pendingMocks.PersisterStub{
			LoadAllCalled: func() ([]*pending.Record, error) {
				return []*pending.Record{
					{TxID: "tx1", Status: pending.StatusExecuting},
					nil,
					{TxID: ""},
				}, nil
			},
		}
		pt, err := NewPendingTracker(args)
		require.Nil(t, err)

		record, found := pt.Get("tx1")
		assert.True(t, found)
		assert.Equal(t, pending.StatusExecuting, record.Status)
		assert.Len(t, pt.GetAll(), 1)
	})
}

func TestPendingTracker_Start(t *testing.T) {
	t.Parallel()

	t.Run("empty txID should not register", func(t *testing.T) {
		t.Parallel()

		pt, _ := NewPendingTracker(createMockArgs())
		pt.Start("", pending.KindSingle, createArtifact(1))
		assert.Empty(t, pt.GetAll())
	})
	t.Run("should register an executing record", func(t *testing.T) {
		t.Parallel()

		saved := 0
		args := createMockArgs()
		args.Persister = &pendingMocks.PersisterStub{
			SaveCalled: func(record *pending.Record) error {
				saved++
				return nil
			},
		}
		pt, _ := NewPendingTracker(args)
		pt.Start("tx1", pending.KindSingle, createArtifact(1))

		record, found := pt.Get("tx1")
		require.True(t, found)
		assert.Equal(t, pending.StatusExecuting, record.Status)
		assert.Equal(t, pending.KindSingle, record.Kind)
		assert.Equal(t, uint64(1), record.Artifact.SafeNonce)
		assert.False(t, record.StartedAt.IsZero())
		assert.Nil(t, record.CompletedAt)
		assert.Equal(t, 1, saved)
	})
	t.Run("start on a terminal record should restart it", func(t *testing.T) {
		t.Parallel()

		pt, _ := NewPendingTracker(createMockArgs())
		pt.Start("tx1", pending.KindSingle, createArtifact(1))
		pt.MarkError("tx1", errors.New("failed"))
		pt.Start("tx1", pending.KindRelay, pending.Artifact{ChainID: "1", TaskID: "task"})

		record, _ := pt.Get("tx1")
		assert.Equal(t, pending.StatusExecuting, record.Status)
		assert.Equal(t, pending.KindRelay, record.Kind)
		assert.Equal(t, "task", record.Artifact.TaskID)
		assert.Empty(t, record.Error)
		assert.Nil(t, record.CompletedAt)
	})
	t.Run("persister error should not propagate", func(t *testing.T) {
		t.Parallel()

		args := createMockArgs()
		args.Persister = &pendingMocks.PersisterStub{
			SaveCalled: func(record *pending.Record) error {
				return errors.New("redis down")
			},
		}
		pt, _ := NewPendingTracker(args)
		pt.Start("tx1", pending.KindSingle, createArtifact(1))

		_, found := pt.Get("tx1")
		assert.True(t, found)
	})
}

func TestPendingTracker_MarkSuccess(t *testing.T) {
	t.Parallel()

	t.Run("unknown txID should do nothing", func(t *testing.T) {
		t.Parallel()

		pt, _ := NewPendingTracker(createMockArgs())
		pt.MarkSuccess("missing", testHash)
		_, found := pt.Get("missing")
		assert.False(t, found)
	})
	t.Run("should move executing record to success", func(t *testing.T) {
		t.Parallel()

		newHash := common.HexToHash("0x02")
		pt, _ := NewPendingTracker(createMockArgs())
		pt.Start("tx1", pending.KindSingle, createArtifact(1))
		pt.MarkSuccess("tx1", newHash)

		record, _ := pt.Get("tx1")
		assert.Equal(t, pending.StatusSuccess, record.Status)
		assert.Equal(t, newHash, record.Artifact.TxHash)
		assert.NotNil(t, record.CompletedAt)
		assert.True(t, record.IsTerminal())
	})
	t.Run("empty hash should keep the artifact hash", func(t *testing.T) {
		t.Parallel()

		pt, _ := NewPendingTracker(createMockArgs())
		pt.Start("tx1", pending.KindSingle, createArtifact(1))
		pt.MarkSuccess("tx1", common.Hash{})

		record, _ := pt.Get("tx1")
		assert.Equal(t, testHash, record.Artifact.TxHash)
	})
	t.Run("terminal record should not change", func(t *testing.T) {
		t.Parallel()

		pt, _ := NewPendingTracker(createMockArgs())
		pt.Start("tx1", pending.KindSingle, createArtifact(1))
		pt.MarkError("tx1", errors.New("reverted"))
		pt.MarkSuccess("tx1", testHash)

		record, _ := pt.Get("tx1")
		assert.Equal(t, pending.StatusError, record.Status)
		assert.Equal(t, "reverted", record.Error)
	})
}

func TestPendingTracker_MarkError(t *testing.T) {
	t.Parallel()

	t.Run("should move executing record to error", func(t *testing.T) {
		t.Parallel()

		pt, _ := NewPendingTracker(createMockArgs())
		pt.Start("tx1", pending.KindRelay, createArtifact(1))
		pt.MarkError("tx1", process.ErrRelayFailed)

		record, _ := pt.Get("tx1")
		assert.Equal(t, pending.StatusError, record.Status)
		assert.Equal(t, process.ErrRelayFailed.Error(), record.Error)
	})
	t.Run("success record should not change", func(t *testing.T) {
		t.Parallel()

		pt, _ := NewPendingTracker(createMockArgs())
		pt.Start("tx1", pending.KindSingle, createArtifact(1))
		pt.MarkSuccess("tx1", testHash)
		pt.MarkError("tx1", process.ErrReverted)

		record, _ := pt.Get("tx1")
		assert.Equal(t, pending.StatusSuccess, record.Status)
		assert.Empty(t, record.Error)
	})
}

func TestPendingTracker_Clear(t *testing.T) {
	t.Parallel()

	removed := make([]string, 0)
	args := createMockArgs()
	args.Persister = &pendingMocks.PersisterStub{
		RemoveCalled: func(txID string) error {
			removed = append(removed, txID)
			return nil
		},
	}
	pt, _ := NewPendingTracker(args)
	pt.Start("tx1", pending.KindSingle, createArtifact(1))
	pt.MarkSuccess("tx1", testHash)
	pt.Start("tx2", pending.KindSingle, createArtifact(2))

	pt.Clear("tx1")
	pt.Clear("tx2")
	pt.Clear("missing")

	assert.Empty(t, pt.GetAll())
	assert.Equal(t, []string{"tx1", "tx2"}, removed)
}

func TestPendingTracker_GetShouldReturnCopies(t *testing.T) {
	t.Parallel()

	pt, _ := NewPendingTracker(createMockArgs())
	pt.Start("tx1", pending.KindSingle, createArtifact(1))

	record, _ := pt.Get("tx1")
	record.Status = pending.StatusError

	stored, _ := pt.Get("tx1")
	assert.Equal(t, pending.StatusExecuting, stored.Status)
}

func TestPendingTracker_GetAllShouldBeOrdered(t *testing.T) {
	t.Parallel()

	pt, _ := NewPendingTracker(createMockArgs())
	now := time.Unix(1700000000, 0)
	pt.getTimeHandler = func() time.Time {
		now = now.Add(time.Second)
		return now
	}

	pt.Start("b", pending.KindSingle, createArtifact(1))
	pt.Start("a", pending.KindSingle, createArtifact(2))
	pt.Start("c", pending.KindSingle, createArtifact(3))

	records := pt.GetAll()
	require.Len(t, records, 3)
	assert.Equal(t, "b", records[0].TxID)
	assert.Equal(t, "a", records[1].TxID)
	assert.Equal(t, "c", records[2].TxID)
}

func TestPendingTracker_FindBySafeNonce(t *testing.T) {
	t.Parallel()

	pt, _ := NewPendingTracker(createMockArgs())
	currentTime := time.Unix(1700000000, 0)
	pt.getTimeHandler = func() time.Time {
		currentTime = currentTime.Add(time.Second)
		return currentTime
	}
	pt.Start("tx2", pending.KindSingle, createArtifact(5))
	pt.Start("tx1", pending.KindRelay, createArtifact(5))
	pt.Start("activation", pending.KindRelay, pending.Artifact{ChainID: "1", SafeAddress: testSafe})

	records := pt.FindBySafeNonce("1", testSafe, 5)
	require.Len(t, records, 2)
	assert.Equal(t, "tx2", records[0].TxID)
	assert.Equal(t, "tx1", records[1].TxID)

	assert.Empty(t, pt.FindBySafeNonce("1", testSafe, 6))
	assert.Empty(t, pt.FindBySafeNonce("5", testSafe, 5))
	assert.Empty(t, pt.FindBySafeNonce("1", testSafe, 0))
}

type mapPersister struct {
	mut     sync.Mutex
	records map[string]*pending.Record
}

func newMapPersister() *mapPersister {
	return &mapPersister{records: make(map[string]*pending.Record)}
}

func (mp *mapPersister) Save(record *pending.Record) error {
	mp.mut.Lock()
	mp.records[record.TxID] = record.Clone()
	mp.mut.Unlock()

	return nil
}

func (mp *mapPersister) Remove(txID string) error {
	mp.mut.Lock()
	delete(mp.records, txID)
	mp.mut.Unlock()

	return nil
}

func (mp *mapPersister) LoadAll() ([]*pending.Record, error) {
	mp.mut.Lock()
	defer mp.mut.Unlock()

	records := make([]*pending.Record, 0, len(mp.records))
	for _, record := range mp.records {
		records = append(records, record.Clone())
	}

	return records, nil
}

func (mp *mapPersister) IsInterfaceNil() bool {
	return mp == nil
}

func TestPendingTracker_PersistedStateFollowsMemory(t *testing.T) {
	t.Parallel()

	t.Run("late save of a cleared record should be skipped", func(t *testing.T) {
		t.Parallel()

		persister := newMapPersister()
		args := createMockArgs()
		args.Persister = persister
		pt, _ := NewPendingTracker(args)

		pt.Start("tx1", pending.KindSingle, createArtifact(1))
		pt.mutRecords.RLock()
		stale := pt.records["tx1"]
		pt.mutRecords.RUnlock()

		pt.Clear("tx1")
		pt.persistIfTracked(stale)

		restored, _ := persister.LoadAll()
		assert.Empty(t, restored)
	})
	t.Run("concurrent completions and clears should leave no orphan", func(t *testing.T) {
		t.Parallel()

		persister := newMapPersister()
		args := createMockArgs()
		args.Persister = persister
		pt, _ := NewPendingTracker(args)

		numTxs := 20
		wg := sync.WaitGroup{}
		for i := 0; i < numTxs; i++ {
			txID := fmt.Sprintf("tx%d", i)
			pt.Start(txID, pending.KindRelay, createArtifact(uint64(i)))

			wg.Add(2)
			go func() {
				defer wg.Done()
				pt.MarkError(txID, process.ErrRelayFailed)
			}()
			go func() {
				defer wg.Done()
				pt.Clear(txID)
			}()
		}
		wg.Wait()

		assert.Empty(t, pt.GetAll())
		restored, _ := persister.LoadAll()
		assert.Empty(t, restored)

		pt.Start("kept", pending.KindSingle, createArtifact(1))
		pt.MarkSuccess("kept", testHash)
		restored, _ = persister.LoadAll()
		require.Len(t, restored, 1)
		assert.Equal(t, pending.StatusSuccess, restored[0].Status)
	})
}

func TestPendingTracker_HandlersAndMetrics(t *testing.T) {
	t.Parallel()

	var mutMetric sync.Mutex
	metricValue := uint64(0)
	args := createMockArgs()
	args.AppStatusHandler = &statusHandler.AppStatusHandlerStub{
		SetUInt64ValueHandler: func(key string, value uint64) {
			if key != safeCommon.MetricPendingExecutions {
				return
			}
			mutMetric.Lock()
			metricValue = value
			mutMetric.Unlock()
		},
	}
	pt, _ := NewPendingTracker(args)

	changes := make([]pending.ChangeType, 0)
	pt.RegisterHandler(nil)
	pt.RegisterHandler(func(record *pending.Record, change pending.ChangeType) {
		assert.Equal(t, "tx1", record.TxID)
		changes = append(changes, change)
	})

	pt.Start("tx1", pending.KindSingle, createArtifact(1))
	mutMetric.Lock()
	assert.Equal(t, uint64(1), metricValue)
	mutMetric.Unlock()

	pt.MarkError("tx1", process.ErrReverted)
	mutMetric.Lock()
	assert.Equal(t, uint64(0), metricValue)
	mutMetric.Unlock()

	pt.MarkSuccess("tx1", testHash)
	pt.Clear("tx1")

	expected := []pending.ChangeType{pending.ChangeStarted, pending.ChangeFailed, pending.ChangeCleared}
	assert.Equal(t, expected, changes)
}

func TestPendingTracker_ConcurrentOperations(t *testing.T) {
	t.Parallel()

	pt, _ := NewPendingTracker(createMockArgs())

	numCalls := 100
	wg := sync.WaitGroup{}
	wg.Add(numCalls)
	for i := 0; i < numCalls; i++ {
		go func(idx int) {
			defer wg.Done()

			switch idx % 6 {
			case 0:
				pt.Start("tx", pending.KindSingle, createArtifact(uint64(idx)))
			case 1:
				pt.MarkSuccess("tx", testHash)
			case 2:
				pt.MarkError("tx", process.ErrReverted)
			case 3:
				pt.Clear("tx")
			case 4:
				_ = pt.GetAll()
			case 5:
				_ = pt.FindBySafeNonce("1", testSafe, uint64(idx))
			}
		}(i)
	}
	wg.Wait()
}
