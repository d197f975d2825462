package reconciliation

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-safe-go/config"
	"github.com/multiversx/mx-chain-safe-go/data/pending"
	"github.com/multiversx/mx-chain-safe-go/data/safetx"
	"github.com/multiversx/mx-chain-safe-go/process"
	"github.com/multiversx/mx-chain-safe-go/testscommon/chainMocks"
	"github.com/multiversx/mx-chain-safe-go/testscommon/pendingMocks"
	"github.com/multiversx/mx-chain-safe-go/testscommon/processMocks"
	"github.com/multiversx/mx-chain-safe-go/testscommon/statusHandler"
	"github.com/multiversx/mx-chain-storage-go/lrucache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	safeCommon "github.com/multiversx/mx-chain-safe-go/common"
	pendingTracker "github.com/multiversx/mx-chain-safe-go/process/pending"
)

const (
	testChainID = "11155111"
	testFactory = "0x4e1DCf7AD4e460CfD30791CCC4F9c8a4f820ec67"
)

var (
	testSafe           = common.HexToAddress("0x00000000000000000000000000000000000000aa")
	testTxHash         = common.HexToHash("0xabcd")
	testFactoryAddress = common.HexToAddress(testFactory)
)

func createSeenCache(t *testing.T) SeenCache {
	cache, err := lrucache.NewCache(100)
	require.Nil(t, err)

	return cache
}

func createMockArgsHistoryReconciler(t *testing.T) ArgsHistoryReconciler {
	return ArgsHistoryReconciler{
		PendingTracker:  &pendingMocks.PendingTrackerStub{},
		DetailsProvider: &processMocks.TransactionDetailsProviderStub{},
		ChainsConfig: &chainMocks.ChainsConfigStub{
			ChainConfigCalled: func(chainID string) (config.ChainConfig, error) {
				return config.ChainConfig{ChainID: chainID, ProxyFactory: testFactory}, nil
			},
		},
		OwnedSafesInvalidator: &processMocks.OwnedSafesInvalidatorStub{},
		SeenCache:             createSeenCache(t),
		AppStatusHandler:      &statusHandler.AppStatusHandlerStub{},
	}
}

func createTracker(t *testing.T) process.PendingTracker {
	tracker, err := pendingTracker.NewPendingTracker(pendingTracker.ArgsPendingTracker{
		AppStatusHandler: &statusHandler.AppStatusHandlerStub{},
	})
	require.Nil(t, err)

	return tracker
}

func createMultisigItem(txID string, nonce uint64, info safetx.TxInfo) *safetx.TransactionItem {
	return &safetx.TransactionItem{
		Transaction: safetx.TransactionSummary{
			ID:            txID,
			TxStatus:      safetx.TxStatusSuccess,
			TxHash:        testTxHash,
			TxInfo:        info,
			ExecutionInfo: &safetx.MultisigExecutionInfo{Nonce: nonce, ConfirmationsRequired: 2, ConfirmationsSubmitted: 2},
		},
	}
}

func createTransfer() safetx.TxInfo {
	return &safetx.TransferInfo{Value: "1"}
}

func startRecord(tracker process.PendingTracker, txID string, kind pending.ExecutionKind, nonce uint64) {
	tracker.Start(txID, kind, pending.Artifact{
		ChainID:      testChainID,
		SafeAddress:  testSafe,
		SafeNonce:    nonce,
		HasSafeNonce: true,
		TaskID:       "task",
	})
}

func TestNewHistoryReconciler(t *testing.T) {
	t.Parallel()

	t.Run("nil pending tracker should error", func(t *testing.T) {
		t.Parallel()

		args := createMockArgsHistoryReconciler(t)
		args.PendingTracker = nil
		hr, err := NewHistoryReconciler(args)
		assert.True(t, check.IfNil(hr))
		assert.Equal(t, process.ErrNilPendingTracker, err)
	})
	t.Run("nil details provider should error", func(t *testing.T) {
		t.Parallel()

		args := createMockArgsHistoryReconciler(t)
		args.DetailsProvider = nil
		hr, err := NewHistoryReconciler(args)
		assert.True(t, check.IfNil(hr))
		assert.Equal(t, process.ErrNilTransactionDetailsProvider, err)
	})
	t.Run("nil chains config should error", func(t *testing.T) {
		t.Parallel()

		args := createMockArgsHistoryReconciler(t)
		args.ChainsConfig = nil
		hr, err := NewHistoryReconciler(args)
		assert.True(t, check.IfNil(hr))
		assert.Equal(t, process.ErrNilChainsConfig, err)
	})
	t.Run("nil owned safes invalidator should error", func(t *testing.T) {
		t.Parallel()

		args := createMockArgsHistoryReconciler(t)
		args.OwnedSafesInvalidator = nil
		hr, err := NewHistoryReconciler(args)
		assert.True(t, check.IfNil(hr))
		assert.Equal(t, ErrNilOwnedSafesInvalidator, err)
	})
	t.Run("nil seen cache should error", func(t *testing.T) {
		t.Parallel()

		args := createMockArgsHistoryReconciler(t)
		args.SeenCache = nil
		hr, err := NewHistoryReconciler(args)
		assert.True(t, check.IfNil(hr))
		assert.Equal(t, ErrNilSeenCache, err)
	})
	t.Run("nil app status handler should error", func(t *testing.T) {
		t.Parallel()

		args := createMockArgsHistoryReconciler(t)
		args.AppStatusHandler = nil
		hr, err := NewHistoryReconciler(args)
		assert.True(t, check.IfNil(hr))
		assert.Equal(t, process.ErrNilAppStatusHandler, err)
	})
	t.Run("should work", func(t *testing.T) {
		t.Parallel()

		hr, err := NewHistoryReconciler(createMockArgsHistoryReconciler(t))
		assert.False(t, check.IfNil(hr))
		assert.Nil(t, err)
	})
}

func TestHistoryReconciler_ReconcilePending(t *testing.T) {
	t.Parallel()

	t.Run("matching transaction should mark success with the executed hash", func(t *testing.T) {
		t.Parallel()

		tracker := createTracker(t)
		startRecord(tracker, "multisig_1", pending.KindSingle, 5)

		args := createMockArgsHistoryReconciler(t)
		args.PendingTracker = tracker
		hr, _ := NewHistoryReconciler(args)

		result := hr.Reconcile(testChainID, testSafe, []safetx.HistoryItem{createMultisigItem("multisig_1", 5, createTransfer())})
		assert.Equal(t, []string{"multisig_1"}, result.Confirmed)
		assert.Empty(t, result.Replaced)

		record, found := tracker.Get("multisig_1")
		require.True(t, found)
		assert.Equal(t, pending.StatusSuccess, record.Status)
		assert.Equal(t, testTxHash, record.Artifact.TxHash)
	})
	t.Run("same nonce with another transaction should clear without terminal status", func(t *testing.T) {
		t.Parallel()

		cleared := make([]string, 0)
		args := createMockArgsHistoryReconciler(t)
		args.PendingTracker = &pendingMocks.PendingTrackerStub{
			FindBySafeNonceCalled: func(chainID string, safe common.Address, nonce uint64) []*pending.Record {
				assert.Equal(t, testChainID, chainID)
				assert.Equal(t, testSafe, safe)
				assert.Equal(t, uint64(5), nonce)

				return []*pending.Record{{TxID: "multisig_1", Status: pending.StatusExecuting}}
			},
			MarkSuccessCalled: func(txID string, txHash common.Hash) {
				assert.Fail(t, "should not mark success")
			},
			MarkErrorCalled: func(txID string, reason error) {
				assert.Fail(t, "should not mark error")
			},
			ClearCalled: func(txID string) {
				cleared = append(cleared, txID)
			},
		}
		hr, _ := NewHistoryReconciler(args)

		result := hr.Reconcile(testChainID, testSafe, []safetx.HistoryItem{createMultisigItem("multisig_2", 5, createTransfer())})
		assert.Equal(t, []string{"multisig_1"}, cleared)
		assert.Equal(t, []string{"multisig_1"}, result.Replaced)
		assert.Empty(t, result.Confirmed)
	})
	t.Run("replaced record should be removed from the tracker", func(t *testing.T) {
		t.Parallel()

		tracker := createTracker(t)
		startRecord(tracker, "multisig_1", pending.KindSingle, 5)

		args := createMockArgsHistoryReconciler(t)
		args.PendingTracker = tracker
		hr, _ := NewHistoryReconciler(args)

		_ = hr.Reconcile(testChainID, testSafe, []safetx.HistoryItem{createMultisigItem("multisig_2", 5, createTransfer())})
		_, found := tracker.Get("multisig_1")
		assert.False(t, found)
	})
	t.Run("records without a safe nonce should not be matched", func(t *testing.T) {
		t.Parallel()

		activationID := "activation_" + testChainID + "_" + testSafe.Hex()
		for i := 0; i < 50; i++ {
			tracker := createTracker(t)
			tracker.Start(activationID, pending.KindRelay, pending.Artifact{
				ChainID:     testChainID,
				SafeAddress: testSafe,
				TaskID:      "deployment",
			})
			startRecord(tracker, "multisig_first", pending.KindSingle, 0)

			args := createMockArgsHistoryReconciler(t)
			args.PendingTracker = tracker
			hr, _ := NewHistoryReconciler(args)

			result := hr.Reconcile(testChainID, testSafe, []safetx.HistoryItem{createMultisigItem("multisig_first", 0, createTransfer())})
			require.Equal(t, []string{"multisig_first"}, result.Confirmed)
			require.Empty(t, result.Replaced)

			record, found := tracker.Get("multisig_first")
			require.True(t, found)
			require.Equal(t, pending.StatusSuccess, record.Status)

			activationRecord, found := tracker.Get(activationID)
			require.True(t, found)
			require.Equal(t, pending.StatusExecuting, activationRecord.Status)
		}
	})
	t.Run("every record at the executed nonce should be resolved", func(t *testing.T) {
		t.Parallel()

		tracker := createTracker(t)
		startRecord(tracker, "multisig_a", pending.KindSingle, 5)
		startRecord(tracker, "multisig_b", pending.KindRelay, 5)

		args := createMockArgsHistoryReconciler(t)
		args.PendingTracker = tracker
		hr, _ := NewHistoryReconciler(args)

		result := hr.Reconcile(testChainID, testSafe, []safetx.HistoryItem{createMultisigItem("multisig_b", 5, createTransfer())})
		assert.Equal(t, []string{"multisig_b"}, result.Confirmed)
		assert.Equal(t, []string{"multisig_a"}, result.Replaced)

		_, found := tracker.Get("multisig_a")
		assert.False(t, found)
		record, found := tracker.Get("multisig_b")
		require.True(t, found)
		assert.Equal(t, pending.StatusSuccess, record.Status)
	})
	t.Run("markers and module transactions should be ignored", func(t *testing.T) {
		t.Parallel()

		args := createMockArgsHistoryReconciler(t)
		args.PendingTracker = &pendingMocks.PendingTrackerStub{
			FindBySafeNonceCalled: func(chainID string, safe common.Address, nonce uint64) []*pending.Record {
				assert.Fail(t, "should not look for pending records")
				return nil
			},
		}
		hr, _ := NewHistoryReconciler(args)

		moduleItem := createMultisigItem("module_1", 0, createTransfer())
		moduleItem.Transaction.ExecutionInfo = &safetx.ModuleExecutionInfo{}
		items := []safetx.HistoryItem{
			&safetx.DateLabel{Timestamp: 1700000000},
			&safetx.Label{Label: "Next"},
			&safetx.ConflictHeader{Nonce: 5},
			moduleItem,
			nil,
		}

		result := hr.Reconcile(testChainID, testSafe, items)
		assert.Empty(t, result.Confirmed)
		assert.Empty(t, result.Replaced)
		assert.Zero(t, result.SafeCreations)
	})
	t.Run("reprocessing the same batch should be idempotent", func(t *testing.T) {
		t.Parallel()

		tracker := createTracker(t)
		startRecord(tracker, "multisig_1", pending.KindSingle, 5)
		startRecord(tracker, "multisig_3", pending.KindSingle, 6)

		reconciled := uint64(0)
		args := createMockArgsHistoryReconciler(t)
		args.PendingTracker = tracker
		args.AppStatusHandler = &statusHandler.AppStatusHandlerStub{
			AddUint64Handler: func(key string, value uint64) {
				if key == safeCommon.MetricReconciledTransactions {
					reconciled += value
				}
			},
		}
		hr, _ := NewHistoryReconciler(args)

		items := []safetx.HistoryItem{
			createMultisigItem("multisig_2", 6, createTransfer()),
			createMultisigItem("multisig_1", 5, createTransfer()),
		}
		first := hr.Reconcile(testChainID, testSafe, items)
		assert.Equal(t, []string{"multisig_3"}, first.Replaced)
		assert.Equal(t, []string{"multisig_1"}, first.Confirmed)

		firstRecord, _ := tracker.Get("multisig_1")
		second := hr.Reconcile(testChainID, testSafe, items)
		assert.Empty(t, second.Confirmed)
		assert.Empty(t, second.Replaced)

		secondRecord, _ := tracker.Get("multisig_1")
		assert.Equal(t, firstRecord, secondRecord)
		assert.Equal(t, uint64(1), reconciled)
	})
	t.Run("relayed execution should be confirmed by the history entry", func(t *testing.T) {
		t.Parallel()

		tracker := createTracker(t)
		startRecord(tracker, "multisig_0xaa_0x01", pending.KindRelay, 5)

		record, _ := tracker.Get("multisig_0xaa_0x01")
		assert.Equal(t, pending.KindRelay, record.Kind)
		assert.Equal(t, pending.StatusExecuting, record.Status)

		args := createMockArgsHistoryReconciler(t)
		args.PendingTracker = tracker
		hr, _ := NewHistoryReconciler(args)

		_ = hr.Reconcile(testChainID, testSafe, []safetx.HistoryItem{createMultisigItem("multisig_0xaa_0x01", 5, createTransfer())})

		record, _ = tracker.Get("multisig_0xaa_0x01")
		assert.Equal(t, pending.StatusSuccess, record.Status)
		assert.Equal(t, testTxHash, record.Artifact.TxHash)
	})
}

func TestHistoryReconciler_SafeCreations(t *testing.T) {
	t.Parallel()

	createProxyInfo := func() safetx.TxInfo {
		return &safetx.CustomInfo{To: testFactoryAddress, MethodName: "createProxyWithNonce"}
	}
	batchInfo := func() safetx.TxInfo {
		return &safetx.CustomInfo{To: common.HexToAddress("0x01"), MethodName: "multiSend", ActionCount: 2}
	}
	batchDetails := &safetx.TransactionDetails{
		TxData: &safetx.TxData{
			To: common.HexToAddress("0x01"),
			DataDecoded: &safetx.DataDecoded{
				Method: "multiSend",
				Parameters: []safetx.DecodedParameter{
					{
						Name: "transactions",
						ValueDecoded: []*safetx.MultiSendEntry{
							{To: common.HexToAddress("0x02")},
							{To: testFactoryAddress, DataDecoded: &safetx.DataDecoded{Method: "createProxyWithNonce"}},
						},
					},
				},
			},
		},
	}

	t.Run("direct factory call should invalidate once per transaction", func(t *testing.T) {
		t.Parallel()

		numInvalidations := uint32(0)
		args := createMockArgsHistoryReconciler(t)
		args.OwnedSafesInvalidator = &processMocks.OwnedSafesInvalidatorStub{
			InvalidateChainCalled: func(chainID string) {
				assert.Equal(t, testChainID, chainID)
				atomic.AddUint32(&numInvalidations, 1)
			},
		}
		hr, _ := NewHistoryReconciler(args)

		items := []safetx.HistoryItem{createMultisigItem("multisig_1", 1, createProxyInfo())}
		result := hr.Reconcile(testChainID, testSafe, items)
		assert.Equal(t, 1, result.SafeCreations)

		result = hr.Reconcile(testChainID, testSafe, items)
		assert.Zero(t, result.SafeCreations)
		assert.Equal(t, uint32(1), atomic.LoadUint32(&numInvalidations))
	})
	t.Run("batch containing a factory call should invalidate", func(t *testing.T) {
		t.Parallel()

		numDetailsCalls := uint32(0)
		numInvalidations := uint32(0)
		args := createMockArgsHistoryReconciler(t)
		args.DetailsProvider = &processMocks.TransactionDetailsProviderStub{
			GetTransactionDetailsCalled: func(ctx context.Context, chainID string, txID string) (*safetx.TransactionDetails, error) {
				atomic.AddUint32(&numDetailsCalls, 1)
				assert.Equal(t, "multisig_batch", txID)
				return batchDetails, nil
			},
		}
		args.OwnedSafesInvalidator = &processMocks.OwnedSafesInvalidatorStub{
			InvalidateChainCalled: func(chainID string) {
				atomic.AddUint32(&numInvalidations, 1)
			},
		}
		hr, _ := NewHistoryReconciler(args)

		items := []safetx.HistoryItem{createMultisigItem("multisig_batch", 1, batchInfo())}
		result := hr.Reconcile(testChainID, testSafe, items)
		assert.Equal(t, 1, result.SafeCreations)

		_ = hr.Reconcile(testChainID, testSafe, items)
		assert.Equal(t, uint32(1), atomic.LoadUint32(&numDetailsCalls))
		assert.Equal(t, uint32(1), atomic.LoadUint32(&numInvalidations))
	})
	t.Run("details failure should retry on the next batch", func(t *testing.T) {
		t.Parallel()

		numDetailsCalls := uint32(0)
		args := createMockArgsHistoryReconciler(t)
		args.DetailsProvider = &processMocks.TransactionDetailsProviderStub{
			GetTransactionDetailsCalled: func(ctx context.Context, chainID string, txID string) (*safetx.TransactionDetails, error) {
				if atomic.AddUint32(&numDetailsCalls, 1) == 1 {
					return nil, errors.New("gateway unavailable")
				}

				return batchDetails, nil
			},
		}
		hr, _ := NewHistoryReconciler(args)

		items := []safetx.HistoryItem{createMultisigItem("multisig_batch", 1, batchInfo())}
		result := hr.Reconcile(testChainID, testSafe, items)
		assert.Zero(t, result.SafeCreations)
		assert.True(t, result.Incomplete)

		result = hr.Reconcile(testChainID, testSafe, items)
		assert.Equal(t, 1, result.SafeCreations)
		assert.False(t, result.Incomplete)
	})
	t.Run("failed or non creation transactions should not invalidate", func(t *testing.T) {
		t.Parallel()

		args := createMockArgsHistoryReconciler(t)
		args.OwnedSafesInvalidator = &processMocks.OwnedSafesInvalidatorStub{
			InvalidateChainCalled: func(chainID string) {
				assert.Fail(t, "should not invalidate")
			},
		}
		hr, _ := NewHistoryReconciler(args)

		failed := createMultisigItem("multisig_1", 1, createProxyInfo())
		failed.Transaction.TxStatus = safetx.TxStatusFailed
		otherContract := createMultisigItem("multisig_2", 2, &safetx.CustomInfo{To: common.HexToAddress("0x03"), MethodName: "createProxyWithNonce"})
		transfer := createMultisigItem("multisig_3", 3, createTransfer())

		result := hr.Reconcile(testChainID, testSafe, []safetx.HistoryItem{failed, otherContract, transfer})
		assert.Zero(t, result.SafeCreations)
	})
	t.Run("unknown chain should skip creation checks", func(t *testing.T) {
		t.Parallel()

		args := createMockArgsHistoryReconciler(t)
		args.ChainsConfig = &chainMocks.ChainsConfigStub{
			ChainConfigCalled: func(chainID string) (config.ChainConfig, error) {
				return config.ChainConfig{}, process.ErrUnknownChain
			},
		}
		hr, _ := NewHistoryReconciler(args)

		result := hr.Reconcile(testChainID, testSafe, []safetx.HistoryItem{createMultisigItem("multisig_1", 1, createProxyInfo())})
		assert.Zero(t, result.SafeCreations)
	})
}
