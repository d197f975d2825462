package facade

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-safe-go/config"
	"github.com/multiversx/mx-chain-safe-go/data/pending"
	"github.com/multiversx/mx-chain-safe-go/data/safetx"
	"github.com/multiversx/mx-chain-safe-go/gateway"
	"github.com/multiversx/mx-chain-safe-go/process"
	"github.com/multiversx/mx-chain-safe-go/process/activation"
	"github.com/multiversx/mx-chain-safe-go/process/execution"
	"github.com/multiversx/mx-chain-safe-go/process/proposal"
	"github.com/multiversx/mx-chain-safe-go/process/reconciliation"
	"github.com/multiversx/mx-chain-safe-go/testscommon/executionMocks"
	"github.com/multiversx/mx-chain-safe-go/testscommon/pendingMocks"
	"github.com/multiversx/mx-chain-safe-go/testscommon/processMocks"
	"github.com/multiversx/mx-chain-safe-go/testscommon/reconciliationMocks"
	"github.com/multiversx/mx-chain-safe-go/testscommon/statusHandler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	safeCommon "github.com/multiversx/mx-chain-safe-go/common"
)

var (
	expectedErr = errors.New("expected error")
	testSafe    = common.HexToAddress("0x00000000000000000000000000000000000000aa")
	testOwner   = common.HexToAddress("0x00000000000000000000000000000000000000bb")
	testWallet  = common.HexToAddress("0x00000000000000000000000000000000000000cc")
)

func createMockArguments() ArgsSafeNodeFacade {
	return ArgsSafeNodeFacade{
		WebServerConfig: config.WebServerConfig{
			RestApiInterface: "127.0.0.1:8080",
			Antiflood: config.WebServerAntifloodConfig{
				WebServerAntifloodEnabled:    true,
				SimultaneousRequests:         1,
				SameSourceRequests:           1,
				SameSourceResetIntervalInSec: 1,
			},
		},
		ApiRoutesConfig: config.ApiRoutesConfig{APIPackages: map[string]config.APIPackageConfig{
			"node": {
				Routes: []config.RouteConfig{
					{Name: "/status"},
				},
			},
		}},
		PendingTracker:       &pendingMocks.PendingTrackerStub{},
		ChangesSource:        &pendingMocks.ChangesSourceStub{},
		Gateway:              &processMocks.GatewayStub{},
		Dispatcher:           &executionMocks.DispatcherStub{},
		Proposer:             &processMocks.ProposerStub{},
		Activator:            &processMocks.ActivatorStub{},
		Reconciler:           &reconciliationMocks.ReconcilerStub{},
		OwnedSafesProvider:   &processMocks.OwnedSafesProviderStub{},
		StatusMetrics:        &statusHandler.StatusMetricsStub{},
		MetricsHandlerSource: &statusHandler.StatusMetricsStub{},
	}
}

func createMultisigDetails() *safetx.TransactionDetails {
	return &safetx.TransactionDetails{
		TxID:        "multisig_0xaa_0x01",
		SafeAddress: testSafe,
		TxData: &safetx.TxData{
			To:    testOwner,
			Value: "10",
		},
		DetailedExecutionInfo: &safetx.MultisigExecutionDetails{
			Nonce:                 3,
			ConfirmationsRequired: 1,
			Confirmations: []*safetx.Confirmation{
				{Signer: testOwner, Signature: []byte{1, 2, 3}},
			},
		},
	}
}

func TestNewSafeNodeFacade(t *testing.T) {
	t.Parallel()

	testNilArg := func(mutate func(args *ArgsSafeNodeFacade), expectedErr error) func(t *testing.T) {
		return func(t *testing.T) {
			t.Parallel()

			args := createMockArguments()
			mutate(&args)
			nf, err := NewSafeNodeFacade(args)
			assert.True(t, check.IfNil(nf))
			assert.True(t, errors.Is(err, expectedErr))
		}
	}

	t.Run("nil pending tracker should error", testNilArg(func(args *ArgsSafeNodeFacade) { args.PendingTracker = nil }, ErrNilPendingTracker))
	t.Run("nil changes source should error", testNilArg(func(args *ArgsSafeNodeFacade) { args.ChangesSource = nil }, ErrNilChangesSource))
	t.Run("nil gateway should error", testNilArg(func(args *ArgsSafeNodeFacade) { args.Gateway = nil }, ErrNilGateway))
	t.Run("nil dispatcher should error", testNilArg(func(args *ArgsSafeNodeFacade) { args.Dispatcher = nil }, ErrNilDispatcher))
	t.Run("nil proposer should error", testNilArg(func(args *ArgsSafeNodeFacade) { args.Proposer = nil }, ErrNilProposer))
	t.Run("nil activator should error", testNilArg(func(args *ArgsSafeNodeFacade) { args.Activator = nil }, ErrNilActivator))
	t.Run("nil reconciler should error", testNilArg(func(args *ArgsSafeNodeFacade) { args.Reconciler = nil }, ErrNilReconciler))
	t.Run("nil owned safes provider should error", testNilArg(func(args *ArgsSafeNodeFacade) { args.OwnedSafesProvider = nil }, ErrNilOwnedSafesProvider))
	t.Run("nil status metrics should error", testNilArg(func(args *ArgsSafeNodeFacade) { args.StatusMetrics = nil }, ErrNilStatusMetrics))
	t.Run("nil metrics handler source should error", testNilArg(func(args *ArgsSafeNodeFacade) { args.MetricsHandlerSource = nil }, ErrNilMetricsHandlerProvider))
	t.Run("empty api routes config should error", testNilArg(func(args *ArgsSafeNodeFacade) { args.ApiRoutesConfig = config.ApiRoutesConfig{} }, ErrNoApiRoutesConfig))
	t.Run("invalid simultaneous requests should error", testNilArg(func(args *ArgsSafeNodeFacade) {
		args.WebServerConfig.Antiflood.SimultaneousRequests = 0
	}, ErrInvalidValue))
	t.Run("invalid same source requests should error", testNilArg(func(args *ArgsSafeNodeFacade) {
		args.WebServerConfig.Antiflood.SameSourceRequests = 0
	}, ErrInvalidValue))
	t.Run("invalid same source reset interval should error", testNilArg(func(args *ArgsSafeNodeFacade) {
		args.WebServerConfig.Antiflood.SameSourceResetIntervalInSec = 0
	}, ErrInvalidValue))
	t.Run("antiflood disabled should not check its values", func(t *testing.T) {
		t.Parallel()

		args := createMockArguments()
		args.WebServerConfig.Antiflood = config.WebServerAntifloodConfig{}
		nf, err := NewSafeNodeFacade(args)
		assert.False(t, check.IfNil(nf))
		assert.Nil(t, err)
	})
	t.Run("should work", func(t *testing.T) {
		t.Parallel()

		nf, err := NewSafeNodeFacade(createMockArguments())
		assert.False(t, check.IfNil(nf))
		assert.Nil(t, err)
	})
}

func TestSafeNodeFacade_WebServerSettings(t *testing.T) {
	t.Parallel()

	t.Run("empty rest interface should return the default one", func(t *testing.T) {
		t.Parallel()

		args := createMockArguments()
		args.WebServerConfig.RestApiInterface = ""
		nf, _ := NewSafeNodeFacade(args)

		assert.Equal(t, safeCommon.DefaultRestInterface, nf.RestApiInterface())
	})
	t.Run("configured values should be returned", func(t *testing.T) {
		t.Parallel()

		args := createMockArguments()
		args.WebServerConfig.RestApiInterface = "localhost:1111"
		args.WebServerConfig.PprofEnabled = true
		args.WebServerConfig.DebugMode = true
		nf, _ := NewSafeNodeFacade(args)

		assert.Equal(t, "localhost:1111", nf.RestApiInterface())
		assert.True(t, nf.PprofEnabled())
		assert.True(t, nf.RestAPIServerDebugMode())
	})
	t.Run("metrics should come from the status components", func(t *testing.T) {
		t.Parallel()

		args := createMockArguments()
		args.StatusMetrics = &statusHandler.StatusMetricsStub{
			StatusMetricsMapCalled: func() map[string]interface{} {
				return map[string]interface{}{safeCommon.MetricPendingExecutions: uint64(2)}
			},
		}
		args.MetricsHandlerSource = &statusHandler.StatusMetricsStub{
			HandlerCalled: func() http.Handler {
				return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusTeapot)
				})
			},
		}
		nf, _ := NewSafeNodeFacade(args)

		assert.Equal(t, uint64(2), nf.StatusMetrics()[safeCommon.MetricPendingExecutions])
		resp := httptest.NewRecorder()
		nf.MetricsHandler().ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Equal(t, http.StatusTeapot, resp.Code)
	})
}

func TestSafeNodeFacade_PendingExecutions(t *testing.T) {
	t.Parallel()

	record := &pending.Record{TxID: "tx1", Status: pending.StatusExecuting}
	clearedTxIDs := make([]string, 0)
	args := createMockArguments()
	args.PendingTracker = &pendingMocks.PendingTrackerStub{
		GetCalled: func(txID string) (*pending.Record, bool) {
			if txID == "tx1" {
				return record, true
			}
			return nil, false
		},
		GetAllCalled: func() []*pending.Record {
			return []*pending.Record{record}
		},
		ClearCalled: func(txID string) {
			clearedTxIDs = append(clearedTxIDs, txID)
		},
	}
	nf, _ := NewSafeNodeFacade(args)

	assert.Equal(t, []*pending.Record{record}, nf.GetPendingExecutions())

	found, err := nf.GetPendingExecution("tx1")
	assert.Nil(t, err)
	assert.Equal(t, record, found)

	found, err = nf.GetPendingExecution("tx2")
	assert.Nil(t, found)
	assert.True(t, errors.Is(err, ErrPendingExecutionNotFound))

	err = nf.DiscardPendingExecution("tx2")
	assert.True(t, errors.Is(err, ErrPendingExecutionNotFound))
	assert.Empty(t, clearedTxIDs)

	err = nf.DiscardPendingExecution("tx1")
	assert.Nil(t, err)
	assert.Equal(t, []string{"tx1"}, clearedTxIDs)

	assert.Equal(t, args.ChangesSource, nf.PendingChangesSource())
}

func TestSafeNodeFacade_ExecuteTransaction(t *testing.T) {
	t.Parallel()

	t.Run("empty tx id should error", func(t *testing.T) {
		t.Parallel()

		nf, _ := NewSafeNodeFacade(createMockArguments())
		artifact, err := nf.ExecuteTransaction(context.Background(), "1", "", testWallet, false)
		assert.Nil(t, artifact)
		assert.Equal(t, process.ErrEmptyTxID, err)
	})
	t.Run("gateway error should error", func(t *testing.T) {
		t.Parallel()

		args := createMockArguments()
		args.Gateway = &processMocks.GatewayStub{
			GetTransactionDetailsCalled: func(ctx context.Context, chainID string, txID string) (*safetx.TransactionDetails, error) {
				return nil, expectedErr
			},
		}
		nf, _ := NewSafeNodeFacade(args)
		artifact, err := nf.ExecuteTransaction(context.Background(), "1", "tx1", testWallet, false)
		assert.Nil(t, artifact)
		assert.Equal(t, expectedErr, err)
	})
	t.Run("module transaction should error", func(t *testing.T) {
		t.Parallel()

		args := createMockArguments()
		args.Gateway = &processMocks.GatewayStub{
			GetTransactionDetailsCalled: func(ctx context.Context, chainID string, txID string) (*safetx.TransactionDetails, error) {
				return &safetx.TransactionDetails{
					TxData:                &safetx.TxData{},
					DetailedExecutionInfo: &safetx.ModuleExecutionDetails{},
				}, nil
			},
		}
		nf, _ := NewSafeNodeFacade(args)
		artifact, err := nf.ExecuteTransaction(context.Background(), "1", "tx1", testWallet, false)
		assert.Nil(t, artifact)
		assert.True(t, errors.Is(err, process.ErrSafeTransactionNotFound))
	})
	t.Run("safe info error should error", func(t *testing.T) {
		t.Parallel()

		args := createMockArguments()
		args.Gateway = &processMocks.GatewayStub{
			GetTransactionDetailsCalled: func(ctx context.Context, chainID string, txID string) (*safetx.TransactionDetails, error) {
				return createMultisigDetails(), nil
			},
			GetSafeInfoCalled: func(ctx context.Context, chainID string, safe common.Address) (*safetx.SafeInfo, error) {
				return nil, expectedErr
			},
		}
		nf, _ := NewSafeNodeFacade(args)
		artifact, err := nf.ExecuteTransaction(context.Background(), "1", "tx1", testWallet, false)
		assert.Nil(t, artifact)
		assert.Equal(t, expectedErr, err)
	})
	t.Run("should dispatch the rebuilt transaction", func(t *testing.T) {
		t.Parallel()

		safeInfo := &safetx.SafeInfo{Address: testSafe, Threshold: 1, Owners: []common.Address{testOwner}}
		expectedArtifact := &execution.Artifact{TxHash: common.HexToHash("0x11"), SafeNonce: 3}
		args := createMockArguments()
		args.Gateway = &processMocks.GatewayStub{
			GetTransactionDetailsCalled: func(ctx context.Context, chainID string, txID string) (*safetx.TransactionDetails, error) {
				assert.Equal(t, "5", chainID)
				assert.Equal(t, "tx1", txID)
				return createMultisigDetails(), nil
			},
			GetSafeInfoCalled: func(ctx context.Context, chainID string, safe common.Address) (*safetx.SafeInfo, error) {
				assert.Equal(t, testSafe, safe)
				return safeInfo, nil
			},
		}
		args.Dispatcher = &executionMocks.DispatcherStub{
			ExecuteTransactionCalled: func(ctx context.Context, request *execution.ExecutionRequest) (*execution.Artifact, error) {
				assert.Equal(t, "5", request.ChainID)
				assert.Equal(t, "tx1", request.TxID)
				assert.Equal(t, safeInfo, request.Safe)
				assert.Equal(t, testWallet, request.Wallet)
				assert.True(t, request.UseRelay)
				assert.Equal(t, uint64(3), request.Transaction.Data.Nonce)
				assert.Equal(t, []byte{1, 2, 3}, request.Transaction.Signatures[testOwner])
				return expectedArtifact, nil
			},
		}
		nf, _ := NewSafeNodeFacade(args)
		artifact, err := nf.ExecuteTransaction(context.Background(), "5", "tx1", testWallet, true)
		assert.Nil(t, err)
		assert.Equal(t, expectedArtifact, artifact)
	})
}

func TestSafeNodeFacade_ProposeAndConfirm(t *testing.T) {
	t.Parallel()

	t.Run("nil transaction should error", func(t *testing.T) {
		t.Parallel()

		nf, _ := NewSafeNodeFacade(createMockArguments())
		details, err := nf.ProposeTransaction(context.Background(), "1", testSafe, nil, testOwner, "")
		assert.Nil(t, details)
		assert.Equal(t, ErrNilRequest, err)
	})
	t.Run("should propose with the fetched safe info", func(t *testing.T) {
		t.Parallel()

		safeInfo := &safetx.SafeInfo{Address: testSafe, Nonce: 4}
		tx := &safetx.TransactionData{To: testOwner, Nonce: 4}
		expectedDetails := &safetx.TransactionDetails{TxID: "tx1"}
		args := createMockArguments()
		args.Gateway = &processMocks.GatewayStub{
			GetSafeInfoCalled: func(ctx context.Context, chainID string, safe common.Address) (*safetx.SafeInfo, error) {
				return safeInfo, nil
			},
		}
		args.Proposer = &processMocks.ProposerStub{
			ProposeCalled: func(ctx context.Context, request *proposal.ProposeRequest) (*safetx.TransactionDetails, error) {
				assert.Equal(t, &proposal.ProposeRequest{
					ChainID: "1",
					Safe:    safeInfo,
					Tx:      tx,
					Sender:  testOwner,
					Origin:  "api",
				}, request)
				return expectedDetails, nil
			},
		}
		nf, _ := NewSafeNodeFacade(args)
		details, err := nf.ProposeTransaction(context.Background(), "1", testSafe, tx, testOwner, "api")
		assert.Nil(t, err)
		assert.Equal(t, expectedDetails, details)
	})
	t.Run("confirm and nonce should reach the proposer", func(t *testing.T) {
		t.Parallel()

		safeTxHash := common.HexToHash("0x22")
		confirmCalled := false
		args := createMockArguments()
		args.Proposer = &processMocks.ProposerStub{
			ConfirmCalled: func(ctx context.Context, request *proposal.ConfirmRequest) error {
				confirmCalled = true
				assert.Equal(t, &proposal.ConfirmRequest{ChainID: "1", SafeTxHash: safeTxHash, Signer: testOwner}, request)
				return nil
			},
			RecommendedNonceCalled: func(ctx context.Context, chainID string, safe common.Address) (uint64, error) {
				return 9, nil
			},
		}
		nf, _ := NewSafeNodeFacade(args)

		err := nf.ConfirmTransaction(context.Background(), "1", safeTxHash, testOwner)
		assert.Nil(t, err)
		assert.True(t, confirmCalled)

		nonce, err := nf.RecommendedNonce(context.Background(), "1", testSafe)
		assert.Nil(t, err)
		assert.Equal(t, uint64(9), nonce)
	})
}

func TestSafeNodeFacade_ActivateSafe(t *testing.T) {
	t.Parallel()

	undeployed := &safetx.UndeployedSafe{
		ChainID: "1",
		Address: testSafe,
		Props:   &safetx.PredictedSafeProps{Owners: []common.Address{testOwner}, Threshold: 1},
	}

	t.Run("nil request should error", func(t *testing.T) {
		t.Parallel()

		nf, _ := NewSafeNodeFacade(createMockArguments())
		result, err := nf.ActivateSafe(context.Background(), nil)
		assert.Nil(t, result)
		assert.Equal(t, ErrNilRequest, err)
	})
	t.Run("without transaction should only deploy", func(t *testing.T) {
		t.Parallel()

		args := createMockArguments()
		args.Activator = &processMocks.ActivatorStub{
			ActivateCalled: func(ctx context.Context, request *activation.ActivationRequest) (*activation.ActivationResult, error) {
				return &activation.ActivationResult{Status: activation.StatusSuccess}, nil
			},
			ActivateWithTransactionCalled: func(ctx context.Context, request *activation.ActivationRequest, tx *safetx.SafeTransaction) (*activation.ActivationResult, error) {
				require.Fail(t, "should not bundle a transaction")
				return nil, nil
			},
		}
		nf, _ := NewSafeNodeFacade(args)
		result, err := nf.ActivateSafe(context.Background(), &activation.ActivationRequest{Safe: undeployed, Wallet: testWallet})
		assert.Nil(t, err)
		assert.Equal(t, activation.StatusSuccess, result.Status)
	})
	t.Run("with transaction but no safe should error", func(t *testing.T) {
		t.Parallel()

		nf, _ := NewSafeNodeFacade(createMockArguments())
		result, err := nf.ActivateSafe(context.Background(), &activation.ActivationRequest{TxID: "tx1"})
		assert.Nil(t, result)
		assert.Equal(t, activation.ErrNilUndeployedSafe, err)
	})
	t.Run("with transaction should bundle it", func(t *testing.T) {
		t.Parallel()

		args := createMockArguments()
		args.Gateway = &processMocks.GatewayStub{
			GetTransactionDetailsCalled: func(ctx context.Context, chainID string, txID string) (*safetx.TransactionDetails, error) {
				assert.Equal(t, "1", chainID)
				return createMultisigDetails(), nil
			},
		}
		args.Activator = &processMocks.ActivatorStub{
			ActivateWithTransactionCalled: func(ctx context.Context, request *activation.ActivationRequest, tx *safetx.SafeTransaction) (*activation.ActivationResult, error) {
				assert.Equal(t, uint64(3), tx.Data.Nonce)
				assert.True(t, tx.Signatures.Has(testOwner))
				return &activation.ActivationResult{Status: activation.StatusRelayed, TaskID: "task"}, nil
			},
		}
		nf, _ := NewSafeNodeFacade(args)
		result, err := nf.ActivateSafe(context.Background(), &activation.ActivationRequest{Safe: undeployed, TxID: "tx1", UseRelay: true})
		assert.Nil(t, err)
		assert.Equal(t, "task", result.TaskID)
	})
}

func TestSafeNodeFacade_ReconcileHistory(t *testing.T) {
	t.Parallel()

	items := []safetx.HistoryItem{&safetx.DateLabel{}}

	t.Run("provided batch should be reconciled", func(t *testing.T) {
		t.Parallel()

		args := createMockArguments()
		args.Gateway = &processMocks.GatewayStub{
			GetTransactionHistoryCalled: func(ctx context.Context, chainID string, safe common.Address, cursor string) (*gateway.HistoryPage, error) {
				require.Fail(t, "should not fetch the history")
				return nil, nil
			},
		}
		args.Reconciler = &reconciliationMocks.ReconcilerStub{
			ReconcileCalled: func(chainID string, safe common.Address, batch []safetx.HistoryItem) *reconciliation.Result {
				assert.Equal(t, items, batch)
				return &reconciliation.Result{Confirmed: []string{"tx1"}}
			},
		}
		nf, _ := NewSafeNodeFacade(args)
		result, err := nf.ReconcileHistory(context.Background(), "1", testSafe, items)
		assert.Nil(t, err)
		assert.Equal(t, []string{"tx1"}, result.Confirmed)
	})
	t.Run("missing batch should fetch the first page", func(t *testing.T) {
		t.Parallel()

		args := createMockArguments()
		args.Gateway = &processMocks.GatewayStub{
			GetTransactionHistoryCalled: func(ctx context.Context, chainID string, safe common.Address, cursor string) (*gateway.HistoryPage, error) {
				assert.Empty(t, cursor)
				return &gateway.HistoryPage{Results: items}, nil
			},
		}
		reconcileCalled := false
		args.Reconciler = &reconciliationMocks.ReconcilerStub{
			ReconcileCalled: func(chainID string, safe common.Address, batch []safetx.HistoryItem) *reconciliation.Result {
				reconcileCalled = true
				assert.Equal(t, items, batch)
				return &reconciliation.Result{}
			},
		}
		nf, _ := NewSafeNodeFacade(args)
		_, err := nf.ReconcileHistory(context.Background(), "1", testSafe, nil)
		assert.Nil(t, err)
		assert.True(t, reconcileCalled)
	})
	t.Run("history fetch error should error", func(t *testing.T) {
		t.Parallel()

		args := createMockArguments()
		args.Gateway = &processMocks.GatewayStub{
			GetTransactionHistoryCalled: func(ctx context.Context, chainID string, safe common.Address, cursor string) (*gateway.HistoryPage, error) {
				return nil, expectedErr
			},
		}
		nf, _ := NewSafeNodeFacade(args)
		result, err := nf.ReconcileHistory(context.Background(), "1", testSafe, nil)
		assert.Nil(t, result)
		assert.Equal(t, expectedErr, err)
	})
}

func TestSafeNodeFacade_GetOwnedSafes(t *testing.T) {
	t.Parallel()

	args := createMockArguments()
	args.OwnedSafesProvider = &processMocks.OwnedSafesProviderStub{
		GetOwnedSafesCalled: func(ctx context.Context, chainID string, owner common.Address) ([]common.Address, error) {
			assert.Equal(t, testOwner, owner)
			return []common.Address{testSafe}, nil
		},
	}
	nf, _ := NewSafeNodeFacade(args)

	safes, err := nf.GetOwnedSafes(context.Background(), "1", testOwner)
	assert.Nil(t, err)
	assert.Equal(t, []common.Address{testSafe}, safes)
}
