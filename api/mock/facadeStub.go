package mock

import (
	"context"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/multiversx/mx-chain-safe-go/api/stream"
	"github.com/multiversx/mx-chain-safe-go/data/pending"
	"github.com/multiversx/mx-chain-safe-go/data/safetx"
	"github.com/multiversx/mx-chain-safe-go/process/activation"
	"github.com/multiversx/mx-chain-safe-go/process/execution"
	"github.com/multiversx/mx-chain-safe-go/process/reconciliation"
)

// FacadeStub -
type FacadeStub struct {
	RestApiInterfaceCalled        func() string
	RestAPIServerDebugModeCalled  func() bool
	PprofEnabledCalled            func() bool
	MetricsHandlerCalled          func() http.Handler
	StatusMetricsCalled           func() map[string]interface{}
	GetPendingExecutionsCalled    func() []*pending.Record
	GetPendingExecutionCalled     func(txID string) (*pending.Record, error)
	DiscardPendingExecutionCalled func(txID string) error
	PendingChangesSourceCalled    func() stream.ChangesSource
	ExecuteTransactionCalled      func(ctx context.Context, chainID string, txID string, wallet common.Address, useRelay bool) (*execution.Artifact, error)
	ProposeTransactionCalled      func(ctx context.Context, chainID string, safe common.Address, tx *safetx.TransactionData, sender common.Address, origin string) (*safetx.TransactionDetails, error)
	ConfirmTransactionCalled      func(ctx context.Context, chainID string, safeTxHash common.Hash, signer common.Address) error
	RecommendedNonceCalled        func(ctx context.Context, chainID string, safe common.Address) (uint64, error)
	ActivateSafeCalled            func(ctx context.Context, request *activation.ActivationRequest) (*activation.ActivationResult, error)
	ReconcileHistoryCalled        func(ctx context.Context, chainID string, safe common.Address, items []safetx.HistoryItem) (*reconciliation.Result, error)
	GetOwnedSafesCalled           func(ctx context.Context, chainID string, owner common.Address) ([]common.Address, error)
}

// RestApiInterface -
func (f *FacadeStub) RestApiInterface() string {
	if f.RestApiInterfaceCalled != nil {
		return f.RestApiInterfaceCalled()
	}

	return "localhost:8080"
}

// RestAPIServerDebugMode -
func (f *FacadeStub) RestAPIServerDebugMode() bool {
	if f.RestAPIServerDebugModeCalled != nil {
		return f.RestAPIServerDebugModeCalled()
	}

	return false
}

// PprofEnabled -
func (f *FacadeStub) PprofEnabled() bool {
	if f.PprofEnabledCalled != nil {
		return f.PprofEnabledCalled()
	}

	return false
}

// MetricsHandler -
func (f *FacadeStub) MetricsHandler() http.Handler {
	if f.MetricsHandlerCalled != nil {
		return f.MetricsHandlerCalled()
	}

	return http.NotFoundHandler()
}

// StatusMetrics -
func (f *FacadeStub) StatusMetrics() map[string]interface{} {
	if f.StatusMetricsCalled != nil {
		return f.StatusMetricsCalled()
	}

	return make(map[string]interface{})
}

// GetPendingExecutions -
func (f *FacadeStub) GetPendingExecutions() []*pending.Record {
	if f.GetPendingExecutionsCalled != nil {
		return f.GetPendingExecutionsCalled()
	}

	return nil
}

// GetPendingExecution -
func (f *FacadeStub) GetPendingExecution(txID string) (*pending.Record, error) {
	if f.GetPendingExecutionCalled != nil {
		return f.GetPendingExecutionCalled(txID)
	}

	return nil, nil
}

// DiscardPendingExecution -
func (f *FacadeStub) DiscardPendingExecution(txID string) error {
	if f.DiscardPendingExecutionCalled != nil {
		return f.DiscardPendingExecutionCalled(txID)
	}

	return nil
}

// PendingChangesSource -
func (f *FacadeStub) PendingChangesSource() stream.ChangesSource {
	if f.PendingChangesSourceCalled != nil {
		return f.PendingChangesSourceCalled()
	}

	return nil
}

// ExecuteTransaction -
func (f *FacadeStub) ExecuteTransaction(ctx context.Context, chainID string, txID string, wallet common.Address, useRelay bool) (*execution.Artifact, error) {
	if f.ExecuteTransactionCalled != nil {
		return f.ExecuteTransactionCalled(ctx, chainID, txID, wallet, useRelay)
	}

	return nil, nil
}

// ProposeTransaction -
func (f *FacadeStub) ProposeTransaction(
	ctx context.Context,
	chainID string,
	safe common.Address,
	tx *safetx.TransactionData,
	sender common.Address,
	origin string,
) (*safetx.TransactionDetails, error) {
	if f.ProposeTransactionCalled != nil {
		return f.ProposeTransactionCalled(ctx, chainID, safe, tx, sender, origin)
	}

	return nil, nil
}

// ConfirmTransaction -
func (f *FacadeStub) ConfirmTransaction(ctx context.Context, chainID string, safeTxHash common.Hash, signer common.Address) error {
	if f.ConfirmTransactionCalled != nil {
		return f.ConfirmTransactionCalled(ctx, chainID, safeTxHash, signer)
	}

	return nil
}

// RecommendedNonce -
func (f *FacadeStub) RecommendedNonce(ctx context.Context, chainID string, safe common.Address) (uint64, error) {
	if f.RecommendedNonceCalled != nil {
		return f.RecommendedNonceCalled(ctx, chainID, safe)
	}

	return 0, nil
}

// ActivateSafe -
func (f *FacadeStub) ActivateSafe(ctx context.Context, request *activation.ActivationRequest) (*activation.ActivationResult, error) {
	if f.ActivateSafeCalled != nil {
		return f.ActivateSafeCalled(ctx, request)
	}

	return nil, nil
}

// ReconcileHistory -
func (f *FacadeStub) ReconcileHistory(ctx context.Context, chainID string, safe common.Address, items []safetx.HistoryItem) (*reconciliation.Result, error) {
	if f.ReconcileHistoryCalled != nil {
		return f.ReconcileHistoryCalled(ctx, chainID, safe, items)
	}

	return &reconciliation.Result{}, nil
}

// GetOwnedSafes -
func (f *FacadeStub) GetOwnedSafes(ctx context.Context, chainID string, owner common.Address) ([]common.Address, error) {
	if f.GetOwnedSafesCalled != nil {
		return f.GetOwnedSafesCalled(ctx, chainID, owner)
	}

	return nil, nil
}

// IsInterfaceNil -
func (f *FacadeStub) IsInterfaceNil() bool {
	return f == nil
}
