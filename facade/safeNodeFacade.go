package facade

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/multiversx/mx-chain-safe-go/api/stream"
	"github.com/multiversx/mx-chain-safe-go/config"
	"github.com/multiversx/mx-chain-safe-go/data/pending"
	"github.com/multiversx/mx-chain-safe-go/data/safetx"
	"github.com/multiversx/mx-chain-safe-go/process"
	"github.com/multiversx/mx-chain-safe-go/process/activation"
	"github.com/multiversx/mx-chain-safe-go/process/execution"
	"github.com/multiversx/mx-chain-safe-go/process/proposal"
	"github.com/multiversx/mx-chain-safe-go/process/reconciliation"
	"github.com/multiversx/mx-chain-safe-go/process/signatures"

	safeCommon "github.com/multiversx/mx-chain-safe-go/common"
)

var log = logger.GetOrCreate("facade")

// ArgsSafeNodeFacade holds the arguments needed to create a new safe node facade
type ArgsSafeNodeFacade struct {
	WebServerConfig      config.WebServerConfig
	ApiRoutesConfig      config.ApiRoutesConfig
	PendingTracker       process.PendingTracker
	ChangesSource        stream.ChangesSource
	Gateway              SafeGateway
	Dispatcher           ExecutionDispatcher
	Proposer             Proposer
	Activator            Activator
	Reconciler           reconciliation.Reconciler
	OwnedSafesProvider   OwnedSafesProvider
	StatusMetrics        StatusMetricsHandler
	MetricsHandlerSource MetricsHandlerProvider
}

type safeNodeFacade struct {
	webServerConfig      config.WebServerConfig
	pendingTracker       process.PendingTracker
	changesSource        stream.ChangesSource
	gateway              SafeGateway
	dispatcher           ExecutionDispatcher
	proposer             Proposer
	activator            Activator
	reconciler           reconciliation.Reconciler
	ownedSafesProvider   OwnedSafesProvider
	statusMetrics        StatusMetricsHandler
	metricsHandlerSource MetricsHandlerProvider
}

// NewSafeNodeFacade creates the single entry point of the REST API into the node components
func NewSafeNodeFacade(args ArgsSafeNodeFacade) (*safeNodeFacade, error) {
	err := checkArgs(args)
	if err != nil {
		return nil, err
	}

	return &safeNodeFacade{
		webServerConfig:      args.WebServerConfig,
		pendingTracker:       args.PendingTracker,
		changesSource:        args.ChangesSource,
		gateway:              args.Gateway,
		dispatcher:           args.Dispatcher,
		proposer:             args.Proposer,
		activator:            args.Activator,
		reconciler:           args.Reconciler,
		ownedSafesProvider:   args.OwnedSafesProvider,
		statusMetrics:        args.StatusMetrics,
		metricsHandlerSource: args.MetricsHandlerSource,
	}, nil
}

func checkArgs(args ArgsSafeNodeFacade) error {
	if check.IfNil(args.PendingTracker) {
		return ErrNilPendingTracker
	}
	if check.IfNil(args.ChangesSource) {
		return ErrNilChangesSource
	}
	if check.IfNil(args.Gateway) {
		return ErrNilGateway
	}
	if check.IfNil(args.Dispatcher) {
		return ErrNilDispatcher
	}
	if check.IfNil(args.Proposer) {
		return ErrNilProposer
	}
	if check.IfNil(args.Activator) {
		return ErrNilActivator
	}
	if check.IfNil(args.Reconciler) {
		return ErrNilReconciler
	}
	if check.IfNil(args.OwnedSafesProvider) {
		return ErrNilOwnedSafesProvider
	}
	if check.IfNil(args.StatusMetrics) {
		return ErrNilStatusMetrics
	}
	if check.IfNil(args.MetricsHandlerSource) {
		return ErrNilMetricsHandlerProvider
	}
	if len(args.ApiRoutesConfig.APIPackages) == 0 {
		return ErrNoApiRoutesConfig
	}

	antiflood := args.WebServerConfig.Antiflood
	if !antiflood.WebServerAntifloodEnabled {
		return nil
	}
	if antiflood.SimultaneousRequests == 0 {
		return fmt.Errorf("%w, SimultaneousRequests should not be 0", ErrInvalidValue)
	}
	if antiflood.SameSourceRequests == 0 {
		return fmt.Errorf("%w, SameSourceRequests should not be 0", ErrInvalidValue)
	}
	if antiflood.SameSourceResetIntervalInSec == 0 {
		return fmt.Errorf("%w, SameSourceResetIntervalInSec should not be 0", ErrInvalidValue)
	}

	return nil
}

// RestApiInterface returns the interface on which the rest API should start on, based on the config file provided.
// The API will start on the DefaultRestInterface value unless a correct value is passed or
// the value is explicitly set to off, in which case it will not start at all
func (nf *safeNodeFacade) RestApiInterface() string {
	if nf.webServerConfig.RestApiInterface == "" {
		return safeCommon.DefaultRestInterface
	}

	return nf.webServerConfig.RestApiInterface
}

// RestAPIServerDebugMode returns true if the rest API server should run in debug mode
func (nf *safeNodeFacade) RestAPIServerDebugMode() bool {
	return nf.webServerConfig.DebugMode
}

// PprofEnabled returns if profiling mode should be active or not on the application
func (nf *safeNodeFacade) PprofEnabled() bool {
	return nf.webServerConfig.PprofEnabled
}

// MetricsHandler returns the prometheus scrape handler
func (nf *safeNodeFacade) MetricsHandler() http.Handler {
	return nf.metricsHandlerSource.Handler()
}

// StatusMetrics returns the current values of the node metrics
func (nf *safeNodeFacade) StatusMetrics() map[string]interface{} {
	return nf.statusMetrics.StatusMetricsMap()
}

// GetPendingExecutions returns all the tracked executions, oldest first
func (nf *safeNodeFacade) GetPendingExecutions() []*pending.Record {
	return nf.pendingTracker.GetAll()
}

// GetPendingExecution returns the tracked execution of a transaction
func (nf *safeNodeFacade) GetPendingExecution(txID string) (*pending.Record, error) {
	record, found := nf.pendingTracker.Get(txID)
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrPendingExecutionNotFound, txID)
	}

	return record, nil
}

// DiscardPendingExecution drops the tracked execution of a transaction, whatever its status
func (nf *safeNodeFacade) DiscardPendingExecution(txID string) error {
	_, found := nf.pendingTracker.Get(txID)
	if !found {
		return fmt.Errorf("%w: %s", ErrPendingExecutionNotFound, txID)
	}

	nf.pendingTracker.Clear(txID)
	log.Debug("pending execution discarded", "txID", txID)

	return nil
}

// PendingChangesSource returns the source of the pending execution changes
func (nf *safeNodeFacade) PendingChangesSource() stream.ChangesSource {
	return nf.changesSource
}

// ExecuteTransaction fetches the transaction and the Safe state from the gateway and dispatches the execution
func (nf *safeNodeFacade) ExecuteTransaction(ctx context.Context, chainID string, txID string, wallet common.Address, useRelay bool) (*execution.Artifact, error) {
	details, tx, err := nf.fetchSafeTransaction(ctx, chainID, txID)
	if err != nil {
		return nil, err
	}

	safeInfo, err := nf.gateway.GetSafeInfo(ctx, chainID, details.SafeAddress)
	if err != nil {
		return nil, err
	}

	return nf.dispatcher.ExecuteTransaction(ctx, &execution.ExecutionRequest{
		ChainID:     chainID,
		TxID:        txID,
		Safe:        safeInfo,
		Transaction: tx,
		Wallet:      wallet,
		UseRelay:    useRelay,
	})
}

// fetchSafeTransaction rebuilds the transaction of the gateway record, with its confirmations merged in
func (nf *safeNodeFacade) fetchSafeTransaction(ctx context.Context, chainID string, txID string) (*safetx.TransactionDetails, *safetx.SafeTransaction, error) {
	if len(txID) == 0 {
		return nil, nil, process.ErrEmptyTxID
	}

	details, err := nf.gateway.GetTransactionDetails(ctx, chainID, txID)
	if err != nil {
		return nil, nil, err
	}
	if details == nil {
		return nil, nil, fmt.Errorf("%w: empty details for %s", process.ErrSafeTransactionNotFound, txID)
	}

	tx, err := details.ToSafeTransaction()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", process.ErrSafeTransactionNotFound, err)
	}
	signatures.AddConfirmations(tx, details.Confirmations())

	return details, tx, nil
}

// ProposeTransaction signs the transaction with the sender key and registers it with the gateway
func (nf *safeNodeFacade) ProposeTransaction(
	ctx context.Context,
	chainID string,
	safe common.Address,
	tx *safetx.TransactionData,
	sender common.Address,
	origin string,
) (*safetx.TransactionDetails, error) {
	if tx == nil {
		return nil, ErrNilRequest
	}

	safeInfo, err := nf.gateway.GetSafeInfo(ctx, chainID, safe)
	if err != nil {
		return nil, err
	}

	return nf.proposer.Propose(ctx, &proposal.ProposeRequest{
		ChainID: chainID,
		Safe:    safeInfo,
		Tx:      tx,
		Sender:  sender,
		Origin:  origin,
	})
}

// ConfirmTransaction adds the signer confirmation to a proposed transaction
func (nf *safeNodeFacade) ConfirmTransaction(ctx context.Context, chainID string, safeTxHash common.Hash, signer common.Address) error {
	return nf.proposer.Confirm(ctx, &proposal.ConfirmRequest{
		ChainID:    chainID,
		SafeTxHash: safeTxHash,
		Signer:     signer,
	})
}

// RecommendedNonce returns the nonce the next proposed transaction of the Safe should use
func (nf *safeNodeFacade) RecommendedNonce(ctx context.Context, chainID string, safe common.Address) (uint64, error) {
	return nf.proposer.RecommendedNonce(ctx, chainID, safe)
}

// ActivateSafe deploys an undeployed Safe. When the request names a transaction, the deployment and the
// transaction execution are bundled in one call.
func (nf *safeNodeFacade) ActivateSafe(ctx context.Context, request *activation.ActivationRequest) (*activation.ActivationResult, error) {
	if request == nil {
		return nil, ErrNilRequest
	}
	if len(request.TxID) == 0 {
		return nf.activator.Activate(ctx, request)
	}
	if request.Safe == nil {
		return nil, activation.ErrNilUndeployedSafe
	}

	_, tx, err := nf.fetchSafeTransaction(ctx, request.Safe.ChainID, request.TxID)
	if err != nil {
		return nil, err
	}

	return nf.activator.ActivateWithTransaction(ctx, request, tx)
}

// ReconcileHistory matches a history batch against the pending executions. A nil batch is replaced by
// the first page of the indexed history.
func (nf *safeNodeFacade) ReconcileHistory(ctx context.Context, chainID string, safe common.Address, items []safetx.HistoryItem) (*reconciliation.Result, error) {
	if items == nil {
		page, err := nf.gateway.GetTransactionHistory(ctx, chainID, safe, "")
		if err != nil {
			return nil, err
		}
		items = page.Results
	}

	return nf.reconciler.Reconcile(chainID, safe, items), nil
}

// GetOwnedSafes returns the Safes owned by an address on a chain
func (nf *safeNodeFacade) GetOwnedSafes(ctx context.Context, chainID string, owner common.Address) ([]common.Address, error) {
	return nf.ownedSafesProvider.GetOwnedSafes(ctx, chainID, owner)
}

// IsInterfaceNil returns true if there is no value under the interface
func (nf *safeNodeFacade) IsInterfaceNil() bool {
	return nf == nil
}
