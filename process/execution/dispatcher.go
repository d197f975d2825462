package execution

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/multiversx/mx-chain-safe-go/data/pending"
	"github.com/multiversx/mx-chain-safe-go/data/safetx"
	"github.com/multiversx/mx-chain-safe-go/data/signer"
	"github.com/multiversx/mx-chain-safe-go/process"
	"github.com/multiversx/mx-chain-safe-go/process/signatures"

	safeCommon "github.com/multiversx/mx-chain-safe-go/common"
)

var log = logger.GetOrCreate("process/execution")

// ArgsDispatcher holds the arguments needed to create a new dispatcher
type ArgsDispatcher struct {
	DirectKeyExecutor   Executor
	HardwareExecutor    Executor
	RelayExecutor       Executor
	SignerRegistry      process.SignerRegistry
	PendingTracker      process.PendingTracker
	TransactionWaiter   TransactionWaiter
	RelayMonitor        RelayMonitor
	AppStatusHandler    safeCommon.AppStatusHandler
	ReceiptWatchEnabled bool
}

type dispatcher struct {
	directKeyExecutor   Executor
	hardwareExecutor    Executor
	relayExecutor       Executor
	signerRegistry      process.SignerRegistry
	pendingTracker      process.PendingTracker
	transactionWaiter   TransactionWaiter
	relayMonitor        RelayMonitor
	appStatusHandler    safeCommon.AppStatusHandler
	receiptWatchEnabled bool

	ctx        context.Context
	cancel     context.CancelFunc
	watchersWg sync.WaitGroup
}

// NewDispatcher creates the component routing executions to the right backend and registering their artifacts
func NewDispatcher(args ArgsDispatcher) (*dispatcher, error) {
	err := checkDispatcherArgs(args)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &dispatcher{
		directKeyExecutor:   args.DirectKeyExecutor,
		hardwareExecutor:    args.HardwareExecutor,
		relayExecutor:       args.RelayExecutor,
		signerRegistry:      args.SignerRegistry,
		pendingTracker:      args.PendingTracker,
		transactionWaiter:   args.TransactionWaiter,
		relayMonitor:        args.RelayMonitor,
		appStatusHandler:    args.AppStatusHandler,
		receiptWatchEnabled: args.ReceiptWatchEnabled,
		ctx:                 ctx,
		cancel:              cancel,
	}, nil
}

func checkDispatcherArgs(args ArgsDispatcher) error {
	if check.IfNil(args.DirectKeyExecutor) {
		return fmt.Errorf("%w for direct key", ErrNilExecutor)
	}
	if check.IfNil(args.HardwareExecutor) {
		return fmt.Errorf("%w for hardware", ErrNilExecutor)
	}
	if check.IfNil(args.RelayExecutor) {
		return fmt.Errorf("%w for relay", ErrNilExecutor)
	}
	if check.IfNil(args.SignerRegistry) {
		return ErrNilSignerRegistry
	}
	if check.IfNil(args.PendingTracker) {
		return process.ErrNilPendingTracker
	}
	if check.IfNil(args.TransactionWaiter) {
		return ErrNilTransactionWaiter
	}
	if check.IfNil(args.RelayMonitor) {
		return ErrNilRelayMonitor
	}
	if check.IfNil(args.AppStatusHandler) {
		return process.ErrNilAppStatusHandler
	}

	return nil
}

// ExecuteTransaction executes an authorized Safe transaction. When an artifact is returned it is already
// tracked as EXECUTING, even if a late step such as the hardware release failed.
func (d *dispatcher) ExecuteTransaction(ctx context.Context, request *ExecutionRequest) (*Artifact, error) {
	err := d.checkRequest(request)
	if err != nil {
		return nil, err
	}

	executor, err := d.selectExecutor(request.UseRelay, request.Wallet)
	if err != nil {
		return nil, err
	}

	artifact, err := executor.ExecuteTransaction(ctx, request)
	d.handleResult(request.ChainID, request.TxID, request.Safe.Address, true, executor.Kind(), artifact, err)

	return artifact, err
}

// ExecuteCall submits a raw call and tracks it under the request tracking identifier
func (d *dispatcher) ExecuteCall(ctx context.Context, request *CallRequest) (*Artifact, error) {
	if request == nil {
		return nil, ErrNilRequest
	}
	if len(request.TrackingID) == 0 {
		return nil, process.ErrEmptyTxID
	}

	executor, err := d.selectExecutor(request.UseRelay, request.Wallet)
	if err != nil {
		return nil, err
	}

	artifact, err := executor.ExecuteCall(ctx, request)
	d.handleResult(request.ChainID, request.TrackingID, request.Safe, request.HasSafeNonce, executor.Kind(), artifact, err)

	return artifact, err
}

func (d *dispatcher) checkRequest(request *ExecutionRequest) error {
	if request == nil {
		return ErrNilRequest
	}
	if len(request.TxID) == 0 {
		return process.ErrEmptyTxID
	}
	if request.Safe == nil {
		return ErrNilSafeInfo
	}
	if request.Transaction == nil {
		if request.UseRelay {
			// the relay executor rebuilds the transaction and checks the threshold itself
			return nil
		}
		return ErrNilSafeTransaction
	}

	info := &safetx.MultisigExecutionInfo{
		Nonce:                  request.Transaction.Data.Nonce,
		ConfirmationsRequired:  request.Safe.Threshold,
		ConfirmationsSubmitted: signatures.CountSigned(request.Transaction.Signatures),
	}
	if !signatures.IsThresholdMet(info) {
		return fmt.Errorf("%w: %d of %d", ErrThresholdNotMet, info.ConfirmationsSubmitted, info.ConfirmationsRequired)
	}

	return nil
}

func (d *dispatcher) selectExecutor(useRelay bool, wallet common.Address) (Executor, error) {
	if useRelay {
		return d.relayExecutor, nil
	}

	record, err := d.signerRegistry.GetSigner(wallet)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", process.ErrSignerUnavailable, err)
	}
	if record == nil {
		return nil, process.ErrSignerUnavailable
	}

	switch record.Type {
	case signer.TypePrivateKey:
		return d.directKeyExecutor, nil
	case signer.TypeHardware:
		return d.hardwareExecutor, nil
	default:
		return nil, fmt.Errorf("%w: %s", process.ErrWrongSignerType, record.Type)
	}
}

func (d *dispatcher) handleResult(
	chainID string,
	txID string,
	safe common.Address,
	hasSafeNonce bool,
	kind pending.ExecutionKind,
	artifact *Artifact,
	err error,
) {
	if err != nil {
		d.appStatusHandler.Increment(safeCommon.MetricExecutionsFailed)
		log.Debug("execution dispatch failed", "chainID", chainID, "txID", txID, "kind", kind, "error", err)
	}
	if artifact == nil {
		return
	}

	d.pendingTracker.Start(txID, kind, pending.Artifact{
		ChainID:       chainID,
		SafeAddress:   safe,
		SafeNonce:     artifact.SafeNonce,
		HasSafeNonce:  hasSafeNonce,
		TxHash:        artifact.TxHash,
		TaskID:        artifact.TaskID,
		WalletAddress: artifact.WalletAddress,
		WalletNonce:   artifact.WalletNonce,
	})
	d.appStatusHandler.Increment(safeCommon.MetricExecutionsStarted)

	if kind == pending.KindRelay {
		d.relayMonitor.Watch(chainID, txID, artifact.TaskID)
		return
	}
	if d.receiptWatchEnabled {
		d.watchersWg.Add(1)
		go d.watchReceipt(chainID, txID, artifact.TxHash)
	}
}

// watchReceipt only reports failures, success is left to the history reconciliation
func (d *dispatcher) watchReceipt(chainID string, txID string, txHash common.Hash) {
	defer d.watchersWg.Done()

	_, err := d.transactionWaiter.WaitForTransaction(d.ctx, chainID, txHash)
	switch {
	case err == nil:
		log.Debug("executed transaction mined", "chainID", chainID, "txID", txID, "txHash", txHash.Hex())
	case errors.Is(err, process.ErrReverted), errors.Is(err, process.ErrTransactionNotFound):
		d.appStatusHandler.Increment(safeCommon.MetricExecutionsFailed)
		d.pendingTracker.MarkError(txID, err)
	default:
		log.Debug("receipt watch stopped", "chainID", chainID, "txID", txID, "error", err)
	}
}

// Close stops the receipt watchers
func (d *dispatcher) Close() error {
	d.cancel()
	d.watchersWg.Wait()

	return nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (d *dispatcher) IsInterfaceNil() bool {
	return d == nil
}
