package activation

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/multiversx/mx-chain-safe-go/abi"
	"github.com/multiversx/mx-chain-safe-go/config"
	"github.com/multiversx/mx-chain-safe-go/data/safetx"
	"github.com/multiversx/mx-chain-safe-go/process"
	"github.com/multiversx/mx-chain-safe-go/process/execution"
	"github.com/multiversx/mx-chain-safe-go/process/signatures"

	safeCommon "github.com/multiversx/mx-chain-safe-go/common"
)

var log = logger.GetOrCreate("process/activation")

const activationPrefix = "activation"

// ArgsActivator holds the arguments needed to create a new activator
type ArgsActivator struct {
	Dispatcher         CallDispatcher
	Codec              DeploymentCodec
	TransactionEncoder execution.TransactionEncoder
	TransactionWaiter  execution.TransactionWaiter
	PendingTracker     process.PendingTracker
	ChainsConfig       process.ChainsConfigHandler
	AppStatusHandler   safeCommon.AppStatusHandler
}

type activator struct {
	dispatcher         CallDispatcher
	codec              DeploymentCodec
	transactionEncoder execution.TransactionEncoder
	transactionWaiter  execution.TransactionWaiter
	pendingTracker     process.PendingTracker
	chainsConfig       process.ChainsConfigHandler
	appStatusHandler   safeCommon.AppStatusHandler
}

// NewActivator creates the component deploying counterfactual Safes
func NewActivator(args ArgsActivator) (*activator, error) {
	err := checkArgs(args)
	if err != nil {
		return nil, err
	}

	return &activator{
		dispatcher:         args.Dispatcher,
		codec:              args.Codec,
		transactionEncoder: args.TransactionEncoder,
		transactionWaiter:  args.TransactionWaiter,
		pendingTracker:     args.PendingTracker,
		chainsConfig:       args.ChainsConfig,
		appStatusHandler:   args.AppStatusHandler,
	}, nil
}

func checkArgs(args ArgsActivator) error {
	if check.IfNil(args.Dispatcher) {
		return ErrNilDispatcher
	}
	if check.IfNil(args.Codec) {
		return ErrNilCodec
	}
	if check.IfNil(args.TransactionEncoder) {
		return ErrNilTransactionEncoder
	}
	if check.IfNil(args.TransactionWaiter) {
		return ErrNilTransactionWaiter
	}
	if check.IfNil(args.PendingTracker) {
		return process.ErrNilPendingTracker
	}
	if check.IfNil(args.ChainsConfig) {
		return process.ErrNilChainsConfig
	}
	if check.IfNil(args.AppStatusHandler) {
		return process.ErrNilAppStatusHandler
	}

	return nil
}

// Activate deploys the Safe with a standalone factory call
func (a *activator) Activate(ctx context.Context, request *ActivationRequest) (*ActivationResult, error) {
	chainConfig, err := a.checkRequest(request)
	if err != nil {
		return nil, err
	}

	deploy, err := a.buildDeployment(request.Safe, chainConfig)
	if err != nil {
		return nil, err
	}

	callRequest := &execution.CallRequest{
		ChainID:     request.Safe.ChainID,
		TrackingID:  ActivationTrackingID(request.Safe.ChainID, request.Safe.Address),
		Safe:        request.Safe.Address,
		SafeVersion: deploy.version,
		Wallet:      request.Wallet,
		To:          deploy.factory,
		Value:       big.NewInt(0),
		Data:        deploy.data,
		UseRelay:    request.UseRelay,
	}

	return a.submit(ctx, callRequest)
}

// ActivateWithTransaction deploys the Safe and executes its first transaction in one MultiSend batch.
// The execution is tracked under the request TxID when provided.
func (a *activator) ActivateWithTransaction(ctx context.Context, request *ActivationRequest, tx *safetx.SafeTransaction) (*ActivationResult, error) {
	chainConfig, err := a.checkRequest(request)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, ErrNilSafeTransaction
	}

	deploy, err := a.buildDeployment(request.Safe, chainConfig)
	if err != nil {
		return nil, err
	}

	numSigned := signatures.CountSigned(tx.Signatures)
	if numSigned < deploy.threshold {
		return nil, fmt.Errorf("%w: %d of %d", ErrThresholdNotMet, numSigned, deploy.threshold)
	}

	execData, err := a.transactionEncoder.Encode(tx)
	if err != nil {
		return nil, err
	}

	batch, err := a.codec.EncodeMultiSend([]*abi.MultiSendCall{
		{
			Operation: safetx.OperationCall,
			To:        deploy.factory,
			Value:     big.NewInt(0),
			Data:      deploy.data,
		},
		{
			Operation: safetx.OperationCall,
			To:        request.Safe.Address,
			Value:     big.NewInt(0),
			Data:      execData,
		},
	})
	if err != nil {
		return nil, err
	}

	trackingID := request.TxID
	if len(trackingID) == 0 {
		trackingID = ActivationTrackingID(request.Safe.ChainID, request.Safe.Address)
	}

	callRequest := &execution.CallRequest{
		ChainID:      request.Safe.ChainID,
		TrackingID:   trackingID,
		Safe:         request.Safe.Address,
		SafeVersion:  deploy.version,
		Wallet:       request.Wallet,
		SafeNonce:    tx.Data.Nonce,
		HasSafeNonce: true,
		To:           chainConfig.MultiSendCallOnlyAddress(),
		Value:        big.NewInt(0),
		Data:         batch,
		UseRelay:     request.UseRelay,
	}

	return a.submit(ctx, callRequest)
}

func (a *activator) checkRequest(request *ActivationRequest) (config.ChainConfig, error) {
	if request == nil {
		return config.ChainConfig{}, ErrNilRequest
	}
	if request.Safe == nil {
		return config.ChainConfig{}, ErrNilUndeployedSafe
	}
	if request.Safe.Props == nil {
		return config.ChainConfig{}, ErrNilDeploymentProps
	}

	return a.chainsConfig.ChainConfig(request.Safe.ChainID)
}

func (a *activator) buildDeployment(safe *safetx.UndeployedSafe, chainConfig config.ChainConfig) (*deployment, error) {
	switch props := safe.Props.(type) {
	case *safetx.PredictedSafeProps:
		if props == nil {
			return nil, ErrNilDeploymentProps
		}
		return a.buildPredicted(props, chainConfig)
	case *safetx.ReplayedSafeProps:
		if props == nil {
			return nil, ErrNilDeploymentProps
		}
		return a.buildReplayed(props)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownDeploymentProps, safe.Props)
	}
}

func (a *activator) buildPredicted(props *safetx.PredictedSafeProps, chainConfig config.ChainConfig) (*deployment, error) {
	fallbackHandler := props.FallbackHandler
	if fallbackHandler == (common.Address{}) {
		fallbackHandler = chainConfig.FallbackHandlerAddress()
	}

	setupArgs := &abi.SetupArgs{
		Owners:          props.Owners,
		Threshold:       big.NewInt(int64(props.Threshold)),
		FallbackHandler: fallbackHandler,
	}

	return a.buildCreateProxy(chainConfig.ProxyFactoryAddress(), chainConfig.SafeSingletonAddress(),
		setupArgs, props.SaltNonce, props.Threshold, props.Version)
}

func (a *activator) buildReplayed(props *safetx.ReplayedSafeProps) (*deployment, error) {
	accountConfig := props.SafeAccountConfig
	payment, err := parseUint("payment", accountConfig.Payment)
	if err != nil {
		return nil, err
	}

	setupArgs := &abi.SetupArgs{
		Owners:          accountConfig.Owners,
		Threshold:       big.NewInt(int64(accountConfig.Threshold)),
		To:              accountConfig.To,
		Data:            accountConfig.Data,
		FallbackHandler: accountConfig.FallbackHandler,
		PaymentToken:    accountConfig.PaymentToken,
		Payment:         payment,
		PaymentReceiver: accountConfig.PaymentReceiver,
	}

	return a.buildCreateProxy(props.FactoryAddress, props.MasterCopy, setupArgs, props.SaltNonce,
		accountConfig.Threshold, props.Version)
}

func (a *activator) buildCreateProxy(
	factory common.Address,
	singleton common.Address,
	setupArgs *abi.SetupArgs,
	saltNonce string,
	threshold uint32,
	version string,
) (*deployment, error) {
	salt, err := parseUint("salt nonce", saltNonce)
	if err != nil {
		return nil, err
	}

	initializer, err := a.codec.EncodeSetup(setupArgs)
	if err != nil {
		return nil, err
	}

	data, err := a.codec.EncodeCreateProxyWithNonce(singleton, initializer, salt)
	if err != nil {
		return nil, err
	}

	return &deployment{
		factory:   factory,
		data:      data,
		threshold: threshold,
		version:   version,
	}, nil
}

func (a *activator) submit(ctx context.Context, callRequest *execution.CallRequest) (*ActivationResult, error) {
	artifact, err := a.dispatcher.ExecuteCall(ctx, callRequest)
	if err != nil {
		return nil, err
	}

	a.appStatusHandler.Increment(safeCommon.MetricSafeActivations)
	result := &ActivationResult{
		TrackingID: callRequest.TrackingID,
		TxHash:     artifact.TxHash,
		TaskID:     artifact.TaskID,
	}
	if callRequest.UseRelay {
		result.Status = StatusRelayed
		log.Debug("safe activation relayed", "chainID", callRequest.ChainID, "safe", callRequest.Safe.Hex(),
			"taskID", artifact.TaskID)
		return result, nil
	}

	waitResult, err := a.transactionWaiter.WaitForTransaction(ctx, callRequest.ChainID, artifact.TxHash)
	if err != nil {
		result.Status = StatusFailed
		if errors.Is(err, process.ErrReverted) {
			result.Status = StatusReverted
		}

		log.Debug("safe activation failed", "chainID", callRequest.ChainID, "safe", callRequest.Safe.Hex(),
			"txHash", artifact.TxHash.Hex(), "error", err)
		a.pendingTracker.MarkError(callRequest.TrackingID, err)
		return result, err
	}

	result.Status = StatusSuccess
	result.Replaced = waitResult.Replaced
	if waitResult.Replaced {
		result.TxHash = waitResult.TxHash
	}
	a.pendingTracker.MarkSuccess(callRequest.TrackingID, result.TxHash)

	log.Debug("safe activated", "chainID", callRequest.ChainID, "safe", callRequest.Safe.Hex(),
		"txHash", result.TxHash.Hex(), "replaced", waitResult.Replaced)

	return result, nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (a *activator) IsInterfaceNil() bool {
	return a == nil
}

// ActivationTrackingID returns the pending record identifier of a standalone Safe deployment
func ActivationTrackingID(chainID string, safe common.Address) string {
	return fmt.Sprintf("%s_%s_%s", activationPrefix, chainID, safe.Hex())
}

func parseUint(field string, value string) (*big.Int, error) {
	if len(value) == 0 {
		return big.NewInt(0), nil
	}

	parsed, err := uint256.FromDecimal(value)
	if err != nil {
		return nil, fmt.Errorf("%w for %s: %s", ErrInvalidNumber, field, err.Error())
	}

	return parsed.ToBig(), nil
}
