package execution

import (
	"context"
	"errors"
	"fmt"

	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-safe-go/data/pending"
	"github.com/multiversx/mx-chain-safe-go/data/signer"
	"github.com/multiversx/mx-chain-safe-go/process"
)

// ArgsHardwareExecutor holds the arguments needed to create a new hardware executor
type ArgsHardwareExecutor struct {
	SignerRegistry  process.SignerRegistry
	HardwareService process.HardwareService
	ChainProviders  process.ChainProvidersHolder
	Encoder         TransactionEncoder
}

type hardwareExecutor struct {
	signerRegistry  process.SignerRegistry
	hardwareService process.HardwareService
	chainProviders  process.ChainProvidersHolder
	encoder         TransactionEncoder
}

// NewHardwareExecutor creates the executor delegating signing to a hardware device
func NewHardwareExecutor(args ArgsHardwareExecutor) (*hardwareExecutor, error) {
	if check.IfNil(args.SignerRegistry) {
		return nil, ErrNilSignerRegistry
	}
	if check.IfNil(args.HardwareService) {
		return nil, ErrNilHardwareService
	}
	if check.IfNil(args.ChainProviders) {
		return nil, process.ErrNilChainProviders
	}
	if check.IfNil(args.Encoder) {
		return nil, ErrNilEncoder
	}

	return &hardwareExecutor{
		signerRegistry:  args.SignerRegistry,
		hardwareService: args.HardwareService,
		chainProviders:  args.ChainProviders,
		encoder:         args.Encoder,
	}, nil
}

// ExecuteTransaction has the device sign and submit the execTransaction call of an authorized Safe transaction
func (he *hardwareExecutor) ExecuteTransaction(ctx context.Context, request *ExecutionRequest) (*Artifact, error) {
	err := checkExecutionRequest(request)
	if err != nil {
		return nil, err
	}

	data, err := he.encoder.Encode(request.Transaction)
	if err != nil {
		return nil, err
	}

	return he.ExecuteCall(ctx, safeCall(request, data))
}

// ExecuteCall resolves and validates the signer, has the device sign and submit the call, reads the wallet
// nonce and releases the device. Once the device was engaged it is released on every exit path.
func (he *hardwareExecutor) ExecuteCall(ctx context.Context, request *CallRequest) (artifact *Artifact, err error) {
	if request == nil {
		return nil, ErrNilRequest
	}

	record, err := he.signerRegistry.GetSigner(request.Wallet)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", process.ErrSignerUnavailable, err)
	}
	err = checkHardwareSigner(record)
	if err != nil {
		return nil, err
	}

	chainID, err := parseChainID(request.ChainID)
	if err != nil {
		return nil, err
	}

	defer func() {
		errDisconnect := he.hardwareService.Disconnect()
		if errDisconnect == nil {
			return
		}

		log.Warn("hardware disconnect failed", "wallet", request.Wallet.Hex(), "error", errDisconnect)
		err = errors.Join(err, fmt.Errorf("%w: %v", process.ErrHardwareDisconnect, errDisconnect))
	}()

	txHash, err := he.hardwareService.ExecuteTransaction(ctx, &process.HardwareExecutionRequest{
		ChainID:        chainID,
		DerivationPath: record.DerivationPath,
		From:           request.Wallet,
		To:             request.To,
		Value:          valueOrZero(request.Value),
		Data:           request.Data,
	})
	if err != nil {
		return nil, err
	}

	artifact = &Artifact{
		TxHash:        txHash,
		SafeNonce:     request.SafeNonce,
		WalletAddress: request.Wallet,
	}

	provider, err := he.chainProviders.ProviderForChain(request.ChainID)
	if err != nil {
		return artifact, err
	}
	artifact.WalletNonce, err = provider.PendingNonceAt(ctx, request.Wallet)
	if err != nil {
		return artifact, err
	}

	log.Debug("hardware transaction submitted", "chainID", request.ChainID, "trackingID", request.TrackingID,
		"txHash", txHash.Hex(), "wallet", request.Wallet.Hex(), "nonce", artifact.WalletNonce)

	return artifact, nil
}

func checkHardwareSigner(record *signer.Record) error {
	if record == nil {
		return process.ErrSignerUnavailable
	}
	if record.Type != signer.TypeHardware {
		return fmt.Errorf("%w: expected %s, got %s", process.ErrWrongSignerType, signer.TypeHardware, record.Type)
	}
	if len(record.DerivationPath) == 0 {
		return fmt.Errorf("%w for %s", process.ErrMissingDerivationPath, record.Address.Hex())
	}

	return nil
}

// Kind returns KindSingle
func (he *hardwareExecutor) Kind() pending.ExecutionKind {
	return pending.KindSingle
}

// IsInterfaceNil returns true if there is no value under the interface
func (he *hardwareExecutor) IsInterfaceNil() bool {
	return he == nil
}
