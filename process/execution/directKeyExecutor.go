package execution

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-safe-go/data/pending"
	"github.com/multiversx/mx-chain-safe-go/process"
)

const percentDivisor = 100

// ArgsDirectKeyExecutor holds the arguments needed to create a new direct key executor
type ArgsDirectKeyExecutor struct {
	SecretStore               process.SecretStore
	ChainProviders            process.ChainProvidersHolder
	Encoder                   TransactionEncoder
	GasLimitMultiplierPercent uint64
}

type directKeyExecutor struct {
	secretStore               process.SecretStore
	chainProviders            process.ChainProvidersHolder
	encoder                   TransactionEncoder
	gasLimitMultiplierPercent uint64
}

// NewDirectKeyExecutor creates the executor signing with a raw key taken from the secret store
func NewDirectKeyExecutor(args ArgsDirectKeyExecutor) (*directKeyExecutor, error) {
	if check.IfNil(args.SecretStore) {
		return nil, ErrNilSecretStore
	}
	if check.IfNil(args.ChainProviders) {
		return nil, process.ErrNilChainProviders
	}
	if check.IfNil(args.Encoder) {
		return nil, ErrNilEncoder
	}
	if args.GasLimitMultiplierPercent < percentDivisor {
		return nil, fmt.Errorf("%w: %d, minimum is %d", ErrInvalidGasLimitMultiplier, args.GasLimitMultiplierPercent, percentDivisor)
	}

	return &directKeyExecutor{
		secretStore:               args.SecretStore,
		chainProviders:            args.ChainProviders,
		encoder:                   args.Encoder,
		gasLimitMultiplierPercent: args.GasLimitMultiplierPercent,
	}, nil
}

// ExecuteTransaction signs and submits the execTransaction call of an authorized Safe transaction
func (dke *directKeyExecutor) ExecuteTransaction(ctx context.Context, request *ExecutionRequest) (*Artifact, error) {
	err := checkExecutionRequest(request)
	if err != nil {
		return nil, err
	}

	data, err := dke.encoder.Encode(request.Transaction)
	if err != nil {
		return nil, err
	}

	return dke.ExecuteCall(ctx, safeCall(request, data))
}

// ExecuteCall signs and submits a raw call
func (dke *directKeyExecutor) ExecuteCall(ctx context.Context, request *CallRequest) (*Artifact, error) {
	if request == nil {
		return nil, ErrNilRequest
	}

	privateKey, err := dke.secretStore.GetPrivateKey(request.Wallet)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", process.ErrSignerUnavailable, err)
	}
	if privateKey == nil {
		return nil, fmt.Errorf("%w: no key for %s", process.ErrSignerUnavailable, request.Wallet.Hex())
	}

	chainID, err := parseChainID(request.ChainID)
	if err != nil {
		return nil, err
	}
	provider, err := dke.chainProviders.ProviderForChain(request.ChainID)
	if err != nil {
		return nil, err
	}

	from := crypto.PubkeyToAddress(privateKey.PublicKey)
	to := request.To
	value := valueOrZero(request.Value)

	nonce, err := provider.PendingNonceAt(ctx, from)
	if err != nil {
		return nil, err
	}
	gasPrice, err := provider.SuggestGasPrice(ctx)
	if err != nil {
		return nil, err
	}
	estimatedGas, err := provider.EstimateGas(ctx, ethereum.CallMsg{
		From:  from,
		To:    &to,
		Value: value,
		Data:  request.Data,
	})
	if err != nil {
		return nil, err
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		GasPrice: gasPrice,
		Gas:      estimatedGas * dke.gasLimitMultiplierPercent / percentDivisor,
		To:       &to,
		Value:    value,
		Data:     request.Data,
	})
	signedTx, err := types.SignTx(tx, types.LatestSignerForChainID(chainID), privateKey)
	if err != nil {
		return nil, err
	}

	err = provider.SendTransaction(ctx, signedTx)
	if err != nil {
		return nil, err
	}

	log.Debug("direct key transaction submitted", "chainID", request.ChainID, "trackingID", request.TrackingID,
		"txHash", signedTx.Hash().Hex(), "wallet", from.Hex(), "nonce", nonce, "gas", signedTx.Gas())

	return &Artifact{
		TxHash:        signedTx.Hash(),
		SafeNonce:     request.SafeNonce,
		WalletAddress: from,
		WalletNonce:   nonce,
	}, nil
}

// Kind returns KindSingle
func (dke *directKeyExecutor) Kind() pending.ExecutionKind {
	return pending.KindSingle
}

// IsInterfaceNil returns true if there is no value under the interface
func (dke *directKeyExecutor) IsInterfaceNil() bool {
	return dke == nil
}
