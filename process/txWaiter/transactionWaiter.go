package txWaiter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/multiversx/mx-chain-safe-go/process"
)

var log = logger.GetOrCreate("process/txWaiter")

const minRequiredConfirmations = 1

// ArgsTransactionWaiter holds the arguments needed to create a new transaction waiter
type ArgsTransactionWaiter struct {
	ChainProviders         process.ChainProvidersHolder
	MaxLookupRetries       uint
	InitialRetryInterval   time.Duration
	MaxRetryInterval       time.Duration
	ReceiptPollingInterval time.Duration
	RequiredConfirmations  uint64
}

// Result is the outcome of a successful wait
type Result struct {
	TxHash   common.Hash
	Receipt  *types.Receipt
	Replaced bool
}

type transactionWaiter struct {
	chainProviders         process.ChainProvidersHolder
	maxLookupRetries       uint
	initialRetryInterval   time.Duration
	maxRetryInterval       time.Duration
	receiptPollingInterval time.Duration
	requiredConfirmations  uint64
}

// NewTransactionWaiter creates the component that follows a broadcast transaction until it is mined
func NewTransactionWaiter(args ArgsTransactionWaiter) (*transactionWaiter, error) {
	err := checkArgs(args)
	if err != nil {
		return nil, err
	}

	requiredConfirmations := args.RequiredConfirmations
	if requiredConfirmations < minRequiredConfirmations {
		requiredConfirmations = minRequiredConfirmations
	}

	return &transactionWaiter{
		chainProviders:         args.ChainProviders,
		maxLookupRetries:       args.MaxLookupRetries,
		initialRetryInterval:   args.InitialRetryInterval,
		maxRetryInterval:       args.MaxRetryInterval,
		receiptPollingInterval: args.ReceiptPollingInterval,
		requiredConfirmations:  requiredConfirmations,
	}, nil
}

func checkArgs(args ArgsTransactionWaiter) error {
	if check.IfNil(args.ChainProviders) {
		return process.ErrNilChainProviders
	}
	if args.MaxLookupRetries == 0 {
		return fmt.Errorf("%w: zero max lookup retries", ErrInvalidRetriesConfig)
	}
	if args.InitialRetryInterval <= 0 || args.MaxRetryInterval < args.InitialRetryInterval {
		return fmt.Errorf("%w: initial %v, max %v", ErrInvalidRetriesConfig, args.InitialRetryInterval, args.MaxRetryInterval)
	}
	if args.ReceiptPollingInterval <= 0 {
		return ErrInvalidPollingInterval
	}

	return nil
}

// WaitForTransaction looks the transaction up with exponential backoff, then waits for its receipt to be buried
// under the required number of blocks. A transaction never seen returns ErrTransactionNotFound, a mined but
// failed one returns ErrReverted. A replaced transaction counts as a success.
func (tw *transactionWaiter) WaitForTransaction(ctx context.Context, chainID string, txHash common.Hash) (*Result, error) {
	provider, err := tw.chainProviders.ProviderForChain(chainID)
	if err != nil {
		return nil, err
	}

	replaced, err := tw.lookupTransaction(ctx, provider, txHash)
	if err != nil {
		return nil, err
	}
	if replaced {
		log.Debug("transaction replaced during lookup", "chainID", chainID, "txHash", txHash.Hex())
		return &Result{TxHash: txHash, Replaced: true}, nil
	}

	return tw.waitForReceipt(ctx, provider, chainID, txHash)
}

func (tw *transactionWaiter) lookupTransaction(ctx context.Context, provider process.ChainProvider, txHash common.Hash) (bool, error) {
	expBackOff := backoff.NewExponentialBackOff()
	expBackOff.InitialInterval = tw.initialRetryInterval
	expBackOff.MaxInterval = tw.maxRetryInterval
	expBackOff.Multiplier = 2
	expBackOff.RandomizationFactor = 0

	attempt := 0
	operation := func() (bool, error) {
		attempt++
		_, _, errLookup := provider.TransactionByHash(ctx, txHash)
		if errLookup == nil {
			return false, nil
		}
		if errors.Is(errLookup, process.ErrTransactionReplaced) {
			return true, nil
		}

		log.Trace("transaction not yet visible", "txHash", txHash.Hex(), "attempt", attempt, "error", errLookup)
		return false, errLookup
	}

	replaced, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(expBackOff),
		backoff.WithMaxTries(tw.maxLookupRetries),
		backoff.WithMaxElapsedTime(0),
	)
	if err == nil {
		return replaced, nil
	}
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	return false, fmt.Errorf("%w: %s after %d attempts, last error: %v", process.ErrTransactionNotFound, txHash.Hex(), attempt, err)
}

func (tw *transactionWaiter) waitForReceipt(ctx context.Context, provider process.ChainProvider, chainID string, txHash common.Hash) (*Result, error) {
	ticker := time.NewTicker(tw.receiptPollingInterval)
	defer ticker.Stop()

	for {
		result, done, err := tw.checkReceipt(ctx, provider, txHash)
		if done {
			if err == nil {
				log.Debug("transaction confirmed", "chainID", chainID, "txHash", txHash.Hex(), "replaced", result.Replaced)
			}
			return result, err
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

func (tw *transactionWaiter) checkReceipt(ctx context.Context, provider process.ChainProvider, txHash common.Hash) (*Result, bool, error) {
	receipt, err := provider.TransactionReceipt(ctx, txHash)
	if errors.Is(err, process.ErrTransactionReplaced) {
		return &Result{TxHash: txHash, Replaced: true}, true, nil
	}
	if errors.Is(err, ethereum.NotFound) {
		return nil, false, nil
	}
	if err != nil {
		log.Debug("receipt lookup failed, will retry", "txHash", txHash.Hex(), "error", err)
		return nil, false, nil
	}
	if receipt.Status == types.ReceiptStatusFailed {
		return nil, true, fmt.Errorf("%w: %s", process.ErrReverted, txHash.Hex())
	}

	if tw.requiredConfirmations > minRequiredConfirmations {
		confirmed, errDepth := tw.isDeepEnough(ctx, provider, receipt)
		if errDepth != nil {
			log.Debug("block number lookup failed, will retry", "txHash", txHash.Hex(), "error", errDepth)
			return nil, false, nil
		}
		if !confirmed {
			return nil, false, nil
		}
	}

	return &Result{TxHash: txHash, Receipt: receipt}, true, nil
}

func (tw *transactionWaiter) isDeepEnough(ctx context.Context, provider process.ChainProvider, receipt *types.Receipt) (bool, error) {
	if receipt.BlockNumber == nil {
		return false, nil
	}

	currentBlock, err := provider.BlockNumber(ctx)
	if err != nil {
		return false, err
	}

	minedAt := receipt.BlockNumber.Uint64()
	if currentBlock < minedAt {
		return false, nil
	}

	return currentBlock-minedAt+1 >= tw.requiredConfirmations, nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (tw *transactionWaiter) IsInterfaceNil() bool {
	return tw == nil
}
