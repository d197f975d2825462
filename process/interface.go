package process

import (
	"context"
	"crypto/ecdsa"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/multiversx/mx-chain-safe-go/config"
	"github.com/multiversx/mx-chain-safe-go/data/pending"
	"github.com/multiversx/mx-chain-safe-go/data/safetx"
	"github.com/multiversx/mx-chain-safe-go/data/signer"
	"github.com/multiversx/mx-chain-safe-go/relay"
)

// ChainProvider is the node RPC access used for submission and receipt tracking. *ethclient.Client satisfies it.
type ChainProvider interface {
	ChainID(ctx context.Context) (*big.Int, error)
	BlockNumber(ctx context.Context) (uint64, error)
	EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	TransactionByHash(ctx context.Context, hash common.Hash) (tx *types.Transaction, isPending bool, err error)
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

// ChainProvidersHolder resolves the chain provider of a chain
type ChainProvidersHolder interface {
	ProviderForChain(chainID string) (ChainProvider, error)
	IsInterfaceNil() bool
}

// ChainsConfigHandler gives access to the per chain deployment configuration
type ChainsConfigHandler interface {
	ChainConfig(chainID string) (config.ChainConfig, error)
	IsInterfaceNil() bool
}

// SecretStore hands out the raw keys of the wallets it holds
type SecretStore interface {
	GetPrivateKey(address common.Address) (*ecdsa.PrivateKey, error)
	IsInterfaceNil() bool
}

// SignerRegistry resolves the signer record of a wallet
type SignerRegistry interface {
	GetSigner(address common.Address) (*signer.Record, error)
	IsInterfaceNil() bool
}

// HardwareExecutionRequest is what a hardware signer needs to sign and submit a transaction
type HardwareExecutionRequest struct {
	ChainID        *big.Int
	DerivationPath string
	From           common.Address
	To             common.Address
	Value          *big.Int
	Data           []byte
}

// HardwareService signs and submits transactions with a hardware device. The transport stays open
// until Disconnect is called.
type HardwareService interface {
	ExecuteTransaction(ctx context.Context, request *HardwareExecutionRequest) (common.Hash, error)
	Disconnect() error
	IsInterfaceNil() bool
}

// TransactionDetailsProvider fetches the canonical transaction record from the gateway
type TransactionDetailsProvider interface {
	GetTransactionDetails(ctx context.Context, chainID string, txID string) (*safetx.TransactionDetails, error)
	IsInterfaceNil() bool
}

// RelayClient submits transactions to a sponsor relay and queries their status
type RelayClient interface {
	Relay(ctx context.Context, request *relay.RelayRequest) (*relay.RelayResponse, error)
	GetTaskStatus(ctx context.Context, taskID string) (*relay.TaskStatusResponse, error)
	IsInterfaceNil() bool
}

// PendingTracker owns the in-flight execution records. It is the only writer of that state.
type PendingTracker interface {
	Start(txID string, kind pending.ExecutionKind, artifact pending.Artifact)
	MarkSuccess(txID string, txHash common.Hash)
	MarkError(txID string, reason error)
	Clear(txID string)
	Get(txID string) (*pending.Record, bool)
	GetAll() []*pending.Record
	FindBySafeNonce(chainID string, safe common.Address, nonce uint64) []*pending.Record
	IsInterfaceNil() bool
}

// SafeTxHasher computes the EIP-712 hash of a Safe transaction
type SafeTxHasher interface {
	ComputeSafeTxHash(chainID *big.Int, safe common.Address, version string, data *safetx.TransactionData) (common.Hash, error)
	IsInterfaceNil() bool
}

// OwnedSafesInvalidator drops the cached lists of Safes owned by a wallet
type OwnedSafesInvalidator interface {
	InvalidateChain(chainID string)
	IsInterfaceNil() bool
}
