package facade

import (
	"context"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/multiversx/mx-chain-safe-go/data/safetx"
	"github.com/multiversx/mx-chain-safe-go/gateway"
	"github.com/multiversx/mx-chain-safe-go/process/activation"
	"github.com/multiversx/mx-chain-safe-go/process/execution"
	"github.com/multiversx/mx-chain-safe-go/process/proposal"
)

// SafeGateway is the part of the transaction service the facade reads from
type SafeGateway interface {
	GetTransactionDetails(ctx context.Context, chainID string, txID string) (*safetx.TransactionDetails, error)
	GetTransactionHistory(ctx context.Context, chainID string, safe common.Address, cursor string) (*gateway.HistoryPage, error)
	GetSafeInfo(ctx context.Context, chainID string, safe common.Address) (*safetx.SafeInfo, error)
	IsInterfaceNil() bool
}

// ExecutionDispatcher executes authorized Safe transactions
type ExecutionDispatcher interface {
	ExecuteTransaction(ctx context.Context, request *execution.ExecutionRequest) (*execution.Artifact, error)
	IsInterfaceNil() bool
}

// Proposer registers new transactions and confirmations with the gateway
type Proposer interface {
	RecommendedNonce(ctx context.Context, chainID string, safe common.Address) (uint64, error)
	Propose(ctx context.Context, request *proposal.ProposeRequest) (*safetx.TransactionDetails, error)
	Confirm(ctx context.Context, request *proposal.ConfirmRequest) error
	IsInterfaceNil() bool
}

// Activator deploys undeployed Safes
type Activator interface {
	Activate(ctx context.Context, request *activation.ActivationRequest) (*activation.ActivationResult, error)
	ActivateWithTransaction(ctx context.Context, request *activation.ActivationRequest, tx *safetx.SafeTransaction) (*activation.ActivationResult, error)
	IsInterfaceNil() bool
}

// OwnedSafesProvider lists the Safes owned by an address
type OwnedSafesProvider interface {
	GetOwnedSafes(ctx context.Context, chainID string, owner common.Address) ([]common.Address, error)
	IsInterfaceNil() bool
}

// StatusMetricsHandler exposes the current values of the node metrics
type StatusMetricsHandler interface {
	StatusMetricsMap() map[string]interface{}
	IsInterfaceNil() bool
}

// MetricsHandlerProvider provides the prometheus scrape handler
type MetricsHandlerProvider interface {
	Handler() http.Handler
	IsInterfaceNil() bool
}
