package factory

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/multiversx/mx-chain-safe-go/api/stream"
	"github.com/multiversx/mx-chain-safe-go/facade"
	"github.com/multiversx/mx-chain-safe-go/process"
	"github.com/multiversx/mx-chain-safe-go/process/activation"
	"github.com/multiversx/mx-chain-safe-go/process/execution"
	"github.com/multiversx/mx-chain-safe-go/process/proposal"
)

type gatewayClient interface {
	facade.SafeGateway
	proposal.Gateway
	GetOwnedSafes(ctx context.Context, chainID string, owner common.Address) ([]common.Address, error)
}

type abiCodec interface {
	execution.ExecTransactionCodec
	activation.DeploymentCodec
}

type changesBroadcasterHandler interface {
	stream.ChangesSource
	NumSubscribers() int
}

type dispatcherHandler interface {
	facade.ExecutionDispatcher
	activation.CallDispatcher
}

type ownedSafesHandler interface {
	facade.OwnedSafesProvider
	process.OwnedSafesInvalidator
}
