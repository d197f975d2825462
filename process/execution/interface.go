package execution

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/multiversx/mx-chain-safe-go/data/pending"
	"github.com/multiversx/mx-chain-safe-go/data/safetx"
	"github.com/multiversx/mx-chain-safe-go/process/txWaiter"
)

// Executor turns an authorized transaction or a raw call into a chain visible artifact
type Executor interface {
	ExecuteTransaction(ctx context.Context, request *ExecutionRequest) (*Artifact, error)
	ExecuteCall(ctx context.Context, request *CallRequest) (*Artifact, error)
	Kind() pending.ExecutionKind
	IsInterfaceNil() bool
}

// TransactionEncoder builds the execTransaction calldata of a Safe transaction
type TransactionEncoder interface {
	Encode(tx *safetx.SafeTransaction) ([]byte, error)
	IsInterfaceNil() bool
}

// TransactionWaiter follows a broadcast transaction until it is mined
type TransactionWaiter interface {
	WaitForTransaction(ctx context.Context, chainID string, txHash common.Hash) (*txWaiter.Result, error)
	IsInterfaceNil() bool
}

// RelayMonitor drives the status of relayed executions
type RelayMonitor interface {
	Watch(chainID string, txID string, taskID string)
	IsInterfaceNil() bool
}

// ExecTransactionCodec is the calldata codec used by the transaction encoder
type ExecTransactionCodec interface {
	EncodeExecTransaction(data *safetx.TransactionData, signatures []byte) ([]byte, error)
	IsInterfaceNil() bool
}
