package pending

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// ExecutionKind is the way a transaction was submitted
type ExecutionKind string

const (
	// KindSingle marks a transaction submitted by a wallet, the artifact is a transaction hash
	KindSingle ExecutionKind = "SINGLE"
	// KindRelay marks a transaction submitted by a sponsor relay, the artifact is a task id
	KindRelay ExecutionKind = "RELAY"
)

// Status is the lifecycle state of a pending execution
type Status string

const (
	// StatusExecuting is the initial state, set when a backend returned an artifact
	StatusExecuting Status = "EXECUTING"
	// StatusSuccess is the terminal state set once the indexer reported the execution
	StatusSuccess Status = "SUCCESS"
	// StatusError is the terminal state set when the execution is known to have failed
	StatusError Status = "ERROR"
)

// ChangeType is the kind of mutation notified to the tracker handlers
type ChangeType string

const (
	// ChangeStarted is notified when a record is created or restarted
	ChangeStarted ChangeType = "STARTED"
	// ChangeSucceeded is notified when a record moves to StatusSuccess
	ChangeSucceeded ChangeType = "SUCCEEDED"
	// ChangeFailed is notified when a record moves to StatusError
	ChangeFailed ChangeType = "FAILED"
	// ChangeCleared is notified when a record is removed
	ChangeCleared ChangeType = "CLEARED"
)

// Artifact is the chain visible result of a dispatch. SafeNonce is only meaningful when HasSafeNonce is set,
// plain calls such as a standalone Safe deployment do not consume a Safe nonce.
type Artifact struct {
	ChainID       string         `json:"chainId" msgpack:"chainId"`
	SafeAddress   common.Address `json:"safeAddress" msgpack:"safeAddress"`
	SafeNonce     uint64         `json:"safeNonce" msgpack:"safeNonce"`
	HasSafeNonce  bool           `json:"hasSafeNonce" msgpack:"hasSafeNonce"`
	TxHash        common.Hash    `json:"txHash" msgpack:"txHash"`
	TaskID        string         `json:"taskId" msgpack:"taskId"`
	WalletAddress common.Address `json:"walletAddress" msgpack:"walletAddress"`
	WalletNonce   uint64         `json:"walletNonce" msgpack:"walletNonce"`
}

// Record is an in-flight execution of a Safe transaction
type Record struct {
	TxID        string        `json:"txId" msgpack:"txId"`
	Kind        ExecutionKind `json:"kind" msgpack:"kind"`
	Artifact    Artifact      `json:"artifact" msgpack:"artifact"`
	Status      Status        `json:"status" msgpack:"status"`
	StartedAt   time.Time     `json:"startedAt" msgpack:"startedAt"`
	CompletedAt *time.Time    `json:"completedAt,omitempty" msgpack:"completedAt"`
	Error       string        `json:"error,omitempty" msgpack:"error"`
}

// IsTerminal returns true if the record reached SUCCESS or ERROR
func (r *Record) IsTerminal() bool {
	return r.Status == StatusSuccess || r.Status == StatusError
}

// Clone returns a copy of the record which can be handed out without sharing state
func (r *Record) Clone() *Record {
	cloned := *r
	if r.CompletedAt != nil {
		completedAt := *r.CompletedAt
		cloned.CompletedAt = &completedAt
	}

	return &cloned
}

// Change is a mutation of a record, as notified to the change subscribers
type Change struct {
	Type   ChangeType `json:"type"`
	Record *Record    `json:"record"`
}
