package pendingMocks

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/multiversx/mx-chain-safe-go/data/pending"
)

// PendingTrackerStub -
type PendingTrackerStub struct {
	StartCalled           func(txID string, kind pending.ExecutionKind, artifact pending.Artifact)
	MarkSuccessCalled     func(txID string, txHash common.Hash)
	MarkErrorCalled       func(txID string, reason error)
	ClearCalled           func(txID string)
	GetCalled             func(txID string) (*pending.Record, bool)
	GetAllCalled          func() []*pending.Record
	FindBySafeNonceCalled func(chainID string, safe common.Address, nonce uint64) []*pending.Record
}

// Start -
func (stub *PendingTrackerStub) Start(txID string, kind pending.ExecutionKind, artifact pending.Artifact) {
	if stub.StartCalled != nil {
		stub.StartCalled(txID, kind, artifact)
	}
}

// MarkSuccess -
func (stub *PendingTrackerStub) MarkSuccess(txID string, txHash common.Hash) {
	if stub.MarkSuccessCalled != nil {
		stub.MarkSuccessCalled(txID, txHash)
	}
}

// MarkError -
func (stub *PendingTrackerStub) MarkError(txID string, reason error) {
	if stub.MarkErrorCalled != nil {
		stub.MarkErrorCalled(txID, reason)
	}
}

// Clear -
func (stub *PendingTrackerStub) Clear(txID string) {
	if stub.ClearCalled != nil {
		stub.ClearCalled(txID)
	}
}

// Get -
func (stub *PendingTrackerStub) Get(txID string) (*pending.Record, bool) {
	if stub.GetCalled != nil {
		return stub.GetCalled(txID)
	}

	return nil, false
}

// GetAll -
func (stub *PendingTrackerStub) GetAll() []*pending.Record {
	if stub.GetAllCalled != nil {
		return stub.GetAllCalled()
	}

	return make([]*pending.Record, 0)
}

// FindBySafeNonce -
func (stub *PendingTrackerStub) FindBySafeNonce(chainID string, safe common.Address, nonce uint64) []*pending.Record {
	if stub.FindBySafeNonceCalled != nil {
		return stub.FindBySafeNonceCalled(chainID, safe, nonce)
	}

	return make([]*pending.Record, 0)
}

// IsInterfaceNil -
func (stub *PendingTrackerStub) IsInterfaceNil() bool {
	return stub == nil
}
