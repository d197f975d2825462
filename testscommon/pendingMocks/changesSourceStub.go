package pendingMocks

import "github.com/multiversx/mx-chain-safe-go/data/pending"

// ChangesSourceStub -
type ChangesSourceStub struct {
	SubscribeCalled   func() (uint64, <-chan *pending.Change)
	UnsubscribeCalled func(id uint64)
}

// Subscribe -
func (stub *ChangesSourceStub) Subscribe() (uint64, <-chan *pending.Change) {
	if stub.SubscribeCalled != nil {
		return stub.SubscribeCalled()
	}

	return 0, make(chan *pending.Change)
}

// Unsubscribe -
func (stub *ChangesSourceStub) Unsubscribe(id uint64) {
	if stub.UnsubscribeCalled != nil {
		stub.UnsubscribeCalled(id)
	}
}

// IsInterfaceNil -
func (stub *ChangesSourceStub) IsInterfaceNil() bool {
	return stub == nil
}
