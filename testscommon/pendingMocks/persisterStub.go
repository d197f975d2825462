package pendingMocks

import "github.com/multiversx/mx-chain-safe-go/data/pending"

// PersisterStub -
type PersisterStub struct {
	SaveCalled    func(record *pending.Record) error
	RemoveCalled  func(txID string) error
	LoadAllCalled func() ([]*pending.Record, error)
}

// Save -
func (stub *PersisterStub) Save(record *pending.Record) error {
	if stub.SaveCalled != nil {
		return stub.SaveCalled(record)
	}

	return nil
}

// Remove -
func (stub *PersisterStub) Remove(txID string) error {
	if stub.RemoveCalled != nil {
		return stub.RemoveCalled(txID)
	}

	return nil
}

// LoadAll -
func (stub *PersisterStub) LoadAll() ([]*pending.Record, error) {
	if stub.LoadAllCalled != nil {
		return stub.LoadAllCalled()
	}

	return make([]*pending.Record, 0), nil
}

// IsInterfaceNil -
func (stub *PersisterStub) IsInterfaceNil() bool {
	return stub == nil
}
