package disabled

import "github.com/multiversx/mx-chain-safe-go/data/pending"

// pendingPersister is the disabled implementation used when the pending store is switched off
type pendingPersister struct {
}

// NewPendingPersister creates a new instance of type pendingPersister
func NewPendingPersister() *pendingPersister {
	return &pendingPersister{}
}

// Save does nothing
func (pp *pendingPersister) Save(_ *pending.Record) error {
	return nil
}

// Remove does nothing
func (pp *pendingPersister) Remove(_ string) error {
	return nil
}

// LoadAll returns an empty slice
func (pp *pendingPersister) LoadAll() ([]*pending.Record, error) {
	return make([]*pending.Record, 0), nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (pp *pendingPersister) IsInterfaceNil() bool {
	return pp == nil
}
