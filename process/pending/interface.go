package pending

import "github.com/multiversx/mx-chain-safe-go/data/pending"

// Persister mirrors the tracker state so in-flight executions survive a restart
type Persister interface {
	Save(record *pending.Record) error
	Remove(txID string) error
	LoadAll() ([]*pending.Record, error)
	IsInterfaceNil() bool
}
