package pending

import (
	"sync"

	"github.com/multiversx/mx-chain-safe-go/data/pending"
)

type changesBroadcaster struct {
	mutSubscribers sync.RWMutex
	subscribers    map[uint64]chan *pending.Change
	nextID         uint64
	bufferSize     int
}

// NewChangesBroadcaster creates the component fanning out the tracker changes to any number of subscribers.
// A subscriber whose buffer is full misses the change.
func NewChangesBroadcaster(bufferSize int) (*changesBroadcaster, error) {
	if bufferSize < 1 {
		return nil, ErrInvalidBufferSize
	}

	return &changesBroadcaster{
		subscribers: make(map[uint64]chan *pending.Change),
		bufferSize:  bufferSize,
	}, nil
}

// Handle is the ChangeHandler to be registered on the pending tracker
func (cb *changesBroadcaster) Handle(record *pending.Record, change pending.ChangeType) {
	cb.mutSubscribers.RLock()
	defer cb.mutSubscribers.RUnlock()

	for id, ch := range cb.subscribers {
		select {
		case ch <- &pending.Change{Type: change, Record: record.Clone()}:
		default:
			log.Debug("pending change dropped for slow subscriber", "subscriber", id, "txID", record.TxID, "change", change)
		}
	}
}

// Subscribe returns a new subscription and the channel delivering its changes
func (cb *changesBroadcaster) Subscribe() (uint64, <-chan *pending.Change) {
	cb.mutSubscribers.Lock()
	defer cb.mutSubscribers.Unlock()

	cb.nextID++
	ch := make(chan *pending.Change, cb.bufferSize)
	cb.subscribers[cb.nextID] = ch

	return cb.nextID, ch
}

// Unsubscribe removes the subscription and closes its channel
func (cb *changesBroadcaster) Unsubscribe(id uint64) {
	cb.mutSubscribers.Lock()
	defer cb.mutSubscribers.Unlock()

	ch, found := cb.subscribers[id]
	if !found {
		return
	}

	delete(cb.subscribers, id)
	close(ch)
}

// NumSubscribers returns the number of active subscriptions
func (cb *changesBroadcaster) NumSubscribers() int {
	cb.mutSubscribers.RLock()
	defer cb.mutSubscribers.RUnlock()

	return len(cb.subscribers)
}

// Close removes all the subscriptions
func (cb *changesBroadcaster) Close() error {
	cb.mutSubscribers.Lock()
	defer cb.mutSubscribers.Unlock()

	for id, ch := range cb.subscribers {
		delete(cb.subscribers, id)
		close(ch)
	}

	return nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (cb *changesBroadcaster) IsInterfaceNil() bool {
	return cb == nil
}
