package pending

import (
	"testing"

	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-safe-go/data/pending"
	"github.com/multiversx/mx-chain-safe-go/testscommon/statusHandler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChangesBroadcaster(t *testing.T) {
	t.Parallel()

	cb, err := NewChangesBroadcaster(0)
	assert.True(t, check.IfNil(cb))
	assert.Equal(t, ErrInvalidBufferSize, err)

	cb, err = NewChangesBroadcaster(1)
	assert.False(t, check.IfNil(cb))
	assert.Nil(t, err)
}

func TestChangesBroadcaster_SubscribersReceiveTrackerChanges(t *testing.T) {
	t.Parallel()

	cb, _ := NewChangesBroadcaster(10)
	pt, _ := NewPendingTracker(ArgsPendingTracker{
		AppStatusHandler: &statusHandler.AppStatusHandlerStub{},
	})
	pt.RegisterHandler(cb.Handle)

	id1, ch1 := cb.Subscribe()
	_, ch2 := cb.Subscribe()
	assert.NotEqual(t, uint64(0), id1)
	assert.Equal(t, 2, cb.NumSubscribers())

	pt.Start("tx1", pending.KindSingle, createArtifact(5))
	pt.MarkSuccess("tx1", testHash)

	for _, ch := range []<-chan *pending.Change{ch1, ch2} {
		change := <-ch
		assert.Equal(t, pending.ChangeStarted, change.Type)
		assert.Equal(t, "tx1", change.Record.TxID)
		assert.Equal(t, pending.StatusExecuting, change.Record.Status)

		change = <-ch
		assert.Equal(t, pending.ChangeSucceeded, change.Type)
		assert.Equal(t, pending.StatusSuccess, change.Record.Status)
	}

	cb.Unsubscribe(id1)
	_, isOpen := <-ch1
	assert.False(t, isOpen)
	assert.Equal(t, 1, cb.NumSubscribers())

	cb.Unsubscribe(id1)
	assert.Equal(t, 1, cb.NumSubscribers())
}

func TestChangesBroadcaster_SlowSubscriberShouldNotBlock(t *testing.T) {
	t.Parallel()

	cb, _ := NewChangesBroadcaster(1)
	_, ch := cb.Subscribe()

	record := &pending.Record{TxID: "tx1", Status: pending.StatusExecuting}
	cb.Handle(record, pending.ChangeStarted)
	cb.Handle(record, pending.ChangeCleared)

	change := <-ch
	assert.Equal(t, pending.ChangeStarted, change.Type)
	select {
	case <-ch:
		require.Fail(t, "second change should have been dropped")
	default:
	}
}

func TestChangesBroadcaster_Close(t *testing.T) {
	t.Parallel()

	cb, _ := NewChangesBroadcaster(1)
	_, ch1 := cb.Subscribe()
	_, ch2 := cb.Subscribe()

	err := cb.Close()
	assert.Nil(t, err)
	assert.Equal(t, 0, cb.NumSubscribers())

	_, isOpen := <-ch1
	assert.False(t, isOpen)
	_, isOpen = <-ch2
	assert.False(t, isOpen)
}
