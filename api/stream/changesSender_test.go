package stream_test

import (
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-core-go/marshal"
	"github.com/multiversx/mx-chain-safe-go/api/stream"
	"github.com/multiversx/mx-chain-safe-go/data/pending"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errConnClosed = errors.New("connection closed")

type wsConnStub struct {
	mut        sync.Mutex
	written    [][]byte
	closed     chan struct{}
	closeOnce  sync.Once
	writeError error
}

func newWsConnStub() *wsConnStub {
	return &wsConnStub{
		closed: make(chan struct{}),
	}
}

// Close -
func (conn *wsConnStub) Close() error {
	conn.closeOnce.Do(func() {
		close(conn.closed)
	})

	return nil
}

// ReadMessage -
func (conn *wsConnStub) ReadMessage() (int, []byte, error) {
	<-conn.closed
	return 0, nil, errConnClosed
}

// WriteMessage -
func (conn *wsConnStub) WriteMessage(_ int, data []byte) error {
	conn.mut.Lock()
	defer conn.mut.Unlock()

	if conn.writeError != nil {
		return conn.writeError
	}
	conn.written = append(conn.written, data)

	return nil
}

func (conn *wsConnStub) numWritten() int {
	conn.mut.Lock()
	defer conn.mut.Unlock()

	return len(conn.written)
}

type changesSourceStub struct {
	mut          sync.Mutex
	ch           chan *pending.Change
	unsubscribed bool
}

// Subscribe -
func (source *changesSourceStub) Subscribe() (uint64, <-chan *pending.Change) {
	return 7, source.ch
}

// Unsubscribe -
func (source *changesSourceStub) Unsubscribe(id uint64) {
	source.mut.Lock()
	source.unsubscribed = id == 7
	source.mut.Unlock()
}

// IsInterfaceNil -
func (source *changesSourceStub) IsInterfaceNil() bool {
	return source == nil
}

func (source *changesSourceStub) isUnsubscribed() bool {
	source.mut.Lock()
	defer source.mut.Unlock()

	return source.unsubscribed
}

func TestNewChangesSender(t *testing.T) {
	t.Parallel()

	t.Run("nil marshalizer should error", func(t *testing.T) {
		t.Parallel()

		cs, err := stream.NewChangesSender(nil, newWsConnStub(), &changesSourceStub{})
		assert.True(t, check.IfNil(cs))
		assert.Equal(t, stream.ErrNilMarshalizer, err)
	})
	t.Run("nil connection should error", func(t *testing.T) {
		t.Parallel()

		cs, err := stream.NewChangesSender(&marshal.JsonMarshalizer{}, nil, &changesSourceStub{})
		assert.True(t, check.IfNil(cs))
		assert.Equal(t, stream.ErrNilWsConn, err)
	})
	t.Run("nil source should error", func(t *testing.T) {
		t.Parallel()

		cs, err := stream.NewChangesSender(&marshal.JsonMarshalizer{}, newWsConnStub(), nil)
		assert.True(t, check.IfNil(cs))
		assert.Equal(t, stream.ErrNilChangesSource, err)
	})
	t.Run("should work", func(t *testing.T) {
		t.Parallel()

		cs, err := stream.NewChangesSender(&marshal.JsonMarshalizer{}, newWsConnStub(), &changesSourceStub{})
		assert.False(t, check.IfNil(cs))
		assert.Nil(t, err)
	})
}

func TestChangesSender_StartSendingBlocking(t *testing.T) {
	t.Parallel()

	t.Run("subscription end should close the connection", func(t *testing.T) {
		t.Parallel()

		conn := newWsConnStub()
		source := &changesSourceStub{ch: make(chan *pending.Change, 2)}
		cs, _ := stream.NewChangesSender(&marshal.JsonMarshalizer{}, conn, source)

		source.ch <- &pending.Change{
			Type:   pending.ChangeStarted,
			Record: &pending.Record{TxID: "tx1", Status: pending.StatusExecuting},
		}
		close(source.ch)

		cs.StartSendingBlocking()

		require.Equal(t, 1, conn.numWritten())
		received := &pending.Change{}
		err := json.Unmarshal(conn.written[0], received)
		require.Nil(t, err)
		assert.Equal(t, pending.ChangeStarted, received.Type)
		assert.Equal(t, "tx1", received.Record.TxID)
		assert.True(t, source.isUnsubscribed())

		select {
		case <-conn.closed:
		default:
			assert.Fail(t, "connection should have been closed")
		}
	})
	t.Run("peer gone should end the stream", func(t *testing.T) {
		t.Parallel()

		conn := newWsConnStub()
		source := &changesSourceStub{ch: make(chan *pending.Change)}
		cs, _ := stream.NewChangesSender(&marshal.JsonMarshalizer{}, conn, source)

		done := make(chan struct{})
		go func() {
			cs.StartSendingBlocking()
			close(done)
		}()

		_ = conn.Close()
		select {
		case <-done:
		case <-time.After(time.Second):
			require.Fail(t, "stream should have ended")
		}
		assert.True(t, source.isUnsubscribed())
	})
	t.Run("write error should end the stream", func(t *testing.T) {
		t.Parallel()

		conn := newWsConnStub()
		conn.writeError = errors.New("broken pipe")
		source := &changesSourceStub{ch: make(chan *pending.Change, 1)}
		cs, _ := stream.NewChangesSender(&marshal.JsonMarshalizer{}, conn, source)

		source.ch <- &pending.Change{Type: pending.ChangeCleared, Record: &pending.Record{TxID: "tx1"}}
		cs.StartSendingBlocking()

		assert.Equal(t, 0, conn.numWritten())
		assert.True(t, source.isUnsubscribed())
	})
}
