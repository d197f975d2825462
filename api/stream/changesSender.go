package stream

import (
	"github.com/gorilla/websocket"
	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-core-go/marshal"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/multiversx/mx-chain-safe-go/data/pending"
)

var log = logger.GetOrCreate("api/stream")

type changesSender struct {
	marshalizer marshal.Marshalizer
	conn        wsConn
	source      ChangesSource
}

// NewChangesSender returns a component able to push the pending execution changes on a websocket connection
func NewChangesSender(marshalizer marshal.Marshalizer, conn wsConn, source ChangesSource) (*changesSender, error) {
	if check.IfNil(marshalizer) {
		return nil, ErrNilMarshalizer
	}
	if conn == nil {
		return nil, ErrNilWsConn
	}
	if check.IfNil(source) {
		return nil, ErrNilChangesSource
	}

	return &changesSender{
		marshalizer: marshalizer,
		conn:        conn,
		source:      source,
	}, nil
}

// StartSendingBlocking writes every change on the connection until the peer goes away or the source
// ends the subscription. The connection is closed on return.
func (cs *changesSender) StartSendingBlocking() {
	id, changes := cs.source.Subscribe()
	defer func() {
		cs.source.Unsubscribe(id)
		err := cs.conn.Close()
		log.LogIfError(err)
	}()

	peerGone := make(chan struct{})
	go cs.monitorConnection(peerGone)

	log.Debug("pending changes stream started", "subscription", id)
	for {
		select {
		case change, ok := <-changes:
			if !ok {
				log.Debug("pending changes subscription ended", "subscription", id)
				return
			}

			err := cs.send(change)
			if err != nil {
				log.Debug("pending changes stream write error", "subscription", id, "error", err)
				return
			}
		case <-peerGone:
			log.Debug("pending changes stream closed by peer", "subscription", id)
			return
		}
	}
}

func (cs *changesSender) send(change *pending.Change) error {
	buff, err := cs.marshalizer.Marshal(change)
	if err != nil {
		return err
	}

	return cs.conn.WriteMessage(websocket.TextMessage, buff)
}

// monitorConnection drains the incoming messages, any read error means the connection is unusable
func (cs *changesSender) monitorConnection(peerGone chan struct{}) {
	defer close(peerGone)

	for {
		_, _, err := cs.conn.ReadMessage()
		if err != nil {
			return
		}
	}
}

// IsInterfaceNil returns true if there is no value under the interface
func (cs *changesSender) IsInterfaceNil() bool {
	return cs == nil
}
