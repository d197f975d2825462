package stream

import (
	"io"

	"github.com/multiversx/mx-chain-safe-go/data/pending"
)

type wsConn interface {
	io.Closer
	ReadMessage() (messageType int, p []byte, err error)
	WriteMessage(messageType int, data []byte) error
}

// ChangesSource hands out subscriptions to the pending execution changes
type ChangesSource interface {
	Subscribe() (uint64, <-chan *pending.Change)
	Unsubscribe(id uint64)
	IsInterfaceNil() bool
}
