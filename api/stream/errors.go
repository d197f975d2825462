package stream

import "errors"

// ErrNilMarshalizer signals that a nil marshalizer has been provided
var ErrNilMarshalizer = errors.New("nil marshalizer")

// ErrNilWsConn signals that a nil web socket connection has been provided
var ErrNilWsConn = errors.New("nil web socket connection")

// ErrNilChangesSource signals that a nil changes source has been provided
var ErrNilChangesSource = errors.New("nil changes source")
