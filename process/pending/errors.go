package pending

import "errors"

// ErrNilPersister signals that a nil persister was provided
var ErrNilPersister = errors.New("nil persister")

// ErrInvalidBufferSize signals that an invalid subscriber buffer size was provided
var ErrInvalidBufferSize = errors.New("invalid buffer size")
