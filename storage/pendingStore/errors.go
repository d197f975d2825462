package pendingStore

import "errors"

// ErrNilRedisClient signals that a nil redis client was provided
var ErrNilRedisClient = errors.New("nil redis client")

// ErrInvalidOperationTimeout signals that an invalid operation timeout was provided
var ErrInvalidOperationTimeout = errors.New("invalid operation timeout")

// ErrEmptyKeyPrefix signals that an empty key prefix was provided
var ErrEmptyKeyPrefix = errors.New("empty key prefix")

// ErrEncodeFailed signals that a record could not be encoded
var ErrEncodeFailed = errors.New("failed to encode record")
