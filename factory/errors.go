package factory

import "errors"

// ErrMissingRedisAddress signals that the pending store is enabled without a redis address
var ErrMissingRedisAddress = errors.New("missing redis address for the pending store")

// ErrRedisUnreachable signals that the configured redis server did not answer the initial ping
var ErrRedisUnreachable = errors.New("redis server is unreachable")
