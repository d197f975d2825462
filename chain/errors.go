package chain

import "errors"

// ErrMissingRPCURL signals that a chain was configured without an RPC endpoint
var ErrMissingRPCURL = errors.New("missing RPC URL")

// ErrInvalidDialTimeout signals that an invalid dial timeout was provided
var ErrInvalidDialTimeout = errors.New("invalid dial timeout")
