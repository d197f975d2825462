package gateway

import "errors"

// ErrNilHttpClient signals that a nil http client was provided
var ErrNilHttpClient = errors.New("nil http client")

// ErrInvalidResponse signals that the gateway answered with a payload that could not be decoded
var ErrInvalidResponse = errors.New("invalid gateway response")

// ErrEmptyTxID signals that an empty transaction id was provided
var ErrEmptyTxID = errors.New("empty transaction id")

// ErrNilProposal signals that a nil proposal was provided
var ErrNilProposal = errors.New("nil proposal")
