package abi

import "errors"

// ErrNilTransactionData signals that nil transaction data was provided
var ErrNilTransactionData = errors.New("nil transaction data")

// ErrEmptyBatch signals that a MultiSend batch without calls was provided
var ErrEmptyBatch = errors.New("empty batch")

// ErrInvalidOperation signals that a call carries an unknown operation
var ErrInvalidOperation = errors.New("invalid operation")

// ErrNilSetupArgs signals that nil setup arguments were provided
var ErrNilSetupArgs = errors.New("nil setup arguments")
