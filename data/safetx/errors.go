package safetx

import "errors"

// ErrInvalidAmount signals that a numeric field is not a valid unsigned 256-bit decimal
var ErrInvalidAmount = errors.New("invalid amount")

// ErrInvalidOperation signals that an unknown operation type was provided
var ErrInvalidOperation = errors.New("invalid operation")

// ErrInvalidSafeVersion signals that the provided Safe version is not a valid semantic version
var ErrInvalidSafeVersion = errors.New("invalid safe version")

// ErrNilTransactionData signals that a nil transaction data was provided
var ErrNilTransactionData = errors.New("nil transaction data")

// ErrNilHasher signals that a nil hasher was provided
var ErrNilHasher = errors.New("nil hasher")

// ErrNotMultisigTransaction signals that the transaction details do not describe a multisig transaction
var ErrNotMultisigTransaction = errors.New("not a multisig transaction")

// ErrMissingTransactionData signals that the transaction details do not carry the transaction data
var ErrMissingTransactionData = errors.New("missing transaction data")

// ErrUnknownDeploymentProps signals that an undeployed Safe carries an unsupported deployment props variant
var ErrUnknownDeploymentProps = errors.New("unknown deployment props")
