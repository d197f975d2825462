package signerRegistry

import "errors"

// ErrInvalidSignerAddress signals that a configured signer has an invalid address
var ErrInvalidSignerAddress = errors.New("invalid signer address")

// ErrInvalidSignerType signals that a configured signer has an unknown type
var ErrInvalidSignerType = errors.New("invalid signer type")

// ErrDuplicatedSigner signals that the same wallet was configured twice
var ErrDuplicatedSigner = errors.New("duplicated signer")

// ErrSignerNotFound signals that no signer is configured for the requested wallet
var ErrSignerNotFound = errors.New("signer not found")
