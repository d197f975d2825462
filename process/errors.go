package process

import "errors"

// ErrSignerUnavailable signals that the wallet credentials could not be obtained
var ErrSignerUnavailable = errors.New("signer unavailable")

// ErrWrongSignerType signals that the signer record does not match the selected execution backend
var ErrWrongSignerType = errors.New("wrong signer type")

// ErrMissingDerivationPath signals that a hardware signer record carries no derivation path
var ErrMissingDerivationPath = errors.New("missing derivation path")

// ErrSafeTransactionNotFound signals that the Safe transaction could not be reconstructed from its details
var ErrSafeTransactionNotFound = errors.New("safe transaction not found")

// ErrRelayRejected signals that the relay response carried no task identifier
var ErrRelayRejected = errors.New("relay rejected the transaction")

// ErrTransactionNotFound signals that the chain never reported the transaction after all retries
var ErrTransactionNotFound = errors.New("transaction not found")

// ErrReverted signals that the transaction was mined but reverted
var ErrReverted = errors.New("transaction reverted")

// ErrRelayFailed signals that a relay task ended in a non-success state or timed out
var ErrRelayFailed = errors.New("relay task failed")

// ErrNonceConflict signals that a pending execution was superseded by another transaction with the same nonce
var ErrNonceConflict = errors.New("nonce conflict")

// ErrTransactionReplaced signals that the provider reported the transaction as replaced by a repriced one
var ErrTransactionReplaced = errors.New("transaction replaced")

// ErrHardwareDisconnect signals that the hardware transport could not be released
var ErrHardwareDisconnect = errors.New("hardware disconnect failed")

// ErrUnknownChain signals that no configuration exists for the requested chain
var ErrUnknownChain = errors.New("unknown chain")

// ErrNilChainProviders signals that a nil chain providers holder was provided
var ErrNilChainProviders = errors.New("nil chain providers")

// ErrNilPendingTracker signals that a nil pending tracker was provided
var ErrNilPendingTracker = errors.New("nil pending tracker")

// ErrNilTransactionDetailsProvider signals that a nil transaction details provider was provided
var ErrNilTransactionDetailsProvider = errors.New("nil transaction details provider")

// ErrNilRelayClient signals that a nil relay client was provided
var ErrNilRelayClient = errors.New("nil relay client")

// ErrNilAppStatusHandler signals that a nil app status handler was provided
var ErrNilAppStatusHandler = errors.New("nil app status handler")

// ErrNilChainsConfig signals that a nil chains config was provided
var ErrNilChainsConfig = errors.New("nil chains config")

// ErrNilHasher signals that a nil hasher was provided
var ErrNilHasher = errors.New("nil hasher")

// ErrEmptyTxID signals that an empty transaction identifier was provided
var ErrEmptyTxID = errors.New("empty transaction id")

// ErrInvalidValue signals that an invalid value was provided
var ErrInvalidValue = errors.New("invalid value")
