package proposal

import "errors"

// ErrNilRequest signals that a nil request was provided
var ErrNilRequest = errors.New("nil request")

// ErrNilSafeInfo signals that the request carries no Safe
var ErrNilSafeInfo = errors.New("nil safe info")

// ErrNilTransactionData signals that the request carries no transaction data
var ErrNilTransactionData = errors.New("nil transaction data")

// ErrSenderNotOwner signals that the proposer is not an owner of the Safe
var ErrSenderNotOwner = errors.New("sender is not an owner of the safe")

// ErrNonceTooLow signals that the proposed nonce was already used by the Safe
var ErrNonceTooLow = errors.New("nonce too low")

// ErrInvalidSignature signals that the signer returned a malformed signature
var ErrInvalidSignature = errors.New("invalid signature")

// ErrNilGateway signals that a nil gateway client was provided
var ErrNilGateway = errors.New("nil gateway")

// ErrNilMessageSigner signals that a nil message signer was provided
var ErrNilMessageSigner = errors.New("nil message signer")

// ErrNilSecretStore signals that a nil secret store was provided
var ErrNilSecretStore = errors.New("nil secret store")
