package hardware

import "errors"

// ErrNilHttpClient signals that a nil http client was provided
var ErrNilHttpClient = errors.New("nil http client")

// ErrNilRequest signals that a nil request was provided
var ErrNilRequest = errors.New("nil request")

// ErrMissingTransactionHash signals that the bridge answered without a transaction hash
var ErrMissingTransactionHash = errors.New("missing transaction hash")
