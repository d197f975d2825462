package relayStatus

import "errors"

// ErrInvalidPollingInterval signals that an invalid polling interval was provided
var ErrInvalidPollingInterval = errors.New("invalid polling interval")

// ErrInvalidTimeout signals that an invalid timeout was provided
var ErrInvalidTimeout = errors.New("invalid timeout")

// ErrNilPoller signals that a nil poller was provided
var ErrNilPoller = errors.New("nil poller")
