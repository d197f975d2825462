package txWaiter

import "errors"

// ErrInvalidRetriesConfig signals that the lookup retries configuration is invalid
var ErrInvalidRetriesConfig = errors.New("invalid retries config")

// ErrInvalidPollingInterval signals that an invalid receipt polling interval was provided
var ErrInvalidPollingInterval = errors.New("invalid polling interval")
