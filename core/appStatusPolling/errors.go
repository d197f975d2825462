package appStatusPolling

import "errors"

// ErrNilAppStatusHandler will be returned when the AppStatusHandler is nil
var ErrNilAppStatusHandler = errors.New("AppStatusHandler is nil")

// ErrPollingDurationToSmall will be returned when the polling duration is not big enough
var ErrPollingDurationToSmall = errors.New("polling duration is too small")

// ErrNilHandlerFunc will be returned when the polling function is nil
var ErrNilHandlerFunc = errors.New("handler function is nil")
