package reconciliation

import "errors"

// ErrNilSeenCache signals that a nil seen cache was provided
var ErrNilSeenCache = errors.New("nil seen cache")

// ErrNilOwnedSafesInvalidator signals that a nil owned safes invalidator was provided
var ErrNilOwnedSafesInvalidator = errors.New("nil owned safes invalidator")

// ErrNilReconciler signals that a nil reconciler was provided
var ErrNilReconciler = errors.New("nil reconciler")

// ErrNilHistoryProvider signals that a nil history provider was provided
var ErrNilHistoryProvider = errors.New("nil history provider")

// ErrInvalidPollingInterval signals that an invalid polling interval was provided
var ErrInvalidPollingInterval = errors.New("invalid polling interval")

// ErrNoWatchedSafes signals that the history monitor was given nothing to watch
var ErrNoWatchedSafes = errors.New("no watched safes")
