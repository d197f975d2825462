package facade

import "errors"

// ErrNilPendingTracker signals that a nil pending tracker has been provided
var ErrNilPendingTracker = errors.New("nil pending tracker")

// ErrNilChangesSource signals that a nil pending changes source has been provided
var ErrNilChangesSource = errors.New("nil pending changes source")

// ErrNilGateway signals that a nil gateway has been provided
var ErrNilGateway = errors.New("nil gateway")

// ErrNilDispatcher signals that a nil execution dispatcher has been provided
var ErrNilDispatcher = errors.New("nil execution dispatcher")

// ErrNilProposer signals that a nil proposer has been provided
var ErrNilProposer = errors.New("nil proposer")

// ErrNilActivator signals that a nil activator has been provided
var ErrNilActivator = errors.New("nil activator")

// ErrNilReconciler signals that a nil reconciler has been provided
var ErrNilReconciler = errors.New("nil reconciler")

// ErrNilOwnedSafesProvider signals that a nil owned safes provider has been provided
var ErrNilOwnedSafesProvider = errors.New("nil owned safes provider")

// ErrNilStatusMetrics signals that a nil status metrics handler has been provided
var ErrNilStatusMetrics = errors.New("nil status metrics handler")

// ErrNilMetricsHandlerProvider signals that a nil prometheus handler provider has been provided
var ErrNilMetricsHandlerProvider = errors.New("nil metrics handler provider")

// ErrInvalidValue signals that an invalid value has been provided
var ErrInvalidValue = errors.New("invalid value")

// ErrNoApiRoutesConfig signals that no configuration was found for API routes
var ErrNoApiRoutesConfig = errors.New("no configuration found for API routes")

// ErrNilRequest signals that a nil request has been provided
var ErrNilRequest = errors.New("nil request")

// ErrPendingExecutionNotFound signals that the transaction has no pending execution record
var ErrPendingExecutionNotFound = errors.New("pending execution not found")
