package relay

import "errors"

// ErrNilHttpClient signals that a nil http client was provided
var ErrNilHttpClient = errors.New("nil http client")

// ErrTaskNotAvailable signals that the relay does not know the task yet
var ErrTaskNotAvailable = errors.New("relay task not available yet")

// ErrEmptyTaskID signals that an empty task id was provided
var ErrEmptyTaskID = errors.New("empty task id")

// ErrNilRequest signals that a nil relay request was provided
var ErrNilRequest = errors.New("nil relay request")
