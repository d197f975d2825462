package statusHandler

import "errors"

// ErrHandlersSliceIsNil signals that the handlers slice is nil or empty
var ErrHandlersSliceIsNil = errors.New("nil or empty slice of handlers")

// ErrNilHandlerInSlice signals that one of the provided handlers is nil
var ErrNilHandlerInSlice = errors.New("nil handler in slice")
