package httpclient

import "errors"

// ErrEmptyBaseURL signals that an empty base URL was provided
var ErrEmptyBaseURL = errors.New("empty base URL")

// ErrNilMarshaller signals that a nil marshaller was provided
var ErrNilMarshaller = errors.New("nil marshaller")

// ErrInvalidRequestTimeout signals that a non positive request timeout was provided
var ErrInvalidRequestTimeout = errors.New("invalid request timeout")

// ErrHttpStatus signals that the remote service answered with a non 2xx status code
var ErrHttpStatus = errors.New("unexpected http status")
