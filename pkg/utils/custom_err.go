package utils

import "errors"

var (
	// ErrInvalidRequest is the only hard failure a caller sees: the trip
	// parameters failed validation before any external call was made.
	ErrInvalidRequest = errors.New("invalid trip request")

	// ErrTransport covers network, timeout and auth failures talking to
	// the model provider. The planner recovers from it locally.
	ErrTransport = errors.New("model provider transport error")

	// ErrMalformedResponse means no usable JSON could be recovered from
	// the raw model output. Also recovered locally.
	ErrMalformedResponse = errors.New("malformed model response")

	ErrUnsupportedProvider = errors.New("unsupported completion provider")
)
