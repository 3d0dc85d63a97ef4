package adapter

import "errors"

// Transport-level errors. HTTP failures are wrapped around these so callers
// can use errors.Is independently of the message text.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("resource not found")
	ErrTooLarge            = errors.New("payload too large")
	ErrInternalServerError = errors.New("internal server error")
	ErrServerUnavailable   = errors.New("server unavailable")
	// ErrApplication marks a 2xx response whose body reports success=false.
	ErrApplication = errors.New("request failed")
	// ErrDecode marks a response body that is not the expected JSON.
	ErrDecode = errors.New("malformed response")
)
