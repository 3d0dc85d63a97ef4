package utils

import (
	"github.com/go-resty/resty/v2"
)

// RequestIDHeader is the header that carries the client request id.
const RequestIDHeader = "X-Request-ID"

const userAgent = "go-chat-genius-client"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance.
//
// Every request sent through the client carries a User-Agent and an
// X-Request-ID header. The id is taken from the request context (see
// [WithRequestID]) or freshly generated when the context has none.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetHeader("User-Agent", userAgent).
		OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			if req.Header.Get(RequestIDHeader) != "" {
				return nil
			}
			requestID, ok := GetRequestIDFromContext(req.Context())
			if !ok {
				requestID = NewRequestID()
			}
			req.SetHeader(RequestIDHeader, requestID)
			return nil
		})

	return &HTTPClient{Client: client}
}
