package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-chat-genius/models"
	"github.com/go-resty/resty/v2"
)

// mapHTTPError turns a non-2xx response into one of the package errors. The
// backend reports failures as {"error": "..."}; that text is preferred over
// the raw body.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := errorText(resp.Body())

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusRequestEntityTooLarge:
		return fmt.Errorf("%w: %s", ErrTooLarge, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return fmt.Errorf("%w: %s", ErrServerUnavailable, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}

// mapAppError reports a 2xx response flagged unsuccessful by the backend.
func mapAppError(result models.APIResult) error {
	if !result.Failed() {
		return nil
	}
	reason := strings.TrimSpace(result.Reason())
	if reason == "" {
		return ErrApplication
	}
	return fmt.Errorf("%w: %s", ErrApplication, reason)
}

func errorText(raw []byte) string {
	body := strings.TrimSpace(string(raw))
	if body == "" {
		return ""
	}

	var envelope models.APIResult
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if reason := strings.TrimSpace(envelope.Reason()); reason != "" {
			return reason
		}
	}

	return body
}
