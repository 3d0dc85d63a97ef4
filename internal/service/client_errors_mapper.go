// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/go-chat-genius/internal/adapter"
)

const (
	msgServerUnreachable = "Server is unreachable. Check that the backend is running and the address is correct."
	msgRequestTimedOut   = "The request timed out. Try again."
	msgMalformedResponse = "The server sent an unexpected response."
)

// transportErrors are stripped from the displayed text so the user sees the
// backend's own wording.
var transportErrors = []error{
	adapter.ErrBadRequest,
	adapter.ErrNotFound,
	adapter.ErrTooLarge,
	adapter.ErrInternalServerError,
	adapter.ErrServerUnavailable,
	adapter.ErrApplication,
}

// HumanizeError converts an error returned by the controller or the adapter
// into text suitable for the chat log and result panels.
func HumanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case isServerUnavailable(err):
		return msgServerUnreachable
	case errors.Is(err, context.DeadlineExceeded):
		return msgRequestTimedOut
	case errors.Is(err, adapter.ErrDecode):
		return msgMalformedResponse
	case errors.Is(err, ErrFileTooLarge):
		return err.Error()
	}

	msg := err.Error()
	for _, sentinel := range transportErrors {
		if errors.Is(err, sentinel) {
			msg = extractBody(msg, sentinel)
			break
		}
	}

	if msg == "" {
		return "Request failed."
	}
	return msg
}

// isServerUnavailable detects dial-level failures that mean the backend is
// not reachable at all.
func isServerUnavailable(err error) bool {
	if errors.Is(err, adapter.ErrServerUnavailable) {
		return true
	}

	msg := strings.ToLower(err.Error())
	for _, marker := range []string{
		"connection refused",
		"no such host",
		"connectex",
		"network is unreachable",
		"dial tcp",
	} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// extractBody returns the text after "<sentinel>: " in msg, or msg itself
// when the sentinel has no body.
func extractBody(msg string, sentinel error) string {
	prefix := sentinel.Error() + ": "
	if idx := strings.Index(msg, prefix); idx != -1 {
		return strings.TrimSpace(msg[idx+len(prefix):])
	}
	if strings.HasSuffix(msg, sentinel.Error()) {
		text := sentinel.Error()
		return strings.ToUpper(text[:1]) + text[1:]
	}
	return msg
}
