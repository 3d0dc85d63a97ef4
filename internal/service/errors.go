// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-chat-genius/models"
)

var (
	ErrFileTooLarge = errors.New("file too large")
	ErrNotPDF       = errors.New("only PDF files are supported")
	ErrEmptyURL     = errors.New("website URL is empty")
	ErrEmptyMessage = errors.New("message is empty")

	ErrInvalidContentType = models.ErrInvalidContentType
	ErrInvalidMode        = models.ErrInvalidMode

	// ErrAIUnavailable is returned when the backend answers the AI probe with
	// success=false.
	ErrAIUnavailable = errors.New("AI service unavailable")

	// ErrStaleResponse is returned when a mode response arrives after a newer
	// mode request was issued. The response is not applied.
	ErrStaleResponse = errors.New("stale response discarded")
)
