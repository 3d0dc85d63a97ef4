// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-chat-genius/models"
)

// ClientSessionService is the session controller of the chat client. It owns
// the active mode and the client's view of the server-held content, talks to
// the backend through the server adapter and reports every outcome to the UI
// ports it was built with.
//
// Every operation is safe to call from several goroutines. Chat, upload,
// scrape and clear operations are serialized per action, so a user entry is
// always followed by its own reply.
type ClientSessionService interface {
	// Mode returns the active chat mode.
	Mode() models.Mode

	// SetMode asks the backend to switch to mode. It is a no-op when mode is
	// already active. On success the UI is updated and, when switching to AI,
	// the AI connection is probed and the outcome appended to the chat log.
	// On failure an error entry is appended and the mode is left unchanged.
	// Returns ErrStaleResponse when a newer SetMode superseded this one.
	SetMode(ctx context.Context, mode models.Mode) error

	// UploadPDF validates file locally (size, extension, magic bytes) and
	// uploads it. Rejected files never reach the backend.
	UploadPDF(ctx context.Context, file models.UploadFile) error

	// ScrapeWebsite asks the backend to fetch and extract rawURL.
	ScrapeWebsite(ctx context.Context, rawURL string) error

	// SendMessage appends text to the chat log, sends it with the active mode
	// and appends the answer or an error entry. Blank text is ignored and
	// ErrEmptyMessage returned without touching the log.
	SendMessage(ctx context.Context, text string) error

	// ClearContent discards the server-held content of contentType.
	ClearContent(ctx context.Context, contentType models.ContentType) error

	// ClearChat clears the server-side history and, whatever the outcome,
	// the local chat log.
	ClearChat(ctx context.Context) error

	// RefreshStatus fetches the server status and reconciles the local mode
	// and content slots with it.
	RefreshStatus(ctx context.Context) (models.ContentStatus, error)

	// TestAIConnection probes the backend's AI service and reports the
	// result through StatusView.ShowAIProbe.
	TestAIConnection(ctx context.Context) error

	// Close cancels pending AI-mode suggestions and waits for them to exit.
	Close()
}

// ClientStatusJob defines the contract for a background worker that
// periodically reconciles the session with the backend status.
type ClientStatusJob interface {
	// Start launches the background goroutine. It refreshes every interval,
	// defaulting to DefaultStatusInterval if interval is zero or negative.
	// Any previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
