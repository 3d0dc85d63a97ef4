// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the ChatGenius backend.
//
// The primary abstraction is [ServerAdapter], which decouples the session
// controller from the underlying protocol. The package ships an HTTP+JSON
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError, and from success=false bodies by mapAppError, so that callers
// can use [errors.Is] for transport-agnostic error handling (e.g.
// [ErrTooLarge] for 413, [ErrApplication] for an application-level refusal).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-chat-genius/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the ChatGenius backend. Every
// method is a single request/response cycle; none retries.
type ServerAdapter interface {
	// SetMode asks the backend to switch the session mode.
	// POST /api/set_mode.
	SetMode(ctx context.Context, mode models.Mode) (models.SetModeResponse, error)

	// TestAI runs the backend's connectivity probe against its model
	// service. A probe that ran but failed is not an error: inspect
	// Success on the result. GET /api/test_ai.
	TestAI(ctx context.Context) (models.AITestResponse, error)

	// UploadPDF submits file as multipart field "pdf_file".
	// POST /api/upload_pdf.
	UploadPDF(ctx context.Context, file models.UploadFile) (models.IngestResponse, error)

	// ScrapeWebsite asks the backend to scrape url.
	// POST /api/scrape_website.
	ScrapeWebsite(ctx context.Context, url string) (models.IngestResponse, error)

	// Chat sends a question answered in the given mode. POST /api/chat.
	Chat(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error)

	// ClearContent drops the server-held content of the given slot(s).
	// POST /api/clear_content.
	ClearContent(ctx context.Context, contentType models.ContentType) (models.ClearContentResponse, error)

	// ClearHistory drops the backend's chat history; only the HTTP status
	// is significant. POST /api/clear_history.
	ClearHistory(ctx context.Context) error

	// GetStatus returns the backend's session state.
	// GET /api/get_status.
	GetStatus(ctx context.Context) (models.StatusResponse, error)
}
