// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"io"
	"sync"

	"github.com/MKhiriev/go-chat-genius/internal/service"
	"github.com/MKhiriev/go-chat-genius/models"
)

// fakeSession records the controller calls made by the model.
type fakeSession struct {
	mu sync.Mutex

	mode     models.Mode
	calls    []string
	sent     []string
	modes    []models.Mode
	scraped  []string
	cleared  []models.ContentType
	uploaded []models.UploadFile
	body     []byte
	err      error
}

var _ service.ClientSessionService = (*fakeSession)(nil)

func (f *fakeSession) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeSession) Mode() models.Mode {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.mode == "" {
		return models.ModeBasic
	}
	return f.mode
}

func (f *fakeSession) SetMode(_ context.Context, mode models.Mode) error {
	f.record("SetMode")
	f.mu.Lock()
	defer f.mu.Unlock()
	f.modes = append(f.modes, mode)
	return f.err
}

func (f *fakeSession) UploadPDF(_ context.Context, file models.UploadFile) error {
	f.record("UploadPDF")
	body, _ := io.ReadAll(file.Reader)
	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploaded = append(f.uploaded, file)
	f.body = body
	return f.err
}

func (f *fakeSession) ScrapeWebsite(_ context.Context, rawURL string) error {
	f.record("ScrapeWebsite")
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scraped = append(f.scraped, rawURL)
	return f.err
}

func (f *fakeSession) SendMessage(_ context.Context, text string) error {
	f.record("SendMessage")
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, text)
	return f.err
}

func (f *fakeSession) ClearContent(_ context.Context, contentType models.ContentType) error {
	f.record("ClearContent")
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cleared = append(f.cleared, contentType)
	return f.err
}

func (f *fakeSession) ClearChat(_ context.Context) error {
	f.record("ClearChat")
	return f.err
}

func (f *fakeSession) RefreshStatus(_ context.Context) (models.ContentStatus, error) {
	f.record("RefreshStatus")
	return models.ContentStatus{Mode: f.Mode()}, f.err
}

func (f *fakeSession) TestAIConnection(_ context.Context) error {
	f.record("TestAIConnection")
	return f.err
}

func (f *fakeSession) Close() {}

func (f *fakeSession) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}
