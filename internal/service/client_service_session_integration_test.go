// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-chat-genius/internal/adapter"
	"github.com/MKhiriev/go-chat-genius/internal/apitest"
	"github.com/MKhiriev/go-chat-genius/internal/config"
	"github.com/MKhiriev/go-chat-genius/internal/logger"
	"github.com/MKhiriev/go-chat-genius/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newBackendSession поднимает фейковый бэкенд и настоящий HTTP-адаптер.
func newBackendSession(t *testing.T, appCfg config.ClientApp) (ClientSessionService, *apitest.Backend, *recordingUI) {
	t.Helper()

	backend := apitest.New()
	url := backend.Start(t)

	serverAdapter, err := adapter.NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: url, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)

	ui := newRecordingUI()
	svc := NewClientSessionService(serverAdapter, ui, appCfg, logger.Nop())
	t.Cleanup(svc.Close)

	return svc, backend, ui
}

func TestSessionAgainstBackend_FullConversation(t *testing.T) {
	svc, backend, ui := newBackendSession(t, config.ClientApp{NudgeDelay: time.Millisecond})
	ctx := context.Background()

	status, err := svc.RefreshStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.ModeBasic, status.Mode)
	assert.True(t, status.AIEnabled)

	// PDF
	require.NoError(t, svc.UploadPDF(ctx, pdfFile("report.pdf", pdfBytes)))
	pdfLen, _ := backend.Content()
	assert.Equal(t, "report.pdf", backend.LastFile())
	assert.Equal(t, models.ContentSlot{Loaded: true, Length: pdfLen}, ui.Status().PDF)

	// сайт
	require.NoError(t, svc.ScrapeWebsite(ctx, "https://example.com"))
	_, webLen := backend.Content()
	assert.Equal(t, "https://example.com", backend.LastScrape())
	assert.Equal(t, models.ContentSlot{Loaded: true, Length: webLen}, ui.Status().Web)
	assert.Contains(t, ui.Messages()[1].Text, "2 lines")

	// basic-режим подсказывает про AI
	require.NoError(t, svc.SendMessage(ctx, "help"))
	assert.Eventually(t, func() bool {
		msgs := ui.Messages()
		return len(msgs) == 5 && msgs[4].Text == msgAINudge
	}, time.Second, 5*time.Millisecond)

	require.NoError(t, svc.SetMode(ctx, models.ModeAI))
	assert.Equal(t, models.ModeAI, backend.Mode())
	assert.Equal(t, models.ProbeConnected, ui.ProbeStates()[len(ui.ProbeStates())-1])

	require.NoError(t, svc.SendMessage(ctx, "summarize"))
	assert.Equal(t, models.ChatRequest{Question: "summarize", Mode: models.ModeAI}, backend.LastChat())
	msgs := ui.Messages()
	last := msgs[len(msgs)-1]
	assert.Equal(t, models.OriginBot, last.Origin)
	assert.Equal(t, "AI answer: summarize", last.Text)
	assert.Equal(t, models.ModeAI, *last.Mode)

	require.NoError(t, svc.ClearContent(ctx, models.ContentPDF))
	pdfLen, webLen = backend.Content()
	assert.Zero(t, pdfLen)
	assert.NotZero(t, webLen)
	assert.Equal(t, models.ContentSlot{}, ui.Status().PDF)

	assert.Equal(t, 2, backend.History())
	require.NoError(t, svc.ClearChat(ctx))
	assert.Zero(t, backend.History())
	assert.Len(t, ui.Messages(), 1)
}

func TestSessionAgainstBackend_OversizedPDF_NeverSent(t *testing.T) {
	svc, backend, ui := newBackendSession(t, config.ClientApp{})

	big := models.UploadFile{Name: "huge.pdf", Size: 20 << 20, Reader: bytes.NewReader(pdfBytes)}

	err := svc.UploadPDF(context.Background(), big)
	require.ErrorIs(t, err, ErrFileTooLarge)
	assert.Zero(t, backend.Total())
	assert.NotEmpty(t, ui.ResultError(models.ContentPDF))
}

func TestSessionAgainstBackend_ScrapeReportsLinesAndLength(t *testing.T) {
	svc, backend, ui := newBackendSession(t, config.ClientApp{})

	lines := make([]string, 42)
	for i := range lines {
		lines[i] = strings.Repeat("w", 22)
	}
	lines[41] = strings.Repeat("w", 1000-41-22*41)
	text := strings.Join(lines, "\n")
	require.Len(t, text, 1000)
	backend.SetScrape(text)

	require.NoError(t, svc.ScrapeWebsite(context.Background(), "http://example.com"))

	assert.Equal(t, models.ContentSlot{Loaded: true, Length: 1000}, ui.Status().Web)
	msgs := ui.Messages()
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0].Text, "42 lines")
}

func TestSessionAgainstBackend_AIModeDisabled(t *testing.T) {
	svc, backend, ui := newBackendSession(t, config.ClientApp{})
	backend.SetAIEnabled(false)

	err := svc.SetMode(context.Background(), models.ModeAI)
	require.ErrorIs(t, err, adapter.ErrBadRequest)

	assert.Equal(t, models.ModeBasic, svc.Mode())
	assert.Equal(t, models.ModeBasic, backend.Mode())

	msgs := ui.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, models.OriginError, msgs[0].Origin)
	assert.Contains(t, msgs[0].Text, "AI mode is disabled in configuration")
}

func TestSessionAgainstBackend_AIProbeFails(t *testing.T) {
	svc, backend, ui := newBackendSession(t, config.ClientApp{})
	backend.SetAIProbe(false)

	require.Error(t, svc.TestAIConnection(context.Background()))
	assert.Equal(t, []models.ProbeState{models.ProbeTesting, models.ProbeFailed}, ui.ProbeStates())
}

func TestSessionAgainstBackend_RefreshFollowsServerMode(t *testing.T) {
	svc, backend, ui := newBackendSession(t, config.ClientApp{})

	backend.SetMode(models.ModeAI)

	_, err := svc.RefreshStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.ModeAI, svc.Mode())
	assert.Equal(t, models.ModeAI, ui.ShownMode())
}

func TestSessionAgainstBackend_ServerErrorsRendered(t *testing.T) {
	svc, backend, ui := newBackendSession(t, config.ClientApp{})
	backend.FailWith(apitest.PathChat, http.StatusInternalServerError, "Error processing chat: model crashed")
	backend.FailWith(apitest.PathClearHistory, http.StatusInternalServerError, "boom")

	err := svc.SendMessage(context.Background(), "hello")
	require.ErrorIs(t, err, adapter.ErrInternalServerError)

	msgs := ui.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, "Error: Error processing chat: model crashed", msgs[1].Text)

	// локальный чат очищается даже если сервер ответил ошибкой
	require.NoError(t, svc.ClearChat(context.Background()))
	assert.Equal(t, []models.Origin{models.OriginSystem}, ui.Origins())
}

func TestSessionAgainstBackend_RequestIDsSent(t *testing.T) {
	svc, backend, _ := newBackendSession(t, config.ClientApp{})
	ctx := context.Background()

	_, err := svc.RefreshStatus(ctx)
	require.NoError(t, err)
	require.NoError(t, svc.SendMessage(ctx, "hello"))

	ids := backend.RequestIDs()
	require.Len(t, ids, 2)
	assert.NotEmpty(t, ids[0])
	assert.NotEmpty(t, ids[1])
	assert.NotEqual(t, ids[0], ids[1])
}
