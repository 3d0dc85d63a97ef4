// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/h2non/filetype"

	"github.com/MKhiriev/go-chat-genius/internal/adapter"
	"github.com/MKhiriev/go-chat-genius/internal/config"
	"github.com/MKhiriev/go-chat-genius/internal/logger"
	"github.com/MKhiriev/go-chat-genius/internal/utils"
	"github.com/MKhiriev/go-chat-genius/models"
)

const (
	// DefaultMaxUploadSize is used when the configured upload cap is not
	// positive.
	DefaultMaxUploadSize int64 = 16 << 20

	// AISuggestion is the phrase basic-mode answers carry when the backend
	// thinks AI mode would answer better.
	AISuggestion = "switch to ai mode"

	// sniffLen is the number of leading bytes inspected by filetype.
	sniffLen = 262
)

const (
	msgEmptyURL        = "Please enter a website URL."
	msgNotPDF          = "Please select a PDF file."
	msgChatCleared     = "Chat history cleared."
	msgContentCleared  = "Content cleared."
	msgAINudge         = "Tip: switch to AI mode for more detailed answers about your content."
	msgAIConnected     = "AI mode is on and the AI service is reachable."
	msgAIProbeFailed   = "AI mode is on, but the AI service check failed: %s"
	msgModeSwitched    = "Switched to %s mode."
	msgModeSwitchError = "Failed to switch mode: %s"
	msgPDFLoaded       = "PDF loaded: %d pages. You can now ask questions about the document."
	msgWebLoaded       = "Website scraped: %d lines extracted. You can now ask questions about the website."
	msgTesting         = "Testing AI connection..."
)

type clientSessionService struct {
	adapter       adapter.ServerAdapter
	ui            UI
	logger        *logger.Logger
	maxUploadSize int64
	nudgeDelay    time.Duration

	mu         sync.RWMutex
	mode       models.Mode
	status     models.ContentStatus
	modeSeq    uint64
	lastSetSeq uint64

	chatMu    sync.Mutex
	historyMu sync.Mutex
	uploadMu  sync.Mutex
	scrapeMu  sync.Mutex
	clearMu   sync.Mutex

	// nudgeMu guards the nudge fields. ClearChat swaps nudgeCtx for a
	// fresh one so tips scheduled before the clear never land in the new log.
	nudgeMu    sync.Mutex
	nudgeCtx   context.Context
	stopNudges context.CancelFunc
	closed     bool
	nudgeWG    sync.WaitGroup
}

// NewClientSessionService creates the session controller. It starts in
// appCfg.DefaultMode (basic when unset) with both content slots empty.
func NewClientSessionService(serverAdapter adapter.ServerAdapter, ui UI, appCfg config.ClientApp, logger *logger.Logger) ClientSessionService {
	mode := appCfg.DefaultMode
	if !mode.Valid() {
		mode = models.ModeBasic
	}

	maxUploadSize := appCfg.MaxUploadSize
	if maxUploadSize <= 0 {
		maxUploadSize = DefaultMaxUploadSize
	}

	nudgeCtx, stopNudges := context.WithCancel(context.Background())

	return &clientSessionService{
		adapter:       serverAdapter,
		ui:            ui,
		logger:        logger,
		maxUploadSize: maxUploadSize,
		nudgeDelay:    appCfg.NudgeDelay,
		mode:          mode,
		status:        models.ContentStatus{Mode: mode},
		nudgeCtx:      nudgeCtx,
		stopNudges:    stopNudges,
	}
}

func (s *clientSessionService) Mode() models.Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

func (s *clientSessionService) SetMode(ctx context.Context, mode models.Mode) error {
	if !mode.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidMode, string(mode))
	}

	s.mu.Lock()
	if s.mode == mode {
		s.mu.Unlock()
		return nil
	}
	s.modeSeq++
	seq := s.modeSeq
	s.lastSetSeq = seq
	s.mu.Unlock()

	ctx, log := s.begin(ctx, "set_mode")
	log.Debug().Str("mode", string(mode)).Uint64("seq", seq).Msg("switching mode")

	resp, err := s.adapter.SetMode(ctx, mode)
	if err != nil {
		log.Error().Err(err).Msg("switch mode failed")
		s.ui.AppendMessage(models.NewChatMessage(models.OriginError, fmt.Sprintf(msgModeSwitchError, HumanizeError(err))))
		return fmt.Errorf("set mode %s: %w", mode, err)
	}

	applied := mode
	if resp.Mode.Valid() {
		applied = resp.Mode
	}

	s.mu.Lock()
	if seq < s.lastSetSeq {
		s.mu.Unlock()
		log.Debug().Uint64("seq", seq).Msg("discarding superseded mode response")
		return ErrStaleResponse
	}
	s.mode = applied
	s.status.Mode = applied
	s.mu.Unlock()

	s.ui.ShowMode(applied)
	s.ui.AppendMessage(models.NewChatMessage(models.OriginSystem, fmt.Sprintf(msgModeSwitched, applied.Label())))

	if applied != models.ModeAI {
		return nil
	}

	if _, probeErr := s.probeAI(ctx); probeErr != nil {
		s.ui.AppendMessage(models.NewChatMessage(models.OriginSystem, fmt.Sprintf(msgAIProbeFailed, HumanizeError(probeErr))))
		return nil
	}
	s.ui.AppendMessage(models.NewChatMessage(models.OriginSystem, msgAIConnected))
	return nil
}

func (s *clientSessionService) UploadPDF(ctx context.Context, file models.UploadFile) error {
	if file.Size > s.maxUploadSize {
		err := fmt.Errorf("%w: maximum size is %d MB", ErrFileTooLarge, s.maxUploadSize>>20)
		s.ui.ShowResultError(models.ContentPDF, fmt.Sprintf("File too large. Maximum size is %d MB.", s.maxUploadSize>>20))
		return err
	}
	if !strings.EqualFold(filepath.Ext(file.Name), ".pdf") || file.Reader == nil {
		s.ui.ShowResultError(models.ContentPDF, msgNotPDF)
		return fmt.Errorf("%w: %s", ErrNotPDF, file.Name)
	}

	reader, err := sniffPDF(file.Reader)
	if err != nil {
		s.ui.ShowResultError(models.ContentPDF, msgNotPDF)
		return fmt.Errorf("%w: %s", err, file.Name)
	}
	file.Reader = reader

	s.uploadMu.Lock()
	defer s.uploadMu.Unlock()

	ctx, log := s.begin(ctx, "upload_pdf")
	log.Debug().Str("file", file.Name).Int64("size", file.Size).Msg("uploading pdf")

	s.ui.ShowLoading(models.ContentPDF, true)
	resp, err := s.adapter.UploadPDF(ctx, file)
	s.ui.ShowLoading(models.ContentPDF, false)
	if err != nil {
		log.Error().Err(err).Msg("pdf upload failed")
		s.ui.ShowResultError(models.ContentPDF, HumanizeError(err))
		return fmt.Errorf("upload pdf %s: %w", file.Name, err)
	}

	result := resp.Result()
	s.ui.ShowResult(models.ContentPDF, result)
	s.markLoaded(ctx, models.ContentPDF, result.Characters)
	s.ui.AppendMessage(models.NewChatMessage(models.OriginSystem, fmt.Sprintf(msgPDFLoaded, result.Pages)))

	return nil
}

func (s *clientSessionService) ScrapeWebsite(ctx context.Context, rawURL string) error {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		s.ui.ShowResultError(models.ContentWeb, msgEmptyURL)
		return ErrEmptyURL
	}

	s.scrapeMu.Lock()
	defer s.scrapeMu.Unlock()

	ctx, log := s.begin(ctx, "scrape_website")
	log.Debug().Str("url", rawURL).Msg("scraping website")

	s.ui.ShowLoading(models.ContentWeb, true)
	resp, err := s.adapter.ScrapeWebsite(ctx, rawURL)
	s.ui.ShowLoading(models.ContentWeb, false)
	if err != nil {
		log.Error().Err(err).Msg("website scrape failed")
		s.ui.ShowResultError(models.ContentWeb, HumanizeError(err))
		return fmt.Errorf("scrape %s: %w", rawURL, err)
	}

	result := resp.Result()
	s.ui.ShowResult(models.ContentWeb, result)
	s.ui.ClearURLInput()
	s.markLoaded(ctx, models.ContentWeb, result.Characters)
	s.ui.AppendMessage(models.NewChatMessage(models.OriginSystem, fmt.Sprintf(msgWebLoaded, result.Lines)))

	return nil
}

func (s *clientSessionService) SendMessage(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyMessage
	}

	s.chatMu.Lock()
	defer s.chatMu.Unlock()

	mode := s.Mode()
	ctx, log := s.begin(ctx, "chat")
	log.Debug().Str("mode", string(mode)).Msg("sending question")

	s.ui.AppendMessage(models.NewChatMessage(models.OriginUser, text))
	s.ui.ShowTyping()
	resp, err := s.adapter.Chat(ctx, models.ChatRequest{Question: text, Mode: mode})
	s.ui.HideTyping()
	if err != nil {
		log.Error().Err(err).Msg("chat request failed")
		s.ui.AppendMessage(models.NewChatMessage(models.OriginError, "Error: "+HumanizeError(err)))
		return fmt.Errorf("chat: %w", err)
	}

	answeredBy := mode
	if resp.Mode.Valid() {
		answeredBy = resp.Mode
	}
	s.ui.AppendMessage(models.NewBotMessage(resp.Response, answeredBy))

	if mode == models.ModeBasic && strings.Contains(strings.ToLower(resp.Response), AISuggestion) {
		s.scheduleNudge()
	}

	return nil
}

func (s *clientSessionService) ClearContent(ctx context.Context, contentType models.ContentType) error {
	if _, err := models.ParseContentType(string(contentType)); err != nil {
		return err
	}

	s.clearMu.Lock()
	defer s.clearMu.Unlock()

	ctx, log := s.begin(ctx, "clear_content")
	log.Debug().Str("type", string(contentType)).Msg("clearing content")

	resp, err := s.adapter.ClearContent(ctx, contentType)
	if err != nil {
		log.Error().Err(err).Msg("clear content failed")
		s.ui.AppendMessage(models.NewChatMessage(models.OriginError, "Error: "+HumanizeError(err)))
		return fmt.Errorf("clear %s content: %w", contentType, err)
	}

	s.mu.Lock()
	for _, slot := range []models.ContentType{models.ContentPDF, models.ContentWeb} {
		if contentType.Covers(slot) {
			*s.slotLocked(slot) = models.ContentSlot{}
		}
	}
	status := s.snapshotLocked()
	s.mu.Unlock()

	for _, slot := range []models.ContentType{models.ContentPDF, models.ContentWeb} {
		if contentType.Covers(slot) {
			s.ui.ClearResult(slot)
		}
	}
	s.ui.ShowContent(status)

	text := strings.TrimSpace(resp.Message)
	if text == "" {
		text = msgContentCleared
	}
	s.ui.AppendMessage(models.NewChatMessage(models.OriginSystem, text))

	return nil
}

// ClearChat resets the local log first and then asks the backend to drop
// its history. It does not wait for in-flight chat requests, and a backend
// failure is only logged.
func (s *clientSessionService) ClearChat(ctx context.Context) error {
	s.historyMu.Lock()
	defer s.historyMu.Unlock()

	ctx, log := s.begin(ctx, "clear_chat")

	s.resetNudges()
	s.ui.ClearMessages()
	s.ui.AppendMessage(models.NewChatMessage(models.OriginSystem, msgChatCleared))

	if err := s.adapter.ClearHistory(ctx); err != nil {
		log.Error().Err(err).Msg("clear server history failed, chat cleared locally only")
	}
	return nil
}

func (s *clientSessionService) RefreshStatus(ctx context.Context) (models.ContentStatus, error) {
	s.mu.Lock()
	s.modeSeq++
	seq := s.modeSeq
	s.mu.Unlock()

	ctx, log := s.begin(ctx, "get_status")

	resp, err := s.adapter.GetStatus(ctx)
	if err != nil {
		log.Error().Err(err).Msg("status request failed")
		return models.ContentStatus{}, fmt.Errorf("refresh status: %w", err)
	}

	remote := resp.ContentStatus()

	s.mu.Lock()
	s.status = remote
	if seq < s.lastSetSeq {
		log.Debug().Uint64("seq", seq).Msg("mode switch issued meanwhile, keeping local mode")
	} else {
		s.mode = remote.Mode
	}
	status := s.snapshotLocked()
	s.mu.Unlock()

	s.ui.ShowMode(status.Mode)
	s.ui.ShowContent(status)

	return status, nil
}

func (s *clientSessionService) TestAIConnection(ctx context.Context) error {
	ctx, _ = s.begin(ctx, "test_ai")
	_, err := s.probeAI(ctx)
	return err
}

func (s *clientSessionService) Close() {
	s.nudgeMu.Lock()
	s.closed = true
	s.stopNudges()
	s.nudgeMu.Unlock()

	s.nudgeWG.Wait()
}

// probeAI runs the AI connectivity check and reports it through
// ShowAIProbe. It returns the backend's message on success.
func (s *clientSessionService) probeAI(ctx context.Context) (string, error) {
	log := logger.FromContext(ctx)
	s.ui.ShowAIProbe(models.ProbeTesting, msgTesting)

	resp, err := s.adapter.TestAI(ctx)
	if err != nil {
		log.Error().Err(err).Msg("ai probe request failed")
		s.ui.ShowAIProbe(models.ProbeFailed, HumanizeError(err))
		return "", fmt.Errorf("test ai: %w", err)
	}
	if resp.Failed() {
		reason := resp.Reason()
		log.Warn().Str("reason", reason).Msg("ai service unavailable")
		s.ui.ShowAIProbe(models.ProbeFailed, reason)
		if reason == "" {
			return "", ErrAIUnavailable
		}
		return "", fmt.Errorf("%w: %s", ErrAIUnavailable, reason)
	}

	text := resp.Message
	if text == "" {
		text = resp.Response
	}
	s.ui.ShowAIProbe(models.ProbeConnected, text)
	return text, nil
}

// markLoaded records a loaded slot. When the response carried no character
// count the length is taken from the server status instead.
func (s *clientSessionService) markLoaded(ctx context.Context, slot models.ContentType, characters int) {
	if characters <= 0 {
		if _, err := s.RefreshStatus(ctx); err == nil {
			return
		}
	}

	s.mu.Lock()
	*s.slotLocked(slot) = models.ContentSlot{Loaded: true, Length: characters}
	status := s.snapshotLocked()
	s.mu.Unlock()

	s.ui.ShowContent(status)
}

func (s *clientSessionService) scheduleNudge() {
	s.nudgeMu.Lock()
	if s.closed {
		s.nudgeMu.Unlock()
		return
	}
	ctx := s.nudgeCtx
	s.nudgeWG.Add(1)
	s.nudgeMu.Unlock()

	go func() {
		defer s.nudgeWG.Done()

		t := time.NewTimer(s.nudgeDelay)
		defer t.Stop()

		select {
		case <-ctx.Done():
			return
		case <-t.C:
		}

		// checked under nudgeMu: no tip lands once resetNudges has returned.
		s.nudgeMu.Lock()
		defer s.nudgeMu.Unlock()
		if ctx.Err() == nil {
			s.ui.AppendMessage(models.NewChatMessage(models.OriginSystem, msgAINudge))
		}
	}()
}

// resetNudges cancels every pending nudge and starts a new generation.
func (s *clientSessionService) resetNudges() {
	s.nudgeMu.Lock()
	defer s.nudgeMu.Unlock()

	s.stopNudges()
	if !s.closed {
		s.nudgeCtx, s.stopNudges = context.WithCancel(context.Background())
	}
}

// begin tags ctx with a request id and a logger for action. An id already
// present in ctx is kept.
func (s *clientSessionService) begin(ctx context.Context, action string) (context.Context, *logger.Logger) {
	requestID, ok := utils.GetRequestIDFromContext(ctx)
	if !ok {
		requestID = utils.NewRequestID()
		ctx = utils.WithRequestID(ctx, requestID)
	}

	log := s.logger.WithAction(action, requestID)
	return log.WithContext(ctx), log
}

// slotLocked must be called with s.mu held.
func (s *clientSessionService) slotLocked(slot models.ContentType) *models.ContentSlot {
	if slot == models.ContentWeb {
		return &s.status.Web
	}
	return &s.status.PDF
}

// snapshotLocked must be called with s.mu held.
func (s *clientSessionService) snapshotLocked() models.ContentStatus {
	status := s.status
	status.Mode = s.mode
	status.Features = append([]string(nil), s.status.Features...)
	return status
}

// sniffPDF checks the magic bytes of r and returns a reader that still
// yields the whole content.
func sniffPDF(r io.Reader) (io.Reader, error) {
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read file header: %w", err)
	}
	head = head[:n]

	if !filetype.Is(head, "pdf") {
		return nil, ErrNotPDF
	}

	return io.MultiReader(bytes.NewReader(head), r), nil
}
