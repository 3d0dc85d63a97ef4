package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-chat-genius/internal/config"
	"github.com/MKhiriev/go-chat-genius/internal/logger"
	"github.com/MKhiriev/go-chat-genius/internal/utils"
	"github.com/MKhiriev/go-chat-genius/models"
	"github.com/go-resty/resty/v2"
)

const (
	pathSetMode       = "/api/set_mode"
	pathTestAI        = "/api/test_ai"
	pathUploadPDF     = "/api/upload_pdf"
	pathScrapeWebsite = "/api/scrape_website"
	pathChat          = "/api/chat"
	pathClearContent  = "/api/clear_content"
	pathClearHistory  = "/api/clear_history"
	pathGetStatus     = "/api/get_status"

	pdfFormField = "pdf_file"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and
// request timeout. A zero timeout leaves requests unbounded.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetMode implements [ServerAdapter]. It POSTs {"mode": ...} to
// /api/set_mode. The backend answers a refused switch with HTTP 400 and
// {"error": ..., "mode": ...}; that is returned as [ErrBadRequest].
func (h *httpServerAdapter) SetMode(ctx context.Context, mode models.Mode) (models.SetModeResponse, error) {
	var result models.SetModeResponse

	resp, err := h.jsonRequest(ctx).
		SetBody(models.SetModeRequest{Mode: mode}).
		SetResult(&result).
		Post(pathSetMode)
	if err != nil {
		return result, fmt.Errorf("set mode request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return result, err
	}

	return result, mapAppError(result.APIResult)
}

// TestAI implements [ServerAdapter]. It GETs /api/test_ai. The backend
// reports probe failures with HTTP 200 and success=false, so only transport
// failures are returned as errors.
func (h *httpServerAdapter) TestAI(ctx context.Context) (models.AITestResponse, error) {
	var result models.AITestResponse

	resp, err := h.request(ctx).
		SetResult(&result).
		Get(pathTestAI)
	if err != nil {
		return result, fmt.Errorf("test ai request: %w", err)
	}

	return result, mapHTTPError(resp)
}

// UploadPDF implements [ServerAdapter]. It streams file.Reader as the
// multipart field "pdf_file" to /api/upload_pdf.
func (h *httpServerAdapter) UploadPDF(ctx context.Context, file models.UploadFile) (models.IngestResponse, error) {
	var result models.IngestResponse

	if file.Reader == nil {
		return result, fmt.Errorf("upload pdf: %w: no file content", ErrBadRequest)
	}

	resp, err := h.request(ctx).
		SetFileReader(pdfFormField, file.Name, file.Reader).
		SetResult(&result).
		Post(pathUploadPDF)
	if err != nil {
		return result, fmt.Errorf("upload pdf request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return result, err
	}

	return result, mapAppError(result.APIResult)
}

// ScrapeWebsite implements [ServerAdapter]. It POSTs {"url": ...} to
// /api/scrape_website.
func (h *httpServerAdapter) ScrapeWebsite(ctx context.Context, rawURL string) (models.IngestResponse, error) {
	var result models.IngestResponse

	resp, err := h.jsonRequest(ctx).
		SetBody(models.ScrapeRequest{URL: rawURL}).
		SetResult(&result).
		Post(pathScrapeWebsite)
	if err != nil {
		return result, fmt.Errorf("scrape website request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return result, err
	}

	return result, mapAppError(result.APIResult)
}

// Chat implements [ServerAdapter]. It POSTs {"question", "mode"} to
// /api/chat.
func (h *httpServerAdapter) Chat(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error) {
	var result models.ChatResponse

	resp, err := h.jsonRequest(ctx).
		SetBody(req).
		SetResult(&result).
		Post(pathChat)
	if err != nil {
		return result, fmt.Errorf("chat request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return result, err
	}

	return result, mapAppError(result.APIResult)
}

// ClearContent implements [ServerAdapter]. It POSTs {"type": ...} to
// /api/clear_content.
func (h *httpServerAdapter) ClearContent(ctx context.Context, contentType models.ContentType) (models.ClearContentResponse, error) {
	var result models.ClearContentResponse

	resp, err := h.jsonRequest(ctx).
		SetBody(models.ClearContentRequest{Type: contentType}).
		SetResult(&result).
		Post(pathClearContent)
	if err != nil {
		return result, fmt.Errorf("clear content request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return result, err
	}

	return result, mapAppError(result.APIResult)
}

// ClearHistory implements [ServerAdapter]. It POSTs to /api/clear_history
// and inspects the status code only.
func (h *httpServerAdapter) ClearHistory(ctx context.Context) error {
	resp, err := h.request(ctx).Post(pathClearHistory)
	if err != nil {
		return fmt.Errorf("clear history request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Warn().Err(err).Msg("backend refused to clear chat history")
		return err
	}

	return nil
}

// GetStatus implements [ServerAdapter]. It GETs /api/get_status.
func (h *httpServerAdapter) GetStatus(ctx context.Context) (models.StatusResponse, error) {
	var result models.StatusResponse

	resp, err := h.request(ctx).
		SetResult(&result).
		Get(pathGetStatus)
	if err != nil {
		return result, fmt.Errorf("get status request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return result, err
	}
	if !result.Mode.Valid() {
		return result, fmt.Errorf("%w: status without mode", ErrDecode)
	}

	return result, nil
}

func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().SetContext(ctx)
}

func (h *httpServerAdapter) jsonRequest(ctx context.Context) *resty.Request {
	return h.request(ctx).SetHeader("Content-Type", "application/json")
}
