// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// APIResult carries the application-level outcome every JSON endpoint of
// the backend reports next to its payload. A 2xx response with
// Success == false is still a failure.
type APIResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// Failed reports whether the backend flagged the call as unsuccessful.
func (r APIResult) Failed() bool {
	return !r.Success || r.Error != ""
}

// Reason returns the best available failure text.
func (r APIResult) Reason() string {
	if r.Error != "" {
		return r.Error
	}
	return r.Message
}

// SetModeResponse is returned by POST /api/set_mode.
type SetModeResponse struct {
	APIResult
	Mode Mode `json:"mode,omitempty"`
}

// AITestResponse is returned by GET /api/test_ai.
type AITestResponse struct {
	APIResult
	Response string `json:"response,omitempty"`
}

// IngestResponse is returned by POST /api/upload_pdf and
// POST /api/scrape_website.
type IngestResponse struct {
	APIResult
	Details    string           `json:"details"`
	Summary    string           `json:"summary"`
	Preview    string           `json:"preview"`
	NumPages   int              `json:"num_pages,omitempty"`
	Lines      int              `json:"lines,omitempty"`
	Characters int              `json:"characters,omitempty"`
	Analysis   *ContentAnalysis `json:"analysis,omitempty"`
}

// Result converts the wire response into an [IngestResult]. The character
// count comes from the structured fields only.
func (r IngestResponse) Result() IngestResult {
	chars := r.Characters
	if chars == 0 && r.Analysis != nil {
		chars = r.Analysis.TotalCharacters
	}

	return IngestResult{
		Message:    r.Message,
		Details:    r.Details,
		Summary:    r.Summary,
		Preview:    r.Preview,
		Pages:      r.NumPages,
		Lines:      r.Lines,
		Characters: chars,
		Analysis:   r.Analysis,
	}
}

// ChatResponse is returned by POST /api/chat.
type ChatResponse struct {
	APIResult
	Response string `json:"response"`
	Mode     Mode   `json:"mode,omitempty"`
	HasPDF   bool   `json:"has_pdf"`
	HasWeb   bool   `json:"has_web"`
}

// ClearContentResponse is returned by POST /api/clear_content and
// POST /api/clear_history.
type ClearContentResponse struct {
	APIResult
}

// StatusResponse is returned by GET /api/get_status.
type StatusResponse struct {
	Mode         Mode     `json:"mode"`
	PDFLoaded    bool     `json:"pdf_loaded"`
	PDFLength    int      `json:"pdf_length"`
	WebLoaded    bool     `json:"web_loaded"`
	WebLength    int      `json:"web_length"`
	HistoryCount int      `json:"history_count"`
	AIEnabled    bool     `json:"ai_enabled"`
	MaxHistory   int      `json:"max_history"`
	Features     []string `json:"features,omitempty"`
}

// ContentStatus converts the wire response into a [ContentStatus].
func (r StatusResponse) ContentStatus() ContentStatus {
	return ContentStatus{
		Mode:         r.Mode,
		PDF:          ContentSlot{Loaded: r.PDFLoaded, Length: r.PDFLength},
		Web:          ContentSlot{Loaded: r.WebLoaded, Length: r.WebLength},
		HistoryCount: r.HistoryCount,
		AIEnabled:    r.AIEnabled,
		MaxHistory:   r.MaxHistory,
		Features:     r.Features,
	}
}
