// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SetModeRequest is the body of POST /api/set_mode.
type SetModeRequest struct {
	Mode Mode `json:"mode"`
}

// ScrapeRequest is the body of POST /api/scrape_website.
type ScrapeRequest struct {
	URL string `json:"url"`
}

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	Question string `json:"question"`
	Mode     Mode   `json:"mode"`
}

// ClearContentRequest is the body of POST /api/clear_content.
type ClearContentRequest struct {
	Type ContentType `json:"type"`
}
