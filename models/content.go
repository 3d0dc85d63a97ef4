// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"io"
)

// ErrInvalidContentType is returned for clear targets other than pdf, web
// and all.
var ErrInvalidContentType = errors.New("invalid content type")

// ContentType names a server-held content slot, or all of them.
type ContentType string

const (
	ContentPDF ContentType = "pdf"
	ContentWeb ContentType = "web"
	ContentAll ContentType = "all"
)

// ParseContentType validates a clear target.
func ParseContentType(s string) (ContentType, error) {
	switch ContentType(s) {
	case ContentPDF, ContentWeb, ContentAll:
		return ContentType(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidContentType, s)
	}
}

// Covers reports whether clearing t affects slot.
func (t ContentType) Covers(slot ContentType) bool {
	return t == ContentAll || t == slot
}

// ContentSlot mirrors the server-held extracted text of one source.
// The client never sees the text itself, only whether it exists and its
// length in characters.
type ContentSlot struct {
	Loaded bool
	Length int
}

// ContentStatus is the client's view of the server session.
type ContentStatus struct {
	Mode         Mode
	PDF          ContentSlot
	Web          ContentSlot
	HistoryCount int
	AIEnabled    bool
	MaxHistory   int
	Features     []string
}

// Slot returns the slot for t. Unknown types yield a zero slot.
func (s ContentStatus) Slot(t ContentType) ContentSlot {
	switch t {
	case ContentPDF:
		return s.PDF
	case ContentWeb:
		return s.Web
	default:
		return ContentSlot{}
	}
}

// UploadFile is a PDF selected by the user.
type UploadFile struct {
	// Name is the base file name sent as the multipart file name.
	Name string
	// Size is the file size in bytes.
	Size   int64
	Reader io.Reader
}

// ContentAnalysis holds the simple statistics the backend computes for
// ingested text.
type ContentAnalysis struct {
	TotalLines      int     `json:"total_lines"`
	TotalCharacters int     `json:"total_characters"`
	TotalWords      int     `json:"total_words"`
	AvgLineLength   float64 `json:"avg_line_length"`
}

// IngestResult is the structured outcome of a PDF upload or a website
// scrape.
type IngestResult struct {
	Message string
	Details string
	Summary string
	Preview string
	// Pages is set for PDF uploads.
	Pages int
	// Lines is set for scraped websites.
	Lines int
	// Characters is the length of the extracted text.
	Characters int
	Analysis   *ContentAnalysis
}

// ProbeState is the tri-state indicator of the AI connectivity check.
type ProbeState string

const (
	ProbeTesting   ProbeState = "testing"
	ProbeConnected ProbeState = "connected"
	ProbeFailed    ProbeState = "failed"
)
