// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIResult(t *testing.T) {
	tests := []struct {
		name       string
		result     APIResult
		wantFailed bool
		wantReason string
	}{
		{name: "success", result: APIResult{Success: true, Message: "ok"}, wantReason: "ok"},
		{name: "flagged", result: APIResult{Success: false, Message: "nope"}, wantFailed: true, wantReason: "nope"},
		{name: "error wins", result: APIResult{Success: true, Error: "boom", Message: "ok"}, wantFailed: true, wantReason: "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantFailed, tt.result.Failed())
			assert.Equal(t, tt.wantReason, tt.result.Reason())
		})
	}
}

func TestIngestResponse_Result_Characters(t *testing.T) {
	direct := IngestResponse{Characters: 1200, NumPages: 3}
	assert.Equal(t, 1200, direct.Result().Characters)
	assert.Equal(t, 3, direct.Result().Pages)

	fromAnalysis := IngestResponse{Lines: 42, Analysis: &ContentAnalysis{TotalCharacters: 1000}}
	assert.Equal(t, 1000, fromAnalysis.Result().Characters)
	assert.Equal(t, 42, fromAnalysis.Result().Lines)

	assert.Zero(t, IngestResponse{}.Result().Characters)
}

func TestStatusResponse_ContentStatus(t *testing.T) {
	resp := StatusResponse{
		Mode:         ModeAI,
		PDFLoaded:    true,
		PDFLength:    10,
		WebLoaded:    true,
		WebLength:    20,
		HistoryCount: 2,
		AIEnabled:    true,
		MaxHistory:   50,
	}

	status := resp.ContentStatus()
	assert.Equal(t, ContentSlot{Loaded: true, Length: 10}, status.Slot(ContentPDF))
	assert.Equal(t, ContentSlot{Loaded: true, Length: 20}, status.Slot(ContentWeb))
	assert.Equal(t, ContentSlot{}, status.Slot(ContentAll))
	assert.Equal(t, ModeAI, status.Mode)
	assert.Equal(t, 50, status.MaxHistory)
}

func TestContentType(t *testing.T) {
	for _, s := range []string{"pdf", "web", "all"} {
		ct, err := ParseContentType(s)
		assert.NoError(t, err)
		assert.Equal(t, ContentType(s), ct)
	}

	_, err := ParseContentType("video")
	assert.ErrorIs(t, err, ErrInvalidContentType)

	assert.True(t, ContentAll.Covers(ContentPDF))
	assert.True(t, ContentAll.Covers(ContentWeb))
	assert.True(t, ContentPDF.Covers(ContentPDF))
	assert.False(t, ContentPDF.Covers(ContentWeb))
}

func TestNewBotMessage(t *testing.T) {
	msg := NewBotMessage("answer", ModeAI)

	assert.Equal(t, OriginBot, msg.Origin)
	assert.Equal(t, "answer", msg.Text)
	if assert.NotNil(t, msg.Mode) {
		assert.Equal(t, ModeAI, *msg.Mode)
	}
	assert.False(t, msg.CreatedAt.IsZero())
}
