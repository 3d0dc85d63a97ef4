// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{in: "basic", want: ModeBasic},
		{in: "no_ai", want: ModeBasic},
		{in: " NO_AI ", want: ModeBasic},
		{in: "ai", want: ModeAI},
		{in: "AI", want: ModeAI},
		{in: "", wantErr: true},
		{in: "gpt", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidMode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMode_Helpers(t *testing.T) {
	assert.True(t, ModeBasic.Valid())
	assert.True(t, ModeAI.Valid())
	assert.False(t, Mode("no_ai").Valid())

	assert.Equal(t, "AI", ModeAI.Label())
	assert.Equal(t, "Basic", ModeBasic.Label())

	assert.Equal(t, ModeAI, ModeBasic.Toggle())
	assert.Equal(t, ModeBasic, ModeAI.Toggle())
}

func TestMode_JSON(t *testing.T) {
	b, err := json.Marshal(SetModeRequest{Mode: ModeBasic})
	require.NoError(t, err)
	assert.JSONEq(t, `{"mode":"no_ai"}`, string(b))

	b, err = json.Marshal(ChatRequest{Question: "q", Mode: ModeAI})
	require.NoError(t, err)
	assert.JSONEq(t, `{"question":"q","mode":"ai"}`, string(b))

	_, err = json.Marshal(SetModeRequest{Mode: Mode("turbo")})
	assert.ErrorIs(t, err, ErrInvalidMode)

	var resp ChatResponse
	require.NoError(t, json.Unmarshal([]byte(`{"success":true,"response":"hi","mode":"no_ai"}`), &resp))
	assert.Equal(t, ModeBasic, resp.Mode)

	assert.Error(t, json.Unmarshal([]byte(`{"mode":"turbo"}`), &resp))
}
