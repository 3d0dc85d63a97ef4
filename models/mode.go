// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidMode is returned when a mode value is neither basic nor AI.
var ErrInvalidMode = errors.New("invalid chat mode")

// Mode is the interaction mode of a chat session.
// The backend answers basic-mode questions with simple extraction rules and
// delegates AI-mode questions to a language model.
type Mode string

const (
	// ModeBasic is the non-AI mode. It is the initial mode of every session.
	ModeBasic Mode = "basic"

	// ModeAI delegates question answering to the backend's model service.
	ModeAI Mode = "ai"
)

// wireBasic is the backend's name for [ModeBasic].
const wireBasic = "no_ai"

// ParseMode converts user or wire input into a [Mode]. Both "basic" and the
// backend's "no_ai" spelling map to [ModeBasic]. Matching is
// case-insensitive and ignores surrounding whitespace.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(ModeBasic), wireBasic:
		return ModeBasic, nil
	case string(ModeAI):
		return ModeAI, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool {
	return m == ModeBasic || m == ModeAI
}

// Label returns the human-readable name used in UI text.
func (m Mode) Label() string {
	if m == ModeAI {
		return "AI"
	}
	return "Basic"
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == ModeAI {
		return ModeBasic
	}
	return ModeAI
}

// MarshalJSON encodes the mode in the backend's vocabulary.
func (m Mode) MarshalJSON() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMode, string(m))
	}
	if m == ModeBasic {
		return json.Marshal(wireBasic)
	}
	return json.Marshal(string(m))
}

// UnmarshalJSON accepts any spelling understood by [ParseMode].
func (m *Mode) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	parsed, err := ParseMode(s)
	if err != nil {
		return err
	}

	*m = parsed
	return nil
}
