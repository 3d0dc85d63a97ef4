// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Origin identifies who produced a chat log entry.
type Origin string

const (
	// OriginUser marks text typed by the user.
	OriginUser Origin = "user"
	// OriginBot marks an answer returned by the backend.
	OriginBot Origin = "bot"
	// OriginSystem marks informational entries produced by the client.
	OriginSystem Origin = "system"
	// OriginError marks a failed interaction.
	OriginError Origin = "error"
)

// ChatMessage is one entry of the append-only chat log.
type ChatMessage struct {
	Origin Origin
	Text   string
	// Mode is set on bot entries to the mode that produced the answer.
	Mode      *Mode
	CreatedAt time.Time
}

// NewChatMessage creates a log entry stamped with the current time.
func NewChatMessage(origin Origin, text string) ChatMessage {
	return ChatMessage{Origin: origin, Text: text, CreatedAt: time.Now()}
}

// NewBotMessage creates a bot entry tagged with the mode that answered.
func NewBotMessage(text string, mode Mode) ChatMessage {
	msg := NewChatMessage(OriginBot, text)
	msg.Mode = &mode
	return msg
}
