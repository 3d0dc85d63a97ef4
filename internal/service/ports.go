// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "github.com/MKhiriev/go-chat-genius/models"

// ChatLogView renders the append-only chat log.
type ChatLogView interface {
	AppendMessage(msg models.ChatMessage)
	// ShowTyping displays the placeholder shown while a chat request is in
	// flight. HideTyping removes it.
	ShowTyping()
	HideTyping()
	ClearMessages()
}

// StatusView renders the session status: the active mode, the content
// slots and the AI connectivity indicator.
type StatusView interface {
	ShowMode(mode models.Mode)
	ShowContent(status models.ContentStatus)
	ShowAIProbe(state models.ProbeState, text string)
}

// ResultView renders the outcome of PDF uploads and website scrapes. Every
// method addresses a single slot, models.ContentPDF or models.ContentWeb.
type ResultView interface {
	ShowLoading(slot models.ContentType, loading bool)
	ShowResult(slot models.ContentType, result models.IngestResult)
	ShowResultError(slot models.ContentType, text string)
	ClearResult(slot models.ContentType)
	ClearURLInput()
}

// UI is everything the session controller draws on. Implementations must be
// safe for concurrent use: controller operations run on their own
// goroutines.
type UI interface {
	ChatLogView
	StatusView
	ResultView
}
