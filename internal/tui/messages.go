package tui

import (
	"github.com/MKhiriev/go-chat-genius/models"
)

// Port messages: the session controller draws through these.

type appendMessageMsg struct {
	message models.ChatMessage
}

type typingMsg struct {
	on bool
}

type clearMessagesMsg struct{}

type modeMsg struct {
	mode models.Mode
}

type contentMsg struct {
	status models.ContentStatus
}

type probeMsg struct {
	state models.ProbeState
	text  string
}

type loadingMsg struct {
	slot    models.ContentType
	loading bool
}

type resultMsg struct {
	slot   models.ContentType
	result models.IngestResult
}

type resultErrorMsg struct {
	slot models.ContentType
	text string
}

type clearResultMsg struct {
	slot models.ContentType
}

type clearURLInputMsg struct{}

// Command results.

type actionDoneMsg struct {
	err error
}

type statusRefreshedMsg struct {
	err error
}

type localErrorMsg struct {
	err error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
