// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"sync"

	"github.com/MKhiriev/go-chat-genius/models"
)

// recordingUI запоминает всё, что контроллер отрисовал.
type recordingUI struct {
	mu sync.Mutex

	messages   []models.ChatMessage
	typing     bool
	typingSeen int

	mode        models.Mode
	modeCalls   int
	status      models.ContentStatus
	probeStates []models.ProbeState
	probeText   string

	loading      map[models.ContentType][]bool
	results      map[models.ContentType]models.IngestResult
	resultErrors map[models.ContentType]string
	cleared      []models.ContentType
	urlCleared   int
}

var _ UI = (*recordingUI)(nil)

func newRecordingUI() *recordingUI {
	return &recordingUI{
		loading:      make(map[models.ContentType][]bool),
		results:      make(map[models.ContentType]models.IngestResult),
		resultErrors: make(map[models.ContentType]string),
	}
}

func (u *recordingUI) AppendMessage(msg models.ChatMessage) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.messages = append(u.messages, msg)
}

func (u *recordingUI) ShowTyping() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.typing = true
	u.typingSeen++
}

func (u *recordingUI) HideTyping() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.typing = false
}

func (u *recordingUI) ClearMessages() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.messages = nil
}

func (u *recordingUI) ShowMode(mode models.Mode) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.mode = mode
	u.modeCalls++
}

func (u *recordingUI) ShowContent(status models.ContentStatus) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.status = status
}

func (u *recordingUI) ShowAIProbe(state models.ProbeState, text string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.probeStates = append(u.probeStates, state)
	u.probeText = text
}

func (u *recordingUI) ShowLoading(slot models.ContentType, loading bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.loading[slot] = append(u.loading[slot], loading)
}

func (u *recordingUI) ShowResult(slot models.ContentType, result models.IngestResult) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.results[slot] = result
	delete(u.resultErrors, slot)
}

func (u *recordingUI) ShowResultError(slot models.ContentType, text string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.resultErrors[slot] = text
}

func (u *recordingUI) ClearResult(slot models.ContentType) {
	u.mu.Lock()
	defer u.mu.Unlock()
	delete(u.results, slot)
	delete(u.resultErrors, slot)
	u.cleared = append(u.cleared, slot)
}

func (u *recordingUI) ClearURLInput() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.urlCleared++
}

func (u *recordingUI) Messages() []models.ChatMessage {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]models.ChatMessage(nil), u.messages...)
}

func (u *recordingUI) Origins() []models.Origin {
	msgs := u.Messages()
	origins := make([]models.Origin, 0, len(msgs))
	for _, m := range msgs {
		origins = append(origins, m.Origin)
	}
	return origins
}

func (u *recordingUI) Typing() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.typing
}

func (u *recordingUI) Status() models.ContentStatus {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.status
}

func (u *recordingUI) ShownMode() models.Mode {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.mode
}

func (u *recordingUI) ResultError(slot models.ContentType) string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.resultErrors[slot]
}

func (u *recordingUI) Result(slot models.ContentType) (models.IngestResult, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	r, ok := u.results[slot]
	return r, ok
}

func (u *recordingUI) ProbeStates() []models.ProbeState {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]models.ProbeState(nil), u.probeStates...)
}

func (u *recordingUI) Loading(slot models.ContentType) []bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]bool(nil), u.loading[slot]...)
}
