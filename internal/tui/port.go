// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"sync"

	"github.com/MKhiriev/go-chat-genius/internal/service"
	"github.com/MKhiriev/go-chat-genius/models"
	tea "github.com/charmbracelet/bubbletea"
)

// sender is the part of *tea.Program the port needs.
type sender interface {
	Send(msg tea.Msg)
}

// Port implements service.UI on top of a running bubbletea program. Every
// call is turned into a message and handed to the program's event loop, so
// the model is only ever mutated by Update. Calls made while no program is
// attached are dropped.
type Port struct {
	mu      sync.RWMutex
	program sender
}

var _ service.UI = (*Port)(nil)

func NewPort() *Port {
	return &Port{}
}

func (p *Port) attach(program sender) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.program = program
}

func (p *Port) detach() {
	p.attach(nil)
}

func (p *Port) send(msg tea.Msg) {
	p.mu.RLock()
	program := p.program
	p.mu.RUnlock()

	if program != nil {
		program.Send(msg)
	}
}

func (p *Port) AppendMessage(msg models.ChatMessage) {
	p.send(appendMessageMsg{message: msg})
}

func (p *Port) ShowTyping() {
	p.send(typingMsg{on: true})
}

func (p *Port) HideTyping() {
	p.send(typingMsg{on: false})
}

func (p *Port) ClearMessages() {
	p.send(clearMessagesMsg{})
}

func (p *Port) ShowMode(mode models.Mode) {
	p.send(modeMsg{mode: mode})
}

func (p *Port) ShowContent(status models.ContentStatus) {
	p.send(contentMsg{status: status})
}

func (p *Port) ShowAIProbe(state models.ProbeState, text string) {
	p.send(probeMsg{state: state, text: text})
}

func (p *Port) ShowLoading(slot models.ContentType, loading bool) {
	p.send(loadingMsg{slot: slot, loading: loading})
}

func (p *Port) ShowResult(slot models.ContentType, result models.IngestResult) {
	p.send(resultMsg{slot: slot, result: result})
}

func (p *Port) ShowResultError(slot models.ContentType, text string) {
	p.send(resultErrorMsg{slot: slot, text: text})
}

func (p *Port) ClearResult(slot models.ContentType) {
	p.send(clearResultMsg{slot: slot})
}

func (p *Port) ClearURLInput() {
	p.send(clearURLInputMsg{})
}
