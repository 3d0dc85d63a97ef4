// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front end of the chat client. It renders the
// chat log, the session status and the ingest results with bubbletea, and
// implements the controller's UI ports through [Port].
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-chat-genius/internal/logger"
	"github.com/MKhiriev/go-chat-genius/internal/service"
	"github.com/MKhiriev/go-chat-genius/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services  *service.ClientServices
	port      *Port
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

// New creates the terminal UI. port must be the UI the services were built
// with: it is attached to the program for the duration of Run.
func New(services *service.ClientServices, port *Port, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{services: services, port: port, buildInfo: buildInfo, logger: logger}
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.services, t.buildInfo)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	t.port.attach(program)
	defer t.port.detach()

	t.logger.Info().Msg("starting terminal ui")
	_, err := program.Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	if err != nil {
		t.logger.Error().Err(err).Msg("terminal ui stopped with error")
		return err
	}

	t.logger.Info().Msg("terminal ui closed by user")
	return nil
}
