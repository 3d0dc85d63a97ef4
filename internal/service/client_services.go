// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-chat-genius/internal/adapter"
	"github.com/MKhiriev/go-chat-genius/internal/config"
	"github.com/MKhiriev/go-chat-genius/internal/logger"
)

type ClientServices struct {
	SessionService ClientSessionService
	StatusJob      ClientStatusJob
}

func NewClientServices(serverAdapter adapter.ServerAdapter, ui UI, appCfg config.ClientApp, logger *logger.Logger) *ClientServices {
	sessionSvc := NewClientSessionService(serverAdapter, ui, appCfg, logger)

	return &ClientServices{
		SessionService: sessionSvc,
		StatusJob:      NewClientStatusJob(sessionSvc),
	}
}
