// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive chat client runtime.
//
// It wires the terminal UI, the session controller and the background status
// poller into a single process lifecycle.
package client
