// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "errors"

var (
	errEmptyPath = errors.New("enter the path of a PDF file")
	errNotAFile  = errors.New("path is a directory")
)
