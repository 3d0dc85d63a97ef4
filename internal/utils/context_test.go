// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestContextKeyString(t *testing.T) {
	assert.Equal(t, "requestID", RequestIDCtxKey.String())
}

func TestGetRequestIDFromContext_Success(t *testing.T) {
	ctx := WithRequestID(context.Background(), "abc")

	id, ok := GetRequestIDFromContext(ctx)

	assert.True(t, ok)
	assert.Equal(t, "abc", id)
}

func TestGetRequestIDFromContext_Missing(t *testing.T) {
	id, ok := GetRequestIDFromContext(context.Background())

	assert.False(t, ok)
	assert.Empty(t, id)
}

func TestGetRequestIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), RequestIDCtxKey, 42)

	_, ok := GetRequestIDFromContext(ctx)

	assert.False(t, ok)
}

func TestGetRequestIDFromContext_Empty(t *testing.T) {
	_, ok := GetRequestIDFromContext(WithRequestID(context.Background(), ""))

	assert.False(t, ok)
}

func TestNewRequestID_IsUUIDv7(t *testing.T) {
	id, err := uuid.Parse(NewRequestID())

	assert.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
}

func TestNewRequestID_Unique(t *testing.T) {
	assert.NotEqual(t, NewRequestID(), NewRequestID())
}
