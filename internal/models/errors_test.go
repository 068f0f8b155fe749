package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("Post", uint(42))
	assert.EqualError(t, err, "Post with ID 42 not found")
	assert.Equal(t, CodeNotFound, err.Code)
}

func TestNewInternalError_WrapsAndMasks(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewInternalError(cause)

	assert.Equal(t, CodeInternal, err.Code)
	assert.Equal(t, "Internal server error", err.Message)
	assert.ErrorIs(t, err, cause, "the cause stays reachable for logging")
	assert.NotContains(t, err.Message, "connection refused")
}

func TestAppError_ErrorsAs(t *testing.T) {
	var err error = NewValidationError("Title is required")

	var appErr *AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, CodeValidation, appErr.Code)
}
