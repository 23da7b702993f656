package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Error(t *testing.T) {
	err := NotFound("unknown genre")
	assert.Equal(t, "unknown genre", err.Error())

	wrapped := ErrProviderFailure.WithCause(stderrors.New("connection refused"))
	assert.Equal(t, "provider failure: connection refused", wrapped.Error())
}

func TestError_IsMatchesOnCode(t *testing.T) {
	err := NotFound("unknown genre")

	assert.True(t, Is(err, ErrNotFound))
	assert.False(t, Is(err, ErrUnauthorized))
}

func TestError_WrappingPreservesCodeAndCause(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := ProviderFailure("search request failed").WithCause(cause)

	assert.True(t, Is(err, ErrProviderFailure))
	assert.True(t, Is(err, cause))
	assert.Equal(t, cause, Unwrap(err))
}

func TestError_As(t *testing.T) {
	var domainErr *Error
	err := Validation("unknown search mode")

	require.True(t, As(err, &domainErr))
	assert.Equal(t, CodeValidation, domainErr.Code)
}

func TestInternalf(t *testing.T) {
	err := Internalf("session for user %d corrupted", 42)
	assert.True(t, Is(err, ErrInternal))
	assert.Equal(t, "session for user 42 corrupted", err.Message)
}
