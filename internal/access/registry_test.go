package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookshookapp/bookshook-bot/internal/errors"
)

const testAdminID int64 = 42

func TestNewRegistry_AdminIsPremium(t *testing.T) {
	reg := NewRegistry(testAdminID)

	assert.True(t, reg.IsPremium(testAdminID))
	assert.True(t, reg.IsAdmin(testAdminID))
	assert.False(t, reg.IsPremium(7))
	assert.False(t, reg.IsAdmin(7))
}

func TestRegistry_Grant_AdminOnly(t *testing.T) {
	reg := NewRegistry(testAdminID)

	err := reg.Grant(7, "100")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrUnauthorized))

	// A failed grant must not change membership.
	assert.False(t, reg.IsPremium(100))
}

func TestRegistry_Grant_ByAdmin(t *testing.T) {
	reg := NewRegistry(testAdminID)

	require.NoError(t, reg.Grant(testAdminID, "100"))
	assert.True(t, reg.IsPremium(100))

	// Granting twice is harmless.
	require.NoError(t, reg.Grant(testAdminID, "100"))
	assert.True(t, reg.IsPremium(100))
}

func TestRegistry_ConcurrentReads(t *testing.T) {
	reg := NewRegistry(testAdminID)
	require.NoError(t, reg.Grant(testAdminID, "100"))

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				reg.IsPremium(100)
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
