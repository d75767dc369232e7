package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	store := NewMemoryUserStore()
	svc := NewAuthService(store, []byte("test-secret"))

	err := svc.Register(context.Background(), "new@example.com", "hunter22", "New Lifter")
	require.NoError(t, err)

	token, user, err := svc.Login(context.Background(), "new@example.com", "hunter22")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "New Lifter", user.Name)
	assert.NotEqual(t, "hunter22", user.Password) // stored hashed
	assert.NotNil(t, user.Workouts)
	assert.Empty(t, user.Workouts)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	store := NewMemoryUserStore()
	svc := NewAuthService(store, []byte("test-secret"))

	require.NoError(t, svc.Register(context.Background(), "dup@example.com", "pw1", "First"))
	err := svc.Register(context.Background(), "dup@example.com", "pw2", "Second")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	store := NewMemoryUserStore()
	svc := NewAuthService(store, []byte("test-secret"))
	require.NoError(t, svc.Register(context.Background(), "who@example.com", "right", "Who"))

	_, _, err := svc.Login(context.Background(), "who@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(context.Background(), "nobody@example.com", "right")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
