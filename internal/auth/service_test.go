package auth

import (
	"testing"
	"time"

	"pyronix-studio/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(ttl time.Duration) *Service {
	return NewService(&config.AuthCfg{
		OperatorEmail:    "studio@example.com",
		OperatorPassword: "secret",
		SessionTTL:       ttl,
	})
}

func TestSignIn(t *testing.T) {
	service := newTestService(time.Hour)

	t.Run("valid credentials return a token", func(t *testing.T) {
		session, err := service.SignIn("studio@example.com", "secret")
		require.NoError(t, err)
		assert.NotEmpty(t, session.Token)
		assert.Equal(t, "studio@example.com", session.Email)
	})

	t.Run("email comparison ignores case", func(t *testing.T) {
		_, err := service.SignIn("Studio@Example.COM", "secret")
		assert.NoError(t, err)
	})

	t.Run("wrong password rejected", func(t *testing.T) {
		_, err := service.SignIn("studio@example.com", "nope")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("wrong email rejected", func(t *testing.T) {
		_, err := service.SignIn("intruder@example.com", "secret")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestLookupAndSignOut(t *testing.T) {
	service := newTestService(time.Hour)

	session, err := service.SignIn("studio@example.com", "secret")
	require.NoError(t, err)

	found, err := service.Lookup(session.Token)
	require.NoError(t, err)
	assert.Equal(t, session.Token, found.Token)

	service.SignOut(session.Token)
	_, err = service.Lookup(session.Token)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestLookupExpiredSession(t *testing.T) {
	service := newTestService(-time.Second)

	session, err := service.SignIn("studio@example.com", "secret")
	require.NoError(t, err)

	_, err = service.Lookup(session.Token)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestPruneExpired(t *testing.T) {
	service := newTestService(time.Minute)

	_, err := service.SignIn("studio@example.com", "secret")
	require.NoError(t, err)
	_, err = service.SignIn("studio@example.com", "secret")
	require.NoError(t, err)

	assert.Equal(t, 0, service.PruneExpired(time.Now()))
	assert.Equal(t, 2, service.PruneExpired(time.Now().Add(2*time.Minute)))
}
