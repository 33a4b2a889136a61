// Package auth guards the admin triage surface with the single operator
// credential and short-lived bearer tokens.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"pyronix-studio/internal/pkg/config"
)

var (
	ErrInvalidCredentials = errors.New("invalid operator credentials")
	ErrNoSession          = errors.New("no active session for token")
)

type Session struct {
	Token     string    `json:"token"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}

type Service struct {
	operatorEmail    string
	operatorPassword string
	ttl              time.Duration
	sessions         map[string]Session
	mu               *sync.RWMutex
}

func NewService(cfg *config.AuthCfg) *Service {
	return &Service{
		operatorEmail:    cfg.OperatorEmail,
		operatorPassword: cfg.OperatorPassword,
		ttl:              cfg.SessionTTL,
		sessions:         make(map[string]Session),
		mu:               &sync.RWMutex{},
	}
}

// SignIn exchanges the operator credential for a session token. Comparison is
// constant time so the error never hints which half was wrong.
func (s *Service) SignIn(email, password string) (*Session, error) {
	emailOK := subtle.ConstantTimeCompare([]byte(strings.ToLower(email)), []byte(strings.ToLower(s.operatorEmail)))
	passwordOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.operatorPassword))
	if emailOK&passwordOK != 1 {
		return nil, ErrInvalidCredentials
	}

	token, err := generateToken()
	if err != nil {
		slog.Error("Failed to generate session token", "error", err)
		return nil, err
	}

	session := Session{
		Token:     token,
		Email:     s.operatorEmail,
		ExpiresAt: time.Now().Add(s.ttl),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = session

	return &session, nil
}

// Lookup resolves a bearer token into its session, dropping it when expired.
func (s *Service) Lookup(token string) (*Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrNoSession
	}
	if time.Now().After(session.ExpiresAt) {
		s.SignOut(token)
		return nil, ErrNoSession
	}
	return &session, nil
}

func (s *Service) SignOut(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

// PruneExpired drops expired sessions and returns how many were removed.
func (s *Service) PruneExpired(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	pruned := 0
	for token, session := range s.sessions {
		if now.After(session.ExpiresAt) {
			delete(s.sessions, token)
			pruned++
		}
	}
	return pruned
}

// generateToken returns a URL-safe random token, 192 bits of entropy.
func generateToken() (string, error) {
	b := make([]byte, 24)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return strings.TrimRight(base64.URLEncoding.EncodeToString(b), "="), nil
}
