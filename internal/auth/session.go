package auth

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Taosaywong/storemart/internal/domain"
	"github.com/Taosaywong/storemart/internal/rest"
)

// ErrSessionExpired means the refresh token was rejected and the user must
// log in again.
var ErrSessionExpired = errors.New("session expired, please log in again")

// API is the slice of the REST client the session needs.
type API interface {
	Login(ctx context.Context, username, password string) (*rest.LoginResult, error)
	RefreshToken(ctx context.Context, refresh string) (string, error)
}

// Session holds the authenticated user and token pair. It implements
// rest.TokenSource so the client can attach the bearer credential.
type Session struct {
	api API

	mu      sync.RWMutex
	access  string
	refresh string
	user    *domain.User
}

func NewSession(api API) *Session {
	return &Session{api: api}
}

// Login authenticates and stores the token pair and user profile.
func (s *Session) Login(ctx context.Context, username, password string) (*domain.User, error) {
	result, err := s.api.Login(ctx, username, password)
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	s.mu.Lock()
	s.access = result.Access
	s.refresh = result.Refresh
	s.user = &result.User
	s.mu.Unlock()

	return &result.User, nil
}

// Restore primes the session from persisted credentials.
func (s *Session) Restore(access, refresh string, user *domain.User) {
	s.mu.Lock()
	s.access = access
	s.refresh = refresh
	s.user = user
	s.mu.Unlock()
}

// Logout drops all credentials.
func (s *Session) Logout() {
	s.mu.Lock()
	s.access = ""
	s.refresh = ""
	s.user = nil
	s.mu.Unlock()
}

// Tokens returns the current token pair, for persisting the session
// between runs.
func (s *Session) Tokens() (access, refresh string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.access, s.refresh
}

func (s *Session) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.access
}

func (s *Session) User() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// RefreshNow exchanges the refresh token once. A 401-class rejection maps to
// ErrSessionExpired and clears the session.
func (s *Session) RefreshNow(ctx context.Context) error {
	s.mu.RLock()
	refresh := s.refresh
	s.mu.RUnlock()

	if refresh == "" {
		return ErrSessionExpired
	}

	access, err := s.api.RefreshToken(ctx, refresh)
	if err != nil {
		if errors.Is(err, rest.ErrUnauthorized) {
			s.Logout()
			return ErrSessionExpired
		}
		return fmt.Errorf("token refresh failed: %w", err)
	}

	s.mu.Lock()
	s.access = access
	s.mu.Unlock()
	return nil
}

// RunRefresher refreshes the access token on a fixed interval until ctx is
// cancelled or the session expires. Redundant refreshes are harmless; the
// only guarantee needed is that a refresh lands before expiry.
func (s *Session) RunRefresher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			err := s.RefreshNow(ctx)
			if errors.Is(err, ErrSessionExpired) {
				log.Printf("token refresher stopping: %v", err)
				return
			}
			if err != nil {
				log.Printf("token refresh error: %v", err)
			}
		}
	}
}
