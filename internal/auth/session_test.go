package auth

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Taosaywong/storemart/internal/domain"
	"github.com/Taosaywong/storemart/internal/rest"
)

// apiMock implements the API interface for testing.
type apiMock struct {
	mu sync.Mutex

	loginResult *rest.LoginResult
	loginErr    error

	refreshed    string
	refreshErr   error
	refreshCalls int
}

func (m *apiMock) Login(_ context.Context, _, _ string) (*rest.LoginResult, error) {
	return m.loginResult, m.loginErr
}

func (m *apiMock) RefreshToken(_ context.Context, _ string) (string, error) {
	m.mu.Lock()
	m.refreshCalls++
	m.mu.Unlock()
	return m.refreshed, m.refreshErr
}

func (m *apiMock) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.refreshCalls
}

func TestLogin_StoresSession(t *testing.T) {
	mock := &apiMock{
		loginResult: &rest.LoginResult{
			Access:  "access-1",
			Refresh: "refresh-1",
			User:    domain.User{ID: 1, Username: "aina", Role: domain.RoleCustomer},
		},
	}
	s := NewSession(mock)

	user, err := s.Login(context.Background(), "aina", "secret")

	require.NoError(t, err)
	assert.Equal(t, domain.RoleCustomer, user.Role)
	assert.Equal(t, "access-1", s.AccessToken())
	assert.Equal(t, "aina", s.User().Username)

	// The token pair is what gets persisted between runs.
	access, refresh := s.Tokens()
	assert.Equal(t, "access-1", access)
	assert.Equal(t, "refresh-1", refresh)
}

func TestLogin_Failure(t *testing.T) {
	mock := &apiMock{loginErr: rest.ErrUnauthorized}
	s := NewSession(mock)

	_, err := s.Login(context.Background(), "aina", "wrong")

	assert.ErrorIs(t, err, rest.ErrUnauthorized)
	assert.Empty(t, s.AccessToken())
}

func TestRefreshNow_UpdatesAccessToken(t *testing.T) {
	mock := &apiMock{refreshed: "access-2"}
	s := NewSession(mock)
	s.Restore("access-1", "refresh-1", &domain.User{ID: 1})

	require.NoError(t, s.RefreshNow(context.Background()))
	assert.Equal(t, "access-2", s.AccessToken())
}

func TestRefreshNow_ExpiredSession(t *testing.T) {
	mock := &apiMock{refreshErr: rest.ErrUnauthorized}
	s := NewSession(mock)
	s.Restore("access-1", "refresh-1", &domain.User{ID: 1})

	err := s.RefreshNow(context.Background())

	assert.ErrorIs(t, err, ErrSessionExpired)
	// The session is cleared; the user must log in again.
	assert.Empty(t, s.AccessToken())
	assert.Nil(t, s.User())
}

func TestRefreshNow_WithoutRefreshToken(t *testing.T) {
	s := NewSession(&apiMock{})
	assert.ErrorIs(t, s.RefreshNow(context.Background()), ErrSessionExpired)
}

func TestRefreshNow_TransientError(t *testing.T) {
	mock := &apiMock{refreshErr: errors.New("connection reset")}
	s := NewSession(mock)
	s.Restore("access-1", "refresh-1", &domain.User{ID: 1})

	err := s.RefreshNow(context.Background())

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSessionExpired)
	// Transient failures keep the session; the next tick retries.
	assert.Equal(t, "access-1", s.AccessToken())
}

func TestRunRefresher_StopsOnCancel(t *testing.T) {
	mock := &apiMock{refreshed: "access-2"}
	s := NewSession(mock)
	s.Restore("access-1", "refresh-1", &domain.User{ID: 1})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.RunRefresher(ctx, 10*time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool { return mock.calls() > 0 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("refresher did not stop on cancel")
	}
}

func TestRunRefresher_StopsOnExpiry(t *testing.T) {
	mock := &apiMock{refreshErr: rest.ErrUnauthorized}
	s := NewSession(mock)
	s.Restore("access-1", "refresh-1", &domain.User{ID: 1})

	done := make(chan struct{})
	go func() {
		s.RunRefresher(context.Background(), 10*time.Millisecond)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("refresher did not stop on session expiry")
	}
}
