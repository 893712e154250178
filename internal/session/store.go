package session

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/johnbooks/admin-gateway/internal/backend"
	"github.com/johnbooks/admin-gateway/internal/domain"
	"github.com/johnbooks/admin-gateway/internal/metrics"
)

// Notifier surfaces transient notifications to the admin. The web layer backs
// it with flash messages.
type Notifier interface {
	Success(ctx context.Context, msg string)
	Error(ctx context.Context, msg string)
}

// Store is the single source of truth for "is anyone authenticated". At most
// one admin identity is held at a time; only Store methods mutate it.
type Store struct {
	api      backend.API
	notifier Notifier
	logger   *zap.Logger

	mu      sync.RWMutex
	admin   *domain.Admin
	loading bool

	// Collapses concurrent logins and session checks onto one in-flight call
	// per operation instead of letting the last resolution win.
	flight singleflight.Group
}

func NewStore(api backend.API, notifier Notifier, logger *zap.Logger) *Store {
	return &Store{
		api:      api,
		notifier: notifier,
		logger:   logger,
	}
}

// Admin returns the held identity, or nil when unauthenticated.
func (s *Store) Admin() *domain.Admin {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.admin == nil {
		return nil
	}
	admin := *s.admin
	return &admin
}

// Loading reports whether an auth operation is in flight.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// CheckSession asks the backend who is logged in. A failure of any kind —
// including plain "not authenticated" — clears the identity and yields nil;
// it is an expected outcome, never an error surfaced to the admin.
func (s *Store) CheckSession(ctx context.Context) *domain.Admin {
	admin, _, _ := s.flight.Do("check-session", func() (any, error) {
		s.setLoading(true)
		defer s.setLoading(false)

		admin, err := s.api.Me(ctx)
		if err != nil {
			s.logger.Debug("session check failed", zap.Error(err))
			s.setAdmin(nil)
			return (*domain.Admin)(nil), nil
		}
		s.setAdmin(admin)
		return admin, nil
	})
	return admin.(*domain.Admin)
}

// Login sends credentials and, on success, re-checks the session so the
// identity always comes from the authoritative source rather than the login
// response body. A second login while one is outstanding joins the first.
func (s *Store) Login(ctx context.Context, username, password string) error {
	_, err, _ := s.flight.Do("login", func() (any, error) {
		s.setLoading(true)

		if err := s.api.Login(ctx, username, password); err != nil {
			s.setLoading(false)
			msg := backend.ErrorMessage(err, "Login failed.")
			s.logger.Warn("login failed", zap.String("username", username), zap.Error(err))
			s.notifier.Error(ctx, msg)
			return nil, err
		}

		me := s.CheckSession(ctx)
		if me != nil {
			name := me.Username
			if name == "" {
				name = "Admin"
			}
			s.notifier.Success(ctx, "Welcome back, "+name+".")
			metrics.LoginsTotal.Inc()
		}
		return nil, nil
	})
	return err
}

// Logout requests server-side termination and clears the local identity
// unconditionally: a network failure must never keep the admin logged in
// client-side.
func (s *Store) Logout(ctx context.Context) {
	if err := s.api.Logout(ctx); err != nil {
		s.logger.Warn("logout request failed, clearing local session anyway", zap.Error(err))
	}
	s.setAdmin(nil)
	s.notifier.Success(ctx, "Logged out.")
}

func (s *Store) setAdmin(admin *domain.Admin) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.admin = admin
}

func (s *Store) setLoading(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = v
}
