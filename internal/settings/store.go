package settings

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/johnbooks/admin-gateway/internal/backend"
	"github.com/johnbooks/admin-gateway/internal/domain"
	"github.com/johnbooks/admin-gateway/internal/metrics"
)

// Notifier surfaces transient notifications to the admin.
type Notifier interface {
	Success(ctx context.Context, msg string)
	Error(ctx context.Context, msg string)
}

// Applier swaps the active visual root's theme. The web layer registers one
// that repaints the base template state; it runs synchronously with data
// arrival, not on a later render pass.
type Applier interface {
	ApplyTheme(mode domain.ThemeMode)
}

// ApplierFunc adapts a function to the Applier interface.
type ApplierFunc func(mode domain.ThemeMode)

func (f ApplierFunc) ApplyTheme(mode domain.ThemeMode) { f(mode) }

// Store holds the platform-wide theme. The setting is global — one value for
// every surface of the platform, not per-admin.
type Store struct {
	api      backend.API
	cache    *ThemeCache
	applier  Applier
	notifier Notifier
	logger   *zap.Logger

	mu      sync.RWMutex
	mode    domain.ThemeMode
	loading bool

	// One key for both fetch and update: overlapping theme operations join
	// the in-flight one instead of racing it.
	flight singleflight.Group
}

func NewStore(api backend.API, cache *ThemeCache, applier Applier, notifier Notifier, logger *zap.Logger) *Store {
	s := &Store{
		api:      api,
		cache:    cache,
		applier:  applier,
		notifier: notifier,
		logger:   logger,
		mode:     domain.ThemeDark,
	}
	// Pre-paint from the cache slot before the authoritative fetch resolves.
	if cached, ok := cache.Read(); ok {
		s.mode = cached
		applier.ApplyTheme(cached)
	}
	return s
}

func (s *Store) Mode() domain.ThemeMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// FetchTheme retrieves the current global theme and applies it to state,
// cache and visual root. Fetch failures are logged, not surfaced.
func (s *Store) FetchTheme(ctx context.Context) {
	s.flight.Do("theme", func() (any, error) {
		s.setLoading(true)
		defer s.setLoading(false)

		mode, err := s.api.GetTheme(ctx)
		if err != nil {
			s.logger.Error("failed to fetch theme", zap.Error(err))
			metrics.BackendErrorsTotal.WithLabelValues("get_theme").Inc()
			return nil, nil
		}
		s.apply(mode)
		return nil, nil
	})
}

// UpdateTheme requests the change and applies the server-confirmed value —
// not the requested one. Nothing is applied optimistically: on failure the
// prior state stands untouched.
func (s *Store) UpdateTheme(ctx context.Context, mode domain.ThemeMode) error {
	_, err, _ := s.flight.Do("theme", func() (any, error) {
		s.setLoading(true)
		defer s.setLoading(false)

		confirmed, err := s.api.UpdateTheme(ctx, mode)
		if err != nil {
			s.logger.Error("failed to update theme", zap.Error(err))
			metrics.BackendErrorsTotal.WithLabelValues("update_theme").Inc()
			s.notifier.Error(ctx, "Failed to update theme")
			return nil, err
		}

		s.apply(confirmed)
		metrics.ThemeUpdatesTotal.Inc()
		s.notifier.Success(ctx, "Theme updated successfully")
		return nil, nil
	})
	return err
}

func (s *Store) apply(mode domain.ThemeMode) {
	s.mu.Lock()
	s.mode = mode
	s.mu.Unlock()

	if err := s.cache.Write(mode); err != nil {
		s.logger.Warn("failed to persist theme cache", zap.Error(err))
	}
	s.applier.ApplyTheme(mode)
}

func (s *Store) setLoading(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = v
}
