package ebooks

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/johnbooks/admin-gateway/internal/backend"
	"github.com/johnbooks/admin-gateway/internal/domain"
	"github.com/johnbooks/admin-gateway/internal/metrics"
)

// Notifier surfaces transient notifications to the admin.
type Notifier interface {
	Success(ctx context.Context, msg string)
	Error(ctx context.Context, msg string)
}

// Store holds the aggregate ebook listing. The collection is read-only from
// the gateway's side: no create, update or delete operation exists here.
type Store struct {
	api      backend.API
	notifier Notifier
	logger   *zap.Logger

	mu      sync.RWMutex
	ebooks  []domain.Ebook
	loading bool
}

func NewStore(api backend.API, notifier Notifier, logger *zap.Logger) *Store {
	return &Store{
		api:      api,
		notifier: notifier,
		logger:   logger,
	}
}

func (s *Store) Ebooks() []domain.Ebook {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Ebook, len(s.ebooks))
	copy(out, s.ebooks)
	return out
}

func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Load fetches the full listing, replacing the held collection.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	fetched, err := s.api.ListEbooks(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.logger.Error("failed to load ebooks", zap.Error(err))
		metrics.BackendErrorsTotal.WithLabelValues("list_ebooks").Inc()
		s.notifier.Error(ctx, "Failed to load ebooks.")
		return
	}
	s.ebooks = fetched
}

// Search filters the held collection locally. It never refetches — only the
// shown subset is recomputed.
func (s *Store) Search(query string) []domain.Ebook {
	return domain.SearchEbooks(s.Ebooks(), query)
}
