package owners

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/johnbooks/admin-gateway/internal/backend"
	"github.com/johnbooks/admin-gateway/internal/domain"
	"github.com/johnbooks/admin-gateway/internal/metrics"
)

// ErrDeleteInFlight rejects a duplicate delete of a record whose first delete
// has not resolved yet.
var ErrDeleteInFlight = errors.New("delete already in progress for this owner")

// Notifier surfaces transient notifications to the admin.
type Notifier interface {
	Success(ctx context.Context, msg string)
	Error(ctx context.Context, msg string)
}

// Store holds the owner review screen's state: the current status filter and
// the held collection. Every load fully replaces the collection — records are
// never merged or deduplicated across fetches.
type Store struct {
	api      backend.API
	notifier Notifier
	logger   *zap.Logger

	mu       sync.RWMutex
	owners   []domain.Owner
	filter   domain.OwnerStatus
	loading  bool
	deleting map[string]bool
}

func NewStore(api backend.API, notifier Notifier, logger *zap.Logger) *Store {
	return &Store{
		api:      api,
		notifier: notifier,
		logger:   logger,
		filter:   domain.StatusPending,
		deleting: make(map[string]bool),
	}
}

func (s *Store) Owners() []domain.Owner {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Owner, len(s.owners))
	copy(out, s.owners)
	return out
}

func (s *Store) Filter() domain.OwnerStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter
}

func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Deleting reports whether a delete of the given record is outstanding.
func (s *Store) Deleting(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.deleting[id]
}

// Load fetches the records matching the filter and replaces the held
// collection. On failure the collection is left as it was.
func (s *Store) Load(ctx context.Context, filter domain.OwnerStatus) {
	s.mu.Lock()
	s.filter = filter
	s.loading = true
	s.mu.Unlock()

	fetched, err := s.api.ListOwners(ctx, filter)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.logger.Error("failed to load owners", zap.String("filter", string(filter)), zap.Error(err))
		metrics.BackendErrorsTotal.WithLabelValues("list_owners").Inc()
		s.notifier.Error(ctx, "Failed to load owners.")
		return
	}
	s.owners = fetched
}

// Approve requests the pending->approved transition. The status is never
// flipped locally: on success the filtered list is reloaded from the backend.
func (s *Store) Approve(ctx context.Context, id string) error {
	if err := s.api.ApproveOwner(ctx, id); err != nil {
		s.logger.Error("failed to approve owner", zap.String("owner_id", id), zap.Error(err))
		metrics.BackendErrorsTotal.WithLabelValues("approve_owner").Inc()
		s.notifier.Error(ctx, backend.ErrorMessage(err, "Failed to approve owner."))
		return err
	}

	metrics.OwnersApprovedTotal.Inc()
	s.notifier.Success(ctx, "Owner approved.")
	s.Load(ctx, s.Filter())
	return nil
}

// Reject requests the pending->rejected transition, then reloads.
func (s *Store) Reject(ctx context.Context, id string) error {
	if err := s.api.RejectOwner(ctx, id); err != nil {
		s.logger.Error("failed to reject owner", zap.String("owner_id", id), zap.Error(err))
		metrics.BackendErrorsTotal.WithLabelValues("reject_owner").Inc()
		s.notifier.Error(ctx, backend.ErrorMessage(err, "Failed to reject owner."))
		return err
	}

	metrics.OwnersRejectedTotal.Inc()
	s.notifier.Success(ctx, "Owner rejected.")
	s.Load(ctx, s.Filter())
	return nil
}

// Delete issues the irreversible removal. On success the record is removed
// from local state directly, without a reload; on failure the held list is
// unchanged. A record with a delete outstanding cannot be deleted again, but
// deleting a different record concurrently is allowed.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	if s.deleting[id] {
		s.mu.Unlock()
		return ErrDeleteInFlight
	}
	s.deleting[id] = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.deleting, id)
		s.mu.Unlock()
	}()

	if err := s.api.DeleteOwner(ctx, id); err != nil {
		s.logger.Error("failed to delete owner", zap.String("owner_id", id), zap.Error(err))
		metrics.BackendErrorsTotal.WithLabelValues("delete_owner").Inc()
		s.notifier.Error(ctx, backend.ErrorMessage(err, "Failed to delete owner."))
		return err
	}

	s.mu.Lock()
	kept := s.owners[:0:0]
	for _, o := range s.owners {
		if o.ID != id {
			kept = append(kept, o)
		}
	}
	s.owners = kept
	s.mu.Unlock()

	metrics.OwnersDeletedTotal.Inc()
	s.notifier.Success(ctx, "Owner deleted.")
	return nil
}
