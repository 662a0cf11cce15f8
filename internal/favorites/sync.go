// Package favorites keeps an in-memory set of favorited property ids
// consistent with the upstream favorites collection. The set is a cache
// of the remote state, scoped to the current session; it is torn down
// and rebuilt whenever the session identity changes.
package favorites

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"sync"

	"property-portal/internal/model"
	"property-portal/pkg/apierror"
)

// Remote is the slice of the upstream client the synchronizer needs.
type Remote interface {
	Favorites(ctx context.Context, token string) ([]int64, error)
	AddFavorite(ctx context.Context, token string, propertyID int64) error
	RemoveFavorite(ctx context.Context, token string, propertyID int64) error
}

type Synchronizer struct {
	remote Remote

	mu    sync.Mutex
	token string
	// generation changes on every bind, unbind, and confirmed mutation.
	// A reconcile whose snapshot predates the current generation is
	// stale and must be discarded instead of replacing newer state.
	generation uint64
	ids        map[int64]struct{}
}

func New(remote Remote) *Synchronizer {
	return &Synchronizer{
		remote: remote,
		ids:    map[int64]struct{}{},
	}
}

// Bind scopes the synchronizer to a new session token. Any previous
// set is discarded; Reconcile repopulates it.
func (s *Synchronizer) Bind(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	s.generation++
	s.ids = map[int64]struct{}{}
}

// Unbind clears the session scope and empties the set. In-flight
// reconciles for the old session become stale and will be dropped.
func (s *Synchronizer) Unbind() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.generation++
	s.ids = map[int64]struct{}{}
}

// Reconcile fetches the full remote collection and replaces the set
// with it. Failures degrade to an empty set without error; a failed
// favorites load never forces the user out of their session.
func (s *Synchronizer) Reconcile(ctx context.Context) {
	s.mu.Lock()
	token := s.token
	snapshot := s.generation
	s.mu.Unlock()

	if token == "" {
		return
	}

	remoteIDs, err := s.remote.Favorites(ctx, token)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.generation != snapshot {
		// The session changed or a mutation was confirmed while the
		// fetch was in flight; this snapshot no longer applies.
		slog.Debug("discarding stale favorites reconcile")
		return
	}

	if err != nil {
		var apiErr *apierror.APIError
		if !errors.As(err, &apiErr) || !apiErr.IsAuth() {
			slog.Warn("favorites reconcile failed", "error", err)
		}
		s.ids = map[int64]struct{}{}
		return
	}

	ids := make(map[int64]struct{}, len(remoteIDs))
	for _, id := range remoteIDs {
		ids[id] = struct{}{}
	}
	s.ids = ids
}

// Add creates the favorite upstream and, only on confirmed success,
// inserts it locally. A duplicate is rejected before any remote call;
// an upstream 409 surfaces the same signal without mutating the set.
func (s *Synchronizer) Add(ctx context.Context, propertyID int64) error {
	s.mu.Lock()
	token := s.token
	if token == "" {
		s.mu.Unlock()
		return model.ErrNotLoggedIn
	}
	if _, exists := s.ids[propertyID]; exists {
		s.mu.Unlock()
		return model.ErrAlreadyFavorite
	}
	s.mu.Unlock()

	if err := s.remote.AddFavorite(ctx, token, propertyID); err != nil {
		var apiErr *apierror.APIError
		if errors.As(err, &apiErr) && apiErr.IsConflict() {
			// Remote already has the relationship; local state stays
			// untouched so the next reconcile can settle it.
			return model.ErrAlreadyFavorite
		}
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token != token {
		// Session changed while the call was in flight.
		return model.ErrNotLoggedIn
	}

	s.ids[propertyID] = struct{}{}
	s.generation++
	return nil
}

// Remove deletes the favorite upstream and, only on success, deletes it
// locally. A failed call leaves the set unchanged.
func (s *Synchronizer) Remove(ctx context.Context, propertyID int64) error {
	s.mu.Lock()
	token := s.token
	s.mu.Unlock()

	if token == "" {
		return model.ErrNotLoggedIn
	}

	if err := s.remote.RemoveFavorite(ctx, token, propertyID); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token != token {
		return model.ErrNotLoggedIn
	}

	delete(s.ids, propertyID)
	s.generation++
	return nil
}

// Has reports membership in the current set.
func (s *Synchronizer) Has(propertyID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, exists := s.ids[propertyID]
	return exists
}

// IDs returns a sorted copy of the current set.
func (s *Synchronizer) IDs() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]int64, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Len returns the size of the current set.
func (s *Synchronizer) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.ids)
}
