package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/tugela/gigmatch/internal/domain/model"
)

// MemStore is an in-memory Store used by tests and local development.
// Gig collections preserve insertion order.
type MemStore struct {
	mu          sync.RWMutex
	freelancers map[int64]model.RawRecord
	gigs        map[string][]model.RawRecord
}

// Option applies a configuration option to the MemStore.
type Option func(*MemStore)

// WithFreelancers seeds the store with freelancer records keyed by id.
func WithFreelancers(recs map[int64]model.RawRecord) Option {
	return func(s *MemStore) {
		for id, rec := range recs {
			s.freelancers[id] = rec
		}
	}
}

// WithGigCollection seeds a named gig collection.
func WithGigCollection(collection string, recs []model.RawRecord) Option {
	return func(s *MemStore) {
		s.gigs[collection] = append(s.gigs[collection], recs...)
	}
}

// NewMemStore creates an empty in-memory store.
func NewMemStore(opts ...Option) *MemStore {
	s := &MemStore{
		freelancers: make(map[int64]model.RawRecord),
		gigs:        make(map[string][]model.RawRecord),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Close is a no-op for the in-memory store.
func (s *MemStore) Close() {}

// GetFreelancer returns the raw freelancer record for an id.
func (s *MemStore) GetFreelancer(_ context.Context, freelancerID int64) (model.RawRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.freelancers[freelancerID]
	if !ok {
		return nil, fmt.Errorf("freelancer %d: %w", freelancerID, ErrNotFound)
	}
	return copyRecord(rec), nil
}

// ListGigs returns the raw gig records of a named collection in
// insertion order.
func (s *MemStore) ListGigs(_ context.Context, collection string) ([]model.RawRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	recs, ok := s.gigs[collection]
	if !ok {
		return nil, fmt.Errorf("gig collection %q: %w", collection, ErrNotFound)
	}
	out := make([]model.RawRecord, len(recs))
	for i, rec := range recs {
		out[i] = copyRecord(rec)
	}
	return out, nil
}

// InsertFreelancer adds or replaces a freelancer record. The record must
// carry a freelancer_id convertible to int64.
func (s *MemStore) InsertFreelancer(_ context.Context, rec model.RawRecord) error {
	id, ok := recordID(rec, "freelancer_id")
	if !ok {
		return fmt.Errorf("insert freelancer: missing freelancer_id: %w", ErrNotFound)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.freelancers[id] = copyRecord(rec)
	return nil
}

// InsertGig appends a gig record to the named collection, creating the
// collection if needed.
func (s *MemStore) InsertGig(_ context.Context, collection string, rec model.RawRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gigs[collection] = append(s.gigs[collection], copyRecord(rec))
	return nil
}

// copyRecord shallow-copies a raw record so callers cannot mutate stored rows.
func copyRecord(rec model.RawRecord) model.RawRecord {
	out := make(model.RawRecord, len(rec))
	for k, v := range rec {
		out[k] = v
	}
	return out
}

// recordID extracts an integer id field from a raw record.
func recordID(rec model.RawRecord, key string) (int64, bool) {
	switch v := rec[key].(type) {
	case int64:
		return v, true
	case int:
		return int64(v), true
	case float64:
		return int64(v), true
	default:
		return 0, false
	}
}
