// Package repository defines the record store interface and its errors.
package repository

import (
	"context"

	"github.com/tugela/gigmatch/internal/domain/model"
)

// Store provides read access to freelancer and gig records held in an
// external store, plus the insert paths used by seeding tools. Rows come
// back as raw mappings; normalization happens downstream.
type Store interface {
	// GetFreelancer returns the raw record for a freelancer id.
	// Returns ErrNotFound if the id has no matching row.
	GetFreelancer(ctx context.Context, freelancerID int64) (model.RawRecord, error)

	// ListGigs returns every raw gig record in the named collection.
	// Returns ErrNotFound if the collection is unknown.
	ListGigs(ctx context.Context, collection string) ([]model.RawRecord, error)

	// InsertFreelancer adds or replaces a freelancer record.
	InsertFreelancer(ctx context.Context, rec model.RawRecord) error

	// InsertGig appends a gig record to the named collection.
	InsertGig(ctx context.Context, collection string, rec model.RawRecord) error

	// Close releases the underlying store connection.
	Close()
}
