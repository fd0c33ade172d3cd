package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tugela/gigmatch/internal/domain/model"
)

// PGStore implements Store against a PostgreSQL database. Connections are
// pooled; each call acquires from the pool and releases on return, so a
// request never holds a connection beyond its own store access.
type PGStore struct {
	pool *pgxpool.Pool
}

// NewPGStore opens a connection pool and verifies it with a ping.
func NewPGStore(ctx context.Context, databaseURL string) (*PGStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return &PGStore{pool: pool}, nil
}

// Close releases the connection pool.
func (s *PGStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// GetFreelancer returns the raw freelancer row for an id.
func (s *PGStore) GetFreelancer(ctx context.Context, freelancerID int64) (model.RawRecord, error) {
	var (
		id         int64
		name       string
		skills     []string
		hourlyRate float64
		rating     *float64
		category   *string
		location   *string
		available  *bool
		phone      *string
		address    *string
	)
	err := s.pool.QueryRow(ctx,
		`SELECT freelancer_id, name, skills, hourly_rate, rating, category, location, available, phone, address
		 FROM freelancers WHERE freelancer_id = $1`,
		freelancerID,
	).Scan(&id, &name, &skills, &hourlyRate, &rating, &category, &location, &available, &phone, &address)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("freelancer %d: %w", freelancerID, ErrNotFound)
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	rec := model.RawRecord{
		"freelancer_id": id,
		"name":          name,
		"skills":        skills,
		"hourly_rate":   hourlyRate,
	}
	putOptional(rec, "rating", rating)
	putOptional(rec, "category", category)
	putOptional(rec, "location", location)
	putOptional(rec, "available", available)
	putOptional(rec, "phone", phone)
	putOptional(rec, "address", address)
	return rec, nil
}

// ListGigs returns every raw gig row in the named collection. An empty
// result means the collection is unknown to the store.
func (s *PGStore) ListGigs(ctx context.Context, collection string) ([]model.RawRecord, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT gig_id, title, skills, budget_min, budget_max, category, location, remote, status
		 FROM gigs WHERE collection = $1 ORDER BY gig_id`,
		collection,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var recs []model.RawRecord
	for rows.Next() {
		var (
			id        int64
			title     *string
			skills    []string
			budgetMin *float64
			budgetMax *float64
			category  *string
			location  *string
			remote    *bool
			status    *string
		)
		if err := rows.Scan(&id, &title, &skills, &budgetMin, &budgetMax, &category, &location, &remote, &status); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		rec := model.RawRecord{
			"gig_id": id,
			"skills": skills,
		}
		putOptional(rec, "title", title)
		putOptional(rec, "budget_min", budgetMin)
		putOptional(rec, "budget_max", budgetMax)
		putOptional(rec, "category", category)
		putOptional(rec, "location", location)
		putOptional(rec, "remote", remote)
		putOptional(rec, "status", status)
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("gig collection %q: %w", collection, ErrNotFound)
	}
	return recs, nil
}

// InsertFreelancer adds or replaces a freelancer row.
func (s *PGStore) InsertFreelancer(ctx context.Context, rec model.RawRecord) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO freelancers (freelancer_id, name, skills, hourly_rate, rating, category, location, available, phone, address)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 ON CONFLICT (freelancer_id) DO UPDATE SET
		   name = $2, skills = $3, hourly_rate = $4, rating = $5, category = $6,
		   location = $7, available = $8, phone = $9, address = $10`,
		rec["freelancer_id"], rec["name"], rec["skills"], rec["hourly_rate"], rec["rating"],
		rec["category"], rec["location"], rec["available"], rec["phone"], rec["address"],
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// InsertGig appends a gig row to the named collection.
func (s *PGStore) InsertGig(ctx context.Context, collection string, rec model.RawRecord) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO gigs (collection, gig_id, title, skills, budget_min, budget_max, category, location, remote, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		collection, rec["gig_id"], rec["title"], rec["skills"], rec["budget_min"], rec["budget_max"],
		rec["category"], rec["location"], rec["remote"], rec["status"],
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// putOptional copies a nullable column into the raw record, leaving the key
// absent when the column was NULL so the normalizer applies its defaults.
func putOptional[T any](rec model.RawRecord, key string, v *T) {
	if v != nil {
		rec[key] = *v
	}
}
