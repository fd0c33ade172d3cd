// Package app provides the assessment service composing the record loader,
// normalizer, assessment constructor, scoring engine, and ranker into the
// operations exposed to callers.
package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tugela/gigmatch/internal/adapters/repository"
	"github.com/tugela/gigmatch/internal/domain/assessment"
	"github.com/tugela/gigmatch/internal/domain/model"
	"github.com/tugela/gigmatch/internal/domain/ranking"
	"github.com/tugela/gigmatch/internal/domain/scoring"
	"github.com/tugela/gigmatch/internal/domain/tabular"
	"github.com/tugela/gigmatch/pkg/logger"
	"github.com/tugela/gigmatch/pkg/metrics"
)

// Record kind labels for skipped-record accounting.
const (
	kindFreelancer = "freelancer"
	kindGig        = "gig"
)

// Service runs the assessment pipeline. It holds no per-request state;
// concurrent requests need no coordination beyond the store's own pooling.
type Service struct {
	store   repository.Store
	engine  *scoring.Engine
	log     logger.Logger
	maxTopN int
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithStore sets the record store backing FetchFreelancer and FetchGigs.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithWeights overrides the default scoring weights.
func WithWeights(w scoring.Weights) Option {
	return func(s *Service) {
		s.engine = scoring.NewEngine(scoring.WithWeights(w))
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithMaxTopN caps the top-n a caller may request; larger values are
// clamped, not rejected. Zero disables the cap.
func WithMaxTopN(n int) Option {
	return func(s *Service) {
		if n >= 0 {
			s.maxTopN = n
		}
	}
}

// New constructs a Service with default weights and a no-op logger.
func New(opts ...Option) *Service {
	s := &Service{
		engine: scoring.NewEngine(),
		log:    logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ParseTopN coerces a caller-supplied top-n string into a positive integer.
// Non-numeric or non-positive input fails with ranking.ErrInvalidTopN.
func ParseTopN(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %q", ranking.ErrInvalidTopN, s)
	}
	return n, nil
}

// FetchFreelancer loads and normalizes one freelancer record.
func (s *Service) FetchFreelancer(ctx context.Context, freelancerID int64) (model.FreelancerRecord, error) {
	if freelancerID <= 0 {
		return model.FreelancerRecord{}, fmt.Errorf("%w: %d", ErrInvalidFreelancerID, freelancerID)
	}
	raw, err := s.loadFreelancer(ctx, freelancerID)
	if err != nil {
		return model.FreelancerRecord{}, err
	}

	table := tabular.NormalizeFreelancers([]model.RawRecord{raw})
	metrics.AddSkippedRecords(kindFreelancer, table.Skipped)
	if len(table.Rows) != 1 {
		return model.FreelancerRecord{}, fmt.Errorf("freelancer %d failed validation: %w", freelancerID, assessment.ErrInvalidInput)
	}
	return table.Rows[0], nil
}

// FetchGigs loads and normalizes every gig in the named collection.
// Malformed records are dropped and counted, not raised.
func (s *Service) FetchGigs(ctx context.Context, collection string) ([]model.GigRecord, error) {
	raws, err := s.loadGigs(ctx, collection)
	if err != nil {
		return nil, err
	}

	table := tabular.NormalizeGigs(raws)
	metrics.AddSkippedRecords(kindGig, table.Skipped)
	if table.Skipped > 0 {
		s.log.Warn(ctx, "skipped malformed gig records",
			logger.String("collection", collection),
			logger.Int("skipped", table.Skipped),
		)
	}
	return table.Rows, nil
}

// Assess runs the full pipeline over raw records: normalize both sides,
// construct the comparison rows, score them, and rank the result. Each
// stage either produces its output or returns a typed failure that aborts
// the remaining stages.
func (s *Service) Assess(ctx context.Context, rawFreelancer model.RawRecord, rawGigs []model.RawRecord, topN int) (model.RankedResult, error) {
	start := time.Now()
	requestID := uuid.NewString()
	topN = s.clampTopN(ctx, topN)

	freelancers := tabular.NormalizeFreelancers([]model.RawRecord{rawFreelancer})
	gigs := tabular.NormalizeGigs(rawGigs)
	metrics.AddSkippedRecords(kindFreelancer, freelancers.Skipped)
	metrics.AddSkippedRecords(kindGig, gigs.Skipped)
	s.log.Debug(ctx, "normalized assessment input",
		logger.String("requestID", requestID),
		logger.Int("gigs", len(gigs.Rows)),
		logger.Int("skippedGigs", gigs.Skipped),
	)

	rows, err := assessment.Construct(freelancers, gigs)
	if err != nil {
		metrics.RecordAssessmentError()
		return model.RankedResult{}, err
	}

	scored := s.engine.ScoreAll(rows)
	metrics.AddGigsScored(len(scored))

	result, err := ranking.Rank(scored, topN)
	if err != nil {
		metrics.RecordAssessmentError()
		return model.RankedResult{}, err
	}

	metrics.RecordAssessment()
	metrics.SetResultSize(len(result.TopGigs))
	metrics.ObserveAssessmentDuration(time.Since(start))
	s.log.Debug(ctx, "assessment complete",
		logger.String("requestID", requestID),
		logger.Int("ranked", len(result.TopGigs)),
	)
	return result, nil
}

// AssessFreelancer loads a freelancer and a gig collection from the store
// and runs Assess over them. This is the full request flow behind the
// caller-facing assessment operation.
func (s *Service) AssessFreelancer(ctx context.Context, freelancerID int64, collection string, topN int) (model.RankedResult, error) {
	if freelancerID <= 0 {
		return model.RankedResult{}, fmt.Errorf("%w: %d", ErrInvalidFreelancerID, freelancerID)
	}

	rawFreelancer, err := s.loadFreelancer(ctx, freelancerID)
	if err != nil {
		return model.RankedResult{}, err
	}
	rawGigs, err := s.loadGigs(ctx, collection)
	if err != nil {
		return model.RankedResult{}, err
	}
	return s.Assess(ctx, rawFreelancer, rawGigs, topN)
}

func (s *Service) loadFreelancer(ctx context.Context, freelancerID int64) (model.RawRecord, error) {
	if s.store == nil {
		return nil, ErrNoStore
	}
	start := time.Now()
	raw, err := s.store.GetFreelancer(ctx, freelancerID)
	metrics.ObserveStoreQuery(time.Since(start))
	if err != nil {
		metrics.RecordStoreError()
		return nil, err
	}
	return raw, nil
}

func (s *Service) loadGigs(ctx context.Context, collection string) ([]model.RawRecord, error) {
	if s.store == nil {
		return nil, ErrNoStore
	}
	start := time.Now()
	raws, err := s.store.ListGigs(ctx, collection)
	metrics.ObserveStoreQuery(time.Since(start))
	if err != nil {
		metrics.RecordStoreError()
		return nil, err
	}
	return raws, nil
}

// clampTopN applies the configured cap without rejecting the request.
// Validation of non-positive values belongs to the ranker.
func (s *Service) clampTopN(ctx context.Context, topN int) int {
	if s.maxTopN > 0 && topN > s.maxTopN {
		s.log.Warn(ctx, "top_n clamped to configured maximum",
			logger.Int("requested", topN),
			logger.Int("max", s.maxTopN),
		)
		return s.maxTopN
	}
	return topN
}
