// Package scoring computes the fit score for assessment rows as a weighted
// linear combination of their comparison features.
package scoring

import (
	"github.com/tugela/gigmatch/internal/domain/model"
)

// Default weights. Skill overlap and budget compatibility dominate because
// they are hard filters on viability; rating and category are soft signals.
const (
	defaultSkillWeight    = 3.0
	defaultBudgetWeight   = 5.0
	defaultLocationWeight = 2.0
	defaultRatingWeight   = 1.0
	defaultCategoryWeight = 1.0
)

// Weights holds the scoring coefficients for each comparison feature.
type Weights struct {
	Skill    float64
	Budget   float64
	Location float64
	Rating   float64
	Category float64
}

// DefaultWeights returns the fixed v1 weight set.
func DefaultWeights() Weights {
	return Weights{
		Skill:    defaultSkillWeight,
		Budget:   defaultBudgetWeight,
		Location: defaultLocationWeight,
		Rating:   defaultRatingWeight,
		Category: defaultCategoryWeight,
	}
}

// valid reports whether every coefficient is non-negative.
func (w Weights) valid() bool {
	return w.Skill >= 0 && w.Budget >= 0 && w.Location >= 0 && w.Rating >= 0 && w.Category >= 0
}

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithWeights overrides the default weight set. Sets carrying a negative
// coefficient are ignored.
func WithWeights(w Weights) Option {
	return func(e *Engine) {
		if w.valid() {
			e.weights = w
		}
	}
}

// Engine scores assessment rows. Scoring is a pure function of the row and
// the configured weights; the engine holds no per-request state and is safe
// for concurrent use.
type Engine struct {
	weights Weights
}

// NewEngine creates a scoring engine with default weights.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{weights: DefaultWeights()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Weights returns the engine's active weight set.
func (e *Engine) Weights() Weights {
	return e.weights
}

// Score computes the fit score for one (freelancer, gig) row. Rows with
// zero skill overlap still receive a score; soft ranking avoids empty
// result sets when no gig matches skills exactly.
func (e *Engine) Score(row model.AssessmentRow) float64 {
	w := e.weights
	score := w.Skill*float64(row.SkillOverlap) +
		w.Budget*float64(row.BudgetFit) +
		w.Location*float64(row.LocationMatch) +
		w.Rating*row.Freelancer.RatingOrZero()
	if row.CategoryMatch {
		score += w.Category
	}
	return score
}

// ScoreAll produces one ScoredGig per assessment row, carrying the gig's
// display fields alongside the computed score.
func (e *Engine) ScoreAll(rows []model.AssessmentRow) []model.ScoredGig {
	scored := make([]model.ScoredGig, 0, len(rows))
	for _, row := range rows {
		scored = append(scored, model.ScoredGig{
			GigID:     row.Gig.GigID,
			Title:     row.Gig.Title,
			Score:     e.Score(row),
			Category:  row.Gig.Category,
			Location:  row.Gig.Location,
			Remote:    row.Gig.Remote,
			BudgetMin: row.Gig.BudgetMin,
			BudgetMax: row.Gig.BudgetMax,
		})
	}
	return scored
}
