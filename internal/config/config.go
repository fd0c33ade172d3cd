// Package config defines engine configuration and loading.
package config

import (
	"github.com/tugela/gigmatch/internal/domain/scoring"
)

// Default configuration values.
const (
	defaultGigCollection = "gigs"
	defaultMaxTopN       = 100
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// DatabaseURL is the PostgreSQL connection string for the record store.
	DatabaseURL string `koanf:"database_url"`

	// GigCollection names the default gig collection to assess against.
	GigCollection string `koanf:"gig_collection" validate:"required"`

	// MaxTopN caps the top-n a caller may request.
	MaxTopN int `koanf:"max_top_n" validate:"gte=1"`

	// Scoring weights. Defaults preserve the fixed v1 combination.
	SkillWeight    float64 `koanf:"skill_weight" validate:"gte=0"`
	BudgetWeight   float64 `koanf:"budget_weight" validate:"gte=0"`
	LocationWeight float64 `koanf:"location_weight" validate:"gte=0"`
	RatingWeight   float64 `koanf:"rating_weight" validate:"gte=0"`
	CategoryWeight float64 `koanf:"category_weight" validate:"gte=0"`
}

// New creates a Config with defaults.
func New() *Config {
	w := scoring.DefaultWeights()
	return &Config{
		LogLevel:       "info",
		GigCollection:  defaultGigCollection,
		MaxTopN:        defaultMaxTopN,
		SkillWeight:    w.Skill,
		BudgetWeight:   w.Budget,
		LocationWeight: w.Location,
		RatingWeight:   w.Rating,
		CategoryWeight: w.Category,
	}
}

// Weights folds the configured coefficients into a scoring weight set.
func (c *Config) Weights() scoring.Weights {
	return scoring.Weights{
		Skill:    c.SkillWeight,
		Budget:   c.BudgetWeight,
		Location: c.LocationWeight,
		Rating:   c.RatingWeight,
		Category: c.CategoryWeight,
	}
}
