// Package seed generates synthetic freelancer and gig records for local
// development and load experiments.
package seed

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/tugela/gigmatch/internal/adapters/repository"
	"github.com/tugela/gigmatch/internal/domain/model"
	"github.com/tugela/gigmatch/pkg/logger"
)

// Generation ranges.
const (
	defaultRandomSeed = 42
	maxHourlyRate     = 120.0
	minHourlyRate     = 10.0
	maxBudgetSpread   = 40.0
	maxRating         = 5.0
	maxSkillsPerRow   = 4
	unratedOdds       = 5 // 1 in unratedOdds freelancers has no rating yet
	remoteOdds        = 2
)

var (
	defaultSkills     = []string{"python", "sql", "go", "react", "figma", "copywriting", "devops", "excel"}
	defaultLocations  = []string{"NG", "KE", "ZA", "GH", "EG"}
	defaultCategories = []string{"engineering", "design", "writing", "data"}
)

// Generator produces raw records shaped like the external store's rows.
// A fixed seed keeps generated data reproducible across runs.
type Generator struct {
	rng        *rand.Rand
	skills     []string
	locations  []string
	categories []string
}

// Option applies a configuration option to the Generator.
type Option func(*Generator)

// WithSeed fixes the random source seed.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewSource(seed)) //nolint:gosec // reproducible synthetic data
	}
}

// WithSkills overrides the skill tag pool.
func WithSkills(skills []string) Option {
	return func(g *Generator) {
		if len(skills) > 0 {
			g.skills = skills
		}
	}
}

// NewGenerator creates a generator with the default pools and seed.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		rng:        rand.New(rand.NewSource(defaultRandomSeed)), //nolint:gosec // reproducible synthetic data
		skills:     defaultSkills,
		locations:  defaultLocations,
		categories: defaultCategories,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Freelancer produces one raw freelancer record.
func (g *Generator) Freelancer(id int64) model.RawRecord {
	rec := model.RawRecord{
		"freelancer_id": id,
		"name":          "freelancer-" + shortRef(),
		"skills":        g.pickSkills(),
		"hourly_rate":   minHourlyRate + g.rng.Float64()*(maxHourlyRate-minHourlyRate),
		"category":      g.categories[g.rng.Intn(len(g.categories))],
		"location":      g.locations[g.rng.Intn(len(g.locations))],
		"available":     true,
	}
	if g.rng.Intn(unratedOdds) != 0 {
		rec["rating"] = g.rng.Float64() * maxRating
	}
	return rec
}

// Gig produces one raw gig record.
func (g *Generator) Gig(id int64) model.RawRecord {
	budgetMin := minHourlyRate + g.rng.Float64()*(maxHourlyRate-minHourlyRate)
	rec := model.RawRecord{
		"gig_id":     id,
		"title":      "gig-" + shortRef(),
		"skills":     g.pickSkills(),
		"budget_min": budgetMin,
		"budget_max": budgetMin + g.rng.Float64()*maxBudgetSpread,
		"category":   g.categories[g.rng.Intn(len(g.categories))],
		"location":   g.locations[g.rng.Intn(len(g.locations))],
		"remote":     g.rng.Intn(remoteOdds) == 0,
		"status":     "open",
	}
	return rec
}

// Populate inserts the requested number of freelancers and gigs into the
// store, gigs going into the named collection. Ids are sequential from 1.
func (g *Generator) Populate(ctx context.Context, store repository.Store, collection string, freelancers, gigs int) error {
	log := logger.Get().Named("seed")

	for i := int64(1); i <= int64(freelancers); i++ {
		if err := store.InsertFreelancer(ctx, g.Freelancer(i)); err != nil {
			return fmt.Errorf("insert freelancer %d: %w", i, err)
		}
	}
	for i := int64(1); i <= int64(gigs); i++ {
		if err := store.InsertGig(ctx, collection, g.Gig(i)); err != nil {
			return fmt.Errorf("insert gig %d: %w", i, err)
		}
	}

	log.Info(ctx, "store populated",
		logger.Int("freelancers", freelancers),
		logger.Int("gigs", gigs),
		logger.String("collection", collection),
	)
	return nil
}

func (g *Generator) pickSkills() []string {
	n := 1 + g.rng.Intn(maxSkillsPerRow)
	picked := make([]string, 0, n)
	for _, idx := range g.rng.Perm(len(g.skills))[:n] {
		picked = append(picked, g.skills[idx])
	}
	return picked
}

// shortRef returns a short unique suffix for display names.
func shortRef() string {
	return uuid.NewString()[:8]
}
