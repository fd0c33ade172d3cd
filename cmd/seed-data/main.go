// Command seed-data populates the record store with synthetic freelancers
// and gigs for local development.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/tugela/gigmatch/internal/adapters/repository"
	"github.com/tugela/gigmatch/internal/seed"
	"github.com/tugela/gigmatch/pkg/logger"
)

func main() {
	var (
		databaseURL = flag.String("db", os.Getenv("TUGELA_DATABASE_URL"), "PostgreSQL connection URL")
		collection  = flag.String("collection", "gigs", "gig collection to populate")
		freelancers = flag.Int("freelancers", 100, "number of freelancers to generate")
		gigs        = flag.Int("gigs", 1000, "number of gigs to generate")
		randomSeed  = flag.Int64("seed", 42, "random seed for reproducible data")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if *databaseURL == "" {
		logger.Get().Error(ctx, "no database URL; set -db or TUGELA_DATABASE_URL")
		os.Exit(1)
	}

	store, err := repository.NewPGStore(ctx, *databaseURL)
	if err != nil {
		logger.Get().Error(ctx, "failed to open record store", logger.Error(err))
		os.Exit(1)
	}
	defer store.Close()

	gen := seed.NewGenerator(seed.WithSeed(*randomSeed))
	if err := gen.Populate(ctx, store, *collection, *freelancers, *gigs); err != nil {
		logger.Get().Error(ctx, "seeding failed", logger.Error(err))
		os.Exit(1)
	}
}
