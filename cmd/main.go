// Command gigmatch runs assessment pipeline operations against the record
// store from the command line.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/tugela/gigmatch/internal/adapters/repository"
	"github.com/tugela/gigmatch/internal/app"
	"github.com/tugela/gigmatch/internal/config"
	"github.com/tugela/gigmatch/pkg/logger"
)

var version = "dev"

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "gigmatch",
		Short:         "Freelancer-to-gig assessment and ranking engine",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newAssessCmd(), newGigsCmd(), newVersionCmd())
	return root
}

func newAssessCmd() *cobra.Command {
	var (
		freelancerID int64
		collection   string
		topN         string
	)
	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Score and rank a gig collection for one freelancer",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg, svc, store, err := bootstrap(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if collection == "" {
				collection = cfg.GigCollection
			}
			n, err := app.ParseTopN(topN)
			if err != nil {
				return err
			}

			result, err := svc.AssessFreelancer(ctx, freelancerID, collection, n)
			if err != nil {
				return err
			}
			return printJSON(cmd, result)
		},
	}
	cmd.Flags().Int64Var(&freelancerID, "freelancer-id", 0, "freelancer id to assess")
	cmd.Flags().StringVar(&collection, "collection", "", "gig collection to assess against (default from config)")
	cmd.Flags().StringVar(&topN, "top-n", "10", "maximum number of ranked gigs to return")
	_ = cmd.MarkFlagRequired("freelancer-id")
	return cmd
}

func newGigsCmd() *cobra.Command {
	var collection string
	cmd := &cobra.Command{
		Use:   "gigs",
		Short: "List the normalized gigs of a collection",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg, svc, store, err := bootstrap(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if collection == "" {
				collection = cfg.GigCollection
			}
			gigs, err := svc.FetchGigs(ctx, collection)
			if err != nil {
				return err
			}
			return printJSON(cmd, map[string]any{"gig_data": gigs})
		},
	}
	cmd.Flags().StringVar(&collection, "collection", "", "gig collection to list (default from config)")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the gigmatch version",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Println(version)
		},
	}
}

// bootstrap wires logging, configuration, the record store, and the
// assessment service for a command invocation.
func bootstrap(ctx context.Context) (*config.Config, *app.Service, repository.Store, error) {
	if err := logger.Init(); err != nil {
		return nil, nil, nil, err
	}

	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		logger.Get().Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel))
		_ = logger.SetLevelString("info")
	}
	if cfg.DatabaseURL == "" {
		return nil, nil, nil, fmt.Errorf("%w: database_url is required", config.ErrInvalidConfig)
	}

	store, err := repository.NewPGStore(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, nil, err
	}

	svc := app.New(
		app.WithStore(store),
		app.WithWeights(cfg.Weights()),
		app.WithLogger(logger.Named("app")),
		app.WithMaxTopN(cfg.MaxTopN),
	)
	return cfg, svc, store, nil
}

func printJSON(cmd *cobra.Command, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	cmd.Println(string(out))
	return nil
}
