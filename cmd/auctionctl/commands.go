package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/GlebRadaev/auctionhouse/internal/app"
	"github.com/GlebRadaev/auctionhouse/internal/config"
	"github.com/GlebRadaev/auctionhouse/pkg/logger"
)

// maxDrainRounds bounds how many job batches sweep runs after enqueueing recoveries.
const maxDrainRounds = 100

type options struct {
	database string
	logLvl   string
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cfg := config.Load()

	root := &cobra.Command{
		Use:           "auctionctl",
		Short:         "Maintenance commands for the auction house",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&opts.database, "database", "d", cfg.Database, "database DSN")
	root.PersistentFlags().StringVarP(&opts.logLvl, "log-level", "l", cfg.LogLvl, "log level")

	open := func(ctx context.Context) (*app.Application, error) {
		cfg.Database = opts.database
		cfg.LogLvl = opts.logLvl
		if err := logger.InitLogger(cfg); err != nil {
			return nil, fmt.Errorf("can't init logger: %w", err)
		}
		return app.Open(ctx, cfg)
	}

	root.AddCommand(
		newMigrateCmd(open),
		newSweepCmd(open),
		newSettleCmd(open),
	)
	return root
}

type opener func(ctx context.Context) (*app.Application, error)

func newMigrateCmd(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()
			log.Info().Int64("version", a.SchemaVersion()).Msg("migrations applied")
			return nil
		},
	}
}

func newSweepCmd(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Settle every active auction whose deadline has passed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			a, err := open(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			found, err := a.Services().SettlementService.Sweep(ctx)
			if err != nil {
				log.Warn().Err(err).Msg("some recoveries were not scheduled")
			}
			log.Info().Int("auctions", found).Msg("recovery jobs scheduled")

			ran := 0
			for i := 0; i < maxDrainRounds; i++ {
				n, err := a.Runner().Poll(ctx)
				if err != nil {
					return err
				}
				if n == 0 {
					break
				}
				ran += n
			}
			log.Info().Int("jobs", ran).Msg("due jobs executed")
			return nil
		},
	}
}

func newSettleCmd(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "settle <auction-id>",
		Short: "Run settlement for one auction now",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil || id <= 0 {
				return fmt.Errorf("invalid auction id %q", args[0])
			}

			ctx := cmd.Context()
			a, err := open(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			outcome, err := a.Services().SettlementService.Settle(ctx, id)
			if err != nil {
				return err
			}
			log.Info().Int("auctionID", id).Str("outcome", string(outcome)).Msg("settlement finished")
			return nil
		},
	}
}
