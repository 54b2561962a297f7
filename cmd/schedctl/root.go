package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/myenglish-scheduler/internal/adapter/postgres"
	"github.com/heartmarshall/myenglish-scheduler/internal/app"
	"github.com/heartmarshall/myenglish-scheduler/internal/config"
	"github.com/heartmarshall/myenglish-scheduler/internal/service/scheduling"
)

// env is filled by the root command before any subcommand runs.
type env struct {
	cfg *config.Config
	log *slog.Logger
	out io.Writer

	pool *pgxpool.Pool
}

const (
	groupOps   = "ops"
	groupAdmin = "admin"
)

func newRootCmd() *cobra.Command {
	e := &env{}
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:           "schedctl",
		Short:         "Run bulk scheduling operations against the collection",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Annotations["config"] == "none" {
				return nil
			}
			if configPath == "" {
				configPath = os.Getenv("CONFIG_PATH")
			}
			cfg, err := config.LoadFrom(configPath)
			if err != nil {
				return err
			}
			if verbose {
				cfg.Log.Level = "debug"
			}
			e.cfg = cfg
			e.log = app.NewLogger(cfg.Log, os.Stderr)
			e.out = cmd.OutOrStdout()
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if e.pool != nil {
				e.pool.Close()
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log at debug level")
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default $CONFIG_PATH, then ./config.yaml)")

	root.AddGroup(
		&cobra.Group{ID: groupOps, Title: "Scheduling operations:"},
		&cobra.Group{ID: groupAdmin, Title: "Administration:"},
	)

	root.AddCommand(
		newRescheduleCmd(e),
		newShiftCmd(e, scheduling.OpPostpone),
		newShiftCmd(e, scheduling.OpAdvance),
		newDisperseCmd(e),
		newAdjustEaseCmd(e),
		newAnswerCmd(e),
		newUndoCmd(e),
		newPruneCmd(e),
		newEaseCmd(e),
		newParamsCmd(e),
		newMigrateCmd(e),
		newTokenCmd(e),
		newVersionCmd(),
	)
	return root
}

// service connects to the database on first use.
func (e *env) service(ctx context.Context) (*scheduling.Service, error) {
	if e.pool == nil {
		pool, err := postgres.NewPool(ctx, e.cfg.Database, e.log)
		if err != nil {
			return nil, fmt.Errorf("connect database: %w", err)
		}
		e.pool = pool
	}
	return app.NewSchedulingService(e.pool, e.cfg, e.log), nil
}
