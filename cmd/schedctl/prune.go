package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/myenglish-scheduler/internal/adapter/postgres/undo"
	"github.com/heartmarshall/myenglish-scheduler/internal/domain"
)

// newPruneCmd removes old undo entries. It is meant for a cron job, like
// the server it has no retention loop of its own.
func newPruneCmd(e *env) *cobra.Command {
	var olderThan time.Duration
	cmd := &cobra.Command{
		Use:     "prune",
		Short:   "Delete undo entries older than a retention period",
		GroupID: groupAdmin,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if olderThan <= 0 {
				return domain.NewValidationError("older_than", "must be positive")
			}
			ctx := cmd.Context()
			if _, err := e.service(ctx); err != nil {
				return err
			}

			threshold := time.Now().Add(-olderThan)
			deleted, err := undo.New(e.pool).HardDeleteOld(ctx, threshold)
			if err != nil {
				return err
			}
			e.log.Info("undo log pruned", slog.Int64("deleted", deleted), slog.Time("threshold", threshold))
			fmt.Fprintf(e.out, "%d undo entries deleted\n", deleted)
			return nil
		},
	}
	cmd.Flags().DurationVar(&olderThan, "older-than", 30*24*time.Hour, "Retention period")
	return cmd
}
