package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/myenglish-scheduler/internal/service/scheduling"
)

// progress logs each checkpoint and asks the batch to stop once the
// command's context is cancelled.
type progress struct {
	ctx context.Context
	log *slog.Logger
}

func (p progress) Checkpoint(done int, label string) bool {
	p.log.Info("progress", slog.Int("done", done), slog.String("label", label))
	return p.ctx.Err() != nil
}

type operation func(ctx context.Context, svc *scheduling.Service, cp scheduling.Checkpointer) (scheduling.Result, error)

// runOperation runs op to completion. The service sees a context that is
// not cancelled by Ctrl-C, so a stop request ends the batch at a checkpoint
// instead of failing a query halfway.
func (e *env) runOperation(cmd *cobra.Command, op operation) error {
	ctx := cmd.Context()
	svc, err := e.service(ctx)
	if err != nil {
		return err
	}

	res, err := op(context.WithoutCancel(ctx), svc, progress{ctx: ctx, log: e.log})
	if err != nil {
		return err
	}
	printResult(e.out, res)
	return nil
}

func printResult(w io.Writer, res scheduling.Result) {
	fmt.Fprintln(w, res.Summary)
	for _, p := range res.Problems {
		fmt.Fprintf(w, "  ! %s\n", p)
	}
	if res.Skipped > 0 {
		fmt.Fprintf(w, "skipped: %d\n", res.Skipped)
	}
	if res.Cancelled {
		fmt.Fprintln(w, "stopped before the end; the cards above stay changed")
	}
	if res.UndoID != uuid.Nil {
		fmt.Fprintf(w, "undo with: schedctl undo %s\n", res.UndoID)
	}
}

// selection holds the flags shared by reschedule and adjust-ease.
type selection struct {
	deck    int64
	recent  bool
	cardIDs []int64
}

func (s *selection) bind(cmd *cobra.Command, what string) {
	cmd.Flags().Int64Var(&s.deck, "deck", 0, "Only "+what+" cards of this deck and its children")
	cmd.Flags().BoolVar(&s.recent, "recent", false, "Only "+what+" cards reviewed recently")
	cmd.Flags().Int64SliceVar(&s.cardIDs, "cards", nil, "Only "+what+" these card ids")
}

// optionalInt64 returns nil unless the flag was given.
func optionalInt64(cmd *cobra.Command, name string, v int64) *int64 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &v
}

func optionalInt(cmd *cobra.Command, name string, v int) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &v
}

func newRescheduleCmd(e *env) *cobra.Command {
	var sel selection
	cmd := &cobra.Command{
		Use:     "reschedule",
		Short:   "Recompute due dates from the current ease and review history",
		GroupID: groupOps,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input := scheduling.RescheduleInput{
				DeckID:  optionalInt64(cmd, "deck", sel.deck),
				Recent:  sel.recent,
				CardIDs: sel.cardIDs,
			}
			if err := input.Validate(); err != nil {
				return err
			}
			return e.runOperation(cmd, func(ctx context.Context, svc *scheduling.Service, cp scheduling.Checkpointer) (scheduling.Result, error) {
				return svc.Reschedule(ctx, input, cp)
			})
		},
	}
	sel.bind(cmd, "reschedule")
	return cmd
}

func newAdjustEaseCmd(e *env) *cobra.Command {
	var sel selection
	cmd := &cobra.Command{
		Use:     "adjust-ease",
		Short:   "Move card ease toward the target success rate",
		GroupID: groupOps,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input := scheduling.AdjustEaseInput{
				DeckID:  optionalInt64(cmd, "deck", sel.deck),
				Recent:  sel.recent,
				CardIDs: sel.cardIDs,
			}
			if err := input.Validate(); err != nil {
				return err
			}
			return e.runOperation(cmd, func(ctx context.Context, svc *scheduling.Service, cp scheduling.Checkpointer) (scheduling.Result, error) {
				return svc.AdjustEase(ctx, input, cp)
			})
		},
	}
	sel.bind(cmd, "adjust")
	return cmd
}

func newShiftCmd(e *env, op scheduling.Operation) *cobra.Command {
	var (
		deck        int64
		count       int
		minInterval int
		dryRun      bool
	)
	verb, short := "postpone", "Push due review cards into the future"
	if op == scheduling.OpAdvance {
		verb, short = "advance", "Bring review cards forward"
	}

	cmd := &cobra.Command{
		Use:     verb,
		Short:   short,
		GroupID: groupOps,
		Args:    cobra.NoArgs,
		Example: fmt.Sprintf("  schedctl %[1]s --count=100\n  schedctl %[1]s --min-interval=30 --deck=12\n  schedctl %[1]s --dry-run", verb),
		RunE: func(cmd *cobra.Command, _ []string) error {
			deckID := optionalInt64(cmd, "deck", deck)
			if dryRun {
				return e.printCandidates(cmd, op, deckID, minInterval)
			}

			input := scheduling.ShiftInput{
				DeckID:      deckID,
				Count:       optionalInt(cmd, "count", count),
				MinInterval: optionalInt(cmd, "min-interval", minInterval),
			}
			if err := input.Validate(); err != nil {
				return err
			}
			return e.runOperation(cmd, func(ctx context.Context, svc *scheduling.Service, cp scheduling.Checkpointer) (scheduling.Result, error) {
				if op == scheduling.OpAdvance {
					return svc.Advance(ctx, input, cp)
				}
				return svc.Postpone(ctx, input, cp)
			})
		},
	}
	cmd.Flags().Int64Var(&deck, "deck", 0, "Only "+verb+" cards of this deck and its children")
	cmd.Flags().IntVar(&count, "count", 0, "Number of cards to "+verb)
	cmd.Flags().IntVar(&minInterval, "min-interval", 0, verb+" every card whose interval is at least this many days")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Only print how many cards could be "+verb+"d")
	cmd.MarkFlagsMutuallyExclusive("count", "min-interval")
	return cmd
}

func (e *env) printCandidates(cmd *cobra.Command, op scheduling.Operation, deckID *int64, minInterval int) error {
	ctx := cmd.Context()
	svc, err := e.service(ctx)
	if err != nil {
		return err
	}

	var counts scheduling.CandidateCounts
	if op == scheduling.OpAdvance {
		counts, err = svc.AdvanceCandidates(ctx, deckID, minInterval)
	} else {
		counts, err = svc.PostponeCandidates(ctx, deckID, minInterval)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(e.out, "candidates: %d\nsafe:       %d\n", counts.Total, counts.Safe)
	if minInterval > 0 {
		fmt.Fprintf(e.out, "interval >= %d days: %d\n", minInterval, counts.AtLeastInterval)
	}
	return nil
}

func newDisperseCmd(e *env) *cobra.Command {
	var (
		deck    int64
		noteIDs []int64
	)
	cmd := &cobra.Command{
		Use:     "disperse",
		Short:   "Spread the due dates of sibling cards apart",
		GroupID: groupOps,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input := scheduling.DisperseInput{
				DeckID:  optionalInt64(cmd, "deck", deck),
				NoteIDs: noteIDs,
			}
			if err := input.Validate(); err != nil {
				return err
			}
			return e.runOperation(cmd, func(ctx context.Context, svc *scheduling.Service, cp scheduling.Checkpointer) (scheduling.Result, error) {
				return svc.DisperseSiblings(ctx, input, cp)
			})
		},
	}
	cmd.Flags().Int64Var(&deck, "deck", 0, "Only disperse siblings in this deck and its children")
	cmd.Flags().Int64SliceVar(&noteIDs, "notes", nil, "Only disperse the siblings of these notes")
	return cmd
}
