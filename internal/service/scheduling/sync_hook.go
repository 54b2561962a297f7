package scheduling

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/myenglish-scheduler/internal/domain"
)

// SyncTracker remembers the review log before a sync with another device so
// the cards reviewed elsewhere can be post-processed afterwards.
type SyncTracker struct {
	svc *Service

	mu        sync.Mutex
	snapshots map[uuid.UUID][]int64
}

// NewSyncTracker creates a SyncTracker on top of the scheduling service.
func NewSyncTracker(svc *Service) *SyncTracker {
	return &SyncTracker{svc: svc, snapshots: make(map[uuid.UUID][]int64)}
}

// SyncReport is the outcome of the operations run after a sync.
type SyncReport struct {
	CardIDs []int64
	Results []Result
	Summary string
}

// Begin records the ids of every logged review and returns a handle for Finish.
func (t *SyncTracker) Begin(ctx context.Context) (uuid.UUID, error) {
	ids, err := t.svc.reviews.ListIDs(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("list review ids: %w", err)
	}

	id := uuid.New()
	t.mu.Lock()
	t.snapshots[id] = ids
	t.mu.Unlock()

	t.svc.log.InfoContext(ctx, "sync started", slog.String("sync_id", id.String()), slog.Int("reviews", len(ids)))
	return id, nil
}

// Finish finds the cards with study attempts that arrived since Begin and
// runs the enabled follow-up operations over them: ease adjustment,
// rescheduling and sibling dispersal, in that order.
func (t *SyncTracker) Finish(ctx context.Context, id uuid.UUID, cp Checkpointer) (SyncReport, error) {
	t.mu.Lock()
	known, ok := t.snapshots[id]
	delete(t.snapshots, id)
	t.mu.Unlock()
	if !ok {
		return SyncReport{}, fmt.Errorf("sync %s: %w", id, domain.ErrNotFound)
	}

	var report SyncReport
	ids, err := t.svc.reviews.AttemptCardIDsExcept(ctx, known)
	if err != nil {
		return report, fmt.Errorf("find synced cards: %w", err)
	}
	report.CardIDs = ids
	if len(ids) == 0 {
		report.Summary = "No new reviews"
		return report, nil
	}

	cfg := t.svc.cfg
	if cfg.AutoAdjustEaseAfterSync {
		res, err := t.svc.AdjustEase(ctx, AdjustEaseInput{CardIDs: ids}, cp)
		report.add(res)
		if err != nil {
			return report, err
		}
	}
	if cfg.AutoRescheduleAfterSync {
		res, err := t.svc.Reschedule(ctx, RescheduleInput{CardIDs: ids}, cp)
		report.add(res)
		if err != nil {
			return report, err
		}
	}
	if cfg.AutoDisperseAfterSync {
		notes, err := t.noteIDs(ctx, ids)
		if err != nil {
			return report, err
		}
		if len(notes) > 0 {
			res, err := t.svc.DisperseSiblings(ctx, DisperseInput{NoteIDs: notes}, cp)
			report.add(res)
			if err != nil {
				return report, err
			}
		}
	}

	t.svc.log.InfoContext(ctx, "sync finished",
		slog.String("sync_id", id.String()),
		slog.Int("cards", len(ids)),
		slog.String("summary", report.Summary),
	)
	return report, nil
}

func (t *SyncTracker) noteIDs(ctx context.Context, cardIDs []int64) ([]int64, error) {
	cards, err := t.svc.cards.Select(ctx, domain.CardQuery{IDs: cardIDs})
	if err != nil {
		return nil, fmt.Errorf("select synced cards: %w", err)
	}
	seen := make(map[int64]struct{}, len(cards))
	notes := make([]int64, 0, len(cards))
	for _, c := range cards {
		if _, ok := seen[c.NoteID]; !ok {
			seen[c.NoteID] = struct{}{}
			notes = append(notes, c.NoteID)
		}
	}
	sort.Slice(notes, func(i, j int) bool { return notes[i] < notes[j] })
	return notes, nil
}

func (r *SyncReport) add(res Result) {
	r.Results = append(r.Results, res)
	if res.Summary == "" {
		return
	}
	if r.Summary == "" {
		r.Summary = res.Summary
		return
	}
	r.Summary = strings.Join([]string{r.Summary, res.Summary}, "; ")
}
