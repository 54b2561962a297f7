package scheduling

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"

	"github.com/heartmarshall/myenglish-scheduler/internal/domain"
	"github.com/heartmarshall/myenglish-scheduler/internal/service/scheduling/interval"
)

// DisperseSiblings spreads the review cards of each note apart so siblings
// are not shown on the same or neighbouring days. Every card stays inside
// its own fuzz window and never moves to today or earlier. Cards with short
// intervals keep their day.
func (s *Service) DisperseSiblings(ctx context.Context, input DisperseInput, cp Checkpointer) (Result, error) {
	res := Result{Operation: OpDisperse}
	if err := input.Validate(); err != nil {
		return res, err
	}

	tree, err := s.deckTree(ctx)
	if err != nil {
		return res, err
	}
	scope, err := deckScope(tree, input.DeckID)
	if err != nil {
		return res, err
	}

	tl := s.timeline(s.now())
	cards, err := s.cards.Select(ctx, domain.CardQuery{
		NoteIDs: input.NoteIDs,
		DeckIDs: scope,
		Queues:  []domain.CardQueue{domain.QueueReview},
	})
	if err != nil {
		return res, fmt.Errorf("select cards: %w", err)
	}

	plan, err := s.plan(ctx, tl, siblingGroups(cards))
	if err != nil {
		return res, err
	}

	moved := make([]domain.Card, 0, len(plan))
	for _, c := range cards {
		if _, ok := plan[c.ID]; ok {
			moved = append(moved, c)
		}
	}

	s.log.InfoContext(ctx, "disperse started",
		slog.Int("cards", len(cards)),
		slog.Int("moved", len(moved)),
	)

	err = s.runBatch(ctx, OpDisperse, moved, s.cfg.RescheduleCheckpoint, cp, &res,
		func(_ context.Context, card *domain.Card) ([]factorChange, error) {
			if err := tag(card, domain.KeyInterval, domain.TagDisperse); err != nil {
				return nil, err
			}
			card.SetTrueDue(plan[card.ID])
			return nil, nil
		})
	return res, err
}

// siblingGroups groups cards by note, keeping only notes with at least two
// cards. Groups are ordered by note id; inside a group the card due first
// comes first.
func siblingGroups(cards []domain.Card) [][]domain.Card {
	byNote := make(map[int64][]domain.Card)
	for _, c := range cards {
		byNote[c.NoteID] = append(byNote[c.NoteID], c)
	}

	notes := make([]int64, 0, len(byNote))
	for id, group := range byNote {
		if len(group) > 1 {
			notes = append(notes, id)
		}
	}
	sort.Slice(notes, func(i, j int) bool { return notes[i] < notes[j] })

	groups := make([][]domain.Card, len(notes))
	for i, id := range notes {
		g := byNote[id]
		sort.Slice(g, func(a, b int) bool {
			if g[a].TrueDue() != g[b].TrueDue() {
				return g[a].TrueDue() < g[b].TrueDue()
			}
			return g[a].ID < g[b].ID
		})
		groups[i] = g
	}
	return groups
}

// plan returns the new due day of every card that has to move.
func (s *Service) plan(ctx context.Context, tl domain.Timeline, groups [][]domain.Card) (map[int64]int, error) {
	plan := make(map[int64]int)
	for _, group := range groups {
		placed := make([]int, 0, len(group))
		for i := range group {
			card := &group[i]
			due := card.TrueDue()

			if !interval.Fuzzable(card.Interval) {
				placed = append(placed, due)
				continue
			}

			history, err := s.reviews.ListByCardID(ctx, card.ID)
			if err != nil {
				return nil, fmt.Errorf("list reviews of card %d: %w", card.ID, err)
			}
			lastReview := interval.LastReviewDay(tl, history, card)
			minIvl, maxIvl := interval.FuzzRange(card.Interval, tl.Today-lastReview)

			days := make([]int, 0, maxIvl-minIvl+1)
			for c := minIvl; c <= maxIvl; c++ {
				if day := lastReview + c; day > tl.Today {
					days = append(days, day)
				}
			}
			if len(days) == 0 {
				placed = append(placed, due)
				continue
			}

			day := spreadDay(days, placed, due)
			placed = append(placed, day)
			if day != due {
				plan[card.ID] = day
			}
		}
	}
	return plan, nil
}

// spreadDay picks the candidate day farthest from every placed sibling.
// Ties go to the day closest to current, then to the earlier day.
func spreadDay(days, placed []int, current int) int {
	best, bestGap, bestDist := days[0], -1, math.MaxInt
	for _, d := range days {
		gap := math.MaxInt
		for _, p := range placed {
			gap = min(gap, absInt(d-p))
		}
		dist := absInt(d - current)
		if gap > bestGap || (gap == bestGap && dist < bestDist) {
			best, bestGap, bestDist = d, gap, dist
		}
	}
	return best
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
