package scheduling

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/heartmarshall/myenglish-scheduler/internal/domain"
	"github.com/heartmarshall/myenglish-scheduler/internal/service/scheduling/interval"
)

// Postponed cards below this many elapsed days are delayed by a percentage
// of the elapsed time, the rest by a growing number of days.
const percentDelayLimit = 30

type shiftCandidate struct {
	card    domain.Card
	elapsed int
}

// ratio is the share of the interval that has already elapsed.
func (c shiftCandidate) ratio() float64 {
	return float64(c.elapsed) / float64(max(c.card.Interval, 1))
}

func cardsOf(cands []shiftCandidate) []domain.Card {
	out := make([]domain.Card, len(cands))
	for i, c := range cands {
		out[i] = c.card
	}
	return out
}

func countCandidates(cands []shiftCandidate, minInterval int, safe func(shiftCandidate) bool) CandidateCounts {
	counts := CandidateCounts{Total: len(cands)}
	for _, c := range cands {
		if safe(c) {
			counts.Safe++
		}
		if minInterval > 0 && c.card.Interval >= minInterval {
			counts.AtLeastInterval++
		}
	}
	return counts
}

// pick applies the count or interval choice of the input. cands must be
// sorted with the preferred cards first.
func pick(cands []shiftCandidate, input ShiftInput) []shiftCandidate {
	if input.MinInterval != nil {
		out := make([]shiftCandidate, 0, len(cands))
		for _, c := range cands {
			if c.card.Interval >= *input.MinInterval {
				out = append(out, c)
			}
		}
		return out
	}
	return cands[:min(*input.Count, len(cands))]
}

// ---------------------------------------------------------------------------
// Postpone
// ---------------------------------------------------------------------------

// postponeCandidates returns the due review cards this scheduler placed and
// has not postponed yet, longest interval first.
func (s *Service) postponeCandidates(ctx context.Context, deckID *int64, tl domain.Timeline) ([]shiftCandidate, *domain.DeckTree, error) {
	tree, err := s.deckTree(ctx)
	if err != nil {
		return nil, nil, err
	}
	scope, err := deckScope(tree, deckID)
	if err != nil {
		return nil, nil, err
	}

	today := tl.Today
	cards, err := s.cards.Select(ctx, domain.CardQuery{
		DeckIDs:       scope,
		Queues:        []domain.CardQueue{domain.QueueReview},
		DueOnOrBefore: &today,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("select cards: %w", err)
	}

	cands := make([]shiftCandidate, 0, len(cards))
	for _, c := range cards {
		v := c.CustomData.Get(domain.KeyInterval)
		if v == "" || v == domain.TagPostpone {
			continue
		}
		cands = append(cands, shiftCandidate{card: c, elapsed: today - (c.TrueDue() - c.Interval)})
	}
	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].card.Interval > cands[j].card.Interval
	})
	return cands, tree, nil
}

func (s *Service) postponeSafe(c shiftCandidate) bool {
	return c.ratio()-1 < s.cfg.PostponeSafeRatio
}

// PostponeCandidates counts the cards Postpone could pick.
func (s *Service) PostponeCandidates(ctx context.Context, deckID *int64, minInterval int) (CandidateCounts, error) {
	cands, _, err := s.postponeCandidates(ctx, deckID, s.timeline(s.now()))
	if err != nil {
		return CandidateCounts{}, err
	}
	return countCandidates(cands, minInterval, s.postponeSafe), nil
}

// Postpone pushes due cards further into the future. Short elapsed times
// are stretched by 5% to roughly 35% depending on the factor; from 30
// elapsed days on every further card gets one more day of delay than the
// one before.
func (s *Service) Postpone(ctx context.Context, input ShiftInput, cp Checkpointer) (Result, error) {
	res := Result{Operation: OpPostpone}
	if err := input.Validate(); err != nil {
		return res, err
	}

	tl := s.timeline(s.now())
	cands, tree, err := s.postponeCandidates(ctx, input.DeckID, tl)
	if err != nil {
		return res, err
	}
	cands = pick(cands, input)

	// Shortest intervals first so the day increments grow with the interval.
	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].card.Interval < cands[j].card.Interval
	})

	ivlIncr := 0
	err = s.runBatch(ctx, OpPostpone, cardsOf(cands), s.cfg.RescheduleCheckpoint, cp, &res,
		func(ctx context.Context, card *domain.Card) ([]factorChange, error) {
			if err := tag(card, domain.KeyInterval, domain.TagPostpone); err != nil {
				return nil, err
			}
			history, err := s.reviews.ListByCardID(ctx, card.ID)
			if err != nil {
				return nil, fmt.Errorf("list reviews: %w", err)
			}

			lastReview := interval.LastReviewDay(tl, history, card)
			elapsed := tl.Today - lastReview
			maxIvl := tree.Options(card.HomeDeckID()).MaxInterval

			var newIvl int
			if elapsed < percentDelayLimit {
				//nolint:gosec // deterministic per card, not cryptographic
				r := rand.New(rand.NewSource(card.ID + int64(card.Interval))).Float64()
				mult := math.Max(1.05,
					1+float64(card.Factor)/20000+0.5*r-math.Min(0.2, float64(card.Interval)/150))
				newIvl = min(max(1, int(math.Ceil(float64(elapsed)*mult))), maxIvl)
				ivlIncr = max(newIvl-elapsed, ivlIncr)
			} else {
				ivlIncr++
				newIvl = min(elapsed+ivlIncr, maxIvl)
			}

			interval.ApplyInterval(card, lastReview, newIvl)
			return nil, nil
		})
	return res, err
}

// ---------------------------------------------------------------------------
// Advance
// ---------------------------------------------------------------------------

// advanceCandidates returns the review cards that are not due yet, those
// closest to their due day first.
func (s *Service) advanceCandidates(ctx context.Context, deckID *int64, tl domain.Timeline) ([]shiftCandidate, error) {
	tree, err := s.deckTree(ctx)
	if err != nil {
		return nil, err
	}
	scope, err := deckScope(tree, deckID)
	if err != nil {
		return nil, err
	}

	today := tl.Today
	cards, err := s.cards.Select(ctx, domain.CardQuery{
		DeckIDs:  scope,
		Queues:   []domain.CardQueue{domain.QueueReview},
		DueAfter: &today,
	})
	if err != nil {
		return nil, fmt.Errorf("select cards: %w", err)
	}

	cands := make([]shiftCandidate, len(cards))
	for i, c := range cards {
		cands[i] = shiftCandidate{card: c, elapsed: today - (c.TrueDue() - c.Interval)}
	}
	sort.SliceStable(cands, func(i, j int) bool {
		ri, rj := cands[i].ratio(), cands[j].ratio()
		if ri != rj {
			return ri > rj
		}
		return cands[i].card.Interval > cands[j].card.Interval
	})
	return cands, nil
}

func (s *Service) advanceSafe(c shiftCandidate) bool {
	return 1-c.ratio() < s.cfg.AdvanceSafeRatio
}

// AdvanceCandidates counts the cards Advance could pick.
func (s *Service) AdvanceCandidates(ctx context.Context, deckID *int64, minInterval int) (CandidateCounts, error) {
	cands, err := s.advanceCandidates(ctx, deckID, s.timeline(s.now()))
	if err != nil {
		return CandidateCounts{}, err
	}
	return countCandidates(cands, minInterval, s.advanceSafe), nil
}

// Advance makes cards due today by shortening their interval to the days
// elapsed since the last review.
func (s *Service) Advance(ctx context.Context, input ShiftInput, cp Checkpointer) (Result, error) {
	res := Result{Operation: OpAdvance}
	if err := input.Validate(); err != nil {
		return res, err
	}

	tl := s.timeline(s.now())
	cands, err := s.advanceCandidates(ctx, input.DeckID, tl)
	if err != nil {
		return res, err
	}
	cands = pick(cands, input)

	err = s.runBatch(ctx, OpAdvance, cardsOf(cands), s.cfg.RescheduleCheckpoint, cp, &res,
		func(ctx context.Context, card *domain.Card) ([]factorChange, error) {
			if err := tag(card, domain.KeyInterval, domain.TagAdvance); err != nil {
				return nil, err
			}
			history, err := s.reviews.ListByCardID(ctx, card.ID)
			if err != nil {
				return nil, fmt.Errorf("list reviews: %w", err)
			}
			lastReview := interval.LastReviewDay(tl, history, card)
			interval.ApplyInterval(card, lastReview, tl.Today-lastReview)
			return nil, nil
		})
	return res, err
}
