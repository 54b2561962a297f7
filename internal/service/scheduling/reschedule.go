package scheduling

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/myenglish-scheduler/internal/domain"
	"github.com/heartmarshall/myenglish-scheduler/internal/service/scheduling/deckparams"
	"github.com/heartmarshall/myenglish-scheduler/internal/service/scheduling/interval"
)

// Reschedule recomputes the due day of every selected review card with the
// damped interval model. Learning cards are only tagged. A deck parameter
// script that does not parse aborts the run before any write.
func (s *Service) Reschedule(ctx context.Context, input RescheduleInput, cp Checkpointer) (Result, error) {
	res := Result{Operation: OpReschedule}
	if err := input.Validate(); err != nil {
		return res, err
	}

	set, warnings, err := s.loadParams(ctx)
	res.Problems = append(res.Problems, warnings...)
	if err != nil {
		return res, paramsError(&res, err)
	}

	tree, err := s.deckTree(ctx)
	if err != nil {
		return res, err
	}
	scope, err := deckScope(tree, input.DeckID)
	if err != nil {
		return res, err
	}

	now := s.now()
	tl := s.timeline(now)

	q := domain.CardQuery{IDs: input.CardIDs, DeckIDs: scope, Queues: domain.ActiveQueues}
	if input.Recent {
		q.ReviewedSinceID = tl.WindowStart(s.cfg.DaysToReschedule) * 1000
	}
	cards, err := s.cards.Select(ctx, q)
	if err != nil {
		return res, fmt.Errorf("select cards: %w", err)
	}

	skip, skipWarnings := set.SkipDecks(tree.All())
	res.Problems = append(res.Problems, skipWarnings...)

	rc := &interval.RunContext{
		Today:       tl.Today,
		Now:         now,
		FreeDays:    s.cfg.FreeDays,
		LoadBalance: s.cfg.LoadBalance,
	}
	if rc.LoadBalance {
		if rc.Buckets, err = s.dayBuckets(ctx, tl); err != nil {
			return res, err
		}
	}

	s.log.InfoContext(ctx, "reschedule started",
		slog.Int("cards", len(cards)),
		slog.Bool("load_balance", rc.LoadBalance),
	)

	err = s.runBatch(ctx, OpReschedule, cards, s.cfg.RescheduleCheckpoint, cp, &res,
		func(ctx context.Context, card *domain.Card) ([]factorChange, error) {
			if _, ok := skip[card.HomeDeckID()]; ok {
				return nil, errSkipCard
			}
			if err := tag(card, domain.KeyInterval, domain.TagReschedule); err != nil {
				return nil, err
			}
			if card.Type != domain.CardTypeReview {
				return nil, nil
			}
			return nil, s.rescheduleCard(ctx, rc, tl, tree, set, card)
		})
	return res, err
}

func (s *Service) rescheduleCard(
	ctx context.Context,
	rc *interval.RunContext,
	tl domain.Timeline,
	tree *domain.DeckTree,
	set *deckparams.Set,
	card *domain.Card,
) error {
	history, err := s.reviews.ListByCardID(ctx, card.ID)
	if err != nil {
		return fmt.Errorf("list reviews: %w", err)
	}

	home := card.HomeDeckID()
	params := set.Resolve(tree.Name(home), tree.Options(home))
	lastReview := interval.LastReviewDay(tl, history, card)

	decision := s.sched.Next(rc, card, history, params, tl.Today-lastReview)

	before := card.TrueDue()
	interval.ApplyInterval(card, lastReview, decision.Interval)
	if rc.Buckets != nil {
		rc.Buckets.Move(before, card.TrueDue())
	}
	return nil
}

func (s *Service) dayBuckets(ctx context.Context, tl domain.Timeline) (*interval.DayBuckets, error) {
	due, err := s.cards.DueCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("due counts: %w", err)
	}
	learned, err := s.reviews.LearnedCounts(ctx, tl.DayCutoff)
	if err != nil {
		return nil, fmt.Errorf("learned counts: %w", err)
	}
	return interval.NewDayBuckets(tl.Today, due, learned), nil
}

// paramsError copies the messages of a script parse failure into the result.
func paramsError(res *Result, err error) error {
	var pe *deckparams.ParseError
	if errors.As(err, &pe) {
		res.Problems = append(res.Problems, pe.Messages()...)
	}
	return fmt.Errorf("deck parameters: %w", err)
}
