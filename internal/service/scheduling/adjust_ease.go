package scheduling

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/myenglish-scheduler/internal/domain"
	"github.com/heartmarshall/myenglish-scheduler/internal/service/scheduling/ease"
)

// easeHistory splits a card's log into the inputs of an ease computation.
type easeHistory struct {
	attempts []domain.ReviewEvent
	// grades are the attempt grades the calculator sees; in reviews-only
	// mode just the review answers.
	grades    []domain.Grade
	allGrades []domain.Grade
	factors   []int
}

func (s *Service) easeHistory(history []domain.ReviewEvent) easeHistory {
	var h easeHistory
	for _, ev := range history {
		if !ev.Kind.IsAttempt() {
			continue
		}
		h.attempts = append(h.attempts, ev)
		h.allGrades = append(h.allGrades, ev.Grade)
		h.factors = append(h.factors, ev.Factor)
		if !s.cfg.Ease.ReviewsOnly || ev.Kind == domain.ReviewKindReview {
			h.grades = append(h.grades, ev.Grade)
		}
	}
	return h
}

// AdjustEase recomputes the ease factor of the selected cards as if the
// calculator had graded every past answer, rewriting the factors logged
// with those answers as well. When CardIDs is set, cards whose factor was
// not last written by a live review are left alone.
func (s *Service) AdjustEase(ctx context.Context, input AdjustEaseInput, cp Checkpointer) (Result, error) {
	res := Result{Operation: OpAdjustEase}
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
	q := domain.CardQuery{
		IDs:     input.CardIDs,
		DeckIDs: scope,
		Queues:  domain.ActiveQueues,
		Types:   []domain.CardType{domain.CardTypeReview, domain.CardTypeRelearning},
	}
	if input.Recent {
		q.ReviewedSinceID = tl.WindowStart(s.cfg.DaysToReschedule) * 1000
	}
	cards, err := s.cards.Select(ctx, q)
	if err != nil {
		return res, fmt.Errorf("select cards: %w", err)
	}

	onlyLive := len(input.CardIDs) > 0
	s.log.InfoContext(ctx, "adjust ease started",
		slog.Int("cards", len(cards)),
		slog.Bool("only_live", onlyLive),
	)

	err = s.runBatch(ctx, OpAdjustEase, cards, s.cfg.EaseCheckpoint, cp, &res,
		func(ctx context.Context, card *domain.Card) ([]factorChange, error) {
			if onlyLive && card.CustomData.Get(domain.KeyEase) != domain.TagReview {
				return nil, errSkipCard
			}
			return s.adjustCard(ctx, tree, card)
		})
	return res, err
}

func (s *Service) adjustCard(ctx context.Context, tree *domain.DeckTree, card *domain.Card) ([]factorChange, error) {
	history, err := s.reviews.ListByCardID(ctx, card.ID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	h := s.easeHistory(history)
	if len(h.attempts) == 0 {
		return nil, errSkipCard
	}

	start := tree.Options(card.HomeDeckID()).StartingEase
	replayed := s.calc.Replay(start, h.allGrades, true)

	factor, rate := s.calc.Suggest(start, ease.SuggestInput{
		Grades:  h.grades,
		Factors: replayed,
	}, true)

	if err := tag(card, domain.KeyEase, domain.TagAdjusted); err != nil {
		return nil, err
	}
	if err := tag(card, domain.KeySuccessRate, roundRate(rate)); err != nil {
		return nil, err
	}
	card.Factor = factor

	var changes []factorChange
	for i, ev := range h.attempts {
		if ev.Factor != replayed[i] {
			changes = append(changes, factorChange{reviewID: ev.ID, old: ev.Factor, new: replayed[i]})
		}
	}
	return changes, nil
}

// CardEaseStats explains how the factor of one card is derived. newAnswer
// previews the effect of an answer that has not been logged yet.
func (s *Service) CardEaseStats(ctx context.Context, cardID int64, newAnswer *domain.Grade) (ease.Stats, error) {
	if cardID <= 0 {
		return ease.Stats{}, domain.NewValidationError("card_id", "must be positive")
	}
	if newAnswer != nil && !newAnswer.IsAnswer() {
		return ease.Stats{}, domain.NewValidationError("answer", "must be one of again, hard, good, easy")
	}

	card, err := s.cards.GetByID(ctx, cardID)
	if err != nil {
		return ease.Stats{}, fmt.Errorf("get card: %w", err)
	}
	history, err := s.reviews.ListByCardID(ctx, cardID)
	if err != nil {
		return ease.Stats{}, fmt.Errorf("list reviews: %w", err)
	}
	tree, err := s.deckTree(ctx)
	if err != nil {
		return ease.Stats{}, err
	}

	h := s.easeHistory(history)
	start := tree.Options(card.HomeDeckID()).StartingEase
	in := ease.SuggestInput{
		Grades:       h.grades,
		Factors:      h.factors,
		NewAnswer:    newAnswer,
		StoredFactor: card.Factor,
	}
	return s.calc.Stats(start, h.allGrades, in, card.Queue == domain.QueueReview), nil
}
