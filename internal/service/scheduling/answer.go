package scheduling

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/heartmarshall/myenglish-scheduler/internal/domain"
	"github.com/heartmarshall/myenglish-scheduler/internal/service/scheduling/ease"
)

// ApplyAnswer updates the factor of a card for an answer that is being
// recorded right now. The card is tagged as touched by a live review so a
// later sync can pick it up. In reviews-only mode cards outside the review
// queue keep their factor and the returned stats have Changed unset.
func (s *Service) ApplyAnswer(ctx context.Context, cardID int64, grade domain.Grade) (ease.Stats, error) {
	if cardID <= 0 {
		return ease.Stats{}, domain.NewValidationError("card_id", "must be positive")
	}
	if !grade.IsAnswer() {
		return ease.Stats{}, domain.NewValidationError("answer", "must be one of again, hard, good, easy")
	}

	tree, err := s.deckTree(ctx)
	if err != nil {
		return ease.Stats{}, err
	}

	var st ease.Stats
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		card, err := s.cards.GetByID(txCtx, cardID)
		if err != nil {
			return fmt.Errorf("get card: %w", err)
		}
		history, err := s.reviews.ListByCardID(txCtx, cardID)
		if err != nil {
			return fmt.Errorf("list reviews: %w", err)
		}

		h := s.easeHistory(history)
		in := ease.SuggestInput{
			Grades:       h.grades,
			Factors:      h.factors,
			NewAnswer:    &grade,
			StoredFactor: card.Factor,
		}
		start := tree.Options(card.HomeDeckID()).StartingEase
		st = s.calc.Stats(start, h.allGrades, in, card.Queue == domain.QueueReview)
		if !st.Changed {
			return nil
		}

		if err := tag(card, domain.KeyEase, domain.TagReview); err != nil {
			return err
		}
		_, rate := s.calc.Suggest(start, in, true)
		if err := tag(card, domain.KeySuccessRate, roundRate(rate)); err != nil {
			return err
		}
		card.Factor = st.NewFactor
		if err := s.cards.Update(txCtx, card); err != nil {
			return fmt.Errorf("update card: %w", err)
		}
		return nil
	})
	if err != nil {
		return ease.Stats{}, err
	}

	s.log.InfoContext(ctx, "answer applied",
		slog.Int64("card_id", cardID),
		slog.String("answer", grade.String()),
		slog.Bool("changed", st.Changed),
		slog.Int("factor", st.NewFactor),
	)
	return st, nil
}

// roundRate keeps four decimals of a success rate for the side-channel.
func roundRate(rate float64) float64 {
	return math.Round(rate*10000) / 10000
}
