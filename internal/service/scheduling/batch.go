package scheduling

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/myenglish-scheduler/internal/domain"
	"github.com/heartmarshall/myenglish-scheduler/internal/metrics"
)

// errSkipCard tells runBatch to leave a card untouched.
var errSkipCard = errors.New("skip card")

// errUnreadableCustomData marks a card whose side-channel is not valid JSON
// and therefore cannot be tagged.
var errUnreadableCustomData = errors.New("unreadable custom data")

// factorChange rewrites the factor logged with one review.
type factorChange struct {
	reviewID int64
	old, new int
}

// cardStep mutates one card in memory. It may return review factors to
// rewrite together with the card.
type cardStep func(ctx context.Context, card *domain.Card) ([]factorChange, error)

// runBatch applies step to every card and writes each card back in its own
// transaction together with its undo record. A card whose side-channel
// overflows or cannot be parsed is reported in res.Problems and skipped; the
// batch only fails for that reason when no card at all could be written. The checkpointer is
// polled every `every` written cards and may stop the batch early.
func (s *Service) runBatch(
	ctx context.Context,
	op Operation,
	cards []domain.Card,
	every int,
	cp Checkpointer,
	res *Result,
	step cardStep,
) error {
	cp = orNoCheckpoint(cp)
	res.Operation = op

	var (
		failed  int
		lastErr error
	)
	for i := range cards {
		card := &cards[i]
		before := card.Snapshot()

		changes, err := step(ctx, card)
		switch {
		case errors.Is(err, errSkipCard):
			res.Skipped++
			continue
		case errors.Is(err, domain.ErrCustomDataOverflow), errors.Is(err, errUnreadableCustomData):
			lastErr = err
			res.Problems = append(res.Problems, fmt.Sprintf("card %d: %v", card.ID, err))
			failed++
			continue
		case err != nil:
			res.Summary = op.progressLabel(res.Processed)
			return fmt.Errorf("%s card %d: %w", op, card.ID, err)
		}

		if res.UndoID == uuid.Nil {
			id, err := s.undo.Begin(ctx, op.undoLabel())
			if err != nil {
				return fmt.Errorf("begin undo entry: %w", err)
			}
			res.UndoID = id
		}

		if err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
			for _, ch := range changes {
				snap := domain.ReviewFactorSnapshot{ReviewID: ch.reviewID, Factor: ch.old}
				if err := s.undo.RecordReviewFactor(txCtx, res.UndoID, snap); err != nil {
					return fmt.Errorf("record review factor: %w", err)
				}
				if err := s.reviews.UpdateFactor(txCtx, ch.reviewID, ch.new); err != nil {
					return fmt.Errorf("update review factor: %w", err)
				}
			}
			if err := s.undo.RecordCard(txCtx, res.UndoID, before); err != nil {
				return fmt.Errorf("record card: %w", err)
			}
			if err := s.cards.Update(txCtx, card); err != nil {
				return fmt.Errorf("update card: %w", err)
			}
			return nil
		}); err != nil {
			res.Summary = op.progressLabel(res.Processed)
			return fmt.Errorf("%s card %d: %w", op, card.ID, err)
		}

		res.Processed++
		if every > 0 && res.Processed%every == 0 && cp.Checkpoint(res.Processed, op.progressLabel(res.Processed)) {
			res.Cancelled = true
			break
		}
	}

	res.Summary = op.progressLabel(res.Processed)
	metrics.CardsProcessed(string(op), res.Processed)
	metrics.Problems(len(res.Problems))
	s.log.InfoContext(ctx, "batch finished",
		slog.String("operation", string(op)),
		slog.Int("processed", res.Processed),
		slog.Int("skipped", res.Skipped),
		slog.Int("failed", failed),
		slog.Bool("cancelled", res.Cancelled),
	)

	if res.Processed == 0 && failed > 0 {
		return fmt.Errorf("%s: no card could be written: %w", op, lastErr)
	}
	return nil
}

// tag records in the card's side-channel which operation touched it.
func tag(card *domain.Card, key string, value any) error {
	data, err := card.CustomData.With(key, value)
	if errors.Is(err, domain.ErrValidation) {
		return fmt.Errorf("%w: %w", errUnreadableCustomData, err)
	}
	if err != nil {
		return err
	}
	card.CustomData = data
	return nil
}
