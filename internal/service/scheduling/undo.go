package scheduling

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/myenglish-scheduler/internal/domain"
)

// Undo reverts every card and review factor recorded under an undo entry.
// An entry can be undone once; a second call fails with ErrConflict.
func (s *Service) Undo(ctx context.Context, id uuid.UUID) (*domain.UndoEntry, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("undo_id", "required")
	}

	entry, err := s.undo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get undo entry: %w", err)
	}
	if entry.IsUndone() {
		return nil, fmt.Errorf("undo entry %s: already undone: %w", id, domain.ErrConflict)
	}

	now := s.now()
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		for _, snap := range entry.Cards {
			card, err := s.cards.GetByID(txCtx, snap.CardID)
			if err != nil {
				return fmt.Errorf("get card %d: %w", snap.CardID, err)
			}
			card.Restore(snap)
			if err := s.cards.Update(txCtx, card); err != nil {
				return fmt.Errorf("restore card %d: %w", snap.CardID, err)
			}
		}
		for _, f := range entry.Factors {
			if err := s.reviews.UpdateFactor(txCtx, f.ReviewID, f.Factor); err != nil {
				return fmt.Errorf("restore review %d: %w", f.ReviewID, err)
			}
		}
		return s.undo.MarkUndone(txCtx, id, now)
	})
	if err != nil {
		return nil, err
	}

	entry.UndoneAt = &now
	s.log.InfoContext(ctx, "operation undone",
		slog.String("undo_id", id.String()),
		slog.String("label", entry.Label),
		slog.Int("cards", len(entry.Cards)),
		slog.Int("review_factors", len(entry.Factors)),
	)
	return entry, nil
}
