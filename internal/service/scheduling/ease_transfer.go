package scheduling

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/tidwall/gjson"

	"github.com/heartmarshall/myenglish-scheduler/internal/domain"
)

// maxImportSize bounds the ease document read by ImportEase.
const maxImportSize = 16 << 20

// ExportEase writes the factors of the review cards of a deck and its
// children as a JSON object keyed by card id.
func (s *Service) ExportEase(ctx context.Context, deckID int64, w io.Writer) (int, error) {
	if deckID <= 0 {
		return 0, domain.NewValidationError("deck_id", "must be positive")
	}

	tree, err := s.deckTree(ctx)
	if err != nil {
		return 0, err
	}
	scope, err := deckScope(tree, &deckID)
	if err != nil {
		return 0, err
	}

	cards, err := s.cards.Select(ctx, domain.CardQuery{
		DeckIDs: scope,
		Types:   []domain.CardType{domain.CardTypeReview, domain.CardTypeRelearning},
	})
	if err != nil {
		return 0, fmt.Errorf("select cards: %w", err)
	}

	factors := make(map[string]int, len(cards))
	for _, c := range cards {
		factors[strconv.FormatInt(c.ID, 10)] = c.Factor
	}
	if err := json.NewEncoder(w).Encode(factors); err != nil {
		return 0, fmt.Errorf("encode factors: %w", err)
	}

	s.log.InfoContext(ctx, "ease exported", slog.Int64("deck_id", deckID), slog.Int("cards", len(cards)))
	return len(cards), nil
}

// ImportEase sets card factors from a document written by ExportEase. Only
// cards of the deck and its children are touched; ids that are not found
// there are ignored. Entries that are not a card id mapped to a factor
// within the configured ease bounds are reported and skipped.
func (s *Service) ImportEase(ctx context.Context, deckID int64, r io.Reader, cp Checkpointer) (Result, error) {
	res := Result{Operation: OpImportEase}
	if deckID <= 0 {
		return res, domain.NewValidationError("deck_id", "must be positive")
	}

	body, err := io.ReadAll(io.LimitReader(r, maxImportSize))
	if err != nil {
		return res, fmt.Errorf("read ease document: %w", err)
	}
	doc := gjson.ParseBytes(body)
	if !gjson.ValidBytes(body) || !doc.IsObject() {
		return res, domain.NewValidationError("body", "must be a JSON object of card id to factor")
	}

	want := make(map[int64]int)
	ids := make([]int64, 0)
	doc.ForEach(func(key, value gjson.Result) bool {
		id, err := strconv.ParseInt(key.String(), 10, 64)
		if err != nil || id <= 0 {
			res.Problems = append(res.Problems, fmt.Sprintf("%q is not a card id", key.String()))
			return true
		}
		f := int(value.Int())
		if value.Type != gjson.Number || f < s.cfg.Ease.MinEase || f > s.cfg.Ease.MaxEase {
			res.Problems = append(res.Problems, fmt.Sprintf("card %d: factor %s outside [%d, %d]",
				id, value.Raw, s.cfg.Ease.MinEase, s.cfg.Ease.MaxEase))
			return true
		}
		if _, dup := want[id]; !dup {
			ids = append(ids, id)
		}
		want[id] = f
		return true
	})
	if len(ids) == 0 {
		return res, nil
	}

	tree, err := s.deckTree(ctx)
	if err != nil {
		return res, err
	}
	scope, err := deckScope(tree, &deckID)
	if err != nil {
		return res, err
	}

	cards, err := s.cards.Select(ctx, domain.CardQuery{IDs: ids, DeckIDs: scope})
	if err != nil {
		return res, fmt.Errorf("select cards: %w", err)
	}

	err = s.runBatch(ctx, OpImportEase, cards, s.cfg.EaseCheckpoint, cp, &res,
		func(_ context.Context, card *domain.Card) ([]factorChange, error) {
			f := want[card.ID]
			if card.Factor == f {
				return nil, errSkipCard
			}
			card.Factor = f
			return nil, nil
		})
	return res, err
}
