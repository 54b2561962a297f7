package testhelper

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/myenglish-scheduler/internal/domain"
)

// nextID hands out ids that do not collide between tests sharing the database.
var nextID atomic.Int64

func init() {
	nextID.Store(time.Now().UnixMilli())
}

// NewID returns a fresh unique id.
func NewID() int64 {
	return nextID.Add(1)
}

// SeedDeck creates a deck with a unique name under prefix and its own config.
func SeedDeck(t *testing.T, pool *pgxpool.Pool, prefix string, startingEase int) domain.Deck {
	t.Helper()
	ctx := context.Background()

	cfgID := NewID()
	_, err := pool.Exec(ctx,
		`INSERT INTO deck_configs (id, name, starting_ease, max_interval) VALUES ($1, $2, $3, $4)`,
		cfgID, fmt.Sprintf("config %d", cfgID), startingEase, 3650,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDeck insert config: %v", err)
	}

	deck := domain.Deck{ID: NewID(), ConfigID: &cfgID}
	deck.Name = fmt.Sprintf("%s %d", prefix, deck.ID)
	_, err = pool.Exec(ctx,
		`INSERT INTO decks (id, name, config_id) VALUES ($1, $2, $3)`,
		deck.ID, deck.Name, cfgID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDeck insert deck: %v", err)
	}
	return deck
}

// SeedCard inserts a review card in deck. Zero fields of c are filled with
// a review card due today.
func SeedCard(t *testing.T, pool *pgxpool.Pool, deckID int64, c domain.Card) domain.Card {
	t.Helper()

	if c.ID == 0 {
		c.ID = NewID()
	}
	if c.NoteID == 0 {
		c.NoteID = c.ID
	}
	c.DeckID = deckID
	if c.Type == 0 && c.Queue == 0 {
		c.Type, c.Queue = domain.CardTypeReview, domain.QueueReview
	}
	if c.Interval == 0 {
		c.Interval = 10
	}
	if c.Factor == 0 {
		c.Factor = 2500
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO cards (id, note_id, deck_id, original_deck_id, type, queue, due, original_due,
		                    interval, factor, reps, lapses, custom_data)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		c.ID, c.NoteID, c.DeckID, c.OriginalDeckID, int(c.Type), int(c.Queue), c.Due, c.OriginalDue,
		c.Interval, c.Factor, c.Reps, c.Lapses, string(c.CustomData),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCard: %v", err)
	}
	return c
}

// SeedReview appends a review log entry for a card.
func SeedReview(t *testing.T, pool *pgxpool.Pool, e domain.ReviewEvent) domain.ReviewEvent {
	t.Helper()

	if e.ID == 0 {
		e.ID = NewID()
	}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO review_log (id, card_id, grade, interval, last_interval, factor, duration_ms, kind)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		e.ID, e.CardID, int(e.Grade), e.Interval, e.LastInterval, e.Factor, e.DurationMs, int(e.Kind),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedReview: %v", err)
	}
	return e
}
