package scheduling

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/myenglish-scheduler/internal/domain"
	"github.com/heartmarshall/myenglish-scheduler/internal/service/scheduling/ease"
	"github.com/heartmarshall/myenglish-scheduler/internal/service/scheduling/interval"
)

// The collection starts on testCreated; testNow falls on day 100.
var (
	testCreated = time.Date(2026, 1, 1, 4, 0, 0, 0, time.UTC)
	testNow     = time.Date(2026, 4, 11, 12, 0, 0, 0, time.UTC)
)

const testToday = 100

var validScript = strings.Join([]string{
	"# Custom Scheduler v1.0.0",
	"deckParams:",
	`  - deckName: "global config for Custom Scheduler"`,
	"    daysUpper: 200",
	"    minAgainMult: 0",
	`skipDecks: ["Archive"]`,
}, "\n")

func testConfig() Config {
	return Config{
		Ease: ease.Config{
			Leash:   100,
			MinEase: 1300,
			MaxEase: 5000,
			Weight:  0.2,
			Target:  0.85,
		},
		DaysToReschedule:     7,
		RescheduleCheckpoint: 500,
		EaseCheckpoint:       200,
		PostponeSafeRatio:    0.25,
		AdvanceSafeRatio:     0.15,
		Created:              testCreated,
		Location:             time.UTC,
		RolloverHour:         4,
	}
}

// reviewAt returns a review log id that falls on the given collection day.
func reviewAt(day int) int64 {
	return testCreated.AddDate(0, 0, day).Add(6 * time.Hour).UnixMilli()
}

func reviewCard(id int64, ivl, due int) domain.Card {
	return domain.Card{
		ID:         id,
		NoteID:     id,
		DeckID:     1,
		Type:       domain.CardTypeReview,
		Queue:      domain.QueueReview,
		Due:        due,
		Interval:   ivl,
		Factor:     2500,
		Reps:       5,
		CustomData: `{"v":"reschedule"}`,
	}
}

func goodReview(cardID int64, day, lastIvl int) domain.ReviewEvent {
	return domain.ReviewEvent{
		ID:           reviewAt(day) + cardID,
		CardID:       cardID,
		Grade:        domain.GradeGood,
		Interval:     lastIvl * 2,
		LastInterval: lastIvl,
		Factor:       2500,
		Kind:         domain.ReviewKindReview,
	}
}

// stopAfter asks the batch to stop once at least n cards are done.
type stopAfter struct {
	n     int
	calls []int
}

func (s *stopAfter) Checkpoint(done int, _ string) bool {
	s.calls = append(s.calls, done)
	return done >= s.n
}

// fixture wires mocks around an in-memory card list.
type fixture struct {
	cards   *cardRepoMock
	reviews *reviewLogRepoMock
	decks   *deckRepoMock
	scripts *scriptRepoMock
	undo    *undoLogMock
	tx      *txManagerMock

	script  string
	history map[int64][]domain.ReviewEvent
	undoID  uuid.UUID
	updated []domain.Card
}

func newFixture(cards ...domain.Card) *fixture {
	f := &fixture{
		script:  validScript,
		history: make(map[int64][]domain.ReviewEvent),
		undoID:  uuid.New(),
	}

	f.cards = &cardRepoMock{
		SelectFunc: func(ctx context.Context, q domain.CardQuery) ([]domain.Card, error) {
			return slices.Clone(cards), nil
		},
		UpdateFunc: func(ctx context.Context, card *domain.Card) error {
			f.updated = append(f.updated, *card)
			return nil
		},
		GetByIDFunc: func(ctx context.Context, cardID int64) (*domain.Card, error) {
			for _, c := range cards {
				if c.ID == cardID {
					c := c
					return &c, nil
				}
			}
			return nil, domain.ErrNotFound
		},
	}
	f.reviews = &reviewLogRepoMock{
		ListByCardIDFunc: func(ctx context.Context, cardID int64) ([]domain.ReviewEvent, error) {
			return f.history[cardID], nil
		},
		UpdateFactorFunc: func(ctx context.Context, reviewID int64, factor int) error {
			return nil
		},
	}
	f.decks = &deckRepoMock{
		ListDecksFunc: func(ctx context.Context) ([]domain.Deck, error) {
			return []domain.Deck{{ID: 1, Name: "Default"}, {ID: 2, Name: "Archive"}}, nil
		},
		ListConfigsFunc: func(ctx context.Context) ([]domain.DeckConfig, error) {
			return nil, nil
		},
	}
	f.scripts = &scriptRepoMock{
		GetFunc: func(ctx context.Context) (string, error) {
			return f.script, nil
		},
	}
	f.undo = &undoLogMock{
		BeginFunc: func(ctx context.Context, label string) (uuid.UUID, error) {
			return f.undoID, nil
		},
		RecordCardFunc: func(ctx context.Context, entryID uuid.UUID, snap domain.CardStateSnapshot) error {
			return nil
		},
		RecordReviewFactorFunc: func(ctx context.Context, entryID uuid.UUID, snap domain.ReviewFactorSnapshot) error {
			return nil
		},
	}
	f.tx = &txManagerMock{
		RunInTxFunc: func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	}
	return f
}

func (f *fixture) service(cfg Config) *Service {
	return &Service{
		cards:   f.cards,
		reviews: f.reviews,
		decks:   f.decks,
		scripts: f.scripts,
		undo:    f.undo,
		tx:      f.tx,
		log:     slog.Default(),
		cfg:     cfg,
		calc:    ease.NewCalculator(cfg.Ease),
		sched:   interval.NewScheduler(),
		now:     func() time.Time { return testNow },
	}
}
