// Package scheduling runs the bulk interval and ease operations over the
// card store.
package scheduling

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/myenglish-scheduler/internal/domain"
	"github.com/heartmarshall/myenglish-scheduler/internal/service/scheduling/deckparams"
	"github.com/heartmarshall/myenglish-scheduler/internal/service/scheduling/ease"
	"github.com/heartmarshall/myenglish-scheduler/internal/service/scheduling/interval"
)

//go:generate moq -out card_repo_mock_test.go -pkg scheduling . cardRepo
//go:generate moq -out review_log_repo_mock_test.go -pkg scheduling . reviewLogRepo
//go:generate moq -out deck_repo_mock_test.go -pkg scheduling . deckRepo
//go:generate moq -out script_repo_mock_test.go -pkg scheduling . scriptRepo
//go:generate moq -out undo_log_mock_test.go -pkg scheduling . undoLog
//go:generate moq -out tx_manager_mock_test.go -pkg scheduling . txManager

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type cardRepo interface {
	GetByID(ctx context.Context, cardID int64) (*domain.Card, error)
	// Select returns the matching cards ordered by id.
	Select(ctx context.Context, q domain.CardQuery) ([]domain.Card, error)
	Update(ctx context.Context, card *domain.Card) error
	// DueCounts counts review cards that are not suspended, by true due day.
	DueCounts(ctx context.Context) (map[int]int, error)
}

type reviewLogRepo interface {
	// ListByCardID returns the history of a card, oldest first.
	ListByCardID(ctx context.Context, cardID int64) ([]domain.ReviewEvent, error)
	UpdateFactor(ctx context.Context, reviewID int64, factor int) error
	// LearnedCounts counts distinct answered cards per day offset from the
	// day that ends at cutoff.
	LearnedCounts(ctx context.Context, cutoff time.Time) (map[int]int, error)
	ListIDs(ctx context.Context) ([]int64, error)
	// AttemptCardIDsExcept returns the cards with study attempts whose log id
	// is not in known.
	AttemptCardIDsExcept(ctx context.Context, known []int64) ([]int64, error)
}

type deckRepo interface {
	ListDecks(ctx context.Context) ([]domain.Deck, error)
	ListConfigs(ctx context.Context) ([]domain.DeckConfig, error)
}

type scriptRepo interface {
	Get(ctx context.Context) (string, error)
	Put(ctx context.Context, body string) error
}

type undoLog interface {
	Begin(ctx context.Context, label string) (uuid.UUID, error)
	RecordCard(ctx context.Context, entryID uuid.UUID, snap domain.CardStateSnapshot) error
	RecordReviewFactor(ctx context.Context, entryID uuid.UUID, snap domain.ReviewFactorSnapshot) error
	Get(ctx context.Context, entryID uuid.UUID) (*domain.UndoEntry, error)
	MarkUndone(ctx context.Context, entryID uuid.UUID, at time.Time) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Checkpointer receives progress every few cards. It reports true when the
// batch should stop.
type Checkpointer interface {
	Checkpoint(done int, label string) bool
}

type noCheckpoint struct{}

func (noCheckpoint) Checkpoint(int, string) bool { return false }

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Config holds the knobs of the bulk operations.
type Config struct {
	Ease             ease.Config
	DaysToReschedule int
	FreeDays         map[time.Weekday]bool
	LoadBalance      bool

	RescheduleCheckpoint int
	EaseCheckpoint       int
	PostponeSafeRatio    float64
	AdvanceSafeRatio     float64

	AutoAdjustEaseAfterSync bool
	AutoRescheduleAfterSync bool
	AutoDisperseAfterSync   bool

	// The collection's day counter starts at Created and rolls over at
	// RolloverHour in Location.
	Created      time.Time
	Location     *time.Location
	RolloverHour int
}

// Service implements the bulk scheduling operations.
type Service struct {
	cards   cardRepo
	reviews reviewLogRepo
	decks   deckRepo
	scripts scriptRepo
	undo    undoLog
	tx      txManager
	log     *slog.Logger
	cfg     Config
	calc    *ease.Calculator
	sched   *interval.Scheduler
	now     func() time.Time
}

// NewService creates a new scheduling service.
func NewService(
	log *slog.Logger,
	cards cardRepo,
	reviews reviewLogRepo,
	decks deckRepo,
	scripts scriptRepo,
	undo undoLog,
	tx txManager,
	cfg Config,
) *Service {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &Service{
		cards:   cards,
		reviews: reviews,
		decks:   decks,
		scripts: scripts,
		undo:    undo,
		tx:      tx,
		log:     log.With("service", "scheduling"),
		cfg:     cfg,
		calc:    ease.NewCalculator(cfg.Ease),
		sched:   interval.NewScheduler(),
		now:     time.Now,
	}
}

func (s *Service) timeline(now time.Time) domain.Timeline {
	return domain.NewTimeline(s.cfg.Created, now, s.cfg.Location, s.cfg.RolloverHour)
}

func (s *Service) deckTree(ctx context.Context) (*domain.DeckTree, error) {
	decks, err := s.decks.ListDecks(ctx)
	if err != nil {
		return nil, fmt.Errorf("list decks: %w", err)
	}
	configs, err := s.decks.ListConfigs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list deck configs: %w", err)
	}
	return domain.NewDeckTree(decks, configs), nil
}

// loadParams reads and parses the deck parameter script. A script that does
// not parse is returned as a *deckparams.ParseError.
func (s *Service) loadParams(ctx context.Context) (*deckparams.Set, []string, error) {
	body, err := s.scripts.Get(ctx)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, nil, fmt.Errorf("get script: %w", err)
	}
	return deckparams.Parse(body)
}

// deckScope returns the deck ids an operation is limited to, nil for the
// whole collection.
func deckScope(tree *domain.DeckTree, deckID *int64) ([]int64, error) {
	if deckID == nil {
		return nil, nil
	}
	if _, ok := tree.Deck(*deckID); !ok {
		return nil, fmt.Errorf("deck %d: %w", *deckID, domain.ErrNotFound)
	}
	return tree.WithChildren(*deckID), nil
}

func orNoCheckpoint(cp Checkpointer) Checkpointer {
	if cp == nil {
		return noCheckpoint{}
	}
	return cp
}
