// Package reviewlog implements the review history store using PostgreSQL.
package reviewlog

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/myenglish-scheduler/internal/adapter/postgres"
	"github.com/heartmarshall/myenglish-scheduler/internal/domain"
)

// learnedWindowDays bounds the scan behind LearnedCounts.
const learnedWindowDays = 30

// Repo provides review log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new review log repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const listByCardIDSQL = `
SELECT id, card_id, grade, interval, last_interval, factor, duration_ms, kind
FROM review_log
WHERE card_id = $1
ORDER BY id`

const updateFactorSQL = `UPDATE review_log SET factor = $2 WHERE id = $1`

// Integer division truncates toward zero, so every review of the day that
// ends at the cutoff lands on offset 0 and earlier days are negative.
const learnedCountsSQL = `
SELECT (id / 1000 - $1) / 86400 AS day, count(DISTINCT card_id) AS n
FROM review_log
WHERE grade > 0 AND id >= $2
GROUP BY 1`

const listIDsSQL = `SELECT id FROM review_log ORDER BY id`

// Kinds below 3 are learning, review and relearning answers.
const attemptCardIDsExceptSQL = `
SELECT DISTINCT card_id
FROM review_log
WHERE kind < 3 AND NOT (id = ANY($1::bigint[]))
ORDER BY card_id`

type reviewRow struct {
	ID           int64 `db:"id"`
	CardID       int64 `db:"card_id"`
	Grade        int   `db:"grade"`
	Interval     int   `db:"interval"`
	LastInterval int   `db:"last_interval"`
	Factor       int   `db:"factor"`
	DurationMs   int   `db:"duration_ms"`
	Kind         int   `db:"kind"`
}

func (r reviewRow) toDomain() domain.ReviewEvent {
	return domain.ReviewEvent{
		ID:           r.ID,
		CardID:       r.CardID,
		Grade:        domain.Grade(r.Grade),
		Interval:     r.Interval,
		LastInterval: r.LastInterval,
		Factor:       r.Factor,
		DurationMs:   r.DurationMs,
		Kind:         domain.ReviewKind(r.Kind),
	}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByCardID returns the history of a card, oldest first.
func (r *Repo) ListByCardID(ctx context.Context, cardID int64) ([]domain.ReviewEvent, error) {
	var rows []reviewRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, listByCardIDSQL, cardID); err != nil {
		return nil, fmt.Errorf("list reviews of card %d: %w", cardID, err)
	}

	events := make([]domain.ReviewEvent, len(rows))
	for i := range rows {
		events[i] = rows[i].toDomain()
	}
	return events, nil
}

// LearnedCounts counts distinct answered cards per day offset from the day
// that ends at cutoff. Only the last few weeks are counted.
func (r *Repo) LearnedCounts(ctx context.Context, cutoff time.Time) (map[int]int, error) {
	end := cutoff.Unix()
	since := (end - int64(learnedWindowDays)*86400) * 1000

	var rows []struct {
		Day int `db:"day"`
		N   int `db:"n"`
	}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, learnedCountsSQL, end, since); err != nil {
		return nil, fmt.Errorf("learned counts: %w", err)
	}

	counts := make(map[int]int, len(rows))
	for _, row := range rows {
		counts[row.Day] = row.N
	}
	return counts, nil
}

// ListIDs returns every review log id.
func (r *Repo) ListIDs(ctx context.Context) ([]int64, error) {
	var ids []int64
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &ids, listIDsSQL); err != nil {
		return nil, fmt.Errorf("list review ids: %w", err)
	}
	return ids, nil
}

// AttemptCardIDsExcept returns the cards with study attempts whose log id
// is not in known.
func (r *Repo) AttemptCardIDsExcept(ctx context.Context, known []int64) ([]int64, error) {
	if known == nil {
		known = []int64{}
	}

	var ids []int64
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &ids, attemptCardIDsExceptSQL, known); err != nil {
		return nil, fmt.Errorf("cards with new reviews: %w", err)
	}
	return ids, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// UpdateFactor rewrites the factor logged by a review.
func (r *Repo) UpdateFactor(ctx context.Context, reviewID int64, factor int) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, updateFactorSQL, reviewID, factor)
	if err != nil {
		return postgres.MapError(err, "review", reviewID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("review %d: %w", reviewID, domain.ErrNotFound)
	}
	return nil
}
