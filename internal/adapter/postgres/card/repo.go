// Package card implements the card store using PostgreSQL. Bulk selection
// is built with squirrel; rows are scanned with pgxscan.
package card

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/myenglish-scheduler/internal/adapter/postgres"
	"github.com/heartmarshall/myenglish-scheduler/internal/domain"
)

// Repo provides card persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new card repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// trueDueSQL is the due day in the card's home deck.
const trueDueSQL = "CASE WHEN original_deck_id <> 0 THEN original_due ELSE due END"

var columns = []string{
	"id", "note_id", "deck_id", "original_deck_id", "type", "queue", "due", "original_due",
	"interval", "factor", "reps", "lapses", "custom_data", "updated_at",
}

const updateSQL = `
UPDATE cards
SET due = $2, original_due = $3, interval = $4, factor = $5, custom_data = $6, updated_at = now()
WHERE id = $1`

const dueCountsSQL = `
SELECT ` + trueDueSQL + ` AS day, count(*) AS n
FROM cards
WHERE type = 2 AND queue <> -1
GROUP BY 1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a card by primary key.
func (r *Repo) GetByID(ctx context.Context, cardID int64) (*domain.Card, error) {
	query, args, err := psql.Select(columns...).From("cards").Where(squirrel.Eq{"id": cardID}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build card query: %w", err)
	}

	var row cardRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "card", cardID)
	}
	c := row.toDomain()
	return &c, nil
}

// Select returns the cards matching q ordered by id.
func (r *Repo) Select(ctx context.Context, q domain.CardQuery) ([]domain.Card, error) {
	query, args, err := selectBuilder(q).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build card query: %w", err)
	}

	var rows []cardRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select cards: %w", err)
	}

	cards := make([]domain.Card, len(rows))
	for i := range rows {
		cards[i] = rows[i].toDomain()
	}
	return cards, nil
}

func selectBuilder(q domain.CardQuery) squirrel.SelectBuilder {
	sb := psql.Select(columns...).From("cards").OrderBy("id")

	if len(q.IDs) > 0 {
		sb = sb.Where("id = ANY(?::bigint[])", q.IDs)
	}
	if len(q.NoteIDs) > 0 {
		sb = sb.Where("note_id = ANY(?::bigint[])", q.NoteIDs)
	}
	if len(q.DeckIDs) > 0 {
		// Filtered cards belong to the deck they were borrowed from as well.
		sb = sb.Where(squirrel.Or{
			squirrel.Expr("deck_id = ANY(?::bigint[])", q.DeckIDs),
			squirrel.Expr("original_deck_id = ANY(?::bigint[])", q.DeckIDs),
		})
	}
	if len(q.Queues) > 0 {
		sb = sb.Where(squirrel.Eq{"queue": intSlice(q.Queues)})
	}
	if len(q.Types) > 0 {
		sb = sb.Where(squirrel.Eq{"type": intSlice(q.Types)})
	}
	if q.ReviewedSinceID > 0 {
		sb = sb.Where("EXISTS (SELECT 1 FROM review_log r WHERE r.card_id = cards.id AND r.id >= ?)", q.ReviewedSinceID)
	}
	if q.DueOnOrBefore != nil {
		sb = sb.Where(trueDueSQL+" <= ?", *q.DueOnOrBefore)
	}
	if q.DueAfter != nil {
		sb = sb.Where(trueDueSQL+" > ?", *q.DueAfter)
	}
	return sb
}

// DueCounts counts cards in the review and day-learning queues by true due day.
func (r *Repo) DueCounts(ctx context.Context) (map[int]int, error) {
	var rows []struct {
		Day int `db:"day"`
		N   int `db:"n"`
	}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, dueCountsSQL); err != nil {
		return nil, fmt.Errorf("due counts: %w", err)
	}

	counts := make(map[int]int, len(rows))
	for _, row := range rows {
		counts[row.Day] = row.N
	}
	return counts, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Update writes the scheduling fields of a card. A custom data blob over
// the column limit is rejected by the database with domain.ErrValidation.
func (r *Repo) Update(ctx context.Context, c *domain.Card) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, updateSQL,
		c.ID, c.Due, c.OriginalDue, c.Interval, c.Factor, string(c.CustomData),
	)
	if err != nil {
		return postgres.MapError(err, "card", c.ID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("card %d: %w", c.ID, domain.ErrNotFound)
	}
	return nil
}

func intSlice[T ~int](in []T) []int {
	out := make([]int, len(in))
	for i, v := range in {
		out[i] = int(v)
	}
	return out
}
