// Package undo stores undo entries: the state of every card and review
// factor before a bulk operation wrote it.
package undo

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/myenglish-scheduler/internal/adapter/postgres"
	"github.com/heartmarshall/myenglish-scheduler/internal/domain"
)

// Repo provides undo log persistence backed by PostgreSQL.
type Repo struct {
	db  postgres.Querier
	now func() time.Time
}

// New creates a new undo repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db, now: time.Now}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const beginSQL = `INSERT INTO undo_entries (id, label, created_at) VALUES ($1, $2, $3)`

// The first snapshot of a card wins: it is the state before the operation.
const recordCardSQL = `
INSERT INTO undo_cards (entry_id, card_id, due, original_due, interval, factor, custom_data)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (entry_id, card_id) DO NOTHING`

const recordFactorSQL = `
INSERT INTO undo_review_factors (entry_id, review_id, factor)
VALUES ($1, $2, $3)
ON CONFLICT (entry_id, review_id) DO NOTHING`

const getEntrySQL = `SELECT id, label, created_at, undone_at FROM undo_entries WHERE id = $1`

const getCardsSQL = `
SELECT card_id, due, original_due, interval, factor, custom_data
FROM undo_cards WHERE entry_id = $1 ORDER BY card_id`

const getFactorsSQL = `
SELECT review_id, factor
FROM undo_review_factors WHERE entry_id = $1 ORDER BY review_id`

// Snapshots go with their entry through ON DELETE CASCADE.
const deleteOldSQL = `DELETE FROM undo_entries WHERE created_at < $1`

const markUndoneSQL = `UPDATE undo_entries SET undone_at = $2 WHERE id = $1 AND undone_at IS NULL`

type entryRow struct {
	ID        uuid.UUID  `db:"id"`
	Label     string     `db:"label"`
	CreatedAt time.Time  `db:"created_at"`
	UndoneAt  *time.Time `db:"undone_at"`
}

type cardRow struct {
	CardID      int64  `db:"card_id"`
	Due         int    `db:"due"`
	OriginalDue int    `db:"original_due"`
	Interval    int    `db:"interval"`
	Factor      int    `db:"factor"`
	CustomData  string `db:"custom_data"`
}

type factorRow struct {
	ReviewID int64 `db:"review_id"`
	Factor   int   `db:"factor"`
}

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// Begin opens a new entry and returns its id.
func (r *Repo) Begin(ctx context.Context, label string) (uuid.UUID, error) {
	id := uuid.New()
	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, beginSQL, id, label, r.now().UTC()); err != nil {
		return uuid.Nil, postgres.MapError(err, "undo entry", id)
	}
	return id, nil
}

// RecordCard keeps the state of a card before its first write under the entry.
func (r *Repo) RecordCard(ctx context.Context, entryID uuid.UUID, snap domain.CardStateSnapshot) error {
	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, recordCardSQL,
		entryID, snap.CardID, snap.Due, snap.OriginalDue, snap.Interval, snap.Factor, string(snap.CustomData),
	)
	if err != nil {
		return postgres.MapError(err, "undo entry", entryID)
	}
	return nil
}

// RecordReviewFactor keeps a logged factor before its first rewrite.
func (r *Repo) RecordReviewFactor(ctx context.Context, entryID uuid.UUID, snap domain.ReviewFactorSnapshot) error {
	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, recordFactorSQL, entryID, snap.ReviewID, snap.Factor)
	if err != nil {
		return postgres.MapError(err, "undo entry", entryID)
	}
	return nil
}

// Get returns an entry with all its snapshots.
func (r *Repo) Get(ctx context.Context, entryID uuid.UUID) (*domain.UndoEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var e entryRow
	if err := pgxscan.Get(ctx, q, &e, getEntrySQL, entryID); err != nil {
		return nil, postgres.MapError(err, "undo entry", entryID)
	}

	var cards []cardRow
	if err := pgxscan.Select(ctx, q, &cards, getCardsSQL, entryID); err != nil {
		return nil, fmt.Errorf("undo entry %s cards: %w", entryID, err)
	}
	var factors []factorRow
	if err := pgxscan.Select(ctx, q, &factors, getFactorsSQL, entryID); err != nil {
		return nil, fmt.Errorf("undo entry %s factors: %w", entryID, err)
	}

	entry := &domain.UndoEntry{
		ID:        e.ID,
		Label:     e.Label,
		CreatedAt: e.CreatedAt,
		UndoneAt:  e.UndoneAt,
		Cards:     make([]domain.CardStateSnapshot, len(cards)),
		Factors:   make([]domain.ReviewFactorSnapshot, len(factors)),
	}
	for i, c := range cards {
		entry.Cards[i] = domain.CardStateSnapshot{
			CardID:      c.CardID,
			Due:         c.Due,
			OriginalDue: c.OriginalDue,
			Interval:    c.Interval,
			Factor:      c.Factor,
			CustomData:  domain.CustomData(c.CustomData),
		}
	}
	for i, f := range factors {
		entry.Factors[i] = domain.ReviewFactorSnapshot{ReviewID: f.ReviewID, Factor: f.Factor}
	}
	return entry, nil
}

// MarkUndone stamps the entry. An entry that is missing or already undone
// fails with domain.ErrConflict.
func (r *Repo) MarkUndone(ctx context.Context, entryID uuid.UUID, at time.Time) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, markUndoneSQL, entryID, at.UTC())
	if err != nil {
		return postgres.MapError(err, "undo entry", entryID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("undo entry %s: %w", entryID, domain.ErrConflict)
	}
	return nil
}

// HardDeleteOld removes entries created before threshold together with
// their snapshots and returns how many entries were removed.
func (r *Repo) HardDeleteOld(ctx context.Context, threshold time.Time) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteOldSQL, threshold.UTC())
	if err != nil {
		return 0, fmt.Errorf("delete old undo entries: %w", err)
	}
	return tag.RowsAffected(), nil
}
