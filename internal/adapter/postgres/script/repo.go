// Package script stores the deck parameter script.
package script

import (
	"context"
	"fmt"

	postgres "github.com/heartmarshall/myenglish-scheduler/internal/adapter/postgres"
)

// Repo keeps the single script row.
type Repo struct {
	db postgres.Querier
}

// New creates a new script repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const getSQL = `SELECT body FROM scheduler_script WHERE id = 1`

const putSQL = `
INSERT INTO scheduler_script (id, body, updated_at) VALUES (1, $1, now())
ON CONFLICT (id) DO UPDATE SET body = EXCLUDED.body, updated_at = EXCLUDED.updated_at`

// Get returns the stored script, domain.ErrNotFound when none was saved.
func (r *Repo) Get(ctx context.Context) (string, error) {
	var body string
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getSQL).Scan(&body); err != nil {
		return "", postgres.MapError(err, "script", 1)
	}
	return body, nil
}

// Put replaces the stored script.
func (r *Repo) Put(ctx context.Context, body string) error {
	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, putSQL, body); err != nil {
		return fmt.Errorf("put script: %w", err)
	}
	return nil
}
