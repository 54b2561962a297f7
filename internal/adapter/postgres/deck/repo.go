// Package deck reads the deck tree and deck configurations.
package deck

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/myenglish-scheduler/internal/adapter/postgres"
	"github.com/heartmarshall/myenglish-scheduler/internal/domain"
)

// Repo provides deck persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new deck repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const listDecksSQL = `SELECT id, name, config_id FROM decks ORDER BY name`

const listConfigsSQL = `
SELECT id, name, starting_ease, easy_factor, hard_factor, lapse_mult, max_interval
FROM deck_configs
ORDER BY id`

type deckRow struct {
	ID       int64  `db:"id"`
	Name     string `db:"name"`
	ConfigID *int64 `db:"config_id"`
}

type configRow struct {
	ID           int64    `db:"id"`
	Name         string   `db:"name"`
	StartingEase *int     `db:"starting_ease"`
	EasyFactor   *float64 `db:"easy_factor"`
	HardFactor   *float64 `db:"hard_factor"`
	LapseMult    *float64 `db:"lapse_mult"`
	MaxInterval  *int     `db:"max_interval"`
}

// ListDecks returns every deck sorted by name.
func (r *Repo) ListDecks(ctx context.Context) ([]domain.Deck, error) {
	var rows []deckRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, listDecksSQL); err != nil {
		return nil, fmt.Errorf("list decks: %w", err)
	}

	decks := make([]domain.Deck, len(rows))
	for i, row := range rows {
		decks[i] = domain.Deck{ID: row.ID, Name: row.Name, ConfigID: row.ConfigID}
	}
	return decks, nil
}

// ListConfigs returns every deck configuration.
func (r *Repo) ListConfigs(ctx context.Context) ([]domain.DeckConfig, error) {
	var rows []configRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, listConfigsSQL); err != nil {
		return nil, fmt.Errorf("list deck configs: %w", err)
	}

	configs := make([]domain.DeckConfig, len(rows))
	for i, row := range rows {
		configs[i] = domain.DeckConfig{
			ID:           row.ID,
			Name:         row.Name,
			StartingEase: row.StartingEase,
			EasyFactor:   row.EasyFactor,
			HardFactor:   row.HardFactor,
			LapseMult:    row.LapseMult,
			MaxInterval:  row.MaxInterval,
		}
	}
	return configs, nil
}
