package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/myenglish-scheduler/migrations"
)

// Migrate applies the embedded goose migrations. down rolls back the most
// recent one instead.
func Migrate(ctx context.Context, dsn string, down bool, log *slog.Logger) error {
	// goose requires *sql.DB.
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("sql.Open: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("db ping: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("goose new provider: %w", err)
	}

	var results []*goose.MigrationResult
	if down {
		res, err := provider.Down(ctx)
		if err != nil {
			return fmt.Errorf("goose down: %w", err)
		}
		if res != nil {
			results = append(results, res)
		}
	} else {
		results, err = provider.Up(ctx)
		if err != nil {
			return fmt.Errorf("goose up: %w", err)
		}
	}

	for _, r := range results {
		log.InfoContext(ctx, "migration applied",
			slog.Int64("version", r.Source.Version),
			slog.String("direction", r.Direction),
			slog.Duration("took", r.Duration),
		)
	}
	if len(results) == 0 {
		log.InfoContext(ctx, "no migrations to apply")
	}
	return nil
}
