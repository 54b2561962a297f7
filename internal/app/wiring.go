package app

import (
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/myenglish-scheduler/internal/adapter/postgres"
	"github.com/heartmarshall/myenglish-scheduler/internal/adapter/postgres/card"
	"github.com/heartmarshall/myenglish-scheduler/internal/adapter/postgres/deck"
	"github.com/heartmarshall/myenglish-scheduler/internal/adapter/postgres/reviewlog"
	"github.com/heartmarshall/myenglish-scheduler/internal/adapter/postgres/script"
	"github.com/heartmarshall/myenglish-scheduler/internal/adapter/postgres/undo"
	"github.com/heartmarshall/myenglish-scheduler/internal/config"
	"github.com/heartmarshall/myenglish-scheduler/internal/service/scheduling"
	"github.com/heartmarshall/myenglish-scheduler/internal/service/scheduling/ease"
)

// NewSchedulingService builds the scheduling service on top of the
// PostgreSQL repositories. The server and the CLI share it.
func NewSchedulingService(pool *pgxpool.Pool, cfg *config.Config, log *slog.Logger) *scheduling.Service {
	return scheduling.NewService(
		log,
		card.New(pool),
		reviewlog.New(pool),
		deck.New(pool),
		script.New(pool),
		undo.New(pool),
		postgres.NewTxManager(pool),
		SchedulingConfig(cfg),
	)
}

// SchedulingConfig maps the validated configuration onto the service knobs.
func SchedulingConfig(cfg *config.Config) scheduling.Config {
	s := cfg.Scheduler
	return scheduling.Config{
		Ease: ease.Config{
			Leash:       s.Leash,
			MinEase:     s.MinEase,
			MaxEase:     s.MaxEase,
			Weight:      s.MovingAverageWeight,
			Target:      s.TargetRatio,
			ReviewsOnly: s.ReviewsOnly,
		},
		DaysToReschedule: s.DaysToReschedule,
		FreeDays:         s.FreeDays,
		LoadBalance:      s.LoadBalance,

		RescheduleCheckpoint: s.RescheduleCheckpoint,
		EaseCheckpoint:       s.EaseCheckpoint,
		PostponeSafeRatio:    s.PostponeSafeRatio,
		AdvanceSafeRatio:     s.AdvanceSafeRatio,

		AutoAdjustEaseAfterSync: s.AutoAdjustEaseAfterSync,
		AutoRescheduleAfterSync: s.AutoRescheduleAfterSync,
		AutoDisperseAfterSync:   s.AutoDisperseAfterSync,

		Created:      cfg.Collection.Created,
		Location:     cfg.Collection.Location,
		RolloverHour: cfg.Collection.RolloverHour,
	}
}
