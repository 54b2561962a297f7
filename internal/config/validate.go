package config

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Collection.validate(); err != nil {
		return fmt.Errorf("collection: %w", err)
	}

	if err := c.Scheduler.validate(); err != nil {
		return fmt.Errorf("scheduler: %w", err)
	}

	if c.Tasks.QueueSize < 1 {
		return fmt.Errorf("tasks.queue_size must be >= 1 (got %d)", c.Tasks.QueueSize)
	}
	if c.RateLimit.PerMinute < 1 {
		return fmt.Errorf("rate_limit.per_minute must be >= 1 (got %d)", c.RateLimit.PerMinute)
	}
	if c.Tasks.KeepFinished < 0 {
		return fmt.Errorf("tasks.keep_finished must be >= 0 (got %d)", c.Tasks.KeepFinished)
	}

	return nil
}

func (c *CollectionConfig) validate() error {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return fmt.Errorf("timezone %q: %w", c.Timezone, err)
	}
	c.Location = loc

	created, err := time.ParseInLocation(time.DateOnly, c.CreatedRaw, loc)
	if err != nil {
		return fmt.Errorf("created %q: %w", c.CreatedRaw, err)
	}
	c.Created = created.Add(time.Duration(c.RolloverHour) * time.Hour)

	if c.RolloverHour < 0 || c.RolloverHour > 23 {
		return fmt.Errorf("rollover_hour must be in [0, 23] (got %d)", c.RolloverHour)
	}
	return nil
}

func (s *SchedulerConfig) validate() error {
	if s.MinEase <= 0 {
		return fmt.Errorf("min_ease must be > 0 (got %d)", s.MinEase)
	}
	if s.MaxEase < s.MinEase {
		return fmt.Errorf("max_ease must be >= min_ease (got %d < %d)", s.MaxEase, s.MinEase)
	}
	if s.Leash < 0 {
		return fmt.Errorf("leash must be >= 0 (got %d)", s.Leash)
	}
	if s.MovingAverageWeight <= 0 || s.MovingAverageWeight > 1 {
		return fmt.Errorf("moving_average_weight must be in (0, 1] (got %v)", s.MovingAverageWeight)
	}
	if s.TargetRatio <= 0 || s.TargetRatio >= 1 {
		return fmt.Errorf("target_ratio must be in (0, 1) (got %v)", s.TargetRatio)
	}
	if s.DaysToReschedule < 0 {
		return fmt.Errorf("days_to_reschedule must be >= 0 (got %d)", s.DaysToReschedule)
	}
	if s.RescheduleCheckpoint < 1 || s.EaseCheckpoint < 1 {
		return fmt.Errorf("checkpoints must be >= 1 (got %d, %d)", s.RescheduleCheckpoint, s.EaseCheckpoint)
	}

	days, err := ParseFreeDays(s.FreeDaysRaw)
	if err != nil {
		return fmt.Errorf("free_days: %w", err)
	}
	s.FreeDays = days

	return nil
}

var weekdays = map[string]time.Weekday{
	"sun": time.Sunday,
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
}

// ParseFreeDays parses a comma-separated list of weekdays (e.g. "sat,sun")
// into a set. Names are matched on their first three letters. An empty
// string returns an empty set. Every weekday at once is rejected, since no
// day would be left to review on.
func ParseFreeDays(raw string) (map[time.Weekday]bool, error) {
	days := make(map[time.Weekday]bool)
	for _, p := range strings.Split(raw, ",") {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		if len(p) < 3 {
			return nil, fmt.Errorf("invalid weekday %q", p)
		}
		d, ok := weekdays[p[:3]]
		if !ok {
			return nil, fmt.Errorf("invalid weekday %q", p)
		}
		days[d] = true
	}
	if len(days) == len(weekdays) {
		return nil, fmt.Errorf("all seven weekdays are free")
	}
	return days, nil
}
