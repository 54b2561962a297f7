package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Auth       AuthConfig       `yaml:"auth"`
	Log        LogConfig        `yaml:"log"`
	Collection CollectionConfig `yaml:"collection"`
	Scheduler  SchedulerConfig  `yaml:"scheduler"`
	Tasks      TasksConfig      `yaml:"tasks"`
	Metrics    MetricsConfig    `yaml:"metrics"`
	CORS       CORSConfig       `yaml:"cors"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	ConnectTimeout  time.Duration `yaml:"connect_timeout"    env:"DATABASE_CONNECT_TIMEOUT"    env-default:"30s"`
}

// AuthConfig holds the settings of operator bearer tokens.
type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	JWTIssuer string        `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"myenglish-scheduler"`
	TokenTTL  time.Duration `yaml:"token_ttl"  env:"AUTH_TOKEN_TTL"  env-default:"24h"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CollectionConfig places the collection's day counter in time.
type CollectionConfig struct {
	CreatedRaw   string `yaml:"created"       env:"COLLECTION_CREATED"       env-default:"2024-01-01"`
	Timezone     string `yaml:"timezone"      env:"COLLECTION_TIMEZONE"      env-default:"UTC"`
	RolloverHour int    `yaml:"rollover_hour" env:"COLLECTION_ROLLOVER_HOUR" env-default:"4"`

	// Created and Location are parsed from CreatedRaw and Timezone during validation.
	Created  time.Time      `yaml:"-" env:"-"`
	Location *time.Location `yaml:"-" env:"-"`
}

// SchedulerConfig holds the knobs of the ease calculator and the bulk operations.
type SchedulerConfig struct {
	Leash               int     `yaml:"leash"                 env:"SCHED_LEASH"                 env-default:"100"`
	MinEase             int     `yaml:"min_ease"              env:"SCHED_MIN_EASE"              env-default:"1300"`
	MaxEase             int     `yaml:"max_ease"              env:"SCHED_MAX_EASE"              env-default:"5000"`
	MovingAverageWeight float64 `yaml:"moving_average_weight" env:"SCHED_MOVING_AVERAGE_WEIGHT" env-default:"0.2"`
	TargetRatio         float64 `yaml:"target_ratio"          env:"SCHED_TARGET_RATIO"          env-default:"0.85"`
	ReviewsOnly         bool    `yaml:"reviews_only"          env:"SCHED_REVIEWS_ONLY"          env-default:"false"`
	DaysToReschedule    int     `yaml:"days_to_reschedule"    env:"SCHED_DAYS_TO_RESCHEDULE"    env-default:"7"`

	AutoAdjustEaseAfterSync bool `yaml:"auto_adjust_ease_after_sync" env:"SCHED_AUTO_ADJUST_EASE_AFTER_SYNC" env-default:"true"`
	AutoRescheduleAfterSync bool `yaml:"auto_reschedule_after_sync"  env:"SCHED_AUTO_RESCHEDULE_AFTER_SYNC"  env-default:"false"`
	AutoDisperseAfterSync   bool `yaml:"auto_disperse_after_sync"    env:"SCHED_AUTO_DISPERSE_AFTER_SYNC"    env-default:"false"`

	FreeDaysRaw          string  `yaml:"free_days"              env:"SCHED_FREE_DAYS"              env-default:""`
	LoadBalance          bool    `yaml:"load_balance"           env:"SCHED_LOAD_BALANCE"           env-default:"true"`
	RescheduleCheckpoint int     `yaml:"reschedule_checkpoint"  env:"SCHED_RESCHEDULE_CHECKPOINT"  env-default:"500"`
	EaseCheckpoint       int     `yaml:"ease_checkpoint"        env:"SCHED_EASE_CHECKPOINT"        env-default:"200"`
	PostponeSafeRatio    float64 `yaml:"postpone_safe_ratio"    env:"SCHED_POSTPONE_SAFE_RATIO"    env-default:"0.25"`
	AdvanceSafeRatio     float64 `yaml:"advance_safe_ratio"     env:"SCHED_ADVANCE_SAFE_RATIO"     env-default:"0.15"`

	// FreeDays is parsed from FreeDaysRaw during validation.
	FreeDays map[time.Weekday]bool `yaml:"-" env:"-"`
}

// TasksConfig sizes the background task runner.
type TasksConfig struct {
	QueueSize    int `yaml:"queue_size"    env:"TASKS_QUEUE_SIZE"    env-default:"16"`
	KeepFinished int `yaml:"keep_finished" env:"TASKS_KEEP_FINISHED" env-default:"100"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" env:"METRICS_ENABLED" env-default:"true"`
	Path    string `yaml:"path"    env:"METRICS_PATH"    env-default:"/metrics"`
}

// RateLimitConfig caps requests per client for the operator API.
type RateLimitConfig struct {
	PerMinute       int           `yaml:"per_minute"       env:"RATE_LIMIT_PER_MINUTE"       env-default:"120"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}
