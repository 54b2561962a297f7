package app

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/myenglish-scheduler/internal/auth"
	"github.com/heartmarshall/myenglish-scheduler/internal/config"
	"github.com/heartmarshall/myenglish-scheduler/internal/metrics"
	"github.com/heartmarshall/myenglish-scheduler/internal/transport/middleware"
	"github.com/heartmarshall/myenglish-scheduler/internal/transport/rest"
)

type routes struct {
	health     *rest.HealthHandler
	operations *rest.OperationsHandler
	tokens     *auth.JWTManager
	limiter    *middleware.RateLimiter
}

// newRouter mounts the probes and metrics without authentication and the
// operator API behind rate limiting and bearer tokens.
func newRouter(cfg *config.Config, log *slog.Logger, r routes) http.Handler {
	api := http.NewServeMux()
	r.operations.Register(api)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /live", r.health.Live)
	mux.HandleFunc("GET /ready", r.health.Ready)
	mux.HandleFunc("GET /health", r.health.Health)
	if cfg.Metrics.Enabled {
		mux.Handle("GET "+cfg.Metrics.Path, metrics.Handler())
	}
	mux.Handle("/api/", middleware.Chain(
		r.limiter.Limit(cfg.RateLimit.PerMinute),
		middleware.Auth(r.tokens),
	)(api))

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(log),
		middleware.Logger(log),
		middleware.CORS(cfg.CORS),
	)(mux)
}
