package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/myenglish-scheduler/internal/domain"
	"github.com/heartmarshall/myenglish-scheduler/pkg/ctxutil"
)

//go:generate moq -out token_validator_mock_test.go -pkg middleware . tokenValidator

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, string, error)
}

// Auth puts the caller of a valid bearer token into the context. Requests
// without a token pass through anonymous; handlers decide what they allow.
func Auth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}
			callerID, role, err := validator.ValidateToken(r.Context(), token)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			ctx := ctxutil.WithCaller(r.Context(), callerID, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireCaller returns domain.ErrUnauthorized for anonymous requests.
func RequireCaller(ctx context.Context) error {
	if _, ok := ctxutil.CallerIDFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}
	return nil
}

// RequireOperator returns domain.ErrUnauthorized for anonymous requests and
// domain.ErrForbidden if the caller may not write to the collection.
// Use in REST handlers, not as HTTP middleware.
func RequireOperator(ctx context.Context) error {
	if err := RequireCaller(ctx); err != nil {
		return err
	}
	if !ctxutil.IsOperatorCtx(ctx) {
		return domain.ErrForbidden
	}
	return nil
}

func extractBearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
