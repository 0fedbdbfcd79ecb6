//go:generate mockgen -source=session.go -destination=mock_session.go -package=middlewares

package middlewares

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-book-library/internal/logger"
	"github.com/sbilibin2017/gw-book-library/internal/models"
	"github.com/sbilibin2017/gw-book-library/internal/policy"
	"github.com/sbilibin2017/gw-book-library/internal/services"
)

// ClaimsReader resolves a session token into claims.
type ClaimsReader interface {
	Read(ctx context.Context, token string) (*models.SessionClaims, error)
}

// TokenGetter extracts the session token from a request.
type TokenGetter interface {
	Token(r *http.Request) string
}

// Flasher queues a one-shot message for the next page.
type Flasher interface {
	AddFlash(w http.ResponseWriter, r *http.Request, flash models.Flash) error
}

type claimsKey struct{}

// WithClaims returns a copy of ctx carrying claims.
func WithClaims(ctx context.Context, claims *models.SessionClaims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

// ClaimsFromContext returns the claims of the active session, or nil for anonymous requests.
func ClaimsFromContext(ctx context.Context) *models.SessionClaims {
	claims, _ := ctx.Value(claimsKey{}).(*models.SessionClaims)
	return claims
}

// SessionMiddleware reads the session token and, when it names an active
// session, attaches its claims to the request context. Requests without an
// active session continue anonymously.
func SessionMiddleware(sessions ClaimsReader, tokens TokenGetter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := tokens.Token(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := sessions.Read(r.Context(), token)
			if err != nil {
				if !errors.Is(err, services.ErrSessionNotFound) {
					logger.Log.Errorw("failed to read session", "request_id", RequestIDFromContext(r.Context()), "err", err)
				}
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

// RequireAction refuses the request unless the session may perform action.
// A refused request gets the denial message as a flash and a redirect.
func RequireAction(action policy.Action, flasher Flasher) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			err := policy.Authorize(ClaimsFromContext(r.Context()), action, nil)
			if err == nil {
				next.ServeHTTP(w, r)
				return
			}

			var denial *policy.Denial
			if !errors.As(err, &denial) {
				logger.Log.Errorw("authorization failed", "action", action.String(), "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			logger.Log.Infow("access denied",
				"request_id", RequestIDFromContext(r.Context()),
				"action", action.String(),
				"reason", denial.Reason.Error(),
			)
			if err := flasher.AddFlash(w, r, denial.Flash()); err != nil {
				logger.Log.Errorw("failed to save flash", "err", err)
			}
			http.Redirect(w, r, denial.Redirect, http.StatusSeeOther)
		})
	}
}
