package handler

import (
	"context"
	"net/http"

	"pinboard/internal/app/session"
	"pinboard/internal/pkg/auth/token"
	"pinboard/internal/pkg/errs"
	"pinboard/internal/pkg/logx"
	"pinboard/internal/pkg/randx"
	"pinboard/internal/pkg/resp"
)

// Define Context Key for storing the resolved session, preventing key collisions with other packages.
type contextKey string

const (
	// ContextSessionKey is the key used to store the resolved *session.Session in the request Context.
	ContextSessionKey contextKey = "session_identity"
)

// SessionResolverMiddleware attempts to read and validate the session cookie.
// It injects the resolved session into the Context upon success. It does NOT
// interrupt the request (no 401 response) on a missing, invalid, or expired
// cookie, treating the visitor as anonymous instead.
func SessionResolverMiddleware(deps *AppDeps) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil {
				// Cookie is missing. Treat as anonymous visitor and continue.
				next.ServeHTTP(w, r)
				return
			}

			sid, err := token.Parse(cookie.Value, deps.Config.SessionSecret)
			if err != nil {
				// Cookie exists but fails validation (expired, wrong signature).
				// We log the warning but treat the visitor as anonymous and continue.
				logx.Warn("Invalid or expired session cookie, treating as anonymous", "error", err)
				next.ServeHTTP(w, r)
				return
			}

			if !randx.IsValidSessionID(sid) {
				logx.Warn("Malformed session ID in cookie, treating as anonymous")
				next.ServeHTTP(w, r)
				return
			}

			s := deps.Sessions.Resolve(sid)
			if s == nil {
				// Signed cookie for a session that no longer exists.
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), ContextSessionKey, s)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSessionFromContext safely extracts the resolved session from the request Context.
// In routes behind SessionResolverMiddleware, a nil return means the visitor is anonymous.
func GetSessionFromContext(r *http.Request) *session.Session {
	s, ok := r.Context().Value(ContextSessionKey).(*session.Session)

	if !ok {
		return nil
	}

	return s
}

// RequireLogin rejects requests that carry no live session.
// It is applied to the message mutation routes only; reads stay public.
func RequireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if GetSessionFromContext(r) == nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnauthorized))
			return
		}

		next.ServeHTTP(w, r)
	})
}
