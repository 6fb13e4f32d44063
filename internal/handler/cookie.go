package handler

import (
	"net/http"

	"pinboard/internal/app/session"
	"pinboard/internal/configs"
	"pinboard/internal/pkg/auth/token"
	"pinboard/internal/pkg/errs"
	"pinboard/internal/pkg/logx"
)

// SessionCookieName is the fixed name of the session cookie.
const SessionCookieName = "pinboard_session"

// setSessionCookie signs the session ID and writes it as the session cookie.
// The cookie lives exactly as long as the session it refers to.
func setSessionCookie(w http.ResponseWriter, cfg *configs.AppConfig, s *session.Session) *errs.CustomError {
	signed, err := token.Generate(s.ID, cfg.SessionSecret, session.TTL)
	if err != nil {
		logx.Error(err, "failed to sign session cookie", "session_id", s.ID)
		return errs.NewError(errs.ErrUnknown)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    signed,
		Path:     "/",
		MaxAge:   int(session.TTL.Seconds()),
		HttpOnly: true,
		Secure:   cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

// clearSessionCookie expires the session cookie on the client.
func clearSessionCookie(w http.ResponseWriter, cfg *configs.AppConfig) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}
