/*
Package handler provides HTTP handler functions for account authentication and the message board.
*/
package handler

import (
	"errors"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"pinboard/internal/app/db"
	"pinboard/internal/pkg/auth/token"
	"pinboard/internal/pkg/credential"
	"pinboard/internal/pkg/errs"
	"pinboard/internal/pkg/logx"
	"pinboard/internal/pkg/req"
	"pinboard/internal/pkg/resp"
)

type SignupInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// HandleSignup processes the request to create a new account and logs it in immediately.
// A signup from a browser that already holds a session simply replaces the cookie.
func HandleSignup(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input SignupInput
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		username := strings.TrimSpace(input.Username)
		if username == "" || input.Password == "" {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidInput))
			return
		}

		hashedPassword, err := credential.Hash(input.Password)
		if err != nil {
			if errors.Is(err, bcrypt.ErrPasswordTooLong) {
				resp.RespondError(w, r, errs.NewError(errs.ErrInvalidInput))
				return
			}

			logx.Error(err, "signup: failed to hash password")
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		newUser, err := deps.Users.Create(r.Context(), username, hashedPassword)
		if err != nil {
			if db.IsUniqueViolation(err) {
				logx.Warn("signup conflict: username already exists", "username", username)
				resp.RespondError(w, r, errs.NewError(errs.ErrDuplicateUsername))
				return
			}

			logx.Error(err, "signup: failed to create user in database")
			resp.RespondError(w, r, errs.NewError(errs.ErrStorage))
			return
		}

		s := deps.Sessions.Create(newUser.ID, newUser.Username)

		if customErr := setSessionCookie(w, deps.Config, s); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"username": newUser.Username,
		})
	}
}

type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// HandleLogin verifies account credentials and issues a fresh session cookie.
// Unknown usernames and wrong passwords answer with the same error so the
// response body cannot be used to enumerate accounts.
func HandleLogin(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input LoginInput
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		username := strings.TrimSpace(input.Username)

		dbUser, err := deps.Users.FindByUsername(r.Context(), username)
		if err != nil {
			logx.Error(err, "login: user fetch failed", "username", username)
			resp.RespondError(w, r, errs.NewError(errs.ErrStorage))
			return
		}

		if dbUser == nil {
			logx.Warn("login: unknown username", "username", username)
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidCredentials))
			return
		}

		if !credential.Verify(input.Password, dbUser.PasswordHash) {
			logx.Warn("login: password mismatch", "username", username)
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidCredentials))
			return
		}

		s := deps.Sessions.Create(dbUser.ID, dbUser.Username)

		if customErr := setSessionCookie(w, deps.Config, s); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"username": dbUser.Username,
		})
	}
}

// HandleLogout destroys the current session, if any, and clears the cookie.
// Logging out without a session is not an error; the response is the same.
func HandleLogout(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie(SessionCookieName); err == nil {
			if sid, err := token.Parse(cookie.Value, deps.Config.SessionSecret); err == nil {
				deps.Sessions.Destroy(sid)
			}
		}

		clearSessionCookie(w, deps.Config)

		resp.RespondSuccess(w, r, nil)
	}
}

// HandleMe reports the identity behind the current session.
// Anonymous visitors get a success response with no data rather than an error.
func HandleMe(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := GetSessionFromContext(r)
		if s == nil {
			resp.RespondSuccess(w, r, nil)
			return
		}

		dbUser, err := deps.Users.FindByID(r.Context(), s.UserID)
		if err != nil {
			logx.Error(err, "me: user fetch failed", "user_id", s.UserID)
			resp.RespondError(w, r, errs.NewError(errs.ErrStorage))
			return
		}

		if dbUser == nil {
			// Session points at an account the database no longer has.
			resp.RespondSuccess(w, r, nil)
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"id":       dbUser.ID,
			"username": dbUser.Username,
		})
	}
}
