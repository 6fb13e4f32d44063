/*
This file defines the main Router, applying middleware like logging, CORS, and
metrics before delegating requests to the specific handlers.
*/
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"pinboard/internal/pkg/logx"
	"pinboard/internal/pkg/resp"
)

// Router sets up the main HTTP routing table (chi.Router) for the application.
// It configures CORS for cookie-carrying requests and applies global and
// per-route middleware.
func Router(deps *AppDeps) http.Handler {
	r := chi.NewRouter()

	allowedOrigins := make(map[string]struct{})
	for _, origin := range deps.Config.AllowedOrigins {
		allowedOrigins[origin] = struct{}{}
	}

	// Credentialed CORS must echo a concrete origin; a wildcard response
	// header makes browsers drop the cookie. Development allows any origin,
	// production only the configured list.
	c := cors.New(cors.Options{
		AllowOriginFunc: func(origin string) bool {
			if deps.Config.Environment == "development" {
				return true
			}

			_, ok := allowedOrigins[origin]
			return ok
		},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		ExposedHeaders:   []string{},
		AllowCredentials: true,
		MaxAge:           300,
	})
	r.Use(c.Handler)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logx.RequestLogger())
	r.Use(deps.Metrics.Middleware())
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		data := map[string]string{
			"status":  "ok",
			"service": "Pinboard Server",
		}
		resp.RespondSuccess(w, r, data)
	})

	r.Method(http.MethodGet, "/metrics", deps.Metrics.Handler())

	r.Get("/", HandleLanding())

	r.Group(func(app chi.Router) {
		app.Use(SessionResolverMiddleware(deps))

		app.Post("/signup", HandleSignup(deps))
		app.Post("/login", HandleLogin(deps))
		app.Post("/logout", HandleLogout(deps))
		app.Get("/me", HandleMe(deps))
		app.Get("/messages", HandleListMessages(deps))

		app.Group(func(priv chi.Router) {
			priv.Use(RequireLogin)

			priv.Post("/submit", HandleSubmitMessage(deps))
			priv.Post("/update", HandleUpdateMessage(deps))
			priv.Post("/delete", HandleDeleteMessage(deps))
		})
	})

	return r
}
