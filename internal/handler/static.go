package handler

import (
	_ "embed"
	"net/http"
)

//go:embed static/index.html
var landingPage []byte

// HandleLanding serves the embedded landing page at the site root.
func HandleLanding() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(landingPage)
	}
}
