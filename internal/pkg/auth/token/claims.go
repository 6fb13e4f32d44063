package token

import "github.com/golang-jwt/jwt/v5"

// Claims defines the signed contents of the session cookie issued by Pinboard.
// The cookie carries only an opaque session ID; all session state lives
// server-side, so the signature only has to make the cookie tamper-evident.
type Claims struct {
	// RegisteredClaims embeds the standard JWT fields such as ExpiresAt,
	// IssuedAt, and Issuer. These are crucial for token validity checks.
	jwt.RegisteredClaims

	// SessionID is the server-side session this cookie refers to.
	SessionID string `json:"sid"`
}
