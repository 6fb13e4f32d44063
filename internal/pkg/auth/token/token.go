package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenIssuer identifies the issuer of the session cookie token.
const TokenIssuer = "Pinboard-Server"

// ErrInvalidToken indicates the token failed signature, structure, or expiry validation.
var ErrInvalidToken = errors.New("invalid or expired token")

// Generate creates and signs a cookie token string carrying the given session ID.
func Generate(sessionID string, secretKey string, duration time.Duration) (string, error) {
	now := time.Now()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    TokenIssuer,
		},
		SessionID: sessionID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(secretKey))
}

// Parse validates the token string using the provided secretKey and returns
// the session ID it carries.
func Parse(tokenString string, secretKey string) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secretKey), nil
	})

	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	return claims.SessionID, nil
}
