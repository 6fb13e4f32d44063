/*
Package credential provides password hashing and verification helpers.

It wraps bcrypt with a fixed work factor so that signup and login share
one hashing policy.
*/
package credential

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// Cost is the bcrypt work factor applied to new password hashes.
const Cost = 10

// ErrEmptyPassword is returned when attempting to hash an empty password.
var ErrEmptyPassword = errors.New("password cannot be empty")

// Hash produces a bcrypt hash of the password.
// Passwords longer than 72 bytes are rejected with bcrypt.ErrPasswordTooLong.
func Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), Cost)
	if err != nil {
		return "", err
	}

	return string(hashed), nil
}

// Verify reports whether the password matches the stored bcrypt hash.
// A malformed hash verifies as false rather than returning an error, so
// callers treat every mismatch the same way.
func Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
