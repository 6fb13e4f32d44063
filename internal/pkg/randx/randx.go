/*
Package randx provides functions for generating unique identifiers.

It is primarily used to generate standard UUID session IDs and to validate
identifiers received from clients before they are used for lookups.
*/
package randx

import (
	"github.com/google/uuid"
)

// SessionID generates a standard UUID v4 string to serve as a unique identifier for a session.
func SessionID() string {
	return uuid.New().String()
}

// IsValidSessionID checks if the given string is a well-formed session ID.
func IsValidSessionID(id string) bool {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return false
	}

	return parsed.Version() == 4
}
