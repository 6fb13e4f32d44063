/*
Package session contains the in-memory session store backing cookie authentication.

This file defines the Session struct, the server-side record a session cookie
refers to. The cookie itself carries only the session ID; everything here
stays on the server.
*/
package session

import "time"

// TTL is the lifetime of a session. The deadline is fixed at creation and is
// not extended by activity; only a fresh login or signup issues a new deadline.
const TTL = 7 * 24 * time.Hour

// Session represents one authenticated login.
type Session struct {
	// ID is the unique identifier for the session, referenced by the cookie.
	ID string

	// UserID is the account this session authenticates.
	UserID int64

	// Username is the account name, kept here so request handling does not
	// need a user lookup on every call.
	Username string

	// CreatedAt records when the session was issued.
	CreatedAt time.Time

	// ExpiresAt is the instant the session stops being valid.
	ExpiresAt time.Time
}
