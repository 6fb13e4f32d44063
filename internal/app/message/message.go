/*
Package message contains the board entry model, its persistence, and the
ownership checks guarding edits and deletions.
*/
package message

import (
	"strings"
	"time"
)

// Message represents one entry on the board.
// JSON tags match the wire format served to clients.
type Message struct {
	// ID is the unique identifier, assigned by the database in submission order.
	ID int64 `json:"id"`

	// AuthorName is the username recorded at submission time. It is a
	// snapshot, not a reference, and stays unchanged even though usernames
	// are immutable anyway.
	AuthorName string `json:"name"`

	// Body is the message text.
	Body string `json:"message"`

	// OwnerUserID links the message to the account that posted it.
	// It is nil for rows that predate ownership tracking; those messages
	// can never be edited or deleted.
	OwnerUserID *int64 `json:"user_id"`

	// CreatedAt records when the message was submitted.
	CreatedAt time.Time `json:"timestamp"`
}

// ValidateBody normalizes a submitted message body.
// It returns the trimmed text and false when nothing remains after trimming.
func ValidateBody(body string) (string, bool) {
	trimmed := strings.TrimSpace(body)
	return trimmed, trimmed != ""
}
