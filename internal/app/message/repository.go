/*
This file defines the Repository struct, which provides access to the messages table.
*/
package message

import (
	"context"
	"errors"
	"fmt"

	"pinboard/internal/app/db"
)

// ErrNotFound is returned by mutations whose target row no longer exists.
// A row can disappear between an ownership check and the write, so mutations
// verify the affected-row count instead of trusting the earlier read.
var ErrNotFound = errors.New("message not found")

// Repository provides message persistence over the messages table.
type Repository struct {
	pool db.DBTX
}

// NewRepository creates a new Repository backed by the given pool.
func NewRepository(pool db.DBTX) *Repository {
	return &Repository{pool: pool}
}

// Create inserts a new message owned by the given account and returns it with
// its assigned ID and timestamp.
func (r *Repository) Create(ctx context.Context, authorName, body string, ownerUserID int64) (*Message, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO messages (name, message, user_id)
		 VALUES ($1, $2, $3)
		 RETURNING id, name, message, user_id, timestamp`,
		authorName, body, ownerUserID)

	var m Message
	if err := row.Scan(&m.ID, &m.AuthorName, &m.Body, &m.OwnerUserID, &m.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	return &m, nil
}

// ListAll returns every message, newest first.
// It returns an empty slice rather than nil when the board is empty.
func (r *Repository) ListAll(ctx context.Context) ([]Message, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, message, user_id, timestamp
		 FROM messages
		 ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	messages := []Message{}
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.ID, &m.AuthorName, &m.Body, &m.OwnerUserID, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan message row: %w", err)
		}
		messages = append(messages, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate messages: %w", err)
	}

	return messages, nil
}

// GetByID fetches a single message.
// It returns (nil, nil) when no message has the given ID.
func (r *Repository) GetByID(ctx context.Context, id int64) (*Message, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, name, message, user_id, timestamp
		 FROM messages
		 WHERE id = $1`,
		id)

	var m Message
	if err := row.Scan(&m.ID, &m.AuthorName, &m.Body, &m.OwnerUserID, &m.CreatedAt); err != nil {
		if db.IsNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch message %d: %w", id, err)
	}

	return &m, nil
}

// UpdateBody replaces the text of the message with the given ID.
// It returns ErrNotFound when the row no longer exists.
func (r *Repository) UpdateBody(ctx context.Context, id int64, body string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE messages SET message = $1 WHERE id = $2`,
		body, id)
	if err != nil {
		return fmt.Errorf("failed to update message %d: %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// DeleteByID removes the message with the given ID.
// It returns ErrNotFound when the row no longer exists.
func (r *Repository) DeleteByID(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM messages WHERE id = $1`,
		id)
	if err != nil {
		return fmt.Errorf("failed to delete message %d: %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
