/*
This file defines the Registry struct, which provides access to the users table.
Accounts are append-only: usernames never change and accounts are never removed.
*/
package user

import (
	"context"
	"fmt"

	"pinboard/internal/app/db"
)

// Registry provides account persistence over the users table.
type Registry struct {
	pool db.DBTX
}

// NewRegistry creates a new Registry backed by the given pool.
func NewRegistry(pool db.DBTX) *Registry {
	return &Registry{pool: pool}
}

// Create inserts a new account and returns it with its assigned ID.
// A duplicate username surfaces as a unique-violation error from the driver;
// callers detect it with db.IsUniqueViolation.
func (r *Registry) Create(ctx context.Context, username, passwordHash string) (*User, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO users (username, password_hash)
		 VALUES ($1, $2)
		 RETURNING id, username, password_hash, created_at`,
		username, passwordHash)

	var u User
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to create user %q: %w", username, err)
	}

	return &u, nil
}

// FindByUsername fetches the account with the given username.
// The lookup is case-sensitive. It returns (nil, nil) when no account matches.
func (r *Registry) FindByUsername(ctx context.Context, username string) (*User, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, username, password_hash, created_at
		 FROM users
		 WHERE username = $1`,
		username)

	var u User
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt); err != nil {
		if db.IsNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch user %q: %w", username, err)
	}

	return &u, nil
}

// FindByID fetches the account with the given ID.
// It returns (nil, nil) when no account matches.
func (r *Registry) FindByID(ctx context.Context, id int64) (*User, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, username, password_hash, created_at
		 FROM users
		 WHERE id = $1`,
		id)

	var u User
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt); err != nil {
		if db.IsNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch user %d: %w", id, err)
	}

	return &u, nil
}
