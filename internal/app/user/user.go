/*
Package user contains the account model and the registry backing signup and login.

It defines the basic representation of an account within the board (the User
struct), used for passing identity information both internally and to clients.
*/
package user

import "time"

// User represents a registered account.
// The password hash never leaves the server; it is excluded from serialization.
type User struct {

	// ID is the unique identifier for the user, assigned by the database.
	ID int64 `json:"id"`

	// Username is the unique, case-sensitive name chosen at signup.
	// Usernames are immutable for the lifetime of the account.
	Username string `json:"username"`

	// PasswordHash is the bcrypt hash of the account password.
	PasswordHash string `json:"-"`

	// CreatedAt records when the account was created.
	CreatedAt time.Time `json:"createdAt"`
}
