package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the unique identifier of the user, assigned server-side
	// at registration time and never reused.
	UserID uuid.UUID `json:"id"`

	// Username is the unique, case-sensitive login identifier.
	Username string `json:"username"`

	// PasswordDigest stores the bcrypt digest of the user's password.
	// This value MUST be a derived value, never plaintext, and is never
	// serialized outward.
	PasswordDigest string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Info returns the public projection of the user: everything except the
// credential digest.
func (u User) Info() UserInfo {
	return UserInfo{
		ID:        u.UserID,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
	}
}

// UserInfo is the outward-facing representation of a user account.
// It deliberately has no credential fields.
type UserInfo struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}
