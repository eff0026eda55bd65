package models

import (
	"time"

	"github.com/google/uuid"
)

// Session is the ephemeral binding between an opaque token and a user
// identity. It is created on successful login and destroyed on logout.
// Multiple concurrent sessions per user are permitted: a new login does not
// invalidate earlier sessions.
type Session struct {
	// Token is the opaque, unguessable session identifier presented by the
	// client on every authenticated request. Never serialized as part of a
	// session payload; the login response carries it explicitly.
	Token string `json:"-"`

	// UserID is the owner of the session.
	UserID uuid.UUID `json:"user_id"`

	// CreatedAt is the moment the session was established.
	CreatedAt time.Time `json:"created_at"`
}
