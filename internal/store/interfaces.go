package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-task-keeper/models"
)

// UserRepository is the credential store: it owns user records and enforces
// username uniqueness, including under concurrent registration attempts.
type UserRepository interface {
	// CreateUser persists a new user and returns it with server-assigned
	// fields (UserID, CreatedAt) populated. The uniqueness check and the
	// insert are atomic: of two concurrent registrations with the same
	// username exactly one succeeds, the other observes
	// ErrUsernameAlreadyExists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername returns the user with the given username or
	// ErrNoUserWasFound.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// SessionRegistry maps opaque session tokens to user identities. Bindings are
// created on login, queried on every authenticated request, and deleted on
// logout. A removed token must never resolve again.
type SessionRegistry interface {
	// Create generates an unguessable token, binds it to userID and returns
	// the new session. A token collision with a live session is reported as
	// ErrTokenCollision.
	Create(ctx context.Context, userID uuid.UUID) (models.Session, error)

	// Resolve returns the session bound to token or ErrSessionNotFound.
	// It is a pure concurrent read.
	Resolve(ctx context.Context, token string) (models.Session, error)

	// Revoke removes the binding if present. Revoking an absent token is a
	// no-op: logout is idempotent.
	Revoke(ctx context.Context, token string) error
}

// TodoRepository is the concurrent collection of task items. Every operation
// is scoped by the owner identity; an item owned by somebody else behaves
// exactly as if it did not exist.
type TodoRepository interface {
	// CreateTodo inserts a fresh item for userID with Completed=false and a
	// server-assigned ID and CreatedAt, and returns the stored item.
	CreateTodo(ctx context.Context, userID uuid.UUID, description string) (models.TodoItem, error)

	// GetTodo returns the item or ErrTodoNotFound when it is absent or
	// foreign-owned.
	GetTodo(ctx context.Context, userID, id uuid.UUID) (models.TodoItem, error)

	// CompleteTodo idempotently sets Completed=true and returns the updated
	// item under the same owner-blind not-found rule.
	CompleteTodo(ctx context.Context, userID, id uuid.UUID) (models.TodoItem, error)

	// DeleteTodo removes the item or returns ErrTodoNotFound when it is
	// absent or foreign-owned.
	DeleteTodo(ctx context.Context, userID, id uuid.UUID) error

	// ListTodos returns the caller's items matching filter, newest first by
	// CreatedAt.
	ListTodos(ctx context.Context, userID uuid.UUID, filter models.TodoFilter) ([]models.TodoItem, error)

	// CountTodos returns the number of the caller's items matching filter,
	// with the same semantics as ListTodos.
	CountTodos(ctx context.Context, userID uuid.UUID, filter models.TodoFilter) (int64, error)
}
