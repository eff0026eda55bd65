// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer access to a running task-keeper
// server.
//
// The primary abstraction is [ServerAdapter], which decouples callers from
// the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-task-keeper/models"
)

// ServerAdapter defines transport-agnostic communication with the
// task-keeper server. Implementations are responsible for serialisation,
// session token management, and mapping transport-level errors to the
// sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the session token that will be attached to all
	// subsequent authenticated requests. It is called automatically after a
	// successful Login.
	SetToken(token string)

	// Token returns the session token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account with the given credentials. Returns the
	// public account record, or a wrapped [ErrConflict] if the username is
	// already taken. Registration does not open a session; call Login next.
	Register(ctx context.Context, username, password string) (models.UserInfo, error)

	// Login authenticates with the server and stores the returned session
	// token via SetToken. Returns [ErrUnauthorized] (wrapped) for a wrong
	// password and [ErrNotFound] (wrapped) for an unknown username.
	Login(ctx context.Context, username, password string) (models.LoginResponse, error)

	// Logout revokes the current session on the server and clears the stored
	// token. Revoking an already-revoked session surfaces as
	// [ErrUnauthorized] because the token no longer resolves.
	Logout(ctx context.Context) error

	// CreateTodo adds a new task item owned by the authenticated user.
	CreateTodo(ctx context.Context, description string) (models.TodoItem, error)

	// GetTodo fetches a single task item by ID. Returns [ErrNotFound]
	// (wrapped) when the item does not exist or belongs to another user.
	GetTodo(ctx context.Context, id uuid.UUID) (models.TodoItem, error)

	// CompleteTodo marks a task item as completed and returns the updated
	// record. Completing an already-completed item succeeds unchanged.
	CompleteTodo(ctx context.Context, id uuid.UUID) (models.TodoItem, error)

	// DeleteTodo removes a task item. Returns [ErrNotFound] (wrapped) when
	// the item does not exist or belongs to another user.
	DeleteTodo(ctx context.Context, id uuid.UUID) error

	// ListTodos fetches the authenticated user's task items, newest first,
	// optionally narrowed by filter.
	ListTodos(ctx context.Context, filter models.TodoFilter) ([]models.TodoItem, error)

	// CountTodos returns the number of task items that ListTodos would
	// return for the same filter.
	CountTodos(ctx context.Context, filter models.TodoFilter) (int64, error)
}
