package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-task-keeper/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, username, password string) (models.User, error)
	Login(ctx context.Context, username, password string) (models.Session, models.User, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (uuid.UUID, error)
}

type TodoService interface {
	AddTodo(ctx context.Context, userID uuid.UUID, description string) (models.TodoItem, error)
	GetTodo(ctx context.Context, userID, id uuid.UUID) (models.TodoItem, error)
	CompleteTodo(ctx context.Context, userID, id uuid.UUID) (models.TodoItem, error)
	DeleteTodo(ctx context.Context, userID, id uuid.UUID) error
	ListTodos(ctx context.Context, userID uuid.UUID, filter models.TodoFilter) ([]models.TodoItem, error)
	CountTodos(ctx context.Context, userID uuid.UUID, filter models.TodoFilter) (int64, error)
}
