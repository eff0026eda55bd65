package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/models"
)

// todoService is the concrete implementation of TodoService. Ownership
// checks live in the repository layer; this service only validates input
// and delegates, so every method requires an already-authenticated userID.
type todoService struct {
	todos  store.TodoRepository
	logger *logger.Logger
}

// NewTodoService constructs a TodoService backed by the given repository.
func NewTodoService(todos store.TodoRepository, logger *logger.Logger) TodoService {
	return &todoService{
		todos:  todos,
		logger: logger,
	}
}

// AddTodo creates a new task item owned by userID.
//
// Returns ErrInvalidDataProvided if description is empty.
func (s *todoService) AddTodo(ctx context.Context, userID uuid.UUID, description string) (models.TodoItem, error) {
	log := logger.FromContext(ctx)

	if description == "" {
		log.Error().Str("user_id", userID.String()).Msg("empty todo description")
		return models.TodoItem{}, ErrInvalidDataProvided
	}

	item, err := s.todos.CreateTodo(ctx, userID, description)
	if err != nil {
		log.Err(err).Str("user_id", userID.String()).Msg("todo creation ended with error")
		return models.TodoItem{}, fmt.Errorf("todo creation ended with error: %w", err)
	}

	return item, nil
}

func (s *todoService) GetTodo(ctx context.Context, userID, id uuid.UUID) (models.TodoItem, error) {
	return s.todos.GetTodo(ctx, userID, id)
}

func (s *todoService) CompleteTodo(ctx context.Context, userID, id uuid.UUID) (models.TodoItem, error) {
	return s.todos.CompleteTodo(ctx, userID, id)
}

func (s *todoService) DeleteTodo(ctx context.Context, userID, id uuid.UUID) error {
	return s.todos.DeleteTodo(ctx, userID, id)
}

func (s *todoService) ListTodos(ctx context.Context, userID uuid.UUID, filter models.TodoFilter) ([]models.TodoItem, error) {
	return s.todos.ListTodos(ctx, userID, filter)
}

func (s *todoService) CountTodos(ctx context.Context, userID uuid.UUID, filter models.TodoFilter) (int64, error) {
	return s.todos.CountTodos(ctx, userID, filter)
}
