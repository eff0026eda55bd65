package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/models"
)

// memoryTodoRepository is the in-memory implementation of [TodoRepository]:
// a map of item ID to item behind a read/write mutex.
//
// Reads (get, list, count) run concurrently under the read lock; writes
// (create, complete, delete) take the write lock, so no reader ever observes
// a half-written item and no write is lost. Item values are copied in and
// out of the map, never shared by pointer.
type memoryTodoRepository struct {
	logger *logger.Logger

	mu    sync.RWMutex
	items map[uuid.UUID]models.TodoItem
}

// NewMemoryTodoRepository constructs an empty in-memory [TodoRepository].
func NewMemoryTodoRepository(logger *logger.Logger) TodoRepository {
	logger.Debug().Msg("creating in-memory todo repository")
	return &memoryTodoRepository{
		logger: logger,
		items:  make(map[uuid.UUID]models.TodoItem),
	}
}

// lookupOwned returns the item only when it exists AND belongs to userID.
// Existence and ownership are one predicate on purpose: no code path can
// distinguish a foreign item from an absent one.
//
// Callers must hold at least the read lock.
func (r *memoryTodoRepository) lookupOwned(userID, id uuid.UUID) (models.TodoItem, bool) {
	item, ok := r.items[id]
	if !ok || item.UserID != userID {
		return models.TodoItem{}, false
	}

	return item, true
}

func (r *memoryTodoRepository) CreateTodo(ctx context.Context, userID uuid.UUID, description string) (models.TodoItem, error) {
	item := models.TodoItem{
		ID:          uuid.New(),
		UserID:      userID,
		Description: description,
		Completed:   false,
		CreatedAt:   time.Now(),
	}

	r.mu.Lock()
	r.items[item.ID] = item
	r.mu.Unlock()

	return item, nil
}

func (r *memoryTodoRepository) GetTodo(ctx context.Context, userID, id uuid.UUID) (models.TodoItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.lookupOwned(userID, id)
	if !ok {
		return models.TodoItem{}, ErrTodoNotFound
	}

	return item, nil
}

// CompleteTodo sets Completed=true. Completing an already-completed item is a
// no-op success. Two concurrent completions of the same item are safe: both
// end with Completed=true.
func (r *memoryTodoRepository) CompleteTodo(ctx context.Context, userID, id uuid.UUID) (models.TodoItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.lookupOwned(userID, id)
	if !ok {
		return models.TodoItem{}, ErrTodoNotFound
	}

	item.Completed = true
	r.items[id] = item

	return item, nil
}

func (r *memoryTodoRepository) DeleteTodo(ctx context.Context, userID, id uuid.UUID) error {
	log := logger.FromContext(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.lookupOwned(userID, id); !ok {
		return ErrTodoNotFound
	}

	delete(r.items, id)
	log.Debug().Str("id", id.String()).Msg("todo item deleted")

	return nil
}

func (r *memoryTodoRepository) ListTodos(ctx context.Context, userID uuid.UUID, filter models.TodoFilter) ([]models.TodoItem, error) {
	r.mu.RLock()

	matches := make([]models.TodoItem, 0)
	for _, item := range r.items {
		if item.UserID == userID && filter.Matches(item) {
			matches = append(matches, item)
		}
	}

	r.mu.RUnlock()

	// newest first, same ordering as the SQL-backed repository
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].CreatedAt.After(matches[j].CreatedAt)
	})

	return matches, nil
}

func (r *memoryTodoRepository) CountTodos(ctx context.Context, userID uuid.UUID, filter models.TodoFilter) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, item := range r.items {
		if item.UserID == userID && filter.Matches(item) {
			count++
		}
	}

	return count, nil
}
