package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/models"
)

// todoRepository is the PostgreSQL-backed implementation of [TodoRepository].
// It executes all task-item operations against the "todo_items" table using
// the embedded [*DB] connection.
//
// Ownership is enforced in SQL: every point operation filters on
// `id AND user_id` in a single WHERE clause, so a foreign item and an absent
// item produce the same empty result — there is no code path that could tell
// them apart.
type todoRepository struct {
	*DB
	logger *logger.Logger
}

// NewTodoRepository constructs a [TodoRepository] backed by the provided
// database connection and logger.
func NewTodoRepository(db *DB, logger *logger.Logger) TodoRepository {
	logger.Debug().Msg("creating todo repository")
	return &todoRepository{
		DB:     db,
		logger: logger,
	}
}

// scanTodo scans one row in the [todoColumns] order.
func scanTodo(row interface{ Scan(...any) error }, item *models.TodoItem) error {
	return row.Scan(&item.ID, &item.UserID, &item.Description, &item.Completed, &item.CreatedAt)
}

func (r *todoRepository) CreateTodo(ctx context.Context, userID uuid.UUID, description string) (models.TodoItem, error) {
	log := logger.FromContext(ctx)

	var item models.TodoItem
	row := r.DB.QueryRowContext(ctx, createTodo, uuid.New(), userID, description)

	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "*todoRepository.CreateTodo").
			Str("user_id", userID.String()).
			Msg("failed to insert todo item")
		return models.TodoItem{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err := scanTodo(row, &item); err != nil {
		log.Err(err).Str("func", "*todoRepository.CreateTodo").Msg("failed to scan inserted todo item")
		return models.TodoItem{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return item, nil
}

func (r *todoRepository) GetTodo(ctx context.Context, userID, id uuid.UUID) (models.TodoItem, error) {
	log := logger.FromContext(ctx)

	var item models.TodoItem
	row := r.DB.QueryRowContext(ctx, getTodo, id, userID)

	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "*todoRepository.GetTodo").
			Str("user_id", userID.String()).
			Msg("failed to query todo item")
		return models.TodoItem{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err := scanTodo(row, &item); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.TodoItem{}, ErrTodoNotFound
		}

		log.Err(err).Str("func", "*todoRepository.GetTodo").Msg("failed to scan todo item")
		return models.TodoItem{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return item, nil
}

// CompleteTodo updates and returns the item in one round trip. The UPDATE is
// idempotent: completing an already-completed item rewrites TRUE over TRUE.
func (r *todoRepository) CompleteTodo(ctx context.Context, userID, id uuid.UUID) (models.TodoItem, error) {
	log := logger.FromContext(ctx)

	var item models.TodoItem
	row := r.DB.QueryRowContext(ctx, completeTodo, id, userID)

	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "*todoRepository.CompleteTodo").
			Str("user_id", userID.String()).
			Msg("failed to update todo item")
		return models.TodoItem{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err := scanTodo(row, &item); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.TodoItem{}, ErrTodoNotFound
		}

		log.Err(err).Str("func", "*todoRepository.CompleteTodo").Msg("failed to scan updated todo item")
		return models.TodoItem{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return item, nil
}

func (r *todoRepository) DeleteTodo(ctx context.Context, userID, id uuid.UUID) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, deleteTodo, id, userID)
	if err != nil {
		log.Err(err).
			Str("func", "*todoRepository.DeleteTodo").
			Str("user_id", userID.String()).
			Msg("failed to delete todo item")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.DeleteTodo").Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if affected == 0 {
		return ErrTodoNotFound
	}

	return nil
}

func (r *todoRepository) ListTodos(ctx context.Context, userID uuid.UUID, filter models.TodoFilter) ([]models.TodoItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListTodosQuery(userID, filter)
	if err != nil {
		log.Err(err).
			Str("func", "*todoRepository.ListTodos").
			Str("user_id", userID.String()).
			Msg("failed to build list query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*todoRepository.ListTodos").
			Str("user_id", userID.String()).
			Msg("failed to execute list query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.TodoItem, 0)

	for rows.Next() {
		var item models.TodoItem
		if scanErr := scanTodo(rows, &item); scanErr != nil {
			log.Err(scanErr).
				Str("func", "*todoRepository.ListTodos").
				Str("user_id", userID.String()).
				Msg("failed to scan todo item row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*todoRepository.ListTodos").
			Str("user_id", userID.String()).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

func (r *todoRepository) CountTodos(ctx context.Context, userID uuid.UUID, filter models.TodoFilter) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountTodosQuery(userID, filter)
	if err != nil {
		log.Err(err).
			Str("func", "*todoRepository.CountTodos").
			Str("user_id", userID.String()).
			Msg("failed to build count query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	row := r.DB.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&count); err != nil {
		log.Err(err).
			Str("func", "*todoRepository.CountTodos").
			Str("user_id", userID.String()).
			Msg("failed to scan count")
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return count, nil
}
