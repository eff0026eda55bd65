// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-task-keeper/models"
)

const (
	createUser = `INSERT INTO users (id, username, password_digest)
    VALUES ($1, $2, $3)
    RETURNING id, username, password_digest, created_at;`

	findUserByUsername = `SELECT id, username, password_digest, created_at
    FROM users
    WHERE username = $1;`

	createTodo = `INSERT INTO todo_items (id, user_id, description)
    VALUES ($1, $2, $3)
    RETURNING id, user_id, description, completed, created_at;`

	getTodo = `SELECT id, user_id, description, completed, created_at
    FROM todo_items
    WHERE id = $1 AND user_id = $2;`

	completeTodo = `UPDATE todo_items
    SET completed = TRUE
    WHERE id = $1 AND user_id = $2
    RETURNING id, user_id, description, completed, created_at;`

	deleteTodo = `DELETE FROM todo_items
    WHERE id = $1 AND user_id = $2;`
)

// todoColumns is the canonical column order scanned into models.TodoItem.
var todoColumns = []string{"id", "user_id", "description", "completed", "created_at"}

// todoFilterConditions translates a [models.TodoFilter] plus the mandatory
// owner scope into squirrel predicates. The user_id condition is always
// first: every filtered query is owner-scoped before anything else.
func todoFilterConditions(builder squirrel.SelectBuilder, userID uuid.UUID, filter models.TodoFilter) squirrel.SelectBuilder {
	builder = builder.Where(squirrel.Eq{"user_id": userID})

	if filter.Description != nil {
		builder = builder.Where(squirrel.ILike{"description": fmt.Sprintf("%%%s%%", *filter.Description)})
	}

	if filter.Completed != nil {
		builder = builder.Where(squirrel.Eq{"completed": *filter.Completed})
	}

	return builder
}

// buildListTodosQuery builds the filtered SELECT for ListTodos: owner scope,
// optional description/completed predicates, newest first.
func buildListTodosQuery(userID uuid.UUID, filter models.TodoFilter) (string, []any, error) {
	builder := squirrel.
		Select(todoColumns...).
		From("todo_items").
		PlaceholderFormat(squirrel.Dollar)

	builder = todoFilterConditions(builder, userID, filter)

	return builder.OrderBy("created_at DESC").ToSql()
}

// buildCountTodosQuery builds the filtered COUNT for CountTodos with the
// same predicate semantics as buildListTodosQuery.
func buildCountTodosQuery(userID uuid.UUID, filter models.TodoFilter) (string, []any, error) {
	builder := squirrel.
		Select("COUNT(*)").
		From("todo_items").
		PlaceholderFormat(squirrel.Dollar)

	builder = todoFilterConditions(builder, userID, filter)

	return builder.ToSql()
}
