package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// TodoItem is a single task owned by exactly one user.
type TodoItem struct {
	// ID is the globally unique identifier of the item. IDs share a single
	// namespace across all users, so ownership is always checked separately.
	ID uuid.UUID `json:"id"`

	// UserID is the owner of the item. It is stamped from the authenticated
	// session at creation time, is never client-supplied, and never changes.
	UserID uuid.UUID `json:"user_id"`

	// Description is the task text. Non-empty at creation.
	Description string `json:"description"`

	// Completed starts false and is monotonically settable to true via the
	// complete operation. There is no way to un-complete an item.
	Completed bool `json:"completed"`

	// CreatedAt is set once at insert and never changes afterwards.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the TodoItem model.
func (t TodoItem) TableName() string {
	return "todo_items"
}

// TodoFilter is a conjunction of optional predicates applied to list and
// count operations. A nil field means "no constraint on that field".
type TodoFilter struct {
	// Description, when set, requires a case-insensitive substring match.
	Description *string

	// Completed, when set, requires an exact match of the completion flag.
	Completed *bool
}

// Matches reports whether item satisfies every set predicate of the filter.
// Ownership is not part of the filter; callers scope by owner first.
func (f TodoFilter) Matches(item TodoItem) bool {
	if f.Description != nil &&
		!strings.Contains(strings.ToLower(item.Description), strings.ToLower(*f.Description)) {
		return false
	}

	if f.Completed != nil && item.Completed != *f.Completed {
		return false
	}

	return true
}
