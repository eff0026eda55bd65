package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
)

// Storages aggregates every persistence component of the application. It is
// built once at process start and injected into the service layer; nothing
// else in the codebase holds storage state.
type Storages struct {
	Users    UserRepository
	Todos    TodoRepository
	Sessions SessionRegistry
}

// NewStorages selects and wires the persistence backend.
//
// With an empty database DSN the application runs fully in memory. With a
// DSN set, users and todo items live in PostgreSQL (migrations are applied
// on startup) while the session registry stays in memory: sessions are
// ephemeral process-local state either way.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	if cfg.DB.DSN == "" {
		log.Info().Msg("no database DSN configured, using in-memory storages")
		return &Storages{
			Users:    NewMemoryUserRepository(log),
			Todos:    NewMemoryTodoRepository(log),
			Sessions: NewSessionRegistry(log),
		}, nil
	}

	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error creating postgres connection: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	return &Storages{
		Users:    NewUserRepository(db, log),
		Todos:    NewTodoRepository(db, log),
		Sessions: NewSessionRegistry(log),
	}, nil
}
