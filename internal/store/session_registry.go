package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
)

// sessionRegistry is the in-memory implementation of [SessionRegistry]:
// a token-to-session map behind a read/write mutex.
//
// Resolve runs under the read lock so authenticated requests do not serialize
// on each other; Create and Revoke take the write lock. The registry is
// process-wide state with no teardown: it is created once at startup and
// lives for the process lifetime. There is no expiry sweep; sessions persist
// until logout.
type sessionRegistry struct {
	logger *logger.Logger

	mu       sync.RWMutex
	sessions map[string]models.Session
}

// NewSessionRegistry constructs an empty in-memory [SessionRegistry].
func NewSessionRegistry(logger *logger.Logger) SessionRegistry {
	logger.Debug().Msg("creating session registry")
	return &sessionRegistry{
		logger:   logger,
		sessions: make(map[string]models.Session),
	}
}

// Create generates a fresh opaque token and binds it to userID. Multiple
// concurrent sessions per user are permitted: an existing binding for the
// same user is left untouched.
func (r *sessionRegistry) Create(ctx context.Context, userID uuid.UUID) (models.Session, error) {
	log := logger.FromContext(ctx)

	token, err := utils.NewSessionToken()
	if err != nil {
		log.Err(err).Msg("session token generation failed")
		return models.Session{}, err
	}

	session := models.Session{
		Token:     token,
		UserID:    userID,
		CreatedAt: time.Now(),
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// 256 bits of entropy make this unreachable in practice; it is still
	// checked so a collision can never silently hijack a live session.
	if _, exists := r.sessions[token]; exists {
		log.Error().Msg("generated session token collides with a live session")
		return models.Session{}, ErrTokenCollision
	}

	r.sessions[token] = session

	return session, nil
}

// Resolve is a pure concurrent read: it never blocks other readers and never
// mutates the registry.
func (r *sessionRegistry) Resolve(ctx context.Context, token string) (models.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[token]
	if !ok {
		return models.Session{}, ErrSessionNotFound
	}

	return session, nil
}

// Revoke deletes the binding. Once removed, the token can never resolve
// again; revoking an absent token is a no-op so logout stays idempotent.
func (r *sessionRegistry) Revoke(ctx context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, token)

	return nil
}
