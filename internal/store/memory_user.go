package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/models"
)

// memoryUserRepository is the in-memory implementation of [UserRepository].
//
// A single mutex guards the username map: the uniqueness check and the insert
// happen under one critical section, so concurrent registrations with the
// same username cannot both succeed.
type memoryUserRepository struct {
	logger *logger.Logger

	mu         sync.RWMutex
	byUsername map[string]models.User
}

// NewMemoryUserRepository constructs an empty in-memory [UserRepository].
func NewMemoryUserRepository(logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating in-memory user repository")
	return &memoryUserRepository{
		logger:     logger,
		byUsername: make(map[string]models.User),
	}
}

// CreateUser atomically checks username uniqueness and inserts the record.
// The UserID and CreatedAt fields are assigned here; whatever the caller put
// in them is ignored.
func (r *memoryUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byUsername[user.Username]; exists {
		log.Debug().Str("username", user.Username).Msg("registration rejected: username taken")
		return models.User{}, ErrUsernameAlreadyExists
	}

	user.UserID = uuid.New()
	user.CreatedAt = time.Now()
	r.byUsername[user.Username] = user

	return user, nil
}

// FindUserByUsername looks the record up under a read lock. Lookups never
// block each other.
func (r *memoryUserRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byUsername[username]
	if !ok {
		return models.User{}, ErrNoUserWasFound
	}

	return user, nil
}
