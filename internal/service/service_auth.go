package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and session
// lifecycle using a UserRepository for persistence, bcrypt for password
// hashing, and a SessionRegistry for opaque token storage.
type authService struct {
	// users is the data-access layer used to create and look up accounts.
	users store.UserRepository

	// sessions holds the live session tokens. Revoking a token here is
	// immediate: the very next Authenticate call will not resolve it.
	sessions store.SessionRegistry

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given user
// repository and session registry.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(users store.UserRepository, sessions store.SessionRegistry, logger *logger.Logger) AuthService {
	return &authService{
		users:    users,
		sessions: sessions,
		logger:   logger,
	}
}

// RegisterUser creates a new user account.
//
// It validates that both username and password are non-empty, derives a
// bcrypt digest from the password, and delegates persistence to the
// UserRepository. The plaintext password never reaches the storage layer.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if username or password is empty.
//   - A wrapped storage error if the repository call fails (e.g. username
//     already taken — see store.ErrUsernameAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		log.Error().Str("username", username).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	digest, err := utils.HashPassword(password)
	if err != nil {
		log.Err(err).Str("username", username).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrHashingPassword, err)
	}

	registeredUser, err := a.users.CreateUser(ctx, models.User{
		Username:       username,
		PasswordDigest: digest,
	})
	if err != nil {
		log.Err(err).Str("username", username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user and opens a new session.
//
// It looks up the account by username, verifies the password against the
// stored bcrypt digest, and registers a fresh opaque session token. Each
// successful login produces an independent session: logging in twice yields
// two tokens that are revoked separately.
//
// Returns the new session and the authenticated user record or:
//   - ErrInvalidDataProvided if username or password is empty.
//   - A wrapped storage error if the lookup fails (e.g. unknown username —
//     see store.ErrNoUserWasFound).
//   - ErrWrongPassword if the password does not match the stored digest.
func (a *authService) Login(ctx context.Context, username, password string) (models.Session, models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		log.Error().Str("username", username).Msg("invalid user data provided")
		return models.Session{}, models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.users.FindUserByUsername(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.Session{}, models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !utils.VerifyPassword(password, foundUser.PasswordDigest) {
		log.Error().
			Str("username", foundUser.Username).
			Msg("wrong password")
		return models.Session{}, models.User{}, ErrWrongPassword
	}

	session, err := a.sessions.Create(ctx, foundUser.UserID)
	if err != nil {
		log.Err(err).Str("username", foundUser.Username).Msg("session creation failed")
		return models.Session{}, models.User{}, fmt.Errorf("session creation failed: %w", err)
	}

	return session, foundUser, nil
}

// Logout revokes the session identified by token. Revoking a token that has
// already been revoked, or never existed, is not an error.
func (a *authService) Logout(ctx context.Context, token string) error {
	return a.sessions.Revoke(ctx, token)
}

// Authenticate resolves an opaque session token to the owning user's ID.
//
// Returns store.ErrSessionNotFound for unknown and revoked tokens alike; the
// registry keeps no tombstones, so the two cases are indistinguishable.
func (a *authService) Authenticate(ctx context.Context, token string) (uuid.UUID, error) {
	session, err := a.sessions.Resolve(ctx, token)
	if err != nil {
		return uuid.Nil, err
	}

	return session.UserID, nil
}
