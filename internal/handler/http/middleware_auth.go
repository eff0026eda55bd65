package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
)

// sessionCookieName is the cookie written by login and read as a fallback
// when the "Authorization" header is absent.
const sessionCookieName = "session_token"

// auth is an HTTP middleware that enforces session-based authentication.
//
// It extracts the opaque session token from the incoming request, resolves
// it via [service.AuthService.Authenticate], and — on success — stores the
// authenticated user's ID under [utils.UserIDCtxKey] and the raw token under
// [utils.SessionTokenCtxKey] before delegating to the next handler. The
// logout handler reads the token back to revoke exactly the session the
// caller presented.
//
// The token is taken from the "Authorization: Bearer <token>" header first;
// when the header is absent the middleware falls back to the session cookie.
//
// The middleware rejects requests with HTTP 401 Unauthorized in two cases,
// distinguished by the JSON error code:
//   - "missing_or_malformed_header" — no token could be extracted at all.
//   - "invalid_token" — a token was presented but does not resolve to a
//     live session (unknown or revoked; the two are indistinguishable).
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		token, err := getSessionToken(r)
		if err != nil {
			log.Err(err).Send()
			utils.WriteJSON(w, models.ErrorResponse{Error: codeMissingOrMalformedHeader}, http.StatusUnauthorized) //nolint:errcheck
			return
		}

		ctx := r.Context()
		userID, err := h.services.AuthService.Authenticate(ctx, token)
		if err != nil {
			log.Err(err).Msg("session token does not resolve")
			utils.WriteJSON(w, models.ErrorResponse{Error: codeInvalidToken}, http.StatusUnauthorized) //nolint:errcheck
			return
		}

		// Store the authenticated user's ID and the presented token in the
		// context so that downstream handlers can retrieve them without
		// re-resolving the session.
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, userID)
		ctx = context.WithValue(ctx, utils.SessionTokenCtxKey, token)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getSessionToken extracts the opaque session token from a request.
//
// The "Authorization" header takes precedence and must follow the standard
// format:
//
//	Authorization: Bearer <token>
//
// When the header is absent the session cookie is consulted instead. An
// empty cookie value counts as no token.
//
// It returns the following sentinel errors:
//   - [ErrMalformedAuthorizationHeader] — the header is present but is not a
//     two-part "Bearer <token>" value, or the token part is empty.
//   - [ErrMissingSessionToken] — neither the header nor the cookie carries
//     a token.
func getSessionToken(r *http.Request) (string, error) {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			return "", ErrMalformedAuthorizationHeader
		}

		return parts[1], nil
	}

	if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	return "", ErrMissingSessionToken
}
