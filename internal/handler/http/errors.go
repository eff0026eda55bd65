// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when extracting the
// session token from an incoming request. Callers can match against them
// with [errors.Is].
var (
	// ErrMissingSessionToken is returned when the request carries neither an
	// "Authorization" header nor a session cookie.
	ErrMissingSessionToken = errors.New("missing session token")

	// ErrMalformedAuthorizationHeader is returned when the "Authorization"
	// header is present but does not follow the "Bearer <token>" format or
	// the token value itself is empty.
	ErrMalformedAuthorizationHeader = errors.New("malformed `Authorization` header")
)

// Stable machine-readable error codes returned in JSON error bodies.
const (
	codeMissingOrMalformedHeader = "missing_or_malformed_header"
	codeInvalidToken             = "invalid_token"
	codeInvalidData              = "invalid_data"
	codeInvalidID                = "invalid_id"
	codeInvalidQuery             = "invalid_query"
	codeWrongPassword            = "wrong_password"
	codeUsernameTaken            = "username_taken"
	codeUserNotFound             = "user_not_found"
	codeNotFound                 = "not_found"
	codeInternalError            = "internal_error"
)
