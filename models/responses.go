package models

// LoginResponse is returned by the login endpoint. The token is also set as
// the session_token cookie for clients that authenticate via cookies.
type LoginResponse struct {
	SessionToken string `json:"session_token"`
	Username     string `json:"username"`
}

// ErrorResponse is the stable error body: a single machine-readable code.
// Internal detail never leaks through it; full context goes to the logs.
type ErrorResponse struct {
	Error string `json:"error"`
}
