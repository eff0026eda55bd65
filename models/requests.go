package models

// AuthRequest is the JSON body of the register and login endpoints.
type AuthRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreateTodoRequest is the JSON body of the add-todo endpoint.
// The owner is taken from the authenticated session, never from the body.
type CreateTodoRequest struct {
	Description string `json:"description"`
}
