package models

// LoginRequest is the payload for both login endpoints.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResult is the body of a successful authentication response.
type LoginResult struct {
	Token    string `json:"token"`
	Role     string `json:"role"`
	Email    string `json:"email"`
	FullName string `json:"fullName,omitempty"`
}
