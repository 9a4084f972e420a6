package auth

import (
	"github.com/google/uuid"

	"github.com/emberoak/atelier-backend/pkg/enums"
)

// LoginInput is the admin console credential payload.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginResult carries the bearer token and the authenticated identity.
type LoginResult struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

// UserDTO is the identity surface exposed after login.
type UserDTO struct {
	ID    uuid.UUID      `json:"id"`
	Name  string         `json:"name"`
	Email string         `json:"email"`
	Role  enums.UserRole `json:"role"`
}
