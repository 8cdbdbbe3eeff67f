// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"guideflow/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
// Unknown fields in the request body are ignored by binding; required fields
// are enforced here.
type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// AuthOutput returns the session token after a successful registration or login.
type AuthOutput struct {
	Token string       `json:"token"`
	User  *UserProfile `json:"user,omitempty"`
}

// UserProfile is the outward account representation. The password hash never
// leaves the use case layer.
type UserProfile struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// NewUserProfile maps an account entity to its outward representation.
func NewUserProfile(user *entity.User) *UserProfile {
	if user == nil {
		return nil
	}

	return &UserProfile{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}
}

// UserUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Register creates a new account and returns a session token for it.
	// Registration with an already-used email fails with a conflict.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login verifies the credentials and returns a session token. Unknown
	// email and wrong password are indistinguishable to the caller.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// GetMe resolves the authenticated account's profile.
	GetMe(ctx context.Context, userID uuid.UUID) (*UserProfile, error)
}
