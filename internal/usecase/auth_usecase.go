package usecase

import (
	"context"

	"comfortstay/internal/domain/entity"

	"github.com/google/uuid"
)

// LoginInput carries the login form. Email is the login identifier.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResult bundles the issued tokens with the authenticated account.
type LoginResult struct {
	AccessToken  string           `json:"access_token"`
	RefreshToken string           `json:"refresh_token"`
	Resident     *entity.Resident `json:"resident"`
}

// AuthUsecase handles login and password management.
type AuthUsecase interface {
	// Login verifies the credentials and issues a token pair. Only approved,
	// non-checked-out accounts and admins may log in.
	Login(ctx context.Context, input *LoginInput) (*LoginResult, error)

	// ChangePassword replaces the caller's password after verifying the
	// current one. Used to retire the mailed temporary password.
	ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error
}
