package auth

import (
	userRepo "medicore/database/repository/user"
	"medicore/models"
)

// AuthResponse is returned on a successful login.
type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// RegisterRequest creates a new login account.
type RegisterRequest struct {
	UserID   string `json:"userId" binding:"required"`
	Role     string `json:"role" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// ProfileUpdate carries the editable profile fields.
type ProfileUpdate struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

// AuthService manages login accounts and sessions.
type AuthService interface {
	// Authenticate verifies credentials and issues a bearer token.
	Authenticate(userID, password string) (*AuthResponse, error)
	// Register creates a new account with a bcrypt-hashed password.
	Register(req RegisterRequest) (*models.User, error)
	// GetProfile returns the account for a display ID.
	GetProfile(userID string) (*models.User, error)
	// UpdateProfile applies the non-nil profile fields.
	UpdateProfile(userID string, update ProfileUpdate) (*models.User, error)
	// ChangePassword verifies the current password before setting a new one.
	ChangePassword(userID, currentPassword, newPassword string) error
	// GetAllUsers lists every account.
	GetAllUsers() ([]models.User, error)
	// RevokeToken drops the account's cached session token.
	RevokeToken(userID string) error
}

// DefaultAuthService is the production implementation.
type DefaultAuthService struct {
	Repo userRepo.UserRepository
}
