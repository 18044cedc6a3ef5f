package auth

import (
	"errors"
	"fmt"
	"time"

	"medicore/models"
	"medicore/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// tokenTTL is how long an issued session token stays valid.
const tokenTTL = 72 * time.Hour

// ErrInvalidCredentials is returned for unknown accounts, wrong passwords and
// deactivated users alike, so a caller cannot probe which accounts exist.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrUserExists is returned when registering an already-taken display ID.
var ErrUserExists = errors.New("user already exists")

// ErrInvalidRole is returned when registering with an unknown role.
var ErrInvalidRole = errors.New("invalid role")

// Authenticate verifies credentials and issues a bearer token.
func (s *DefaultAuthService) Authenticate(userID, password string) (*AuthResponse, error) {
	logger := utils.GetLogger()

	user, err := s.Repo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil || !user.IsActive {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.UserID, user.Role, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	tokenHash := utils.HashToken(token)
	if err := s.Repo.UpdateSetDocument(user.UserID, bson.M{"tokenHash": tokenHash}); err != nil {
		return nil, fmt.Errorf("failed to persist token hash: %w", err)
	}
	// Cache failures only cost a DB lookup in the auth middleware.
	if err := utils.CacheAuthToken(user.UserID, tokenHash, tokenTTL); err != nil {
		logger.Warn("Failed to cache auth token", zap.String("userId", user.UserID), zap.Error(err))
	}

	user.TokenHash = tokenHash
	return &AuthResponse{Token: token, User: *user}, nil
}

// Register creates a new account with a bcrypt-hashed password.
func (s *DefaultAuthService) Register(req RegisterRequest) (*models.User, error) {
	if !models.ValidRole(req.Role) {
		return nil, ErrInvalidRole
	}

	existing, err := s.Repo.GetByUserID(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.New().String(),
		UserID:       req.UserID,
		Role:         req.Role,
		PasswordHash: string(hash),
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		IsActive:     true,
	}
	if err := s.Repo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// GetProfile returns the account for a display ID.
func (s *DefaultAuthService) GetProfile(userID string) (*models.User, error) {
	user, err := s.Repo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %s not found", userID)
	}
	return user, nil
}

// UpdateProfile applies the non-nil profile fields.
func (s *DefaultAuthService) UpdateProfile(userID string, update ProfileUpdate) (*models.User, error) {
	set := bson.M{}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Email != nil {
		set["email"] = *update.Email
	}
	if update.Phone != nil {
		set["phone"] = *update.Phone
	}
	if len(set) > 0 {
		if err := s.Repo.UpdateSetDocument(userID, set); err != nil {
			return nil, err
		}
	}
	return s.GetProfile(userID)
}

// ChangePassword verifies the current password before setting a new one. The
// session token is revoked so other holders of it must log in again.
func (s *DefaultAuthService) ChangePassword(userID, currentPassword, newPassword string) error {
	user, err := s.Repo.GetByUserID(userID)
	if err != nil {
		return fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.Repo.UpdateSetDocument(userID, bson.M{"passwordHash": string(hash), "tokenHash": ""}); err != nil {
		return err
	}
	return s.RevokeToken(userID)
}

// GetAllUsers lists every account.
func (s *DefaultAuthService) GetAllUsers() ([]models.User, error) {
	return s.Repo.GetAll()
}

// RevokeToken drops the account's cached session token.
func (s *DefaultAuthService) RevokeToken(userID string) error {
	return utils.RevokeAuthToken(userID)
}
