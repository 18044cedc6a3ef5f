package userRepo

import (
	"medicore/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines methods for login account data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID.
	GetByID(id string) (*models.User, error)
	// GetByUserID retrieves a user by its login ID (e.g. "admin123", "D00001").
	GetByUserID(userID string) (*models.User, error)
	// GetAll retrieves all users.
	GetAll() ([]models.User, error)
	// Create inserts a new user record.
	Create(user *models.User) error
	// Update modifies an existing user record.
	Update(user *models.User) error
	// UpdateSetDocument applies a partial $set update by display ID.
	UpdateSetDocument(userID string, updateDoc bson.M) error
	// Delete removes a user record by its ID.
	Delete(id string) error
}
