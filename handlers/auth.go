package handlers

import (
	"errors"
	"net/http"

	"medicore/services/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LoginHandler authenticates a user and returns a bearer token.
func LoginHandler(svc auth.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req struct {
			UserID   string `json:"userId" binding:"required"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		resp, err := svc.Authenticate(req.UserID, req.Password)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
				return
			}
			logger.Error("Authentication failed", zap.String("userId", req.UserID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Authentication failed"})
			return
		}

		c.JSON(http.StatusOK, resp)
	}
}

// RegisterUserHandler creates a new login account.
func RegisterUserHandler(svc auth.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req auth.RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		user, err := svc.Register(req)
		if err != nil {
			if errors.Is(err, auth.ErrUserExists) {
				c.JSON(http.StatusConflict, gin.H{"error": "User already exists"})
				return
			}
			if errors.Is(err, auth.ErrInvalidRole) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role"})
				return
			}
			logger.Error("Failed to register user", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"user": user})
	}
}

// GetProfileHandler returns the authenticated user's account.
func GetProfileHandler(svc auth.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		profile, err := svc.GetProfile(c.GetString("userID"))
		if err != nil {
			logger.Error("Failed to get profile", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve profile"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"user": profile})
	}
}

// UpdateProfileHandler updates the authenticated user's account.
func UpdateProfileHandler(svc auth.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req auth.ProfileUpdate
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		user, err := svc.UpdateProfile(c.GetString("userID"), req)
		if err != nil {
			logger.Error("Failed to update profile", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"user": user})
	}
}

// ChangePasswordHandler rotates the authenticated user's password and revokes
// the active session.
func ChangePasswordHandler(svc auth.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req struct {
			CurrentPassword string `json:"currentPassword" binding:"required"`
			NewPassword     string `json:"newPassword" binding:"required,min=6"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		if err := svc.ChangePassword(c.GetString("userID"), req.CurrentPassword, req.NewPassword); err != nil {
			if errors.Is(err, auth.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Current password is incorrect"})
				return
			}
			logger.Error("Failed to change password", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to change password"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
	}
}

// LogoutHandler revokes the authenticated user's session token.
func LogoutHandler(svc auth.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		if err := svc.RevokeToken(c.GetString("userID")); err != nil {
			logger.Error("Failed to revoke token", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log out"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}

// ListUsersHandler returns all login accounts.
func ListUsersHandler(svc auth.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		users, err := svc.GetAllUsers()
		if err != nil {
			logger.Error("Failed to list users", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list users"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"users": users, "total": len(users)})
	}
}
