package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"inventory-system/internal/api/interfaces"
	"inventory-system/internal/api/models"
	"inventory-system/internal/database"
	"inventory-system/internal/database/repositories"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// Login authenticates a username/password pair and returns a freshly issued
// token. Lookup failure and password mismatch produce the same generic 401
// so callers cannot tell which field was wrong.
func Login(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "Username and password are required",
				Code:    models.ErrCodeInvalidRequest,
				Details: err.Error(),
			})
			return
		}

		clientIP := getClientIP(c)

		user, err := services.UserRepository().GetByUsername(req.Username)
		if err != nil {
			if !errors.Is(err, repositories.ErrNotFound) {
				services.GetLogger().Error("Login lookup failed: %v", err)
			}
			rejectLogin(c, services, req.Username, clientIP)
			return
		}

		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
			rejectLogin(c, services, req.Username, clientIP)
			return
		}

		token, err := services.AuthService().IssueToken(user.ID, user.Username, user.Role)
		if err != nil {
			services.GetLogger().Error("Token issuance failed for %s: %v", user.Username, err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error: "Failed to issue token",
				Code:  models.ErrCodeInternalError,
			})
			return
		}

		if err := services.UserRepository().UpdateLastLogin(user.ID); err != nil {
			services.GetLogger().Warning("Failed to update last login for %s: %v", user.Username, err)
		}

		createAuditLog(services, "login_success", user.Username, "auth", "", clientIP)

		c.JSON(http.StatusOK, models.AuthResponse{
			Token: token,
			User: models.UserResponse{
				ID:       user.ID,
				Username: user.Username,
				Email:    user.Email,
				Role:     user.Role,
			},
		})
	}
}

func rejectLogin(c *gin.Context, services interfaces.Services, username, clientIP string) {
	services.GetLogger().SecurityLogger("login_failed", username, "invalid credentials")
	createAuditLog(services, "login_failed", username, "auth", "", clientIP)
	c.JSON(http.StatusUnauthorized, models.ErrorResponse{
		Error: models.MsgInvalidCredentials,
		Code:  models.ErrCodeInvalidCredentials,
	})
}

// Register creates a new user account. Uniqueness is enforced by the storage
// layer, so two concurrent registrations of the same username yield exactly
// one success.
func Register(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "Username and password are required",
				Code:    models.ErrCodeInvalidRequest,
				Details: err.Error(),
			})
			return
		}

		cost := services.GetConfig().Security.BcryptCost
		if cost <= 0 {
			cost = bcrypt.DefaultCost
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), cost)
		if err != nil {
			services.GetLogger().Error("Password hashing failed: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error: "Failed to create account",
				Code:  models.ErrCodeInternalError,
			})
			return
		}

		user := &database.User{
			Username:     req.Username,
			Email:        req.Email,
			PasswordHash: string(hash),
			Role:         database.RoleUser,
		}

		if err := services.UserRepository().Create(user); err != nil {
			if errors.Is(err, repositories.ErrDuplicateUsername) {
				c.JSON(http.StatusBadRequest, models.ErrorResponse{
					Error: "Username already exists",
					Code:  models.ErrCodeDuplicateUsername,
				})
				return
			}
			services.GetLogger().Error("User creation failed: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error: "Failed to create account",
				Code:  models.ErrCodeInternalError,
			})
			return
		}

		createAuditLog(services, "user_registered", user.Username, "auth", "", getClientIP(c))

		c.JSON(http.StatusCreated, models.RegisterResponse{
			Success: true,
			UserID:  user.ID,
		})
	}
}

// GetProfile returns the authenticated user's record
func GetProfile(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetInt64("user_id")

		user, err := services.UserRepository().GetByID(userID)
		if err != nil {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error: "User not found",
				Code:  models.ErrCodeNotFound,
			})
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse{
			Success: true,
			Data: models.UserResponse{
				ID:       user.ID,
				Username: user.Username,
				Email:    user.Email,
				Role:     user.Role,
			},
		})
	}
}

// ListUsers returns registered users. Admin only.
func ListUsers(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, offset := paginationParams(c)
		role := c.Query("role")

		users, err := services.UserRepository().ListUsers(role, limit, offset)
		if err != nil {
			services.GetLogger().Error("User listing failed: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error: "Failed to list users",
				Code:  models.ErrCodeInternalError,
			})
			return
		}

		responses := make([]models.UserResponse, 0, len(users))
		for _, user := range users {
			responses = append(responses, models.UserResponse{
				ID:       user.ID,
				Username: user.Username,
				Email:    user.Email,
				Role:     user.Role,
			})
		}

		c.JSON(http.StatusOK, models.SuccessResponse{
			Success: true,
			Data:    responses,
		})
	}
}

// paginationParams parses limit/offset query params with sane bounds
func paginationParams(c *gin.Context) (int, int) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit <= 0 || limit > 200 {
		limit = 50
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}
	return limit, offset
}
