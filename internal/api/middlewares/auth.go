package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"inventory-system/internal/api/interfaces"
	"inventory-system/internal/api/models"
	"inventory-system/internal/auth"

	"github.com/gin-gonic/gin"
)

// AuthRequired middleware gates protected routes behind bearer-token
// validation. A missing token is 401; an invalid or expired one is 403 with
// the same wire message, distinguished only by the code field.
func AuthRequired(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Error: models.MsgTokenRequired,
				Code:  models.ErrCodeTokenRequired,
			})
			c.Abort()
			return
		}

		claims, err := services.AuthService().ValidateToken(token)
		if err != nil {
			code := models.ErrCodeInvalidToken
			if errors.Is(err, auth.ErrTokenExpired) {
				code = models.ErrCodeTokenExpired
			}
			services.GetLogger().SecurityLogger("token_rejected", "", err.Error())
			c.JSON(http.StatusForbidden, models.ErrorResponse{
				Error: models.MsgInvalidToken,
				Code:  code,
			})
			c.Abort()
			return
		}

		// Set user context from validated claims
		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("user_role", claims.Role)

		c.Next()
	}
}

// AdminRequired middleware ensures user has admin role
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, exists := c.Get("user_role")
		if !exists || userRole != "admin" {
			c.JSON(http.StatusForbidden, models.ErrorResponse{
				Error: "Admin access required",
				Code:  models.ErrCodeForbidden,
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// WSAuthRequired middleware for WebSocket authentication. Browsers cannot
// set headers on WebSocket upgrades, so the token travels in a query param.
func WSAuthRequired(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Query("token")
		if token == "" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Error: models.MsgTokenRequired,
				Code:  models.ErrCodeTokenRequired,
			})
			c.Abort()
			return
		}

		claims, err := services.AuthService().ValidateToken(token)
		if err != nil {
			c.JSON(http.StatusForbidden, models.ErrorResponse{
				Error: models.MsgInvalidToken,
				Code:  models.ErrCodeInvalidToken,
			})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("user_role", claims.Role)
		c.Next()
	}
}

// extractToken extracts the bearer token from the Authorization header
func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}

	return parts[1]
}
