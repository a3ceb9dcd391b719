package handlers

import (
	"net/http"
	"time"

	"inventory-system/internal/api/interfaces"
	"inventory-system/internal/api/models"

	"github.com/gin-gonic/gin"
)

const serverVersion = "1.0.0"

var startTime = time.Now()

// HealthCheck provides a simple health check endpoint
func HealthCheck(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := "healthy"
		code := http.StatusOK
		if !services.IsHealthy() {
			status = "degraded"
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, models.HealthCheckResponse{
			Status:    status,
			Timestamp: time.Now().Unix(),
			Version:   serverVersion,
		})
	}
}

// GetSystemStatus returns system status
func GetSystemStatus(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		databaseStatus := "connected"
		if !services.IsHealthy() {
			databaseStatus = "disconnected"
		}

		c.JSON(http.StatusOK, models.SuccessResponse{
			Success: true,
			Data: models.SystemStatusResponse{
				ServerStatus:   "running",
				DatabaseStatus: databaseStatus,
				Subscribers:    services.EventHub().SubscriberCount(),
				Uptime:         int64(time.Since(startTime).Seconds()),
				Version:        serverVersion,
			},
		})
	}
}

// GetAuditLogs returns recent audit entries, optionally filtered by action.
// Admin only.
func GetAuditLogs(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, offset := paginationParams(c)
		action := c.Query("action")

		entries, err := services.AuditLogRepository().ListRecent(action, limit, offset)
		if err != nil {
			services.GetLogger().Error("Audit log listing failed: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error: "Failed to list audit logs",
				Code:  models.ErrCodeInternalError,
			})
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse{Success: true, Data: entries})
	}
}
