package handlers

import (
	"inventory-system/internal/api/interfaces"
	"inventory-system/internal/database"

	"github.com/gin-gonic/gin"
)

// getClientIP extracts the client IP, preferring forwarded headers
func getClientIP(c *gin.Context) string {
	if ip := c.GetHeader("X-Forwarded-For"); ip != "" {
		return ip
	}
	if ip := c.GetHeader("X-Real-IP"); ip != "" {
		return ip
	}
	return c.ClientIP()
}

// createAuditLog records an audit entry; failures are logged, never surfaced
// to the request
func createAuditLog(services interfaces.Services, action, username, resource, details, clientIP string) {
	entry := &database.AuditLog{
		Action:    action,
		Username:  username,
		Resource:  resource,
		Details:   details,
		IPAddress: clientIP,
	}
	if err := services.AuditLogRepository().Create(entry); err != nil {
		services.GetLogger().Error("Failed to write audit log: %v", err)
	}
}
