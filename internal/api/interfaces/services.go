package interfaces

import (
	"inventory-system/internal/api/ws"
	"inventory-system/internal/database/repositories"
	"inventory-system/pkg/config"
	"inventory-system/pkg/logger"
)

// Services defines the interface for API services
type Services interface {
	GetLogger() *logger.Logger
	GetConfig() *config.Config
	AuthService() AuthService
	EventHub() *ws.Hub
	UserRepository() *repositories.UserRepository
	ProductRepository() *repositories.ProductRepository
	CategoryRepository() *repositories.CategoryRepository
	AuditLogRepository() *repositories.AuditLogRepository
	IsHealthy() bool
}
