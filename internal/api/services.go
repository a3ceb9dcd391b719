package api

import (
	"database/sql"
	"strings"

	"inventory-system/internal/api/interfaces"
	"inventory-system/internal/api/ws"
	"inventory-system/internal/auth"
	"inventory-system/internal/database/repositories"
	"inventory-system/pkg/config"
	"inventory-system/pkg/logger"
)

// Services contains all the dependencies for API handlers
type Services struct {
	DB     *sql.DB
	Logger *logger.Logger
	Config *config.Config

	authService interfaces.AuthService
	eventHub    *ws.Hub

	userRepository     *repositories.UserRepository
	productRepository  *repositories.ProductRepository
	categoryRepository *repositories.CategoryRepository
	auditLogRepository *repositories.AuditLogRepository
}

// NewServices creates a new services container. The shared token secret is
// taken from config and handed to the issuer and verifier explicitly.
func NewServices(db *sql.DB, log *logger.Logger, cfg *config.Config) *Services {
	services := &Services{
		DB:     db,
		Logger: log,
		Config: cfg,
	}

	services.authService = &authService{
		issuer:   auth.NewIssuer(cfg.Security.JWTSecret, cfg.Security.TokenTTL),
		verifier: auth.NewVerifier(cfg.Security.JWTSecret),
	}
	services.eventHub = ws.NewHub()

	services.userRepository = repositories.NewUserRepository(db)
	services.productRepository = repositories.NewProductRepository(db)
	services.categoryRepository = repositories.NewCategoryRepository(db)
	services.auditLogRepository = repositories.NewAuditLogRepository(db)

	return services
}

// Stop releases background resources
func (s *Services) Stop() {
	s.Logger.Info("Stopping API services...")
	s.eventHub.Close()
	s.Logger.Info("All API services stopped")
}

// Interface implementation methods
func (s *Services) GetLogger() *logger.Logger {
	return s.Logger
}

func (s *Services) GetConfig() *config.Config {
	return s.Config
}

func (s *Services) AuthService() interfaces.AuthService {
	return s.authService
}

func (s *Services) EventHub() *ws.Hub {
	return s.eventHub
}

func (s *Services) UserRepository() *repositories.UserRepository {
	return s.userRepository
}

func (s *Services) ProductRepository() *repositories.ProductRepository {
	return s.productRepository
}

func (s *Services) CategoryRepository() *repositories.CategoryRepository {
	return s.categoryRepository
}

func (s *Services) AuditLogRepository() *repositories.AuditLogRepository {
	return s.auditLogRepository
}

// IsHealthy checks whether the critical dependencies are reachable
func (s *Services) IsHealthy() bool {
	if err := s.DB.Ping(); err != nil {
		s.Logger.Error("Database health check failed: %v", err)
		return false
	}
	return true
}

// authService wires the token issuer and verifier behind the AuthService
// interface. Verification is a pure function of (token, secret, clock); no
// database or revocation store is consulted.
type authService struct {
	issuer   *auth.Issuer
	verifier *auth.Verifier
}

func (a *authService) IssueToken(userID int64, username, role string) (string, error) {
	return a.issuer.Issue(userID, username, role)
}

func (a *authService) ValidateToken(token string) (*auth.Claims, error) {
	// Remove "Bearer " prefix if present
	token = strings.TrimPrefix(token, "Bearer ")
	return a.verifier.Verify(token)
}
