package interfaces

import "inventory-system/internal/auth"

// AuthService issues and validates bearer tokens. The concrete
// implementation wraps an auth.Issuer and auth.Verifier built from the
// configured shared secret.
type AuthService interface {
	IssueToken(userID int64, username, role string) (string, error)
	ValidateToken(token string) (*auth.Claims, error)
}
