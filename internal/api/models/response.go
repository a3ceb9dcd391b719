package models

// SuccessResponse represents a successful API response
type SuccessResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse represents an API error. Error carries the human-readable
// message required by the wire contract ("Access Token Required",
// "Invalid Token"); Code is the machine-readable classification.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// UserResponse represents user information
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role"`
}

// AuthResponse represents a successful login
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// RegisterResponse represents a successful registration
type RegisterResponse struct {
	Success bool  `json:"success"`
	UserID  int64 `json:"userId"`
}

// ProductListResponse represents a paginated product listing
type ProductListResponse struct {
	Products interface{} `json:"products"`
	Limit    int         `json:"limit"`
	Offset   int         `json:"offset"`
	Count    int         `json:"count"`
}

// SystemStatusResponse represents system status
type SystemStatusResponse struct {
	ServerStatus   string `json:"server_status"`
	DatabaseStatus string `json:"database_status"`
	Subscribers    int    `json:"ws_subscribers"`
	Uptime         int64  `json:"uptime"`
	Version        string `json:"version"`
}

// HealthCheckResponse represents health check response
type HealthCheckResponse struct {
	Status    string `json:"status"`
	Timestamp int64  `json:"timestamp"`
	Version   string `json:"version"`
}
