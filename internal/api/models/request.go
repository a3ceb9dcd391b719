package models

// LoginRequest represents authentication login request
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"admin"`
	Password string `json:"password" binding:"required" example:"123456"`
}

// RegisterRequest represents account registration request
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3" example:"newuser"`
	Password string `json:"password" binding:"required,min=6" example:"abc123"`
	Email    string `json:"email,omitempty" binding:"omitempty,email" example:"user@example.com"`
}

// ProductRequest represents product creation/update request
type ProductRequest struct {
	Name        string  `json:"name" binding:"required" example:"USB Cable"`
	SKU         string  `json:"sku" binding:"required" example:"SKU-001"`
	Description string  `json:"description,omitempty" example:"2m braided USB-C cable"`
	Price       float64 `json:"price" binding:"gte=0" example:"9.99"`
	Quantity    int     `json:"quantity" binding:"gte=0" example:"120"`
	CategoryID  *int64  `json:"category_id,omitempty" example:"3"`
}

// StockAdjustRequest represents a signed quantity adjustment
type StockAdjustRequest struct {
	Delta  int    `json:"delta" binding:"required" example:"-5"`
	Reason string `json:"reason,omitempty" example:"damaged units removed"`
}

// CategoryRequest represents category creation request
type CategoryRequest struct {
	Name string `json:"name" binding:"required" example:"Cables"`
}
