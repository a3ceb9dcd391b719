package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"inventory-system/internal/api/interfaces"
	"inventory-system/internal/api/models"
	"inventory-system/internal/api/ws"
	"inventory-system/internal/database"
	"inventory-system/internal/database/repositories"

	"github.com/gin-gonic/gin"
)

// ListProducts returns products matching the optional search and category
// filters, paginated
func ListProducts(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, offset := paginationParams(c)
		search := c.Query("search")

		var categoryID *int64
		if raw := c.Query("category"); raw != "" {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, models.ErrorResponse{
					Error: "Invalid category id",
					Code:  models.ErrCodeInvalidRequest,
				})
				return
			}
			categoryID = &id
		}

		products, err := services.ProductRepository().List(search, categoryID, limit, offset)
		if err != nil {
			services.GetLogger().Error("Product listing failed: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error: "Failed to list products",
				Code:  models.ErrCodeInternalError,
			})
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse{
			Success: true,
			Data: models.ProductListResponse{
				Products: products,
				Limit:    limit,
				Offset:   offset,
				Count:    len(products),
			},
		})
	}
}

// GetProduct returns a single product by id
func GetProduct(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, ok := pathID(c)
		if !ok {
			return
		}

		product, err := services.ProductRepository().GetByID(productID)
		if err != nil {
			respondProductError(c, services, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse{Success: true, Data: product})
	}
}

// CreateProduct adds a product to the catalog
func CreateProduct(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.ProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "Invalid product data",
				Code:    models.ErrCodeInvalidRequest,
				Details: err.Error(),
			})
			return
		}

		product := &database.Product{
			Name:        req.Name,
			SKU:         req.SKU,
			Description: req.Description,
			Price:       req.Price,
			Quantity:    req.Quantity,
			CategoryID:  req.CategoryID,
		}

		if err := services.ProductRepository().Create(product); err != nil {
			respondProductError(c, services, err)
			return
		}

		username := c.GetString("username")
		createAuditLog(services, "product_created", username, "product",
			fmt.Sprintf("sku=%s", product.SKU), getClientIP(c))
		services.GetLogger().InventoryLogger("product_created", product.SKU, product.Quantity, product.Name)
		services.EventHub().Publish(ws.EventProductCreated, product)

		c.JSON(http.StatusCreated, models.SuccessResponse{Success: true, Data: product})
	}
}

// UpdateProduct replaces a product's fields
func UpdateProduct(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, ok := pathID(c)
		if !ok {
			return
		}

		var req models.ProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "Invalid product data",
				Code:    models.ErrCodeInvalidRequest,
				Details: err.Error(),
			})
			return
		}

		product := &database.Product{
			ID:          productID,
			Name:        req.Name,
			SKU:         req.SKU,
			Description: req.Description,
			Price:       req.Price,
			Quantity:    req.Quantity,
			CategoryID:  req.CategoryID,
		}

		if err := services.ProductRepository().Update(product); err != nil {
			respondProductError(c, services, err)
			return
		}

		updated, err := services.ProductRepository().GetByID(productID)
		if err != nil {
			respondProductError(c, services, err)
			return
		}

		createAuditLog(services, "product_updated", c.GetString("username"), "product",
			fmt.Sprintf("sku=%s", updated.SKU), getClientIP(c))
		services.EventHub().Publish(ws.EventProductUpdated, updated)

		c.JSON(http.StatusOK, models.SuccessResponse{Success: true, Data: updated})
	}
}

// DeleteProduct removes a product from the catalog
func DeleteProduct(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, ok := pathID(c)
		if !ok {
			return
		}

		if err := services.ProductRepository().Delete(productID); err != nil {
			respondProductError(c, services, err)
			return
		}

		createAuditLog(services, "product_deleted", c.GetString("username"), "product",
			fmt.Sprintf("id=%d", productID), getClientIP(c))
		services.EventHub().Publish(ws.EventProductDeleted, map[string]interface{}{"id": productID})

		c.JSON(http.StatusOK, models.SuccessResponse{
			Success: true,
			Message: "Product deleted",
		})
	}
}

// AdjustStock applies a signed quantity delta to a product. Adjustments that
// would drive stock negative are rejected.
func AdjustStock(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, ok := pathID(c)
		if !ok {
			return
		}

		var req models.StockAdjustRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "Adjustment delta is required",
				Code:    models.ErrCodeInvalidRequest,
				Details: err.Error(),
			})
			return
		}

		product, err := services.ProductRepository().AdjustStock(productID, req.Delta)
		if err != nil {
			respondProductError(c, services, err)
			return
		}

		createAuditLog(services, "stock_adjusted", c.GetString("username"), "product",
			fmt.Sprintf("sku=%s delta=%d reason=%s", product.SKU, req.Delta, req.Reason), getClientIP(c))
		services.GetLogger().InventoryLogger("stock_adjusted", product.SKU, product.Quantity, req.Reason)
		services.EventHub().Publish(ws.EventStockAdjusted, map[string]interface{}{
			"product_id": product.ID,
			"sku":        product.SKU,
			"delta":      req.Delta,
			"quantity":   product.Quantity,
		})

		c.JSON(http.StatusOK, models.SuccessResponse{Success: true, Data: product})
	}
}

// pathID parses the :id path parameter, answering 400 itself on failure
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Invalid product id",
			Code:  models.ErrCodeInvalidRequest,
		})
		return 0, false
	}
	return id, true
}

func respondProductError(c *gin.Context, services interfaces.Services, err error) {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: "Product not found",
			Code:  models.ErrCodeProductNotFound,
		})
	case errors.Is(err, repositories.ErrDuplicateSKU):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "SKU already exists",
			Code:  models.ErrCodeDuplicateSKU,
		})
	case errors.Is(err, repositories.ErrInsufficientStock):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Adjustment would make stock negative",
			Code:  models.ErrCodeInsufficientStock,
		})
	default:
		services.GetLogger().Error("Product operation failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Internal server error",
			Code:  models.ErrCodeInternalError,
		})
	}
}
