package handlers

import (
	"errors"
	"net/http"

	"inventory-system/internal/api/interfaces"
	"inventory-system/internal/api/models"
	"inventory-system/internal/database"
	"inventory-system/internal/database/repositories"

	"github.com/gin-gonic/gin"
)

// ListCategories returns all categories
func ListCategories(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := services.CategoryRepository().List()
		if err != nil {
			services.GetLogger().Error("Category listing failed: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error: "Failed to list categories",
				Code:  models.ErrCodeInternalError,
			})
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse{Success: true, Data: categories})
	}
}

// CreateCategory adds a category. Admin only.
func CreateCategory(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "Category name is required",
				Code:    models.ErrCodeInvalidRequest,
				Details: err.Error(),
			})
			return
		}

		category := &database.Category{Name: req.Name}
		if err := services.CategoryRepository().Create(category); err != nil {
			if errors.Is(err, repositories.ErrDuplicateName) {
				c.JSON(http.StatusBadRequest, models.ErrorResponse{
					Error: "Category already exists",
					Code:  models.ErrCodeDuplicateCategory,
				})
				return
			}
			services.GetLogger().Error("Category creation failed: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error: "Failed to create category",
				Code:  models.ErrCodeInternalError,
			})
			return
		}

		createAuditLog(services, "category_created", c.GetString("username"), "category",
			category.Name, getClientIP(c))

		c.JSON(http.StatusCreated, models.SuccessResponse{Success: true, Data: category})
	}
}
