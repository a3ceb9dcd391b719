package repositories

import (
	"testing"

	"inventory-system/internal/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedProduct(t *testing.T, repo *ProductRepository, name, sku string, quantity int, categoryID *int64) *database.Product {
	t.Helper()
	product := &database.Product{
		Name:       name,
		SKU:        sku,
		Price:      9.99,
		Quantity:   quantity,
		CategoryID: categoryID,
	}
	require.NoError(t, repo.Create(product))
	return product
}

func TestProductRepositoryCRUD(t *testing.T) {
	db := openTestDB(t, "productcrud")
	repo := NewProductRepository(db)

	product := seedProduct(t, repo, "USB Cable", "SKU-001", 10, nil)
	assert.NotZero(t, product.ID)

	got, err := repo.GetByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, "USB Cable", got.Name)
	assert.Equal(t, 10, got.Quantity)

	got.Name = "USB-C Cable"
	got.Price = 12.50
	require.NoError(t, repo.Update(got))

	updated, err := repo.GetByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, "USB-C Cable", updated.Name)
	assert.Equal(t, 12.50, updated.Price)

	require.NoError(t, repo.Delete(product.ID))
	_, err = repo.GetByID(product.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, repo.Delete(product.ID), ErrNotFound)
}

func TestProductRepositoryDuplicateSKU(t *testing.T) {
	db := openTestDB(t, "productsku")
	repo := NewProductRepository(db)

	seedProduct(t, repo, "First", "SKU-DUP", 1, nil)

	dup := &database.Product{Name: "Second", SKU: "SKU-DUP"}
	assert.ErrorIs(t, repo.Create(dup), ErrDuplicateSKU)
}

func TestProductRepositoryListFilters(t *testing.T) {
	db := openTestDB(t, "productlist")
	repo := NewProductRepository(db)
	catRepo := NewCategoryRepository(db)

	cables := &database.Category{Name: "Cables"}
	require.NoError(t, catRepo.Create(cables))
	audio := &database.Category{Name: "Audio"}
	require.NoError(t, catRepo.Create(audio))

	seedProduct(t, repo, "USB Cable", "SKU-001", 5, &cables.ID)
	seedProduct(t, repo, "HDMI Cable", "SKU-002", 3, &cables.ID)
	seedProduct(t, repo, "Headphones", "SKU-003", 7, &audio.ID)

	// Substring search on name
	found, err := repo.List("Cable", nil, 50, 0)
	require.NoError(t, err)
	assert.Len(t, found, 2)

	// Search matches SKU too
	found, err = repo.List("SKU-003", nil, 50, 0)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Headphones", found[0].Name)

	// Category filter
	found, err = repo.List("", &audio.ID, 50, 0)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "SKU-003", found[0].SKU)

	// Combined filter with no matches
	found, err = repo.List("Cable", &audio.ID, 50, 0)
	require.NoError(t, err)
	assert.Empty(t, found)

	// Pagination
	found, err = repo.List("", nil, 2, 0)
	require.NoError(t, err)
	assert.Len(t, found, 2)
	found, err = repo.List("", nil, 2, 2)
	require.NoError(t, err)
	assert.Len(t, found, 1)
}

func TestProductRepositoryAdjustStock(t *testing.T) {
	db := openTestDB(t, "productstock")
	repo := NewProductRepository(db)

	product := seedProduct(t, repo, "Widget", "SKU-W", 10, nil)

	adjusted, err := repo.AdjustStock(product.ID, -4)
	require.NoError(t, err)
	assert.Equal(t, 6, adjusted.Quantity)

	adjusted, err = repo.AdjustStock(product.ID, 14)
	require.NoError(t, err)
	assert.Equal(t, 20, adjusted.Quantity)

	// Cannot drive quantity negative
	_, err = repo.AdjustStock(product.ID, -21)
	assert.ErrorIs(t, err, ErrInsufficientStock)

	unchanged, err := repo.GetByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 20, unchanged.Quantity)

	// Missing product is reported as such, not as a stock problem
	_, err = repo.AdjustStock(9999, -1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCategoryRepositoryUniqueName(t *testing.T) {
	db := openTestDB(t, "categoryuniq")
	repo := NewCategoryRepository(db)

	require.NoError(t, repo.Create(&database.Category{Name: "Cables"}))
	assert.ErrorIs(t, repo.Create(&database.Category{Name: "Cables"}), ErrDuplicateName)

	categories, err := repo.List()
	require.NoError(t, err)
	assert.Len(t, categories, 1)
}
