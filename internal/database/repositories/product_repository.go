package repositories

import (
	"database/sql"

	"inventory-system/internal/database"
)

type ProductRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(product *database.Product) error {
	query := `
        INSERT INTO products (name, sku, description, price, quantity, category_id)
        VALUES (?, ?, ?, ?, ?, ?)
    `
	result, err := r.db.Exec(query, product.Name, product.SKU, product.Description,
		product.Price, product.Quantity, product.CategoryID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateSKU
		}
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	product.ID = id
	return nil
}

func (r *ProductRepository) GetByID(productID int64) (*database.Product, error) {
	query := `
        SELECT id, name, sku, description, price, quantity, category_id, created_at, updated_at
        FROM products
        WHERE id = ?
    `

	var product database.Product
	err := r.db.QueryRow(query, productID).Scan(
		&product.ID, &product.Name, &product.SKU, &product.Description,
		&product.Price, &product.Quantity, &product.CategoryID,
		&product.CreatedAt, &product.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &product, nil
}

// List retrieves products with optional substring search on name/SKU,
// category filtering and pagination
func (r *ProductRepository) List(search string, categoryID *int64, limit, offset int) ([]database.Product, error) {
	query := `
        SELECT id, name, sku, description, price, quantity, category_id, created_at, updated_at
        FROM products
        WHERE 1=1
    `
	args := []interface{}{}

	if search != "" {
		query += " AND (name LIKE ? OR sku LIKE ?)"
		pattern := "%" + search + "%"
		args = append(args, pattern, pattern)
	}

	if categoryID != nil {
		query += " AND category_id = ?"
		args = append(args, *categoryID)
	}

	query += " ORDER BY created_at DESC LIMIT ? OFFSET ?"
	args = append(args, limit, offset)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []database.Product
	for rows.Next() {
		var product database.Product
		err := rows.Scan(
			&product.ID, &product.Name, &product.SKU, &product.Description,
			&product.Price, &product.Quantity, &product.CategoryID,
			&product.CreatedAt, &product.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	return products, rows.Err()
}

// Update replaces the mutable fields of a product
func (r *ProductRepository) Update(product *database.Product) error {
	query := `
        UPDATE products
        SET name = ?, sku = ?, description = ?, price = ?, quantity = ?,
            category_id = ?, updated_at = CURRENT_TIMESTAMP
        WHERE id = ?
    `
	result, err := r.db.Exec(query, product.Name, product.SKU, product.Description,
		product.Price, product.Quantity, product.CategoryID, product.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateSKU
		}
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ProductRepository) Delete(productID int64) error {
	result, err := r.db.Exec(`DELETE FROM products WHERE id = ?`, productID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// AdjustStock changes quantity by a signed delta in a single statement. The
// WHERE clause floors the result at zero so concurrent adjustments cannot
// drive stock negative; an adjustment that would is rejected with
// ErrInsufficientStock.
func (r *ProductRepository) AdjustStock(productID int64, delta int) (*database.Product, error) {
	query := `
        UPDATE products
        SET quantity = quantity + ?, updated_at = CURRENT_TIMESTAMP
        WHERE id = ? AND quantity + ? >= 0
    `
	result, err := r.db.Exec(query, delta, productID, delta)
	if err != nil {
		return nil, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		// Distinguish a missing product from a rejected adjustment.
		if _, err := r.GetByID(productID); err != nil {
			return nil, err
		}
		return nil, ErrInsufficientStock
	}

	return r.GetByID(productID)
}
