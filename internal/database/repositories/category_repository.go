package repositories

import (
	"database/sql"

	"inventory-system/internal/database"
)

type CategoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(category *database.Category) error {
	result, err := r.db.Exec(`INSERT INTO categories (name) VALUES (?)`, category.Name)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateName
		}
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	category.ID = id
	return nil
}

func (r *CategoryRepository) GetByID(categoryID int64) (*database.Category, error) {
	var category database.Category
	err := r.db.QueryRow(`SELECT id, name, created_at FROM categories WHERE id = ?`, categoryID).
		Scan(&category.ID, &category.Name, &category.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &category, nil
}

func (r *CategoryRepository) List() ([]database.Category, error) {
	rows, err := r.db.Query(`SELECT id, name, created_at FROM categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []database.Category
	for rows.Next() {
		var category database.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}

	return categories, rows.Err()
}
