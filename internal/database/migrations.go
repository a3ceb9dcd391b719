package database

import (
	"database/sql"
	"fmt"
)

// RunMigrations executes database migrations
func RunMigrations(db *sql.DB) error {
	migrations := []string{
		createUsersTable,
		createCategoriesTable,
		createProductsTable,
		createAuditLogsTable,
		createUserUsernameIndex,
		createProductSKUIndex,
		createProductCategoryIndex,
		createCategoryNameIndex,
		createAuditActionIndex,
	}

	for i, migration := range migrations {
		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("migration %d failed: %v", i+1, err)
		}
	}

	return nil
}

// Database schema definitions
const createUsersTable = `
CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    username VARCHAR(100) NOT NULL,
    email VARCHAR(255) DEFAULT '',
    password_hash VARCHAR(255) NOT NULL,
    role VARCHAR(20) NOT NULL DEFAULT 'user',
    last_login TIMESTAMP,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);`

const createCategoriesTable = `
CREATE TABLE IF NOT EXISTS categories (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name VARCHAR(100) NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);`

const createProductsTable = `
CREATE TABLE IF NOT EXISTS products (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name VARCHAR(255) NOT NULL,
    sku VARCHAR(100) NOT NULL,
    description TEXT DEFAULT '',
    price REAL NOT NULL DEFAULT 0,
    quantity INTEGER NOT NULL DEFAULT 0,
    category_id INTEGER,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (category_id) REFERENCES categories(id)
);`

const createAuditLogsTable = `
CREATE TABLE IF NOT EXISTS audit_logs (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    action VARCHAR(100) NOT NULL,
    username VARCHAR(100),
    resource VARCHAR(100),
    details TEXT,
    ip_address VARCHAR(45),
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);`

// The unique index on username is what closes the duplicate-registration
// race: two concurrent inserts for the same name cannot both commit, the
// loser surfaces a constraint violation that the repository maps to
// ErrDuplicateUsername.
const createUserUsernameIndex = `
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_username ON users(username);`

const createProductSKUIndex = `
CREATE UNIQUE INDEX IF NOT EXISTS idx_products_sku ON products(sku);`

const createProductCategoryIndex = `
CREATE INDEX IF NOT EXISTS idx_products_category ON products(category_id);`

const createCategoryNameIndex = `
CREATE UNIQUE INDEX IF NOT EXISTS idx_categories_name ON categories(name);`

const createAuditActionIndex = `
CREATE INDEX IF NOT EXISTS idx_audit_action ON audit_logs(action);`
