package database

import (
	"database/sql"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// EnsureAdminUser creates the administrator account if it does not exist yet.
// Called once at startup; an existing account is left untouched so a changed
// config password never silently rotates credentials.
func EnsureAdminUser(db *sql.DB, username, password string, bcryptCost int) (bool, error) {
	var id int64
	err := db.QueryRow(`SELECT id FROM users WHERE username = ?`, username).Scan(&id)
	if err == nil {
		return false, nil
	}
	if err != sql.ErrNoRows {
		return false, fmt.Errorf("lookup admin user: %v", err)
	}

	if bcryptCost <= 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return false, fmt.Errorf("hash admin password: %v", err)
	}

	_, err = db.Exec(`INSERT INTO users (username, password_hash, role) VALUES (?, ?, ?)`,
		username, string(hash), RoleAdmin)
	if err != nil {
		return false, fmt.Errorf("insert admin user: %v", err)
	}

	return true, nil
}
