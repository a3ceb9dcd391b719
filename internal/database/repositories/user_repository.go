package repositories

import (
	"database/sql"

	"inventory-system/internal/database"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user. The unique index on username makes the insert
// atomic with respect to concurrent registrations; a losing insert returns
// ErrDuplicateUsername.
func (r *UserRepository) Create(user *database.User) error {
	query := `
        INSERT INTO users (username, email, password_hash, role)
        VALUES (?, ?, ?, ?)
    `
	result, err := r.db.Exec(query, user.Username, user.Email, user.PasswordHash, user.Role)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateUsername
		}
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	user.ID = id
	return nil
}

func (r *UserRepository) GetByUsername(username string) (*database.User, error) {
	query := `
        SELECT id, username, email, password_hash, role, last_login, created_at
        FROM users
        WHERE username = ?
    `

	var user database.User
	err := r.db.QueryRow(query, username).Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash,
		&user.Role, &user.LastLogin, &user.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(userID int64) (*database.User, error) {
	query := `
        SELECT id, username, email, password_hash, role, last_login, created_at
        FROM users
        WHERE id = ?
    `

	var user database.User
	err := r.db.QueryRow(query, userID).Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash,
		&user.Role, &user.LastLogin, &user.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *UserRepository) UpdateLastLogin(userID int64) error {
	query := `UPDATE users SET last_login = CURRENT_TIMESTAMP WHERE id = ?`
	_, err := r.db.Exec(query, userID)
	return err
}

// ListUsers retrieves users with pagination and optional role filtering
func (r *UserRepository) ListUsers(role string, limit, offset int) ([]database.User, error) {
	query := `
        SELECT id, username, email, password_hash, role, last_login, created_at
        FROM users
        WHERE 1=1
    `
	args := []interface{}{}

	if role != "" {
		query += " AND role = ?"
		args = append(args, role)
	}

	query += " ORDER BY created_at DESC LIMIT ? OFFSET ?"
	args = append(args, limit, offset)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []database.User
	for rows.Next() {
		var user database.User
		err := rows.Scan(
			&user.ID, &user.Username, &user.Email, &user.PasswordHash,
			&user.Role, &user.LastLogin, &user.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, rows.Err()
}
