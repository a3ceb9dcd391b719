package repositories

import (
	"database/sql"

	"inventory-system/internal/database"
)

type AuditLogRepository struct {
	db *sql.DB
}

func NewAuditLogRepository(db *sql.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

func (r *AuditLogRepository) Create(entry *database.AuditLog) error {
	query := `
        INSERT INTO audit_logs (action, username, resource, details, ip_address)
        VALUES (?, ?, ?, ?, ?)
    `
	result, err := r.db.Exec(query, entry.Action, entry.Username, entry.Resource,
		entry.Details, entry.IPAddress)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	entry.ID = id
	return nil
}

// ListRecent retrieves audit log entries ordered newest first, optionally
// filtered by action
func (r *AuditLogRepository) ListRecent(action string, limit, offset int) ([]database.AuditLog, error) {
	query := `
        SELECT id, action, username, resource, details, ip_address, created_at
        FROM audit_logs
        WHERE 1=1
    `
	args := []interface{}{}

	if action != "" {
		query += " AND action = ?"
		args = append(args, action)
	}

	query += " ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?"
	args = append(args, limit, offset)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []database.AuditLog
	for rows.Next() {
		var entry database.AuditLog
		err := rows.Scan(
			&entry.ID, &entry.Action, &entry.Username, &entry.Resource,
			&entry.Details, &entry.IPAddress, &entry.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
