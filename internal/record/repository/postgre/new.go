package postgre

import (
	"database/sql"
	"fmt"

	"life-admin/internal/record/repository"
	"life-admin/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for task rows.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("record/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn returns a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("record/repository/postgre.%s", method)
}
