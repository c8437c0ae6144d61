package postgre

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"life-admin/internal/auth"
	repo "life-admin/internal/auth/repository"
)

// uniqueViolation is the SQLSTATE postgres reports for a UNIQUE conflict.
const uniqueViolation = pq.ErrorCode("23505")

// CreateUser inserts an account. A taken email yields repo.ErrDuplicate.
func (r *implRepository) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (auth.User, error) {
	const query = `
		INSERT INTO users (email, password_hash)
		VALUES ($1, $2)
		RETURNING id, email, password_hash, created_at`

	var u auth.User
	err := r.db.QueryRowContext(ctx, query, opt.Email, opt.PasswordHash).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt,
	)
	if isUniqueViolation(err) {
		return auth.User{}, repo.ErrDuplicate
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateUser"), err)
		return auth.User{}, repo.ErrFailedToInsert
	}
	return u, nil
}

// GetUserByEmail looks an account up by its normalized email.
func (r *implRepository) GetUserByEmail(ctx context.Context, email string) (auth.User, error) {
	const query = `SELECT id, email, password_hash, created_at FROM users WHERE email = $1`

	var u auth.User
	err := r.db.QueryRowContext(ctx, query, email).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return auth.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetUserByEmail"), err)
		return auth.User{}, repo.ErrFailedToGet
	}
	return u, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
