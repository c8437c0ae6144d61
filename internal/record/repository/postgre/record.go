package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"life-admin/internal/record"
	repo "life-admin/internal/record/repository"
)

const columns = `id, user_id, title, description, is_completed, created_at`

type scannable interface {
	Scan(dest ...any) error
}

func scanRecord(row scannable) (record.Record, error) {
	var rec record.Record
	err := row.Scan(&rec.ID, &rec.UserID, &rec.Title, &rec.Description, &rec.IsCompleted, &rec.CreatedAt)
	return rec, err
}

// Create inserts a new task row for the user.
func (r *implRepository) Create(ctx context.Context, opt repo.CreateOptions) (record.Record, error) {
	const query = `
		INSERT INTO tasks (user_id, title, description, is_completed, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING ` + columns

	rec, err := scanRecord(r.db.QueryRowContext(ctx, query, opt.UserID, opt.Title, opt.Description, opt.IsCompleted))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Create"), err)
		return record.Record{}, repo.ErrFailedToInsert
	}
	return rec, nil
}

// GetOne retrieves a row owned by the user. Not found yields a zero Record.
func (r *implRepository) GetOne(ctx context.Context, opt repo.GetOneOptions) (record.Record, error) {
	query := `SELECT ` + columns + ` FROM tasks WHERE id = $1 AND user_id = $2`

	rec, err := scanRecord(r.db.QueryRowContext(ctx, query, opt.ID, opt.UserID))
	if errors.Is(err, sql.ErrNoRows) {
		return record.Record{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOne"), err)
		return record.Record{}, repo.ErrFailedToGet
	}
	return rec, nil
}

// List returns the user's rows, oldest first unless OrderBy says otherwise.
func (r *implRepository) List(ctx context.Context, opt repo.ListOptions) ([]record.Record, error) {
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM tasks %s`, columns, mods)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("List"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	records := make([]record.Record, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("List"), err)
			return nil, repo.ErrFailedToList
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("List"), err)
		return nil, repo.ErrFailedToList
	}
	return records, nil
}

// Update overwrites the row's mutable columns. Not found yields a zero Record.
func (r *implRepository) Update(ctx context.Context, opt repo.UpdateOptions) (record.Record, error) {
	const query = `
		UPDATE tasks
		SET title = $1, description = $2, is_completed = $3
		WHERE id = $4 AND user_id = $5
		RETURNING ` + columns

	rec, err := scanRecord(r.db.QueryRowContext(ctx, query, opt.Title, opt.Description, opt.IsCompleted, opt.ID, opt.UserID))
	if errors.Is(err, sql.ErrNoRows) {
		return record.Record{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Update"), err)
		return record.Record{}, repo.ErrFailedToUpdate
	}
	return rec, nil
}

// Delete removes the row and reports whether one existed.
func (r *implRepository) Delete(ctx context.Context, opt repo.DeleteOptions) (bool, error) {
	const query = `DELETE FROM tasks WHERE id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, opt.ID, opt.UserID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Delete"), err)
		return false, repo.ErrFailedToDelete
	}
	n, err := result.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s rows affected: %v", r.dsn("Delete"), err)
		return false, repo.ErrFailedToDelete
	}
	return n > 0, nil
}
