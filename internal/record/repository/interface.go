package repository

import (
	"context"

	"life-admin/internal/record"
)

// Repository is the composed interface for the record data store.
type Repository interface {
	RecordRepository
}

// RecordRepository defines all data access methods for task rows.
// GetOne and Update return a zero Record (ID == 0) when no row matches.
type RecordRepository interface {
	Create(ctx context.Context, opt CreateOptions) (record.Record, error)
	GetOne(ctx context.Context, opt GetOneOptions) (record.Record, error)
	List(ctx context.Context, opt ListOptions) ([]record.Record, error)
	Update(ctx context.Context, opt UpdateOptions) (record.Record, error)
	Delete(ctx context.Context, opt DeleteOptions) (bool, error)
}
