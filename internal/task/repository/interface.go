package repository

import (
	"context"

	"life-admin/internal/model"
)

// RecordRepository is the interface for record store data access operations.
// Every call needs an authenticated session; a rejected token surfaces as
// task.ErrUnauthorized and ends the session.
type RecordRepository interface {
	ListRecords(ctx context.Context) ([]model.Record, error)
	CreateRecord(ctx context.Context, input model.RecordInput) (model.Record, error)
	UpdateRecord(ctx context.Context, id string, input model.RecordInput) (model.Record, error)
	DeleteRecord(ctx context.Context, id string) error

	SessionRepository
}

// SessionRepository manages the bearer token used against the record store.
type SessionRepository interface {
	Login(ctx context.Context, opt CredentialsOptions) error
	Signup(ctx context.Context, opt CredentialsOptions) error
	Authenticated() bool
}
