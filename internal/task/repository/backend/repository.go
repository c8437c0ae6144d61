package backend

import (
	"context"

	"life-admin/internal/model"
	"life-admin/internal/task/repository"
	pkgLog "life-admin/pkg/log"
)

type implRepository struct {
	client *Client
	l      pkgLog.Logger
}

// New creates a new record store repository.
func New(client *Client, l pkgLog.Logger) repository.RecordRepository {
	return &implRepository{
		client: client,
		l:      l,
	}
}

func (r *implRepository) ListRecords(ctx context.Context) ([]model.Record, error) {
	records, err := r.client.ListRecords(ctx)
	if err != nil {
		r.l.Errorf(ctx, "backend repository: %v", err)
		return nil, err
	}
	return records, nil
}

func (r *implRepository) CreateRecord(ctx context.Context, input model.RecordInput) (model.Record, error) {
	record, err := r.client.CreateRecord(ctx, input)
	if err != nil {
		r.l.Errorf(ctx, "backend repository: %v", err)
		return model.Record{}, err
	}
	return record, nil
}

func (r *implRepository) UpdateRecord(ctx context.Context, id string, input model.RecordInput) (model.Record, error) {
	record, err := r.client.UpdateRecord(ctx, id, input)
	if err != nil {
		r.l.Errorf(ctx, "backend repository: %v", err)
		return model.Record{}, err
	}
	return record, nil
}

func (r *implRepository) DeleteRecord(ctx context.Context, id string) error {
	if err := r.client.DeleteRecord(ctx, id); err != nil {
		r.l.Errorf(ctx, "backend repository: %v", err)
		return err
	}
	return nil
}

func (r *implRepository) Login(ctx context.Context, opt repository.CredentialsOptions) error {
	if err := r.client.Login(ctx, CredentialsRequest{UserEmail: opt.Username, Password: opt.Password}); err != nil {
		r.l.Warnf(ctx, "backend repository: %v", err)
		return err
	}
	r.l.Infof(ctx, "backend repository: logged in as %s", opt.Username)
	return nil
}

func (r *implRepository) Signup(ctx context.Context, opt repository.CredentialsOptions) error {
	if err := r.client.Signup(ctx, CredentialsRequest{UserEmail: opt.Username, Password: opt.Password}); err != nil {
		r.l.Warnf(ctx, "backend repository: %v", err)
		return err
	}
	return nil
}

func (r *implRepository) Authenticated() bool {
	return r.client.Token() != ""
}
