package record

import (
	"context"

	"life-admin/internal/model"
)

// UseCase is the record store's task CRUD. Every call is scoped to sc.UserID.
type UseCase interface {
	List(ctx context.Context, sc model.Scope, input ListInput) ([]Record, error)
	Detail(ctx context.Context, sc model.Scope, id int64) (Record, error)
	Create(ctx context.Context, sc model.Scope, input CreateInput) (Record, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (Record, error)
	Delete(ctx context.Context, sc model.Scope, id int64) error
}
