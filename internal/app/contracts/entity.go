package contracts

import (
	"context"
	"hospital-web-service/internal/app/models"
)

// EntityClient is the CRUD surface the hospital backend exposes for one
// resource.
type EntityClient[T models.Entity] interface {
	FindAll(ctx context.Context) ([]T, error)
	Create(ctx context.Context, entity T) (*T, error)
	Update(ctx context.Context, id int, entity T) (*T, error)
	Delete(ctx context.Context, id int) error
}

// EntityListUsecase runs the UI events of an entity list page against the
// caller's session view state and returns the state to render.
type EntityListUsecase[T models.Entity, F any] interface {
	Mount(ctx context.Context) (*models.ListState[T], error)
	BeginEdit(ctx context.Context, id int) (*models.ListState[T], error)
	CancelEdit(ctx context.Context) (*models.ListState[T], error)
	Save(ctx context.Context, id int, form *F) (*models.ListState[T], error)
	RequestDelete(ctx context.Context, id int) (*models.ListState[T], error)
	DismissDelete(ctx context.Context) (*models.ListState[T], error)
	ConfirmDelete(ctx context.Context) (*models.ListState[T], error)
	OpenCreate(ctx context.Context) (*models.ListState[T], error)
	CloseCreate(ctx context.Context) (*models.ListState[T], error)
	Create(ctx context.Context, form *F) (*models.ListState[T], error)
	DismissNotice(ctx context.Context) (*models.ListState[T], error)
}
