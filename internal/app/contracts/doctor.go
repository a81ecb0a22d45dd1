package contracts

import (
	"context"
	"hospital-web-service/internal/app/models"
	"hospital-web-service/internal/pkg/dto/requests"
)

// DoctorUsecase mirrors EntityListUsecase but every event returns the full
// doctors page, which also carries the department lookup list.
type DoctorUsecase interface {
	Mount(ctx context.Context) (*models.DoctorsView, error)
	BeginEdit(ctx context.Context, id int) (*models.DoctorsView, error)
	CancelEdit(ctx context.Context) (*models.DoctorsView, error)
	Save(ctx context.Context, id int, form *requests.DoctorForm) (*models.DoctorsView, error)
	RequestDelete(ctx context.Context, id int) (*models.DoctorsView, error)
	DismissDelete(ctx context.Context) (*models.DoctorsView, error)
	ConfirmDelete(ctx context.Context) (*models.DoctorsView, error)
	OpenCreate(ctx context.Context) (*models.DoctorsView, error)
	CloseCreate(ctx context.Context) (*models.DoctorsView, error)
	Create(ctx context.Context, form *requests.DoctorForm) (*models.DoctorsView, error)
	DismissNotice(ctx context.Context) (*models.DoctorsView, error)
	Export(ctx context.Context) (*models.DoctorsView, error)
}

type DoctorClient interface {
	EntityClient[models.Doctor]
}
