package contracts

import (
	"context"
	"hospital-web-service/internal/app/models"
	"hospital-web-service/internal/pkg/dto/requests"
)

type DepartmentUsecase interface {
	EntityListUsecase[models.Department, requests.DepartmentForm]
	FindDetails(ctx context.Context, id int) (*models.DepartmentDetails, error)
}

type DepartmentClient interface {
	EntityClient[models.Department]
	FindByID(ctx context.Context, id int) (*models.DepartmentDetails, error)
}
