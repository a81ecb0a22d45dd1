package departments

import (
	"context"
	"hospital-web-service/internal/app/contracts"
	"hospital-web-service/internal/app/models"
	"hospital-web-service/internal/app/services/core/entitylist"
	"hospital-web-service/internal/pkg/constvars"
	"hospital-web-service/internal/pkg/dto/requests"
	"hospital-web-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type departmentUsecase struct {
	*entitylist.Service[models.Department]
	DepartmentClient contracts.DepartmentClient
	Log              *zap.Logger
}

// Names is the wording used by the department list notices.
var Names = entitylist.Names{
	Resource:     constvars.ResourceNameDepartment,
	Display:      "Department",
	TitleCreated: constvars.NoticeTitleCreateDepartment,
	TitleUpdated: constvars.NoticeTitleDepartmentUpdated,
	TitleDeleted: constvars.NoticeTitleDepartmentDeleted,
}

func NewDepartmentUsecase(
	departmentClient contracts.DepartmentClient,
	viewStateRepository contracts.ViewStateRepository,
	auditRepository contracts.AuditRepository,
	logger *zap.Logger,
) contracts.DepartmentUsecase {
	list := entitylist.NewList[models.Department](departmentClient, auditRepository, Names, logger)
	return &departmentUsecase{
		Service:          entitylist.NewService(list, viewStateRepository, constvars.ViewDepartments, logger),
		DepartmentClient: departmentClient,
		Log:              logger,
	}
}

func (uc *departmentUsecase) Save(ctx context.Context, id int, form *requests.DepartmentForm) (*models.ListState[models.Department], error) {
	utils.SanitizeDepartmentForm(form)
	invalid := utils.ValidateStruct(form)
	pending := toDepartment(form)
	pending.ID = id
	return uc.SaveEntity(ctx, id, pending, invalid)
}

func (uc *departmentUsecase) Create(ctx context.Context, form *requests.DepartmentForm) (*models.ListState[models.Department], error) {
	utils.SanitizeDepartmentForm(form)
	invalid := utils.ValidateStruct(form)
	return uc.CreateEntity(ctx, toDepartment(form), invalid)
}

// FindDetails reads a department with its doctors. It does not touch the
// list view state.
func (uc *departmentUsecase) FindDetails(ctx context.Context, id int) (*models.DepartmentDetails, error) {
	uc.Log.Info("departmentUsecase.FindDetails called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.Int(constvars.LoggingRowIDKey, id),
	)
	return uc.DepartmentClient.FindByID(ctx, id)
}

func toDepartment(form *requests.DepartmentForm) models.Department {
	return models.Department{Name: form.Name}
}
