package doctors

import (
	"context"
	"fmt"
	"hospital-web-service/internal/app/contracts"
	"hospital-web-service/internal/app/models"
	"hospital-web-service/internal/app/services/core/departments"
	"hospital-web-service/internal/app/services/core/entitylist"
	"hospital-web-service/internal/pkg/constvars"
	"hospital-web-service/internal/pkg/dto/requests"
	"hospital-web-service/internal/pkg/exceptions"
	"hospital-web-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// Names is the wording used by the doctor list notices.
var Names = entitylist.Names{
	Resource:     constvars.ResourceNameDoctor,
	Display:      "Doctor",
	TitleCreated: constvars.NoticeTitleCreateDoctor,
	TitleUpdated: constvars.NoticeTitleDoctorUpdated,
	TitleDeleted: constvars.NoticeTitleDoctorDeleted,
}

// doctorUsecase drives the doctors page. The department list is only
// fetched on mount and serves the create select and the name lookup.
type doctorUsecase struct {
	Doctors         *entitylist.Service[models.Doctor]
	Departments     *entitylist.Service[models.Department]
	ExportService   contracts.ExportService
	AuditRepository contracts.AuditRepository
	Log             *zap.Logger
}

func NewDoctorUsecase(
	doctorClient contracts.DoctorClient,
	departmentClient contracts.DepartmentClient,
	viewStateRepository contracts.ViewStateRepository,
	auditRepository contracts.AuditRepository,
	exportService contracts.ExportService,
	logger *zap.Logger,
) contracts.DoctorUsecase {
	doctorList := entitylist.NewList[models.Doctor](doctorClient, auditRepository, Names, logger)
	departmentList := entitylist.NewList[models.Department](departmentClient, auditRepository, departments.Names, logger)
	return &doctorUsecase{
		Doctors:         entitylist.NewService(doctorList, viewStateRepository, constvars.ViewDoctors, logger),
		Departments:     entitylist.NewService(departmentList, viewStateRepository, constvars.ViewDoctorDepartments, logger),
		ExportService:   exportService,
		AuditRepository: auditRepository,
		Log:             logger,
	}
}

func (uc *doctorUsecase) Mount(ctx context.Context) (*models.DoctorsView, error) {
	doctors, err := uc.Doctors.Mount(ctx)
	if err != nil {
		return nil, err
	}
	departmentList, err := uc.Departments.Mount(ctx)
	if err != nil {
		return nil, err
	}
	return &models.DoctorsView{Doctors: doctors, Departments: departmentList}, nil
}

func (uc *doctorUsecase) BeginEdit(ctx context.Context, id int) (*models.DoctorsView, error) {
	doctors, err := uc.Doctors.BeginEdit(ctx, id)
	return uc.view(ctx, doctors, err)
}

func (uc *doctorUsecase) CancelEdit(ctx context.Context) (*models.DoctorsView, error) {
	doctors, err := uc.Doctors.CancelEdit(ctx)
	return uc.view(ctx, doctors, err)
}

func (uc *doctorUsecase) Save(ctx context.Context, id int, form *requests.DoctorForm) (*models.DoctorsView, error) {
	utils.SanitizeDoctorForm(form)
	invalid := utils.ValidateStruct(form)
	pending := toDoctor(form)
	pending.ID = id
	doctors, err := uc.Doctors.SaveEntity(ctx, id, pending, invalid)
	return uc.view(ctx, doctors, err)
}

func (uc *doctorUsecase) RequestDelete(ctx context.Context, id int) (*models.DoctorsView, error) {
	doctors, err := uc.Doctors.RequestDelete(ctx, id)
	return uc.view(ctx, doctors, err)
}

func (uc *doctorUsecase) DismissDelete(ctx context.Context) (*models.DoctorsView, error) {
	doctors, err := uc.Doctors.DismissDelete(ctx)
	return uc.view(ctx, doctors, err)
}

func (uc *doctorUsecase) ConfirmDelete(ctx context.Context) (*models.DoctorsView, error) {
	doctors, err := uc.Doctors.ConfirmDelete(ctx)
	return uc.view(ctx, doctors, err)
}

func (uc *doctorUsecase) OpenCreate(ctx context.Context) (*models.DoctorsView, error) {
	doctors, err := uc.Doctors.OpenCreate(ctx)
	return uc.view(ctx, doctors, err)
}

func (uc *doctorUsecase) CloseCreate(ctx context.Context) (*models.DoctorsView, error) {
	doctors, err := uc.Doctors.CloseCreate(ctx)
	return uc.view(ctx, doctors, err)
}

func (uc *doctorUsecase) Create(ctx context.Context, form *requests.DoctorForm) (*models.DoctorsView, error) {
	utils.SanitizeDoctorForm(form)
	invalid := utils.ValidateStruct(form)
	doctors, err := uc.Doctors.CreateEntity(ctx, toDoctor(form), invalid)
	return uc.view(ctx, doctors, err)
}

// DismissNotice clears the notices of both lists, since either may be the
// one on screen.
func (uc *doctorUsecase) DismissNotice(ctx context.Context) (*models.DoctorsView, error) {
	doctors, err := uc.Doctors.DismissNotice(ctx)
	if err != nil {
		return nil, err
	}
	departmentList, err := uc.Departments.DismissNotice(ctx)
	if err != nil {
		return nil, err
	}
	return &models.DoctorsView{Doctors: doctors, Departments: departmentList}, nil
}

// Export writes the cached doctor list to object storage and shows the
// download link. No backend call is made.
func (uc *doctorUsecase) Export(ctx context.Context) (*models.DoctorsView, error) {
	departmentList, err := uc.Departments.Load(ctx)
	if err != nil {
		return nil, err
	}

	doctors, err := uc.Doctors.Apply(ctx, constvars.EventExport, func(state *models.ListState[models.Doctor]) error {
		if uc.ExportService == nil || !uc.ExportService.Enabled() {
			state.Notice = models.NewErrorNotice(constvars.NoticeExportFailed)
			return exceptions.ErrMinioNotConfigured()
		}

		export, err := uc.ExportService.ExportDoctors(ctx, state.Items, departmentList.Items)
		if err != nil {
			state.Notice = models.NewErrorNotice(constvars.NoticeExportFailed)
			return err
		}

		uc.recordExport(ctx, export.Object, len(state.Items))
		state.Notice = models.NewSuccessNotice(constvars.NoticeTitleExport, fmt.Sprintf(constvars.NoticeExportCreated, export.URL))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &models.DoctorsView{Doctors: doctors, Departments: departmentList}, nil
}

// view pairs a doctors event result with the stored department list.
func (uc *doctorUsecase) view(ctx context.Context, doctors *models.ListState[models.Doctor], err error) (*models.DoctorsView, error) {
	if err != nil {
		return nil, err
	}
	departmentList, err := uc.Departments.Load(ctx)
	if err != nil {
		return nil, err
	}
	return &models.DoctorsView{Doctors: doctors, Departments: departmentList}, nil
}

func (uc *doctorUsecase) recordExport(ctx context.Context, object string, count int) {
	if uc.AuditRepository == nil {
		return
	}
	entry := &models.AuditEntry{
		RequestID: utils.GetRequestID(ctx),
		SessionID: utils.GetSessionID(ctx),
		Resource:  constvars.ResourceNameDoctor,
		Action:    models.AuditActionExport,
		Summary:   fmt.Sprintf("%s (%d rows)", object, count),
	}
	if err := uc.AuditRepository.Record(ctx, entry); err != nil {
		uc.Log.Warn("doctorUsecase.Export failed to write audit entry",
			zap.String(constvars.LoggingRequestIDKey, entry.RequestID),
			zap.Error(err),
		)
	}
}

func toDoctor(form *requests.DoctorForm) models.Doctor {
	return models.Doctor{
		Name:         form.Name,
		Surname:      form.Surname,
		Address:      form.Address,
		DepartmentID: form.DepartmentID,
		IsAvailable:  form.IsAvailable,
	}
}
