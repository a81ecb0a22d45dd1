package doctors

import (
	"context"
	"errors"
	"hospital-web-service/internal/app/models"
	"hospital-web-service/internal/app/services/shared/viewstate"
	"hospital-web-service/internal/pkg/constvars"
	"hospital-web-service/internal/pkg/dto/requests"
	"hospital-web-service/internal/pkg/dto/responses"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockDoctorClient struct {
	mock.Mock
}

func (m *mockDoctorClient) FindAll(ctx context.Context) ([]models.Doctor, error) {
	args := m.Called(ctx)
	doctors, _ := args.Get(0).([]models.Doctor)
	return doctors, args.Error(1)
}

func (m *mockDoctorClient) Create(ctx context.Context, doctor models.Doctor) (*models.Doctor, error) {
	args := m.Called(ctx, doctor)
	created, _ := args.Get(0).(*models.Doctor)
	return created, args.Error(1)
}

func (m *mockDoctorClient) Update(ctx context.Context, id int, doctor models.Doctor) (*models.Doctor, error) {
	args := m.Called(ctx, id, doctor)
	updated, _ := args.Get(0).(*models.Doctor)
	return updated, args.Error(1)
}

func (m *mockDoctorClient) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

type mockDepartmentClient struct {
	mock.Mock
}

func (m *mockDepartmentClient) FindAll(ctx context.Context) ([]models.Department, error) {
	args := m.Called(ctx)
	departments, _ := args.Get(0).([]models.Department)
	return departments, args.Error(1)
}

func (m *mockDepartmentClient) FindByID(ctx context.Context, id int) (*models.DepartmentDetails, error) {
	args := m.Called(ctx, id)
	details, _ := args.Get(0).(*models.DepartmentDetails)
	return details, args.Error(1)
}

func (m *mockDepartmentClient) Create(ctx context.Context, department models.Department) (*models.Department, error) {
	args := m.Called(ctx, department)
	created, _ := args.Get(0).(*models.Department)
	return created, args.Error(1)
}

func (m *mockDepartmentClient) Update(ctx context.Context, id int, department models.Department) (*models.Department, error) {
	args := m.Called(ctx, id, department)
	updated, _ := args.Get(0).(*models.Department)
	return updated, args.Error(1)
}

func (m *mockDepartmentClient) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

type mockExportService struct {
	mock.Mock
}

func (m *mockExportService) Enabled() bool {
	return m.Called().Bool(0)
}

func (m *mockExportService) ExportDoctors(ctx context.Context, doctors []models.Doctor, departments []models.Department) (*responses.Export, error) {
	args := m.Called(ctx, doctors, departments)
	export, _ := args.Get(0).(*responses.Export)
	return export, args.Error(1)
}

type mockAuditRepository struct {
	mock.Mock
}

func (m *mockAuditRepository) Record(ctx context.Context, entry *models.AuditEntry) error {
	return m.Called(ctx, entry).Error(0)
}

var (
	seedDoctors = []models.Doctor{
		{ID: 1, Name: "Ana", Surname: "Diaz", Address: "1 Main St", DepartmentID: 10, IsAvailable: true},
		{ID: 2, Name: "Ben", Surname: "Kim", Address: "2 Elm St", DepartmentID: 20, IsAvailable: false},
	}
	seedDepartments = []models.Department{
		{ID: 10, Name: "Cardiology"},
		{ID: 20, Name: "Oncology"},
	}
)

type fixture struct {
	usecase     *doctorUsecase
	doctors     *mockDoctorClient
	departments *mockDepartmentClient
	export      *mockExportService
	audit       *mockAuditRepository
	ctx         context.Context
}

func setup(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		doctors:     new(mockDoctorClient),
		departments: new(mockDepartmentClient),
		export:      new(mockExportService),
		audit:       new(mockAuditRepository),
		ctx:         context.WithValue(context.Background(), constvars.CONTEXT_SESSION_ID_KEY, "session-1"),
	}
	f.audit.On("Record", mock.Anything, mock.Anything).Return(nil).Maybe()
	usecase := NewDoctorUsecase(f.doctors, f.departments, viewstate.NewMemoryViewStateRepository(time.Hour), f.audit, f.export, zap.NewNop())
	f.usecase = usecase.(*doctorUsecase)
	return f
}

func (f *fixture) mount(t *testing.T) *models.DoctorsView {
	t.Helper()
	f.doctors.On("FindAll", mock.Anything).Return(append([]models.Doctor(nil), seedDoctors...), nil).Once()
	f.departments.On("FindAll", mock.Anything).Return(append([]models.Department(nil), seedDepartments...), nil).Once()
	view, err := f.usecase.Mount(f.ctx)
	require.NoError(t, err)
	return view
}

func TestDoctorUsecase_MountLoadsDoctorsAndDepartments(t *testing.T) {
	f := setup(t)

	view := f.mount(t)

	assert.Equal(t, seedDoctors, view.Doctors.Items)
	assert.Equal(t, seedDepartments, view.Departments.Items)
	assert.Equal(t, "Oncology", view.Doctors.Items[1].DepartmentName(view.Departments.Items))
	assert.Nil(t, view.Notice())
}

func TestDoctorUsecase_MountDoctorsFailure(t *testing.T) {
	f := setup(t)
	f.doctors.On("FindAll", mock.Anything).Return(nil, errors.New("down")).Once()
	f.departments.On("FindAll", mock.Anything).Return(seedDepartments, nil).Once()

	view, err := f.usecase.Mount(f.ctx)

	require.NoError(t, err)
	assert.Empty(t, view.Doctors.Items)
	assert.Equal(t, "Failed to fetch doctors. Please try again later.", view.Notice().Text)
}

func TestDoctorUsecase_DepartmentsFailureStillShowsDoctors(t *testing.T) {
	f := setup(t)
	f.doctors.On("FindAll", mock.Anything).Return(seedDoctors, nil).Once()
	f.departments.On("FindAll", mock.Anything).Return(nil, errors.New("down")).Once()

	view, err := f.usecase.Mount(f.ctx)

	require.NoError(t, err)
	assert.Len(t, view.Doctors.Items, 2)
	assert.Equal(t, constvars.UnknownDepartmentName, view.Doctors.Items[0].DepartmentName(view.Departments.Items))
	assert.Equal(t, "Failed to fetch departments. Please try again later.", view.Notice().Text)

	view, err = f.usecase.DismissNotice(f.ctx)
	require.NoError(t, err)
	assert.Nil(t, view.Notice())
}

func TestDoctorUsecase_EventsKeepDepartmentList(t *testing.T) {
	f := setup(t)
	f.mount(t)

	view, err := f.usecase.BeginEdit(f.ctx, 2)

	require.NoError(t, err)
	assert.True(t, view.Doctors.IsEditing(2))
	assert.Equal(t, seedDepartments, view.Departments.Items)
	f.departments.AssertNumberOfCalls(t, "FindAll", 1)
}

func TestDoctorUsecase_SaveSendsFormValues(t *testing.T) {
	f := setup(t)
	f.mount(t)
	_, err := f.usecase.BeginEdit(f.ctx, 2)
	require.NoError(t, err)

	expected := models.Doctor{ID: 2, Name: "Ben", Surname: "Kim", Address: "3 Oak St", DepartmentID: 10, IsAvailable: true}
	f.doctors.On("Update", mock.Anything, 2, expected).Return(&expected, nil).Once()
	f.doctors.On("FindAll", mock.Anything).Return([]models.Doctor{seedDoctors[0], expected}, nil).Once()

	view, err := f.usecase.Save(f.ctx, 2, &requests.DoctorForm{
		Name: " Ben ", Surname: "Kim", Address: " 3 Oak St ", DepartmentID: 10, IsAvailable: true,
	})

	require.NoError(t, err)
	assert.Nil(t, view.Doctors.Edit)
	assert.Equal(t, expected, view.Doctors.Items[1])
	assert.Equal(t, "Doctor updated successfully.", view.Notice().Text)
	f.doctors.AssertExpectations(t)
}

func TestDoctorUsecase_CreateRequiresDepartment(t *testing.T) {
	f := setup(t)
	f.mount(t)

	view, err := f.usecase.Create(f.ctx, &requests.DoctorForm{Name: "Cy", Surname: "Lo", Address: "4 Pine St"})

	require.NoError(t, err)
	assert.True(t, view.Doctors.CreateOpen)
	assert.Equal(t, "departmentid is required", view.Notice().Text)
	f.doctors.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDoctorUsecase_ExportDisabled(t *testing.T) {
	f := setup(t)
	f.mount(t)
	f.export.On("Enabled").Return(false)

	view, err := f.usecase.Export(f.ctx)

	require.NoError(t, err)
	assert.Equal(t, constvars.NoticeExportFailed, view.Notice().Text)
	f.export.AssertNotCalled(t, "ExportDoctors", mock.Anything, mock.Anything, mock.Anything)
}

func TestDoctorUsecase_ExportCachedRoster(t *testing.T) {
	f := setup(t)
	f.mount(t)
	f.export.On("Enabled").Return(true)
	f.export.On("ExportDoctors", mock.Anything, seedDoctors, seedDepartments).
		Return(&responses.Export{Object: "exports/doctors/x.csv", URL: "http://minio/x.csv"}, nil).Once()

	view, err := f.usecase.Export(f.ctx)

	require.NoError(t, err)
	assert.Equal(t, constvars.NoticeTitleExport, view.Notice().Title)
	assert.Contains(t, view.Notice().Text, "http://minio/x.csv")
	f.doctors.AssertNumberOfCalls(t, "FindAll", 1)
	f.audit.AssertCalled(t, "Record", mock.Anything, mock.MatchedBy(func(entry *models.AuditEntry) bool {
		return entry.Action == models.AuditActionExport
	}))
}

func TestDoctorUsecase_ExportFailure(t *testing.T) {
	f := setup(t)
	f.mount(t)
	f.export.On("Enabled").Return(true)
	f.export.On("ExportDoctors", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("minio down")).Once()

	view, err := f.usecase.Export(f.ctx)

	require.NoError(t, err)
	assert.True(t, view.Notice().IsError())
	assert.Equal(t, seedDoctors, view.Doctors.Items)
}
