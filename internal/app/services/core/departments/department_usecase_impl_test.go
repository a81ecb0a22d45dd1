package departments

import (
	"context"
	"errors"
	"hospital-web-service/internal/app/models"
	"hospital-web-service/internal/app/services/shared/audit"
	"hospital-web-service/internal/app/services/shared/viewstate"
	"hospital-web-service/internal/pkg/constvars"
	"hospital-web-service/internal/pkg/dto/requests"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

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

func setup(t *testing.T) (*departmentUsecase, *mockDepartmentClient, context.Context) {
	t.Helper()
	client := new(mockDepartmentClient)
	logger := zap.NewNop()
	usecase := NewDepartmentUsecase(client, viewstate.NewMemoryViewStateRepository(time.Hour), audit.NewAuditLogRepository(logger), logger)
	ctx := context.WithValue(context.Background(), constvars.CONTEXT_SESSION_ID_KEY, "session-1")
	return usecase.(*departmentUsecase), client, ctx
}

func TestDepartmentUsecase_SaveSanitizesAndSetsID(t *testing.T) {
	usecase, client, ctx := setup(t)
	client.On("FindAll", mock.Anything).Return([]models.Department{{ID: 7, Name: "Cardiology"}}, nil).Once()
	_, err := usecase.Mount(ctx)
	require.NoError(t, err)
	_, err = usecase.BeginEdit(ctx, 7)
	require.NoError(t, err)

	expected := models.Department{ID: 7, Name: "Pediatric Cardiology"}
	client.On("Update", mock.Anything, 7, expected).Return(&expected, nil).Once()
	client.On("FindAll", mock.Anything).Return([]models.Department{expected}, nil).Once()

	state, err := usecase.Save(ctx, 7, &requests.DepartmentForm{Name: "  Pediatric   Cardiology "})

	require.NoError(t, err)
	assert.Nil(t, state.Edit)
	assert.Equal(t, []models.Department{expected}, state.Items)
	client.AssertExpectations(t)
}

func TestDepartmentUsecase_CreateRequiresName(t *testing.T) {
	usecase, client, ctx := setup(t)

	state, err := usecase.Create(ctx, &requests.DepartmentForm{Name: "   "})

	require.NoError(t, err)
	assert.True(t, state.CreateOpen)
	assert.Equal(t, "name is required", state.Notice.Text)
	client.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDepartmentUsecase_FindDetails(t *testing.T) {
	usecase, client, ctx := setup(t)
	details := &models.DepartmentDetails{ID: 3, Name: "Radiology", Doctors: []models.Doctor{{ID: 1, Name: "Ana", Surname: "Diaz"}}}
	client.On("FindByID", mock.Anything, 3).Return(details, nil).Once()

	got, err := usecase.FindDetails(ctx, 3)

	require.NoError(t, err)
	assert.Equal(t, details, got)
}

func TestDepartmentUsecase_FindDetailsError(t *testing.T) {
	usecase, client, ctx := setup(t)
	client.On("FindByID", mock.Anything, 3).Return(nil, errors.New("boom")).Once()

	got, err := usecase.FindDetails(ctx, 3)

	assert.Error(t, err)
	assert.Nil(t, got)
}
