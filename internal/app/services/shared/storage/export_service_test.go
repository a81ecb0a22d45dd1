package storage

import (
	"context"
	"errors"
	"hospital-web-service/internal/app/models"
	"hospital-web-service/internal/pkg/exceptions"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockStorage struct {
	mock.Mock
	uploaded string
}

func (m *mockStorage) UploadObject(ctx context.Context, bucketName, objectName, contentType string, body io.Reader, size int64) (string, error) {
	data, _ := io.ReadAll(body)
	m.uploaded = string(data)
	args := m.Called(ctx, bucketName, objectName, contentType, size)
	return args.String(0), args.Error(1)
}

func (m *mockStorage) GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error) {
	args := m.Called(ctx, bucketName, objectName, expiryTime)
	return args.String(0), args.Error(1)
}

var (
	testDepartments = []models.Department{{ID: 1, Name: "Cardiology"}}
	testDoctors     = []models.Doctor{
		{ID: 3, Name: "Ana", Surname: "Lima", Address: "Rua A, 1", DepartmentID: 1, IsAvailable: true},
		{ID: 4, Name: "Rui", Surname: "Costa", Address: "Rua B", DepartmentID: 9},
	}
)

func TestBuildDoctorsCSV(t *testing.T) {
	body, err := BuildDoctorsCSV(testDoctors, testDepartments)

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(body)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "id,name,surname,address,department,is_available", lines[0])
	assert.Equal(t, `3,Ana,Lima,"Rua A, 1",Cardiology,true`, lines[1])
	assert.Equal(t, "4,Rui,Costa,Rua B,Unknown,false", lines[2])
}

func TestExportService_ExportDoctors(t *testing.T) {
	storage := new(mockStorage)
	service := NewExportService(storage, "exports", time.Hour, zap.NewNop()).(*exportService)
	service.now = func() time.Time { return time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC) }

	storage.On("UploadObject", mock.Anything, "exports", mock.MatchedBy(func(name string) bool {
		return strings.HasPrefix(name, "exports/doctors/20240501T100000Z-") && strings.HasSuffix(name, ".csv")
	}), "text/csv", mock.AnythingOfType("int64")).Return("ignored", nil)
	storage.On("GetObjectUrlWithExpiryTime", mock.Anything, "exports", mock.Anything, time.Hour).Return("http://minio/exports/doctors.csv?sig=1", nil)

	export, err := service.ExportDoctors(context.Background(), testDoctors, testDepartments)

	require.NoError(t, err)
	assert.Equal(t, "http://minio/exports/doctors.csv?sig=1", export.URL)
	assert.Contains(t, storage.uploaded, "Ana,Lima")
	storage.AssertExpectations(t)
}

func TestExportService_UploadFailure(t *testing.T) {
	storage := new(mockStorage)
	service := NewExportService(storage, "exports", time.Hour, zap.NewNop())
	storage.On("UploadObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("bucket gone"))

	export, err := service.ExportDoctors(context.Background(), testDoctors, testDepartments)

	assert.Nil(t, export)
	assert.EqualError(t, err, "bucket gone")
	storage.AssertNotCalled(t, "GetObjectUrlWithExpiryTime", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestExportService_Disabled(t *testing.T) {
	service := NewExportService(nil, "exports", time.Hour, zap.NewNop())

	assert.False(t, service.Enabled())
	_, err := service.ExportDoctors(context.Background(), testDoctors, testDepartments)

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, 503, customErr.StatusCode)
}
