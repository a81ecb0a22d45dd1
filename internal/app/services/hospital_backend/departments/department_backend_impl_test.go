package departments

import (
	"context"
	"hospital-web-service/internal/app/config"
	"hospital-web-service/internal/app/models"
	"hospital-web-service/internal/app/services/hospital_backend/transport"
	"hospital-web-service/internal/pkg/constvars"
	"hospital-web-service/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *departmentBackendClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	tr := transport.NewTransport(config.AppBackend{BaseUrl: server.URL, RequestTimeoutInSeconds: 2}, zap.NewNop())
	return NewDepartmentBackendClient(tr, zap.NewNop()).(*departmentBackendClient)
}

func TestDepartmentBackendClient_FindAll(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/Departments", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":1,"name":"Cardiology"},{"id":2,"name":"Oncology"}]`))
	})

	departments, err := client.FindAll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []models.Department{{ID: 1, Name: "Cardiology"}, {ID: 2, Name: "Oncology"}}, departments)
}

func TestDepartmentBackendClient_FindAllEmptyList(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	departments, err := client.FindAll(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, departments)
	assert.Empty(t, departments)
}

func TestDepartmentBackendClient_FindAllServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	departments, err := client.FindAll(context.Background())

	assert.Nil(t, departments)
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusBadGateway, customErr.StatusCode)
	assert.Contains(t, customErr.DevMessage, "failed to fetch department")
}

func TestDepartmentBackendClient_FindByID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Departments/3", r.URL.Path)
		w.Write([]byte(`{"id":3,"name":"Neurology","doctors":[{"id":9,"name":"Ana","surname":"Lima","address":"Main St 1","departmentId":3,"isAvailable":true}]}`))
	})

	details, err := client.FindByID(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, "Neurology", details.Name)
	require.Len(t, details.Doctors, 1)
	assert.Equal(t, "Ana Lima", details.Doctors[0].FullName())
}

func TestDepartmentBackendClient_FindByIDNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.FindByID(context.Background(), 99)

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
}

func TestDepartmentBackendClient_CreateSendsForm(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/Departments", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "Radiology", r.PostForm.Get("name"))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":12,"name":"Radiology"}`))
	})

	created, err := client.Create(context.Background(), models.Department{Name: "Radiology"})

	require.NoError(t, err)
	assert.Equal(t, 12, created.ID)
}

func TestDepartmentBackendClient_UpdateWithEmptyBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/Departments/4", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "Pediatrics", r.PostForm.Get("name"))
		w.WriteHeader(http.StatusNoContent)
	})

	updated, err := client.Update(context.Background(), 4, models.Department{Name: "Pediatrics"})

	require.NoError(t, err)
	assert.Equal(t, models.Department{ID: 4, Name: "Pediatrics"}, *updated)
}

func TestDepartmentBackendClient_Delete(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "/Departments/5", r.URL.Path)
			w.WriteHeader(http.StatusNoContent)
		})

		assert.NoError(t, client.Delete(context.Background(), 5))
	})

	t.Run("Conflict", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			w.Write([]byte(`{"detail":"department still has doctors"}`))
		})

		err := client.Delete(context.Background(), 5)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Contains(t, customErr.DevMessage, "department still has doctors")
	})
}
