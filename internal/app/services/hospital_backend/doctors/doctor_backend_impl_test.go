package doctors

import (
	"context"
	"hospital-web-service/internal/app/config"
	"hospital-web-service/internal/app/models"
	"hospital-web-service/internal/app/services/hospital_backend/transport"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *doctorBackendClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	tr := transport.NewTransport(config.AppBackend{BaseUrl: server.URL, RequestTimeoutInSeconds: 2}, zap.NewNop())
	return NewDoctorBackendClient(tr, zap.NewNop()).(*doctorBackendClient)
}

func TestDoctorBackendClient_FindAll(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Doctors", r.URL.Path)
		w.Write([]byte(`[{"id":1,"name":"Gregory","surname":"House","address":"Princeton","departmentId":2,"isAvailable":false}]`))
	})

	doctors, err := client.FindAll(context.Background())

	require.NoError(t, err)
	require.Len(t, doctors, 1)
	assert.Equal(t, models.Doctor{ID: 1, Name: "Gregory", Surname: "House", Address: "Princeton", DepartmentID: 2}, doctors[0])
}

func TestDoctorBackendClient_CreateSendsAllFields(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "Lisa", r.PostForm.Get("name"))
		assert.Equal(t, "Cuddy", r.PostForm.Get("surname"))
		assert.Equal(t, "Plainsboro", r.PostForm.Get("address"))
		assert.Equal(t, "3", r.PostForm.Get("departmentId"))
		assert.Equal(t, "true", r.PostForm.Get("isAvailable"))
		w.WriteHeader(http.StatusCreated)
	})

	doctor := models.Doctor{Name: "Lisa", Surname: "Cuddy", Address: "Plainsboro", DepartmentID: 3, IsAvailable: true}
	created, err := client.Create(context.Background(), doctor)

	require.NoError(t, err)
	assert.Equal(t, doctor, *created)
}

func TestDoctorBackendClient_UpdateFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Doctors/8", r.URL.Path)
		w.WriteHeader(http.StatusBadRequest)
	})

	updated, err := client.Update(context.Background(), 8, models.Doctor{Name: "James"})

	assert.Nil(t, updated)
	assert.Error(t, err)
}

func TestDoctorBackendClient_Delete(t *testing.T) {
	called := false
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/Doctors/8", r.URL.Path)
	})

	require.NoError(t, client.Delete(context.Background(), 8))
	assert.True(t, called)
}
