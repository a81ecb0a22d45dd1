package routers

import (
	"encoding/json"
	"hospital-web-service/internal/app/config"
	"hospital-web-service/internal/app/delivery/http/controllers"
	"hospital-web-service/internal/app/delivery/http/middlewares"
	"hospital-web-service/internal/app/delivery/http/views"
	"hospital-web-service/internal/app/models"
	"hospital-web-service/internal/app/services/core/appointments"
	"hospital-web-service/internal/app/services/core/departments"
	"hospital-web-service/internal/app/services/core/doctors"
	backendAppointments "hospital-web-service/internal/app/services/hospital_backend/appointments"
	backendDepartments "hospital-web-service/internal/app/services/hospital_backend/departments"
	backendDoctors "hospital-web-service/internal/app/services/hospital_backend/doctors"
	"hospital-web-service/internal/app/services/hospital_backend/transport"
	"hospital-web-service/internal/app/services/shared/audit"
	"hospital-web-service/internal/app/services/shared/eventqueue"
	"hospital-web-service/internal/app/services/shared/storage"
	"hospital-web-service/internal/app/services/shared/viewstate"
	"hospital-web-service/internal/pkg/dto/requests"
	"hospital-web-service/web"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeBackend is an in-memory stand-in for the hospital REST service.
type fakeBackend struct {
	mu           sync.Mutex
	departments  []models.Department
	doctors      []models.Doctor
	appointments []requests.CreateAppointment
	calls        map[string]int
	failReads    bool
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		departments: []models.Department{{ID: 1, Name: "Cardiology"}, {ID: 2, Name: "Oncology"}},
		doctors: []models.Doctor{
			{ID: 1, Name: "Ana", Surname: "Diaz", Address: "1 Main St", DepartmentID: 1, IsAvailable: true},
			{ID: 2, Name: "Ben", Surname: "Kim", Address: "2 Elm St", DepartmentID: 9, IsAvailable: false},
		},
		calls: map[string]int{},
	}
}

func (b *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /Departments", func(w http.ResponseWriter, r *http.Request) {
		b.count(r)
		if b.failReads {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		b.writeJSON(w, b.departments)
	})
	mux.HandleFunc("PUT /Departments/{id}", func(w http.ResponseWriter, r *http.Request) {
		b.count(r)
		id, _ := strconv.Atoi(r.PathValue("id"))
		b.mu.Lock()
		for i := range b.departments {
			if b.departments[i].ID == id {
				b.departments[i].Name = r.FormValue("name")
			}
		}
		b.mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("POST /Departments", func(w http.ResponseWriter, r *http.Request) {
		b.count(r)
		b.mu.Lock()
		created := models.Department{ID: len(b.departments) + 1, Name: r.FormValue("name")}
		b.departments = append(b.departments, created)
		b.mu.Unlock()
		w.WriteHeader(http.StatusCreated)
		b.writeJSON(w, created)
	})
	mux.HandleFunc("DELETE /Departments/{id}", func(w http.ResponseWriter, r *http.Request) {
		b.count(r)
		id, _ := strconv.Atoi(r.PathValue("id"))
		b.mu.Lock()
		kept := b.departments[:0]
		for _, department := range b.departments {
			if department.ID != id {
				kept = append(kept, department)
			}
		}
		b.departments = kept
		b.mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("GET /Doctors", func(w http.ResponseWriter, r *http.Request) {
		b.count(r)
		b.writeJSON(w, b.doctors)
	})
	mux.HandleFunc("POST /api/appointments", func(w http.ResponseWriter, r *http.Request) {
		b.count(r)
		var appointment requests.CreateAppointment
		if err := json.NewDecoder(r.Body).Decode(&appointment); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		b.mu.Lock()
		b.appointments = append(b.appointments, appointment)
		b.mu.Unlock()
		w.WriteHeader(http.StatusCreated)
		b.writeJSON(w, appointment)
	})
	return mux
}

func (b *fakeBackend) count(r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	key := r.Method + " " + r.URL.Path
	if strings.Count(r.URL.Path, "/") > 1 {
		key = r.Method + " " + r.URL.Path[:strings.LastIndex(r.URL.Path, "/")] + "/{id}"
	}
	b.calls[key]++
}

func (b *fakeBackend) callCount(key string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls[key]
}

func (b *fakeBackend) writeJSON(w http.ResponseWriter, v interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

type browser struct {
	t       *testing.T
	router  http.Handler
	cookies []*http.Cookie
}

func (b *browser) do(method, path string, form url.Values) *httptest.ResponseRecorder {
	b.t.Helper()
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for _, cookie := range b.cookies {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	b.router.ServeHTTP(rec, req)
	if cookies := rec.Result().Cookies(); len(cookies) > 0 {
		b.cookies = cookies
	}
	return rec
}

func setupRouter(t *testing.T, backend *fakeBackend) *browser {
	t.Helper()
	server := httptest.NewServer(backend.handler())
	t.Cleanup(server.Close)

	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		App: config.App{
			Version:                    "test",
			Timezone:                   "UTC",
			MaxRequests:                1000,
			MaxTimeRequestsPerSeconds:  1,
			RequestTimeoutInSeconds:    5,
			RequestBodyLimitInMegabyte: 1,
			CORSAllowedOrigins:         []string{"*"},
		},
		Backend:     config.AppBackend{BaseUrl: server.URL, RequestTimeoutInSeconds: 2},
		Session:     config.AppSession{CookieSecret: "test-secret", CookieMaxAgeInHours: 1},
		Appointment: config.AppAppointment{DefaultPatientID: 1},
	}

	renderer, err := views.NewRenderer(web.Templates, logger)
	require.NoError(t, err)

	backendTransport := transport.NewTransport(internalConfig.Backend, logger)
	departmentClient := backendDepartments.NewDepartmentBackendClient(backendTransport, logger)
	doctorClient := backendDoctors.NewDoctorBackendClient(backendTransport, logger)
	appointmentClient := backendAppointments.NewAppointmentBackendClient(backendTransport, logger)

	viewStateRepository := viewstate.NewMemoryViewStateRepository(time.Hour)
	auditRepository := audit.NewAuditLogRepository(logger)
	exportService := storage.NewExportService(nil, "", time.Hour, logger)

	router := chi.NewRouter()
	SetupRoutes(router, internalConfig, logger, nil,
		middlewares.NewMiddlewares(logger, middlewares.NewSessionStore(internalConfig.Session), renderer, internalConfig),
		Controllers{
			Home:   controllers.NewHomeController(logger, renderer),
			Health: controllers.NewHealthController(logger, internalConfig, viewStateRepository, nil),
			Department: controllers.NewDepartmentController(logger,
				departments.NewDepartmentUsecase(departmentClient, viewStateRepository, auditRepository, logger), renderer),
			Doctor: controllers.NewDoctorController(logger,
				doctors.NewDoctorUsecase(doctorClient, departmentClient, viewStateRepository, auditRepository, exportService, logger), renderer),
			Appointment: controllers.NewAppointmentController(logger,
				appointments.NewAppointmentUsecase(doctorClient, appointmentClient, viewStateRepository, auditRepository, eventqueue.NewLogPublisher(logger), internalConfig, logger), renderer),
		},
	)

	return &browser{t: t, router: router}
}

func TestRouter_HomeAndHealth(t *testing.T) {
	b := setupRouter(t, newFakeBackend())

	rec := b.do(http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Hospital Administration")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	rec = b.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"session_store":"memory"`)
}

func TestRouter_UnknownPathRendersNotFound(t *testing.T) {
	b := setupRouter(t, newFakeBackend())

	rec := b.do(http.MethodGet, "/nowhere", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "the page you are looking for does not exist")
}

func TestRouter_DepartmentsMountListsRowsAndSetsSession(t *testing.T) {
	backend := newFakeBackend()
	b := setupRouter(t, backend)

	rec := b.do(http.MethodGet, "/departments", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Cardiology")
	assert.Contains(t, body, "Oncology")
	assert.NotEmpty(t, b.cookies)
	assert.Equal(t, 1, backend.callCount("GET /Departments"))
}

func TestRouter_DepartmentEditAndSave(t *testing.T) {
	backend := newFakeBackend()
	b := setupRouter(t, backend)
	b.do(http.MethodGet, "/departments", nil)

	rec := b.do(http.MethodPost, "/departments/2/edit", url.Values{})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `action="/departments/2/save"`)
	assert.NotContains(t, rec.Body.String(), `action="/departments/1/save"`)

	rec = b.do(http.MethodPost, "/departments/2/save", url.Values{"name": {"Hematology"}})

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Hematology")
	assert.Contains(t, body, "Department updated successfully.")
	assert.NotContains(t, body, `action="/departments/2/save"`)
	assert.Equal(t, 1, backend.callCount("PUT /Departments/{id}"))
	assert.Equal(t, 2, backend.callCount("GET /Departments"))
}

func TestRouter_DepartmentDeleteNeedsConfirmation(t *testing.T) {
	backend := newFakeBackend()
	b := setupRouter(t, backend)
	b.do(http.MethodGet, "/departments", nil)

	rec := b.do(http.MethodPost, "/departments/1/delete", url.Values{})
	assert.Contains(t, rec.Body.String(), "Yes, Delete")
	assert.Equal(t, 0, backend.callCount("DELETE /Departments/{id}"))

	rec = b.do(http.MethodPost, "/departments/delete/confirm", url.Values{})

	body := rec.Body.String()
	assert.Contains(t, body, `Department &#34;Cardiology&#34; has been deleted successfully.`)
	assert.Equal(t, 1, backend.callCount("DELETE /Departments/{id}"))
	assert.Equal(t, 1, backend.callCount("GET /Departments"))
}

func TestRouter_DepartmentCreate(t *testing.T) {
	backend := newFakeBackend()
	b := setupRouter(t, backend)
	b.do(http.MethodGet, "/departments", nil)
	b.do(http.MethodPost, "/departments/create/open", url.Values{})

	rec := b.do(http.MethodPost, "/departments/create", url.Values{"name": {"Neurology"}})

	assert.Contains(t, rec.Body.String(), "Neurology")
	assert.Contains(t, rec.Body.String(), "Department created successfully.")
	assert.Equal(t, 1, backend.callCount("POST /Departments"))
	assert.Equal(t, 2, backend.callCount("GET /Departments"))
}

func TestRouter_DepartmentsFetchFailureShowsNotice(t *testing.T) {
	backend := newFakeBackend()
	backend.failReads = true
	b := setupRouter(t, backend)

	rec := b.do(http.MethodGet, "/departments", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to fetch departments. Please try again later.")
	assert.Contains(t, rec.Body.String(), "No departments found")
}

func TestRouter_InvalidRowID(t *testing.T) {
	b := setupRouter(t, newFakeBackend())

	rec := b.do(http.MethodPost, "/departments/abc/edit", url.Values{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_DoctorsShowDepartmentNames(t *testing.T) {
	b := setupRouter(t, newFakeBackend())

	rec := b.do(http.MethodGet, "/doctors", nil)

	body := rec.Body.String()
	assert.Contains(t, body, "Ana")
	assert.Contains(t, body, "Cardiology")
	assert.Contains(t, body, "Unknown")
}

func TestRouter_DoctorsExportWithoutStorage(t *testing.T) {
	b := setupRouter(t, newFakeBackend())
	b.do(http.MethodGet, "/doctors", nil)

	rec := b.do(http.MethodPost, "/doctors/export", url.Values{})

	assert.Contains(t, rec.Body.String(), "Failed to export doctors. Please try again.")
}

func TestRouter_BookAppointment(t *testing.T) {
	backend := newFakeBackend()
	b := setupRouter(t, backend)

	rec := b.do(http.MethodGet, "/appointments", nil)
	assert.Contains(t, rec.Body.String(), "Ana Diaz")

	rec = b.do(http.MethodPost, "/appointments/doctors/1/book", url.Values{})
	assert.Contains(t, rec.Body.String(), "Selected Doctor: Ana Diaz")
	assert.Contains(t, rec.Body.String(), `<option value="20:00"`)

	rec = b.do(http.MethodPost, "/appointments/book/confirm", url.Values{
		"date":        {"2024-03-05"},
		"time":        {"10:00"},
		"patientName": {"Jo Park"},
	})

	assert.Contains(t, rec.Body.String(), "has been successfully created.")
	require.Len(t, backend.appointments, 1)
	booked := backend.appointments[0]
	assert.Equal(t, "2024-03-05 10:00:00", booked.Start)
	assert.Equal(t, "2024-03-05 11:00:00", booked.End)
	assert.Equal(t, 1, booked.PatientID)
	assert.Equal(t, "Ana Diaz", booked.DoctorName)
}
