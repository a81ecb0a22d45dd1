package utils

import (
	"errors"
	"hospital-web-service/internal/pkg/constvars"
	"hospital-web-service/internal/pkg/dto/requests"
	"hospital-web-service/internal/pkg/exceptions"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

var errNotPositive = errors.New("value must be a positive integer")

// ParseURLParamID reads a positive integer id from the chi route.
func ParseURLParamID(r *http.Request, paramName string) (int, error) {
	raw := chi.URLParam(r, paramName)
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, exceptions.ErrURLParamIDValidation(err, paramName)
	}
	if id <= 0 {
		return 0, exceptions.ErrURLParamIDValidation(errNotPositive, paramName)
	}
	return id, nil
}

func ParseDepartmentForm(r *http.Request) (*requests.DepartmentForm, error) {
	if err := r.ParseForm(); err != nil {
		return nil, exceptions.ErrCannotParseForm(err)
	}

	request := &requests.DepartmentForm{
		Name: r.PostForm.Get(constvars.FormFieldName),
	}
	SanitizeDepartmentForm(request)
	return request, nil
}

// ParseDoctorForm reads the doctor form. A missing or malformed department
// id is left at zero so validation reports it as required.
func ParseDoctorForm(r *http.Request) (*requests.DoctorForm, error) {
	if err := r.ParseForm(); err != nil {
		return nil, exceptions.ErrCannotParseForm(err)
	}

	request := &requests.DoctorForm{
		Name:        r.PostForm.Get(constvars.FormFieldName),
		Surname:     r.PostForm.Get(constvars.FormFieldSurname),
		Address:     r.PostForm.Get(constvars.FormFieldAddress),
		IsAvailable: parseCheckbox(r.PostForm.Get(constvars.FormFieldIsAvailable)),
	}
	if departmentID, err := strconv.Atoi(strings.TrimSpace(r.PostForm.Get(constvars.FormFieldDepartmentID))); err == nil {
		request.DepartmentID = departmentID
	}
	SanitizeDoctorForm(request)
	return request, nil
}

func ParseBookAppointmentForm(r *http.Request) (*requests.BookAppointment, error) {
	if err := r.ParseForm(); err != nil {
		return nil, exceptions.ErrCannotParseForm(err)
	}

	request := &requests.BookAppointment{
		Date:        r.PostForm.Get(constvars.FormFieldAppointmentDate),
		Time:        r.PostForm.Get(constvars.FormFieldAppointmentTime),
		PatientName: r.PostForm.Get(constvars.FormFieldPatientName),
	}
	SanitizeBookAppointment(request)
	return request, nil
}

func parseCheckbox(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "on", "true", "1", "yes":
		return true
	}
	return false
}
