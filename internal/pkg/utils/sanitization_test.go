package utils

import (
	"hospital-web-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeDepartmentForm(t *testing.T) {
	t.Run("Trims and collapses spaces", func(t *testing.T) {
		request := &requests.DepartmentForm{Name: "  Internal   Medicine  "}

		SanitizeDepartmentForm(request)

		assert.Equal(t, "Internal Medicine", request.Name)
	})

	t.Run("Whitespace only becomes empty", func(t *testing.T) {
		request := &requests.DepartmentForm{Name: " \t\n "}

		SanitizeDepartmentForm(request)

		assert.Empty(t, request.Name, "blank names must fail the required check")
	})
}

func TestSanitizeDoctorForm(t *testing.T) {
	request := &requests.DoctorForm{
		Name:         "  Ana ",
		Surname:      " de   Souza",
		Address:      "  Rua  Azul, 10  ",
		DepartmentID: 3,
		IsAvailable:  true,
	}

	SanitizeDoctorForm(request)

	assert.Equal(t, "Ana", request.Name)
	assert.Equal(t, "de Souza", request.Surname)
	assert.Equal(t, "Rua  Azul, 10", request.Address, "inner address spacing is kept")
	assert.Equal(t, 3, request.DepartmentID)
	assert.True(t, request.IsAvailable)
}

func TestSanitizeBookAppointment(t *testing.T) {
	request := &requests.BookAppointment{
		Date:        " 2024-05-01 ",
		Time:        "10:00 ",
		PatientName: "  John   Doe ",
	}

	SanitizeBookAppointment(request)

	assert.Equal(t, "2024-05-01", request.Date)
	assert.Equal(t, "10:00", request.Time)
	assert.Equal(t, "John Doe", request.PatientName)
}
