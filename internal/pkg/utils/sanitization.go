package utils

import (
	"hospital-web-service/internal/pkg/dto/requests"
	"strings"
)

func collapseWhiteSpace(input string) string {
	return strings.Join(strings.Fields(input), " ")
}

func SanitizeDepartmentForm(input *requests.DepartmentForm) {
	input.Name = collapseWhiteSpace(input.Name)
}

func SanitizeDoctorForm(input *requests.DoctorForm) {
	input.Name = collapseWhiteSpace(input.Name)
	input.Surname = collapseWhiteSpace(input.Surname)
	input.Address = strings.TrimSpace(input.Address)
}

func SanitizeBookAppointment(input *requests.BookAppointment) {
	input.Date = strings.TrimSpace(input.Date)
	input.Time = strings.TrimSpace(input.Time)
	input.PatientName = collapseWhiteSpace(input.PatientName)
}
