package models

import (
	"hospital-web-service/internal/pkg/constvars"
	"time"
)

type Appointment struct {
	DoctorID    int       `json:"doctorId"`
	DoctorName  string    `json:"doctorName"`
	PatientID   int       `json:"patientId"`
	PatientName string    `json:"patientName"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
}

// Duration of every appointment booked through the scheduler.
const AppointmentDuration = constvars.AppointmentDurationHours * time.Hour

// Booking is the open booking modal of the appointment scheduler.
type Booking struct {
	DoctorID    int    `json:"doctor_id"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	PatientName string `json:"patient_name"`
}
