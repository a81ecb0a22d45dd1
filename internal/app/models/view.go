package models

// DoctorsView is what the doctors page renders: the doctor list plus the
// departments used for the select and for name lookup.
type DoctorsView struct {
	Doctors     *ListState[Doctor]
	Departments *ListState[Department]
}

// Notice returns the notice to show, doctors first.
func (v *DoctorsView) Notice() *Notice {
	if v.Doctors != nil && v.Doctors.Notice != nil {
		return v.Doctors.Notice
	}
	if v.Departments != nil {
		return v.Departments.Notice
	}
	return nil
}

// AppointmentBookedEvent is published after the backend accepts a booking.
type AppointmentBookedEvent struct {
	RequestID   string `json:"request_id"`
	DoctorID    int    `json:"doctor_id"`
	DoctorName  string `json:"doctor_name"`
	PatientID   int    `json:"patient_id"`
	PatientName string `json:"patient_name"`
	Start       string `json:"start"`
	End         string `json:"end"`
}
