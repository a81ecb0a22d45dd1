package requests

// BookAppointment is the booking modal form.
type BookAppointment struct {
	Date        string `form:"date" validate:"required,datetime=2006-01-02"`
	Time        string `form:"time" validate:"required,time_slot"`
	PatientName string `form:"patientName" validate:"required,max=200"`
}

// CreateAppointment is the payload posted to the hospital backend.
// Start and End use the "2006-01-02 15:04:05" layout.
type CreateAppointment struct {
	DoctorID    int    `json:"doctorId"`
	DoctorName  string `json:"doctorName"`
	PatientID   int    `json:"patientId"`
	PatientName string `json:"patientName"`
	Start       string `json:"start"`
	End         string `json:"end"`
}
