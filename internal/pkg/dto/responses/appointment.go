package responses

type Appointment struct {
	ID          int    `json:"id,omitempty"`
	DoctorID    int    `json:"doctorId"`
	DoctorName  string `json:"doctorName,omitempty"`
	PatientID   int    `json:"patientId"`
	PatientName string `json:"patientName"`
	Start       string `json:"start"`
	End         string `json:"end"`
}
