package constvars

const (
	URLParamDepartmentID = "department_id"
	URLParamDoctorID     = "doctor_id"
)

const (
	FormFieldAppointmentDate = "date"
	FormFieldAppointmentTime = "time"
	FormFieldPatientName     = "patientName"
)
