package constvars

// Resources exposed by the hospital REST backend.
const (
	ResourceDepartments  = "/Departments"
	ResourceDoctors      = "/Doctors"
	ResourceAppointments = "/api/appointments"
)

// Human readable resource names used in messages and metrics labels.
const (
	ResourceNameDepartment  = "department"
	ResourceNameDoctor      = "doctor"
	ResourceNameAppointment = "appointment"
)

const (
	FormFieldName         = "name"
	FormFieldSurname      = "surname"
	FormFieldAddress      = "address"
	FormFieldDepartmentID = "departmentId"
	FormFieldIsAvailable  = "isAvailable"
)

const (
	// AppointmentDateTimeLayout is the wire format of appointment start and end.
	AppointmentDateTimeLayout = "2006-01-02 15:04:05"
	AppointmentDateLayout     = "2006-01-02"
	AppointmentSlotLayout     = "15:04"

	AppointmentFirstSlotHour = 8
	AppointmentLastSlotHour  = 20
	AppointmentDurationHours = 1
)

const (
	BreakerNameBackend = "hospital-backend"
)
