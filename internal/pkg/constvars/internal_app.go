package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_SESSION_ID_KEY           ContextKey = "session_id"
)

const (
	AppName = "hospital-web-service"

	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)

// View names, also used as view-state keys.
const (
	ViewDepartments  = "departments"
	ViewDoctors      = "doctors"
	ViewAppointments = "appointments"
)

const (
	ViewStateKeyFormat = "view_state:%s:%s"

	SessionCookieName = "hospital-session"
	SessionKeyID      = "sid"

	SessionStoreRedis  = "redis"
	SessionStoreMemory = "memory"
)

const (
	TemplateHome              = "home.html"
	TemplateDepartments       = "departments.html"
	TemplateDepartmentDetails = "department_details.html"
	TemplateDoctors           = "doctors.html"
	TemplateAppointments      = "appointments.html"
	TemplateError             = "error.html"
)

const (
	UnknownDepartmentName = "Unknown"
)

// UI events, used as metric labels and log operations.
const (
	EventMount         = "mount"
	EventBeginEdit     = "begin_edit"
	EventCancelEdit    = "cancel_edit"
	EventSave          = "save"
	EventRequestDelete = "request_delete"
	EventDismissDelete = "dismiss_delete"
	EventConfirmDelete = "confirm_delete"
	EventOpenCreate    = "open_create"
	EventCloseCreate   = "close_create"
	EventCreate        = "create"
	EventDismissNotice = "dismiss_notice"
	EventExport        = "export"
	EventOpenBooking   = "open_booking"
	EventCancelBooking = "cancel_booking"
	EventConfirmBook   = "confirm_booking"

	EventOutcomeOK    = "ok"
	EventOutcomeError = "error"
)

// ViewDoctorDepartments holds the department lookup list of the doctors page.
const ViewDoctorDepartments = "doctors.departments"
