package constvars

// Notice titles
const (
	NoticeTitleError              = "Error"
	NoticeTitleDepartmentUpdated  = "Department Updated"
	NoticeTitleDepartmentDeleted  = "Department Deleted"
	NoticeTitleCreateDepartment   = "Create Department"
	NoticeTitleDoctorUpdated      = "Doctor Updated"
	NoticeTitleDoctorDeleted      = "Doctor Deleted"
	NoticeTitleCreateDoctor       = "Create Doctor"
	NoticeTitleAppointmentCreated = "Appointment Created"
	NoticeTitleExport             = "Export Doctors"
)

// Notice texts, formatted with fmt where they carry verbs
const (
	NoticeFetchFailed  = "Failed to fetch %ss. Please try again later."
	NoticeCreateFailed = "Failed to create %s. Please try again."
	NoticeUpdateFailed = "Failed to update %s. Please try again."
	NoticeDeleteFailed = "Failed to delete %s. Please try again."
	NoticeRowMissing   = "The selected %s is no longer in the list."

	NoticeCreated = "%s created successfully."
	NoticeUpdated = "%s updated successfully."
	NoticeDeleted = "%s \"%s\" has been deleted successfully."

	NoticeAppointmentCreated     = "Your appointment with Dr. %s %s on %s has been successfully created."
	NoticeAppointmentFailed      = "Failed to create appointment. Please try again."
	NoticeAppointmentUnavailable = "This doctor is not available for appointments."
	NoticeExportCreated          = "Doctor roster exported. Download link: %s"
	NoticeExportFailed           = "Failed to export doctors. Please try again."
)

// JSON response messages
const (
	ResponseUnknown = "unknown"
	HealthyMessage  = "service is healthy"
)
