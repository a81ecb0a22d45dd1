package views

import "hospital-web-service/internal/app/models"

// Navigation keys for the layout menu.
const (
	NavHome         = "home"
	NavDepartments  = "departments"
	NavDoctors      = "doctors"
	NavAppointments = "appointments"
)

// Page is the data passed to the layout. Data carries the page specific
// struct below.
type Page struct {
	Title     string
	Active    string
	RequestID string
	Notice    *models.Notice
	// NoticeAction is the form action that dismisses Notice.
	NoticeAction string
	Data         interface{}
}

type DepartmentsPage struct {
	State *models.ListState[models.Department]
}

type DepartmentDetailsPage struct {
	Details *models.DepartmentDetails
}

type DoctorsPage struct {
	Doctors     *models.ListState[models.Doctor]
	Departments []models.Department
}

type AppointmentsPage struct {
	State *models.AppointmentState
	Slots []string
	// Doctor is the doctor of the open booking, if any.
	Doctor models.Doctor
}

type ErrorPage struct {
	StatusCode int
	StatusText string
	Message    string
}

func NewDepartmentsPage(state *models.ListState[models.Department]) *Page {
	return &Page{
		Title:        "Departments",
		Active:       NavDepartments,
		Notice:       state.Notice,
		NoticeAction: "/departments/notice/dismiss",
		Data:         DepartmentsPage{State: state},
	}
}

func NewDepartmentDetailsPage(details *models.DepartmentDetails) *Page {
	return &Page{
		Title:  details.Name,
		Active: NavDepartments,
		Data:   DepartmentDetailsPage{Details: details},
	}
}

func NewDoctorsPage(view *models.DoctorsView) *Page {
	var departments []models.Department
	if view.Departments != nil {
		departments = view.Departments.Items
	}
	return &Page{
		Title:        "Doctors",
		Active:       NavDoctors,
		Notice:       view.Notice(),
		NoticeAction: "/doctors/notice/dismiss",
		Data:         DoctorsPage{Doctors: view.Doctors, Departments: departments},
	}
}

func NewAppointmentsPage(state *models.AppointmentState, slots []string) *Page {
	data := AppointmentsPage{State: state, Slots: slots}
	if state.Booking != nil {
		data.Doctor, _ = state.FindDoctor(state.Booking.DoctorID)
	}
	return &Page{
		Title:        "Appointments",
		Active:       NavAppointments,
		Notice:       state.Notice,
		NoticeAction: "/appointments/notice/dismiss",
		Data:         data,
	}
}

func NewHomePage() *Page {
	return &Page{Title: "Hospital Administration", Active: NavHome}
}
