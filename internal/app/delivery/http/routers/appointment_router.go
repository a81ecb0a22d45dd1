package routers

import (
	"hospital-web-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, appointmentController *controllers.AppointmentController) {
	router.Get("/", appointmentController.Mount)
	router.Post("/doctors/{doctor_id}/book", appointmentController.OpenBooking)
	router.Post("/book/cancel", appointmentController.CancelBooking)
	router.Post("/book/confirm", appointmentController.ConfirmBooking)
	router.Post("/notice/dismiss", appointmentController.DismissNotice)
}
