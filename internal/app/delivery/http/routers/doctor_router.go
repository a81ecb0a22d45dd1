package routers

import (
	"hospital-web-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, doctorController *controllers.DoctorController) {
	router.Get("/", doctorController.Mount)
	router.Post("/create/open", doctorController.OpenCreate)
	router.Post("/create/cancel", doctorController.CloseCreate)
	router.Post("/create", doctorController.Create)
	router.Post("/edit/cancel", doctorController.CancelEdit)
	router.Post("/delete/confirm", doctorController.ConfirmDelete)
	router.Post("/delete/cancel", doctorController.DismissDelete)
	router.Post("/notice/dismiss", doctorController.DismissNotice)
	router.Post("/export", doctorController.Export)
	router.Post("/{doctor_id}/edit", doctorController.BeginEdit)
	router.Post("/{doctor_id}/save", doctorController.Save)
	router.Post("/{doctor_id}/delete", doctorController.RequestDelete)
}
