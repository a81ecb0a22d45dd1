package routers

import (
	"hospital-web-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachDepartmentRoutes(router chi.Router, departmentController *controllers.DepartmentController) {
	router.Get("/", departmentController.Mount)
	router.Post("/create/open", departmentController.OpenCreate)
	router.Post("/create/cancel", departmentController.CloseCreate)
	router.Post("/create", departmentController.Create)
	router.Post("/edit/cancel", departmentController.CancelEdit)
	router.Post("/delete/confirm", departmentController.ConfirmDelete)
	router.Post("/delete/cancel", departmentController.DismissDelete)
	router.Post("/notice/dismiss", departmentController.DismissNotice)
	router.Get("/{department_id}/details", departmentController.Details)
	router.Post("/{department_id}/edit", departmentController.BeginEdit)
	router.Post("/{department_id}/save", departmentController.Save)
	router.Post("/{department_id}/delete", departmentController.RequestDelete)
}
