package controllers

import (
	"hospital-web-service/internal/app/contracts"
	"hospital-web-service/internal/app/delivery/http/views"
	"hospital-web-service/internal/app/models"
	"hospital-web-service/internal/app/services/core/appointments"
	"hospital-web-service/internal/pkg/constvars"
	"hospital-web-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type AppointmentController struct {
	Log                *zap.Logger
	AppointmentUsecase contracts.AppointmentUsecase
	Views              *views.Renderer
}

func NewAppointmentController(logger *zap.Logger, appointmentUsecase contracts.AppointmentUsecase, renderer *views.Renderer) *AppointmentController {
	return &AppointmentController{
		Log:                logger,
		AppointmentUsecase: appointmentUsecase,
		Views:              renderer,
	}
}

func (ctrl *AppointmentController) Mount(w http.ResponseWriter, r *http.Request) {
	state, err := ctrl.AppointmentUsecase.Mount(r.Context())
	ctrl.render(w, r, state, err)
}

func (ctrl *AppointmentController) OpenBooking(w http.ResponseWriter, r *http.Request) {
	doctorID, err := utils.ParseURLParamID(r, constvars.URLParamDoctorID)
	if err != nil {
		ctrl.Views.RenderError(w, r, err)
		return
	}
	state, err := ctrl.AppointmentUsecase.OpenBooking(r.Context(), doctorID)
	ctrl.render(w, r, state, err)
}

func (ctrl *AppointmentController) CancelBooking(w http.ResponseWriter, r *http.Request) {
	state, err := ctrl.AppointmentUsecase.CancelBooking(r.Context())
	ctrl.render(w, r, state, err)
}

func (ctrl *AppointmentController) ConfirmBooking(w http.ResponseWriter, r *http.Request) {
	request, err := utils.ParseBookAppointmentForm(r)
	if err != nil {
		ctrl.Views.RenderError(w, r, err)
		return
	}
	state, err := ctrl.AppointmentUsecase.ConfirmBooking(r.Context(), request)
	ctrl.render(w, r, state, err)
}

func (ctrl *AppointmentController) DismissNotice(w http.ResponseWriter, r *http.Request) {
	state, err := ctrl.AppointmentUsecase.DismissNotice(r.Context())
	ctrl.render(w, r, state, err)
}

func (ctrl *AppointmentController) render(w http.ResponseWriter, r *http.Request, state *models.AppointmentState, err error) {
	if err != nil {
		ctrl.Views.RenderError(w, r, resolveContextError(err))
		return
	}
	ctrl.Views.Render(w, r, constvars.StatusOK, constvars.TemplateAppointments, views.NewAppointmentsPage(state, appointments.TimeSlots()))
}
