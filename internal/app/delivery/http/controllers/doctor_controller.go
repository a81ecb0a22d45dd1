package controllers

import (
	"hospital-web-service/internal/app/contracts"
	"hospital-web-service/internal/app/delivery/http/views"
	"hospital-web-service/internal/app/models"
	"hospital-web-service/internal/pkg/constvars"
	"hospital-web-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type DoctorController struct {
	Log           *zap.Logger
	DoctorUsecase contracts.DoctorUsecase
	Views         *views.Renderer
}

func NewDoctorController(logger *zap.Logger, doctorUsecase contracts.DoctorUsecase, renderer *views.Renderer) *DoctorController {
	return &DoctorController{
		Log:           logger,
		DoctorUsecase: doctorUsecase,
		Views:         renderer,
	}
}

func (ctrl *DoctorController) Mount(w http.ResponseWriter, r *http.Request) {
	view, err := ctrl.DoctorUsecase.Mount(r.Context())
	ctrl.render(w, r, view, err)
}

func (ctrl *DoctorController) BeginEdit(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseURLParamID(r, constvars.URLParamDoctorID)
	if err != nil {
		ctrl.Views.RenderError(w, r, err)
		return
	}
	view, err := ctrl.DoctorUsecase.BeginEdit(r.Context(), id)
	ctrl.render(w, r, view, err)
}

func (ctrl *DoctorController) CancelEdit(w http.ResponseWriter, r *http.Request) {
	view, err := ctrl.DoctorUsecase.CancelEdit(r.Context())
	ctrl.render(w, r, view, err)
}

func (ctrl *DoctorController) Save(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseURLParamID(r, constvars.URLParamDoctorID)
	if err != nil {
		ctrl.Views.RenderError(w, r, err)
		return
	}
	form, err := utils.ParseDoctorForm(r)
	if err != nil {
		ctrl.Views.RenderError(w, r, err)
		return
	}
	view, err := ctrl.DoctorUsecase.Save(r.Context(), id, form)
	ctrl.render(w, r, view, err)
}

func (ctrl *DoctorController) RequestDelete(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseURLParamID(r, constvars.URLParamDoctorID)
	if err != nil {
		ctrl.Views.RenderError(w, r, err)
		return
	}
	view, err := ctrl.DoctorUsecase.RequestDelete(r.Context(), id)
	ctrl.render(w, r, view, err)
}

func (ctrl *DoctorController) DismissDelete(w http.ResponseWriter, r *http.Request) {
	view, err := ctrl.DoctorUsecase.DismissDelete(r.Context())
	ctrl.render(w, r, view, err)
}

func (ctrl *DoctorController) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	view, err := ctrl.DoctorUsecase.ConfirmDelete(r.Context())
	ctrl.render(w, r, view, err)
}

func (ctrl *DoctorController) OpenCreate(w http.ResponseWriter, r *http.Request) {
	view, err := ctrl.DoctorUsecase.OpenCreate(r.Context())
	ctrl.render(w, r, view, err)
}

func (ctrl *DoctorController) CloseCreate(w http.ResponseWriter, r *http.Request) {
	view, err := ctrl.DoctorUsecase.CloseCreate(r.Context())
	ctrl.render(w, r, view, err)
}

func (ctrl *DoctorController) Create(w http.ResponseWriter, r *http.Request) {
	form, err := utils.ParseDoctorForm(r)
	if err != nil {
		ctrl.Views.RenderError(w, r, err)
		return
	}
	view, err := ctrl.DoctorUsecase.Create(r.Context(), form)
	ctrl.render(w, r, view, err)
}

func (ctrl *DoctorController) DismissNotice(w http.ResponseWriter, r *http.Request) {
	view, err := ctrl.DoctorUsecase.DismissNotice(r.Context())
	ctrl.render(w, r, view, err)
}

func (ctrl *DoctorController) Export(w http.ResponseWriter, r *http.Request) {
	view, err := ctrl.DoctorUsecase.Export(r.Context())
	ctrl.render(w, r, view, err)
}

func (ctrl *DoctorController) render(w http.ResponseWriter, r *http.Request, view *models.DoctorsView, err error) {
	if err != nil {
		ctrl.Views.RenderError(w, r, resolveContextError(err))
		return
	}
	ctrl.Views.Render(w, r, constvars.StatusOK, constvars.TemplateDoctors, views.NewDoctorsPage(view))
}
