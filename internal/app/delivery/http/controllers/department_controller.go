package controllers

import (
	"context"
	"errors"
	"hospital-web-service/internal/app/contracts"
	"hospital-web-service/internal/app/delivery/http/views"
	"hospital-web-service/internal/app/models"
	"hospital-web-service/internal/pkg/constvars"
	"hospital-web-service/internal/pkg/exceptions"
	"hospital-web-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type DepartmentController struct {
	Log               *zap.Logger
	DepartmentUsecase contracts.DepartmentUsecase
	Views             *views.Renderer
}

func NewDepartmentController(logger *zap.Logger, departmentUsecase contracts.DepartmentUsecase, renderer *views.Renderer) *DepartmentController {
	return &DepartmentController{
		Log:               logger,
		DepartmentUsecase: departmentUsecase,
		Views:             renderer,
	}
}

func (ctrl *DepartmentController) Mount(w http.ResponseWriter, r *http.Request) {
	state, err := ctrl.DepartmentUsecase.Mount(r.Context())
	ctrl.render(w, r, state, err)
}

func (ctrl *DepartmentController) BeginEdit(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseURLParamID(r, constvars.URLParamDepartmentID)
	if err != nil {
		ctrl.Views.RenderError(w, r, err)
		return
	}
	state, err := ctrl.DepartmentUsecase.BeginEdit(r.Context(), id)
	ctrl.render(w, r, state, err)
}

func (ctrl *DepartmentController) CancelEdit(w http.ResponseWriter, r *http.Request) {
	state, err := ctrl.DepartmentUsecase.CancelEdit(r.Context())
	ctrl.render(w, r, state, err)
}

func (ctrl *DepartmentController) Save(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseURLParamID(r, constvars.URLParamDepartmentID)
	if err != nil {
		ctrl.Views.RenderError(w, r, err)
		return
	}
	form, err := utils.ParseDepartmentForm(r)
	if err != nil {
		ctrl.Views.RenderError(w, r, err)
		return
	}
	state, err := ctrl.DepartmentUsecase.Save(r.Context(), id, form)
	ctrl.render(w, r, state, err)
}

func (ctrl *DepartmentController) RequestDelete(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseURLParamID(r, constvars.URLParamDepartmentID)
	if err != nil {
		ctrl.Views.RenderError(w, r, err)
		return
	}
	state, err := ctrl.DepartmentUsecase.RequestDelete(r.Context(), id)
	ctrl.render(w, r, state, err)
}

func (ctrl *DepartmentController) DismissDelete(w http.ResponseWriter, r *http.Request) {
	state, err := ctrl.DepartmentUsecase.DismissDelete(r.Context())
	ctrl.render(w, r, state, err)
}

func (ctrl *DepartmentController) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	state, err := ctrl.DepartmentUsecase.ConfirmDelete(r.Context())
	ctrl.render(w, r, state, err)
}

func (ctrl *DepartmentController) OpenCreate(w http.ResponseWriter, r *http.Request) {
	state, err := ctrl.DepartmentUsecase.OpenCreate(r.Context())
	ctrl.render(w, r, state, err)
}

func (ctrl *DepartmentController) CloseCreate(w http.ResponseWriter, r *http.Request) {
	state, err := ctrl.DepartmentUsecase.CloseCreate(r.Context())
	ctrl.render(w, r, state, err)
}

func (ctrl *DepartmentController) Create(w http.ResponseWriter, r *http.Request) {
	form, err := utils.ParseDepartmentForm(r)
	if err != nil {
		ctrl.Views.RenderError(w, r, err)
		return
	}
	state, err := ctrl.DepartmentUsecase.Create(r.Context(), form)
	ctrl.render(w, r, state, err)
}

func (ctrl *DepartmentController) DismissNotice(w http.ResponseWriter, r *http.Request) {
	state, err := ctrl.DepartmentUsecase.DismissNotice(r.Context())
	ctrl.render(w, r, state, err)
}

// Details renders a department with its doctors. Backend failures here
// surface as the error page since there is no list to fall back to.
func (ctrl *DepartmentController) Details(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseURLParamID(r, constvars.URLParamDepartmentID)
	if err != nil {
		ctrl.Views.RenderError(w, r, err)
		return
	}
	details, err := ctrl.DepartmentUsecase.FindDetails(r.Context(), id)
	if err != nil {
		ctrl.Views.RenderError(w, r, resolveContextError(err))
		return
	}
	ctrl.Views.Render(w, r, constvars.StatusOK, constvars.TemplateDepartmentDetails, views.NewDepartmentDetailsPage(details))
}

func (ctrl *DepartmentController) render(w http.ResponseWriter, r *http.Request, state *models.ListState[models.Department], err error) {
	if err != nil {
		ctrl.Views.RenderError(w, r, resolveContextError(err))
		return
	}
	ctrl.Views.Render(w, r, constvars.StatusOK, constvars.TemplateDepartments, views.NewDepartmentsPage(state))
}

// resolveContextError maps an expired request deadline to a gateway timeout.
func resolveContextError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return exceptions.ErrServerDeadlineExceeded(err)
	}
	return err
}
