package controllers

import (
	"hospital-web-service/internal/app/delivery/http/views"
	"hospital-web-service/internal/pkg/constvars"
	"hospital-web-service/internal/pkg/exceptions"
	"net/http"

	"go.uber.org/zap"
)

type HomeController struct {
	Log   *zap.Logger
	Views *views.Renderer
}

func NewHomeController(logger *zap.Logger, renderer *views.Renderer) *HomeController {
	return &HomeController{
		Log:   logger,
		Views: renderer,
	}
}

func (ctrl *HomeController) Home(w http.ResponseWriter, r *http.Request) {
	ctrl.Views.Render(w, r, constvars.StatusOK, constvars.TemplateHome, views.NewHomePage())
}

func (ctrl *HomeController) NotFound(w http.ResponseWriter, r *http.Request) {
	ctrl.Views.RenderError(w, r, exceptions.ErrPageNotFound(nil))
}
