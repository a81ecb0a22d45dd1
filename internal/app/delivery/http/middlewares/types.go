package middlewares

import (
	"hospital-web-service/internal/app/config"
	"hospital-web-service/internal/app/delivery/http/views"

	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	SessionStore   sessions.Store
	Views          *views.Renderer
	InternalConfig *config.InternalConfig
}

func NewMiddlewares(logger *zap.Logger, sessionStore sessions.Store, renderer *views.Renderer, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:            logger,
		SessionStore:   sessionStore,
		Views:          renderer,
		InternalConfig: internalConfig,
	}
}
