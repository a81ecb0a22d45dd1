package controllers

import (
	"hospital-web-service/internal/app/config"
	"hospital-web-service/internal/app/contracts"
	"hospital-web-service/internal/pkg/constvars"
	"hospital-web-service/internal/pkg/dto/responses"
	"hospital-web-service/internal/pkg/exceptions"
	"hospital-web-service/internal/pkg/utils"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	componentUp   = "up"
	componentDown = "down"
)

type HealthController struct {
	Log                 *zap.Logger
	InternalConfig      *config.InternalConfig
	ViewStateRepository contracts.ViewStateRepository
	// RedisRepository is nil when view state lives in memory.
	RedisRepository contracts.RedisRepository
	startedAt       time.Time
}

func NewHealthController(logger *zap.Logger, internalConfig *config.InternalConfig, viewStateRepository contracts.ViewStateRepository, redisRepository contracts.RedisRepository) *HealthController {
	return &HealthController{
		Log:                 logger,
		InternalConfig:      internalConfig,
		ViewStateRepository: viewStateRepository,
		RedisRepository:     redisRepository,
		startedAt:           time.Now(),
	}
}

// Health reports process health. A broken view-state store makes the
// service unusable, so it turns the response into a 503.
func (ctrl *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	health := responses.Health{
		Status:       componentUp,
		Version:      ctrl.InternalConfig.App.Version,
		Uptime:       time.Since(ctrl.startedAt).Round(time.Second).String(),
		SessionStore: ctrl.ViewStateRepository.Name(),
		Backend:      ctrl.InternalConfig.Backend.BaseUrl,
		Components:   map[string]string{},
	}

	if ctrl.RedisRepository != nil {
		if err := ctrl.RedisRepository.Ping(r.Context()); err != nil {
			ctrl.Log.Error("HealthController.Health redis ping failed",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
				zap.Error(err),
			)
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.BuildNewCustomError(err, constvars.StatusServiceUnavailable, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisGetData))
			return
		}
		health.Components[constvars.SessionStoreRedis] = componentUp
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthyMessage, health)
}
