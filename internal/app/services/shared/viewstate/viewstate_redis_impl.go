package viewstate

import (
	"context"
	"hospital-web-service/internal/app/contracts"
	"hospital-web-service/internal/pkg/constvars"
	"hospital-web-service/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type redisViewStateRepository struct {
	Redis contracts.RedisRepository
	TTL   time.Duration
	Log   *zap.Logger
}

// NewRedisViewStateRepository stores view state as JSON under
// view_state:<session>:<view>, refreshing the TTL on every save.
func NewRedisViewStateRepository(redisRepository contracts.RedisRepository, ttl time.Duration, logger *zap.Logger) contracts.ViewStateRepository {
	return &redisViewStateRepository{
		Redis: redisRepository,
		TTL:   ttl,
		Log:   logger,
	}
}

func (r *redisViewStateRepository) Load(ctx context.Context, sessionID, view string, dest interface{}) (bool, error) {
	key := buildKey(sessionID, view)
	data, err := r.Redis.Get(ctx, key)
	if err != nil {
		r.Log.Error("redisViewStateRepository.Load error getting view state",
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return false, err
	}
	if data == "" {
		return false, nil
	}

	err = json.Unmarshal([]byte(data), dest)
	if err != nil {
		r.Log.Warn("redisViewStateRepository.Load discarding unreadable view state",
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return false, nil
	}
	return true, nil
}

func (r *redisViewStateRepository) Save(ctx context.Context, sessionID, view string, state interface{}) error {
	key := buildKey(sessionID, view)
	err := r.Redis.Set(ctx, key, state, r.TTL)
	if err != nil {
		r.Log.Error("redisViewStateRepository.Save error setting view state",
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return exceptions.ErrServerProcess(err)
	}
	return nil
}

func (r *redisViewStateRepository) Delete(ctx context.Context, sessionID, view string) error {
	return r.Redis.Delete(ctx, buildKey(sessionID, view))
}

func (r *redisViewStateRepository) Name() string {
	return constvars.SessionStoreRedis
}
