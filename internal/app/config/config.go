package config

import (
	"hospital-web-service/internal/pkg/constvars"
	"hospital-web-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			Username: utils.GetEnvString("MONGODB_USERNAME", ""),
			Password: utils.GetEnvString("MONGODB_PASSWORD", ""),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment),
			Port:                       utils.GetEnvString("APP_PORT", "8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1.0"),
			Address:                    utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "UTC"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 100),
			MaxTimeRequestsPerSeconds:  utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 60),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestTimeoutInSeconds:    utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 15),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 1),
			CORSAllowedOrigins:         utils.GetEnvStringSlice("APP_CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
		Backend: AppBackend{
			BaseUrl:                     utils.GetEnvString("BACKEND_BASE_URL", "http://localhost:5000"),
			RequestTimeoutInSeconds:     utils.GetEnvInt("BACKEND_REQUEST_TIMEOUT_IN_SECONDS", 10),
			RateLimitPerSecond:          utils.GetEnvFloat("BACKEND_RATE_LIMIT_PER_SECOND", 20),
			RateLimitBurst:              utils.GetEnvInt("BACKEND_RATE_LIMIT_BURST", 10),
			BreakerMaxConsecutiveErrors: utils.GetEnvInt("BACKEND_BREAKER_MAX_CONSECUTIVE_ERRORS", 5),
			BreakerOpenTimeoutInSeconds: utils.GetEnvInt("BACKEND_BREAKER_OPEN_TIMEOUT_IN_SECONDS", 30),
		},
		Session: AppSession{
			Store:                 utils.GetEnvString("SESSION_STORE", constvars.SessionStoreMemory),
			CookieSecret:          utils.GetEnvString("SESSION_COOKIE_SECRET", "change-me-in-production"),
			CookieSecure:          utils.GetEnvBool("SESSION_COOKIE_SECURE", false),
			CookieMaxAgeInHours:   utils.GetEnvInt("SESSION_COOKIE_MAX_AGE_IN_HOURS", 12),
			ViewStateTTLInMinutes: utils.GetEnvInt("SESSION_VIEW_STATE_TTL_IN_MINUTES", 60),
		},
		Appointment: AppAppointment{
			DefaultPatientID: utils.GetEnvInt("APPOINTMENT_DEFAULT_PATIENT_ID", 1),
		},
		Minio: AppMinio{
			Enabled:                                  utils.GetEnvBool("MINIO_ENABLED", false),
			BucketName:                               utils.GetEnvString("MINIO_BUCKET_NAME", "hospital-exports"),
			MinioPreSignedUrlObjectExpiryTimeInHours: utils.GetEnvInt("MINIO_PRE_SIGNED_URL_OBJECT_EXPIRY_TIME_IN_HOURS", 24),
		},
		MongoDB: AppMongoDB{
			Enabled:         utils.GetEnvBool("MONGODB_ENABLED", false),
			DbName:          utils.GetEnvString("MONGODB_DB_NAME", "hospital"),
			AuditCollection: utils.GetEnvString("MONGODB_AUDIT_COLLECTION", "audit_entries"),
		},
		RabbitMQ: AppRabbitMQ{
			Enabled:          utils.GetEnvBool("RABBITMQ_ENABLED", false),
			AppointmentQueue: utils.GetEnvString("RABBITMQ_APPOINTMENT_QUEUE", "appointments.booked"),
		},
	}
}
