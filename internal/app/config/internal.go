package config

import "time"

type InternalConfig struct {
	App         App            `mapstructure:"app"`
	Backend     AppBackend     `mapstructure:"backend"`
	Session     AppSession     `mapstructure:"session"`
	Appointment AppAppointment `mapstructure:"appointment"`
	Minio       AppMinio       `mapstructure:"minio"`
	MongoDB     AppMongoDB     `mapstructure:"mongodb"`
	RabbitMQ    AppRabbitMQ    `mapstructure:"rabbitmq"`
}

type App struct {
	Env                        string   `mapstructure:"env"`
	Port                       string   `mapstructure:"port"`
	Version                    string   `mapstructure:"version"`
	Address                    string   `mapstructure:"address"`
	Timezone                   string   `mapstructure:"timezone"`
	MaxRequests                int      `mapstructure:"max_requests"`
	MaxTimeRequestsPerSeconds  int      `mapstructure:"max_time_requests_per_seconds"`
	ShutdownTimeoutInSeconds   int      `mapstructure:"shutdown_timeout_in_seconds"`
	RequestTimeoutInSeconds    int      `mapstructure:"request_timeout_in_seconds"`
	RequestBodyLimitInMegabyte int      `mapstructure:"request_body_limit_in_megabyte"`
	CORSAllowedOrigins         []string `mapstructure:"cors_allowed_origins"`
}

// Location resolves the configured timezone, falling back to the host's
// local zone when the name is unknown.
func (a App) Location() *time.Location {
	if a.Timezone == "" {
		return time.Local
	}
	location, err := time.LoadLocation(a.Timezone)
	if err != nil {
		return time.Local
	}
	return location
}

// AppBackend describes the external hospital REST service.
type AppBackend struct {
	BaseUrl                     string  `mapstructure:"base_url"`
	RequestTimeoutInSeconds     int     `mapstructure:"request_timeout_in_seconds"`
	RateLimitPerSecond          float64 `mapstructure:"rate_limit_per_second"`
	RateLimitBurst              int     `mapstructure:"rate_limit_burst"`
	BreakerMaxConsecutiveErrors int     `mapstructure:"breaker_max_consecutive_errors"`
	BreakerOpenTimeoutInSeconds int     `mapstructure:"breaker_open_timeout_in_seconds"`
}

type AppSession struct {
	// Store selects where view state lives: "redis" or "memory".
	Store                 string `mapstructure:"store"`
	CookieSecret          string `mapstructure:"cookie_secret"`
	CookieSecure          bool   `mapstructure:"cookie_secure"`
	CookieMaxAgeInHours   int    `mapstructure:"cookie_max_age_in_hours"`
	ViewStateTTLInMinutes int    `mapstructure:"view_state_ttl_in_minutes"`
}

type AppAppointment struct {
	DefaultPatientID int `mapstructure:"default_patient_id"`
}

type AppMinio struct {
	Enabled                                  bool   `mapstructure:"enabled"`
	BucketName                               string `mapstructure:"bucket_name"`
	MinioPreSignedUrlObjectExpiryTimeInHours int    `mapstructure:"pre_signed_url_object_expiry_time_in_hours"`
}

type AppMongoDB struct {
	Enabled         bool   `mapstructure:"enabled"`
	DbName          string `mapstructure:"db_name"`
	AuditCollection string `mapstructure:"audit_collection"`
}

type AppRabbitMQ struct {
	Enabled          bool   `mapstructure:"enabled"`
	AppointmentQueue string `mapstructure:"appointment_queue"`
}
