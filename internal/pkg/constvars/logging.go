package constvars

const (
	LoggingRequestIDKey    = "request_id"
	LoggingSessionIDKey    = "session_id"
	LoggingMethodKey       = "method"
	LoggingEndpointKey     = "endpoint"
	LoggingRemoteAddrKey   = "remote_addr"
	LoggingUserAgentKey    = "user_agent"
	LoggingQueryKey        = "query"
	LoggingStatusCodeKey   = "status_code"
	LoggingDurationKey     = "duration"
	LoggingSuccessKey      = "success"
	LoggingOperationKey    = "operation"
	LoggingViewKey         = "view"
	LoggingResourceKey     = "resource"
	LoggingRowIDKey        = "row_id"
	LoggingDoctorIDKey     = "doctor_id"
	LoggingItemsCountKey   = "items_count"
	LoggingRedisKey        = "redis_key"
	LoggingQueueKey        = "queue"
	LoggingBucketKey       = "bucket"
	LoggingObjectKey       = "object"
	LoggingBreakerStateKey = "breaker_state"
)
