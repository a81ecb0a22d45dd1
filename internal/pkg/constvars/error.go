package constvars

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientBackendUnavailable            = "the hospital service is unavailable, please try again later"
	ErrClientPageNotFound                  = "the page you are looking for does not exist"
)

// Error messages for developers
const (
	ErrDevInvalidInput               = "invalid input"
	ErrDevValidationFailed           = "validation failed"
	ErrDevCannotParseForm            = "cannot parse form"
	ErrDevCannotMarshalJSON          = "cannot marshal JSON"
	ErrDevCannotUnmarshalJSON        = "cannot unmarshal JSON"
	ErrDevURLParamIDValidationFailed = "url param %s must be a positive integer"
	ErrDevServerDeadlineExceeded     = "deadline exceeded"
	ErrDevServerProcess              = "server failed to process the request"
	ErrDevRenderTemplate             = "failed to render template %s"

	// HTTP messages
	ErrDevCreateHTTPRequest = "failed to create HTTP request"
	ErrDevSendHTTPRequest   = "failed to send HTTP request"
	ErrDevRateLimitWait     = "outbound rate limiter rejected the request"
	ErrDevBreakerOpen       = "circuit breaker is open for the hospital backend"

	// Backend messages
	ErrDevBackendFetchResource  = "failed to fetch %s from hospital backend"
	ErrDevBackendCreateResource = "failed to create %s on hospital backend"
	ErrDevBackendUpdateResource = "failed to update %s on hospital backend"
	ErrDevBackendDeleteResource = "failed to delete %s on hospital backend"
	ErrDevBackendDecodeResponse = "failed to decode %s response from hospital backend"
	ErrDevBackendUnexpectedCode = "hospital backend responded with status %d"

	// View state messages
	ErrDevViewStateNotEditing   = "no row is in edit mode"
	ErrDevViewStateRowNotFound  = "row %d is not in the loaded list"
	ErrDevViewStateNoBooking    = "no booking is in progress"
	ErrDevViewStateDoctorAbsent = "doctor %d is not available for booking"

	// Redis messages
	ErrDevRedisGetData    = "failed to get data from redis"
	ErrDevRedisSetData    = "failed to set data into redis"
	ErrDevRedisDeleteData = "failed to delete data from redis"

	// Mongo messages
	ErrDevDBFailedToInsertDocument = "failed to insert document into database"

	// RabbitMQ messages
	ErrDevRabbitMQPublishMessage = "failed to publish message into queue %s"

	// Minio messages
	ErrDevMinioFailedToCreateObject  = "failed to create object in bucket %s"
	ErrDevMinioFailedToPresignObject = "failed to presign object in bucket %s"
	ErrDevMinioNotConfigured         = "object storage is not configured"
)
