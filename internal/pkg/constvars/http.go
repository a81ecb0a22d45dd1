package constvars

const (
	MethodGet    = "GET"
	MethodPost   = "POST"
	MethodPut    = "PUT"
	MethodDelete = "DELETE"
)

const (
	MIMETextHTMLCharsetUTF8  = "text/html; charset=utf-8"
	MIMETextPlainCharsetUTF8 = "text/plain; charset=utf-8"
	MIMETextCSV              = "text/csv"
	MIMEApplicationJSON      = "application/json"
	MIMEApplicationForm      = "application/x-www-form-urlencoded"
)

const (
	StatusOK                  = 200
	StatusCreated             = 201
	StatusNoContent           = 204
	StatusBadRequest          = 400
	StatusNotFound            = 404
	StatusConflict            = 409
	StatusUnprocessableEntity = 422
	StatusTooManyRequests     = 429
	StatusInternalServerError = 500
	StatusBadGateway          = 502
	StatusServiceUnavailable  = 503
	StatusGatewayTimeout      = 504
)

const (
	HeaderAccept       = "Accept"
	HeaderContentType  = "Content-Type"
	HeaderCacheControl = "Cache-Control"
	HeaderXRequestID   = "X-Request-ID"
)
