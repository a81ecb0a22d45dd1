package transport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"hospital-web-service/internal/app/config"
	"hospital-web-service/internal/pkg/constvars"
	"hospital-web-service/internal/pkg/dto/responses"
	"hospital-web-service/internal/pkg/exceptions"
	"hospital-web-service/internal/pkg/metrics"
	"hospital-web-service/internal/pkg/utils"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var errServerFailure = errors.New("hospital backend server failure")

// Request describes one call to the hospital backend.
type Request struct {
	Method      string
	URL         string
	Resource    string
	ContentType string
	Body        []byte
}

// Response is a fully read backend response.
type Response struct {
	StatusCode int
	Body       []byte
}

func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Problem decodes the backend error body into a short description. Bodies
// that are not problem details are returned trimmed.
func (r *Response) Problem() string {
	var problem responses.BackendProblem
	if err := json.Unmarshal(r.Body, &problem); err == nil {
		if summary := problem.Summary(); summary != "" {
			return summary
		}
	}
	text := strings.TrimSpace(string(r.Body))
	if len(text) > 200 {
		text = text[:200]
	}
	return text
}

// Transport is the shared HTTP path to the hospital backend. Every call is
// paced by a token bucket and guarded by a circuit breaker that trips on
// network errors and 5xx responses.
type Transport struct {
	BaseUrl string
	Client  *http.Client
	Limiter *rate.Limiter
	Breaker *gobreaker.CircuitBreaker
	Log     *zap.Logger
}

func NewTransport(backendConfig config.AppBackend, logger *zap.Logger) *Transport {
	timeout := time.Duration(backendConfig.RequestTimeoutInSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	limit := rate.Limit(backendConfig.RateLimitPerSecond)
	if backendConfig.RateLimitPerSecond <= 0 {
		limit = rate.Inf
	}
	burst := backendConfig.RateLimitBurst
	if burst <= 0 {
		burst = 1
	}

	maxConsecutiveErrors := uint32(backendConfig.BreakerMaxConsecutiveErrors)
	if maxConsecutiveErrors == 0 {
		maxConsecutiveErrors = 5
	}

	return &Transport{
		BaseUrl: strings.TrimRight(backendConfig.BaseUrl, "/"),
		Client:  &http.Client{Timeout: timeout},
		Limiter: rate.NewLimiter(limit, burst),
		Breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        constvars.BreakerNameBackend,
			MaxRequests: 1,
			Timeout:     time.Duration(backendConfig.BreakerOpenTimeoutInSeconds) * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= maxConsecutiveErrors
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				logger.Warn("Circuit breaker state changed",
					zap.String("component", name),
					zap.String("from", from.String()),
					zap.String(constvars.LoggingBreakerStateKey, to.String()),
				)
				metrics.CircuitBreakerStateChanges.WithLabelValues(name, to.String()).Inc()
				metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			},
		}),
		Log: logger,
	}
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// URL joins the base url with path segments.
func (t *Transport) URL(path string, ids ...int) string {
	var builder strings.Builder
	builder.WriteString(t.BaseUrl)
	builder.WriteString(path)
	for _, id := range ids {
		builder.WriteString("/")
		builder.WriteString(strconv.Itoa(id))
	}
	return builder.String()
}

// FormBody encodes values as an x-www-form-urlencoded body.
func FormBody(values url.Values) []byte {
	return []byte(values.Encode())
}

// Do sends the request. Non-2xx responses are returned without error so the
// caller can decide how to report them.
func (t *Transport) Do(ctx context.Context, request *Request) (*Response, error) {
	requestID := utils.GetRequestID(ctx)

	if err := t.Limiter.Wait(ctx); err != nil {
		t.Log.Error("transport.Do outbound rate limiter rejected request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingResourceKey, request.Resource),
			zap.Error(err),
		)
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return nil, exceptions.ErrServerDeadlineExceeded(err)
		}
		return nil, exceptions.ErrRateLimitWait(err)
	}

	start := time.Now()
	var response *Response
	_, err := t.Breaker.Execute(func() (interface{}, error) {
		var sendErr error
		response, sendErr = t.send(ctx, request)
		if sendErr != nil {
			return nil, sendErr
		}
		if response.StatusCode >= constvars.StatusInternalServerError {
			return nil, errServerFailure
		}
		return nil, nil
	})
	duration := time.Since(start)

	metrics.BackendRequestDuration.WithLabelValues(request.Resource, request.Method).Observe(duration.Seconds())

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		metrics.BackendRequestsTotal.WithLabelValues(request.Resource, request.Method, "breaker_open").Inc()
		t.Log.Warn("transport.Do circuit breaker rejected request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingResourceKey, request.Resource),
			zap.String(constvars.LoggingBreakerStateKey, t.Breaker.State().String()),
		)
		return nil, exceptions.ErrBreakerOpen(err)
	}
	if err != nil && !errors.Is(err, errServerFailure) {
		metrics.BackendRequestsTotal.WithLabelValues(request.Resource, request.Method, "error").Inc()
		return nil, err
	}

	metrics.BackendRequestsTotal.WithLabelValues(request.Resource, request.Method, strconv.Itoa(response.StatusCode)).Inc()
	t.Log.Debug("transport.Do backend responded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMethodKey, request.Method),
		zap.String(constvars.LoggingEndpointKey, request.URL),
		zap.Int(constvars.LoggingStatusCodeKey, response.StatusCode),
		zap.Duration(constvars.LoggingDurationKey, duration),
	)
	return response, nil
}

func (t *Transport) send(ctx context.Context, request *Request) (*Response, error) {
	var body io.Reader
	if request.Body != nil {
		body = bytes.NewReader(request.Body)
	}

	req, err := http.NewRequestWithContext(ctx, request.Method, request.URL, body)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	if request.ContentType != "" {
		req.Header.Set(constvars.HeaderContentType, request.ContentType)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if requestID := utils.GetRequestID(ctx); requestID != "" {
		req.Header.Set(constvars.HeaderXRequestID, requestID)
	}

	resp, err := t.Client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, exceptions.ErrServerDeadlineExceeded(err)
		}
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(fmt.Errorf("read response body: %w", err))
	}

	return &Response{StatusCode: resp.StatusCode, Body: bodyBytes}, nil
}
