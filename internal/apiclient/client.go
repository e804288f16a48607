package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	obserrors "github.com/adhyanguru/admin-go/internal/observability/errors"
	"github.com/adhyanguru/admin-go/internal/observability/statsd"
)

// maxResponseBytes caps how much of a response body is read when decoding;
// entity payloads are small JSON documents, so 16MB is generous.
const maxResponseBytes = 16 << 20

// Options configures a Client.
type Options struct {
	// BaseURL is the API root including the /api/super-admin prefix.
	BaseURL string
	// Timeout bounds JSON requests. Zero means 30s.
	Timeout time.Duration
	// UploadTimeout bounds multipart requests carrying files. Zero means 10m.
	UploadTimeout time.Duration
	// Logger defaults to slog.Default().
	Logger *slog.Logger
	// Metrics receives per-endpoint counters and timings; may be nil.
	Metrics statsd.Sink
	// HTTPClient overrides the transport for both request classes (tests).
	HTTPClient *http.Client
}

// Client calls the Adhyan Guru super-admin REST API. It is stateless and
// safe for concurrent use; the bearer token is passed per call.
type Client struct {
	baseURL string
	httpc   *http.Client
	uploadc *http.Client
	logger  *slog.Logger
	metrics statsd.Sink
}

// New creates a Client from the given options.
func New(opts Options) *Client {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	uploadTimeout := opts.UploadTimeout
	if uploadTimeout <= 0 {
		uploadTimeout = 10 * time.Minute
	}

	httpc := opts.HTTPClient
	uploadc := opts.HTTPClient
	if httpc == nil {
		httpc = &http.Client{Timeout: timeout}
		uploadc = &http.Client{Timeout: uploadTimeout}
	}

	return &Client{
		baseURL: opts.BaseURL,
		httpc:   httpc,
		uploadc: uploadc,
		logger:  logger,
		metrics: opts.Metrics,
	}
}

// envelope is the standard response shape: {success, message, data}, with
// list endpoints additionally carrying a count.
type envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data"`
	Count   int    `json:"count"`
}

// call describes one request to the platform API.
type call struct {
	method   string
	path     string // may include a query string
	token    string // empty for unauthenticated endpoints
	endpoint string // stable metric label, e.g. "board_create"
	fallback string // per-operation rejection message
}

// doJSON issues a JSON-bodied (or bodyless) request and decodes the
// response envelope.
func doJSON[T any](ctx context.Context, c *Client, req call, body any) (T, int, error) {
	var zero T

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return zero, 0, networkError(err)
		}
		reader = bytes.NewReader(encoded)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, c.baseURL+req.path, reader)
	if err != nil {
		return zero, 0, networkError(err)
	}
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	return send[T](c, c.httpc, httpReq, req)
}

// doForm issues a multipart request and decodes the response envelope.
func doForm[T any](ctx context.Context, c *Client, req call, form *Form) (T, int, error) {
	var zero T

	body, contentType, err := form.encode()
	if err != nil {
		return zero, 0, networkError(err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.method, c.baseURL+req.path, body)
	if err != nil {
		return zero, 0, networkError(err)
	}
	httpReq.Header.Set("Content-Type", contentType)

	client := c.httpc
	if form.HasFiles() {
		client = c.uploadc
	}
	return send[T](c, client, httpReq, req)
}

// send executes the request and normalizes the outcome. The int return is
// the envelope count for list endpoints (zero elsewhere).
func send[T any](c *Client, client *http.Client, httpReq *http.Request, req call) (T, int, error) {
	var zero T

	if req.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.token)
	}

	start := time.Now()
	resp, err := client.Do(httpReq)
	if err != nil {
		c.observe(req.endpoint, 0, time.Since(start))
		c.observeTransportError(req.endpoint, err)
		c.logger.Warn("platform api unreachable", "endpoint", req.endpoint, "error", err)
		return zero, 0, networkError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	c.observe(req.endpoint, resp.StatusCode, time.Since(start))
	if err != nil {
		return zero, 0, networkError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := rejectionError(resp.StatusCode, raw, req.fallback)
		c.logger.Debug("platform api rejected request",
			"endpoint", req.endpoint, "status", resp.StatusCode, "message", apiErr.Message)
		return zero, 0, apiErr
	}

	var env envelope[T]
	if err := json.Unmarshal(raw, &env); err != nil {
		return zero, 0, networkError(err)
	}
	return env.Data, env.Count, nil
}

// observe emits the per-endpoint request counter and timing.
func (c *Client) observe(endpoint string, status int, elapsed time.Duration) {
	if c.metrics == nil {
		return
	}
	tags := map[string]string{
		"endpoint": endpoint,
		"status":   strconv.Itoa(status),
	}
	c.metrics.Count("upstream.requests", 1, tags)
	c.metrics.Timing("upstream.request_duration", elapsed, tags)
}

// observeTransportError counts requests that never produced a response,
// tagged with the normalized error type so timeouts and DNS failures can
// be told apart on a dashboard.
func (c *Client) observeTransportError(endpoint string, err error) {
	if c.metrics == nil {
		return
	}
	c.metrics.Count("upstream.transport_errors", 1, map[string]string{
		"endpoint":   endpoint,
		"error_type": obserrors.Classify(err),
	})
}

// withQuery appends encoded query values to a path, omitting the separator
// when no values are set.
func withQuery(path string, q url.Values) string {
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}

// boolQuery sets an optional boolean query parameter.
func boolQuery(q url.Values, key string, value *bool) {
	if value != nil {
		q.Set(key, strconv.FormatBool(*value))
	}
}
