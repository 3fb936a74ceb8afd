// Package backend implements the HTTP adapter for the ABC Music Library API.
// It is the only place in the frontend that speaks to the backend; every
// method of the MusicAPI port maps to exactly one request under the /api
// base path, with bearer-token auth and Prometheus instrumentation.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/abcmusic/library-web/internal/core/domain"
	"github.com/abcmusic/library-web/internal/metrics"
)

const defaultRequestTimeout = 30 * time.Second

// Client talks to the music backend. Safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	logger  zerolog.Logger
}

// New creates a Client for the given base URL (including the /api prefix).
// A nil httpClient gets a default with a request timeout.
func New(baseURL string, httpClient *http.Client, logger zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultRequestTimeout}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		logger:  logger,
	}
}

// APIError is a non-2xx backend response. Message carries the backend's
// "detail" field when it was decodable, so views can surface it verbatim.
type APIError struct {
	Status   int
	Message  string
	Endpoint string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend %s: %d: %s", e.Endpoint, e.Status, e.Message)
	}
	return fmt.Sprintf("backend %s: unexpected status %d", e.Endpoint, e.Status)
}

// UserMessage returns the text fit for a user-facing notification.
func (e *APIError) UserMessage() string {
	if e.Message != "" {
		return e.Message
	}
	return "Something went wrong. Please try again."
}

// Is maps well-known statuses onto domain sentinels so callers can use
// errors.Is without importing this package.
func (e *APIError) Is(target error) bool {
	switch target {
	case domain.ErrNotFound:
		return e.Status == http.StatusNotFound
	case domain.ErrForbidden:
		return e.Status == http.StatusForbidden
	case domain.ErrInvalidCredentials:
		return e.Status == http.StatusUnauthorized
	}
	return false
}

// errorEnvelope is the FastAPI error shape. Detail is a string for
// application errors; validation failures send a list, which is ignored.
type errorEnvelope struct {
	Detail json.RawMessage `json:"detail"`
}

func (env *errorEnvelope) message() string {
	if len(env.Detail) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(env.Detail, &s); err != nil {
		return ""
	}
	return s
}

// do issues one request and decodes the JSON response into out (when non-nil).
// endpoint is the logical operation name used for metrics and logging.
func (c *Client) do(ctx context.Context, endpoint, method, path, token string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", endpoint, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.buildURL(path, query), reader)
	if err != nil {
		return fmt.Errorf("build %s request: %w", endpoint, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return c.send(req, endpoint, out)
}

// send executes a prepared request, applying instrumentation and the shared
// status/error handling. Used by do and by the multipart upload path.
func (c *Client) send(req *http.Request, endpoint string, out any) error {
	timer := prometheus.NewTimer(metrics.BackendRequestDuration.WithLabelValues(endpoint))
	defer timer.ObserveDuration()

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.BackendErrorsTotal.WithLabelValues(endpoint, "transport").Inc()
		c.logger.Error().Err(err).Str("endpoint", endpoint).Msg("backend request failed")
		return fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.BackendErrorsTotal.WithLabelValues(endpoint, "transport").Inc()
		return fmt.Errorf("read %s response: %w", endpoint, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.BackendErrorsTotal.WithLabelValues(endpoint, "status").Inc()
		var env errorEnvelope
		_ = json.Unmarshal(data, &env)
		return &APIError{Status: resp.StatusCode, Message: env.message(), Endpoint: endpoint}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s response: %w", endpoint, err)
	}
	return nil
}

func (c *Client) buildURL(path string, query url.Values) string {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// Ping checks backend reachability for the readiness probe. Any HTTP response
// counts as reachable; only transport-level failures are reported.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	_ = resp.Body.Close()
	return nil
}
