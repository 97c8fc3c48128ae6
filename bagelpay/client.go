// Package bagelpay provides a typed client for the BagelPay payment API:
// products, checkout sessions, transactions, subscriptions, and customers.
//
// A Client is constructed once from a Config, used for any number of
// operations, and released with Close. Every operation issues exactly one
// blocking round trip; failures are surfaced as one of a closed set of typed
// errors (ConfigurationError, AuthenticationError, ValidationError,
// NotFoundError, APIError) that callers match with errors.As. The client
// never retries on its own.
package bagelpay

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"
)

const (
	testBaseURL = "https://test.bagelpay.io"
	liveBaseURL = "https://live.bagelpay.io"

	apiKeyHeader   = "X-Api-Key"
	defaultTimeout = 30 * time.Second
)

// Config configures a Client. APIKey is the only required field.
type Config struct {
	// APIKey authenticates every request.
	APIKey string
	// TestMode targets the sandbox endpoint instead of production.
	TestMode bool
	// BaseURL overrides the endpoint selected by TestMode.
	BaseURL string
	// Timeout bounds each round trip. Defaults to 30 seconds. Ignored when
	// HTTPClient is set.
	Timeout time.Duration
	// HTTPClient, when set, is used as-is for all requests.
	HTTPClient *http.Client
	// Logger receives per-request debug logs. Defaults to slog.Default().
	Logger *slog.Logger
}

// Client is a handle on the BagelPay API. It is immutable after construction
// and safe for concurrent use from multiple goroutines.
type Client struct {
	apiKey  string
	baseURL string
	httpc   *http.Client
	logger  *slog.Logger
	closed  atomic.Bool
}

// New builds a Client from cfg. A missing API key is a ConfigurationError;
// nothing touches the network here.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, &ConfigurationError{Message: "API key is required"}
	}

	base := cfg.BaseURL
	if base == "" {
		if cfg.TestMode {
			base = testBaseURL
		} else {
			base = liveBaseURL
		}
	}

	httpc := cfg.HTTPClient
	if httpc == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpc = &http.Client{Timeout: timeout}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimRight(base, "/"),
		httpc:   httpc,
		logger:  logger,
	}, nil
}

// BaseURL reports the endpoint the client targets.
func (c *Client) BaseURL() string { return c.baseURL }

// Close releases pooled transport connections. The client is unusable
// afterwards: any further operation returns a ConfigurationError. Close is
// idempotent.
func (c *Client) Close() {
	if c.closed.CompareAndSwap(false, true) {
		c.httpc.CloseIdleConnections()
	}
}

// do performs one authenticated round trip and decodes the JSON response into
// out (which may be nil). Non-success outcomes come back as exactly one typed
// error; see classify.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if c.closed.Load() {
		return &ConfigurationError{Message: "client is closed"}
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return &APIError{Message: "encode request body: " + err.Error()}
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return &APIError{Message: "build request: " + err.Error()}
	}
	req.Header.Set(apiKeyHeader, c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("bagelpay request", "method", method, "path", path)

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.logger.Warn("bagelpay request failed", "method", method, "path", path, "error", err)
		return &APIError{Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{Message: "read response body: " + err.Error(), StatusCode: resp.StatusCode}
	}

	if resp.StatusCode/100 != 2 {
		c.logger.Warn("bagelpay request rejected", "method", method, "path", path, "status", resp.StatusCode)
		return classify(resp.StatusCode, raw)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &APIError{
			Message:    "malformed response body: " + err.Error(),
			StatusCode: resp.StatusCode,
			RawBody:    strings.TrimSpace(string(raw)),
		}
	}
	return nil
}

// classify maps a non-2xx response onto the error taxonomy. Dispatch is by
// status precedence: authentication before not-found before validation before
// generic. The {msg, code} envelope decode is best-effort: without it the
// error still carries the raw status and body text.
func classify(status int, raw []byte) error {
	base := APIError{
		Message:    http.StatusText(status),
		StatusCode: status,
		RawBody:    strings.TrimSpace(string(raw)),
	}

	var env ErrorEnvelope
	if err := json.Unmarshal(raw, &env); err == nil && env.Msg != "" {
		base.Message = env.Msg
		base.Code = env.Code
		base.Envelope = &env
	}

	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return &AuthenticationError{base}
	case http.StatusNotFound:
		return &NotFoundError{base}
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return &ValidationError{base}
	default:
		return &base
	}
}
