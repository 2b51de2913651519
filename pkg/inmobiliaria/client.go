// Package inmobiliaria is a thin client for the agency's listings REST backend.
package inmobiliaria

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"karttem-admin/pkg/logger"
	"karttem-admin/pkg/metrics"
)

// ClientOptions contains options for creating a client
type ClientOptions struct {
	// Timeout is the request timeout (default: 30s)
	Timeout time.Duration
	// HTTPClient is an optional custom HTTP client
	HTTPClient *http.Client
}

// Client manages requests to the listings backend
type Client struct {
	baseURL    string
	httpClient *http.Client

	Auth          *AuthService
	Properties    *PropertyService
	Owners        *OwnerService
	Users         *UserService
	PropertyTypes *PropertyTypeService
}

// NewClient creates a new backend client
func NewClient(baseURL string, opts ...ClientOptions) *Client {
	var opt ClientOptions
	if len(opts) > 0 {
		opt = opts[0]
	}

	timeout := opt.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	httpClient := opt.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: timeout,
		}
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}

	c.Auth = &AuthService{client: c}
	c.Properties = &PropertyService{client: c}
	c.Owners = &OwnerService{client: c}
	c.Users = &UserService{client: c}
	c.PropertyTypes = &PropertyTypeService{client: c}

	return c
}

type tokenKey struct{}

// WithToken returns a context carrying the bearer token used for backend calls.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFromContext returns the bearer token stored by WithToken, if any.
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

// BearerToken ensures the token carries the "Bearer " prefix.
func BearerToken(token string) string {
	token = strings.TrimSpace(token)
	if token == "" || strings.HasPrefix(token, "Bearer ") {
		return token
	}
	return "Bearer " + token
}

// envelope is the response wrapper every backend endpoint uses.
type envelope struct {
	OK   Flag            `json:"ok"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

// call describes one backend request. Endpoint is the route template used for metrics.
type call struct {
	method      string
	endpoint    string
	path        string
	body        io.Reader
	contentType string
}

func jsonCall(method, endpoint, path string, body interface{}) (call, error) {
	c := call{method: method, endpoint: endpoint, path: path}
	if body == nil {
		return c, nil
	}
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return c, fmt.Errorf("failed to marshal request body: %w", err)
	}
	c.body = bytes.NewReader(jsonBody)
	c.contentType = "application/json"
	return c, nil
}

// do performs the request, unwraps the envelope and decodes data into result.
func (c *Client) do(ctx context.Context, req call, result interface{}) (string, error) {
	url := c.baseURL + req.path

	httpReq, err := http.NewRequestWithContext(ctx, req.method, url, req.body)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	if req.contentType != "" {
		httpReq.Header.Set("Content-Type", req.contentType)
	}
	if token := TokenFromContext(ctx); token != "" {
		httpReq.Header.Set("Authorization", BearerToken(token))
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	metrics.BackendRequestDuration.WithLabelValues(req.method, req.endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.BackendRequestsTotal.WithLabelValues(req.method, req.endpoint, "error").Inc()
		logger.GlobalLogger.Errorf("Backend request failed: method=%s, url=%s, error=%v", req.method, url, err)
		return "", &ConnectionError{URL: url, Message: err.Error()}
	}
	defer resp.Body.Close()
	metrics.BackendRequestsTotal.WithLabelValues(req.method, req.endpoint, strconv.Itoa(resp.StatusCode)).Inc()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.GlobalLogger.Errorf("Failed to read backend response body: url=%s, status=%s, error=%v", url, resp.Status, err)
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		apiErr := parseErrorResponse(resp.StatusCode, body)
		logger.GlobalLogger.Errorf("Backend request rejected: method=%s, url=%s, status=%s, msg=%s", req.method, url, resp.Status, apiErr.Message)
		return "", apiErr
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return "", nil
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		logger.GlobalLogger.Errorf("Failed to decode backend response: url=%s, response=%s, error=%v", url, string(body), err)
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if !env.OK {
		logger.GlobalLogger.Warnf("Backend request not accepted: method=%s, url=%s, msg=%s", req.method, url, env.Msg)
		return env.Msg, &Error{StatusCode: resp.StatusCode, Message: env.Msg}
	}

	if result != nil && len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, result); err != nil {
			logger.GlobalLogger.Errorf("Failed to decode backend data: url=%s, error=%v", url, err)
			return env.Msg, fmt.Errorf("failed to decode response data: %w", err)
		}
	}

	return env.Msg, nil
}

// parseErrorResponse parses an error response from the backend
func parseErrorResponse(statusCode int, body []byte) *Error {
	var env struct {
		Msg     string `json:"msg"`
		Message string `json:"message"`
		Error   string `json:"error"`
	}

	if err := json.Unmarshal(body, &env); err != nil {
		msg := strings.TrimSpace(string(body))
		if msg == "" {
			msg = http.StatusText(statusCode)
		}
		return &Error{StatusCode: statusCode, Message: msg}
	}

	msg := env.Msg
	if msg == "" {
		msg = env.Message
	}
	if msg == "" {
		msg = env.Error
	}
	if msg == "" {
		msg = http.StatusText(statusCode)
	}

	return &Error{StatusCode: statusCode, Message: msg}
}
