package api

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

	"github.com/google/uuid"
	"github.com/vanchuyen/codctl/internal/domain"
	"go.uber.org/zap"
)

// Client is the single outbound HTTP gateway. Every request carries
// the bearer token from the session store when one exists. A 401/403
// from any non-auth endpoint invalidates the session and triggers the
// auth-failure hook; login/register are exempt so invalid credentials
// render in place instead of forcing a redirect.
type Client struct {
	baseURL       string
	httpClient    *http.Client
	sessions      domain.SessionStore
	logger        *zap.Logger
	onAuthFailure func()
}

// APIError carries the HTTP status and the backend-provided message so
// screens can display the verdict verbatim.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api: unexpected status code: %d", e.Status)
}

// NewClient creates the API client
func NewClient(baseURL string, timeout time.Duration, sessions domain.SessionStore, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		sessions: sessions,
		logger:   logger,
	}
}

// OnAuthFailure registers the hook invoked after a forced session
// invalidation; the shell uses it to land on the login screen
func (c *Client) OnAuthFailure(fn func()) {
	c.onAuthFailure = fn
}

// Get issues a GET request and decodes the JSON response into out
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// Post issues a POST request with a JSON body
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

// Put issues a PUT request with a JSON body
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

// Patch issues a PATCH request with a JSON body
func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, nil, body, out)
}

// Delete issues a DELETE request
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// Download issues a GET request and returns the raw response body,
// for export endpoints serving binary files
func (c *Client) Download(ctx context.Context, path string, query url.Values) ([]byte, error) {
	resp, err := c.send(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp, path); err != nil {
		return nil, err
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("api: failed to read download body: %w", err)
	}
	return data, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	resp, err := c.send(ctx, method, path, query, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp, path); err != nil {
		return err
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("api: failed to decode response from %s: %w", path, err)
	}
	return nil
}

func (c *Client) send(ctx context.Context, method, path string, query url.Values, body any) (*http.Response, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("api: failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("api: failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
	if session, err := c.sessions.Load(); err == nil {
		req.Header.Set("Authorization", "Bearer "+session.AccessToken)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("api: failed to execute request: %w", err)
	}

	c.logger.Debug("API request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	return resp, nil
}

// checkStatus maps error responses to *APIError, invalidating the
// session on 401/403 from non-auth endpoints
func (c *Client) checkStatus(resp *http.Response, path string) error {
	if resp.StatusCode < http.StatusBadRequest {
		return nil
	}

	apiErr := &APIError{Status: resp.StatusCode, Message: readErrorMessage(resp.Body)}

	unauthorized := resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden
	if unauthorized && !isAuthPath(path) {
		c.logger.Warn("unauthorized on non-auth endpoint, invalidating session",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
		)
		if err := c.sessions.Clear(); err != nil {
			c.logger.Error("failed to clear session", zap.Error(err))
		}
		if c.onAuthFailure != nil {
			c.onAuthFailure()
		}
	}

	return apiErr
}

// isAuthPath reports whether the path is a credential-submitting
// endpoint whose failures must render in-form
func isAuthPath(path string) bool {
	return strings.Contains(path, "/auth/login") || strings.Contains(path, "/auth/register")
}

// readErrorMessage extracts the backend error message, tolerating both
// {"message": ...} and {"error": ...} shapes and non-JSON bodies
func readErrorMessage(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil {
		return ""
	}

	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		return payload.Error
	}
	return strings.TrimSpace(string(data))
}
