// Package givebutter is a minimal client for the Givebutter REST API.
// It owns request construction, authentication, and response
// classification; everything above it deals in decoded payloads.
package givebutter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

const (
	// EnvAPIKey names the environment variable carrying the API secret.
	EnvAPIKey = "GIVEBUTTER_API_KEY"

	// DefaultBaseURL is the versioned Givebutter API root.
	DefaultBaseURL = "https://api.givebutter.com/v1"
)

// ErrMissingAPIKey is returned when the secret is absent from the
// environment at the moment a request is issued.
var ErrMissingAPIKey = errors.New(EnvAPIKey + " environment variable is required")

// APIError is a non-2xx response. The body is kept verbatim so the
// caller sees exactly what the API said.
type APIError struct {
	StatusCode int
	StatusText string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API request failed: %d %s - %s", e.StatusCode, e.StatusText, e.Body)
}

// Client issues one-shot requests against the API. It holds no
// per-request state and is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func New(options ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}

	for _, option := range options {
		option(c)
	}

	return c
}

// apiKey reads the secret from the environment at call time, never at
// startup, so a key rotated under a long-lived process takes effect on
// the next request and a misconfigured environment fails the first
// operation instead of the boot.
func apiKey() (string, error) {
	key := strings.TrimSpace(os.Getenv(EnvAPIKey))
	if key == "" {
		return "", ErrMissingAPIKey
	}
	return key, nil
}

func carriesBody(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPatch, http.MethodPut:
		return true
	}
	return false
}

// Do performs a single request and classifies the outcome. Callers are
// responsible for substituting path parameters; query values are
// percent-encoded here. A body is serialized only for mutating verbs;
// GET and DELETE never carry one. HTTP 204 returns (nil, nil) without
// touching the response body. Any other 2xx is decoded as JSON, and a
// decode failure propagates. Non-2xx becomes an *APIError.
func (c *Client) Do(ctx context.Context, method, path string, body map[string]any, query url.Values) (any, error) {
	key, err := apiKey()
	if err != nil {
		return nil, err
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var payload io.Reader
	if body != nil && carriesBody(method) {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, payload)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+key)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			StatusText: http.StatusText(resp.StatusCode),
			Body:       string(raw),
		}
	}

	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("failed to decode response body: %w", err)
	}

	return decoded, nil
}
