package repositories

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

	"github.com/rs/zerolog"
	"github.com/yigit/campusadmin/internal/app/models/dto"
	"github.com/yigit/campusadmin/internal/pkg/apperrors"
)

// HTTPDoer is the part of *http.Client the backend client needs
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client performs JSON calls against the college REST backend. A Client is
// immutable; WithToken returns a copy bound to a session's bearer token.
type Client struct {
	baseURL *url.URL
	http    HTTPDoer
	token   string
	logger  zerolog.Logger
}

// NewClient creates a backend client rooted at baseURL
func NewClient(baseURL string, httpClient HTTPDoer, logger zerolog.Logger) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/") + "/")
	if err != nil {
		return nil, fmt.Errorf("invalid backend base URL: %w", err)
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL: u,
		http:    httpClient,
		logger:  logger,
	}, nil
}

// WithToken returns a copy of the client that authenticates as token
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.token = token
	return &cp
}

// do sends body (if any) as JSON and decodes a 2xx response into out (if any)
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	ref, err := url.Parse(strings.TrimLeft(path, "/"))
	if err != nil {
		return fmt.Errorf("invalid resource path %q: %w", path, err)
	}
	endpoint := c.baseURL.ResolveReference(ref)

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("method", method).Str("url", endpoint.String()).Msg("Backend request failed")
		return apperrors.NewCustomError(apperrors.ErrBackendUnavailable, fmt.Sprintf("%s %s: %v", method, endpoint.Path, err))
	}
	defer resp.Body.Close()

	c.logger.Debug().
		Str("method", method).
		Str("url", endpoint.String()).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("Backend request completed")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(method, endpoint.Path, resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.NewCustomError(apperrors.ErrUnexpectedResponse, fmt.Sprintf("%s %s: decoding response: %v", method, endpoint.Path, err)).
			WithStatus(resp.StatusCode)
	}
	return nil
}

// statusError converts a non-2xx response into a CustomError, keeping the
// backend's message when the body carries the error envelope.
func statusError(method, path string, resp *http.Response) error {
	message := fmt.Sprintf("%s %s: backend returned %d", method, path, resp.StatusCode)

	var envelope dto.ErrorResponse
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if len(raw) == 0 || json.Unmarshal(raw, &envelope) != nil || envelope.Error == nil {
		return apperrors.NewCustomError(apperrors.FromStatus(resp.StatusCode), message).WithStatus(resp.StatusCode)
	}

	if envelope.Error.Message != "" {
		message = fmt.Sprintf("%s: %s", message, envelope.Error.Message)
	}
	ce := apperrors.NewCustomError(apperrors.FromStatus(resp.StatusCode), message).WithStatus(resp.StatusCode)
	if details, ok := envelope.Error.Details.(map[string]interface{}); ok {
		ce = ce.WithDetails(details)
	}
	return ce
}
