package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// DefaultTimeout bounds every outbound request when no timeout is configured
const DefaultTimeout = 30 * time.Second

// maxErrorBody caps how much of a failed response ends up in the error
const maxErrorBody = 1 << 10

/* Client is the JSON HTTP client shared by the management API and Slack adapters
 * Safe for concurrent use, it holds no per-request state
 */
type Client struct {
	httpClient *http.Client
}

// New creates a client whose requests time out after timeout
func New(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// StatusError is returned when the server answers with a non-2xx status
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

// GetJSON sends a GET request and decodes the response body into result
func (c *Client) GetJSON(ctx context.Context, url string, header http.Header, result any) error {
	return c.doJSON(ctx, http.MethodGet, url, header, nil, result)
}

// PostJSON sends body as JSON. result may be nil when the response is not JSON.
func (c *Client) PostJSON(ctx context.Context, url string, header http.Header, body any, result any) error {
	return c.doJSON(ctx, http.MethodPost, url, header, body, result)
}

func (c *Client) doJSON(ctx context.Context, method, url string, header http.Header, body any, result any) error {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	for key, values := range header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if result != nil {
		req.Header.Set("Accept", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	if result == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("decoding response body: %w", err)
	}
	return nil
}
