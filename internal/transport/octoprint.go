package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Payload is a decoded JSON object. Nothing in it is guaranteed to be present.
type Payload = map[string]any

// ErrUnexpectedStatus is returned for non-2xx responses.
var ErrUnexpectedStatus = errors.New("unexpected response status")

const (
	defaultTimeout  = 5 * time.Second
	maxBodyBytes    = 1 << 20 // 1 MB
	apiKeyHeader    = "X-Api-Key"
	maxErrBodyBytes = 256
)

// Options configures the backend client.
type Options struct {
	BaseURL    string
	StatusPath string
	SensorPath string
	APIKey     string
	Timeout    time.Duration
}

// Client performs read-only GETs against an OctoPrint-compatible backend.
type Client struct {
	statusURL string
	sensorURL string
	apiKey    string
	http      *http.Client
}

// NewClient builds a Client. A nil httpClient gets a default with opts.Timeout.
func NewClient(opts Options, httpClient *http.Client) *Client {
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	base := strings.TrimRight(opts.BaseURL, "/")
	return &Client{
		statusURL: base + ensureLeadingSlash(opts.StatusPath),
		sensorURL: base + ensureLeadingSlash(opts.SensorPath),
		apiKey:    opts.APIKey,
		http:      httpClient,
	}
}

// FetchStatus GETs the status endpoint.
func (c *Client) FetchStatus(ctx context.Context) (Payload, error) {
	return c.getJSON(ctx, c.statusURL)
}

// FetchSensor GETs the filament sensor endpoint.
func (c *Client) FetchSensor(ctx context.Context) (Payload, error) {
	return c.getJSON(ctx, c.sensorURL)
}

func (c *Client) getJSON(ctx context.Context, url string) (Payload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request %s: %w", url, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrBodyBytes))
		return nil, fmt.Errorf("get %s: %w: %d %s", url, ErrUnexpectedStatus, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var v any
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&v); err != nil {
		return nil, fmt.Errorf("decode %s: %w", url, err)
	}
	// A valid non-object body (null, array, scalar) carries no fields.
	obj, ok := v.(map[string]any)
	if !ok {
		return Payload{}, nil
	}
	return obj, nil
}

func ensureLeadingSlash(p string) string {
	if p == "" || strings.HasPrefix(p, "/") {
		return p
	}
	return "/" + p
}
