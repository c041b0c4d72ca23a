// Package backend is the REST client for the external catalog backend. One
// generic Client serves every resource; the Backend holds the shared HTTP
// client, the base URL and the route table the clients are built from.
//
// The backend contract: GET <base> lists, POST <base> creates (JSON draft
// without id), PUT <base>/{id} replaces, DELETE <base>/{id} removes. Any 2xx
// status is success. No authentication headers are sent and nothing is
// retried.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

// maxErrorBody caps how much of a failed response is drained.
const maxErrorBody = 64 << 10

// userAgent identifies the dashboard to the backend.
const userAgent = "catalogadmin/1.0"

// Config holds what a Backend needs to reach the catalog service.
type Config struct {
	// BaseURL is the backend root, e.g. "http://localhost:3000".
	BaseURL string

	// Routes maps every resource to its collection path.
	Routes Routes

	// Timeout bounds each request (default 10s).
	Timeout time.Duration
}

// Backend is the validated backend configuration plus the HTTP client shared
// by all resource clients.
type Backend struct {
	baseURL string
	routes  Routes
	http    *http.Client
}

// New validates the configuration and returns a Backend. It fails if the base
// URL is unusable or any resource route is missing.
func New(cfg Config) (*Backend, error) {
	if _, err := ParseBaseURL(cfg.BaseURL); err != nil {
		return nil, err
	}
	if err := cfg.Routes.Validate(); err != nil {
		return nil, err
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Backend{
		baseURL: cfg.BaseURL,
		routes:  cfg.Routes,
		http:    &http.Client{Timeout: timeout},
	}, nil
}

// WithHTTPClient replaces the HTTP client. Used by tests and for custom
// transports.
func (b *Backend) WithHTTPClient(c *http.Client) *Backend {
	b.http = c
	return b
}

// For builds the client of one resource.
func For[T any](b *Backend, res Resource) (*Client[T], error) {
	endpoint, err := b.routes.URL(b.baseURL, res)
	if err != nil {
		return nil, err
	}
	return NewClient[T](res, endpoint, b.http), nil
}

// Client performs list/create/update/delete against one resource collection.
// It never retries; every failure is returned as a *NetworkError.
type Client[T any] struct {
	resource Resource
	endpoint string
	http     *http.Client
}

// NewClient creates a client for the collection at endpoint. A nil httpClient
// uses http.DefaultClient.
func NewClient[T any](res Resource, endpoint string, httpClient *http.Client) *Client[T] {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client[T]{
		resource: res,
		endpoint: endpoint,
		http:     httpClient,
	}
}

// Resource returns the collection this client targets.
func (c *Client[T]) Resource() Resource {
	return c.resource
}

// List fetches every record (GET <base>).
func (c *Client[T]) List(ctx context.Context) ([]T, error) {
	var out []T
	if err := c.do(ctx, OpList, http.MethodGet, c.endpoint, nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// Create sends a draft (POST <base>) and returns the stored record.
func (c *Client[T]) Create(ctx context.Context, draft T) (T, error) {
	var out T
	if err := c.do(ctx, OpCreate, http.MethodPost, c.endpoint, draft, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// Update replaces the record with the given id (PUT <base>/{id}).
func (c *Client[T]) Update(ctx context.Context, id int, rec T) (T, error) {
	var out T
	if err := c.do(ctx, OpUpdate, http.MethodPut, c.itemURL(id), rec, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// Delete removes the record with the given id (DELETE <base>/{id}). Any
// response body is ignored.
func (c *Client[T]) Delete(ctx context.Context, id int) error {
	return c.do(ctx, OpDelete, http.MethodDelete, c.itemURL(id), nil, nil)
}

// itemURL returns <base>/{id}.
func (c *Client[T]) itemURL(id int) string {
	return c.endpoint + "/" + strconv.Itoa(id)
}

// do sends one request and decodes the JSON response into out (when non-nil).
func (c *Client[T]) do(ctx context.Context, op, method, url string, body, out any) error {
	fail := func(status int, err error) error {
		return &NetworkError{Resource: c.resource, Op: op, Status: status, Err: err}
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fail(0, fmt.Errorf("encoding request: %w", err))
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fail(0, fmt.Errorf("building request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fail(0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
		return fail(resp.StatusCode, nil)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fail(resp.StatusCode, fmt.Errorf("decoding response: %w", err))
	}
	return nil
}
