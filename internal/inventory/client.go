// Package inventory is the client for the storefront's inventory API.
package inventory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"luxegems/internal/domain"
)

const itemsPath = "/api/inventory/items"

// RequestIDHeader carries the per-request correlation id
const RequestIDHeader = "X-Request-ID"

// ErrDecode reports a response body that is not a valid item listing
var ErrDecode = errors.New("malformed items response")

// StatusError is returned for non-2xx responses
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("inventory API returned %d", e.Code)
	}
	return fmt.Sprintf("inventory API returned %d: %s", e.Code, e.Body)
}

// Lister lists catalog items matching a filter snapshot
type Lister interface {
	ListItems(ctx context.Context, filters domain.FilterState) (*domain.ItemsPage, error)
}

// Client talks to the inventory API over HTTP
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
}

// Option customises a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout bounds each request
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithUserAgent sets the User-Agent header
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// NewClient creates a client for the API rooted at baseURL
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		userAgent:  "luxegems",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BuildQuery derives the listing query from the filters. A dimension is
// present only when its value is non-empty.
func BuildQuery(filters domain.FilterState) url.Values {
	q := url.Values{}
	for _, field := range domain.FilterFields {
		if v := filters.Get(field); v != "" {
			q.Set(string(field), v)
		}
	}
	return q
}

// ItemsURL returns the listing URL for the filters
func (c *Client) ItemsURL(filters domain.FilterState) string {
	u := c.baseURL + itemsPath
	if q := BuildQuery(filters).Encode(); q != "" {
		u += "?" + q
	}
	return u
}

// ListItems fetches the items matching filters. Transport failures,
// non-2xx statuses and undecodable bodies are all returned as errors.
func (c *Client) ListItems(ctx context.Context, filters domain.FilterState) (*domain.ItemsPage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.ItemsURL(filters), nil)
	if err != nil {
		return nil, fmt.Errorf("build items request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if id := RequestIDFromContext(ctx); id != "" {
		req.Header.Set(RequestIDHeader, id)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request items: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	return decodePage(resp.Body)
}

// wirePage mirrors domain.ItemsPage but lets us tell a missing items
// array apart from an empty one.
type wirePage struct {
	Items   *[]domain.Item `json:"items"`
	Page    int            `json:"page"`
	Total   int            `json:"total"`
	HasMore bool           `json:"has_more"`
}

func decodePage(r io.Reader) (*domain.ItemsPage, error) {
	var wp wirePage
	dec := json.NewDecoder(r)
	if err := dec.Decode(&wp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after listing", ErrDecode)
	}
	if wp.Items == nil {
		return nil, fmt.Errorf("%w: no items field", ErrDecode)
	}
	return &domain.ItemsPage{
		Items:   *wp.Items,
		Page:    wp.Page,
		Total:   wp.Total,
		HasMore: wp.HasMore,
	}, nil
}

type requestIDKey struct{}

// WithRequestID attaches a correlation id sent with the request
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext returns the id set by WithRequestID
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
