package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tbranch/foreman/internal/workorder"
)

// Fetcher is the interface for retrieving the work-order set. It is
// implemented by *Client and can be stubbed in tests.
type Fetcher interface {
	FetchOrders(ctx context.Context, limit int) ([]workorder.Order, int, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

// Client talks to the work-order HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultAPIBind   = "127.0.0.1:8432"
	defaultUserAgent = "foreman/0.1"
	requestTimeout   = 5 * time.Second
)

// ordersResponse is the wire envelope for the list endpoint.
type ordersResponse struct {
	Data  []workorder.Order `json:"data"`
	Total int               `json:"total"`
}

// NewClient builds a Client using the provided host:port or URL value.
func NewClient(apiBind string) (*Client, error) {
	base, err := parseBaseURL(apiBind)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// FetchOrders retrieves up to limit work orders. A non-positive limit
// requests the server default.
func (c *Client) FetchOrders(ctx context.Context, limit int) ([]workorder.Order, int, error) {
	if c == nil {
		return nil, 0, fmt.Errorf("client is nil")
	}
	values := url.Values{}
	if limit > 0 {
		values.Set("limit", strconv.Itoa(limit))
	}
	rel := &url.URL{Path: "/api/workorders", RawQuery: values.Encode()}
	var payload ordersResponse
	if err := c.doURL(ctx, http.MethodGet, rel, &payload); err != nil {
		return nil, 0, err
	}
	return payload.Data, payload.Total, nil
}

func (c *Client) doURL(ctx context.Context, method string, rel *url.URL, dest any) error {
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("api %s returned status %d", rel.String(), resp.StatusCode)
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(apiBind string) (*url.URL, error) {
	trimmed := strings.TrimSpace(apiBind)
	if trimmed == "" {
		trimmed = defaultAPIBind
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	base, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api address %q: %w", apiBind, err)
	}
	if base.Host == "" {
		return nil, fmt.Errorf("api address %q has no host", apiBind)
	}
	base.Path = ""
	return base, nil
}
