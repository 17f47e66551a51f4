package api

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

	"github.com/mobil-koeln/trex/internal/models"
)

const (
	defaultTimeout = 10 * time.Second

	// DefaultUserAgent is sent with every request unless overridden
	DefaultUserAgent = "trex/1 (+https://github.com/mobil-koeln/trex)"
)

// Client is the API client for the Trassenfinder web API
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

// ClientOption configures the Client
type ClientOption func(*Client) error

// WithTimeout sets the HTTP client timeout
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) error {
		if d <= 0 {
			return ErrInvalidValue("timeout", d)
		}
		c.httpClient.Timeout = d
		return nil
	}
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) error {
		c.httpClient = hc
		return nil
	}
}

// WithBaseURL points the client at another API root, e.g. a mirror or a test server
func WithBaseURL(raw string) ClientOption {
	return func(c *Client) error {
		u, err := url.Parse(raw)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return ErrInvalidFormat("api_url", "http(s) URL")
		}
		c.baseURL = strings.TrimRight(raw, "/")
		return nil
	}
}

// WithUserAgent overrides the User-Agent header
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) error {
		if ua != "" {
			c.userAgent = ua
		}
		return nil
	}
}

// NewClient creates a new API client
func NewClient(opts ...ClientOption) (*Client, error) {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    BaseURL,
		userAgent:  DefaultUserAgent,
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// BaseURL returns the API root the client talks to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListInfrastructures fetches the infrastructure index, sorted by id
func (c *Client) ListInfrastructures(ctx context.Context) ([]models.InfrastructureSummary, error) {
	body, err := c.ListInfrastructuresRaw(ctx)
	if err != nil {
		return nil, err
	}

	var resp []models.InfrastructureIndexResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: failed to parse infrastructure index: %w", ErrInvalidResponse, err)
	}

	summaries := make([]models.InfrastructureSummary, 0, len(resp))
	for _, entry := range resp {
		summaries = append(summaries, entry.ToSummary())
	}
	models.SortSummaries(summaries)

	return summaries, nil
}

// ListInfrastructuresRaw fetches the infrastructure index and returns raw JSON
func (c *Client) ListInfrastructuresRaw(ctx context.Context) (json.RawMessage, error) {
	return c.doRequest(ctx, c.baseURL+EndpointInfrastructures)
}

// GetInfrastructure fetches one infrastructure and resolves it into a graph.
// A segment naming an unknown station fails the whole load with a
// *models.ReferenceError.
func (c *Client) GetInfrastructure(ctx context.Context, id uint64) (*models.StationGraph, error) {
	body, err := c.GetInfrastructureRaw(ctx, id)
	if err != nil {
		return nil, err
	}

	var resp models.InfrastructureResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: failed to parse infrastructure %d: %w", ErrInvalidResponse, id, err)
	}

	graph, err := models.BuildGraph(&resp)
	if err != nil {
		return nil, fmt.Errorf("infrastructure %d: %w", id, err)
	}
	if graph.ID == 0 {
		graph.ID = id
	}

	return graph, nil
}

// GetInfrastructureRaw fetches one infrastructure and returns raw JSON
func (c *Client) GetInfrastructureRaw(ctx context.Context, id uint64) (json.RawMessage, error) {
	if id == 0 {
		return nil, ErrInvalidValue("id", id)
	}
	return c.doRequest(ctx, c.baseURL+infrastructureEndpoint(id))
}

// doRequest performs an HTTP GET request
func (c *Client) doRequest(ctx context.Context, reqURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %w", ErrTimeout, ctx.Err())
		}
		var ue *url.Error
		if errors.As(err, &ue) && ue.Timeout() {
			return nil, fmt.Errorf("%w: %w", ErrTimeout, err)
		}
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, NewAPIError(resp.StatusCode, resp.Status, extractEndpoint(reqURL))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return body, nil
}

// extractEndpoint extracts the endpoint path from a full URL
func extractEndpoint(fullURL string) string {
	u, err := url.Parse(fullURL)
	if err != nil {
		return fullURL
	}
	return u.Path
}
