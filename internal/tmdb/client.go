// Package tmdb implements domain.ContentGateway over the TMDB v3 REST API.
package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mmcdole/flick/internal/domain"
)

const (
	// DefaultBaseURL is the public TMDB v3 endpoint
	DefaultBaseURL = "https://api.themoviedb.org/3"
	defaultTimeout = 10 * time.Second
	userAgent      = "Flick/1.0"
)

var _ domain.ContentGateway = (*Client)(nil)

// Client implements domain.ContentGateway for TMDB
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures a Client
type Option func(*Client)

// WithTimeout sets the per-request timeout
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a new TMDB API client
func NewClient(baseURL, apiKey string, logger *slog.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// doRequest performs an authenticated GET and returns the body of a 2xx response
func (c *Client) doRequest(ctx context.Context, op, path string, query url.Values) ([]byte, error) {
	if query == nil {
		query = url.Values{}
	}
	query.Set("api_key", c.apiKey)
	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	// Never log the key
	query.Del("api_key")
	log := c.logger.With("request_id", uuid.NewString(), "op", op)
	log.Debug("tmdb request", "path", path, "query", query.Encode())

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("tmdb request failed", "error", err)
		return nil, &domain.TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.TransportError{Op: op, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr ErrorResponse
		_ = json.Unmarshal(body, &apiErr)
		log.Error("tmdb request error", "status", resp.StatusCode, "message", apiErr.StatusMessage)

		var cause error
		if apiErr.StatusMessage != "" {
			cause = errors.New(apiErr.StatusMessage)
		}
		return nil, &domain.TransportError{Op: op, StatusCode: resp.StatusCode, Err: cause}
	}

	log.Debug("tmdb response", "status", resp.StatusCode, "bytes", len(body), "elapsed", time.Since(start))
	return body, nil
}

// fetchPage requests one page of a listing endpoint
func (c *Client) fetchPage(ctx context.Context, op, path string, query url.Values, page int) (domain.Page, error) {
	if page < 1 {
		page = 1
	}
	if query == nil {
		query = url.Values{}
	}
	query.Set("page", strconv.Itoa(page))

	body, err := c.doRequest(ctx, op, path, query)
	if err != nil {
		return domain.Page{}, err
	}

	var resp ListResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		c.logger.Error("JSON parse error", "op", op, "error", err, "bodyLen", len(body))
		return domain.Page{}, &domain.TransportError{Op: op, Err: fmt.Errorf("failed to parse response: %w", err)}
	}
	return MapPage(resp, page), nil
}

// Search returns one page of title matches for query
func (c *Client) Search(ctx context.Context, query string, page int) (domain.Page, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return domain.Page{}, domain.ErrEmptyQuery
	}
	return c.fetchPage(ctx, "search", "/search/movie", url.Values{"query": {query}}, page)
}

// Category returns one page of a curated listing
func (c *Client) Category(ctx context.Context, category domain.Category, page int) (domain.Page, error) {
	if !category.IsRemote() {
		return domain.Page{}, fmt.Errorf("category %q has no remote listing", category)
	}
	return c.fetchPage(ctx, "category", "/movie/"+string(category), nil, page)
}

// Discover returns one page of results constrained by facets
func (c *Client) Discover(ctx context.Context, facets domain.Facets, page int) (domain.Page, error) {
	return c.fetchPage(ctx, "discover", "/discover/movie", DiscoverParams(facets), page)
}

// Genres returns the movie genre list
func (c *Client) Genres(ctx context.Context) ([]domain.Genre, error) {
	body, err := c.doRequest(ctx, "genres", "/genre/movie/list", nil)
	if err != nil {
		return nil, err
	}

	var resp GenreListResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &domain.TransportError{Op: "genres", Err: fmt.Errorf("failed to parse response: %w", err)}
	}
	return MapGenres(resp), nil
}

// Detail returns the extended record for one movie
func (c *Client) Detail(ctx context.Context, id int) (*domain.Item, error) {
	body, err := c.doRequest(ctx, "detail", "/movie/"+strconv.Itoa(id), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrDetailUnavailable, err)
	}

	var d MovieDetails
	if err := json.Unmarshal(body, &d); err != nil {
		c.logger.Error("JSON parse error", "op", "detail", "error", err)
		return nil, fmt.Errorf("%w: %w", domain.ErrDetailUnavailable, err)
	}
	return MapDetails(d), nil
}
