// Package resolver finds downloadable PDF links for book titles via the
// Google Custom Search API.
package resolver

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/bookshookapp/bookshook-bot/internal/errors"
)

const (
	defaultBaseURL = "https://www.googleapis.com/customsearch/v1"
	defaultTimeout = 10 * time.Second

	// 100 queries/day on the free CSE tier; stay well under burst abuse.
	defaultRPS   = 1.0
	defaultBurst = 3

	// linkMarker filters results to document-typed links.
	linkMarker = "pdf"
)

// Client is a rate-limited Google Custom Search client.
type Client struct {
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	logger      *slog.Logger

	apiKey     string
	engineID   string
	baseURL    string
	maxResults int
}

// Options tune the client beyond its defaults.
type Options struct {
	// Timeout bounds each search request (default: 10s).
	Timeout time.Duration
	// MaxResults caps the results requested per search (default: 3).
	MaxResults int
	// BaseURL overrides the API endpoint. Used by tests.
	BaseURL string
}

// New creates a new search client.
func New(apiKey, engineID string, logger *slog.Logger, opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.MaxResults <= 0 {
		opts.MaxResults = 3
	}
	if opts.BaseURL == "" {
		opts.BaseURL = defaultBaseURL
	}

	return &Client{
		httpClient:  &http.Client{Timeout: opts.Timeout},
		rateLimiter: rate.NewLimiter(rate.Limit(defaultRPS), defaultBurst),
		logger:      logger,
		apiKey:      apiKey,
		engineID:    engineID,
		baseURL:     opts.BaseURL,
		maxResults:  opts.MaxResults,
	}
}

// Close releases resources. Currently a no-op but included for interface consistency.
func (c *Client) Close() {
	// No persistent resources to close
}

// searchResponse is the raw Custom Search API response.
type searchResponse struct {
	Items []searchItem `json:"items"`
}

// searchItem is a single result entry.
type searchItem struct {
	Link string `json:"link"`
}

// Resolve searches for PDF links matching the given title. The returned
// slice keeps provider order; callers treat index 0 as the best link.
// An empty slice with a nil error means the provider found nothing.
// Network or provider failures return ErrProviderFailure.
func (c *Client) Resolve(ctx context.Context, title string) ([]string, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, errors.ProviderFailure("rate limit wait").WithCause(err)
	}

	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("cx", c.engineID)
	params.Set("q", title+" filetype:pdf")
	params.Set("num", strconv.Itoa(c.maxResults))

	searchURL := c.baseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, errors.ProviderFailure("create request").WithCause(err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("searching for pdf",
		"title", title,
		"num", c.maxResults,
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.ProviderFailure("search request").WithCause(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.ProviderFailure(fmt.Sprintf("search failed: status %d", resp.StatusCode))
	}

	var searchResp searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		return nil, errors.ProviderFailure("parse response").WithCause(err)
	}

	links := make([]string, 0, len(searchResp.Items))
	for _, item := range searchResp.Items {
		if strings.Contains(item.Link, linkMarker) {
			links = append(links, item.Link)
		}
	}

	c.logger.Debug("pdf search results",
		"title", title,
		"returned", len(searchResp.Items),
		"usable", len(links),
	)

	return links, nil
}
