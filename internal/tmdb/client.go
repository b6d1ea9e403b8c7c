package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Fetcher defines the catalog queries Marquee issues.
// This interface is implemented by *Client and can be used for testing.
type Fetcher interface {
	Trending(ctx context.Context) ([]Movie, error)
	Search(ctx context.Context, query string) ([]Movie, error)
	Discover(ctx context.Context, query DiscoverQuery) ([]Movie, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

// ErrUnauthorized is returned when TMDB rejects the API key.
var ErrUnauthorized = errors.New("tmdb: api key rejected")

const (
	DefaultBaseURL      = "https://api.themoviedb.org/3"
	DefaultImageBaseURL = "https://image.tmdb.org/t/p/w500"
	PlaceholderPoster   = "https://via.placeholder.com/300x450?text=No+Image"

	defaultUserAgent = "marquee/0.1"
	defaultTimeout   = 10 * time.Second
)

// Options configure a Client.
type Options struct {
	BaseURL      string
	ImageBaseURL string
	APIKey       string
	Timeout      time.Duration
	UserAgent    string
	HTTPClient   *http.Client // optional; overrides Timeout
}

// Client talks to the TMDB v3 HTTP API.
type Client struct {
	baseURL   *url.URL
	imageURL  string
	apiKey    string
	http      *http.Client
	userAgent string
}

// NewClient builds a Client. Empty options fall back to the public TMDB
// endpoints.
func NewClient(opts Options) (*Client, error) {
	base, err := parseBaseURL(opts.BaseURL)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, fmt.Errorf("tmdb api key is empty")
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	imageURL := strings.TrimRight(strings.TrimSpace(opts.ImageBaseURL), "/")
	if imageURL == "" {
		imageURL = DefaultImageBaseURL
	}

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	return &Client{
		baseURL:   base,
		imageURL:  imageURL,
		apiKey:    strings.TrimSpace(opts.APIKey),
		http:      httpClient,
		userAgent: userAgent,
	}, nil
}

// Trending retrieves this week's trending movies.
func (c *Client) Trending(ctx context.Context) ([]Movie, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload ListResponse
	if err := c.get(ctx, "trending/movie/week", nil, &payload); err != nil {
		return nil, err
	}
	return payload.Results, nil
}

// Search runs a free-text movie search.
func (c *Client) Search(ctx context.Context, query string) ([]Movie, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("search query is empty")
	}
	values := url.Values{}
	values.Set("query", query)
	var payload ListResponse
	if err := c.get(ctx, "search/movie", values, &payload); err != nil {
		return nil, err
	}
	return payload.Results, nil
}

// Discover retrieves one page of discover results, optionally filtered by
// genre.
func (c *Client) Discover(ctx context.Context, query DiscoverQuery) ([]Movie, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	values := url.Values{}
	if query.Page > 0 {
		values.Set("page", strconv.Itoa(query.Page))
	}
	if query.Genre > 0 {
		values.Set("with_genres", strconv.Itoa(query.Genre))
	}
	var payload ListResponse
	if err := c.get(ctx, "discover/movie", values, &payload); err != nil {
		return nil, err
	}
	return payload.Results, nil
}

// PosterURL returns the full poster image URL for m, or a placeholder when
// the movie has no poster.
func (c *Client) PosterURL(m Movie) string {
	imageURL := DefaultImageBaseURL
	if c != nil {
		imageURL = c.imageURL
	}
	return posterURL(imageURL, m.PosterPath)
}

func posterURL(imageBase, posterPath string) string {
	posterPath = strings.TrimSpace(posterPath)
	if posterPath == "" {
		return PlaceholderPoster
	}
	if !strings.HasPrefix(posterPath, "/") {
		posterPath = "/" + posterPath
	}
	return imageBase + posterPath
}

func (c *Client) get(ctx context.Context, path string, values url.Values, dest any) error {
	if values == nil {
		values = url.Values{}
	}
	values.Set("api_key", c.apiKey)
	// Relative reference so the base path (/3) is preserved.
	rel := &url.URL{Path: path, RawQuery: values.Encode()}
	reqURL := c.baseURL.ResolveReference(rel)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.StatusCode >= 400 {
		var apiErr errorResponse
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if json.Unmarshal(body, &apiErr) == nil && apiErr.StatusMessage != "" {
			return fmt.Errorf("api /%s returned status %d: %s", path, resp.StatusCode, apiErr.StatusMessage)
		}
		return fmt.Errorf("api /%s returned status %d", path, resp.StatusCode)
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

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api_base_url %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse api_base_url %q: missing host", raw)
	}
	// A trailing slash makes ResolveReference append rather than replace.
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
