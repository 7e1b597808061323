package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"time"
)

const (
	DefaultBaseURL  = "https://api.themoviedb.org/3"
	DefaultLanguage = "en-US"
	DefaultTimeout  = 12 * time.Second
)

// Client is the TMDB movie metadata client.
type Client struct {
	apiKey       string
	baseURL      string
	language     string
	includeAdult bool
	httpClient   *http.Client
}

// New creates a new TMDB client.
func New(apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("tmdb: API key is required")
	}
	return &Client{
		apiKey:     apiKey,
		baseURL:    DefaultBaseURL,
		language:   DefaultLanguage,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}, nil
}

// WithBaseURL overrides the default TMDB base URL.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = baseURL
	return c
}

// SearchMovie searches movies by title, most popular first.
func (c *Client) SearchMovie(ctx context.Context, title string) ([]Movie, error) {
	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("query", title)
	params.Set("language", c.language)
	params.Set("include_adult", fmt.Sprintf("%t", c.includeAdult))

	movies, err := c.get(ctx, fmt.Sprintf("%s/search/movie?%s", c.baseURL, params.Encode()))
	if err != nil {
		return nil, err
	}

	sort.SliceStable(movies, func(i, j int) bool {
		return movies[i].Popularity > movies[j].Popularity
	})
	return movies, nil
}

// Trending returns today's trending movies.
func (c *Client) Trending(ctx context.Context) ([]Movie, error) {
	params := url.Values{}
	params.Set("api_key", c.apiKey)

	return c.get(ctx, fmt.Sprintf("%s/trending/movie/day?%s", c.baseURL, params.Encode()))
}

func (c *Client) get(ctx context.Context, endpoint string) ([]Movie, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("tmdb: failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("tmdb: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tmdb: API error %d", resp.StatusCode)
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("tmdb: failed to decode response: %w", err)
	}
	return result.Results, nil
}
