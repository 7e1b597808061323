package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultBaseURL  = "https://newsapi.org/v2"
	DefaultLanguage = "en"
	DefaultPageSize = 5
	DefaultTimeout  = 12 * time.Second
)

// Client is the NewsAPI search client.
type Client struct {
	apiKey     string
	baseURL    string
	language   string
	pageSize   int
	httpClient *http.Client
}

// New creates a new NewsAPI client.
func New(apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("newsapi: API key is required")
	}
	return &Client{
		apiKey:     apiKey,
		baseURL:    DefaultBaseURL,
		language:   DefaultLanguage,
		pageSize:   DefaultPageSize,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}, nil
}

// WithBaseURL overrides the default NewsAPI base URL.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = baseURL
	return c
}

// WithLanguage sets the article language filter.
func (c *Client) WithLanguage(language string) *Client {
	if language != "" {
		c.language = language
	}
	return c
}

// WithPageSize sets the maximum number of articles per search.
func (c *Client) WithPageSize(pageSize int) *Client {
	if pageSize > 0 {
		c.pageSize = pageSize
	}
	return c
}

// Search returns the most recent articles matching the query, newest first.
// Articles missing a title or url are skipped.
func (c *Client) Search(ctx context.Context, query string) ([]Article, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("language", c.language)
	params.Set("pageSize", strconv.Itoa(c.pageSize))
	params.Set("apiKey", c.apiKey)
	params.Set("sortBy", "publishedAt")

	endpoint := fmt.Sprintf("%s/everything?%s", c.baseURL, params.Encode())

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("newsapi: failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("newsapi: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("newsapi: API error %d", resp.StatusCode)
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("newsapi: failed to decode response: %w", err)
	}

	articles := make([]Article, 0, len(result.Articles))
	for _, a := range result.Articles {
		title := strings.TrimSpace(a.Title)
		link := strings.TrimSpace(a.URL)
		if title == "" || link == "" {
			continue
		}
		articles = append(articles, Article{Title: title, URL: link})
	}
	return articles, nil
}
