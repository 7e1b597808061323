package wiki

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultSummaryURL is the Wikipedia REST summary endpoint (no key needed).
	DefaultSummaryURL = "https://en.wikipedia.org/api/rest_v1/page/summary/"

	DefaultUserAgent = "GenZContentBot/1.0"

	DefaultTimeout = 10 * time.Second
)

// Client fetches encyclopedia page summaries.
type Client struct {
	summaryURL string
	userAgent  string
	httpClient *http.Client
}

type summaryResponse struct {
	Extract string `json:"extract"`
}

// New creates a new Wikipedia summary client.
func New() *Client {
	return &Client{
		summaryURL: DefaultSummaryURL,
		userAgent:  DefaultUserAgent,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// WithSummaryURL overrides the summary endpoint (used by tests).
func (c *Client) WithSummaryURL(summaryURL string) *Client {
	if summaryURL != "" {
		c.summaryURL = summaryURL
	}
	return c
}

// WithUserAgent sets the User-Agent header Wikipedia asks clients to send.
func (c *Client) WithUserAgent(userAgent string) *Client {
	if userAgent != "" {
		c.userAgent = userAgent
	}
	return c
}

// Summary returns the page extract for a topic, or "" when the page has no
// usable extract. Transport and status failures are errors for the caller
// to degrade on.
func (c *Client) Summary(ctx context.Context, topic string) (string, error) {
	endpoint := c.summaryURL + url.PathEscape(topic)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("wiki: failed to create request: %w", err)
	}
	httpReq.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("wiki: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("wiki: API error %d", resp.StatusCode)
	}

	var result summaryResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("wiki: failed to decode response: %w", err)
	}
	return strings.TrimSpace(result.Extract), nil
}
