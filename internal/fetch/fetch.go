// Package fetch provides the HTTP client used to retrieve storefront pages
// and JSON feeds. Fetch failures are soft: they are logged and reported as
// empty results so one dead page never aborts a scrape.
package fetch

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"
)

const (
	// defaultTimeout is the per-request timeout for page and feed fetches
	defaultTimeout = 15 * time.Second
	// userAgent is a browser-like identification header; storefronts
	// frequently reject requests with library default agents
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
)

// Client fetches storefront pages with a fixed timeout and browser headers
type Client struct {
	httpClient *http.Client
}

// Option configures the Client
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout sets the per-request timeout on the default HTTP client
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// New creates a fetch client
func New(opts ...Option) *Client {
	client := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Probe issues a single GET and returns the response status code. A transport
// error is the only error condition; non-200 statuses are returned as-is for
// the caller to interpret.
func (c *Client) Probe(ctx context.Context, url string) (int, error) {
	resp, err := c.get(ctx, url)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close() //nolint:errcheck

	return resp.StatusCode, nil
}

// HTML fetches a URL and parses it as an HTML document. Any failure
// (transport error, non-200 status, unparseable body) is logged and
// reported as nil.
func (c *Client) HTML(ctx context.Context, url string) *goquery.Document {
	resp, err := c.get(ctx, url)
	if err != nil {
		log.Warn().Err(err).Str("url", url).Msg("html fetch failed")
		return nil
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		log.Warn().Str("url", url).Int("status", resp.StatusCode).Msg("html fetch returned non-200 status")
		return nil
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		log.Warn().Err(err).Str("url", url).Msg("html parse failed")
		return nil
	}

	return doc
}

// JSON fetches a URL and decodes the response body into dst. Returns false
// on any failure; callers should treat dst as empty in that case.
func (c *Client) JSON(ctx context.Context, url string, dst any) bool {
	resp, err := c.get(ctx, url)
	if err != nil {
		log.Warn().Err(err).Str("url", url).Msg("json fetch failed")
		return false
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		log.Warn().Str("url", url).Int("status", resp.StatusCode).Msg("json fetch returned non-200 status")
		return false
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		log.Warn().Err(err).Str("url", url).Msg("json decode failed")
		return false
	}

	return true
}

// get issues a GET request with the browser identification header
func (c *Client) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", userAgent)

	return c.httpClient.Do(req)
}
