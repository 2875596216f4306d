// Package fetch retrieves job posting pages through a scraping proxy and
// reduces the returned HTML to plain text.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultProxyEndpoint is the ScraperAPI entry point.
const DefaultProxyEndpoint = "https://api.scraperapi.com/"

// DefaultMaxChars bounds the sanitized text. Truncation is silent.
const DefaultMaxChars = 15000

// MissingCredentialError indicates the scraping proxy credential is not
// configured. It is returned before any network call is attempted.
type MissingCredentialError struct {
	Name string
}

func (e *MissingCredentialError) Error() string {
	return fmt.Sprintf("missing credential: %s is not configured", e.Name)
}

// Error represents an error during URL fetching.
type Error struct {
	URL     string
	Status  int
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options configures the fetch behavior.
type Options struct {
	Endpoint   string        // Proxy entry point; DefaultProxyEndpoint if empty
	Timeout    time.Duration // HTTP timeout; DefaultTimeout if zero
	MaxChars   int           // Sanitized text budget; DefaultMaxChars if zero
	UseBrowser bool          // Fall back to headless rendering for SPA sites
	Verbose    bool          // Log fetch sizes
}

// Client fetches pages through the scraping proxy.
// The proxy credential is required for every fetch.
type Client struct {
	apiKey string
	opts   Options
	http   *http.Client
}

// NewClient creates a proxy-backed fetch client.
func NewClient(apiKey string, opts Options) *Client {
	if opts.Endpoint == "" {
		opts.Endpoint = DefaultProxyEndpoint
	}
	if opts.Timeout == 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.MaxChars == 0 {
		opts.MaxChars = DefaultMaxChars
	}
	return &Client{
		apiKey: apiKey,
		opts:   opts,
		http:   &http.Client{Timeout: opts.Timeout},
	}
}

// FetchText retrieves the page through the proxy and returns sanitized plain
// text, truncated to the configured character budget.
func (c *Client) FetchText(ctx context.Context, target string) (string, error) {
	if c.apiKey == "" {
		return "", &MissingCredentialError{Name: "SCRAPERAPI_KEY"}
	}

	parsed, err := url.Parse(target)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", &Error{URL: target, Message: "invalid URL", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.proxyURL(target), nil)
	if err != nil {
		return "", &Error{URL: target, Message: "failed to create request", Cause: err}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", &Error{URL: target, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &Error{URL: target, Message: "failed to read response body", Cause: err}
	}

	if resp.StatusCode/100 != 2 {
		return "", &Error{
			URL:     target,
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("HTTP status %d", resp.StatusCode),
		}
	}

	text, err := SanitizeHTML(string(body))
	if err != nil {
		return "", &Error{URL: target, Message: "failed to parse HTML", Cause: err}
	}

	if c.opts.UseBrowser && ShouldUseBrowser(text) {
		if rendered, browserErr := BrowserSimple(ctx, target, c.opts.Verbose); browserErr == nil {
			if renderedText, sanitizeErr := SanitizeHTML(rendered); sanitizeErr == nil {
				text = renderedText
			}
		}
		// Browser failures fall through to the proxied content.
	}

	return Truncate(text, c.opts.MaxChars), nil
}

// proxyURL builds the proxied request URL for a target page.
func (c *Client) proxyURL(target string) string {
	q := url.Values{}
	q.Set("api_key", c.apiKey)
	q.Set("url", target)
	return c.opts.Endpoint + "?" + q.Encode()
}

// SanitizeHTML strips script/style blocks and all remaining markup, then
// collapses consecutive whitespace to single spaces.
func SanitizeHTML(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}

	doc.Find("script, style, noscript").Remove()

	text := doc.Find("body").Text()
	if strings.TrimSpace(text) == "" {
		// Fragments without a body element still carry text at the root.
		text = doc.Text()
	}

	return strings.Join(strings.Fields(text), " "), nil
}

// Truncate bounds text to at most max bytes, never splitting a UTF-8 rune.
func Truncate(text string, max int) string {
	if max <= 0 || len(text) <= max {
		return text
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut]
}
