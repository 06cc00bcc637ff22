// Package fetcher downloads essays over HTTP and extracts their visible text.
package fetcher

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/codeGROOVE-dev/retry"
	readability "github.com/go-shiori/go-readability"
)

const (
	initialRetryDelay = 2 * time.Second
	maxRetryDelay     = 60 * time.Second
)

// Fetcher downloads essay pages. Rate-limited (429) and server-side (5xx)
// failures are retried with exponential backoff and jitter; client errors
// like 404 are terminal.
type Fetcher struct {
	client     *http.Client
	maxRetries uint
	logger     *slog.Logger
}

// New returns a Fetcher with the given retry budget.
func New(maxRetries int, logger *slog.Logger) *Fetcher {
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &Fetcher{
		client:     &http.Client{Timeout: 30 * time.Second},
		maxRetries: uint(maxRetries),
		logger:     logger,
	}
}

// FetchText downloads rawURL and returns the visible text of the page.
func (f *Fetcher) FetchText(ctx context.Context, rawURL string) (string, error) {
	body, err := f.get(ctx, rawURL)
	if err != nil {
		return "", err
	}
	return ExtractText(string(body), rawURL)
}

// get performs the HTTP request with the retry policy applied.
func (f *Fetcher) get(ctx context.Context, rawURL string) ([]byte, error) {
	var body []byte
	var terminalErr error

	err := retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
			if err != nil {
				terminalErr = err
				return nil
			}
			resp, err := f.client.Do(req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			switch {
			case resp.StatusCode == http.StatusOK:
				body, err = io.ReadAll(resp.Body)
				return err
			case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
				return fmt.Errorf("fetch %s returned status %d", rawURL, resp.StatusCode)
			default:
				// Client error: retrying will not change the outcome.
				terminalErr = fmt.Errorf("fetch %s returned status %d", rawURL, resp.StatusCode)
				return nil
			}
		},
		retry.Context(ctx),
		retry.Attempts(f.maxRetries),
		retry.DelayType(retry.CombineDelay(retry.BackOffDelay, retry.RandomDelay)),
		retry.Delay(initialRetryDelay),
		retry.MaxDelay(maxRetryDelay),
		retry.OnRetry(func(n uint, err error) {
			f.logger.Warn("retrying fetch", "url", rawURL, "attempt", n+1, "error", err)
		}),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", rawURL, err)
	}
	if terminalErr != nil {
		return nil, terminalErr
	}
	return body, nil
}

// ExtractText pulls the human-visible text out of an HTML document. It first
// tries readability to isolate the main article body and falls back to the
// whole page with script/style/nav chrome stripped.
func ExtractText(html, rawURL string) (string, error) {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid URL %s: %w", rawURL, err)
	}

	parser := readability.NewParser()
	article, err := parser.Parse(strings.NewReader(html), parsedURL)
	if err == nil && strings.TrimSpace(article.TextContent) != "" {
		return article.TextContent, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML from %s: %w", rawURL, err)
	}
	doc.Find("script, style, noscript").Remove()
	return doc.Text(), nil
}
