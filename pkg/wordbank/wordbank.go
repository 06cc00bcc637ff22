// Package wordbank downloads and caches dictionary word lists used by the
// optional dictionary filter.
package wordbank

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
	"unicode"

	"github.com/codeGROOVE-dev/retry"
	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	cacheSize         = 4
	initialRetryDelay = 1 * time.Second
	maxRetryDelay     = 30 * time.Second
)

// Loader fetches word lists over HTTP and keeps parsed sets in memory so a
// long-running server downloads each list once.
type Loader struct {
	client     *http.Client
	cache      *lru.Cache[string, map[string]struct{}]
	maxRetries uint
	logger     *slog.Logger
}

// NewLoader returns a Loader that retries failed downloads up to maxRetries
// times with exponential backoff.
func NewLoader(maxRetries int, logger *slog.Logger) *Loader {
	if maxRetries < 1 {
		maxRetries = 1
	}
	// Size is tiny and fixed, so construction cannot fail.
	cache, _ := lru.New[string, map[string]struct{}](cacheSize)
	return &Loader{
		client:     &http.Client{Timeout: 60 * time.Second},
		cache:      cache,
		maxRetries: uint(maxRetries),
		logger:     logger,
	}
}

// Load returns the word set behind url, downloading it on first use.
func (l *Loader) Load(ctx context.Context, url string) (map[string]struct{}, error) {
	if words, ok := l.cache.Get(url); ok {
		return words, nil
	}

	var body []byte
	err := retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
			if err != nil {
				return err
			}
			resp, err := l.client.Do(req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("word bank fetch returned status %d", resp.StatusCode)
			}
			body, err = io.ReadAll(resp.Body)
			return err
		},
		retry.Context(ctx),
		retry.Attempts(l.maxRetries),
		retry.DelayType(retry.CombineDelay(retry.BackOffDelay, retry.RandomDelay)),
		retry.Delay(initialRetryDelay),
		retry.MaxDelay(maxRetryDelay),
		retry.OnRetry(func(n uint, err error) {
			l.logger.Warn("retrying word bank download", "url", url, "attempt", n+1, "error", err)
		}),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to download word bank %s: %w", url, err)
	}

	words := Parse(string(body))
	l.cache.Add(url, words)
	l.logger.Info("word bank loaded", "url", url, "words", len(words))
	return words, nil
}

// Parse extracts the usable dictionary from a newline-separated word list.
// Only purely alphabetic words longer than two runes are kept, lowercased.
func Parse(text string) map[string]struct{} {
	words := make(map[string]struct{})
	for _, line := range strings.Split(text, "\n") {
		word := strings.TrimSpace(line)
		if len([]rune(word)) <= 2 || !isAlpha(word) {
			continue
		}
		words[strings.ToLower(word)] = struct{}{}
	}
	return words
}

func isAlpha(word string) bool {
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return word != ""
}
