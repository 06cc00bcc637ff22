// Package fetch implements the `fetch` CLI command: the input file is a list
// of essay URLs, fetched concurrently and ranked as one aggregate.
package fetch

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/fireflyai/essaylytics/internal/appcli"
	"github.com/fireflyai/essaylytics/pkg/engine"
	"github.com/fireflyai/essaylytics/pkg/textload"
)

// Action handles `essaylytics fetch`.
func Action(c *cli.Context) error {
	cfg, logger, err := appcli.Setup(c)
	if err != nil {
		return err
	}

	path := c.String("file")
	if path == "" {
		return fmt.Errorf("no URL list provided via --file flag")
	}

	topN := cfg.TopWords
	if c.IsSet("top") {
		topN = c.Int("top")
	}
	if c.IsSet("workers") {
		cfg.Fetch.Workers = c.Int("workers")
	}
	if c.IsSet("dictionary") {
		cfg.Fetch.Dictionary = c.Bool("dictionary")
	}

	urls, err := textload.LoadLines(path)
	if err != nil {
		return err
	}
	logger.Info("fetching essays", "count", len(urls), "workers", cfg.Fetch.Workers)

	eng := engine.New(cfg, logger)
	result, err := eng.AnalyzeURLs(c.Context, urls, topN)
	if err != nil {
		return err
	}

	fmt.Printf("--- Top %d Words (Aggregated) ---\n", topN)
	for i, wc := range result.TopWords {
		fmt.Printf("%d. %s: %d\n", i+1, wc.Word, wc.Count)
	}

	if len(result.FailedURLs) > 0 {
		fmt.Printf("\nFailed URLs (%d):\n", len(result.FailedURLs))
		for _, u := range result.FailedURLs {
			fmt.Printf("  %s\n", u)
		}
	}
	return nil
}
