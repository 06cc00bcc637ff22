// Package appcli holds setup shared by every CLI command.
package appcli

import (
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/fireflyai/essaylytics/models"
)

// Setup loads the configuration, applies shared flag overrides and builds the
// process logger. Every command action calls this first.
func Setup(c *cli.Context) (models.Config, *slog.Logger, error) {
	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return cfg, nil, err
	}

	if c.IsSet("stopwords") {
		cfg.Tokenizer.Stopwords = c.Bool("stopwords")
	}
	if c.IsSet("min-length") {
		cfg.Tokenizer.MinLength = c.Int("min-length")
	}
	if c.IsSet("stem") {
		cfg.Tokenizer.Stem = c.Bool("stem")
	}

	level := slog.LevelInfo
	if c.Bool("quiet") {
		level = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	return cfg, logger, nil
}
