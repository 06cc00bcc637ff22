// Package analyze implements the `analyze` CLI command: rank the words of a
// local essay file.
package analyze

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/fireflyai/essaylytics/internal/appcli"
	"github.com/fireflyai/essaylytics/pkg/engine"
	"github.com/fireflyai/essaylytics/pkg/rank"
)

// Action handles `essaylytics analyze`.
func Action(c *cli.Context) error {
	cfg, logger, err := appcli.Setup(c)
	if err != nil {
		return err
	}

	path := c.String("file")
	topN := cfg.TopWords
	if c.IsSet("top") {
		topN = c.Int("top")
	}

	// Interactive fallback: prompt on stdin when no --file was given, the
	// way the original one-shot script behaved.
	if path == "" {
		path, topN, err = prompt(os.Stdin, os.Stdout, topN)
		if err != nil {
			return err
		}
	}

	eng := engine.New(cfg, logger)
	result, err := eng.AnalyzeFile(c.Context, path, topN)
	if err != nil {
		return err
	}

	if result.Language != "" {
		fmt.Printf("Language: %s\n", result.Language)
	}
	fmt.Printf("Tokens: %d total, %d distinct\n\n", result.TotalTokens, result.DistinctTokens)
	for i, wc := range result.TopWords {
		fmt.Printf("%d. %s: %d\n", i+1, wc.Word, wc.Count)
	}
	return nil
}

// prompt asks for the file path and top-N count interactively. An empty N
// answer keeps the default; a non-integer answer is an invalid argument.
func prompt(in io.Reader, out io.Writer, defaultN int) (string, int, error) {
	reader := bufio.NewReader(in)

	fmt.Fprint(out, "Please provide file path: ")
	path, err := reader.ReadString('\n')
	if err != nil && path == "" {
		return "", 0, fmt.Errorf("failed to read file path: %w", err)
	}
	path = strings.TrimSpace(path)

	fmt.Fprintf(out, "Number of top words to return (default %d): ", defaultN)
	answer, err := reader.ReadString('\n')
	if err != nil && answer == "" {
		return path, defaultN, nil
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return path, defaultN, nil
	}

	n, err := strconv.Atoi(answer)
	if err != nil {
		return "", 0, fmt.Errorf("%w: top words must be an integer, got %q", rank.ErrInvalidArgument, answer)
	}
	return path, n, nil
}
