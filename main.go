package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/fireflyai/essaylytics/internal/analyze"
	"github.com/fireflyai/essaylytics/internal/fetch"
	"github.com/fireflyai/essaylytics/internal/serve"
)

func main() {
	sharedFlags := []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Value: "config.yaml",
			Usage: "path to the YAML config file",
		},
		&cli.BoolFlag{
			Name:  "quiet",
			Usage: "only log errors",
		},
		&cli.BoolFlag{
			Name:  "stopwords",
			Usage: "filter common English stopwords",
		},
		&cli.IntFlag{
			Name:  "min-length",
			Usage: "drop tokens shorter than this many characters",
		},
		&cli.BoolFlag{
			Name:  "stem",
			Usage: "reduce tokens to their snowball stem",
		},
	}

	app := &cli.App{
		Name:  "essaylytics",
		Usage: "rank the most frequent words of an essay",
		Commands: []*cli.Command{
			{
				Name:   "analyze",
				Usage:  "analyze a local essay file (prompts when --file is omitted)",
				Action: analyze.Action,
				Flags: append([]cli.Flag{
					&cli.StringFlag{Name: "file", Usage: "path to the essay text file"},
					&cli.IntFlag{Name: "top", Usage: "number of top words to return"},
				}, sharedFlags...),
			},
			{
				Name:   "fetch",
				Usage:  "fetch a file of essay URLs and rank the aggregate",
				Action: fetch.Action,
				Flags: append([]cli.Flag{
					&cli.StringFlag{Name: "file", Usage: "path to the newline-separated URL list"},
					&cli.IntFlag{Name: "top", Usage: "number of top words to return"},
					&cli.IntFlag{Name: "workers", Usage: "number of concurrent fetch workers"},
					&cli.BoolFlag{Name: "dictionary", Usage: "filter tokens against the word bank"},
				}, sharedFlags...),
			},
			{
				Name:   "serve",
				Usage:  "run the HTTP API",
				Action: serve.Action,
				Flags: append([]cli.Flag{
					&cli.IntFlag{Name: "port", Usage: "port to listen on"},
				}, sharedFlags...),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
