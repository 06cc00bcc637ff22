// Package engine runs the essay word-ranking pipeline:
// load, tokenize, count, rank.
package engine

import (
	"context"
	"log/slog"
	"sync"

	"github.com/pemistahl/lingua-go"

	"github.com/fireflyai/essaylytics/models"
	"github.com/fireflyai/essaylytics/pkg/fetcher"
	"github.com/fireflyai/essaylytics/pkg/frequency"
	"github.com/fireflyai/essaylytics/pkg/rank"
	"github.com/fireflyai/essaylytics/pkg/textload"
	"github.com/fireflyai/essaylytics/pkg/tokenizer"
	"github.com/fireflyai/essaylytics/pkg/wordbank"
)

// languageSampleRunes caps how much text is handed to the language detector.
const languageSampleRunes = 2000

// Engine executes one pipeline per call. It keeps no mutable state between
// invocations; the detector, fetcher and word-bank loader it holds are safe
// for concurrent use, so a server can share one Engine across requests.
type Engine struct {
	cfg      models.Config
	logger   *slog.Logger
	detector lingua.LanguageDetector
	fetcher  *fetcher.Fetcher
	bank     *wordbank.Loader
}

// New builds an Engine from the loaded configuration.
func New(cfg models.Config, logger *slog.Logger) *Engine {
	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(
			lingua.English, lingua.Spanish, lingua.French,
			lingua.German, lingua.Italian, lingua.Portuguese,
		).
		Build()

	return &Engine{
		cfg:      cfg,
		logger:   logger,
		detector: detector,
		fetcher:  fetcher.New(cfg.Fetch.MaxRetries, logger),
		bank:     wordbank.NewLoader(cfg.Fetch.MaxRetries, logger),
	}
}

// AnalyzeFile loads the essay at path and returns its top-N words.
func (e *Engine) AnalyzeFile(_ context.Context, path string, topN int) (*models.Analysis, error) {
	text, err := textload.Load(path)
	if err != nil {
		return nil, err
	}
	e.logger.Info("essay loaded", "path", path, "bytes", len(text))
	return e.AnalyzeText(text, topN), nil
}

// AnalyzeText runs the in-memory pipeline on already loaded text.
func (e *Engine) AnalyzeText(text string, topN int) *models.Analysis {
	tokens := tokenizer.Analyze(text, e.tokenOptions(nil))
	table := frequency.Count(tokens)

	return &models.Analysis{
		TopWords:       rank.TopN(table, topN),
		TotalTokens:    table.Total(),
		DistinctTokens: table.Distinct(),
		Language:       e.detectLanguage(text),
	}
}

// urlResult carries one worker's outcome back to the aggregator.
type urlResult struct {
	url   string
	table *frequency.Table
	err   error
}

// AnalyzeURLs fetches every essay URL with a worker pool, merges the per-essay
// frequency tables in input order, and ranks the aggregate. URLs that cannot
// be fetched are reported in FailedURLs rather than failing the whole run.
func (e *Engine) AnalyzeURLs(ctx context.Context, urls []string, topN int) (*models.Analysis, error) {
	var dict map[string]struct{}
	if e.cfg.Fetch.Dictionary {
		var err error
		dict, err = e.bank.Load(ctx, e.cfg.Fetch.WordBankURL)
		if err != nil {
			return nil, err
		}
	}

	workers := e.cfg.Fetch.Workers
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan string, len(urls))
	results := make(chan urlResult, len(urls))

	var wg sync.WaitGroup
	for w := 1; w <= workers; w++ {
		wg.Add(1)
		go e.worker(ctx, w, dict, &wg, jobs, results)
	}

	for _, u := range urls {
		jobs <- u
	}
	close(jobs)

	wg.Wait()
	close(results)

	tableByURL := make(map[string]*frequency.Table, len(urls))
	var failed []string
	for r := range results {
		if r.err != nil {
			e.logger.Warn("essay fetch failed", "url", r.url, "error", r.err)
			failed = append(failed, r.url)
			continue
		}
		tableByURL[r.url] = r.table
	}

	// Merge in input order so the first-seen tie-break stays deterministic
	// regardless of which worker finished first.
	tables := make([]*frequency.Table, 0, len(urls))
	for _, u := range urls {
		if t, ok := tableByURL[u]; ok {
			tables = append(tables, t)
		}
	}
	merged := frequency.Merge(tables...)

	return &models.Analysis{
		TopWords:       rank.TopN(merged, topN),
		TotalTokens:    merged.Total(),
		DistinctTokens: merged.Distinct(),
		FailedURLs:     failed,
	}, nil
}

func (e *Engine) worker(ctx context.Context, id int, dict map[string]struct{}, wg *sync.WaitGroup, jobs <-chan string, results chan<- urlResult) {
	defer wg.Done()
	opts := e.tokenOptions(dict)
	for u := range jobs {
		e.logger.Info("worker fetching essay", "worker", id, "url", u)
		text, err := e.fetcher.FetchText(ctx, u)
		if err != nil {
			results <- urlResult{url: u, err: err}
			continue
		}
		tokens := tokenizer.Analyze(text, opts)
		results <- urlResult{url: u, table: frequency.Count(tokens)}
	}
}

func (e *Engine) tokenOptions(dict map[string]struct{}) tokenizer.Options {
	return tokenizer.Options{
		Stopwords:  e.cfg.Tokenizer.Stopwords,
		MinLength:  e.cfg.Tokenizer.MinLength,
		Stem:       e.cfg.Tokenizer.Stem,
		Dictionary: dict,
	}
}

func (e *Engine) detectLanguage(text string) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	if len(runes) > languageSampleRunes {
		runes = runes[:languageSampleRunes]
	}
	lang, ok := e.detector.DetectLanguageOf(string(runes))
	if !ok {
		return ""
	}
	return lang.String()
}
