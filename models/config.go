// Package models defines configuration and result types shared by the
// engine, CLI and HTTP layers.
package models

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the process-wide settings. It is loaded once at startup and
// passed explicitly into the engine and server; nothing mutates it afterwards.
type Config struct {
	TopWords  int             `yaml:"top_words"`
	Server    ServerConfig    `yaml:"server"`
	Tokenizer TokenizerConfig `yaml:"tokenizer"`
	Fetch     FetchConfig     `yaml:"fetch"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host    string `yaml:"host"`
	Port    int    `yaml:"port"`
	MaxURLs int    `yaml:"max_urls"`
}

// TokenizerConfig selects the optional normalization filters. All of them
// default to off: the baseline policy is split on non-alphanumeric runs,
// lowercase, drop empties, and nothing else.
type TokenizerConfig struct {
	Stopwords bool `yaml:"stopwords"`
	MinLength int  `yaml:"min_length"`
	Stem      bool `yaml:"stem"`
}

// FetchConfig holds settings for the URL-list mode.
type FetchConfig struct {
	Workers     int    `yaml:"workers"`
	MaxRetries  int    `yaml:"max_retries"`
	WordBankURL string `yaml:"word_bank_url"`
	Dictionary  bool   `yaml:"dictionary"`
}

// DefaultWordBankURL points at the dwyl english-words list: one word per line.
const DefaultWordBankURL = "https://raw.githubusercontent.com/dwyl/english-words/master/words.txt"

// DefaultConfig returns the built-in defaults used when no config file exists.
func DefaultConfig() Config {
	return Config{
		TopWords: 10,
		Server: ServerConfig{
			Host:    "0.0.0.0",
			Port:    8000,
			MaxURLs: 1000,
		},
		Fetch: FetchConfig{
			Workers:     4,
			MaxRetries:  5,
			WordBankURL: DefaultWordBankURL,
			Dictionary:  true,
		},
	}
}

// LoadConfig reads the YAML config at path, falling back to defaults when the
// file does not exist, then applies environment overrides. A .env file in the
// working directory is honored.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	// Missing .env is fine; explicit environment still applies.
	_ = godotenv.Load()
	applyEnvOverrides(&cfg)

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("ESSAYLYTICS_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("ESSAYLYTICS_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("ESSAYLYTICS_TOP_WORDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.TopWords = n
		}
	}
	if v := os.Getenv("ESSAYLYTICS_WORD_BANK_URL"); v != "" {
		cfg.Fetch.WordBankURL = v
	}
}

// Addr returns the host:port the HTTP server binds to.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}
