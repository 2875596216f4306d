// Package config provides environment-driven configuration for the job
// tracker server.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// DefaultPort is the HTTP listen port when PORT is unset.
const DefaultPort = 8080

// Config holds the server configuration read from the environment.
// The API credentials and the database URL are optional: operations that
// need a missing one fail per-request instead of blocking startup.
type Config struct {
	Port        int    // PORT
	GeminiKey   string // GEMINI_API_KEY
	ScraperKey  string // SCRAPERAPI_KEY
	DatabaseURL string // DATABASE_URL

	Model       string // GEMINI_MODEL override, empty for the default
	MaxChars    int    // EXTRACT_MAX_CHARS input budget, 0 for the default
	StrictParse bool   // EXTRACT_STRICT_PARSE fails on unparseable output
	UseBrowser  bool   // USE_BROWSER enables the headless fetch fallback
	Verbose     bool   // VERBOSE logs fetch/extract sizes
}

// FromEnv reads configuration from environment variables.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:        DefaultPort,
		GeminiKey:   os.Getenv("GEMINI_API_KEY"),
		ScraperKey:  os.Getenv("SCRAPERAPI_KEY"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Model:       os.Getenv("GEMINI_MODEL"),
		StrictParse: boolEnv("EXTRACT_STRICT_PARSE"),
		UseBrowser:  boolEnv("USE_BROWSER"),
		Verbose:     boolEnv("VERBOSE"),
	}

	if port := os.Getenv("PORT"); port != "" {
		parsed, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", port, err)
		}
		cfg.Port = parsed
	}

	if maxChars := os.Getenv("EXTRACT_MAX_CHARS"); maxChars != "" {
		parsed, err := strconv.Atoi(maxChars)
		if err != nil {
			return nil, fmt.Errorf("invalid EXTRACT_MAX_CHARS %q: %w", maxChars, err)
		}
		cfg.MaxChars = parsed
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config error: port %d out of range", c.Port)
	}
	if c.MaxChars < 0 {
		return fmt.Errorf("config error: max chars must be non-negative")
	}
	return nil
}

func boolEnv(name string) bool {
	v, err := strconv.ParseBool(os.Getenv(name))
	return err == nil && v
}
