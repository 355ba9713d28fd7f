// Load envs from .env
// Provide default values
// Validate required fields
package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	AppEnv      string
	DatabaseDSN string

	GoogleAPIKey string
	// GeminiModel, when set, is tried first before the built-in fallbacks.
	GeminiModel string
	// MaxPDFPages caps PDF extraction to the first N pages. 0 means all pages.
	MaxPDFPages int
}

// ModelCandidates returns the ordered, deduplicated list of model identifiers
// the fallback loop walks: configured model first, then known-good fallbacks.
func (c *Config) ModelCandidates() []string {
	models := []string{
		strings.TrimSpace(c.GeminiModel),
		"gemini-1.5-flash",
		"gemini-flash-latest",
		"gemini-1.5-flash-8b",
		// pro may not be enabled on every key, keep last
		"gemini-1.5-pro",
		"gemini-1.5-pro-002",
	}

	seen := make(map[string]bool, len(models))
	out := make([]string, 0, len(models))
	for _, m := range models {
		if m == "" || seen[m] {
			continue
		}
		seen[m] = true
		out = append(out, m)
	}
	return out
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		AppEnv:       getEnv("APP_ENV", "development"),
		DatabaseDSN:  os.Getenv("DATABASE_URL"),
		GoogleAPIKey: os.Getenv("GOOGLE_API_KEY"),
		GeminiModel:  os.Getenv("GEMINI_MODEL"),
	}

	if v := os.Getenv("MAX_PDF_PAGES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			log.Fatalf("Invalid MAX_PDF_PAGES: %q", v)
		}
		cfg.MaxPDFPages = n
	}

	if cfg.DatabaseDSN == "" {
		log.Fatal("DATABASE_URL is required")
	}
	if cfg.GoogleAPIKey == "" {
		log.Fatal("GOOGLE_API_KEY is required")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
