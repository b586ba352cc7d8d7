package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string

	// Upload limits
	MaxUploadBytes int64

	// Document store
	DocTTL       time.Duration
	MaxDocuments int

	// Table of contents
	TOCIndentPx   int
	UniqueAnchors bool

	// Content rendering
	SanitizeContent bool
	HighlightStyle  string
	HardWraps       bool

	// PDF
	PDFFallbackPdftotext bool
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8501"),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 10<<20), // 10MB

		DocTTL:       envDuration("DOC_TTL", 1*time.Hour),
		MaxDocuments: envInt("MAX_DOCUMENTS", 100),

		TOCIndentPx:   envInt("TOC_INDENT_PX", 10),
		UniqueAnchors: envBool("UNIQUE_ANCHORS", false),

		SanitizeContent: envBool("SANITIZE_CONTENT", false),
		HighlightStyle:  envOr("HIGHLIGHT_STYLE", "github"),
		HardWraps:       envBool("HARD_WRAPS", false),

		PDFFallbackPdftotext: envBool("PDF_FALLBACK_PDFTOTEXT", true),
	}

	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 10 << 20
	}
	if cfg.DocTTL <= 0 {
		cfg.DocTTL = 1 * time.Hour
	}
	if cfg.MaxDocuments <= 0 {
		cfg.MaxDocuments = 100
	}
	if cfg.TOCIndentPx < 0 {
		cfg.TOCIndentPx = 10
	}

	return cfg
}

func (c Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("PORT must be numeric: %q", c.Port)
	}
	if c.TOCIndentPx > 200 {
		return fmt.Errorf("TOC_INDENT_PX must be at most 200, got %d", c.TOCIndentPx)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
