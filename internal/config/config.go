package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string

	// Auth
	APIKey string

	// Worker pool
	WorkerCount  int
	MaxQueueSize int

	// Upload limits
	MaxUploadBytes int64

	// Outline engine tunables
	SizeTolerance   float64
	MaxHeadingWords int
	MaxAllCapsWords int
	MaxHeadingRunes int
	DedupPageWindow int

	// Job state
	JobTTL time.Duration

	// Storage
	DBPath string
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8091"),

		APIKey: os.Getenv("DOCOUTLINE_API_KEY"),

		WorkerCount:  envInt("WORKER_COUNT", 4),
		MaxQueueSize: envInt("MAX_QUEUE_SIZE", 100),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 52428800), // 50MB

		SizeTolerance:   envFloat("SIZE_TOLERANCE", 0.02),
		MaxHeadingWords: envInt("MAX_HEADING_WORDS", 20),
		MaxAllCapsWords: envInt("MAX_ALLCAPS_WORDS", 10),
		MaxHeadingRunes: envInt("MAX_HEADING_RUNES", 200),
		DedupPageWindow: envInt("DEDUP_PAGE_WINDOW", 3),

		JobTTL: envDuration("JOB_TTL", 1*time.Hour),

		DBPath: envOr("DB_PATH", "docoutline.db"),
	}

	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.MaxQueueSize <= 0 {
		cfg.MaxQueueSize = 100
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}
	if cfg.SizeTolerance <= 0 {
		cfg.SizeTolerance = 0.02
	}
	if cfg.MaxHeadingWords <= 0 {
		cfg.MaxHeadingWords = 20
	}
	if cfg.MaxAllCapsWords <= 0 {
		cfg.MaxAllCapsWords = 10
	}
	if cfg.MaxHeadingRunes <= 0 {
		cfg.MaxHeadingRunes = 200
	}
	if cfg.DedupPageWindow <= 0 {
		cfg.DedupPageWindow = 3
	}
	if cfg.JobTTL <= 0 {
		cfg.JobTTL = 1 * time.Hour
	}

	return cfg
}

func (c Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("DOCOUTLINE_API_KEY is required")
	}
	if c.DBPath == "" {
		return fmt.Errorf("DB_PATH must not be empty")
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

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
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
