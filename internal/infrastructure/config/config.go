package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is the server configuration.
type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration

	Analysis
}

// Analysis holds the settings shared by the server and pyqctl.
type Analysis struct {
	DBPath         string
	VocabularyPath string // optional YAML override of the tag vocabulary

	// Question drafting
	LLMEnabled   bool
	LLMURL       string // OpenAI-compatible endpoint, e.g. "http://localhost:1234"
	LLMModel     string // model name, e.g. "qwen3-8b"
	DraftWorkers int

	// Snapshot refresh. An empty schedule disables it.
	SnapshotSchedule string
	SnapshotTimezone string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()
	return &Config{
		ServerAddress:   mustGetenv("SERVER_ADDRESS"),
		ShutdownTimeout: mustGetDuration("SHUTDOWN_TIMEOUT"),
		Analysis:        loadAnalysis(),
	}
}

// LoadAnalysis reads only the shared settings, for tools that do not serve HTTP.
func LoadAnalysis() Analysis {
	_ = godotenv.Load()
	return loadAnalysis()
}

func loadAnalysis() Analysis {
	return Analysis{
		DBPath:           getenvDefault("DB_PATH", "pyqlens.db"),
		VocabularyPath:   os.Getenv("VOCABULARY_PATH"),
		LLMEnabled:       getBool("LLM_ENABLED", false),
		LLMURL:           getenvDefault("LLM_URL", "http://localhost:1234"),
		LLMModel:         getenvDefault("LLM_MODEL", "qwen3-8b"),
		DraftWorkers:     getInt("DRAFT_WORKERS", 3),
		SnapshotSchedule: lookupDefault("SNAPSHOT_SCHEDULE", "@daily"),
		SnapshotTimezone: getenvDefault("SNAPSHOT_TIMEZONE", "UTC"),
	}
}

func mustGetenv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	return v
}

func mustGetDuration(k string) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	return d
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}

// lookupDefault is like getenvDefault but keeps an explicitly empty value.
func lookupDefault(k, fallback string) string {
	if v, ok := os.LookupEnv(k); ok {
		return v
	}
	return fallback
}

func getInt(k string, fallback int) int {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		log.Fatalf("config: %s=%q is not a positive integer", k, v)
	}
	return n
}

func getBool(k string, fallback bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid boolean: %v", k, v, err)
	}
	return b
}
