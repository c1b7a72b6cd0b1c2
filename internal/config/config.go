package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration values
type Config struct {
	// Server configuration
	Port        int    `json:"port"`
	Environment string `json:"environment"`

	// MongoDB configuration
	MongoURI      string `json:"mongo_uri"`
	MongoDatabase string `json:"mongo_database"`

	// Redis configuration
	RedisURI      string        `json:"redis_uri"`
	RedisPassword string        `json:"redis_password"`
	RedisDB       int           `json:"redis_db"`
	RedisTTL      time.Duration `json:"redis_ttl"`

	// Collection names
	PatientCollection string `json:"mongo_patient_collection"`

	// Duplicate detection configuration
	DedupDebounce     time.Duration `json:"dedup_debounce"`
	DedupMaxResults   int64         `json:"dedup_max_results"`
	DedupRateLimit    int           `json:"dedup_rate_limit"`
	CandidateCacheTTL time.Duration `json:"candidate_cache_ttl"`

	// Record store call timeout
	StoreTimeout time.Duration `json:"store_timeout"`

	// Tracing configuration
	TracingEnabled     bool    `json:"tracing_enabled"`
	TracingEndpoint    string  `json:"tracing_endpoint"`
	TracingSampleRatio float64 `json:"tracing_sample_ratio"`
}

var (
	AppConfig *Config
)

// LoadConfig loads configuration from environment variables
func LoadConfig() error {
	port, err := strconv.Atoi(getEnvOrDefault("PORT", "8080"))
	if err != nil {
		return fmt.Errorf("invalid PORT: %w", err)
	}

	redisDB, err := strconv.Atoi(getEnvOrDefault("REDIS_DB", "0"))
	if err != nil {
		return fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	redisTTL, err := time.ParseDuration(getEnvOrDefault("REDIS_TTL", "60m"))
	if err != nil {
		return fmt.Errorf("invalid REDIS_TTL: %w", err)
	}

	// Quiet period between identity-field edits and the duplicate search
	dedupDebounce, err := time.ParseDuration(getEnvOrDefault("DEDUP_DEBOUNCE", "800ms"))
	if err != nil {
		return fmt.Errorf("invalid DEDUP_DEBOUNCE: %w", err)
	}

	dedupMaxResults, err := strconv.ParseInt(getEnvOrDefault("DEDUP_MAX_RESULTS", "10"), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid DEDUP_MAX_RESULTS: %w", err)
	}

	dedupRateLimit, err := strconv.Atoi(getEnvOrDefault("DEDUP_RATE_LIMIT", "120"))
	if err != nil {
		return fmt.Errorf("invalid DEDUP_RATE_LIMIT: %w", err)
	}
	if dedupRateLimit <= 0 {
		return fmt.Errorf("DEDUP_RATE_LIMIT must be positive")
	}

	candidateCacheTTL, err := time.ParseDuration(getEnvOrDefault("CANDIDATE_CACHE_TTL", "30s"))
	if err != nil {
		return fmt.Errorf("invalid CANDIDATE_CACHE_TTL: %w", err)
	}

	storeTimeout, err := time.ParseDuration(getEnvOrDefault("STORE_TIMEOUT", "10s"))
	if err != nil {
		return fmt.Errorf("invalid STORE_TIMEOUT: %w", err)
	}

	tracingSampleRatio, err := strconv.ParseFloat(getEnvOrDefault("TRACING_SAMPLE_RATIO", "1.0"), 64)
	if err != nil {
		return fmt.Errorf("invalid TRACING_SAMPLE_RATIO: %w", err)
	}
	if tracingSampleRatio < 0 || tracingSampleRatio > 1 {
		return fmt.Errorf("TRACING_SAMPLE_RATIO must be between 0 and 1")
	}

	AppConfig = &Config{
		Port:        port,
		Environment: getEnvOrDefault("ENVIRONMENT", "development"),

		MongoURI:      getEnvOrDefault("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnvOrDefault("MONGODB_DATABASE", "patient_registry"),

		RedisURI:      getEnvOrDefault("REDIS_URI", "redis://localhost:6379"),
		RedisPassword: getEnvOrDefault("REDIS_PASSWORD", ""),
		RedisDB:       redisDB,
		RedisTTL:      redisTTL,

		PatientCollection: getEnvOrDefault("MONGODB_PATIENT_COLLECTION", "patients"),

		DedupDebounce:     dedupDebounce,
		DedupMaxResults:   dedupMaxResults,
		DedupRateLimit:    dedupRateLimit,
		CandidateCacheTTL: candidateCacheTTL,

		StoreTimeout: storeTimeout,

		TracingEnabled:     getEnvOrDefault("TRACING_ENABLED", "false") == "true",
		TracingEndpoint:    getEnvOrDefault("TRACING_ENDPOINT", "localhost:4317"),
		TracingSampleRatio: tracingSampleRatio,
	}

	return nil
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
