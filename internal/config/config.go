package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Application
	AppName string
	AppEnv  string
	AppURL  string
	Port    string

	// Database (driver switch via ENV: "pgx" for the hosted store, "sqlite" locally)
	DBDriver       string
	DBConnection   string
	MigrateOnStart bool

	// Session verification
	JWTSecret string
	JWTExpiry time.Duration

	// Goal synthesis
	LLMProvider        string // "replicate"
	ReplicateAPIToken  string
	ReplicateModel     string
	SynthesisTimeout   time.Duration
	GenerateRateLimit  int
	GenerateRateWindow time.Duration

	// Email (optional, goal summary emails)
	EmailFrom    string
	ResendAPIKey string

	// Observability (optional)
	SentryDSN string

	// Transcript archive (optional, S3-compatible: MinIO, AWS S3, Cloudflare R2, etc.)
	S3Region    string
	S3Bucket    string
	S3AccessKey string
	S3SecretKey string
	S3Endpoint  string
}

func Load() *Config {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := &Config{
		// Application
		AppName: envString("APP_NAME", "SmartGoals"),
		AppEnv:  envRequired("APP_ENV"), // Required: 'development' or 'production'
		AppURL:  envString("APP_URL", "http://localhost:8090"),
		Port:    envString("PORT", "8090"),

		// Database
		DBDriver:       envString("DB_DRIVER", "sqlite"),
		DBConnection:   envRequired("DB_CONNECTION"),
		MigrateOnStart: envBool("DB_MIGRATE_ON_START", true),

		// Session verification
		JWTSecret: envRequired("JWT_SECRET"),
		JWTExpiry: envDuration("JWT_EXPIRY", 168*time.Hour), // 7 days

		// Goal synthesis
		LLMProvider:        envString("LLM_PROVIDER", "replicate"),
		ReplicateModel:     envString("REPLICATE_MODEL", "mistralai/mistral-7b-instruct-v0.1"),
		SynthesisTimeout:   envDuration("SYNTHESIS_TIMEOUT", 30*time.Second),
		GenerateRateLimit:  envInt("GENERATE_RATE_LIMIT", 10),
		GenerateRateWindow: envDuration("GENERATE_RATE_WINDOW", time.Hour),

		// Email
		EmailFrom:    envString("EMAIL_FROM", "noreply@example.com"),
		ResendAPIKey: envString("RESEND_API_KEY", ""),

		// Observability
		SentryDSN: envString("SENTRY_DSN", ""),

		// Transcript archive (disabled when S3_BUCKET is empty)
		S3Region:    envString("S3_REGION", "us-east-1"),
		S3Bucket:    envString("S3_BUCKET", ""),
		S3AccessKey: envString("S3_ACCESS_KEY", ""),
		S3SecretKey: envString("S3_SECRET_KEY", ""),
		S3Endpoint:  envString("S3_ENDPOINT", ""),
	}

	// The model token is only meaningful for the hosted provider
	if cfg.LLMProvider == "replicate" {
		cfg.ReplicateAPIToken = envRequired("REPLICATE_API_TOKEN")
	}

	if cfg.IsProduction() {
		validateProduction(cfg)
	}

	return cfg
}

// validateProduction rejects settings that are tolerable locally but unsafe once deployed.
func validateProduction(cfg *Config) {
	if len(cfg.JWTSecret) < 32 {
		slog.Error("production deployment requires JWT_SECRET of at least 32 bytes")
		os.Exit(1)
	}
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("config invalid bool, using default", "key", key, "value", v, "default", def)
		return def
	}
	return b
}

func envInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("config invalid int, using default", "key", key, "value", v, "default", def)
		return def
	}
	return n
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

func envRequired(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	slog.Error("config required env var missing", "key", key)
	os.Exit(1)
	return ""
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// ArchiveEnabled reports whether synthesis transcripts should be written to S3.
func (c *Config) ArchiveEnabled() bool {
	return c.S3Bucket != ""
}

// Sanitized returns a copy of the config with only public/safe fields.
// All secrets, credentials, and connection strings are excluded.
func (c *Config) Sanitized() *Config {
	return &Config{
		AppName: c.AppName,
		AppEnv:  c.AppEnv,
		AppURL:  c.AppURL,
		Port:    c.Port,

		DBDriver: c.DBDriver,

		LLMProvider:        c.LLMProvider,
		ReplicateModel:     c.ReplicateModel,
		SynthesisTimeout:   c.SynthesisTimeout,
		GenerateRateLimit:  c.GenerateRateLimit,
		GenerateRateWindow: c.GenerateRateWindow,

		EmailFrom: c.EmailFrom,

		S3Region:   c.S3Region,
		S3Bucket:   c.S3Bucket,
		S3Endpoint: c.S3Endpoint,
	}
}
