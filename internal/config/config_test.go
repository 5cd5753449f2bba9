package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEnvHelpers(t *testing.T) {
	t.Setenv("TEST_BOOL", "false")
	t.Setenv("TEST_BAD_BOOL", "maybe")
	t.Setenv("TEST_INT", "25")
	t.Setenv("TEST_BAD_INT", "-3")
	t.Setenv("TEST_DURATION", "45s")
	t.Setenv("TEST_BAD_DURATION", "soon")

	assert.False(t, envBool("TEST_BOOL", true))
	assert.True(t, envBool("TEST_BAD_BOOL", true))
	assert.True(t, envBool("TEST_UNSET_BOOL", true))

	assert.Equal(t, 25, envInt("TEST_INT", 10))
	assert.Equal(t, 10, envInt("TEST_BAD_INT", 10))

	assert.Equal(t, 45*time.Second, envDuration("TEST_DURATION", time.Minute))
	assert.Equal(t, time.Minute, envDuration("TEST_BAD_DURATION", time.Minute))

	assert.Equal(t, "fallback", envString("TEST_UNSET_STRING", "fallback"))
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("DB_CONNECTION", "./.data/test.db")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("REPLICATE_API_TOKEN", "r8_test")
	for _, key := range []string{"DB_DRIVER", "LLM_PROVIDER", "REPLICATE_MODEL", "SYNTHESIS_TIMEOUT", "GENERATE_RATE_LIMIT", "DB_MIGRATE_ON_START", "S3_BUCKET"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "mistralai/mistral-7b-instruct-v0.1", cfg.ReplicateModel)
	assert.Equal(t, 30*time.Second, cfg.SynthesisTimeout)
	assert.Equal(t, 10, cfg.GenerateRateLimit)
	assert.True(t, cfg.MigrateOnStart)
	assert.False(t, cfg.ArchiveEnabled())
}

func TestSanitizedDropsSecrets(t *testing.T) {
	cfg := &Config{
		AppName:           "SmartGoals",
		DBConnection:      "postgres://user:pw@host/db",
		JWTSecret:         "secret",
		ReplicateAPIToken: "r8_token",
		ResendAPIKey:      "re_key",
		SentryDSN:         "https://key@sentry.io/1",
		S3Bucket:          "transcripts",
		S3SecretKey:       "s3-secret",
	}

	s := cfg.Sanitized()

	assert.Equal(t, "SmartGoals", s.AppName)
	assert.Equal(t, "transcripts", s.S3Bucket)
	assert.Empty(t, s.DBConnection)
	assert.Empty(t, s.JWTSecret)
	assert.Empty(t, s.ReplicateAPIToken)
	assert.Empty(t, s.ResendAPIKey)
	assert.Empty(t, s.SentryDSN)
	assert.Empty(t, s.S3SecretKey)
}
