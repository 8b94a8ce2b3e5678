package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_HOST", "")
	t.Setenv("JOB_CACHE_TTL", "")
	t.Setenv("RESUME_MAX_BYTES", "")

	cfg := Load()

	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "local", cfg.StorageType)
	assert.Equal(t, time.Minute, cfg.JobCacheTTL)
	assert.Equal(t, 5*1024*1024, cfg.ResumeMaxBytes)
	assert.Equal(t, 30, cfg.LogRetentionDays)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("JOB_CACHE_TTL", "5m")
	t.Setenv("RESUME_MAX_BYTES", "1024")
	t.Setenv("LOG_RETENTION_DAYS", "not-a-number")

	cfg := Load()

	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, 5*time.Minute, cfg.JobCacheTTL)
	assert.Equal(t, 1024, cfg.ResumeMaxBytes)
	assert.Equal(t, 30, cfg.LogRetentionDays)
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBHost: "h", DBUser: "u", DBPassword: "p", DBName: "n", DBPort: "1", DBSSLMode: "disable",
	}
	assert.Equal(t, "host=h user=u password=p dbname=n port=1 sslmode=disable TimeZone=UTC", cfg.DSN())
}
