package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t, "SERVER_PORT", "SERVER_ALLOW_ORIGINS", "JWT_SECRET", "JWT_TOKEN_TTL",
		"BCRYPT_COST", "AUTH_RATE_LIMIT", "DB_HOST", "AWS_USE_SSL", "AWS_URL")

	cfg := Load()

	assert.Equal(t, "8010", cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowOrigins)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, 8, cfg.Auth.PasswordMinLength)
	assert.Equal(t, 20, cfg.Auth.RateLimit)
	assert.False(t, cfg.MinIO.UseSSL)
	assert.Empty(t, cfg.MinIO.PublicURL)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("SERVER_ALLOW_ORIGINS", "https://a.test, ,https://b.test")
	t.Setenv("JWT_TOKEN_TTL", "90m")
	t.Setenv("AUTH_RATE_LIMIT", "5")
	t.Setenv("AWS_USE_SSL", "true")
	t.Setenv("DB_QUERY_TIMEOUT", "not-a-duration")

	cfg := Load()

	assert.Equal(t, []string{"https://a.test", "https://b.test"}, cfg.Server.AllowOrigins)
	assert.Equal(t, 90*time.Minute, cfg.Auth.TokenTTL)
	assert.Equal(t, 5, cfg.Auth.RateLimit)
	assert.True(t, cfg.MinIO.UseSSL)
	assert.Equal(t, 10*time.Second, cfg.Database.QueryTimeout)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Database: DatabaseConfig{Host: "localhost"},
			Auth:     AuthConfig{JWTSecret: "0123456789abcdef0123456789abcdef"},
		}
	}

	require.NoError(t, valid().Validate())

	cfg := valid()
	cfg.Auth.JWTSecret = ""
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.Auth.JWTSecret = "short"
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.Database.Host = ""
	assert.Error(t, cfg.Validate())
}

func TestValidateMinIO(t *testing.T) {
	cfg := &Config{MinIO: MinIOConfig{Endpoint: "localhost:9000"}}
	assert.Error(t, cfg.ValidateMinIO())

	cfg.MinIO.AccessKeyID = "key"
	cfg.MinIO.SecretAccessKey = "secret"
	assert.NoError(t, cfg.ValidateMinIO())
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: "5433", User: "u", Password: "p", DBName: "n", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5433 user=u password=p dbname=n sslmode=disable TimeZone=UTC connect_timeout=10", d.DSN())
}
