package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("JWT_SECRET_KEY", "jwt-secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "Asia/Jakarta", cfg.App.Timezone)
	assert.Equal(t, "8h", cfg.JWT.AccessExpiration)
	assert.Equal(t, "uploads", cfg.Storage.UploadDir)
	assert.Equal(t, 10, cfg.Storage.MaxAttachment)
	assert.Equal(t, 365, cfg.Activity.RetentionDays)
	assert.True(t, cfg.App.MigrateOnStart)
	assert.False(t, cfg.OAuth2Google.Enabled())
	assert.Equal(t, "admin@unand.ac.id", cfg.Seed.AdminEmail)
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("JWT_SECRET_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET_KEY")
}

func TestLoad_InvalidPort(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_PORT", "abc")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "APP_PORT")
}

func TestLoad_GoogleRequiresRedirect(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("GOOGLE_CLIENT_ID", "client")
	t.Setenv("GOOGLE_CLIENT_SECRET", "secret")
	t.Setenv("GOOGLE_REDIRECT_URL", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GOOGLE_REDIRECT_URL")
}

func TestConfig_DatabaseURLAndLocation(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_NAME", "tendik_test")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres://postgres:secret@db:5432/tendik_test?sslmode=disable", cfg.DatabaseURL())
	assert.Equal(t, "Asia/Jakarta", cfg.Location().String())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.App.AllowedOrigins)
}
