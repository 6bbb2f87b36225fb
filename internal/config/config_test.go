package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessTTL)
	assert.Equal(t, 72*time.Hour, cfg.JWT.RefreshTTL)
	assert.Equal(t, "strict", cfg.Comments.ParentPolicy)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9000")
	t.Setenv("JWT_ACCESS_EXPIRY_MINUTES", "5")
	t.Setenv("COMMENT_PARENT_POLICY", "permissive")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.App.Port)
	assert.Equal(t, 5*time.Minute, cfg.JWT.AccessTTL)
	assert.Equal(t, "permissive", cfg.Comments.ParentPolicy)
}

func TestValidateRejectsBadParentPolicy(t *testing.T) {
	t.Setenv("COMMENT_PARENT_POLICY", "lenient")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidateProductionGuards(t *testing.T) {
	t.Run("default jwt secret rejected", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		t.Setenv("AUTH_EXCHANGE_SECRET", "s3cret")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("missing exchange secret rejected", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		t.Setenv("JWT_SECRET", "real-secret")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("fully configured production passes", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		t.Setenv("JWT_SECRET", "real-secret")
		t.Setenv("AUTH_EXCHANGE_SECRET", "s3cret")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "production", cfg.App.Environment)
	})
}

func TestGetEnvIntFallsBackOnGarbage(t *testing.T) {
	t.Setenv("JWT_ACCESS_EXPIRY_MINUTES", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessTTL)
}
