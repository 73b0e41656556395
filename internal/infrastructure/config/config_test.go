package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wichananm65/user-registry/pkg/logger"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, 18, cfg.Users.MinimumAge)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, logger.Production, cfg.Logging.Environment())
	assert.Equal(t, 5*time.Second, cfg.Shutdown.Timeout)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("USERS_MINIMUM_AGE", "21")
	t.Setenv("USERS_HTTP_PORT", "9090")
	t.Setenv("USERS_LOGGER_MODE", "development")

	cfg, err := Load(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, 21, cfg.Users.MinimumAge)
	assert.Equal(t, "0.0.0.0:9090", cfg.HTTP.Addr())
	assert.Equal(t, logger.Development, cfg.Logging.Environment())
}

func TestLoad_DotenvFile(t *testing.T) {
	// registered first so t.Setenv restores the variable that godotenv sets
	t.Setenv("USERS_MINIMUM_AGE", "")
	require.NoError(t, os.Unsetenv("USERS_MINIMUM_AGE"))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("USERS_MINIMUM_AGE=30\n"), 0o600))

	cfg, err := Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.Users.MinimumAge)
}

func TestLoad_MissingDotenvIsIgnored(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "missing.env"))
	assert.NoError(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("negative minimum age", func(t *testing.T) {
		t.Setenv("USERS_MINIMUM_AGE", "-1")
		_, err := Load(context.Background(), "")
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("unparseable minimum age", func(t *testing.T) {
		t.Setenv("USERS_MINIMUM_AGE", "eighteen")
		_, err := Load(context.Background(), "")
		assert.Error(t, err)
	})
}

func TestUsageListsVariables(t *testing.T) {
	assert.Contains(t, Usage(), "USERS_MINIMUM_AGE")
}
