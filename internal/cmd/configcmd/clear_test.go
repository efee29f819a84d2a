package configcmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/rtfdoc/internal/config"
)

func TestRunClear_WithExistingConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "rtfdoc", "config.yml")

	cfg := &config.Config{
		URL:      "https://docs.example.com",
		Email:    "test@example.com",
		APIToken: "test-token",
	}
	require.NoError(t, cfg.Save(configPath))

	err := runClear(configPath, true)
	require.NoError(t, err)

	// Verify file is deleted
	_, err = os.Stat(configPath)
	assert.True(t, os.IsNotExist(err))
}

func TestRunClear_NoConfigFile(t *testing.T) {
	// Should not error even if file doesn't exist
	err := runClear(filepath.Join(t.TempDir(), "config.yml"), true)
	require.NoError(t, err)
}

func TestRunClear_Idempotent(t *testing.T) {
	t.Setenv(config.EnvURL, "https://env.example.com")
	configPath := filepath.Join(t.TempDir(), "config.yml")

	// Running twice should succeed
	require.NoError(t, runClear(configPath, true))
	require.NoError(t, runClear(configPath, true))
}
