// filepath: internal/cli/root_test.go
package cli

import (
	"flowershop/internal/config"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to reset the global config and flags between tests
func resetGlobals(t *testing.T) {
	t.Helper()
	cfg = nil
	initConfig = ""
	cfgFile = filepath.Join(t.TempDir(), "nonexistent.toml")
}

// newTestCommand returns a command with the real flag set, parsed from args.
// Registering config_path resets cfgFile to its default, so the value set by
// resetGlobals is restored before parsing.
func newTestCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	path := cfgFile
	cmd := &cobra.Command{Use: "flowershop"}
	registerFlags(cmd)
	cfgFile = path
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

func TestConfigPrecedence(t *testing.T) {
	// RootCmd.Execute() would start the server, so initializeConfig and
	// applyOverrides are tested directly.

	t.Run("Defaults", func(t *testing.T) {
		resetGlobals(t)

		err := initializeConfig(newTestCommand(t))
		require.NoError(t, err)

		assert.Equal(t, "0.0.0.0", cfg.Server.Host)
		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, "info", cfg.Logging.Level)
		assert.Equal(t, "flowershop.db", cfg.Database.Path)
		assert.Equal(t, "images", cfg.Storage.Root)
		assert.Equal(t, "http://localhost:8080", cfg.Server.PublicBaseURL)
		assert.Equal(t, int64(8<<20), cfg.MaxUploadSizeBytes)
		assert.Equal(t, time.Duration(0), cfg.SweepInterval)
	})

	t.Run("Environment Overrides Defaults", func(t *testing.T) {
		resetGlobals(t)
		t.Setenv("FLOWERSHOP_PORT", "9090")
		t.Setenv("FLOWERSHOP_LOG_LEVEL", "warn")
		t.Setenv("FLOWERSHOP_DB_PATH", "/data/shop.db")
		t.Setenv("FLOWERSHOP_AUDIT_ENABLED", "true")

		err := initializeConfig(newTestCommand(t))
		require.NoError(t, err)

		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, "warn", cfg.Logging.Level)
		assert.Equal(t, "/data/shop.db", cfg.Database.Path)
		assert.True(t, cfg.Logging.AuditEnabled)
		assert.Equal(t, "http://localhost:9090", cfg.Server.PublicBaseURL)
	})

	t.Run("Flags Override Environment", func(t *testing.T) {
		resetGlobals(t)
		t.Setenv("FLOWERSHOP_PORT", "9090")

		err := initializeConfig(newTestCommand(t, "--port=7070", "--public-base-url=https://shop.example.com/"))
		require.NoError(t, err)

		assert.Equal(t, 7070, cfg.Server.Port)
		assert.Equal(t, "https://shop.example.com", cfg.Server.PublicBaseURL)
	})

	t.Run("Config File Loading", func(t *testing.T) {
		resetGlobals(t)

		content := []byte(`
[server]
port = 6060
[logging]
level = "error"
[storage]
root = "/srv/images"
sweep_interval = "24h"
`)
		tmpFile := filepath.Join(t.TempDir(), "test_config.toml")
		require.NoError(t, os.WriteFile(tmpFile, content, 0644))

		err := initializeConfig(newTestCommand(t, "--config_path="+tmpFile))
		require.NoError(t, err)

		assert.Equal(t, 6060, cfg.Server.Port)
		assert.Equal(t, "error", cfg.Logging.Level)
		assert.Equal(t, "/srv/images", cfg.Storage.Root)
		assert.Equal(t, 24*time.Hour, cfg.SweepInterval)
	})

	t.Run("Config path flag beats environment", func(t *testing.T) {
		resetGlobals(t)
		dir := t.TempDir()
		flagFile := filepath.Join(dir, "flag.toml")
		envFile := filepath.Join(dir, "env.toml")
		require.NoError(t, os.WriteFile(flagFile, []byte("[server]\nport = 4040\n"), 0644))
		require.NoError(t, os.WriteFile(envFile, []byte("[server]\nport = 5050\n"), 0644))
		t.Setenv("FLOWERSHOP_CONFIG_PATH", envFile)

		err := initializeConfig(newTestCommand(t, "--config_path="+flagFile))
		require.NoError(t, err)
		assert.Equal(t, 4040, cfg.Server.Port)
	})

	t.Run("Config path from environment", func(t *testing.T) {
		resetGlobals(t)
		tmpFile := filepath.Join(t.TempDir(), "env_config.toml")
		require.NoError(t, os.WriteFile(tmpFile, []byte("[server]\nport = 5050\n"), 0644))
		t.Setenv("FLOWERSHOP_CONFIG_PATH", tmpFile)

		err := initializeConfig(newTestCommand(t))
		require.NoError(t, err)
		assert.Equal(t, 5050, cfg.Server.Port)
	})

	t.Run("Invalid upload size", func(t *testing.T) {
		resetGlobals(t)
		err := initializeConfig(newTestCommand(t, "--max-upload=lots"))
		assert.Error(t, err)
	})
}

func TestApplyOverrides(t *testing.T) {
	resetGlobals(t)
	c := &config.Config{
		Server:  config.ServerConfig{Port: 8080, Host: "10.0.0.5"},
		Logging: config.LoggingConfig{Level: "info"},
	}
	t.Setenv("FLOWERSHOP_INIT_CONFIG", "/etc/flowershop/init.toml")

	cmd := newTestCommand(t, "--port=9999", "--log-level=debug", "--audit-enabled", "--storage-root=/tmp/img")
	require.NoError(t, applyOverrides(c, cmd))

	assert.Equal(t, 9999, c.Server.Port)
	assert.Equal(t, "debug", c.Logging.Level)
	assert.True(t, c.Logging.AuditEnabled)
	assert.Equal(t, "/tmp/img", c.Storage.Root)
	assert.Equal(t, "http://10.0.0.5:9999", c.Server.PublicBaseURL)
	assert.Equal(t, "/etc/flowershop/init.toml", initConfig)
}
