// filepath: internal/cli/config_loader.go
package cli

import (
	"errors"
	"flowershop/internal/config"
	"flowershop/internal/logging"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix         = "FLOWERSHOP"
	defaultConfigPath = "config.toml"
)

var (
	// Global config object populated by flags/env/file
	cfg *config.Config

	// Flags variables
	cfgFile    string
	initConfig string
)

func registerFlags(cmd *cobra.Command) {
	// Shared by every command
	cmd.PersistentFlags().StringVar(&cfgFile, "config_path", defaultConfigPath, "Path to the base configuration file. (Env: FLOWERSHOP_CONFIG_PATH)")
	cmd.PersistentFlags().String("log-level", "", "Logging level (trace, debug, info, warn, error). (Env: FLOWERSHOP_LOG_LEVEL)")
	cmd.PersistentFlags().String("db-path", "", "Path to the SQLite catalog database. (Env: FLOWERSHOP_DB_PATH)")
	cmd.PersistentFlags().String("storage-root", "", "Directory holding the product images. (Env: FLOWERSHOP_STORAGE_ROOT)")

	// Server-specific flags
	cmd.Flags().String("host", "", "Listen address for the HTTP server. (Env: FLOWERSHOP_HOST)")
	cmd.Flags().Int("port", 0, "Port for the HTTP server. (Env: FLOWERSHOP_PORT)")
	cmd.Flags().String("public-base-url", "", "Base URL clients use to reach this server, e.g. 'https://shop.example.com'. (Env: FLOWERSHOP_PUBLIC_BASE_URL)")
	cmd.Flags().String("max-upload", "", "Max request size for create/update uploads (e.g. '8MB'). (Env: FLOWERSHOP_MAX_UPLOAD)")
	cmd.Flags().String("sweep-interval", "", "Interval of the background orphan image sweep, e.g. '24h'. Empty disables it. (Env: FLOWERSHOP_SWEEP_INTERVAL)")
	cmd.Flags().Bool("audit-enabled", false, "Enable audit logging of catalog changes. (Env: FLOWERSHOP_AUDIT_ENABLED=true)")
	cmd.Flags().StringVar(&initConfig, "init_config", "", "Path to a TOML file seeding flower and unit types. (Env: FLOWERSHOP_INIT_CONFIG)")
}

// initializeConfig loads and overrides configuration values.
func initializeConfig(cmd *cobra.Command) error {
	// A missing .env is normal
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	// 1. Check environment variable for config path first
	if envPath := os.Getenv(envPrefix + "_CONFIG_PATH"); envPath != "" && !cmd.Flags().Changed("config_path") {
		cfgFile = envPath
	}
	if cfgFile == "" {
		cfgFile = defaultConfigPath
	}

	var err error
	cfg, err = config.LoadConfig(cfgFile)
	if err != nil {
		if os.IsNotExist(err) {
			// Create empty config if not found, rely on defaults/flags
			cfg = &config.Config{}
		} else {
			return fmt.Errorf("failed to load configuration from %s: %w", cfgFile, err)
		}
	}

	// 2. Apply Overrides (Env Vars and CLI Flags)
	if err := applyOverrides(cfg, cmd); err != nil {
		return err
	}

	// 3. Validate
	if err := cfg.ParseAndValidate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// 4. Initialize Logging
	logging.Init(cfg.Logging.Level)

	return nil
}

// newOverrideViper binds the command's flags and FLOWERSHOP_* variables.
// A key is only set when its flag was changed or its variable exists, and a
// changed flag wins over the environment.
func newOverrideViper(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Name == "config_path" || f.Name == "init_config" {
			return
		}
		if err := v.BindPFlag(f.Name, f); err != nil && bindErr == nil {
			bindErr = fmt.Errorf("failed to bind flag %s: %w", f.Name, err)
		}
	})
	return v, bindErr
}

func applyOverrides(c *config.Config, cmd *cobra.Command) error {
	v, err := newOverrideViper(cmd)
	if err != nil {
		return err
	}

	// --- 1. Environment Variables and CLI Flags ---
	if v.IsSet("log-level") {
		c.Logging.Level = v.GetString("log-level")
	}
	if v.IsSet("db-path") {
		c.Database.Path = v.GetString("db-path")
	}
	if v.IsSet("storage-root") {
		c.Storage.Root = v.GetString("storage-root")
	}
	if v.IsSet("host") {
		c.Server.Host = v.GetString("host")
	}
	if v.IsSet("port") {
		c.Server.Port = v.GetInt("port")
	}
	if v.IsSet("public-base-url") {
		c.Server.PublicBaseURL = v.GetString("public-base-url")
	}
	if v.IsSet("max-upload") {
		c.Server.MaxUploadSize = v.GetString("max-upload")
	}
	if v.IsSet("sweep-interval") {
		c.Storage.SweepInterval = v.GetString("sweep-interval")
	}
	if v.IsSet("audit-enabled") {
		c.Logging.AuditEnabled = v.GetBool("audit-enabled")
	}
	if initConfig == "" {
		initConfig = os.Getenv(envPrefix + "_INIT_CONFIG")
	}

	// --- 2. Defaults ---
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Database.Path == "" {
		c.Database.Path = "flowershop.db"
	}
	if c.Storage.Root == "" {
		c.Storage.Root = "images"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Server.PublicBaseURL == "" {
		host := c.Server.Host
		if host == "0.0.0.0" || host == "::" {
			host = "localhost"
		}
		c.Server.PublicBaseURL = fmt.Sprintf("http://%s:%d", host, c.Server.Port)
	}
	return nil
}
