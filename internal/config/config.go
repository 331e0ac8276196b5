// filepath: internal/config/config.go
package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds the application's configuration.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Storage  StorageConfig  `toml:"storage"`
	Logging  LoggingConfig  `toml:"logging"`
	Media    MediaConfig    `toml:"media"`
	Report   ReportConfig   `toml:"report"`
	Cache    CacheConfig    `toml:"cache"`

	MaxUploadSizeBytes int64         `toml:"-"` // Runtime computed value
	ReferenceTTL       time.Duration `toml:"-"` // Runtime computed value
	SweepInterval      time.Duration `toml:"-"` // Runtime computed value
	OrphanMinAge       time.Duration `toml:"-"` // Runtime computed value
}

// ServerConfig holds the server configuration.
type ServerConfig struct {
	Host          string `toml:"host"`
	Port          int    `toml:"port"`
	MaxUploadSize string `toml:"max_upload_size"` // e.g. "8MB", "512KB"
	PublicBaseURL string `toml:"public_base_url"` // prefix for image URLs handed to clients
}

// DatabaseConfig holds the catalog database configuration.
type DatabaseConfig struct {
	Path string `toml:"path"`
}

// StorageConfig holds the image blob store configuration.
type StorageConfig struct {
	Root string `toml:"root"`
	// SweepInterval schedules the background orphan sweep, e.g. "24h". Empty or "0" disables it.
	SweepInterval string `toml:"sweep_interval"`
	// OrphanMinAge protects freshly uploaded images whose record may not be written yet.
	OrphanMinAge string `toml:"orphan_min_age"`
}

// LoggingConfig holds the logging configuration.
type LoggingConfig struct {
	Level        string `toml:"level"`
	AuditEnabled bool   `toml:"audit_enabled"`
}

// MediaConfig holds image normalization settings.
type MediaConfig struct {
	MaxSide         int `toml:"max_side"`
	JPEGQuality     int `toml:"jpeg_quality"`
	MaxSourcePixels int `toml:"max_source_pixels"`
}

// ReportConfig holds catalog export settings.
type ReportConfig struct {
	FontPath string `toml:"font_path"` // optional TTF with Vietnamese glyphs for PDF output
	MaxRows  int    `toml:"max_rows"`
}

// CacheConfig holds settings for the reference list cache.
type CacheConfig struct {
	ReferenceTTL string `toml:"reference_ttl"` // e.g. "5m"
}

// LoadConfig loads the configuration from a TOML file.
func LoadConfig(path string) (*Config, error) {
	var config Config
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

// SaveConfig writes the current configuration back to a TOML file.
func SaveConfig(path string, cfg *Config) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file for saving: %w", err)
	}
	defer f.Close()
	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config to file: %w", err)
	}
	return nil
}

// ParseAndValidate processes configuration strings into runtime values.
// It sets defaults if values are missing and parses human-readable sizes.
func (c *Config) ParseAndValidate() error {
	if c.Server.MaxUploadSize == "" {
		c.Server.MaxUploadSize = "8MB"
	}
	sizeBytes, err := parseSize(c.Server.MaxUploadSize)
	if err != nil {
		return fmt.Errorf("invalid max_upload_size: %w", err)
	}
	c.MaxUploadSizeBytes = sizeBytes

	if c.Media.MaxSide == 0 {
		c.Media.MaxSide = 1200
	}
	if c.Media.JPEGQuality == 0 {
		c.Media.JPEGQuality = 95
	}
	if c.Media.JPEGQuality < 1 || c.Media.JPEGQuality > 100 {
		return fmt.Errorf("invalid jpeg_quality %d: must be between 1 and 100", c.Media.JPEGQuality)
	}
	if c.Media.MaxSide < 0 || c.Media.MaxSourcePixels < 0 {
		return fmt.Errorf("media limits must not be negative")
	}
	if c.Media.MaxSourcePixels == 0 {
		c.Media.MaxSourcePixels = 40_000_000
	}

	if c.Report.MaxRows == 0 {
		c.Report.MaxRows = 5000
	}
	if c.Report.MaxRows < 0 {
		return fmt.Errorf("invalid report max_rows: %d", c.Report.MaxRows)
	}

	if c.Cache.ReferenceTTL == "" {
		c.Cache.ReferenceTTL = "5m"
	}
	ttl, err := time.ParseDuration(c.Cache.ReferenceTTL)
	if err != nil {
		return fmt.Errorf("invalid reference_ttl: %w", err)
	}
	c.ReferenceTTL = ttl

	if c.Storage.SweepInterval != "" {
		interval, err := parseDuration(c.Storage.SweepInterval)
		if err != nil || interval < 0 {
			return fmt.Errorf("invalid sweep_interval: %s", c.Storage.SweepInterval)
		}
		c.SweepInterval = interval
	}
	if c.Storage.OrphanMinAge == "" {
		c.Storage.OrphanMinAge = "15m"
	}
	minAge, err := parseDuration(c.Storage.OrphanMinAge)
	if err != nil || minAge < 0 {
		return fmt.Errorf("invalid orphan_min_age: %s", c.Storage.OrphanMinAge)
	}
	c.OrphanMinAge = minAge

	c.Server.PublicBaseURL = strings.TrimRight(c.Server.PublicBaseURL, "/")

	return nil
}

// parseSize parses a size string (e.g., "100G", "500MB") into bytes.
func parseSize(sizeStr string) (int64, error) {
	re := regexp.MustCompile(`(?i)^(\d+)\s*(K|M|G|T)?B?$`)
	matches := re.FindStringSubmatch(strings.TrimSpace(sizeStr))

	if len(matches) < 2 {
		return 0, fmt.Errorf("invalid size format: %s", sizeStr)
	}

	value, err := strconv.ParseInt(matches[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size number: %s", matches[1])
	}

	unit := ""
	if len(matches) > 2 {
		unit = strings.ToUpper(matches[2])
	}

	switch unit {
	case "T":
		return value * (1 << 40), nil
	case "G":
		return value * (1 << 30), nil
	case "M":
		return value * (1 << 20), nil
	case "K":
		return value * (1 << 10), nil
	default:
		return value, nil
	}
}

// parseDuration accepts a whole number of days ("7d") in addition to
// time.ParseDuration syntax. "0" disables the setting.
func parseDuration(durationStr string) (time.Duration, error) {
	trimmedStr := strings.TrimSpace(durationStr)
	if trimmedStr == "0" {
		return 0, nil
	}

	re := regexp.MustCompile(`^(\d+)\s*d$`)
	if matches := re.FindStringSubmatch(trimmedStr); len(matches) == 2 {
		days, err := strconv.Atoi(matches[1])
		if err != nil {
			return 0, fmt.Errorf("invalid duration number: %s", matches[1])
		}
		return time.Duration(days) * 24 * time.Hour, nil
	}
	return time.ParseDuration(trimmedStr)
}
