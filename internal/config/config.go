package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"brandfind/internal/logging"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

const APP_NAME = "brandfind" // application name used for config directory

// Published locations of the pre-generated metadata documents.
const (
	DefaultMetadataSource = "https://raw.githubusercontent.com/b-ciq/brand-assets/main/metadata/asset-inventory.json"
	DefaultPaletteSource  = "https://raw.githubusercontent.com/b-ciq/brand-assets/main/assets/global/colors/color-palette-dark.json"
	DefaultGalleryURL     = "http://localhost:3003"
)

// DefaultFetchTimeout bounds the single metadata fetch attempt.
const DefaultFetchTimeout = 10 * time.Second

// Config holds user configuration for brandfind.
type Config struct {
	// MetadataSource is the URL or local path of the asset inventory JSON.
	MetadataSource string `yaml:"metadata_source"`
	// PaletteSource is the URL or local path of the color palette JSON.
	// Palette data is optional; load failures degrade color queries only.
	PaletteSource string `yaml:"palette_source"`
	// GalleryURL is the base URL of the companion web gallery used for
	// deep links.
	GalleryURL string `yaml:"gallery_url"`
	// FetchTimeoutSeconds bounds the one-shot metadata fetch. Zero means
	// the default.
	FetchTimeoutSeconds int   `yaml:"fetch_timeout_seconds"`
	Version             string `yaml:"version"`   // Track config version
	InitTime            int64  `yaml:"init_time"` // Unix timestamp of first save
}

// ConfigPath returns the standard config file path for the current platform
func ConfigPath() (string, error) {
	configDir := filepath.Join(xdg.ConfigHome, APP_NAME)
	configPath := filepath.Join(configDir, "config.yaml")

	logging.Debug("Determined config path", "path", configPath)
	return configPath, nil
}

// Load loads the config from the standard location.
// If no config exists, defaults are returned so the tool works out of
// the box without a setup step.
func Load() (*Config, error) {
	configPath, exists := FindConfigFile()
	logging.Debug("Loading config from", "path", configPath)
	if !exists {
		cfg := DefaultConfig()
		return &cfg, nil
	}

	return LoadFrom(configPath)
}

// LoadFrom loads config from a specific path
func LoadFrom(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	var cfg Config
	dec := yaml.NewDecoder(f)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Missing fields fall back to defaults rather than failing the load.
	defaults := DefaultConfig()
	if cfg.MetadataSource == "" {
		cfg.MetadataSource = defaults.MetadataSource
	}
	if cfg.PaletteSource == "" {
		cfg.PaletteSource = defaults.PaletteSource
	}
	if cfg.GalleryURL == "" {
		cfg.GalleryURL = defaults.GalleryURL
	}

	return &cfg, nil
}

// FindConfigFile returns the path to an existing config file, and whether it exists.
func FindConfigFile() (string, bool) {
	primary, err := ConfigPath()
	if err != nil {
		logging.Error("Failed to get config path", "error", err)
		return "", false
	}

	if _, err := os.Stat(primary); err == nil {
		logging.Debug("Config found at primary path", "path", primary)
		return primary, true
	}

	// Return primary path for new config
	return primary, false
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		MetadataSource:      DefaultMetadataSource,
		PaletteSource:       DefaultPaletteSource,
		GalleryURL:          DefaultGalleryURL,
		FetchTimeoutSeconds: int(DefaultFetchTimeout / time.Second),
		Version:             "1.0",
		InitTime:            0, // Will be set during first save
	}
}

// FetchTimeout returns the configured fetch timeout as a duration.
func (c *Config) FetchTimeout() time.Duration {
	if c.FetchTimeoutSeconds <= 0 {
		return DefaultFetchTimeout
	}
	return time.Duration(c.FetchTimeoutSeconds) * time.Second
}

// Save writes the config to the standard location
func (c *Config) Save() error {
	configPath, _ := FindConfigFile()
	return c.SaveTo(configPath)
}

// SaveTo writes the config to a specific path
func (c *Config) SaveTo(path string) error {
	// Set init time if this is the first save
	if c.InitTime == 0 {
		c.InitTime = time.Now().Unix()
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	defer enc.Close()

	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
