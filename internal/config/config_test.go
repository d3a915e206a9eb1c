package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.MetadataSource != DefaultMetadataSource {
		t.Errorf("Expected default metadata source %s, got %s", DefaultMetadataSource, cfg.MetadataSource)
	}
	if cfg.PaletteSource != DefaultPaletteSource {
		t.Errorf("Expected default palette source %s, got %s", DefaultPaletteSource, cfg.PaletteSource)
	}
	if cfg.GalleryURL != DefaultGalleryURL {
		t.Errorf("Expected default gallery URL %s, got %s", DefaultGalleryURL, cfg.GalleryURL)
	}
	if cfg.FetchTimeout() != DefaultFetchTimeout {
		t.Errorf("Expected default fetch timeout %v, got %v", DefaultFetchTimeout, cfg.FetchTimeout())
	}
}

func TestConfigSaveLoad(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")

	originalConfig := Config{
		MetadataSource:      "/data/asset-inventory.json",
		PaletteSource:       "/data/color-palette-dark.json",
		GalleryURL:          "https://gallery.example.com",
		FetchTimeoutSeconds: 5,
		Version:             "1.0",
		InitTime:            time.Now().Unix(),
	}

	if err := originalConfig.SaveTo(configPath); err != nil {
		t.Fatalf("Failed to save config: %s", err)
	}

	loadedConfig, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %s", err)
	}

	if loadedConfig.MetadataSource != originalConfig.MetadataSource {
		t.Errorf("MetadataSource mismatch: expected %s, got %s", originalConfig.MetadataSource, loadedConfig.MetadataSource)
	}
	if loadedConfig.PaletteSource != originalConfig.PaletteSource {
		t.Errorf("PaletteSource mismatch: expected %s, got %s", originalConfig.PaletteSource, loadedConfig.PaletteSource)
	}
	if loadedConfig.GalleryURL != originalConfig.GalleryURL {
		t.Errorf("GalleryURL mismatch: expected %s, got %s", originalConfig.GalleryURL, loadedConfig.GalleryURL)
	}
	if loadedConfig.FetchTimeout() != 5*time.Second {
		t.Errorf("FetchTimeout mismatch: expected 5s, got %v", loadedConfig.FetchTimeout())
	}
}

func TestLoadFromFillsMissingFieldsWithDefaults(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")

	partial := Config{
		MetadataSource: "/data/asset-inventory.json",
		Version:        "1.0",
	}
	if err := partial.SaveTo(configPath); err != nil {
		t.Fatalf("Failed to save config: %s", err)
	}

	loaded, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %s", err)
	}

	if loaded.MetadataSource != "/data/asset-inventory.json" {
		t.Errorf("Expected explicit metadata source to survive, got %s", loaded.MetadataSource)
	}
	if loaded.PaletteSource != DefaultPaletteSource {
		t.Errorf("Expected missing palette source to default, got %s", loaded.PaletteSource)
	}
	if loaded.GalleryURL != DefaultGalleryURL {
		t.Errorf("Expected missing gallery URL to default, got %s", loaded.GalleryURL)
	}
	if loaded.FetchTimeout() != DefaultFetchTimeout {
		t.Errorf("Expected missing timeout to default, got %v", loaded.FetchTimeout())
	}
}

func TestLoadFromMissingFile(t *testing.T) {
	_, err := LoadFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("Expected error loading nonexistent config file")
	}
}
