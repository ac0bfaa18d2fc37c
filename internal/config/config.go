// Package config provides configuration types and defaults for arbor.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/zjrosen/arbor/internal/log"
)

// Config holds all configuration options for arbor.
type Config struct {
	ManifestDir string            `mapstructure:"manifest_dir"`
	AutoRefresh bool              `mapstructure:"auto_refresh"`
	UI          UIConfig          `mapstructure:"ui"`
	Theme       ThemeConfig       `mapstructure:"theme"`
	Keybindings KeybindingsConfig `mapstructure:"keybindings"`
	Cache       CacheConfig       `mapstructure:"cache"`
	History     HistoryConfig     `mapstructure:"history"`
	Tracing     TracingConfig     `mapstructure:"tracing"`
}

// UIConfig holds user interface configuration options.
type UIConfig struct {
	ShowStatusBar bool   `mapstructure:"show_status_bar"`
	MarkdownStyle string `mapstructure:"markdown_style"` // "dark" (default) or "light"
}

// ThemeConfig holds all theme customization options.
type ThemeConfig struct {
	// Preset loads a built-in theme as the base (optional).
	// Valid values: "default", "catppuccin-mocha", "catppuccin-latte",
	// "dracula", "nord", "high-contrast"
	Preset string `mapstructure:"preset"`

	// Mode forces light or dark mode. If empty, uses terminal detection.
	// Valid values: "light", "dark", ""
	Mode string `mapstructure:"mode"`

	// Colors allows overriding individual color tokens by dotted name.
	// Example YAML (quote the keys so viper keeps them flat):
	//   colors:
	//     "text.primary": "#FF0000"
	Colors map[string]string `mapstructure:"colors"`
}

// CacheConfig holds lookup cache configuration.
type CacheConfig struct {
	// Enabled controls whether registry lookups are memoized.
	// Default: true
	Enabled bool `mapstructure:"enabled"`

	// TTL bounds how long a cached lookup result is served.
	// Default: 5m
	TTL time.Duration `mapstructure:"ttl"`
}

// HistoryConfig holds resolution history configuration.
type HistoryConfig struct {
	// Enabled controls whether resolutions are recorded to the history database.
	// Default: true
	Enabled bool `mapstructure:"enabled"`

	// Keep is the number of runs retained in history. Older runs are
	// pruned after each recorded resolution. 0 disables pruning.
	// Default: 50
	Keep int `mapstructure:"keep"`
}

// TracingConfig holds tracing configuration for resolutions.
type TracingConfig struct {
	// Enabled controls whether tracing is active.
	// Default: false
	Enabled bool `mapstructure:"enabled"`

	// Exporter selects the trace export backend.
	// Options: "none", "file", "stdout", "otlp"
	// Default: "file"
	Exporter string `mapstructure:"exporter"`

	// FilePath is the output file for "file" exporter.
	// Default: ~/.config/arbor/traces/traces.jsonl
	FilePath string `mapstructure:"file_path"`

	// OTLPEndpoint is the collector endpoint for "otlp" exporter.
	// Default: "localhost:4317"
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`

	// SampleRate controls trace sampling (0.0 to 1.0).
	// 1.0 = all traces, 0.1 = 10% of traces
	// Default: 1.0
	SampleRate float64 `mapstructure:"sample_rate"`
}

// DefaultTracesFilePath returns the default path for trace file export.
// Returns ~/.config/arbor/traces/traces.jsonl or empty string if home dir unavailable.
func DefaultTracesFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "arbor", "traces", "traces.jsonl")
}

// ValidateUI checks UI configuration for errors.
// Returns nil if the configuration is valid (empty values use defaults).
func ValidateUI(ui UIConfig) error {
	switch ui.MarkdownStyle {
	case "", "dark", "light":
		return nil
	default:
		return fmt.Errorf("ui.markdown_style must be \"dark\" or \"light\", got %q", ui.MarkdownStyle)
	}
}

// ValidateCache checks cache configuration for errors.
func ValidateCache(cache CacheConfig) error {
	if cache.TTL < 0 {
		return fmt.Errorf("cache.ttl must not be negative, got %v", cache.TTL)
	}
	return nil
}

// ValidateHistory checks history configuration for errors.
func ValidateHistory(history HistoryConfig) error {
	if history.Keep < 0 {
		return fmt.Errorf("history.keep must not be negative, got %d", history.Keep)
	}
	return nil
}

// ValidateTracing checks tracing configuration for errors.
// Returns nil if the configuration is valid (empty values use defaults).
func ValidateTracing(tracing TracingConfig) error {
	// Validate SampleRate is in range [0.0, 1.0]
	if tracing.SampleRate < 0.0 || tracing.SampleRate > 1.0 {
		return fmt.Errorf("tracing.sample_rate must be between 0.0 and 1.0, got %v", tracing.SampleRate)
	}

	// Validate Exporter is a valid option
	if tracing.Exporter != "" {
		switch tracing.Exporter {
		case "none", "file", "stdout", "otlp":
			// Valid
		default:
			return fmt.Errorf("tracing.exporter must be \"none\", \"file\", \"stdout\", or \"otlp\", got %q", tracing.Exporter)
		}
	}

	// Only validate path requirements when tracing is enabled
	if tracing.Enabled {
		// FilePath is required when Exporter is "file"
		if tracing.Exporter == "file" && tracing.FilePath == "" {
			return fmt.Errorf("tracing.file_path is required when exporter is \"file\"")
		}

		// OTLPEndpoint is required when Exporter is "otlp"
		if tracing.Exporter == "otlp" && tracing.OTLPEndpoint == "" {
			return fmt.Errorf("tracing.otlp_endpoint is required when exporter is \"otlp\"")
		}
	}

	return nil
}

// Validate checks the whole configuration for errors.
func Validate(cfg Config) error {
	if err := ValidateUI(cfg.UI); err != nil {
		return err
	}
	if err := ValidateKeybindings(cfg.Keybindings); err != nil {
		return err
	}
	if err := ValidateCache(cfg.Cache); err != nil {
		return err
	}
	if err := ValidateHistory(cfg.History); err != nil {
		return err
	}
	return ValidateTracing(cfg.Tracing)
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		AutoRefresh: true,
		UI: UIConfig{
			ShowStatusBar: true,
			MarkdownStyle: "dark",
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     5 * time.Minute,
		},
		History: HistoryConfig{
			Enabled: true,
			Keep:    50,
		},
		Tracing: TracingConfig{
			Enabled:      false,
			Exporter:     "file",
			FilePath:     "", // Derived from config dir at runtime
			OTLPEndpoint: "localhost:4317",
			SampleRate:   1.0,
		},
	}
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# Arbor Configuration

# Path to the manifest directory (default: .arbor/manifests)
# manifest_dir: /path/to/manifests

# Auto-refresh the browse view when manifests change on disk
auto_refresh: true

# UI settings
ui:
  show_status_bar: true   # Show status bar at bottom of browse view
  # markdown_style: dark  # Markdown rendering style: "dark" (default) or "light"

# Theme customization
# theme:
#   preset: catppuccin-mocha  # Built-in theme: default, catppuccin-mocha,
#                             # catppuccin-latte, dracula, nord, high-contrast
#   mode: dark                # Force "light" or "dark" (default: terminal detection)
#   colors:                   # Override individual tokens (quote the dotted keys)
#     "text.primary": "#CDD6F4"
#     "kind.page": "#89B4FA"

# Keybinding overrides for the browse view
# keybindings:
#   toggle_logs: ctrl+l  # Toggle the log overlay
#   refresh: r           # Reload manifests from disk

# Registry lookup cache
cache:
  enabled: true  # Memoize registry lookups during resolution
  ttl: 5m        # How long cached lookups are served

# Resolution history
history:
  enabled: true  # Record resolutions to the history database
  keep: 50       # Runs retained; older runs are pruned (0 = keep all)

# Resolution tracing
# Exports one span per resolved descriptor for end-to-end visibility
# tracing:
#   enabled: false                 # Enable/disable tracing (default: false)
#   exporter: file                 # Export backend: none, file, stdout, otlp (default: file)
#   file_path: ~/.config/arbor/traces/traces.jsonl  # Output file for file exporter
#   otlp_endpoint: localhost:4317  # OTLP collector endpoint (for otlp exporter)
#   sample_rate: 1.0               # Trace sampling rate 0.0-1.0 (default: 1.0)
#
# Example: Enable tracing with file export
# tracing:
#   enabled: true
#   exporter: file
#   file_path: ~/.config/arbor/traces/traces.jsonl
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	// Create parent directory if needed
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	// Write the template
	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
