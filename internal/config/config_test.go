package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	require.True(t, cfg.AutoRefresh)
	require.True(t, cfg.UI.ShowStatusBar)
	require.Equal(t, "dark", cfg.UI.MarkdownStyle)
	require.True(t, cfg.Cache.Enabled)
	require.Equal(t, 5*time.Minute, cfg.Cache.TTL)
	require.True(t, cfg.History.Enabled)
	require.Equal(t, 50, cfg.History.Keep)
	require.False(t, cfg.Tracing.Enabled)
	require.Equal(t, "file", cfg.Tracing.Exporter)
	require.Equal(t, 1.0, cfg.Tracing.SampleRate)
}

func TestDefaults_PassValidation(t *testing.T) {
	require.NoError(t, Validate(Defaults()))
}

// === UI ===

func TestValidateUI(t *testing.T) {
	require.NoError(t, ValidateUI(UIConfig{MarkdownStyle: ""}))
	require.NoError(t, ValidateUI(UIConfig{MarkdownStyle: "dark"}))
	require.NoError(t, ValidateUI(UIConfig{MarkdownStyle: "light"}))
}

func TestValidateUI_InvalidStyle(t *testing.T) {
	err := ValidateUI(UIConfig{MarkdownStyle: "sepia"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "markdown_style")
}

// === Cache ===

func TestValidateCache(t *testing.T) {
	require.NoError(t, ValidateCache(CacheConfig{Enabled: true, TTL: time.Minute}))
	require.NoError(t, ValidateCache(CacheConfig{}))
}

func TestValidateCache_NegativeTTL(t *testing.T) {
	err := ValidateCache(CacheConfig{TTL: -time.Second})
	require.Error(t, err)
	require.Contains(t, err.Error(), "cache.ttl")
}

// === History ===

func TestValidateHistory_NegativeKeep(t *testing.T) {
	err := ValidateHistory(HistoryConfig{Keep: -1})
	require.Error(t, err)
	require.Contains(t, err.Error(), "history.keep")
}

// === Tracing ===

func TestValidateTracing_Defaults(t *testing.T) {
	require.NoError(t, ValidateTracing(Defaults().Tracing))
}

func TestValidateTracing_SampleRateOutOfRange(t *testing.T) {
	err := ValidateTracing(TracingConfig{SampleRate: 1.5})
	require.Error(t, err)
	require.Contains(t, err.Error(), "sample_rate")

	err = ValidateTracing(TracingConfig{SampleRate: -0.1})
	require.Error(t, err)
}

func TestValidateTracing_InvalidExporter(t *testing.T) {
	err := ValidateTracing(TracingConfig{Exporter: "jaeger", SampleRate: 1.0})
	require.Error(t, err)
	require.Contains(t, err.Error(), "exporter")
}

func TestValidateTracing_FileExporterRequiresPathWhenEnabled(t *testing.T) {
	err := ValidateTracing(TracingConfig{Enabled: true, Exporter: "file", SampleRate: 1.0})
	require.Error(t, err)
	require.Contains(t, err.Error(), "file_path")
}

func TestValidateTracing_OTLPExporterRequiresEndpointWhenEnabled(t *testing.T) {
	err := ValidateTracing(TracingConfig{Enabled: true, Exporter: "otlp", SampleRate: 1.0})
	require.Error(t, err)
	require.Contains(t, err.Error(), "otlp_endpoint")
}

func TestValidateTracing_DisabledSkipsPathChecks(t *testing.T) {
	err := ValidateTracing(TracingConfig{Enabled: false, Exporter: "file", SampleRate: 1.0})
	require.NoError(t, err)
}

// === Template ===

func TestDefaultConfigTemplate_IsValidYAML(t *testing.T) {
	var doc map[string]any
	err := yaml.Unmarshal([]byte(DefaultConfigTemplate()), &doc)
	require.NoError(t, err)

	require.Contains(t, doc, "auto_refresh")
	require.Contains(t, doc, "ui")
	require.Contains(t, doc, "cache")
	require.Contains(t, doc, "history")
}

func TestWriteDefaultConfig(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, ".arbor", "config.yaml")

	err := WriteDefaultConfig(configPath)
	require.NoError(t, err)

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "# Arbor Configuration")
}
