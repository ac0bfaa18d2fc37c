package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func readYAML(t *testing.T, path string) map[string]any {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(data, &doc))
	return doc
}

func TestSaveManifestDir_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")

	err := SaveManifestDir(configPath, "/srv/manifests")
	require.NoError(t, err)

	doc := readYAML(t, configPath)
	require.Equal(t, "/srv/manifests", doc["manifest_dir"])
}

func TestSaveManifestDir_ReplacesExistingValue(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("manifest_dir: /old\nauto_refresh: true\n"), 0o600))

	err := SaveManifestDir(configPath, "/new")
	require.NoError(t, err)

	doc := readYAML(t, configPath)
	require.Equal(t, "/new", doc["manifest_dir"])
	require.Equal(t, true, doc["auto_refresh"])
}

func TestSaveManifestDir_PreservesComments(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	original := `# Arbor Configuration
# watch this comment survive

auto_refresh: true

ui:
  show_status_bar: true # trailing comment
`
	require.NoError(t, os.WriteFile(configPath, []byte(original), 0o600))

	err := SaveManifestDir(configPath, "/srv/manifests")
	require.NoError(t, err)

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	content := string(data)

	require.Contains(t, content, "# watch this comment survive")
	require.Contains(t, content, "# trailing comment")
	require.Contains(t, content, "manifest_dir: /srv/manifests")
}

func TestSaveAutoRefresh_AppendsWhenMissing(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("manifest_dir: /srv/manifests\n"), 0o600))

	err := SaveAutoRefresh(configPath, false)
	require.NoError(t, err)

	doc := readYAML(t, configPath)
	require.Equal(t, false, doc["auto_refresh"])
	require.Equal(t, "/srv/manifests", doc["manifest_dir"])
}

func TestSaveManifestDir_InvalidYAMLFails(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("a: [unclosed\n"), 0o600))

	err := SaveManifestDir(configPath, "/srv/manifests")
	require.Error(t, err)
	require.Contains(t, err.Error(), "parsing config")
}

func TestSaveManifestDir_RoundTripThroughTemplate(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, WriteDefaultConfig(configPath))

	err := SaveManifestDir(configPath, "/srv/manifests")
	require.NoError(t, err)

	doc := readYAML(t, configPath)
	require.Equal(t, "/srv/manifests", doc["manifest_dir"])
	require.Equal(t, true, doc["auto_refresh"])

	// Template comments survive the surgical update
	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "# Registry lookup cache")
}
