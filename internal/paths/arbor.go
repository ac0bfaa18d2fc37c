// Package paths provides path resolution utilities.
package paths

import (
	"os"
	"path/filepath"
	"strings"
)

// ResolveArborDir resolves the .arbor directory path from user input.
// It normalizes the input (accepting either project dir or .arbor dir),
// appends .arbor if needed, and follows redirect files for git worktrees.
//
// Input normalization:
//   - "/path/to/project" -> "/path/to/project/.arbor"
//   - "/path/to/project/.arbor" -> "/path/to/project/.arbor"
//   - "/path/to/arbor-data" (containing config.yaml or manifests/) -> "/path/to/arbor-data"
//   - "" -> "./.arbor"
//
// Redirect handling:
//   - If .arbor/redirect exists, follows it to the actual .arbor location
//   - This supports git worktrees where .arbor contains a redirect to the main worktree
func ResolveArborDir(path string) string {
	if path == "" {
		path = "."
	}
	path = filepath.Clean(path)

	// If path already ends with .arbor, use it directly
	if filepath.Base(path) == ".arbor" {
		return followRedirect(path)
	}

	// If path contains arbor data directly, use it as the arbor directory.
	// This supports ARBOR_DIR pointing directly to a data directory.
	if isArborDataDir(path) {
		return followRedirect(path)
	}

	// Otherwise, append .arbor to the path
	arborDir := filepath.Join(path, ".arbor")

	// Follow redirect if present (for git worktrees)
	return followRedirect(arborDir)
}

// isArborDataDir reports whether path itself holds arbor data.
func isArborDataDir(path string) bool {
	if _, err := os.Stat(filepath.Join(path, "config.yaml")); err == nil {
		return true
	}
	if info, err := os.Stat(filepath.Join(path, "manifests")); err == nil && info.IsDir() {
		return true
	}
	return false
}

// followRedirect checks for a redirect file and follows it if present.
// Redirect files are used by git worktrees to point to the main worktree's .arbor.
func followRedirect(arborDir string) string {
	redirectPath := filepath.Join(arborDir, "redirect")

	content, err := os.ReadFile(redirectPath) //nolint:gosec // redirect path is within .arbor dir
	if err != nil {
		return arborDir
	}

	redirectTarget := strings.TrimSpace(string(content))
	if redirectTarget == "" {
		return arborDir
	}

	resolvedPath := filepath.Join(arborDir, redirectTarget)
	return filepath.Clean(resolvedPath)
}

// ConfigPath returns the config file path within an arbor directory.
func ConfigPath(arborDir string) string {
	return filepath.Join(arborDir, "config.yaml")
}

// ManifestDir returns the manifest directory within an arbor directory.
func ManifestDir(arborDir string) string {
	return filepath.Join(arborDir, "manifests")
}

// DBPath returns the history database path within an arbor directory.
func DBPath(arborDir string) string {
	return filepath.Join(arborDir, "history.db")
}

// LogPath returns the debug log path within an arbor directory.
func LogPath(arborDir string) string {
	return filepath.Join(arborDir, "debug.log")
}
