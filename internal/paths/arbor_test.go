package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveArborDir_AppendsArborSuffix(t *testing.T) {
	dir := t.TempDir()
	require.Equal(t, filepath.Join(dir, ".arbor"), ResolveArborDir(dir))
}

func TestResolveArborDir_AcceptsArborDirDirectly(t *testing.T) {
	dir := t.TempDir()
	arborDir := filepath.Join(dir, ".arbor")
	require.Equal(t, arborDir, ResolveArborDir(arborDir))
}

func TestResolveArborDir_EmptyDefaultsToCwd(t *testing.T) {
	require.Equal(t, ".arbor", ResolveArborDir(""))
}

func TestResolveArborDir_DetectsDataDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "manifests"), 0o750))

	require.Equal(t, dir, ResolveArborDir(dir))
}

func TestResolveArborDir_FollowsRedirect(t *testing.T) {
	mainDir := t.TempDir()
	mainArbor := filepath.Join(mainDir, "main", ".arbor")
	require.NoError(t, os.MkdirAll(mainArbor, 0o750))

	worktreeArbor := filepath.Join(mainDir, "worktree", ".arbor")
	require.NoError(t, os.MkdirAll(worktreeArbor, 0o750))
	require.NoError(t, os.WriteFile(
		filepath.Join(worktreeArbor, "redirect"),
		[]byte("../../main/.arbor\n"),
		0o600,
	))

	require.Equal(t, mainArbor, ResolveArborDir(worktreeArbor))
}

func TestResolveArborDir_IgnoresEmptyRedirect(t *testing.T) {
	dir := t.TempDir()
	arborDir := filepath.Join(dir, ".arbor")
	require.NoError(t, os.MkdirAll(arborDir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(arborDir, "redirect"), []byte("  \n"), 0o600))

	require.Equal(t, arborDir, ResolveArborDir(arborDir))
}

func TestPathHelpers(t *testing.T) {
	require.Equal(t, filepath.Join(".arbor", "config.yaml"), ConfigPath(".arbor"))
	require.Equal(t, filepath.Join(".arbor", "manifests"), ManifestDir(".arbor"))
	require.Equal(t, filepath.Join(".arbor", "history.db"), DBPath(".arbor"))
	require.Equal(t, filepath.Join(".arbor", "debug.log"), LogPath(".arbor"))
}
