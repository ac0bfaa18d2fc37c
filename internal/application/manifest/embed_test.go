package manifest

import (
	"context"
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStarterFS_FilesSitAtTopLevel(t *testing.T) {
	fsys := StarterFS()

	var names []string
	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !d.IsDir() && strings.HasSuffix(path, ".yaml") {
			names = append(names, path)
		}
		return nil
	})
	require.NoError(t, err)
	require.Contains(t, names, "site.yaml")
	require.Contains(t, names, "extras.yaml")
}

func TestStarterFS_LoadsAndBuilds(t *testing.T) {
	set, err := Load(StarterFS())
	require.NoError(t, err, "the shipped starter must always load")
	require.Equal(t, 7, set.Len())

	_, _, err = set.Build()
	require.NoError(t, err)
}

func TestStarterFS_RootResolves(t *testing.T) {
	svc, err := NewService(StarterFS())
	require.NoError(t, err)

	node, err := svc.Resolve(context.Background(), "root")
	require.NoError(t, err)

	require.Equal(t, "site", node.Key())
	require.Equal(t, 8, node.Size(), "starter tree shape is part of the init contract")
}
