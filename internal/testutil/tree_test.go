package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMustNode_BuildsTree(t *testing.T) {
	leaf := MustNode(t, "leaf", "leaf-value")
	root := MustNode(t, "root", "root-value", leaf)

	require.Equal(t, "root", root.Key())
	require.Equal(t, 1, root.ChildCount())
	require.Equal(t, 2, root.Size())
}

func TestMustFind_WalksPath(t *testing.T) {
	leaf := MustNode(t, "leaf", "leaf-value")
	mid := MustNode(t, "mid", "mid-value", leaf)
	root := MustNode(t, "root", "root-value", mid)

	found := MustFind(t, root, "mid/leaf")
	require.Equal(t, "leaf-value", found.Value())
}
