package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/arbor/internal/domain/tree"
)

// MustNode builds a tree node and fails the test on construction errors.
func MustNode(t *testing.T, key, value any, children ...*tree.Node) *tree.Node {
	t.Helper()
	node, err := tree.NewNode(key, value, children...)
	require.NoError(t, err, "Failed to build test node")
	return node
}

// MustFind resolves a path inside a tree and fails the test if it is absent.
func MustFind(t *testing.T, root *tree.Node, path string) *tree.Node {
	t.Helper()
	node, err := tree.Find(root, path)
	require.NoError(t, err, "Failed to find %q in test tree", path)
	return node
}
