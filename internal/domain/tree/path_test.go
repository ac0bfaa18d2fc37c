package tree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want []string
	}{
		{name: "empty is root", path: "", want: nil},
		{name: "slash is root", path: "/", want: nil},
		{name: "single segment", path: "home", want: []string{"home"}},
		{name: "leading slash", path: "/home", want: []string{"home"}},
		{name: "nested", path: "home/about/team", want: []string{"home", "about", "team"}},
		{name: "segments keep spaces", path: "a b/c", want: []string{"a b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParsePath(tt.path)
			require.NoError(t, err)
			require.Equal(t, len(tt.want), p.Depth())
			if tt.want == nil {
				require.True(t, p.IsRoot())
			} else {
				require.Equal(t, tt.want, p.Segments())
			}
		})
	}
}

func TestParsePath_EmptySegments(t *testing.T) {
	for _, path := range []string{"a//b", "a/b/", "//", "/a/"} {
		t.Run(path, func(t *testing.T) {
			_, err := ParsePath(path)
			require.ErrorIs(t, err, ErrEmptyPathSegment)
		})
	}
}

func TestPath_String(t *testing.T) {
	p, err := ParsePath("home/about")
	require.NoError(t, err)
	require.Equal(t, "/home/about", p.String())

	root, err := ParsePath("")
	require.NoError(t, err)
	require.Equal(t, "/", root.String())
}

func TestPath_Segments_ReturnsCopy(t *testing.T) {
	p, err := ParsePath("a/b")
	require.NoError(t, err)

	segs := p.Segments()
	segs[0] = "mutated"

	require.Equal(t, []string{"a", "b"}, p.Segments())
}

// === Find ===

func TestFind_Root(t *testing.T) {
	root := mustNode(t, "root", "root")

	for _, path := range []string{"", "/"} {
		got, err := Find(root, path)
		require.NoError(t, err)
		require.Same(t, root, got)
	}
}

func TestFind_NestedPath(t *testing.T) {
	team := mustNode(t, "team", "team page")
	about := mustNode(t, "about", "about page", team)
	root := mustNode(t, "home", "home page", about)

	got, err := Find(root, "about/team")

	require.NoError(t, err)
	require.Same(t, team, got)
}

func TestFind_MissingSegment(t *testing.T) {
	about := mustNode(t, "about", "about page")
	root := mustNode(t, "home", "home page", about)

	_, err := Find(root, "about/team")

	require.ErrorIs(t, err, ErrPathNotFound)
	var pathErr *PathError
	require.ErrorAs(t, err, &pathErr)
	require.Equal(t, "/about/team", pathErr.Path)
	require.Equal(t, "team", pathErr.Segment)
}

func TestFind_InvalidPath(t *testing.T) {
	root := mustNode(t, "root", "root")

	_, err := Find(root, "a//b")

	require.ErrorIs(t, err, ErrEmptyPathSegment)
}

func TestFind_StringerKeys(t *testing.T) {
	child := mustNode(t, userID{id: 3}, "user page")
	root := mustNode(t, "root", "root", child)

	got, err := Find(root, "user-3")

	require.NoError(t, err)
	require.Same(t, child, got)
}

func TestFindPath_ParsedOnce(t *testing.T) {
	leaf := mustNode(t, "leaf", "leaf")
	root := mustNode(t, "root", "root", leaf)
	p, err := ParsePath("leaf")
	require.NoError(t, err)

	got, err := FindPath(root, p)

	require.NoError(t, err)
	require.Same(t, leaf, got)
}
