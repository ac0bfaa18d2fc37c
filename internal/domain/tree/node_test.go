package tree

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewNode(t *testing.T) {
	node, err := NewNode("home", "home page")

	require.NoError(t, err)
	require.Equal(t, "home", node.Key())
	require.Equal(t, "home page", node.Value())
	require.Empty(t, node.Children())
	require.Equal(t, 0, node.ChildCount())
	require.False(t, node.HasChildren())
}

func TestNewNode_NilKey(t *testing.T) {
	node, err := NewNode(nil, "anonymous")

	require.NoError(t, err)
	require.Nil(t, node.Key())
	require.Equal(t, "anonymous", node.Value())
}

func TestNewNode_NilValue(t *testing.T) {
	node, err := NewNode("key", nil)

	require.ErrorIs(t, err, ErrNilValue)
	require.Nil(t, node)
}

func TestNewNode_NilChild(t *testing.T) {
	child, err := NewNode("a", "a")
	require.NoError(t, err)

	node, err := NewNode("root", "root", child, nil)

	require.ErrorIs(t, err, ErrNilChild)
	require.Contains(t, err.Error(), "index 1")
	require.Nil(t, node)
}

func TestNewNode_ChildrenOrder(t *testing.T) {
	a := mustNode(t, "a", "a")
	b := mustNode(t, "b", "b")
	c := mustNode(t, "c", "c")

	node, err := NewNode("root", "root", a, b, c)

	require.NoError(t, err)
	require.Equal(t, 3, node.ChildCount())
	require.Same(t, a, node.Children()[0])
	require.Same(t, b, node.Children()[1])
	require.Same(t, c, node.Children()[2])
}

func TestNewNode_CopiesCallerSlice(t *testing.T) {
	a := mustNode(t, "a", "a")
	b := mustNode(t, "b", "b")
	kids := []*Node{a, b}

	node, err := NewNode("root", "root", kids...)
	require.NoError(t, err)

	// Mutating the caller's slice must not change the node.
	kids[0] = mustNode(t, "x", "x")
	require.Same(t, a, node.Children()[0])
}

func TestNode_Children_ReturnsCopy(t *testing.T) {
	a := mustNode(t, "a", "a")
	node := mustNode(t, "root", "root", a)

	kids := node.Children()
	kids[0] = nil

	got, ok := node.Child(0)
	require.True(t, ok)
	require.Same(t, a, got)
}

func TestNode_Child_OutOfRange(t *testing.T) {
	node := mustNode(t, "root", "root", mustNode(t, "a", "a"))

	_, ok := node.Child(-1)
	require.False(t, ok)
	_, ok = node.Child(1)
	require.False(t, ok)
}

func TestNode_FindChild(t *testing.T) {
	about := mustNode(t, "about", "about page")
	logout := mustNode(t, "logout", "logout action")
	node := mustNode(t, "home", "home page", about, logout)

	got, ok := node.FindChild("logout")

	require.True(t, ok)
	require.Same(t, logout, got)
}

func TestNode_FindChild_Missing(t *testing.T) {
	node := mustNode(t, "home", "home page", mustNode(t, "about", "about"))

	_, ok := node.FindChild("contact")

	require.False(t, ok)
}

func TestNode_FindChild_SkipsNilKeys(t *testing.T) {
	anon := mustNode(t, nil, "anonymous")
	named := mustNode(t, "named", "named")
	node := mustNode(t, "root", "root", anon, named)

	got, ok := node.FindChild("named")

	require.True(t, ok)
	require.Same(t, named, got)
}

func TestNode_FindChild_FirstMatchWins(t *testing.T) {
	first := mustNode(t, "dup", "first")
	second := mustNode(t, "dup", "second")
	node := mustNode(t, "root", "root", first, second)

	got, ok := node.FindChild("dup")

	require.True(t, ok)
	require.Same(t, first, got)
}

func TestNode_Walk_DepthFirstPreorder(t *testing.T) {
	//      root
	//     /    \
	//    a      b
	//   / \
	//  a1  a2
	a1 := mustNode(t, "a1", "a1")
	a2 := mustNode(t, "a2", "a2")
	a := mustNode(t, "a", "a", a1, a2)
	b := mustNode(t, "b", "b")
	root := mustNode(t, "root", "root", a, b)

	var visited []string
	var depths []int
	root.Walk(func(n *Node, depth int) bool {
		s, _ := KeyString(n.Key())
		visited = append(visited, s)
		depths = append(depths, depth)
		return true
	})

	require.Equal(t, []string{"root", "a", "a1", "a2", "b"}, visited)
	require.Equal(t, []int{0, 1, 2, 2, 1}, depths)
}

func TestNode_Walk_StopsEarly(t *testing.T) {
	root := mustNode(t, "root", "root",
		mustNode(t, "a", "a"),
		mustNode(t, "b", "b"),
	)

	var visited []string
	root.Walk(func(n *Node, depth int) bool {
		s, _ := KeyString(n.Key())
		visited = append(visited, s)
		return s != "a"
	})

	require.Equal(t, []string{"root", "a"}, visited)
}

func TestNode_Size(t *testing.T) {
	leaf1 := mustNode(t, "l1", "l1")
	leaf2 := mustNode(t, "l2", "l2")
	mid := mustNode(t, "mid", "mid", leaf1, leaf2)
	root := mustNode(t, "root", "root", mid)

	require.Equal(t, 1, leaf1.Size())
	require.Equal(t, 3, mid.Size())
	require.Equal(t, 4, root.Size())
}

func TestNode_ConcurrentReads(t *testing.T) {
	root := mustNode(t, "root", "root",
		mustNode(t, "a", "a", mustNode(t, "a1", "a1")),
		mustNode(t, "b", "b"),
	)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = root.Children()
				_, _ = root.FindChild("a")
				_ = root.Size()
				root.Walk(func(*Node, int) bool { return true })
			}
		}()
	}
	wg.Wait()
}

// === KeyString ===

type userID struct{ id int }

func (u userID) String() string { return fmt.Sprintf("user-%d", u.id) }

func TestKeyString(t *testing.T) {
	tests := []struct {
		name string
		key  any
		want string
		ok   bool
	}{
		{name: "string key", key: "home", want: "home", ok: true},
		{name: "stringer key", key: userID{id: 7}, want: "user-7", ok: true},
		{name: "int key", key: 42, want: "42", ok: true},
		{name: "nil key", key: nil, want: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := KeyString(tt.key)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

// mustNode builds a node or fails the test.
func mustNode(t *testing.T, key, value any, children ...*Node) *Node {
	t.Helper()
	n, err := NewNode(key, value, children...)
	require.NoError(t, err)
	return n
}
