package manifest

import (
	"context"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/arbor/internal/domain/resolve"
)

func loadSet(t *testing.T, files map[string]string) *Set {
	t.Helper()
	set, err := Load(mapFS(files))
	require.NoError(t, err)
	return set
}

func TestSet_Build_RegistersEntries(t *testing.T) {
	set := loadSet(t, map[string]string{
		"site.yaml": `
entries:
  - name: root
    kind: group
    title: Root
  - name: home
    kind: page
    title: Home
    body: "# hi"
`,
	})

	reg, _, err := set.Build()
	require.NoError(t, err)
	require.Equal(t, 2, reg.Len())

	value, err := reg.ByName(context.Background(), "home")
	require.NoError(t, err)
	require.Equal(t, Page{Name: "home", Title: "Home", Body: "# hi"}, value)

	value, err = reg.ByName(context.Background(), "root")
	require.NoError(t, err)
	require.Equal(t, Group{Name: "root", Title: "Root"}, value)
}

func TestSet_Build_TranslatesKindSpecs(t *testing.T) {
	set := loadSet(t, map[string]string{
		"site.yaml": `
entries:
  - name: root
    kind: group
  - name: home
  - name: status
    kind: widget
  - name: beta
    kind: badge
kinds:
  group:
    key: site
    children: [home]
  page:
    childKinds: [widget, badge]
  widget:
    keyKind: badge
`,
	})

	_, meta, err := set.Build()
	require.NoError(t, err)
	require.Len(t, meta, 3)

	groupMeta, ok := meta.MetadataFor(reflect.TypeOf(Group{}))
	require.True(t, ok)
	require.Equal(t, "site", groupMeta.Key)
	require.Equal(t, []string{"home"}, groupMeta.Children)
	require.Empty(t, groupMeta.ChildTypes)

	pageMeta, ok := meta.MetadataFor(reflect.TypeOf(Page{}))
	require.True(t, ok)
	require.Equal(t, []reflect.Type{
		reflect.TypeOf(Widget{}),
		reflect.TypeOf(Badge{}),
	}, pageMeta.ChildTypes)

	widgetMeta, ok := meta.MetadataFor(reflect.TypeOf(Widget{}))
	require.True(t, ok)
	require.Equal(t, reflect.TypeOf(Badge{}), widgetMeta.KeyType)

	_, ok = meta.MetadataFor(reflect.TypeOf(Action{}))
	require.False(t, ok, "undeclared kinds carry no metadata")
}

func TestSet_Build_MetadataDrivesResolution(t *testing.T) {
	set := loadSet(t, map[string]string{
		"site.yaml": `
entries:
  - name: root
    kind: group
  - name: home
    title: Home
kinds:
  group:
    key: site
    children: [home]
`,
	})

	reg, meta, err := set.Build()
	require.NoError(t, err)

	r, err := resolve.New(reg, meta)
	require.NoError(t, err)

	node, err := r.Resolve(context.Background(), resolve.ByName("root"))
	require.NoError(t, err)
	require.Equal(t, "site", node.Key())
	require.Equal(t, 1, node.ChildCount())

	home, ok := node.FindChild("home")
	require.True(t, ok, "pages key themselves by name")
	require.Equal(t, Page{Name: "home", Title: "Home"}, home.Value())
}

func TestSet_EntryLookup(t *testing.T) {
	set := loadSet(t, map[string]string{
		"site.yaml": `
entries:
  - name: home
    title: Home
`,
	})

	entry, ok := set.Entry("home")
	require.True(t, ok)
	require.Equal(t, "Home", entry.Title)

	_, ok = set.Entry("missing")
	require.False(t, ok)
}

func TestSet_EntriesReturnsCopy(t *testing.T) {
	set := loadSet(t, map[string]string{
		"site.yaml": `
entries:
  - name: home
`,
	})

	entries := set.Entries()
	entries[0].Name = "mutated"

	again := set.Entries()
	require.Equal(t, "home", again[0].Name, "callers must not reach the backing slice")
}
