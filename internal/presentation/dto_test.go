package presentation

import (
	"encoding/json"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/arbor/internal/application/manifest"
	"github.com/zjrosen/arbor/internal/infrastructure/sqlite"
	"github.com/zjrosen/arbor/internal/testutil"
)

// === FromNode ===

func TestFromNode_BuildsDTOTree(t *testing.T) {
	widget := testutil.MustNode(t, nil, manifest.Widget{Name: "status", Title: "Status"})
	home := testutil.MustNode(t, "home", manifest.Page{Name: "home", Title: "Home"}, widget)
	root := testutil.MustNode(t, "site", manifest.Group{Name: "root", Title: "Demo Site"}, home)

	dto := FromNode(root)

	require.NotNil(t, dto.Key)
	require.Equal(t, "site", *dto.Key)
	require.Equal(t, "group", dto.Kind)
	require.Equal(t, "Demo Site", dto.Value)
	require.Len(t, dto.Children, 1)

	homeDTO := dto.Children[0]
	require.NotNil(t, homeDTO.Key)
	require.Equal(t, "home", *homeDTO.Key)
	require.Equal(t, "page", homeDTO.Kind)
	require.Len(t, homeDTO.Children, 1)

	widgetDTO := homeDTO.Children[0]
	require.Nil(t, widgetDTO.Key, "key-less nodes keep a nil key")
	require.Equal(t, "widget", widgetDTO.Kind)
	require.Equal(t, "Status", widgetDTO.Value)
}

func TestFromNode_NonCatalogValue(t *testing.T) {
	node := testutil.MustNode(t, "raw", "plain-value")

	dto := FromNode(node)

	require.Empty(t, dto.Kind, "non-catalog values have no kind")
	require.Equal(t, "plain-value", dto.Value)
}

func TestFromNode_BodyKindsCarryTheirBody(t *testing.T) {
	page := testutil.MustNode(t, "home", manifest.Page{Name: "home", Body: "# Welcome\n"})
	fragment := testutil.MustNode(t, nil, manifest.Fragment{Name: "welcome", Body: "hello"})
	widget := testutil.MustNode(t, nil, manifest.Widget{Name: "status"})

	require.Equal(t, "# Welcome\n", FromNode(page).Body)
	require.Equal(t, "hello", FromNode(fragment).Body)
	require.Empty(t, FromNode(widget).Body, "bodyless kinds stay empty")
}

func TestFromNode_KeylessNodeSerializesAsNull(t *testing.T) {
	node := testutil.MustNode(t, nil, manifest.Widget{Name: "status"})

	data, err := json.Marshal(FromNode(node))
	require.NoError(t, err)
	require.Contains(t, string(data), `"key":null`)
}

// === ValueSummary ===

func TestValueSummary(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{
			name:  "title wins over name",
			value: manifest.Group{Name: "root", Title: "Demo Site"},
			want:  "Demo Site",
		},
		{
			name:  "name fills in for a missing title",
			value: manifest.Page{Name: "home"},
			want:  "home",
		},
		{
			name:  "badge",
			value: manifest.Badge{Name: "beta", Title: "Beta"},
			want:  "Beta",
		},
		{
			name:  "fragment",
			value: manifest.Fragment{Name: "welcome"},
			want:  "welcome",
		},
		{
			name:  "non-catalog value",
			value: 42,
			want:  "42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ValueSummary(tt.value))
		})
	}
}

// === FromManifestEntry ===

func TestFromManifestEntry_SelfKeyingKindUsesName(t *testing.T) {
	entry := manifest.Entry{Name: "home", Kind: manifest.KindPage, Title: "Home"}

	dto := FromManifestEntry(entry, manifest.KindSpec{})

	require.Equal(t, "home", dto.Name)
	require.Equal(t, "page", dto.Kind)
	require.Equal(t, "Home", dto.Title)
	require.Equal(t, "home", dto.Key, "pages key themselves by name")
}

func TestFromManifestEntry_LiteralKindSpecKey(t *testing.T) {
	entry := manifest.Entry{Name: "root", Kind: manifest.KindGroup}
	spec := manifest.KindSpec{Key: "site", Children: []string{"home", "about"}}

	dto := FromManifestEntry(entry, spec)

	require.Equal(t, "site", dto.Key)
	require.Equal(t, []string{"home", "about"}, dto.Children)
}

func TestFromManifestEntry_ChildKindsRenderAsReferences(t *testing.T) {
	entry := manifest.Entry{Name: "home", Kind: manifest.KindPage}
	spec := manifest.KindSpec{ChildKinds: []manifest.Kind{manifest.KindWidget, manifest.KindBadge}}

	dto := FromManifestEntry(entry, spec)

	require.Equal(t, []string{"kind:widget", "kind:badge"}, dto.Children)
}

func TestFromManifestEntry_UnresolvableKeyStaysEmpty(t *testing.T) {
	// A kind-resolved key is only known after resolution
	entry := manifest.Entry{Name: "status", Kind: manifest.KindWidget}
	spec := manifest.KindSpec{KeyKind: manifest.KindBadge}

	dto := FromManifestEntry(entry, spec)

	require.Empty(t, dto.Key)
}

// === FromManifestSet ===

func TestFromManifestSet_KeepsEntryOrder(t *testing.T) {
	fsys := fstest.MapFS{
		"site.yaml": &fstest.MapFile{Data: []byte(`
entries:
  - name: root
    kind: group
    title: Demo Site
  - name: home
    title: Home
kinds:
  group:
    key: site
    children: [home]
`)},
	}
	set, err := manifest.Load(fsys)
	require.NoError(t, err)

	dtos := FromManifestSet(set)

	require.Len(t, dtos, 2)
	require.Equal(t, "root", dtos[0].Name)
	require.Equal(t, "site", dtos[0].Key)
	require.Equal(t, []string{"home"}, dtos[0].Children)
	require.Equal(t, "home", dtos[1].Name)
	require.Equal(t, "page", dtos[1].Kind, "missing kind defaults to page")
}

// === FromRun ===

func TestFromRun_MapsAllFields(t *testing.T) {
	at := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	errMsg := "no binding found"
	traceID := "4bf92f3577b34da6a3ce929d0e0e4736"

	run := &sqlite.Run{
		ID:         "run-1",
		Descriptor: "kind:page",
		Status:     sqlite.RunStatusError,
		Error:      &errMsg,
		TraceID:    &traceID,
		NodeCount:  3,
		DurationMS: 12,
		Snapshot:   "home\n",
		CreatedAt:  at,
	}

	dto := FromRun(run)

	require.Equal(t, "run-1", dto.ID)
	require.Equal(t, "kind:page", dto.Descriptor)
	require.Equal(t, "error", dto.Status)
	require.Equal(t, "no binding found", dto.Error)
	require.Equal(t, traceID, dto.TraceID)
	require.Equal(t, 3, dto.NodeCount)
	require.Equal(t, int64(12), dto.DurationMS)
	require.Equal(t, "home\n", dto.Snapshot)
	require.Equal(t, "2026-03-14T09:26:53Z", dto.CreatedAt)
}

func TestFromRun_NilPointersStayEmpty(t *testing.T) {
	run := sqlite.NewRun("root")

	dto := FromRun(run)

	require.Empty(t, dto.Error)
	require.Empty(t, dto.TraceID)

	data, err := json.Marshal(dto)
	require.NoError(t, err)
	require.NotContains(t, string(data), `"error"`)
	require.NotContains(t, string(data), `"trace_id"`)
}

func TestFromRuns_MapsSlice(t *testing.T) {
	runs := []*sqlite.Run{
		sqlite.NewRun("root"),
		sqlite.NewRun("home"),
	}

	dtos := FromRuns(runs)

	require.Len(t, dtos, 2)
	require.Equal(t, "root", dtos[0].Descriptor)
	require.Equal(t, "home", dtos[1].Descriptor)
}
