package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/arbor/internal/presentation"
)

func init() {
	// Force ANSI color output in tests (lipgloss disables colors when no TTY)
	lipgloss.SetColorProfile(termenv.ANSI256)
}

func ptr(s string) *string {
	return &s
}

func sampleTree() presentation.NodeDTO {
	return presentation.NodeDTO{
		Key:   ptr("site"),
		Kind:  "site",
		Value: "site",
		Children: []presentation.NodeDTO{
			{
				Key:   ptr("home"),
				Kind:  "page",
				Value: "Home",
				Children: []presentation.NodeDTO{
					{Key: ptr("hero"), Kind: "widget", Value: "hero"},
				},
			},
			{Key: ptr("about"), Kind: "page", Value: "About"},
		},
	}
}

// === ParseColorMode ===

func TestParseColorMode_Valid(t *testing.T) {
	for _, s := range []string{"auto", "always", "never"} {
		mode, err := ParseColorMode(s)
		require.NoError(t, err)
		require.Equal(t, ColorMode(s), mode)
	}
}

func TestParseColorMode_Invalid(t *testing.T) {
	_, err := ParseColorMode("sometimes")
	require.Error(t, err)
	require.Contains(t, err.Error(), "sometimes")
}

func TestColorMode_Enabled(t *testing.T) {
	require.True(t, ColorAlways.Enabled())
	require.False(t, ColorNever.Enabled())
}

// === Render ===

func TestRenderer_Render_TreeConnectors(t *testing.T) {
	out := Renderer{}.Render(sampleTree())

	expected := strings.Join([]string{
		"site [site] site",
		"├─ home [page] Home",
		"│  └─ hero [widget] hero",
		"└─ about [page] About",
		"",
	}, "\n")
	require.Equal(t, expected, out)
}

func TestRenderer_Render_NilKeyOmitted(t *testing.T) {
	node := presentation.NodeDTO{
		Key:   ptr("home"),
		Kind:  "page",
		Value: "Home",
		Children: []presentation.NodeDTO{
			{Kind: "widget", Value: "hero"},
		},
	}

	out := Renderer{}.Render(node)

	require.Contains(t, out, "└─ [widget] hero")
}

func TestRenderer_Render_EmptyNode(t *testing.T) {
	out := Renderer{}.Render(presentation.NodeDTO{})

	require.Equal(t, "(empty)\n", out)
}

func TestRenderer_Render_TruncatesLongLines(t *testing.T) {
	node := presentation.NodeDTO{
		Key:   ptr("home"),
		Kind:  "page",
		Value: strings.Repeat("very long title ", 10),
	}

	out := Renderer{Width: 20}.Render(node)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 1)
	require.Contains(t, lines[0], "…")
	require.LessOrEqual(t, lipgloss.Width(lines[0]), 20)
}

func TestRenderer_Render_NoTruncationWithoutWidth(t *testing.T) {
	long := strings.Repeat("very long title ", 10)
	node := presentation.NodeDTO{Key: ptr("home"), Value: long}

	out := Renderer{}.Render(node)

	require.Contains(t, out, long)
	require.NotContains(t, out, "…")
}

func TestRenderer_Render_ColorEmitsANSI(t *testing.T) {
	out := Renderer{Color: true}.Render(sampleTree())

	require.Contains(t, out, "\x1b[")
}

func TestRenderer_Render_PlainHasNoANSI(t *testing.T) {
	out := Renderer{}.Render(sampleTree())

	require.NotContains(t, out, "\x1b[")
}

func TestRenderer_Plain_DisablesColor(t *testing.T) {
	r := Renderer{Width: 80, Color: true}

	p := r.Plain()

	require.False(t, p.Color)
	require.Equal(t, 80, p.Width)
	require.True(t, r.Color, "original renderer should be unchanged")
	require.NotContains(t, p.Render(sampleTree()), "\x1b[")
}

// === Detail ===

func TestRenderer_Detail_HeadlineAndChildren(t *testing.T) {
	out := Renderer{}.Detail(sampleTree())

	require.Contains(t, out, "site [site] site")
	require.Contains(t, out, "children: home, about")
}

func TestRenderer_Detail_BodyRendered(t *testing.T) {
	node := presentation.NodeDTO{
		Key:   ptr("home"),
		Kind:  "page",
		Value: "Home",
		Body:  "# Welcome\n\nHello there.\n",
	}

	out := Renderer{}.Detail(node)

	require.Contains(t, out, "home [page] Home\n")
	require.Contains(t, out, "# Welcome\n\nHello there.\n")
}

func TestRenderer_Detail_BodyWordWrapped(t *testing.T) {
	node := presentation.NodeDTO{
		Key:   ptr("home"),
		Kind:  "page",
		Value: "Home",
		Body:  "one two three four five six seven eight nine ten",
	}

	out := Renderer{Width: 20}.Detail(node)

	for _, line := range strings.Split(out, "\n") {
		require.LessOrEqual(t, lipgloss.Width(line), 20)
	}
}

func TestRenderer_Detail_NoBodyNoTrailingBlank(t *testing.T) {
	node := presentation.NodeDTO{Key: ptr("hero"), Kind: "widget", Value: "hero"}

	out := Renderer{}.Detail(node)

	require.Equal(t, "hero [widget] hero\n", out)
}

func TestRenderer_Detail_NilKeyChildFallsBackToValue(t *testing.T) {
	node := presentation.NodeDTO{
		Key:   ptr("home"),
		Kind:  "page",
		Value: "Home",
		Children: []presentation.NodeDTO{
			{Kind: "widget", Value: "hero"},
		},
	}

	out := Renderer{}.Detail(node)

	require.Contains(t, out, "children: hero")
}
