// Package render turns resolved trees into terminal output: a
// connector-prefixed tree view, a detail card, and run diffs.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/termenv"

	"github.com/zjrosen/arbor/internal/presentation"
	"github.com/zjrosen/arbor/internal/ui/styles"
)

// ColorMode controls whether output carries ANSI styling.
type ColorMode string

// Color modes accepted by the --color flag.
const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode parses a --color flag value.
func ParseColorMode(s string) (ColorMode, error) {
	switch ColorMode(s) {
	case ColorAuto, ColorAlways, ColorNever:
		return ColorMode(s), nil
	default:
		return "", fmt.Errorf("invalid color mode %q (want auto, always, or never)", s)
	}
}

// Enabled reports whether this mode should emit ANSI styling, probing the
// terminal for auto.
func (m ColorMode) Enabled() bool {
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return termenv.ColorProfile() != termenv.Ascii
	}
}

// Tree connector glyphs, three cells wide so nested levels line up.
const (
	connectorBranch = "├─ "
	connectorLast   = "└─ "
	connectorGuide  = "│  "
	connectorBlank  = "   "
)

var (
	keyStyle       = lipgloss.NewStyle().Foreground(styles.TextPrimaryColor).Bold(true)
	kindStyle      = lipgloss.NewStyle().Foreground(styles.TextMutedColor)
	valueStyle     = lipgloss.NewStyle().Foreground(styles.TextDescriptionColor)
	connectorStyle = lipgloss.NewStyle().Foreground(styles.BorderDefaultColor)
)

// Renderer draws resolved trees for the terminal. Width 0 means no limit.
// The zero value renders unstyled and unbounded.
type Renderer struct {
	Width int
	Color bool
}

// Plain returns a copy of the renderer with styling off, for snapshots that
// must stay free of ANSI sequences.
func (r Renderer) Plain() Renderer {
	r.Color = false
	return r
}

// Render draws the tree with box-drawing connectors, one node per line.
// Lines longer than Width are truncated with an ellipsis.
func (r Renderer) Render(node presentation.NodeDTO) string {
	var sb strings.Builder
	r.renderNode(&sb, node, "", "")
	return sb.String()
}

func (r Renderer) renderNode(sb *strings.Builder, node presentation.NodeDTO, connector, childPrefix string) {
	line := connector + r.nodeLine(node)
	if r.Width > 0 && lipgloss.Width(line) > r.Width {
		line = ansi.Truncate(line, r.Width, "…")
	}
	sb.WriteString(line)
	sb.WriteString("\n")

	for i, child := range node.Children {
		if i == len(node.Children)-1 {
			r.renderNode(sb, child, childPrefix+r.style(connectorStyle, connectorLast), childPrefix+r.style(connectorStyle, connectorBlank))
		} else {
			r.renderNode(sb, child, childPrefix+r.style(connectorStyle, connectorBranch), childPrefix+r.style(connectorStyle, connectorGuide))
		}
	}
}

// nodeLine renders one node as "key [kind] value", dropping the parts a node
// does not have.
func (r Renderer) nodeLine(node presentation.NodeDTO) string {
	var parts []string
	if node.Key != nil {
		parts = append(parts, r.style(keyStyle, *node.Key))
	}
	if node.Kind != "" {
		parts = append(parts, r.style(kindStyle, "["+node.Kind+"]"))
	}
	if node.Value != "" {
		parts = append(parts, r.style(valueStyle, node.Value))
	}
	if len(parts) == 0 {
		return r.style(valueStyle, "(empty)")
	}
	return strings.Join(parts, " ")
}

// Detail draws a single node as a card: headline, child keys, and the
// word-wrapped body when the node has one.
func (r Renderer) Detail(node presentation.NodeDTO) string {
	var sb strings.Builder

	sb.WriteString(r.nodeLine(node))
	sb.WriteString("\n")

	if len(node.Children) > 0 {
		names := make([]string, len(node.Children))
		for i, child := range node.Children {
			if child.Key != nil {
				names[i] = *child.Key
			} else {
				names[i] = child.Value
			}
		}
		sb.WriteString(r.style(kindStyle, "children: "+strings.Join(names, ", ")))
		sb.WriteString("\n")
	}

	if node.Body != "" {
		body := strings.TrimRight(node.Body, "\n")
		if r.Width > 0 {
			body = wordwrap.String(body, r.Width)
		}
		sb.WriteString("\n")
		sb.WriteString(body)
		sb.WriteString("\n")
	}

	return sb.String()
}

// style applies st when color is on and leaves s alone otherwise.
func (r Renderer) style(st lipgloss.Style, s string) string {
	if !r.Color {
		return s
	}
	return st.Render(s)
}
