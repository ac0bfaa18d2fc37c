// Package markdown renders manifest body text as styled terminal output.
package markdown

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// noMarginStyle is a JSON style that removes document margins so rendered
// bodies sit flush inside the detail pane border.
const noMarginStyle = `{
	"document": {
		"margin": 0,
		"block_prefix": "",
		"block_suffix": ""
	}
}`

// PlainStyle renders without any ANSI styling. Used when color output
// is disabled.
const PlainStyle = "notty"

// Renderer wraps glamour with arbor-specific configuration.
type Renderer struct {
	renderer *glamour.TermRenderer
	width    int
}

// New creates a markdown renderer with the given width and style.
// style should be "dark", "light", or PlainStyle. Defaults to "dark" if empty.
// Use a fixed style instead of WithAutoStyle() to avoid terminal OSC queries.
// WithAutoStyle() creates a new lipgloss renderer that detects light/dark
// background by querying the terminal, which causes escape sequence responses
// to leak into the input stream.
func New(width int, style string) (*Renderer, error) {
	if style == "" {
		style = "dark"
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithStylesFromJSONBytes([]byte(noMarginStyle)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	return &Renderer{renderer: r, width: width}, nil
}

// Width returns the configured word wrap width.
func (r *Renderer) Width() int {
	return r.width
}

// Render transforms markdown to styled terminal output.
func (r *Renderer) Render(markdown string) (string, error) {
	return r.renderer.Render(markdown)
}

// RenderBody renders a manifest body and trims the surrounding blank
// lines glamour adds, so callers can place the result exactly.
func (r *Renderer) RenderBody(body string) (string, error) {
	out, err := r.renderer.Render(body)
	if err != nil {
		return "", err
	}
	return strings.Trim(out, "\n"), nil
}
