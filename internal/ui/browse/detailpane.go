package browse

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/muesli/reflow/wordwrap"

	"github.com/zjrosen/arbor/internal/presentation"
	"github.com/zjrosen/arbor/internal/ui/markdown"
	"github.com/zjrosen/arbor/internal/ui/styles"
)

// detailPane shows the selected node: a headline, its metadata, and the
// markdown body when the node carries one. Long bodies scroll in a viewport.
type detailPane struct {
	viewport   viewport.Model
	mdRenderer *markdown.Renderer
	mdStyle    string
	node       *presentation.NodeDTO
	path       string
	width      int
	height     int
	ready      bool
}

func newDetailPane(mdStyle string) detailPane {
	if mdStyle == "" {
		mdStyle = "dark"
	}
	return detailPane{mdStyle: mdStyle}
}

// setSize sets the pane content dimensions and re-renders at the new width.
func (p *detailPane) setSize(width, height int) {
	p.width = width
	p.height = height

	if !p.ready {
		p.viewport = viewport.New(width, height)
		p.ready = true
	} else {
		p.viewport.Width = width
		p.viewport.Height = height
	}
	p.refresh()
}

// setNode swaps in a newly selected node and scrolls back to the top.
func (p *detailPane) setNode(node *presentation.NodeDTO, path string) {
	p.node = node
	p.path = path
	p.refresh()
	if p.ready {
		p.viewport.GotoTop()
	}
}

// refresh rebuilds the viewport content for the current node and width.
func (p *detailPane) refresh() {
	if !p.ready {
		return
	}
	p.viewport.SetContent(p.content())
}

// content renders the detail card for the current node.
func (p *detailPane) content() string {
	if p.node == nil {
		return emptyStyle.Render("Nothing selected")
	}

	// Recreate the markdown renderer when the width changes
	if p.mdRenderer == nil || p.mdRenderer.Width() != p.width {
		if r, err := markdown.New(p.width, p.mdStyle); err == nil {
			p.mdRenderer = r
		}
	}

	var sb strings.Builder

	headline := p.node.Value
	if headline == "" && p.node.Key != nil {
		headline = *p.node.Key
	}
	sb.WriteString(detailTitleStyle.Render(headline))
	sb.WriteString("\n")

	meta := p.metaLine()
	if p.width > 0 {
		meta = wordwrap.String(meta, p.width)
	}
	sb.WriteString(meta)
	sb.WriteString("\n")

	if p.node.Body == "" {
		sb.WriteString("\n")
		sb.WriteString(emptyStyle.Render("No body for this node"))
		return sb.String()
	}

	sb.WriteString("\n")
	sb.WriteString(p.renderBody(p.node.Body))
	return sb.String()
}

// metaLine renders "kind · path · N children", dropping absent parts.
func (p *detailPane) metaLine() string {
	var parts []string
	if p.node.Kind != "" {
		parts = append(parts, styles.KindStyle(p.node.Kind).Render(p.node.Kind))
	}
	if p.path != "" {
		parts = append(parts, detailMetaStyle.Render(p.path))
	}
	if n := len(p.node.Children); n == 1 {
		parts = append(parts, detailMetaStyle.Render("1 child"))
	} else if n > 1 {
		parts = append(parts, detailMetaStyle.Render(fmt.Sprintf("%d children", n)))
	}
	return strings.Join(parts, detailMetaStyle.Render(" · "))
}

// renderBody renders the markdown body, falling back to word-wrapped plain
// text when glamour is unavailable.
func (p *detailPane) renderBody(body string) string {
	if p.mdRenderer != nil {
		if rendered, err := p.mdRenderer.RenderBody(body); err == nil {
			return rendered
		}
	}
	body = strings.TrimRight(body, "\n")
	if p.width > 0 {
		body = wordwrap.String(body, p.width)
	}
	return body
}

// scrollDown scrolls the body down by n lines.
func (p *detailPane) scrollDown(n int) {
	if p.ready {
		p.viewport.ScrollDown(n)
	}
}

// scrollUp scrolls the body up by n lines.
func (p *detailPane) scrollUp(n int) {
	if p.ready {
		p.viewport.ScrollUp(n)
	}
}

// gotoTop jumps to the top of the body.
func (p *detailPane) gotoTop() {
	if p.ready {
		p.viewport.GotoTop()
	}
}

// gotoBottom jumps to the bottom of the body.
func (p *detailPane) gotoBottom() {
	if p.ready {
		p.viewport.GotoBottom()
	}
}

// view renders the scrollable detail content.
func (p *detailPane) view() string {
	if !p.ready {
		return ""
	}
	return p.viewport.View()
}
