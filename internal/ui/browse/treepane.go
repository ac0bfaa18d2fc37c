package browse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/arbor/internal/presentation"
	"github.com/zjrosen/arbor/internal/ui/styles"
)

// Tree connector glyphs, three cells wide so nested levels line up.
const (
	connectorBranch = "├─ "
	connectorLast   = "└─ "
	connectorGuide  = "│  "
	connectorBlank  = "   "
)

// Collapse markers for rows with children.
const (
	markerExpanded  = "▾ "
	markerCollapsed = "▸ "
)

// row is one visible line of the tree pane.
type row struct {
	dto      *presentation.NodeDTO
	path     string // slash path from the root, "/" for the root row
	depth    int
	prefix   string // branch connectors built during flatten
	parent   int    // index of the parent row, -1 for the root
	hasKids  bool
	expanded bool
}

// treePane holds the flattened tree view state: which rows are visible given
// the collapse set, where the cursor is, and the scroll window.
type treePane struct {
	root      *presentation.NodeDTO
	rows      []row
	collapsed map[string]bool // keyed by row path, survives reloads
	cursor    int
	scrollTop int
	width     int
	height    int
}

func newTreePane() treePane {
	return treePane{collapsed: make(map[string]bool)}
}

// setRoot swaps in a freshly resolved tree. Selection is preserved by path
// when the same node still exists, otherwise the cursor moves to the root.
func (p *treePane) setRoot(root presentation.NodeDTO) {
	var prevPath string
	if r, ok := p.selected(); ok {
		prevPath = r.path
	}

	p.root = &root
	p.rebuild()

	p.cursor = 0
	if prevPath != "" {
		p.selectPath(prevPath)
	}
	p.ensureCursorVisible()
}

// setSize sets the pane content dimensions (inside the border).
func (p *treePane) setSize(width, height int) {
	p.width = width
	p.height = height
	p.ensureCursorVisible()
}

// rebuild reflattens the tree into visible rows, honoring the collapse set.
func (p *treePane) rebuild() {
	p.rows = p.rows[:0]
	if p.root == nil {
		return
	}

	var walk func(node *presentation.NodeDTO, path string, depth int, connector, childPrefix string, parent int)
	walk = func(node *presentation.NodeDTO, path string, depth int, connector, childPrefix string, parent int) {
		idx := len(p.rows)
		hasKids := len(node.Children) > 0
		expanded := hasKids && !p.collapsed[path]
		p.rows = append(p.rows, row{
			dto:      node,
			path:     path,
			depth:    depth,
			prefix:   connector,
			parent:   parent,
			hasKids:  hasKids,
			expanded: expanded,
		})
		if !expanded {
			return
		}
		for i := range node.Children {
			child := &node.Children[i]
			cpath := childPath(path, child, i)
			if i == len(node.Children)-1 {
				walk(child, cpath, depth+1, childPrefix+connectorLast, childPrefix+connectorBlank, idx)
			} else {
				walk(child, cpath, depth+1, childPrefix+connectorBranch, childPrefix+connectorGuide, idx)
			}
		}
	}
	walk(p.root, "/", 0, "", "", -1)

	if p.cursor >= len(p.rows) {
		p.cursor = len(p.rows) - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

// childPath extends a parent path with a child's key segment. Key-less nodes
// get a positional marker so sibling paths stay distinct.
func childPath(parent string, child *presentation.NodeDTO, i int) string {
	seg := fmt.Sprintf("#%d", i)
	if child.Key != nil {
		seg = *child.Key
	}
	if parent == "/" {
		return "/" + seg
	}
	return parent + "/" + seg
}

// selected returns the row under the cursor.
func (p *treePane) selected() (row, bool) {
	if p.cursor >= 0 && p.cursor < len(p.rows) {
		return p.rows[p.cursor], true
	}
	return row{}, false
}

// selectPath moves the cursor to the row with the given path.
func (p *treePane) selectPath(path string) bool {
	for i, r := range p.rows {
		if r.path == path {
			p.cursor = i
			return true
		}
	}
	return false
}

// selectRow moves the cursor to an absolute row index (mouse selection).
func (p *treePane) selectRow(i int) bool {
	if i < 0 || i >= len(p.rows) {
		return false
	}
	p.cursor = i
	p.ensureCursorVisible()
	return true
}

// moveCursor moves the cursor by delta, respecting bounds.
func (p *treePane) moveCursor(delta int) {
	newPos := p.cursor + delta
	newPos = max(newPos, 0)
	newPos = min(newPos, len(p.rows)-1)
	newPos = max(newPos, 0) // Handle empty rows case
	p.cursor = newPos
	p.ensureCursorVisible()
}

// gotoTop moves the cursor to the first row.
func (p *treePane) gotoTop() {
	p.cursor = 0
	p.ensureCursorVisible()
}

// gotoBottom moves the cursor to the last row.
func (p *treePane) gotoBottom() {
	p.cursor = max(len(p.rows)-1, 0)
	p.ensureCursorVisible()
}

// toggleAtCursor flips the collapse state of the selected row.
func (p *treePane) toggleAtCursor() {
	r, ok := p.selected()
	if !ok || !r.hasKids {
		return
	}
	if p.collapsed[r.path] {
		delete(p.collapsed, r.path)
	} else {
		p.collapsed[r.path] = true
	}
	p.rebuild()
	p.ensureCursorVisible()
}

// expandAtCursor expands a collapsed row; an already expanded row steps into
// its first child.
func (p *treePane) expandAtCursor() {
	r, ok := p.selected()
	if !ok || !r.hasKids {
		return
	}
	if p.collapsed[r.path] {
		delete(p.collapsed, r.path)
		p.rebuild()
		p.ensureCursorVisible()
		return
	}
	p.moveCursor(1)
}

// collapseAtCursor collapses an expanded row; a leaf or already collapsed
// row jumps to its parent.
func (p *treePane) collapseAtCursor() {
	r, ok := p.selected()
	if !ok {
		return
	}
	if r.hasKids && !p.collapsed[r.path] {
		p.collapsed[r.path] = true
		p.rebuild()
		p.ensureCursorVisible()
		return
	}
	if r.parent >= 0 {
		p.cursor = r.parent
		p.ensureCursorVisible()
	}
}

// ensureCursorVisible adjusts scrollTop to keep the cursor in view.
func (p *treePane) ensureCursorVisible() {
	viewportHeight := p.viewportHeight()
	if viewportHeight <= 0 {
		return
	}

	if p.cursor >= p.scrollTop+viewportHeight {
		p.scrollTop = p.cursor - viewportHeight + 1
	}
	if p.cursor < p.scrollTop {
		p.scrollTop = p.cursor
	}

	maxScroll := max(len(p.rows)-viewportHeight, 0)
	p.scrollTop = min(p.scrollTop, maxScroll)
	p.scrollTop = max(p.scrollTop, 0)
}

// viewportHeight returns the number of visible row lines.
func (p *treePane) viewportHeight() int {
	// Reserve one line for a scroll indicator
	reserved := 1
	if p.height > reserved {
		return p.height - reserved
	}
	return 1
}

// view renders the visible window of rows with scroll indicators.
func (p *treePane) view() string {
	if p.root == nil || len(p.rows) == 0 {
		return emptyStyle.Render("Nothing resolved")
	}

	var sb strings.Builder

	viewportHeight := p.viewportHeight()
	endIdx := min(p.scrollTop+viewportHeight, len(p.rows))

	if p.scrollTop > 0 {
		sb.WriteString(scrollHintStyle.Render(fmt.Sprintf("  ↑ %d more above", p.scrollTop)))
		sb.WriteString("\n")
	}

	for i := p.scrollTop; i < endIdx; i++ {
		line := p.renderRow(p.rows[i], i == p.cursor)
		sb.WriteString(zone.Mark(zoneRowPrefix+strconv.Itoa(i), line))
		sb.WriteString("\n")
	}

	remaining := len(p.rows) - endIdx
	if remaining > 0 {
		sb.WriteString(scrollHintStyle.Render(fmt.Sprintf("  ↓ %d more below", remaining)))
		sb.WriteString("\n")
	}

	return sb.String()
}

// renderRow renders a single row as "key [kind] value" behind its branch
// prefix, truncated to the pane width.
func (p *treePane) renderRow(r row, isSelected bool) string {
	var sb strings.Builder

	if isSelected {
		sb.WriteString(styles.SelectionIndicatorStyle.Render(">"))
	} else {
		sb.WriteString(" ")
	}

	prefix := r.prefix
	if isSelected && r.depth > 0 {
		prefix = addSelectionGuide(prefix)
	} else {
		prefix = connectorStyle.Render(prefix)
	}
	sb.WriteString(prefix)

	if r.hasKids {
		marker := markerCollapsed
		if r.expanded {
			marker = markerExpanded
		}
		sb.WriteString(kindTagStyle.Render(marker))
	}

	var parts []string
	if r.dto.Key != nil {
		parts = append(parts, styles.KindStyle(r.dto.Kind).Render(*r.dto.Key))
	}
	if r.dto.Kind != "" {
		parts = append(parts, kindTagStyle.Render("["+r.dto.Kind+"]"))
	}
	if r.dto.Value != "" {
		parts = append(parts, valueStyle.Render(r.dto.Value))
	}
	if len(parts) == 0 {
		parts = append(parts, valueStyle.Render("(empty)"))
	}
	sb.WriteString(strings.Join(parts, " "))

	line := sb.String()
	if p.width > 0 && ansi.StringWidth(line) > p.width {
		line = ansi.Truncate(line, p.width, "…")
	}
	return line
}

// addSelectionGuide replaces blanks in the prefix with horizontal lines,
// drawing a guide from the cursor to the selected row's content. Branch
// characters stay as they are.
func addSelectionGuide(prefix string) string {
	var result strings.Builder
	for _, r := range prefix {
		if r == ' ' {
			result.WriteString(guideStyle.Render("─"))
		} else {
			result.WriteString(connectorStyle.Render(string(r)))
		}
	}
	return result.String()
}

// visibleRowCount reports how many rows the flatten produced.
func (p *treePane) visibleRowCount() int {
	return len(p.rows)
}
