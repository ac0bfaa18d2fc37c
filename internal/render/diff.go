package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/zjrosen/arbor/internal/ui/styles"
)

var (
	addedStyle   = lipgloss.NewStyle().Foreground(styles.StatusSuccessColor)
	removedStyle = lipgloss.NewStyle().Foreground(styles.StatusErrorColor)
)

// Diff renders a line diff between two snapshots in unified style: removed
// lines prefixed "-", added lines "+", unchanged lines two spaces.
func (r Renderer) Diff(old, new string) string {
	dmp := diffmatchpatch.New()

	// Line mode: diff over line tokens, then map tokens back to text.
	a, b, lines := dmp.DiffLinesToChars(old, new)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var sb strings.Builder
	for _, d := range diffs {
		for _, line := range splitDiffLines(d.Text) {
			switch d.Type {
			case diffmatchpatch.DiffDelete:
				sb.WriteString(r.style(removedStyle, "- "+line))
			case diffmatchpatch.DiffInsert:
				sb.WriteString(r.style(addedStyle, "+ "+line))
			default:
				sb.WriteString("  " + line)
			}
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// splitDiffLines splits a diff chunk into lines, dropping the trailing empty
// element a final newline produces.
func splitDiffLines(text string) []string {
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return nil
	}
	return lines
}
