// Package help contains the keybinding help overlay.
package help

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/arbor/internal/keys"
	"github.com/zjrosen/arbor/internal/ui/overlay"
	"github.com/zjrosen/arbor/internal/ui/styles"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.TextPrimaryColor).
			PaddingLeft(2)

	dividerStyle = lipgloss.NewStyle().
			Foreground(styles.BorderHighlightColor)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.TextPrimaryColor).
			MarginTop(1)

	keyStyle = lipgloss.NewStyle().
			Foreground(styles.TextSecondaryColor).
			Width(11)

	descStyle = lipgloss.NewStyle().
			Foreground(styles.TextDescriptionColor)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(styles.BorderHighlightColor)

	contentStyle = lipgloss.NewStyle().
			Padding(0, 2)

	footerStyle = lipgloss.NewStyle().
			Foreground(styles.TextMutedColor).
			MarginTop(1)
)

// Model holds the help view state.
type Model struct {
	keys   keys.BrowseKeyMap
	width  int
	height int
}

// New creates a help view for the given keymap.
func New(keymap keys.BrowseKeyMap) Model {
	return Model{keys: keymap}
}

// SetSize updates dimensions.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// View renders the help overlay (standalone, no background).
func (m Model) View() string {
	return m.Overlay("")
}

// Overlay renders the help box on top of a background view.
func (m Model) Overlay(background string) string {
	helpBox := m.renderContent()

	if background == "" {
		return lipgloss.Place(
			m.width, m.height,
			lipgloss.Center, lipgloss.Center,
			helpBox,
		)
	}

	return overlay.Place(overlay.Config{
		Width:    m.width,
		Height:   m.height,
		Position: overlay.Center,
	}, helpBox, background)
}

// renderContent builds the help box content.
func (m Model) renderContent() string {
	// Column style with right margin for spacing
	columnStyle := lipgloss.NewStyle().MarginRight(4)

	// Navigation column
	var navCol strings.Builder
	navCol.WriteString(sectionStyle.Render("Navigation"))
	navCol.WriteString("\n")
	navCol.WriteString(m.renderBinding(m.keys.Up))
	navCol.WriteString(m.renderBinding(m.keys.Down))
	navCol.WriteString(m.renderBinding(m.keys.Top))
	navCol.WriteString(m.renderBinding(m.keys.Bottom))

	// Tree column
	var treeCol strings.Builder
	treeCol.WriteString(sectionStyle.Render("Tree"))
	treeCol.WriteString("\n")
	treeCol.WriteString(m.renderBinding(m.keys.Expand))
	treeCol.WriteString(m.renderBinding(m.keys.Collapse))
	treeCol.WriteString(m.renderBinding(m.keys.Toggle))
	treeCol.WriteString(m.renderBinding(m.keys.FocusNext))

	// Actions column
	var actionsCol strings.Builder
	actionsCol.WriteString(sectionStyle.Render("Actions"))
	actionsCol.WriteString("\n")
	actionsCol.WriteString(m.renderBinding(m.keys.Refresh))
	actionsCol.WriteString(m.renderBinding(m.keys.Yank))
	actionsCol.WriteString(m.renderBinding(m.keys.ToggleLogs))

	// General column
	var generalCol strings.Builder
	generalCol.WriteString(sectionStyle.Render("General"))
	generalCol.WriteString("\n")
	generalCol.WriteString(m.renderBinding(m.keys.Help))
	generalCol.WriteString(m.renderBinding(m.keys.Escape))
	generalCol.WriteString(m.renderBinding(m.keys.Quit))

	// Join columns horizontally, aligned at top
	columns := lipgloss.JoinHorizontal(
		lipgloss.Top,
		columnStyle.Render(navCol.String()),
		columnStyle.Render(treeCol.String()),
		columnStyle.Render(actionsCol.String()),
		generalCol.String(), // Last column doesn't need right margin
	)

	// Calculate box width based on columns content
	columnsWidth := lipgloss.Width(columns)
	boxWidth := columnsWidth + 4 // Add horizontal padding (2 each side)

	// Build body content with padding
	body := contentStyle.Render(columns + "\n" + footerStyle.Render("Press ? or Esc to close"))

	// Divider spans full box width
	divider := dividerStyle.Render(strings.Repeat("─", boxWidth))

	// Build final content: title, divider, body
	var content strings.Builder
	content.WriteString(titleStyle.Render("Keybindings"))
	content.WriteString("\n")
	content.WriteString(divider)
	content.WriteString("\n")
	content.WriteString(body)

	return boxStyle.Width(boxWidth).Render(content.String())
}

func (m Model) renderBinding(b key.Binding) string {
	help := b.Help()
	return renderKeyDesc(help.Key, help.Desc)
}

func renderKeyDesc(key, desc string) string {
	return keyStyle.Render(key) + descStyle.Render(desc) + "\n"
}
