// Package styles contains Lip Gloss style definitions.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Semantic color names - Text hierarchy
	TextPrimaryColor     = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#CCCCCC"} // Main/primary text
	TextSecondaryColor   = lipgloss.AdaptiveColor{Light: "#AAAAAA", Dark: "#BBBBBB"} // Run IDs, secondary info
	TextMutedColor       = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#696969"} // Hints, help text, footers
	TextDescriptionColor = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"} // Description/body text
	TextPlaceholderColor = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#777777"} // Input placeholders

	// Semantic color names - Border
	BorderDefaultColor   = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#696969"} // Unfocused borders
	BorderFocusColor     = lipgloss.AdaptiveColor{Light: "#FFF", Dark: "#FFF"}       // Focused pane borders
	BorderHighlightColor = lipgloss.AdaptiveColor{Light: "#54A0FF", Dark: "#54A0FF"} // Highlighted borders

	// Semantic color names - Status
	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"} // Success states
	StatusWarningColor = lipgloss.AdaptiveColor{Light: "#FECA57", Dark: "#FECA57"} // Warnings
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"} // Errors

	// Selection indicator color (used for ">" prefix in lists)
	SelectionIndicatorColor = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}

	// Catalog kind colors (tree nodes, entry lists)
	KindGroupColor    = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	KindPageColor     = lipgloss.AdaptiveColor{Light: "#54A0FF", Dark: "#54A0FF"}
	KindPanelColor    = lipgloss.AdaptiveColor{Light: "#179299", Dark: "#94E2D5"}
	KindActionColor   = lipgloss.AdaptiveColor{Light: "#FE640B", Dark: "#FAB387"}
	KindFragmentColor = lipgloss.AdaptiveColor{Light: "#DF8E1D", Dark: "#FECA57"}
	KindWidgetColor   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	KindBadgeColor    = lipgloss.AdaptiveColor{Light: "#8839EF", Dark: "#CBA6F7"}

	// Selection indicator style (used for ">" prefix in lists: tree cursor, entry picker)
	SelectionIndicatorStyle = lipgloss.NewStyle().Bold(true).Foreground(SelectionIndicatorColor)

	// Status bar
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(TextSecondaryColor).
			Padding(0, 1)

	// Error display
	ErrorStyle = lipgloss.NewStyle().
			Foreground(StatusErrorColor).
			Bold(true).
			Padding(1, 2)

	// Loading spinner color
	SpinnerColor = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#FFF"}
)

// KindColor returns the color for a catalog kind name. Unknown kinds fall
// back to the primary text color.
func KindColor(kind string) lipgloss.AdaptiveColor {
	switch kind {
	case "group":
		return KindGroupColor
	case "page":
		return KindPageColor
	case "panel":
		return KindPanelColor
	case "action":
		return KindActionColor
	case "fragment":
		return KindFragmentColor
	case "widget":
		return KindWidgetColor
	case "badge":
		return KindBadgeColor
	default:
		return TextPrimaryColor
	}
}

// KindStyle builds a foreground style for a catalog kind name. Built at call
// time so theme changes apply without a rebuild step.
func KindStyle(kind string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(KindColor(kind))
}
