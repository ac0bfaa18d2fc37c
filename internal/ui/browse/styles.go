package browse

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/arbor/internal/ui/styles"
)

// Bubblezone IDs for mouse hit testing.
const (
	zoneTreePane   = "browse_tree"
	zoneDetailPane = "browse_detail"
	zoneRowPrefix  = "browse_row_"
)

// Pane and row styles. Rebuilt by RebuildStyles after a theme change.
var (
	scrollHintStyle = lipgloss.NewStyle().Foreground(styles.TextMutedColor)
	guideStyle      = lipgloss.NewStyle().Foreground(styles.TextMutedColor)
	connectorStyle  = lipgloss.NewStyle().Foreground(styles.BorderDefaultColor)
	kindTagStyle    = lipgloss.NewStyle().Foreground(styles.TextMutedColor)
	valueStyle      = lipgloss.NewStyle().Foreground(styles.TextDescriptionColor)
	emptyStyle      = lipgloss.NewStyle().Foreground(styles.TextMutedColor).Italic(true)
	loadingStyle    = lipgloss.NewStyle().Foreground(styles.TextMutedColor)
	spinnerStyle    = lipgloss.NewStyle().Foreground(styles.SpinnerColor)

	detailTitleStyle = lipgloss.NewStyle().Foreground(styles.TextPrimaryColor).Bold(true)
	detailMetaStyle  = lipgloss.NewStyle().Foreground(styles.TextSecondaryColor)

	statusErrStyle = lipgloss.NewStyle().Foreground(styles.StatusErrorColor).Padding(0, 1)
)

func init() {
	styles.RegisterStyleRebuilder(RebuildStyles)
}

// RebuildStyles recreates the package styles from the current color
// variables. Called by styles.ApplyTheme after a preset or override changes
// them.
func RebuildStyles() {
	scrollHintStyle = lipgloss.NewStyle().Foreground(styles.TextMutedColor)
	guideStyle = lipgloss.NewStyle().Foreground(styles.TextMutedColor)
	connectorStyle = lipgloss.NewStyle().Foreground(styles.BorderDefaultColor)
	kindTagStyle = lipgloss.NewStyle().Foreground(styles.TextMutedColor)
	valueStyle = lipgloss.NewStyle().Foreground(styles.TextDescriptionColor)
	emptyStyle = lipgloss.NewStyle().Foreground(styles.TextMutedColor).Italic(true)
	loadingStyle = lipgloss.NewStyle().Foreground(styles.TextMutedColor)
	spinnerStyle = lipgloss.NewStyle().Foreground(styles.SpinnerColor)

	detailTitleStyle = lipgloss.NewStyle().Foreground(styles.TextPrimaryColor).Bold(true)
	detailMetaStyle = lipgloss.NewStyle().Foreground(styles.TextSecondaryColor)

	statusErrStyle = lipgloss.NewStyle().Foreground(styles.StatusErrorColor).Padding(0, 1)
}
