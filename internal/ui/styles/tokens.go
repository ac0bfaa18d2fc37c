// Package styles contains Lip Gloss style definitions.
package styles

// ColorToken represents a named, themeable color.
type ColorToken string

// Color tokens organized by category.
// These are the keys users can override in their config.
const (
	// Text hierarchy
	TokenTextPrimary     ColorToken = "text.primary"
	TokenTextSecondary   ColorToken = "text.secondary"
	TokenTextMuted       ColorToken = "text.muted"
	TokenTextDescription ColorToken = "text.description"
	TokenTextPlaceholder ColorToken = "text.placeholder"

	// Borders
	TokenBorderDefault   ColorToken = "border.default"
	TokenBorderFocus     ColorToken = "border.focus"
	TokenBorderHighlight ColorToken = "border.highlight"

	// Status indicators
	TokenStatusSuccess ColorToken = "status.success"
	TokenStatusWarning ColorToken = "status.warning"
	TokenStatusError   ColorToken = "status.error"

	// Selection
	TokenSelectionIndicator ColorToken = "selection.indicator"

	// Catalog kinds
	TokenKindGroup    ColorToken = "kind.group"
	TokenKindPage     ColorToken = "kind.page"
	TokenKindPanel    ColorToken = "kind.panel"
	TokenKindAction   ColorToken = "kind.action"
	TokenKindFragment ColorToken = "kind.fragment"
	TokenKindWidget   ColorToken = "kind.widget"
	TokenKindBadge    ColorToken = "kind.badge"

	// Misc
	TokenSpinner ColorToken = "spinner"
)

// AllTokens returns all valid color tokens for validation.
func AllTokens() []ColorToken {
	return []ColorToken{
		// Text hierarchy
		TokenTextPrimary,
		TokenTextSecondary,
		TokenTextMuted,
		TokenTextDescription,
		TokenTextPlaceholder,

		// Borders
		TokenBorderDefault,
		TokenBorderFocus,
		TokenBorderHighlight,

		// Status indicators
		TokenStatusSuccess,
		TokenStatusWarning,
		TokenStatusError,

		// Selection
		TokenSelectionIndicator,

		// Catalog kinds
		TokenKindGroup,
		TokenKindPage,
		TokenKindPanel,
		TokenKindAction,
		TokenKindFragment,
		TokenKindWidget,
		TokenKindBadge,

		// Misc
		TokenSpinner,
	}
}
