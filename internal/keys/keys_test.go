package keys

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Browse Keybinding Tests
// ============================================================================

func TestBrowse_DefaultKeyAssignments(t *testing.T) {
	tests := []struct {
		name     string
		binding  key.Binding
		expected []string
	}{
		{"Up uses k and up", Browse.Up, []string{"k", "up"}},
		{"Down uses j and down", Browse.Down, []string{"j", "down"}},
		{"Top uses g and home", Browse.Top, []string{"g", "home"}},
		{"Bottom uses G and end", Browse.Bottom, []string{"G", "end"}},
		{"Expand uses l and right", Browse.Expand, []string{"l", "right"}},
		{"Collapse uses h and left", Browse.Collapse, []string{"h", "left"}},
		{"Toggle uses enter and space", Browse.Toggle, []string{"enter", " "}},
		{"FocusNext uses tab", Browse.FocusNext, []string{"tab"}},
		{"Refresh uses r", Browse.Refresh, []string{"r"}},
		{"Yank uses y", Browse.Yank, []string{"y"}},
		{"ToggleLogs uses ctrl+l", Browse.ToggleLogs, []string{"ctrl+l"}},
		{"Help uses ?", Browse.Help, []string{"?"}},
		{"Escape uses esc", Browse.Escape, []string{"esc"}},
		{"Quit uses q and ctrl+c", Browse.Quit, []string{"q", "ctrl+c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.binding.Keys())
		})
	}
}

func TestBrowse_HelpTextDefined(t *testing.T) {
	bindings := []struct {
		name    string
		binding key.Binding
	}{
		{"Up", Browse.Up},
		{"Down", Browse.Down},
		{"Top", Browse.Top},
		{"Bottom", Browse.Bottom},
		{"Expand", Browse.Expand},
		{"Collapse", Browse.Collapse},
		{"Toggle", Browse.Toggle},
		{"FocusNext", Browse.FocusNext},
		{"Refresh", Browse.Refresh},
		{"Yank", Browse.Yank},
		{"ToggleLogs", Browse.ToggleLogs},
		{"Help", Browse.Help},
		{"Escape", Browse.Escape},
		{"Quit", Browse.Quit},
	}

	for _, b := range bindings {
		t.Run(b.name, func(t *testing.T) {
			help := b.binding.Help()
			require.NotEmpty(t, help.Key, "key help should not be empty")
			require.NotEmpty(t, help.Desc, "description help should not be empty")
		})
	}
}

func TestBrowseShortHelp(t *testing.T) {
	help := Browse.ShortHelp()
	require.Len(t, help, 5, "short help should contain 5 bindings")
	require.Equal(t, Browse.Up, help[0])
	require.Equal(t, Browse.Down, help[1])
	require.Equal(t, Browse.Toggle, help[2])
	require.Equal(t, Browse.Help, help[3])
	require.Equal(t, Browse.Quit, help[4])
}

func TestBrowseFullHelp(t *testing.T) {
	help := Browse.FullHelp()
	require.Len(t, help, 4, "full help should contain 4 rows")

	// First row: navigation
	require.Contains(t, help[0], Browse.Up)
	require.Contains(t, help[0], Browse.Down)

	// Second row: tree
	require.Contains(t, help[1], Browse.Expand)
	require.Contains(t, help[1], Browse.Collapse)
	require.Contains(t, help[1], Browse.Toggle)

	// Third row: actions
	require.Contains(t, help[2], Browse.Refresh)
	require.Contains(t, help[2], Browse.ToggleLogs)

	// Fourth row: general
	require.Contains(t, help[3], Browse.Help)
	require.Contains(t, help[3], Browse.Quit)
}

// ============================================================================
// Translation Function Tests
// ============================================================================

func TestTranslateToTerminal_CtrlSpace(t *testing.T) {
	result := translateToTerminal("ctrl+space")
	require.Equal(t, "ctrl+@", result, "ctrl+space should translate to ctrl+@")
}

func TestTranslateToTerminal_CtrlSpaceVariant(t *testing.T) {
	result := translateToTerminal("ctrl+ ")
	require.Equal(t, "ctrl+@", result, "ctrl+ (space) should translate to ctrl+@")
}

func TestTranslateToTerminal_Passthrough(t *testing.T) {
	result := translateToTerminal("ctrl+o")
	require.Equal(t, "ctrl+o", result, "ctrl+o should pass through unchanged")
}

func TestTranslateToTerminal_CaseNormalization(t *testing.T) {
	result := translateToTerminal("Ctrl+Space")
	require.Equal(t, "ctrl+@", result, "Ctrl+Space should normalize to ctrl+@")
}

func TestTranslateToTerminal_WhitespaceTrim(t *testing.T) {
	result := translateToTerminal(" ctrl+o ")
	require.Equal(t, "ctrl+o", result, "leading/trailing whitespace should be trimmed")
}

func TestTranslateToDisplay_CtrlAt(t *testing.T) {
	result := translateToDisplay("ctrl+@")
	require.Equal(t, "ctrl+space", result, "ctrl+@ should display as ctrl+space")
}

func TestTranslateToDisplay_Passthrough(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"f1", "f1"},
		{"alt+s", "alt+s"},
		{"enter", "enter"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := translateToDisplay(tt.input)
			require.Equal(t, tt.expected, result, "%s should pass through unchanged", tt.input)
		})
	}
}

// ============================================================================
// ApplyConfig Tests
// ============================================================================

func TestApplyConfig_ModifiesToggleLogs(t *testing.T) {
	ResetForTesting()
	defer ResetForTesting()

	ApplyConfig("ctrl+o", "")

	require.Equal(t, []string{"ctrl+o"}, Browse.ToggleLogs.Keys())
	require.Equal(t, []string{"r"}, Browse.Refresh.Keys(), "Refresh should keep its default")
}

func TestApplyConfig_ModifiesRefresh(t *testing.T) {
	ResetForTesting()
	defer ResetForTesting()

	ApplyConfig("", "f5")

	require.Equal(t, []string{"f5"}, Browse.Refresh.Keys())
	require.Equal(t, []string{"ctrl+l"}, Browse.ToggleLogs.Keys(), "ToggleLogs should keep its default")
}

func TestApplyConfig_SetsHelpText(t *testing.T) {
	ResetForTesting()
	defer ResetForTesting()

	ApplyConfig("ctrl+space", "f5")

	logsHelp := Browse.ToggleLogs.Help()
	require.Equal(t, "ctrl+space", logsHelp.Key, "ToggleLogs help key should show ctrl+space")
	require.Equal(t, "toggle logs", logsHelp.Desc)

	refreshHelp := Browse.Refresh.Help()
	require.Equal(t, "f5", refreshHelp.Key)
	require.Equal(t, "reload manifests", refreshHelp.Desc)

	// The binding itself must use the terminal sequence, not the display form
	require.Equal(t, []string{"ctrl+@"}, Browse.ToggleLogs.Keys())
}

func TestApplyConfig_EmptyString_NoChange(t *testing.T) {
	ResetForTesting()
	defer ResetForTesting()

	originalLogs := Browse.ToggleLogs.Keys()
	originalRefresh := Browse.Refresh.Keys()

	ApplyConfig("", "")

	require.Equal(t, originalLogs, Browse.ToggleLogs.Keys())
	require.Equal(t, originalRefresh, Browse.Refresh.Keys())
}

func TestResetForTesting_RestoresDefaults(t *testing.T) {
	ResetForTesting()
	ApplyConfig("ctrl+x", "ctrl+y")

	require.Equal(t, []string{"ctrl+x"}, Browse.ToggleLogs.Keys())
	require.Equal(t, []string{"ctrl+y"}, Browse.Refresh.Keys())

	ResetForTesting()

	require.Equal(t, []string{"ctrl+l"}, Browse.ToggleLogs.Keys(), "ToggleLogs should be restored to ctrl+l")
	require.Equal(t, []string{"r"}, Browse.Refresh.Keys(), "Refresh should be restored to r")

	logsHelp := Browse.ToggleLogs.Help()
	require.Equal(t, "ctrl+l", logsHelp.Key)
}
