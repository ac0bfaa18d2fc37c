package config

import (
	"fmt"
	"regexp"
	"strings"
)

// KeybindingsConfig holds user-customizable keybindings for the browse view.
// Empty values fall back to the built-in defaults (ctrl+l and r).
type KeybindingsConfig struct {
	ToggleLogs string `mapstructure:"toggle_logs"`
	Refresh    string `mapstructure:"refresh"`
}

// validKeyPattern matches the key syntax bubbletea reports: zero or more
// modifiers joined with "+", then a single key name.
var validKeyPattern = regexp.MustCompile(
	`^((ctrl|alt|shift)\+)*([a-z0-9]|f[0-9]{1,2}|space|tab|esc|enter|up|down|left|right|home|end|pgup|pgdown)$`,
)

// reservedKeys are bound to built-in browse actions and cannot be remapped.
// Checked against the normalized (lowercased) form, so "G" is covered by "g".
var reservedKeys = map[string]bool{
	"q": true, "esc": true, "enter": true, "space": true, "tab": true,
	"j": true, "k": true, "h": true, "l": true, "g": true,
	"?": true, "y": true, "ctrl+c": true,
	"up": true, "down": true, "left": true, "right": true,
	"home": true, "end": true,
}

// ValidateKeybindings checks user keybinding overrides for errors.
// Empty values are valid and keep the defaults.
func ValidateKeybindings(kb KeybindingsConfig) error {
	bindings := []struct {
		name  string
		value string
	}{
		{"keybindings.toggle_logs", kb.ToggleLogs},
		{"keybindings.refresh", kb.Refresh},
	}

	seen := map[string]string{}
	for _, b := range bindings {
		if b.value == "" {
			continue
		}
		key := normalizeKey(b.value)
		if reservedKeys[key] {
			return fmt.Errorf("%s: %q is reserved for built-in navigation", b.name, b.value)
		}
		if !validKeyPattern.MatchString(key) {
			return fmt.Errorf("%s: invalid key format %q (use modifiers ctrl/alt/shift with a key, e.g. \"ctrl+l\")", b.name, b.value)
		}
		if prev, ok := seen[key]; ok {
			return fmt.Errorf("%s and %s use the same key %q", prev, b.name, b.value)
		}
		seen[key] = b.name
	}
	return nil
}

func normalizeKey(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
