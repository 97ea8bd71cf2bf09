package hotkey

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/easel-works/easel/internal/domain"
)

// DefaultAccelerator is the overlay toggle used until the user records
// their own binding
const DefaultAccelerator = "CmdOrCtrl+Shift+G"

// Normalize converts a key press into its canonical accelerator string
// The boolean is false for a bare modifier press, which callers must
// ignore rather than treat as a recorded combination
//
// Part order is fixed regardless of physical press order:
// CmdOrCtrl, Shift, Alt, then exactly one key token
func Normalize(kp domain.KeyPress) (string, bool) {
	if isModifierName(kp.Key) {
		return "", false
	}

	var parts []string
	if kp.Ctrl || kp.Meta {
		parts = append(parts, "CmdOrCtrl")
	}
	if kp.Shift {
		parts = append(parts, "Shift")
	}
	if kp.Alt {
		parts = append(parts, "Alt")
	}
	parts = append(parts, normalizeKey(kp.Key))

	return strings.Join(parts, "+"), true
}

// isModifierName reports whether key names a modifier on its own
func isModifierName(key string) bool {
	switch strings.ToLower(key) {
	case "control", "shift", "alt", "meta":
		return true
	}
	return false
}

// normalizeKey maps the terminal key token: space becomes "Space",
// a single printable character is upper-cased, anything else (arrow
// and function key names) passes through unchanged
func normalizeKey(key string) string {
	if key == " " {
		return "Space"
	}
	if utf8.RuneCountInString(key) == 1 {
		r, _ := utf8.DecodeRuneInString(key)
		if unicode.IsPrint(r) {
			return strings.ToUpper(key)
		}
	}
	return key
}

// Combo is a parsed accelerator: the held modifiers plus one key token
type Combo struct {
	CmdOrCtrl bool
	Shift     bool
	Alt       bool
	Key       string
}

// Parse validates accel against the canonical grammar produced by
// Normalize: optional "CmdOrCtrl+", then optional "Shift+", then
// optional "Alt+", followed by exactly one key token
func Parse(accel string) (Combo, error) {
	var c Combo
	if accel == "" {
		return c, fmt.Errorf("empty accelerator")
	}

	parts := strings.Split(accel, "+")
	i := 0
	if i < len(parts) && parts[i] == "CmdOrCtrl" {
		c.CmdOrCtrl = true
		i++
	}
	if i < len(parts) && parts[i] == "Shift" {
		c.Shift = true
		i++
	}
	if i < len(parts) && parts[i] == "Alt" {
		c.Alt = true
		i++
	}

	if len(parts)-i != 1 || parts[i] == "" {
		return Combo{}, fmt.Errorf("malformed accelerator %q", accel)
	}
	key := parts[i]
	if key == "CmdOrCtrl" || isModifierName(key) {
		return Combo{}, fmt.Errorf("accelerator %q has no key token", accel)
	}

	c.Key = key
	return c, nil
}

// String renders the combo back in canonical form
func (c Combo) String() string {
	var parts []string
	if c.CmdOrCtrl {
		parts = append(parts, "CmdOrCtrl")
	}
	if c.Shift {
		parts = append(parts, "Shift")
	}
	if c.Alt {
		parts = append(parts, "Alt")
	}
	parts = append(parts, c.Key)
	return strings.Join(parts, "+")
}
