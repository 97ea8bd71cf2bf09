package tui

import (
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/easel-works/easel/internal/domain"
)

// keyNames maps bubbletea's key names onto the canonical tokens used
// by the accelerator grammar and the overlay input handler
var keyNames = map[string]string{
	"esc":       "Escape",
	"enter":     "Enter",
	"tab":       "Tab",
	"backspace": "Backspace",
	"delete":    "Delete",
	"insert":    "Insert",
	"home":      "Home",
	"end":       "End",
	"pgup":      "PageUp",
	"pgdown":    "PageDown",
	"up":        "ArrowUp",
	"down":      "ArrowDown",
	"right":     "ArrowRight",
	"left":      "ArrowLeft",
	" ":         " ",
}

// translateKey converts a terminal key press into the canonical
// KeyPress shape. Terminals fold shift into the rune for letters, so a
// typed capital raises the Shift flag; meta is not reported by
// terminals at all
func translateKey(msg tea.KeyMsg) domain.KeyPress {
	name := msg.String()

	var kp domain.KeyPress
	for {
		switch {
		case strings.HasPrefix(name, "ctrl+"):
			kp.Ctrl = true
			name = strings.TrimPrefix(name, "ctrl+")
		case strings.HasPrefix(name, "alt+"):
			kp.Alt = true
			name = strings.TrimPrefix(name, "alt+")
		case strings.HasPrefix(name, "shift+"):
			kp.Shift = true
			name = strings.TrimPrefix(name, "shift+")
		default:
			kp.Key = keyToken(name)
			if r := []rune(name); len(r) == 1 && unicode.IsUpper(r[0]) {
				kp.Shift = true
			}
			return kp
		}
	}
}

func keyToken(name string) string {
	if mapped, ok := keyNames[name]; ok {
		return mapped
	}
	if r := []rune(name); len(r) == 1 {
		return strings.ToUpper(name)
	}
	// function keys keep their terminal name, capitalized ("f5" -> "F5")
	if len(name) > 1 && name[0] == 'f' && isDigits(name[1:]) {
		return "F" + name[1:]
	}
	return name
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
