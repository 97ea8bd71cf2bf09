//go:build windows || (linux && cgo) || (darwin && cgo)
// +build windows linux,cgo darwin,cgo

package hotkey

import (
	"fmt"

	"golang.design/x/hotkey"
)

// bindGlobal registers combo with the OS and pumps its keydown events
// into onTrigger until released
func bindGlobal(c Combo, onTrigger func()) (func() error, error) {
	key, err := keyFor(c.Key)
	if err != nil {
		return nil, err
	}

	var mods []hotkey.Modifier
	if c.CmdOrCtrl {
		mods = append(mods, modCmdOrCtrl)
	}
	if c.Shift {
		mods = append(mods, modShift)
	}
	if c.Alt {
		mods = append(mods, modAlt)
	}

	hk := hotkey.New(mods, key)
	if err := hk.Register(); err != nil {
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-done:
				return
			case _, ok := <-hk.Keydown():
				if !ok {
					return
				}
				onTrigger()
			}
		}
	}()

	release := func() error {
		close(done)
		return hk.Unregister()
	}
	return release, nil
}

// keyFor resolves a canonical key token to the library's key code
// Tokens outside the table (punctuation, media keys) cannot be bound
// as global shortcuts
func keyFor(token string) (hotkey.Key, error) {
	if k, ok := keyTable[token]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("key %q cannot be bound globally", token)
}

var keyTable = map[string]hotkey.Key{
	"A": hotkey.KeyA, "B": hotkey.KeyB, "C": hotkey.KeyC, "D": hotkey.KeyD,
	"E": hotkey.KeyE, "F": hotkey.KeyF, "G": hotkey.KeyG, "H": hotkey.KeyH,
	"I": hotkey.KeyI, "J": hotkey.KeyJ, "K": hotkey.KeyK, "L": hotkey.KeyL,
	"M": hotkey.KeyM, "N": hotkey.KeyN, "O": hotkey.KeyO, "P": hotkey.KeyP,
	"Q": hotkey.KeyQ, "R": hotkey.KeyR, "S": hotkey.KeyS, "T": hotkey.KeyT,
	"U": hotkey.KeyU, "V": hotkey.KeyV, "W": hotkey.KeyW, "X": hotkey.KeyX,
	"Y": hotkey.KeyY, "Z": hotkey.KeyZ,

	"0": hotkey.Key0, "1": hotkey.Key1, "2": hotkey.Key2, "3": hotkey.Key3,
	"4": hotkey.Key4, "5": hotkey.Key5, "6": hotkey.Key6, "7": hotkey.Key7,
	"8": hotkey.Key8, "9": hotkey.Key9,

	"Space":      hotkey.KeySpace,
	"Enter":      hotkey.KeyReturn,
	"Escape":     hotkey.KeyEscape,
	"Tab":        hotkey.KeyTab,
	"Delete":     hotkey.KeyDelete,
	"ArrowLeft":  hotkey.KeyLeft,
	"ArrowRight": hotkey.KeyRight,
	"ArrowUp":    hotkey.KeyUp,
	"ArrowDown":  hotkey.KeyDown,

	"F1": hotkey.KeyF1, "F2": hotkey.KeyF2, "F3": hotkey.KeyF3,
	"F4": hotkey.KeyF4, "F5": hotkey.KeyF5, "F6": hotkey.KeyF6,
	"F7": hotkey.KeyF7, "F8": hotkey.KeyF8, "F9": hotkey.KeyF9,
	"F10": hotkey.KeyF10, "F11": hotkey.KeyF11, "F12": hotkey.KeyF12,
}
