//go:build linux && cgo
// +build linux,cgo

package hotkey

import "golang.design/x/hotkey"

// X11 modifier mapping; Alt is Mod1
var (
	modCmdOrCtrl = hotkey.ModCtrl
	modShift     = hotkey.ModShift
	modAlt       = hotkey.Mod1
)
