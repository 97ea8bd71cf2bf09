//go:build windows
// +build windows

package hotkey

import "golang.design/x/hotkey"

var (
	modCmdOrCtrl = hotkey.ModCtrl
	modShift     = hotkey.ModShift
	modAlt       = hotkey.ModAlt
)
