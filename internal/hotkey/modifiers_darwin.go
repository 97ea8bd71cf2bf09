//go:build darwin && cgo
// +build darwin,cgo

package hotkey

import "golang.design/x/hotkey"

// CmdOrCtrl binds the Command key on macOS
var (
	modCmdOrCtrl = hotkey.ModCmd
	modShift     = hotkey.ModShift
	modAlt       = hotkey.ModOption
)
