//go:build !windows && !((linux || darwin) && cgo)
// +build !windows
// +build !linux,!darwin !cgo

package hotkey

import "fmt"

// bindGlobal has no OS backend on this platform; the overlay toggle
// remains reachable from inside the terminal
func bindGlobal(Combo, func()) (func() error, error) {
	return nil, fmt.Errorf("global shortcuts are not supported on this platform")
}
