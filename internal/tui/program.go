package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/easel-works/easel/internal/domain"
	"github.com/easel-works/easel/internal/hotkey"
)

// NewProgram builds the bubbletea program around the model and wires
// the out-of-band senders into it: the overlay host forwards
// reveal/dismiss/toggle messages, the recorder forwards capture state
// changes. Mouse motion reporting is on so pointer activity can keep
// the info bar alive.
func NewProgram(m Model, host *Host, recorder *hotkey.Recorder) *tea.Program {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	host.SetProgram(p)
	recorder.OnChange(func(st domain.HotkeyCaptureState) {
		p.Send(captureMsg{state: st})
	})
	return p
}
