package tui

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/easel-works/easel/internal/domain"
)

// _inhibitReason is shown by desktop environments next to the
// inhibition entry
const _inhibitReason = "Displaying artwork"

// Host adapts the terminal program to the overlay host surface: reveal
// and dismiss requests from the controller become messages to the
// model, and the screensaver inhibition follows the surface visibility
type Host struct {
	logger    *zap.Logger
	inhibitor domain.Inhibitor

	mu      sync.Mutex
	program *tea.Program
}

// NewHost creates a host with no program attached yet
func NewHost(logger *zap.Logger, inhibitor domain.Inhibitor) *Host {
	return &Host{
		logger:    logger,
		inhibitor: inhibitor,
	}
}

// SetProgram attaches the running program. Messages emitted before the
// program is attached are dropped
func (h *Host) SetProgram(p *tea.Program) {
	h.mu.Lock()
	h.program = p
	h.mu.Unlock()
}

// RevealOverlays makes the artwork surface visible and keeps the
// display awake while it is
func (h *Host) RevealOverlays() {
	if err := h.inhibitor.Inhibit(context.Background(), _inhibitReason); err != nil {
		h.logger.Warn("Failed to inhibit screensaver", zap.Error(err))
	}
	h.send(revealMsg{})
}

// DismissOverlays hides the artwork surface and releases the display
func (h *Host) DismissOverlays() {
	if err := h.inhibitor.Uninhibit(context.Background()); err != nil {
		h.logger.Warn("Failed to uninhibit screensaver", zap.Error(err))
	}
	h.send(dismissMsg{})
}

// Resummon re-engages the screensaver inhibition when the surface
// comes back after a dismissal
func (h *Host) Resummon() {
	if err := h.inhibitor.Inhibit(context.Background(), _inhibitReason); err != nil {
		h.logger.Warn("Failed to inhibit screensaver", zap.Error(err))
	}
}

// Toggle flips the surface from the global hotkey. The decision
// happens in the model, which knows the current visibility
func (h *Host) Toggle() {
	h.send(toggleMsg{})
}

func (h *Host) send(msg tea.Msg) {
	h.mu.Lock()
	p := h.program
	h.mu.Unlock()

	if p == nil {
		h.logger.Debug("No program attached, dropping message")
		return
	}
	p.Send(msg)
}
