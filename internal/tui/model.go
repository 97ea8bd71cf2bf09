// Package tui hosts the terminal surface: a bubbletea program with an
// overlay screen for the artwork and a settings screen for the global
// hotkey. The model owns key routing, so a capture session and the
// overlay navigation never both consume the same press.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/easel-works/easel/internal/domain"
	"github.com/easel-works/easel/internal/hotkey"
	"github.com/easel-works/easel/internal/overlay"
	"github.com/easel-works/easel/internal/render"
)

// messages delivered into the Update loop
type (
	// stateMsg carries a controller snapshot
	stateMsg struct{ state overlay.State }
	// captureMsg carries a recorder state change
	captureMsg struct{ state domain.HotkeyCaptureState }
	// revealMsg shows the artwork surface (one-time, from the controller)
	revealMsg struct{}
	// dismissMsg hides the artwork surface
	dismissMsg struct{}
	// toggleMsg flips the surface, sent by the global hotkey
	toggleMsg struct{}
)

type screen int

const (
	screenOverlay screen = iota
	screenSettings
)

// frameKey identifies a cached frame rendering
type frameKey struct {
	artworkID string
	cols      int
	rows      int
}

// Model is the bubbletea model for the whole terminal surface
type Model struct {
	logger     *zap.Logger
	controller *overlay.Controller
	input      *overlay.InputHandler
	port       *Port
	recorder   *hotkey.Recorder
	renderer   *render.Renderer
	host       *Host

	keys  KeyMap
	theme Theme
	spin  spinner.Model

	states <-chan overlay.State

	screen     screen
	state      overlay.State
	capture    domain.HotkeyCaptureState
	width      int
	height     int
	visible    bool
	revealSeen bool
	spinning   bool

	frame    []string
	frameCur frameKey
}

// NewModel assembles the terminal model around the overlay controller
// and the hotkey recorder
func NewModel(
	logger *zap.Logger,
	controller *overlay.Controller,
	input *overlay.InputHandler,
	port *Port,
	recorder *hotkey.Recorder,
	renderer *render.Renderer,
	host *Host,
) Model {
	return Model{
		logger:     logger,
		controller: controller,
		input:      input,
		port:       port,
		recorder:   recorder,
		renderer:   renderer,
		host:       host,
		keys:       DefaultKeyMap,
		theme:      DefaultTheme,
		spin:       spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(DefaultTheme.Accent)),
		spinning:   true,
		states:     controller.States(),
		state:      overlay.State{Loading: true},
	}
}

// Init implements tea.Model: start pumping controller snapshots and
// the loading spinner
func (m Model) Init() tea.Cmd {
	return tea.Batch(listenForState(m.states), m.spin.Tick)
}

// listenForState returns a command that blocks until the controller
// publishes a snapshot. The Update loop re-issues it after every
// delivery; a closed channel ends the pump
func listenForState(states <-chan overlay.State) tea.Cmd {
	return func() tea.Msg {
		s, ok := <-states
		if !ok {
			return nil
		}
		return stateMsg{state: s}
	}
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		next, cmd := m.handleKey(msg)
		return next, cmd

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionMotion && m.screen == screenOverlay && m.visible {
			m.input.HandlePointer(domain.PointerMove{X: msg.X, Y: msg.Y})
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m = m.refreshFrame()
		return m, nil

	case stateMsg:
		next, cmd := m.handleState(msg.state)
		return next, cmd

	case captureMsg:
		m.capture = msg.state
		return m, nil

	case revealMsg:
		m.visible = true
		m.revealSeen = true
		return m, nil

	case dismissMsg:
		m.visible = false
		return m, nil

	case toggleMsg:
		m.screen = screenOverlay
		if m.visible {
			m.controller.Dismiss()
			return m, nil
		}
		next, cmd := m.summon()
		return next, cmd

	case spinner.TickMsg:
		if !m.state.Loading {
			m.spinning = false
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleKey routes a key press: quit first, then an active capture
// session, then the current screen's bindings, and finally the
// overlay navigation translator
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	kp := translateKey(msg)
	if m.port.Dispatch(kp) {
		return m, nil
	}

	if m.screen == screenSettings {
		switch {
		case key.Matches(msg, m.keys.Back):
			m.screen = screenOverlay
		case key.Matches(msg, m.keys.Record):
			return m, m.beginCapture()
		case key.Matches(msg, m.keys.Save):
			return m, m.saveHotkey()
		}
		return m, nil
	}

	if !m.visible {
		switch {
		case key.Matches(msg, m.keys.Summon):
			return m.summon()
		case key.Matches(msg, m.keys.Settings):
			m.screen = screenSettings
		}
		return m, nil
	}

	if key.Matches(msg, m.keys.Settings) {
		m.screen = screenSettings
		return m, nil
	}

	m.input.HandleKey(kp)
	return m, nil
}

// handleState absorbs a controller snapshot
func (m Model) handleState(s overlay.State) (Model, tea.Cmd) {
	m.state = s

	// the reveal message normally arrives first, but a snapshot with
	// the latch set must never leave the surface on the idle screen
	if s.Revealed && !m.revealSeen {
		m.revealSeen = true
		m.visible = true
	}

	m = m.refreshFrame()

	cmds := []tea.Cmd{listenForState(m.states)}
	if m.state.Loading && !m.spinning {
		m.spinning = true
		cmds = append(cmds, m.spin.Tick)
	}
	return m, tea.Batch(cmds...)
}

// summon brings the surface back after a dismissal and hangs a fresh
// artwork on it
func (m Model) summon() (Model, tea.Cmd) {
	m.visible = true
	m.host.Resummon()
	m.controller.Next()
	m.logger.Debug("Surface summoned")
	return m, nil
}

func (m Model) beginCapture() tea.Cmd {
	rec := m.recorder
	return func() tea.Msg {
		rec.BeginCapture()
		return nil
	}
}

func (m Model) saveHotkey() tea.Cmd {
	logger, rec := m.logger, m.recorder
	return func() tea.Msg {
		if err := rec.Save(context.Background()); err != nil {
			logger.Warn("Hotkey save failed", zap.Error(err))
		}
		return nil
	}
}

// refreshFrame re-renders the artwork for the current geometry,
// reusing the cached rows when neither the artwork nor the terminal
// size changed
func (m Model) refreshFrame() Model {
	img := m.state.Image
	if img == nil || m.width <= 0 || m.height <= 0 {
		m.frame = nil
		m.frameCur = frameKey{}
		return m
	}

	cols, rows := m.artArea()
	cur := frameKey{artworkID: img.ArtworkID, cols: cols, rows: rows}
	if cur == m.frameCur && m.frame != nil {
		return m
	}

	m.frame = m.renderer.Render(img.Image, cols, rows)
	m.frameCur = cur
	return m
}

// artArea is the cell grid left for the artwork once the info bar and
// status line are reserved
func (m Model) artArea() (cols, rows int) {
	cols = m.width
	rows = m.height - 3
	if rows < 1 {
		rows = 1
	}
	return cols, rows
}

// View implements tea.Model. The surface stays blank until the
// controller reveals it
func (m Model) View() string {
	if !m.state.Revealed || m.width <= 0 {
		return ""
	}
	if m.screen == screenSettings {
		return m.viewSettings()
	}
	if !m.visible {
		return m.viewIdle()
	}
	return m.viewOverlay()
}

func (m Model) viewIdle() string {
	line := m.theme.Faint.Render("easel") + "  " +
		m.theme.Help.Render("enter hang artwork · s settings · ctrl+c quit")
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, line)
}

func (m Model) viewOverlay() string {
	_, rows := m.artArea()

	var art string
	switch {
	case m.frame != nil:
		art = strings.Join(m.frame, "\n")
	case m.state.Loading:
		art = m.spin.View() + " fetching artwork"
	default:
		art = m.theme.Faint.Render("no artwork yet")
	}

	content := lipgloss.Place(m.width, rows, lipgloss.Center, lipgloss.Center, art)
	return lipgloss.JoinVertical(lipgloss.Left, content, m.viewInfoBar(), m.viewStatus())
}

// viewInfoBar renders the two metadata rows under the artwork; they
// stay blank outside the activity window
func (m Model) viewInfoBar() string {
	if !m.state.InfoBarVisible || m.state.Displayed == nil {
		return "\n"
	}

	art := m.state.Displayed
	meta := make([]string, 0, 4)
	for _, part := range []string{art.Artist, art.Date, art.Medium, art.Source} {
		if part != "" {
			meta = append(meta, part)
		}
	}

	line1 := lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.theme.Title.Render(art.Title))
	line2 := lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.theme.Faint.Render(strings.Join(meta, " · ")))
	return line1 + "\n" + line2
}

func (m Model) viewStatus() string {
	left := ""
	if m.state.Loading {
		left = m.spin.View() + " loading"
	}

	help := m.theme.Help.Render("space/→ next · ← previous · esc hide · s settings")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(help)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + help
}

func (m Model) viewSettings() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Settings"))
	b.WriteString("\n\n")

	b.WriteString("Global hotkey  ")
	switch {
	case m.capture.Recording:
		b.WriteString(m.theme.Accent.Render("press a key combination"))
	case m.capture.Value == "":
		b.WriteString(m.theme.Faint.Render("not set"))
	default:
		b.WriteString(m.capture.Value)
	}
	b.WriteString("\n\n")

	switch {
	case m.capture.Err != nil:
		b.WriteString(m.theme.Error.Render("save failed: " + m.capture.Err.Error()))
	case m.capture.Saved:
		b.WriteString(m.theme.Saved.Render("saved"))
	case m.capture.Dirty:
		b.WriteString(m.theme.Faint.Render("unsaved changes"))
	default:
		b.WriteString(" ")
	}

	body := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, b.String())
	help := lipgloss.PlaceHorizontal(m.width, lipgloss.Center,
		m.theme.Help.Render("r record · enter save · esc back"))
	return body + "\n" + help
}
