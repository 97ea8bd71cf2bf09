package tui

import (
	"errors"
	"image"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/easel-works/easel/internal/clock"
	"github.com/easel-works/easel/internal/domain"
	"github.com/easel-works/easel/internal/domain/mocks"
	"github.com/easel-works/easel/internal/hotkey"
	"github.com/easel-works/easel/internal/overlay"
	"github.com/easel-works/easel/internal/render"
)

// newTestModel wires a model around an unstarted controller. Commands
// posted to the controller land in its buffer without a running loop,
// which keeps these tests synchronous.
func newTestModel(t *testing.T) (Model, *Port, *mocks.MockInhibitor) {
	t.Helper()

	ctrl := gomock.NewController(t)
	logger := zap.NewNop()
	clk := clock.Fake(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))

	svc := mocks.NewMockArtworkService(ctrl)
	dec := mocks.NewMockImageDecoder(ctrl)
	inh := mocks.NewMockInhibitor(ctrl)
	settings := mocks.NewMockSettingsService(ctrl)

	host := NewHost(logger, inh)
	controller := overlay.NewController(logger, clk, svc, dec, host)
	input := overlay.NewInputHandler(logger, controller)
	port := NewPort()
	recorder := hotkey.NewRecorder(logger, clk, port, settings)
	renderer := render.NewRenderer(logger, termenv.Ascii)

	m := NewModel(logger, controller, input, port, recorder, renderer, host)
	return m, port, inh
}

func resized(t *testing.T, m Model, w, h int) Model {
	t.Helper()
	next, _ := m.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return next.(Model)
}

func testArtworkState() overlay.State {
	art := domain.Artwork{
		ID:     "met-1",
		Title:  "Irises",
		Artist: "Vincent van Gogh",
		Date:   "1890",
		Source: "met",
	}
	return overlay.State{
		Displayed:      &art,
		Image:          &domain.DecodedImage{ArtworkID: "met-1", Image: image.NewNRGBA(image.Rect(0, 0, 2, 2))},
		Revealed:       true,
		InfoBarVisible: true,
	}
}

func TestCaptureSessionSwallowsKeys(t *testing.T) {
	m, port, _ := newTestModel(t)

	var got []domain.KeyPress
	detach, err := port.AttachKeyListener(func(kp domain.KeyPress) {
		got = append(got, kp)
	})
	if err != nil {
		t.Fatalf("attach failed: %v", err)
	}
	defer detach()

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	m = next.(Model)

	if m.screen != screenOverlay {
		t.Error("expected capture session to swallow the settings key")
	}
	if len(got) != 1 || got[0].Key != "S" {
		t.Errorf("listener saw %+v, want a single S press", got)
	}
}

func TestSettingsScreenOpensAndCloses(t *testing.T) {
	m, _, _ := newTestModel(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	m = next.(Model)
	if m.screen != screenSettings {
		t.Fatal("expected s to open the settings screen")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	if m.screen != screenOverlay {
		t.Error("expected esc to return to the overlay screen")
	}
}

func TestToggleSummonsWhenHidden(t *testing.T) {
	m, _, inh := newTestModel(t)

	inh.EXPECT().Inhibit(gomock.Any(), _inhibitReason).Return(nil).Times(1)

	next, _ := m.Update(toggleMsg{})
	m = next.(Model)
	if !m.visible {
		t.Error("expected surface visible after toggle from hidden")
	}
}

func TestToggleAsksControllerToDismissWhenVisible(t *testing.T) {
	m, _, _ := newTestModel(t)

	next, _ := m.Update(revealMsg{})
	m = next.(Model)
	if !m.visible {
		t.Fatal("expected reveal message to show the surface")
	}

	next, _ = m.Update(toggleMsg{})
	m = next.(Model)
	if !m.visible {
		t.Error("expected visibility to hold until the host dismisses")
	}

	next, _ = m.Update(dismissMsg{})
	m = next.(Model)
	if m.visible {
		t.Error("expected dismiss message to hide the surface")
	}
}

func TestEnterSummonsFromIdle(t *testing.T) {
	m, _, inh := newTestModel(t)

	next, _ := m.Update(revealMsg{})
	m = next.(Model)
	next, _ = m.Update(dismissMsg{})
	m = next.(Model)

	inh.EXPECT().Inhibit(gomock.Any(), _inhibitReason).Return(nil).Times(1)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	if !m.visible {
		t.Error("expected enter to summon the surface from idle")
	}
}

func TestViewBlankBeforeReveal(t *testing.T) {
	m, _, _ := newTestModel(t)
	m = resized(t, m, 80, 24)

	if got := m.View(); got != "" {
		t.Errorf("expected blank view before reveal, got %q", got)
	}
}

func TestViewShowsArtworkAndInfoBar(t *testing.T) {
	m, _, _ := newTestModel(t)
	m = resized(t, m, 80, 24)

	next, _ := m.Update(stateMsg{state: testArtworkState()})
	m = next.(Model)

	view := m.View()
	if view == "" {
		t.Fatal("expected a rendered view after reveal")
	}
	if !strings.Contains(view, "Irises") {
		t.Error("expected the info bar to show the title")
	}
	if !strings.Contains(view, "Vincent van Gogh") {
		t.Error("expected the info bar to show the artist")
	}
}

func TestViewHidesInfoBarWhenInactive(t *testing.T) {
	m, _, _ := newTestModel(t)
	m = resized(t, m, 80, 24)

	s := testArtworkState()
	s.InfoBarVisible = false
	next, _ := m.Update(stateMsg{state: s})
	m = next.(Model)

	if strings.Contains(m.View(), "Irises") {
		t.Error("expected no metadata outside the activity window")
	}
}

func TestViewIdleAfterDismiss(t *testing.T) {
	m, _, _ := newTestModel(t)
	m = resized(t, m, 80, 24)

	next, _ := m.Update(stateMsg{state: testArtworkState()})
	m = next.(Model)
	next, _ = m.Update(dismissMsg{})
	m = next.(Model)

	view := m.View()
	if !strings.Contains(view, "easel") {
		t.Errorf("expected the idle line after dismissal, got %q", view)
	}
	if strings.Contains(view, "Irises") {
		t.Error("expected no artwork on the idle screen")
	}
}

func TestViewSettingsShowsCaptureState(t *testing.T) {
	m, _, _ := newTestModel(t)
	m = resized(t, m, 80, 24)

	next, _ := m.Update(stateMsg{state: testArtworkState()})
	m = next.(Model)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	m = next.(Model)

	tests := []struct {
		name    string
		capture domain.HotkeyCaptureState
		want    string
	}{
		{
			name:    "recording prompt",
			capture: domain.HotkeyCaptureState{Recording: true},
			want:    "press a key combination",
		},
		{
			name:    "captured value with unsaved marker",
			capture: domain.HotkeyCaptureState{Value: "CmdOrCtrl+Shift+G", Dirty: true},
			want:    "CmdOrCtrl+Shift+G",
		},
		{
			name:    "saved indicator",
			capture: domain.HotkeyCaptureState{Value: "CmdOrCtrl+Shift+G", Saved: true},
			want:    "saved",
		},
		{
			name:    "save error",
			capture: domain.HotkeyCaptureState{Value: "CmdOrCtrl+Shift+G", Err: errors.New("disk full")},
			want:    "disk full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, _ := m.Update(captureMsg{state: tt.capture})
			got := next.(Model).View()
			if !strings.Contains(got, tt.want) {
				t.Errorf("settings view missing %q", tt.want)
			}
		})
	}
}

func TestSpinnerStopsWhenLoadingEnds(t *testing.T) {
	m, _, _ := newTestModel(t)

	// the model boots in the loading state and keeps ticking
	next, cmd := m.Update(spinner.TickMsg{})
	m = next.(Model)
	if cmd == nil {
		t.Error("expected the spinner to request another tick while loading")
	}

	next, _ = m.Update(stateMsg{state: overlay.State{Revealed: true}})
	m = next.(Model)

	next, cmd = m.Update(spinner.TickMsg{})
	m = next.(Model)
	if cmd != nil {
		t.Error("expected the spinner to stop once loading ends")
	}
	if m.spinning {
		t.Error("expected the spinning flag to clear")
	}
}

func TestResizeRetargetsFrame(t *testing.T) {
	m, _, _ := newTestModel(t)
	m = resized(t, m, 80, 24)

	next, _ := m.Update(stateMsg{state: testArtworkState()})
	m = next.(Model)
	if m.frame == nil {
		t.Fatal("expected a cached frame after the snapshot")
	}

	m = resized(t, m, 40, 12)
	if m.frameCur.cols != 40 || m.frameCur.rows != 9 {
		t.Errorf("frame target = %dx%d, want 40x9", m.frameCur.cols, m.frameCur.rows)
	}
}
