package tui

import (
	"testing"

	"github.com/easel-works/easel/internal/domain"
)

func TestAttachKeyListenerExclusive(t *testing.T) {
	port := NewPort()

	detach, err := port.AttachKeyListener(func(domain.KeyPress) {})
	if err != nil {
		t.Fatalf("first attach failed: %v", err)
	}
	if !port.Captured() {
		t.Error("expected port to report an active listener")
	}

	if _, err := port.AttachKeyListener(func(domain.KeyPress) {}); err == nil {
		t.Error("expected second attach to fail while the first is active")
	}

	detach()
	if port.Captured() {
		t.Error("expected no listener after detach")
	}

	if _, err := port.AttachKeyListener(func(domain.KeyPress) {}); err != nil {
		t.Errorf("re-attach after detach failed: %v", err)
	}
}

func TestAttachKeyListenerRejectsNil(t *testing.T) {
	port := NewPort()
	if _, err := port.AttachKeyListener(nil); err == nil {
		t.Error("expected nil listener to be rejected")
	}
}

func TestDispatchRoutesToListener(t *testing.T) {
	port := NewPort()

	if port.Dispatch(domain.KeyPress{Key: "G"}) {
		t.Error("expected dispatch without a listener to report unhandled")
	}

	var got []domain.KeyPress
	detach, err := port.AttachKeyListener(func(kp domain.KeyPress) {
		got = append(got, kp)
	})
	if err != nil {
		t.Fatalf("attach failed: %v", err)
	}

	if !port.Dispatch(domain.KeyPress{Key: "G", Ctrl: true}) {
		t.Error("expected dispatch to report handled")
	}
	if len(got) != 1 || got[0].Key != "G" || !got[0].Ctrl {
		t.Errorf("listener saw %+v, want a single ctrl+G press", got)
	}

	detach()
	if port.Dispatch(domain.KeyPress{Key: "H"}) {
		t.Error("expected dispatch after detach to report unhandled")
	}
	if len(got) != 1 {
		t.Errorf("listener called %d times after detach, want 1", len(got))
	}
}

func TestDetachIsIdempotent(t *testing.T) {
	port := NewPort()

	detach1, err := port.AttachKeyListener(func(domain.KeyPress) {})
	if err != nil {
		t.Fatalf("attach failed: %v", err)
	}
	detach1()

	detach2, err := port.AttachKeyListener(func(domain.KeyPress) {})
	if err != nil {
		t.Fatalf("re-attach failed: %v", err)
	}

	// the stale detach must not tear down the new listener
	detach1()
	if !port.Captured() {
		t.Error("expected second listener to survive a stale detach")
	}

	detach2()
	if port.Captured() {
		t.Error("expected no listener after final detach")
	}
}

func TestListenerCanDetachFromCallback(t *testing.T) {
	port := NewPort()

	var detach func()
	var err error
	detach, err = port.AttachKeyListener(func(domain.KeyPress) {
		detach()
	})
	if err != nil {
		t.Fatalf("attach failed: %v", err)
	}

	if !port.Dispatch(domain.KeyPress{Key: "Escape"}) {
		t.Error("expected dispatch to report handled")
	}
	if port.Captured() {
		t.Error("expected listener to be gone after self-detach")
	}
}
