package tui

import (
	"errors"
	"sync"

	"github.com/easel-works/easel/internal/domain"
)

// Port is the single routing point for key presses. At most one
// capture listener is attached at a time; while attached it receives
// every press instead of the normal overlay handling, so a recording
// session and artwork navigation can never both consume the same key
type Port struct {
	mu       sync.Mutex
	listener func(domain.KeyPress)
}

// NewPort creates a port with no listener attached
func NewPort() *Port {
	return &Port{}
}

// AttachKeyListener claims the keyboard for fn until the returned
// detach func runs. Attaching while a listener is already attached is
// an error, not a replacement
func (p *Port) AttachKeyListener(fn func(domain.KeyPress)) (func(), error) {
	if fn == nil {
		return nil, errors.New("nil key listener")
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.listener != nil {
		return nil, errors.New("a key listener is already attached")
	}
	p.listener = fn

	var once sync.Once
	detach := func() {
		once.Do(func() {
			p.mu.Lock()
			p.listener = nil
			p.mu.Unlock()
		})
	}
	return detach, nil
}

// Dispatch routes a key press to the capture listener, reporting
// whether one consumed it. The listener runs outside the port lock;
// it may detach or re-attach from within the callback
func (p *Port) Dispatch(kp domain.KeyPress) bool {
	p.mu.Lock()
	fn := p.listener
	p.mu.Unlock()

	if fn == nil {
		return false
	}
	fn(kp)
	return true
}

// Captured reports whether a capture listener currently holds the keys
func (p *Port) Captured() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.listener != nil
}
