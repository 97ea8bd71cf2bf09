package overlay

import (
	"go.uber.org/zap"

	"github.com/easel-works/easel/internal/domain"
)

// InputHandler translates raw overlay input into controller operations.
// It is stateless: every effect goes through the controller, which owns
// the overlay state
type InputHandler struct {
	logger     *zap.Logger
	controller *Controller
}

// NewInputHandler creates the overlay input translator
func NewInputHandler(logger *zap.Logger, controller *Controller) *InputHandler {
	return &InputHandler{
		logger:     logger,
		controller: controller,
	}
}

// HandleKey maps a key press onto a navigation or dismissal request.
// Keys without a mapping are ignored
func (h *InputHandler) HandleKey(key domain.KeyPress) {
	switch key.Key {
	case "Escape":
		h.logger.Debug("Dismiss requested")
		h.controller.Dismiss()
	case "ArrowRight", " ":
		h.logger.Debug("Next artwork requested")
		h.controller.Next()
	case "ArrowLeft":
		h.logger.Debug("Previous artwork requested")
		h.controller.Previous()
	}
}

// HandlePointer records pointer motion, which only keeps the info bar
// awake
func (h *InputHandler) HandlePointer(domain.PointerMove) {
	h.controller.PointerMoved()
}
