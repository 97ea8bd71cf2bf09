package domain

import "image"

// Artwork is one piece served by a museum collection, with its image
// inlined as a data URI so the record is self-contained
type Artwork struct {
	// ID is unique within the source collection
	ID string `json:"id"`
	// Title of the piece
	Title string `json:"title"`
	// Artist name, or "Unknown Artist" when the collection omits it
	Artist string `json:"artist"`
	// Date the piece is attributed to (free-form, e.g. "c. 1660")
	Date string `json:"date"`
	// Medium describes the physical materials (e.g. "Oil on canvas")
	Medium string `json:"medium"`
	// Source is the human-readable collection name
	Source string `json:"source"`
	// ImageBase64 is a data URI of the form "data:<mime>;base64,<payload>"
	ImageBase64 string `json:"image_base64"`
}

// Settings holds user preferences persisted between runs
type Settings struct {
	// Hotkey is the normalized accelerator that toggles the overlay
	Hotkey string `json:"hotkey"`
}

// KeyPress is a single keyboard event as seen by the input layer
type KeyPress struct {
	// Key is the layer's name for the key (e.g. "G", "Escape", "ArrowRight")
	Key string
	// Modifier state at the time of the press
	Ctrl  bool
	Meta  bool
	Shift bool
	Alt   bool
}

// PointerMove is a pointer motion event inside the overlay surface
type PointerMove struct {
	X int
	Y int
}

// DecodedImage is artwork pixel data ready for presentation
type DecodedImage struct {
	// ArtworkID ties the pixels back to the artwork they were decoded from
	ArtworkID string
	// Image is the decoded frame in NRGBA form
	Image *image.NRGBA
}

// HotkeyCaptureState is the observable state of a hotkey recording
// session, published to the presentation layer after every change
type HotkeyCaptureState struct {
	// Recording is true while a capture listener holds the keyboard
	Recording bool
	// Value is the accelerator currently shown in the capture field
	Value string
	// Dirty is true when Value differs from the persisted binding
	Dirty bool
	// Saved is true for a short window after a successful save
	Saved bool
	// Err holds the last save failure, cleared on the next capture
	Err error
}

// ScreenResolution holds the display dimensions
type ScreenResolution struct {
	Width  int
	Height int
}
