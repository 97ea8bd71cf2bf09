package domain

import "context"

//go:generate mockgen -destination=mocks/domain_mocks.go -package=mocks github.com/easel-works/easel/internal/domain ArtworkService,SettingsService,OverlayHost,ImageDecoder,InputPort,Inhibitor

// ArtworkService defines the interface for browsing museum artwork
// Implementations own the fetch pipeline, the prefetch cache and history
type ArtworkService interface {
	// CurrentArtwork returns the piece the service currently points at
	// A nil artwork with a nil error means the last fetch attempt failed
	// and the caller should keep whatever it is showing
	CurrentArtwork(ctx context.Context) (*Artwork, error)

	// NextArtwork advances to a new piece, serving from the prefetch
	// cache when possible
	NextArtwork(ctx context.Context) error

	// PreviousArtwork steps back through history
	// Returns an error when there is nothing to step back to
	PreviousArtwork(ctx context.Context) error

	// Changes returns a read-only channel that emits the artwork now
	// current after every successful navigation
	Changes() <-chan Artwork
}

// SettingsService defines the interface for reading and updating
// persisted user preferences
type SettingsService interface {
	// Hotkey returns the accelerator currently bound to the overlay toggle
	Hotkey(ctx context.Context) (string, error)

	// SetHotkey rebinds the overlay toggle and persists the new value
	// The binding is applied before the save; a failed application
	// leaves the stored value untouched
	SetHotkey(ctx context.Context, accelerator string) error
}

// OverlayHost defines the interface for showing and hiding the
// presentation surfaces
type OverlayHost interface {
	// RevealOverlays makes the artwork surfaces visible
	RevealOverlays()

	// DismissOverlays hides every artwork surface without tearing
	// the process down
	DismissOverlays()
}

// ImageDecoder defines the interface for turning artwork payloads
// into pixel data
type ImageDecoder interface {
	// Decode parses the artwork's inline image into a frame
	// Returns an error for payloads that are not a decodable image
	Decode(ctx context.Context, art Artwork) (*DecodedImage, error)
}

// InputPort defines the interface for claiming the keyboard
// At most one listener is attached at a time; attaching replaces nothing,
// it fails unless the previous listener was detached first
type InputPort interface {
	// AttachKeyListener routes every key press to fn until the returned
	// detach func is called
	AttachKeyListener(fn func(KeyPress)) (func(), error)
}

// Inhibitor defines the interface for suppressing the session's idle
// behavior while artwork is on screen
type Inhibitor interface {
	// Inhibit asks the session to hold off blanking, citing reason
	Inhibit(ctx context.Context, reason string) error

	// Uninhibit releases a previous Inhibit
	Uninhibit(ctx context.Context) error
}
