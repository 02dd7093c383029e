package wm

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/1broseidon/lepus/internal/layout"
	"github.com/1broseidon/lepus/internal/x11"
)

// Mode describes who controls a client's geometry.
type Mode uint8

const (
	// ModeTiled clients get their geometry from the layout engine.
	ModeTiled Mode = iota
	// ModeFloating clients keep whatever geometry was last set,
	// clamped to the output's usable area.
	ModeFloating
	// ModeFullscreen clients cover their output's full geometry.
	ModeFullscreen
)

func (m Mode) String() string {
	switch m {
	case ModeTiled:
		return "tiled"
	case ModeFloating:
		return "floating"
	case ModeFullscreen:
		return "fullscreen"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// ErrAlreadyManaged reports a second registration for a window.
var ErrAlreadyManaged = errors.New("wm: window already managed")

// Client is one managed window. The Registry owns the canonical
// record; every other component refers to clients by window ID.
type Client struct {
	ID        xproto.Window
	Geometry  layout.Rect
	Hints     x11.SizeHints
	Mode      Mode
	Workspace string
	Mapped    bool
	Urgent    bool

	// Pre-fullscreen state, restored when fullscreen is toggled off.
	savedGeometry layout.Rect
	savedMode     Mode
}

// Registry is the authoritative table of managed windows.
type Registry struct {
	clients map[xproto.Window]*Client
	order   []xproto.Window
}

func NewRegistry() *Registry {
	return &Registry{clients: make(map[xproto.Window]*Client)}
}

// Register adds a window with its initial geometry and size hints.
// Fails with ErrAlreadyManaged when the identifier is already present.
func (r *Registry) Register(id xproto.Window, geom layout.Rect, hints x11.SizeHints) (*Client, error) {
	if _, ok := r.clients[id]; ok {
		return nil, fmt.Errorf("%w: %d", ErrAlreadyManaged, id)
	}
	c := &Client{ID: id, Geometry: geom, Hints: hints, Mode: ModeTiled}
	r.clients[id] = c
	r.order = append(r.order, id)
	return c, nil
}

// Unregister removes a window. Unknown identifiers are a no-op.
func (r *Registry) Unregister(id xproto.Window) {
	if _, ok := r.clients[id]; !ok {
		return
	}
	delete(r.clients, id)
	for i, win := range r.order {
		if win == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Lookup returns the client record for a window, if managed.
func (r *Registry) Lookup(id xproto.Window) (*Client, bool) {
	c, ok := r.clients[id]
	return c, ok
}

// Windows returns all managed window IDs in registration order.
func (r *Registry) Windows() []xproto.Window {
	out := make([]xproto.Window, len(r.order))
	copy(out, r.order)
	return out
}

func (r *Registry) Len() int { return len(r.clients) }
