package x11

import (
	"github.com/BurntSushi/xgb/xproto"

	"github.com/1broseidon/lepus/internal/layout"
)

// Event is one protocol event delivered by the display server. The
// concrete types below are the only variants the engine consumes;
// everything else is swallowed inside NextEvent.
type Event interface {
	isEvent()
}

// MapRequest is a client window asking to appear on screen.
type MapRequest struct {
	Window xproto.Window
}

// UnmapNotify reports a window that was withdrawn from the screen.
type UnmapNotify struct {
	Window xproto.Window
}

// DestroyNotify reports a window that no longer exists.
type DestroyNotify struct {
	Window xproto.Window
}

// ConfigureRequest is a client asking for a specific geometry.
type ConfigureRequest struct {
	Window   xproto.Window
	Geometry layout.Rect
	Mask     uint16
}

// EnterNotify reports the pointer crossing into a window.
type EnterNotify struct {
	Window xproto.Window
}

// FocusIn reports a server-side input focus change.
type FocusIn struct {
	Window xproto.Window
}

// KeyPress is a grabbed key chord.
type KeyPress struct {
	Keycode xproto.Keycode
	State   uint16
}

// ButtonPress is a grabbed pointer button press. Child is the managed
// window under the pointer, or zero for the root.
type ButtonPress struct {
	Button xproto.Button
	State  uint16
	Child  xproto.Window
	RootX  int
	RootY  int
}

// ButtonRelease ends a pointer drag.
type ButtonRelease struct {
	Button xproto.Button
}

// MotionNotify is pointer movement while a button grab is active.
type MotionNotify struct {
	State uint16
	RootX int
	RootY int
}

// HintsChange reports a change to a window's WM_HINTS property,
// typically the urgency flag.
type HintsChange struct {
	Window xproto.Window
}

// OutputChange reports a change in the set or geometry of display
// outputs (hot-plug, resolution change).
type OutputChange struct{}

func (MapRequest) isEvent()       {}
func (UnmapNotify) isEvent()      {}
func (DestroyNotify) isEvent()    {}
func (ConfigureRequest) isEvent() {}
func (EnterNotify) isEvent()      {}
func (FocusIn) isEvent()          {}
func (KeyPress) isEvent()         {}
func (ButtonPress) isEvent()      {}
func (ButtonRelease) isEvent()    {}
func (MotionNotify) isEvent()     {}
func (HintsChange) isEvent()      {}
func (OutputChange) isEvent()     {}
