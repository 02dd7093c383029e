package wm

import (
	"github.com/BurntSushi/xgb/xproto"

	"github.com/1broseidon/lepus/internal/layout"
	"github.com/1broseidon/lepus/internal/x11"
)

// Session is the display-server surface the engine depends on.
// *x11.Session implements it; tests substitute an in-memory fake.
type Session interface {
	// NextEvent blocks until the next protocol event. Fails with
	// x11.ErrConnectionClosed once the connection is gone.
	NextEvent() (x11.Event, error)

	MoveResize(win xproto.Window, r layout.Rect) error
	Raise(win xproto.Window) error
	MapWindow(win xproto.Window) error
	UnmapWindow(win xproto.Window) error
	SetInputFocus(win xproto.Window) error
	FocusRoot() error
	SetBorder(win xproto.Window, width int, color uint32) error
	Kill(win xproto.Window) error
	SelectClientEvents(win xproto.Window) error

	GrabKey(mods uint16, code xproto.Keycode) error
	GrabButton(mods uint16, button xproto.Button) error
	UngrabKey(mods uint16, code xproto.Keycode) error
	UngrabButton(mods uint16, button xproto.Button) error
	UngrabAll()
	Keycodes(name string) []xproto.Keycode

	Geometry(win xproto.Window) (layout.Rect, error)
	OverrideRedirect(win xproto.Window) (bool, error)
	Class(win xproto.Window) (instance, class string, err error)
	NormalHints(win xproto.Window) (x11.SizeHints, error)
	UrgencyHint(win xproto.Window) (bool, error)
	Outputs() ([]x11.OutputInfo, error)

	SetCurrentDesktop(index int) error
	SetClientList(wins []xproto.Window) error
	SetActiveWindow(win xproto.Window) error
	SetFullscreenState(win xproto.Window, fullscreen bool) error
	SetDemandsAttention(win xproto.Window, on bool) error
}

var _ Session = (*x11.Session)(nil)
