package wm

import (
	"github.com/BurntSushi/xgb/xproto"

	"github.com/1broseidon/lepus/internal/layout"
)

// Action is one configured operation over the engine state. Failures
// are reported, logged, and absorbed; they never stop the loop.
type Action func(*Engine) error

// Binding attaches an action to a key chord within a router mode.
type Binding struct {
	// Mode is the router mode the binding lives in; "" means normal.
	Mode string
	Mods []string
	// Key is a keysym name such as "Return", "j", or "space".
	Key    string
	Action Action
}

// MouseBinding attaches an action to a pointer button chord within a
// router mode.
type MouseBinding struct {
	// Mode is the router mode the binding lives in; "" means normal.
	Mode   string
	Mods   []string
	Button xproto.Button
	Action Action
}

// Rule adjusts placement for clients whose WM_CLASS instance or class
// matches. The first matching rule wins per effect.
type Rule struct {
	Class      string
	Workspace  string // "" keeps the client on the active workspace
	Float      bool
	Fullscreen bool
}

// Config is the static configuration surface, captured once before
// the engine loop starts and never mutated afterwards.
type Config struct {
	// Workspaces are the logical desktop names, in order.
	Workspaces []string
	// Layouts is the strategy list every workspace cycles through.
	Layouts  []layout.Layout
	Bindings []Binding
	// MouseBindings route grabbed button chords; chords left unbound
	// here fall through to the built-in drag handling.
	MouseBindings []MouseBinding
	// Modes declares the non-normal router modes referenced by
	// bindings and Enter/ExitMode actions.
	Modes []string
	Rules []Rule

	// MouseMod held with button 1 drags floating clients, with
	// button 3 resizes them.
	MouseMod []string

	// Reserved is screen space excluded from every output's usable
	// area, e.g. for a bar the manager does not own.
	Reserved Insets

	BorderWidth      int
	BorderColor      uint32
	BorderColorFocus uint32
}
