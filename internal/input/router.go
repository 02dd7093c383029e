// Package input maps key and button chords to configured actions.
//
// Bindings live in per-mode tables. Chord matching is exact: the
// normalized modifier mask plus the keycode, order-independent in the
// modifiers by construction (masks are bitwise-or'd). Duplicate
// registrations within a mode are rejected: the first registration
// wins.
package input

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/xgb/xproto"
)

// ModeNormal is the initial router mode. It always exists.
const ModeNormal = "normal"

var (
	// ErrDuplicateBinding reports a chord already bound in the mode.
	ErrDuplicateBinding = errors.New("input: duplicate binding")
	// ErrUnknownMode reports a mode that was never declared.
	ErrUnknownMode = errors.New("input: unknown mode")
)

// ParseMods converts modifier names to an X modifier mask.
func ParseMods(names []string) (uint16, error) {
	var mask uint16
	for _, name := range names {
		switch strings.ToLower(name) {
		case "shift":
			mask |= xproto.ModMaskShift
		case "control", "ctrl":
			mask |= xproto.ModMaskControl
		case "mod1", "alt", "meta":
			mask |= xproto.ModMask1
		case "mod4", "super", "win", "hyper":
			mask |= xproto.ModMask4
		default:
			return 0, fmt.Errorf("input: unknown modifier %q", name)
		}
	}
	return mask, nil
}

type keyChord struct {
	mods uint16
	code xproto.Keycode
}

type buttonChord struct {
	mods   uint16
	button xproto.Button
}

type table struct {
	keys    map[keyChord]func()
	buttons map[buttonChord]func()
}

func newTable() *table {
	return &table{
		keys:    make(map[keyChord]func()),
		buttons: make(map[buttonChord]func()),
	}
}

// Router resolves input chords against the table of the current mode.
type Router struct {
	tables map[string]*table
	mode   string
}

// NewRouter creates a router holding only the normal mode.
func NewRouter() *Router {
	return &Router{
		tables: map[string]*table{ModeNormal: newTable()},
		mode:   ModeNormal,
	}
}

// DeclareMode registers an additional mode. Declaring a mode twice or
// redeclaring the normal mode is a no-op.
func (r *Router) DeclareMode(name string) {
	if _, ok := r.tables[name]; !ok {
		r.tables[name] = newTable()
	}
}

// BindKey registers a key chord in the given mode. The first
// registration for a chord wins; later duplicates fail.
func (r *Router) BindKey(mode string, mods uint16, code xproto.Keycode, do func()) error {
	t, ok := r.tables[mode]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
	chord := keyChord{mods: mods, code: code}
	if _, exists := t.keys[chord]; exists {
		return fmt.Errorf("%w: mode %q mods %#x keycode %d", ErrDuplicateBinding, mode, mods, code)
	}
	t.keys[chord] = do
	return nil
}

// BindButton registers a pointer button chord in the given mode.
func (r *Router) BindButton(mode string, mods uint16, button xproto.Button, do func()) error {
	t, ok := r.tables[mode]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
	chord := buttonChord{mods: mods, button: button}
	if _, exists := t.buttons[chord]; exists {
		return fmt.Errorf("%w: mode %q mods %#x button %d", ErrDuplicateBinding, mode, mods, button)
	}
	t.buttons[chord] = do
	return nil
}

// ResolveKey returns the action bound to the chord in the current
// mode, or false when the chord is unbound.
func (r *Router) ResolveKey(mods uint16, code xproto.Keycode) (func(), bool) {
	do, ok := r.tables[r.mode].keys[keyChord{mods: mods, code: code}]
	return do, ok
}

// ResolveButton returns the action bound to the button chord in the
// current mode.
func (r *Router) ResolveButton(mods uint16, button xproto.Button) (func(), bool) {
	do, ok := r.tables[r.mode].buttons[buttonChord{mods: mods, button: button}]
	return do, ok
}

// EnterMode switches the active binding table.
func (r *Router) EnterMode(name string) error {
	if _, ok := r.tables[name]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownMode, name)
	}
	r.mode = name
	return nil
}

// ExitMode returns to the normal mode.
func (r *Router) ExitMode() {
	r.mode = ModeNormal
}

// Mode reports the active mode name.
func (r *Router) Mode() string { return r.mode }

// KeyChords visits every key chord bound in one mode. Used to install
// and release grabs on mode transitions. Unknown modes visit nothing.
func (r *Router) KeyChords(mode string, visit func(mods uint16, code xproto.Keycode)) {
	t, ok := r.tables[mode]
	if !ok {
		return
	}
	for chord := range t.keys {
		visit(chord.mods, chord.code)
	}
}

// ButtonChords visits every button chord bound in one mode.
func (r *Router) ButtonChords(mode string, visit func(mods uint16, button xproto.Button)) {
	t, ok := r.tables[mode]
	if !ok {
		return
	}
	for chord := range t.buttons {
		visit(chord.mods, chord.button)
	}
}
