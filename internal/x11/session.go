package x11

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xinerama"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/rs/zerolog"

	"github.com/1broseidon/lepus/internal/layout"
)

// ErrConnectionClosed is returned by NextEvent once the display
// connection is gone. The event stream never restarts.
var ErrConnectionClosed = errors.New("x11: connection closed")

// OutputInfo describes one physical display output.
type OutputInfo struct {
	Name     string
	Geometry layout.Rect
}

// SizeHints are the WM_NORMAL_HINTS size constraints a client
// declared. Zero means the client declared no constraint on that axis.
type SizeHints struct {
	MinWidth  int
	MinHeight int
	MaxWidth  int
	MaxHeight int
}

// Constrain forces r's size into the hinted range.
func (h SizeHints) Constrain(r layout.Rect) layout.Rect {
	if h.MinWidth > 0 && r.Width < h.MinWidth {
		r.Width = h.MinWidth
	}
	if h.MinHeight > 0 && r.Height < h.MinHeight {
		r.Height = h.MinHeight
	}
	if h.MaxWidth > 0 && r.Width > h.MaxWidth {
		r.Width = h.MaxWidth
	}
	if h.MaxHeight > 0 && r.Height > h.MaxHeight {
		r.Height = h.MaxHeight
	}
	return r
}

// Session owns the connection to the X server. All requests are
// fire-and-forget: replies are not waited on unless a query needs one.
type Session struct {
	xu     *xgbutil.XUtil
	root   xproto.Window
	log    zerolog.Logger
	ignore uint16 // lock modifier bits stripped from input state
	check  xproto.Window
}

// Connect establishes the display connection and initializes the
// keybind keysym tables.
func Connect(log zerolog.Logger) (*Session, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, fmt.Errorf("connect to display: %w", err)
	}
	keybind.Initialize(xu)

	s := &Session{
		xu:   xu,
		root: xu.RootWin(),
		log:  log,
	}
	s.ignore = s.lockMods()

	// Output hot-plug notifications are best-effort: without RandR we
	// still run, just without reacting to monitor changes.
	if err := randr.Init(xu.Conn()); err == nil {
		randr.SelectInput(xu.Conn(), s.root,
			randr.NotifyMaskScreenChange|randr.NotifyMaskCrtcChange|randr.NotifyMaskOutputChange)
	} else {
		log.Debug().Err(err).Msg("randr unavailable, output hot-plug disabled")
	}

	return s, nil
}

// Root returns the root window identifier.
func (s *Session) Root() xproto.Window { return s.root }

// ManageRoot claims window-management rights on the root window.
// Fails if another window manager is already running.
func (s *Session) ManageRoot() error {
	mask := uint32(xproto.EventMaskSubstructureRedirect |
		xproto.EventMaskSubstructureNotify |
		xproto.EventMaskStructureNotify |
		xproto.EventMaskPropertyChange)
	err := xproto.ChangeWindowAttributesChecked(s.xu.Conn(), s.root,
		xproto.CwEventMask, []uint32{mask}).Check()
	if err != nil {
		return fmt.Errorf("another window manager is running: %w", err)
	}
	return nil
}

// NextEvent blocks until the next supported protocol event arrives.
// Protocol errors for individual requests are logged and skipped; a
// closed connection surfaces as ErrConnectionClosed.
func (s *Session) NextEvent() (Event, error) {
	for {
		ev, xerr := s.xu.Conn().WaitForEvent()
		if ev == nil && xerr == nil {
			return nil, ErrConnectionClosed
		}
		if xerr != nil {
			// Usually a request against a window that vanished in
			// flight. Not fatal, the destroy event is still queued.
			s.log.Debug().Str("error", xerr.Error()).Msg("protocol error")
			continue
		}

		switch e := ev.(type) {
		case xproto.MapRequestEvent:
			return MapRequest{Window: e.Window}, nil
		case xproto.UnmapNotifyEvent:
			return UnmapNotify{Window: e.Window}, nil
		case xproto.DestroyNotifyEvent:
			return DestroyNotify{Window: e.Window}, nil
		case xproto.ConfigureRequestEvent:
			return ConfigureRequest{
				Window: e.Window,
				Geometry: layout.Rect{
					X: int(e.X), Y: int(e.Y),
					Width: int(e.Width), Height: int(e.Height),
				},
				Mask: e.ValueMask,
			}, nil
		case xproto.EnterNotifyEvent:
			return EnterNotify{Window: e.Event}, nil
		case xproto.FocusInEvent:
			return FocusIn{Window: e.Event}, nil
		case xproto.KeyPressEvent:
			return KeyPress{Keycode: e.Detail, State: s.NormalizeMods(e.State)}, nil
		case xproto.ButtonPressEvent:
			return ButtonPress{
				Button: xproto.Button(e.Detail),
				State:  s.NormalizeMods(e.State),
				Child:  e.Child,
				RootX:  int(e.RootX),
				RootY:  int(e.RootY),
			}, nil
		case xproto.ButtonReleaseEvent:
			return ButtonRelease{Button: xproto.Button(e.Detail)}, nil
		case xproto.MotionNotifyEvent:
			return MotionNotify{
				State: e.State,
				RootX: int(e.RootX),
				RootY: int(e.RootY),
			}, nil
		case xproto.PropertyNotifyEvent:
			if e.Atom == xproto.AtomWmHints {
				return HintsChange{Window: e.Window}, nil
			}
			continue
		case randr.ScreenChangeNotifyEvent:
			return OutputChange{}, nil
		case randr.NotifyEvent:
			return OutputChange{}, nil
		default:
			_ = e
		}
	}
}

// MoveResize applies the given geometry to a window.
func (s *Session) MoveResize(win xproto.Window, r layout.Rect) error {
	mask := uint16(xproto.ConfigWindowX | xproto.ConfigWindowY |
		xproto.ConfigWindowWidth | xproto.ConfigWindowHeight)
	xproto.ConfigureWindow(s.xu.Conn(), win, mask, []uint32{
		uint32(r.X), uint32(r.Y), uint32(r.Width), uint32(r.Height),
	})
	return nil
}

// Raise puts a window at the top of the stacking order.
func (s *Session) Raise(win xproto.Window) error {
	xproto.ConfigureWindow(s.xu.Conn(), win, xproto.ConfigWindowStackMode,
		[]uint32{xproto.StackModeAbove})
	return nil
}

// MapWindow makes a window visible.
func (s *Session) MapWindow(win xproto.Window) error {
	xproto.MapWindow(s.xu.Conn(), win)
	return nil
}

// UnmapWindow hides a window.
func (s *Session) UnmapWindow(win xproto.Window) error {
	xproto.UnmapWindow(s.xu.Conn(), win)
	return nil
}

// SetInputFocus directs keyboard input to the given window.
func (s *Session) SetInputFocus(win xproto.Window) error {
	xproto.SetInputFocus(s.xu.Conn(), xproto.InputFocusPointerRoot, win,
		xproto.TimeCurrentTime)
	return nil
}

// FocusRoot releases input focus back to the root window.
func (s *Session) FocusRoot() error {
	return s.SetInputFocus(s.root)
}

// SetBorder configures a window's border width and color.
func (s *Session) SetBorder(win xproto.Window, width int, color uint32) error {
	xproto.ConfigureWindow(s.xu.Conn(), win, xproto.ConfigWindowBorderWidth,
		[]uint32{uint32(width)})
	xproto.ChangeWindowAttributes(s.xu.Conn(), win, xproto.CwBorderPixel,
		[]uint32{color})
	return nil
}

// Kill forcibly disconnects the client owning the window.
func (s *Session) Kill(win xproto.Window) error {
	xproto.KillClient(s.xu.Conn(), uint32(win))
	return nil
}

// SelectClientEvents subscribes to the per-client events the engine
// needs: pointer crossings and structure changes.
func (s *Session) SelectClientEvents(win xproto.Window) error {
	mask := uint32(xproto.EventMaskEnterWindow |
		xproto.EventMaskStructureNotify |
		xproto.EventMaskPropertyChange)
	xproto.ChangeWindowAttributes(s.xu.Conn(), win, xproto.CwEventMask,
		[]uint32{mask})
	return nil
}

// GrabKey grabs a key chord on the root window. Lock modifiers are
// grabbed in every combination so CapsLock and NumLock do not mask
// bindings.
func (s *Session) GrabKey(mods uint16, code xproto.Keycode) error {
	for _, variant := range s.lockVariants() {
		xproto.GrabKey(s.xu.Conn(), true, s.root, mods|variant, code,
			xproto.GrabModeAsync, xproto.GrabModeAsync)
	}
	return nil
}

// GrabButton grabs a pointer button chord on the root window.
func (s *Session) GrabButton(mods uint16, button xproto.Button) error {
	mask := uint16(xproto.EventMaskButtonPress |
		xproto.EventMaskButtonRelease |
		xproto.EventMaskButtonMotion)
	for _, variant := range s.lockVariants() {
		xproto.GrabButton(s.xu.Conn(), true, s.root, mask,
			xproto.GrabModeAsync, xproto.GrabModeAsync,
			xproto.WindowNone, xproto.CursorNone,
			byte(button), mods|variant)
	}
	return nil
}

// UngrabKey releases one key chord grab, including its lock-modifier
// variants.
func (s *Session) UngrabKey(mods uint16, code xproto.Keycode) error {
	for _, variant := range s.lockVariants() {
		xproto.UngrabKey(s.xu.Conn(), code, s.root, mods|variant)
	}
	return nil
}

// UngrabButton releases one pointer button chord grab.
func (s *Session) UngrabButton(mods uint16, button xproto.Button) error {
	for _, variant := range s.lockVariants() {
		xproto.UngrabButton(s.xu.Conn(), byte(button), s.root, mods|variant)
	}
	return nil
}

// UngrabAll releases every key and button grab held on the root.
func (s *Session) UngrabAll() {
	xproto.UngrabKey(s.xu.Conn(), xproto.GrabAny, s.root, xproto.ModMaskAny)
	xproto.UngrabButton(s.xu.Conn(), xproto.ButtonIndexAny, s.root, xproto.ModMaskAny)
}

// Geometry queries a window's current geometry.
func (s *Session) Geometry(win xproto.Window) (layout.Rect, error) {
	reply, err := xproto.GetGeometry(s.xu.Conn(), xproto.Drawable(win)).Reply()
	if err != nil {
		return layout.Rect{}, fmt.Errorf("get geometry of %d: %w", win, err)
	}
	return layout.Rect{
		X: int(reply.X), Y: int(reply.Y),
		Width: int(reply.Width), Height: int(reply.Height),
	}, nil
}

// OverrideRedirect reports whether the window opts out of management.
func (s *Session) OverrideRedirect(win xproto.Window) (bool, error) {
	reply, err := xproto.GetWindowAttributes(s.xu.Conn(), win).Reply()
	if err != nil {
		return false, fmt.Errorf("get attributes of %d: %w", win, err)
	}
	return reply.OverrideRedirect, nil
}

// Class returns a window's WM_CLASS instance and class strings.
func (s *Session) Class(win xproto.Window) (string, string, error) {
	cls, err := icccm.WmClassGet(s.xu, win)
	if err != nil {
		return "", "", fmt.Errorf("get class of %d: %w", win, err)
	}
	return cls.Instance, cls.Class, nil
}

// NormalHints reads a window's WM_NORMAL_HINTS size constraints.
// Only program-specified minimum and maximum sizes are kept.
func (s *Session) NormalHints(win xproto.Window) (SizeHints, error) {
	nh, err := icccm.WmNormalHintsGet(s.xu, win)
	if err != nil {
		return SizeHints{}, fmt.Errorf("get normal hints of %d: %w", win, err)
	}
	var h SizeHints
	if nh.Flags&icccm.SizeHintPMinSize != 0 {
		h.MinWidth = int(nh.MinWidth)
		h.MinHeight = int(nh.MinHeight)
	}
	if nh.Flags&icccm.SizeHintPMaxSize != 0 {
		h.MaxWidth = int(nh.MaxWidth)
		h.MaxHeight = int(nh.MaxHeight)
	}
	return h, nil
}

// UrgencyHint reports whether the window's WM_HINTS urgency flag is
// set.
func (s *Session) UrgencyHint(win xproto.Window) (bool, error) {
	hints, err := icccm.WmHintsGet(s.xu, win)
	if err != nil {
		return false, fmt.Errorf("get hints of %d: %w", win, err)
	}
	return hints.Flags&icccm.HintUrgency != 0, nil
}

// Keycodes resolves a keysym name ("Return", "j", "space") to the
// keycodes producing it.
func (s *Session) Keycodes(name string) []xproto.Keycode {
	return keybind.StrToKeycodes(s.xu, name)
}

// Outputs queries the physical display outputs via Xinerama, falling
// back to a single output covering the root window.
func (s *Session) Outputs() ([]OutputInfo, error) {
	if err := xinerama.Init(s.xu.Conn()); err == nil {
		if reply, err := xinerama.QueryScreens(s.xu.Conn()).Reply(); err == nil && len(reply.ScreenInfo) > 0 {
			outputs := make([]OutputInfo, 0, len(reply.ScreenInfo))
			for i, info := range reply.ScreenInfo {
				outputs = append(outputs, OutputInfo{
					Name: fmt.Sprintf("output-%d", i),
					Geometry: layout.Rect{
						X: int(info.XOrg), Y: int(info.YOrg),
						Width: int(info.Width), Height: int(info.Height),
					},
				})
			}
			return outputs, nil
		}
	}

	geom, err := xproto.GetGeometry(s.xu.Conn(), xproto.Drawable(s.root)).Reply()
	if err != nil {
		return nil, fmt.Errorf("query root geometry: %w", err)
	}
	return []OutputInfo{{
		Name: "output-0",
		Geometry: layout.Rect{
			Width: int(geom.Width), Height: int(geom.Height),
		},
	}}, nil
}

// NormalizeMods strips lock and button state bits so chord matching is
// independent of CapsLock/NumLock and pressed buttons.
func (s *Session) NormalizeMods(state uint16) uint16 {
	const buttonBits = xproto.KeyButMaskButton1 | xproto.KeyButMaskButton2 |
		xproto.KeyButMaskButton3 | xproto.KeyButMaskButton4 | xproto.KeyButMaskButton5
	return state &^ (s.ignore | uint16(buttonBits))
}

// Close shuts the display connection down. NextEvent fails with
// ErrConnectionClosed afterwards.
func (s *Session) Close() {
	s.xu.Conn().Close()
}

// lockMods resolves the modifier bits occupied by lock keys.
func (s *Session) lockMods() uint16 {
	ignore := uint16(xproto.ModMaskLock)
	for _, name := range []string{"Num_Lock", "Scroll_Lock"} {
		for _, code := range keybind.StrToKeycodes(s.xu, name) {
			if mask := keybind.ModGet(s.xu, code); mask != 0 {
				ignore |= mask
			}
		}
	}
	return ignore
}

// lockVariants enumerates every combination of the ignored lock bits,
// including none.
func (s *Session) lockVariants() []uint16 {
	bits := []uint16{}
	for bit := uint16(1); bit != 0; bit <<= 1 {
		if s.ignore&bit != 0 {
			bits = append(bits, bit)
		}
	}
	variants := []uint16{0}
	for _, bit := range bits {
		for _, v := range variants[:len(variants):len(variants)] {
			variants = append(variants, v|bit)
		}
	}
	return variants
}
