package wm

import (
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/rs/zerolog"

	"github.com/1broseidon/lepus/internal/input"
	"github.com/1broseidon/lepus/internal/layout"
	"github.com/1broseidon/lepus/internal/x11"
)

// enterFocusSuppress is how long after a layout change enter-notify
// events are ignored, so pointer crossings caused by windows moving
// under a stationary pointer do not steal focus.
const enterFocusSuppress = 100 * time.Millisecond

// dragButtonMove and dragButtonResize are the pointer buttons that,
// held with the configured mouse modifier, drag floating clients.
const (
	dragButtonMove   = xproto.Button(1)
	dragButtonResize = xproto.Button(3)
)

const minDragSize = 32

type drag struct {
	win    xproto.Window
	resize bool
	startX int
	startY int
	orig   layout.Rect
}

type keyGrab struct {
	mods uint16
	code xproto.Keycode
}

type buttonGrab struct {
	mods   uint16
	button xproto.Button
}

// Engine is the single-threaded window-management state machine. All
// state mutation happens on the goroutine running Run; no locking.
type Engine struct {
	session Session
	log     zerolog.Logger
	cfg     Config

	registry   *Registry
	workspaces *Workspaces
	outputs    *Outputs
	router     *input.Router

	mouseMod uint16

	focused       xproto.Window // global input focus, 0 when none
	focusedOutput string

	drag             *drag
	lastLayoutChange time.Time

	// Grabs held while in normal mode. Chords bound only in other
	// modes are grabbed on mode entry and released on exit, so they
	// pass through to clients the rest of the time.
	grabbedKeys     map[keyGrab]bool
	grabbedButtons  map[buttonGrab]bool
	modeKeyGrabs    []keyGrab
	modeButtonGrabs []buttonGrab

	reservedOff bool

	// pendingUnmaps counts unmaps the engine issued itself (workspace
	// switches, sends) so the resulting unmap-notify events are not
	// mistaken for clients withdrawing.
	pendingUnmaps map[xproto.Window]int

	quit bool
}

// New validates the configuration and builds an engine. The session
// must already be connected; grabs and output discovery happen in Run.
func New(session Session, cfg Config, log zerolog.Logger) (*Engine, error) {
	if len(cfg.Layouts) == 0 {
		return nil, errors.New("wm: at least one layout is required")
	}
	workspaces, err := NewWorkspaces(cfg.Workspaces)
	if err != nil {
		return nil, err
	}
	mouseMod, err := input.ParseMods(cfg.MouseMod)
	if err != nil {
		return nil, fmt.Errorf("mouse modifier: %w", err)
	}
	return &Engine{
		session:        session,
		log:            log,
		cfg:            cfg,
		registry:       NewRegistry(),
		workspaces:     workspaces,
		outputs:        NewOutputs(),
		router:         input.NewRouter(),
		mouseMod:       mouseMod,
		grabbedKeys:    make(map[keyGrab]bool),
		grabbedButtons: make(map[buttonGrab]bool),
		pendingUnmaps:  make(map[xproto.Window]int),
	}, nil
}

// Run installs grabs, discovers outputs, and consumes the event
// stream until an explicit quit or a fatal connection loss.
func (e *Engine) Run() error {
	e.bindInputs()
	if err := e.reconcileOutputs(); err != nil {
		return err
	}
	if e.outputs.Len() == 0 {
		return errors.New("wm: no display outputs")
	}
	e.log.Info().
		Int("outputs", e.outputs.Len()).
		Int("workspaces", len(e.workspaces.Names())).
		Msg("engine running")

	for !e.quit {
		ev, err := e.session.NextEvent()
		if err != nil {
			e.shutdown()
			return fmt.Errorf("event stream: %w", err)
		}
		e.dispatch(ev)
	}
	e.shutdown()
	return nil
}

func (e *Engine) dispatch(ev x11.Event) {
	switch ev := ev.(type) {
	case x11.MapRequest:
		e.manage(ev.Window)
	case x11.UnmapNotify:
		e.unmanage(ev.Window)
	case x11.DestroyNotify:
		e.unmanage(ev.Window)
	case x11.ConfigureRequest:
		e.configureRequest(ev)
	case x11.EnterNotify:
		e.pointerEnter(ev.Window)
	case x11.FocusIn:
		// Server-side focus changes are advisory; the engine's own
		// focus state is authoritative.
	case x11.KeyPress:
		e.keyPress(ev)
	case x11.ButtonPress:
		e.buttonPress(ev)
	case x11.MotionNotify:
		e.motion(ev)
	case x11.HintsChange:
		e.hintsChanged(ev.Window)
	case x11.ButtonRelease:
		e.drag = nil
	case x11.OutputChange:
		if err := e.reconcileOutputs(); err != nil {
			e.log.Warn().Err(err).Msg("output reconcile failed")
		}
	}
}

// bindInputs declares modes, resolves key names, and registers key and
// button bindings. Duplicate chords are a configuration conflict: the
// first registration wins, later ones are logged and dropped. Only the
// normal mode's chords are grabbed here; other modes swap their grabs
// in on entry so mode-only chords reach clients while in normal mode.
func (e *Engine) bindInputs() {
	for _, mode := range e.cfg.Modes {
		e.router.DeclareMode(mode)
	}
	for _, b := range e.cfg.Bindings {
		binding := b
		mode := binding.Mode
		if mode == "" {
			mode = input.ModeNormal
		}
		mods, err := input.ParseMods(binding.Mods)
		if err != nil {
			e.log.Warn().Err(err).Str("key", binding.Key).Msg("binding dropped")
			continue
		}
		codes := e.session.Keycodes(binding.Key)
		if len(codes) == 0 {
			e.log.Warn().Str("key", binding.Key).Msg("key name resolves to no keycode")
			continue
		}
		for _, code := range codes {
			err := e.router.BindKey(mode, mods, code, func() {
				if err := binding.Action(e); err != nil {
					e.log.Warn().Err(err).Str("key", binding.Key).Msg("action failed")
				}
			})
			if errors.Is(err, input.ErrDuplicateBinding) {
				e.log.Warn().Str("key", binding.Key).Str("mode", mode).
					Msg("duplicate binding, first registration wins")
			} else if err != nil {
				e.log.Warn().Err(err).Str("key", binding.Key).Msg("binding dropped")
			}
		}
	}
	for _, mb := range e.cfg.MouseBindings {
		binding := mb
		mode := binding.Mode
		if mode == "" {
			mode = input.ModeNormal
		}
		mods, err := input.ParseMods(binding.Mods)
		if err != nil {
			e.log.Warn().Err(err).Uint8("button", uint8(binding.Button)).Msg("mouse binding dropped")
			continue
		}
		err = e.router.BindButton(mode, mods, binding.Button, func() {
			if err := binding.Action(e); err != nil {
				e.log.Warn().Err(err).Uint8("button", uint8(binding.Button)).Msg("action failed")
			}
		})
		if errors.Is(err, input.ErrDuplicateBinding) {
			e.log.Warn().Uint8("button", uint8(binding.Button)).Str("mode", mode).
				Msg("duplicate mouse binding, first registration wins")
		} else if err != nil {
			e.log.Warn().Err(err).Uint8("button", uint8(binding.Button)).Msg("mouse binding dropped")
		}
	}

	e.router.KeyChords(input.ModeNormal, func(mods uint16, code xproto.Keycode) {
		if err := e.session.GrabKey(mods, code); err != nil {
			e.log.Warn().Err(err).Uint8("keycode", uint8(code)).Msg("grab failed")
			return
		}
		e.grabbedKeys[keyGrab{mods: mods, code: code}] = true
	})
	e.router.ButtonChords(input.ModeNormal, func(mods uint16, button xproto.Button) {
		e.session.GrabButton(mods, button)
		e.grabbedButtons[buttonGrab{mods: mods, button: button}] = true
	})
	for _, button := range []xproto.Button{dragButtonMove, dragButtonResize} {
		e.session.GrabButton(e.mouseMod, button)
		e.grabbedButtons[buttonGrab{mods: e.mouseMod, button: button}] = true
	}
}

// enterMode switches the router mode and grabs the chords bound only
// in the entered mode.
func (e *Engine) enterMode(name string) error {
	if err := e.router.EnterMode(name); err != nil {
		return err
	}
	e.releaseModeGrabs()
	if name == input.ModeNormal {
		return nil
	}
	e.router.KeyChords(name, func(mods uint16, code xproto.Keycode) {
		ref := keyGrab{mods: mods, code: code}
		if e.grabbedKeys[ref] {
			return
		}
		if err := e.session.GrabKey(mods, code); err != nil {
			e.log.Warn().Err(err).Uint8("keycode", uint8(code)).Msg("mode grab failed")
			return
		}
		e.modeKeyGrabs = append(e.modeKeyGrabs, ref)
	})
	e.router.ButtonChords(name, func(mods uint16, button xproto.Button) {
		ref := buttonGrab{mods: mods, button: button}
		if e.grabbedButtons[ref] {
			return
		}
		e.session.GrabButton(mods, button)
		e.modeButtonGrabs = append(e.modeButtonGrabs, ref)
	})
	return nil
}

// exitMode returns to the normal mode and releases mode-only grabs so
// their chords pass through to clients again.
func (e *Engine) exitMode() {
	e.router.ExitMode()
	e.releaseModeGrabs()
}

func (e *Engine) releaseModeGrabs() {
	for _, ref := range e.modeKeyGrabs {
		e.session.UngrabKey(ref.mods, ref.code)
	}
	e.modeKeyGrabs = nil
	for _, ref := range e.modeButtonGrabs {
		e.session.UngrabButton(ref.mods, ref.button)
	}
	e.modeButtonGrabs = nil
}

// manage adopts a window after a map request. Override-redirect
// windows are observed but never tiled or assigned a workspace.
func (e *Engine) manage(win xproto.Window) {
	if _, ok := e.registry.Lookup(win); ok {
		e.session.MapWindow(win)
		return
	}
	override, err := e.session.OverrideRedirect(win)
	if err != nil {
		// The window likely vanished between the request and now.
		e.log.Debug().Uint32("window", uint32(win)).Err(err).Msg("attribute query failed")
		return
	}
	if override {
		e.session.MapWindow(win)
		return
	}

	geom, err := e.session.Geometry(win)
	if err != nil {
		e.log.Debug().Uint32("window", uint32(win)).Err(err).Msg("geometry query failed")
		return
	}
	// Size hints are advisory; a window without them gets the zero
	// value, which constrains nothing.
	hints, err := e.session.NormalHints(win)
	if err != nil {
		hints = x11.SizeHints{}
	}
	c, err := e.registry.Register(win, geom, hints)
	if err != nil {
		e.log.Warn().Uint32("window", uint32(win)).Err(err).Msg("register failed")
		return
	}

	target := e.activeWorkspaceName()
	fullscreen := false
	if instance, class, err := e.session.Class(win); err == nil {
		target, fullscreen = e.applyRules(c, instance, class, target)
	}
	if err := e.workspaces.Assign(c, target); err != nil {
		// Rules referenced a workspace that does not exist; fall back.
		e.log.Warn().Err(err).Msg("rule workspace missing")
		target = e.activeWorkspaceName()
		_ = e.workspaces.Assign(c, target)
	}

	e.session.SelectClientEvents(win)
	e.publishClientList()

	if e.workspaceVisible(target) {
		c.Mapped = true
		e.session.MapWindow(win)
		e.retile(target)
		e.focusClient(c, true)
	} else {
		// Opened out of sight; flag it so the operator notices.
		e.markUrgent(c)
	}
	if fullscreen {
		e.setFullscreen(c, true)
	}
	e.log.Info().
		Uint32("window", uint32(win)).
		Str("workspace", target).
		Str("mode", c.Mode.String()).
		Msg("managed")
}

// applyRules matches WM_CLASS against the configured rules. The first
// matching rule wins per effect.
func (e *Engine) applyRules(c *Client, instance, class, target string) (string, bool) {
	fullscreen := false
	placed := false
	for _, rule := range e.cfg.Rules {
		if rule.Class != instance && rule.Class != class {
			continue
		}
		if rule.Workspace != "" && !placed {
			target = rule.Workspace
			placed = true
		}
		if rule.Float {
			c.Mode = ModeFloating
		}
		if rule.Fullscreen {
			fullscreen = true
		}
	}
	return target, fullscreen
}

// unmanage drops a window from the engine. Unknown windows and
// engine-issued unmaps are no-ops.
func (e *Engine) unmanage(win xproto.Window) {
	if n := e.pendingUnmaps[win]; n > 0 {
		if n == 1 {
			delete(e.pendingUnmaps, win)
		} else {
			e.pendingUnmaps[win] = n - 1
		}
		return
	}
	c, ok := e.registry.Lookup(win)
	if !ok {
		return
	}
	ws, _ := e.workspaces.Get(c.Workspace)
	idx := -1
	if ws != nil {
		idx = ws.indexOf(win)
	}
	e.workspaces.Remove(c)
	e.registry.Unregister(win)
	e.publishClientList()

	if ws != nil && e.workspaceVisible(ws.Name) {
		e.retile(ws.Name)
		if e.focused == win {
			e.focused = 0
			e.focusFallback(ws, idx)
		}
	} else if e.focused == win {
		e.focused = 0
	}
	e.log.Info().Uint32("window", uint32(win)).Msg("unmanaged")
}

// configureRequest honors geometry wishes from unmanaged and floating
// windows; tiled clients get their layout geometry re-asserted.
func (e *Engine) configureRequest(ev x11.ConfigureRequest) {
	c, ok := e.registry.Lookup(ev.Window)
	if !ok {
		e.session.MoveResize(ev.Window, ev.Geometry)
		return
	}
	switch c.Mode {
	case ModeFloating:
		r := c.Hints.Constrain(ev.Geometry)
		if out := e.outputFor(c); out != nil {
			r = layout.Clamp(r, out.Usable)
		}
		c.Geometry = r
		e.session.MoveResize(c.ID, r)
	case ModeTiled, ModeFullscreen:
		if e.workspaceVisible(c.Workspace) {
			e.retile(c.Workspace)
		}
	}
}

// hintsChanged re-reads a client's WM_HINTS after a property change.
// An urgency demand from an unfocused client sets the urgency flag and
// publishes it; withdrawing the demand clears both.
func (e *Engine) hintsChanged(win xproto.Window) {
	c, ok := e.registry.Lookup(win)
	if !ok {
		return
	}
	urgent, err := e.session.UrgencyHint(win)
	if err != nil {
		return
	}
	if urgent && win != e.focused && !c.Urgent {
		e.markUrgent(c)
		e.log.Info().Uint32("window", uint32(win)).Msg("client demands attention")
	} else if !urgent && c.Urgent {
		e.clearUrgent(c)
	}
}

func (e *Engine) markUrgent(c *Client) {
	c.Urgent = true
	e.session.SetDemandsAttention(c.ID, true)
}

func (e *Engine) clearUrgent(c *Client) {
	if !c.Urgent {
		return
	}
	c.Urgent = false
	e.session.SetDemandsAttention(c.ID, false)
}

// pointerEnter implements focus-follows-mouse with a suppression
// window after layout changes.
func (e *Engine) pointerEnter(win xproto.Window) {
	if time.Since(e.lastLayoutChange) < enterFocusSuppress {
		return
	}
	c, ok := e.registry.Lookup(win)
	if !ok || !c.Mapped {
		return
	}
	e.focusClient(c, false)
}

func (e *Engine) keyPress(ev x11.KeyPress) {
	if do, ok := e.router.ResolveKey(ev.State, ev.Keycode); ok {
		do()
	}
}

// buttonPress resolves configured button bindings first, then falls
// back to starting a pointer drag on floating clients.
func (e *Engine) buttonPress(ev x11.ButtonPress) {
	if do, ok := e.router.ResolveButton(ev.State, ev.Button); ok {
		do()
		return
	}
	if ev.Child == 0 || ev.State != e.mouseMod {
		return
	}
	c, ok := e.registry.Lookup(ev.Child)
	if !ok {
		return
	}
	e.focusClient(c, true)
	if c.Mode != ModeFloating && !e.activeLayout(c.Workspace).Motions() {
		return
	}
	switch ev.Button {
	case dragButtonMove:
		e.drag = &drag{win: c.ID, startX: ev.RootX, startY: ev.RootY, orig: c.Geometry}
	case dragButtonResize:
		e.drag = &drag{win: c.ID, resize: true, startX: ev.RootX, startY: ev.RootY, orig: c.Geometry}
	}
}

func (e *Engine) motion(ev x11.MotionNotify) {
	if e.drag == nil {
		return
	}
	c, ok := e.registry.Lookup(e.drag.win)
	if !ok {
		e.drag = nil
		return
	}
	dx := ev.RootX - e.drag.startX
	dy := ev.RootY - e.drag.startY
	r := e.drag.orig
	if e.drag.resize {
		r.Width += dx
		r.Height += dy
		if r.Width < minDragSize {
			r.Width = minDragSize
		}
		if r.Height < minDragSize {
			r.Height = minDragSize
		}
		r = c.Hints.Constrain(r)
	} else {
		r.X += dx
		r.Y += dy
	}
	c.Geometry = r
	e.session.MoveResize(c.ID, r)
}

// reconcileOutputs refreshes the output set from the server, binds
// workspaces to new outputs, and migrates workspaces away from
// disconnected ones without dropping any client.
func (e *Engine) reconcileOutputs() error {
	infos, err := e.session.Outputs()
	if err != nil {
		return fmt.Errorf("query outputs: %w", err)
	}
	removed := e.outputs.update(infos, e.reserved())

	// Give fresh outputs a visible workspace: the first declared
	// workspace not yet visible anywhere.
	for _, out := range e.outputs.All() {
		if out.Workspace != "" {
			continue
		}
		for _, name := range e.workspaces.Names() {
			if !e.workspaceVisible(name) {
				ws, _ := e.workspaces.Get(name)
				out.Workspace = name
				ws.Output = out.Name
				e.showWorkspace(ws)
				break
			}
		}
	}

	for _, gone := range removed {
		e.migrateWorkspace(gone)
	}

	if e.focusedOutput == "" || !e.outputConnected(e.focusedOutput) {
		if all := e.outputs.All(); len(all) > 0 {
			e.focusedOutput = all[0].Name
		}
	}

	for _, out := range e.outputs.All() {
		if out.Workspace != "" {
			e.retile(out.Workspace)
		}
	}
	return nil
}

// migrateWorkspace rebinds a disconnected output's workspace to a
// remaining output. Its clients stay intact but become hidden, since
// the remaining output already shows its own workspace.
func (e *Engine) migrateWorkspace(gone *Output) {
	if gone.Workspace == "" {
		return
	}
	ws, ok := e.workspaces.Get(gone.Workspace)
	gone.Workspace = ""
	if !ok {
		return
	}
	all := e.outputs.All()
	if len(all) == 0 {
		ws.Output = ""
		return
	}
	target := all[0]
	ws.Output = target.Name
	e.hideWorkspace(ws)
	if ws.contains(e.focused) {
		e.clearFocus()
	}
	e.log.Info().
		Str("workspace", ws.Name).
		Str("from", gone.Name).
		Str("to", target.Name).
		Msg("workspace migrated")
}

func (e *Engine) shutdown() {
	e.session.UngrabAll()
	e.session.SetActiveWindow(0)
	e.session.FocusRoot()
	e.log.Info().Msg("engine stopped")
}

// reserved returns the insets currently applied to output usable
// areas; zero while reserved space is toggled off.
func (e *Engine) reserved() Insets {
	if e.reservedOff {
		return Insets{}
	}
	return e.cfg.Reserved
}

// --- state helpers ---

func (e *Engine) outputConnected(name string) bool {
	o, ok := e.outputs.Get(name)
	return ok && o.Connected
}

func (e *Engine) activeWorkspaceName() string {
	if out, ok := e.outputs.Get(e.focusedOutput); ok && out.Workspace != "" {
		return out.Workspace
	}
	return e.workspaces.Names()[0]
}

func (e *Engine) workspaceVisible(name string) bool {
	ws, ok := e.workspaces.Get(name)
	if !ok || ws.Output == "" {
		return false
	}
	out, ok := e.outputs.Get(ws.Output)
	return ok && out.Connected && out.Workspace == name
}

// outputFor returns the output a client's workspace renders on.
func (e *Engine) outputFor(c *Client) *Output {
	ws, ok := e.workspaces.Get(c.Workspace)
	if !ok || ws.Output == "" {
		return nil
	}
	out, ok := e.outputs.Get(ws.Output)
	if !ok || !out.Connected {
		return nil
	}
	return out
}

func (e *Engine) activeLayout(wsName string) layout.Layout {
	ws, ok := e.workspaces.Get(wsName)
	if !ok {
		return e.cfg.Layouts[0]
	}
	return e.cfg.Layouts[ws.Layout%len(e.cfg.Layouts)]
}

func (e *Engine) publishClientList() {
	e.session.SetClientList(e.registry.Windows())
}

// retile recomputes and applies geometry for one workspace: tiled
// clients from the layout, floating clients clamped to the usable
// area, fullscreen clients over the whole output.
func (e *Engine) retile(wsName string) {
	ws, ok := e.workspaces.Get(wsName)
	if !ok || !e.workspaceVisible(wsName) {
		return
	}
	out, _ := e.outputs.Get(ws.Output)
	lay := e.activeLayout(wsName)

	var tiled []*Client
	for _, win := range ws.clients {
		c, ok := e.registry.Lookup(win)
		if !ok {
			continue
		}
		switch c.Mode {
		case ModeTiled:
			tiled = append(tiled, c)
		case ModeFloating:
			r := layout.Clamp(c.Geometry, out.Usable)
			c.Geometry = r
			e.session.MoveResize(c.ID, r)
			e.applyBorder(c, e.cfg.BorderWidth)
		case ModeFullscreen:
			c.Geometry = out.Geometry
			e.session.MoveResize(c.ID, out.Geometry)
			e.session.Raise(c.ID)
			e.applyBorder(c, 0)
		}
	}

	rects := lay.Compute(len(tiled), out.Usable)
	bw := lay.BorderWidth()
	for i, c := range tiled {
		if rects == nil {
			// Floating passthrough layout: keep geometry, clamp only.
			r := layout.Clamp(c.Geometry, out.Usable)
			c.Geometry = r
			e.session.MoveResize(c.ID, r)
		} else {
			r := rects[i]
			// The X border is drawn outside the window; shrink so the
			// total footprint still fits the computed cell.
			r.Width -= 2 * bw
			r.Height -= 2 * bw
			if r.Width < 1 {
				r.Width = 1
			}
			if r.Height < 1 {
				r.Height = 1
			}
			c.Geometry = r
			e.session.MoveResize(c.ID, r)
		}
		e.applyBorder(c, bw)
	}
	e.lastLayoutChange = time.Now()
}

func (e *Engine) applyBorder(c *Client, width int) {
	color := e.cfg.BorderColor
	if c.ID == e.focused {
		color = e.cfg.BorderColorFocus
	}
	e.session.SetBorder(c.ID, width, color)
}

// focusClient makes a client the process-wide input focus. The client
// must be on a visible workspace; otherwise the call is a no-op.
func (e *Engine) focusClient(c *Client, raise bool) {
	if c == nil {
		e.clearFocus()
		return
	}
	if !e.workspaceVisible(c.Workspace) {
		return
	}
	ws, _ := e.workspaces.Get(c.Workspace)

	if prev, ok := e.registry.Lookup(e.focused); ok && prev.ID != c.ID {
		e.session.SetBorder(prev.ID, e.borderWidthFor(prev), e.cfg.BorderColor)
	}

	e.focused = c.ID
	e.focusedOutput = ws.Output
	ws.Focused = c.ID
	e.clearUrgent(c)

	e.session.SetInputFocus(c.ID)
	e.session.SetActiveWindow(c.ID)
	e.session.SetBorder(c.ID, e.borderWidthFor(c), e.cfg.BorderColorFocus)
	if raise {
		e.session.Raise(c.ID)
	}
}

func (e *Engine) borderWidthFor(c *Client) int {
	switch c.Mode {
	case ModeFullscreen:
		return 0
	case ModeFloating:
		return e.cfg.BorderWidth
	default:
		return e.activeLayout(c.Workspace).BorderWidth()
	}
}

func (e *Engine) clearFocus() {
	if prev, ok := e.registry.Lookup(e.focused); ok {
		e.session.SetBorder(prev.ID, e.borderWidthFor(prev), e.cfg.BorderColor)
	}
	e.focused = 0
	e.session.SetActiveWindow(0)
	e.session.FocusRoot()
}

// focusFallback focuses the client nearest to a removed position in
// the workspace's order, or clears focus if the workspace is empty.
func (e *Engine) focusFallback(ws *Workspace, removedIdx int) {
	if len(ws.clients) == 0 {
		ws.Focused = 0
		e.clearFocus()
		return
	}
	idx := removedIdx
	if idx < 0 {
		idx = 0
	}
	if idx >= len(ws.clients) {
		idx = len(ws.clients) - 1
	}
	if c, ok := e.registry.Lookup(ws.clients[idx]); ok {
		e.focusClient(c, true)
	}
}

// showWorkspace maps a workspace's clients. Used when a workspace
// becomes visible on an output.
func (e *Engine) showWorkspace(ws *Workspace) {
	for _, win := range ws.clients {
		if c, ok := e.registry.Lookup(win); ok {
			c.Mapped = true
			e.clearUrgent(c)
			e.session.MapWindow(win)
		}
	}
}

// hideWorkspace unmaps a workspace's clients, recording the expected
// unmap-notify events so they are not treated as withdrawals.
func (e *Engine) hideWorkspace(ws *Workspace) {
	for _, win := range ws.clients {
		if c, ok := e.registry.Lookup(win); ok && c.Mapped {
			c.Mapped = false
			e.pendingUnmaps[win]++
			e.session.UnmapWindow(win)
		}
	}
}
