package wm

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/1broseidon/lepus/internal/input"
)

// Actions are the verbs a key binding can invoke. Each is a small
// closure factory so the config package can build binding tables
// without reaching into engine internals.

// FocusNext moves focus forward through the visible workspace's
// client order, wrapping at the end.
func FocusNext() Action { return func(e *Engine) error { return e.cycleFocus(1) } }

// FocusPrev moves focus backward, wrapping at the start.
func FocusPrev() Action { return func(e *Engine) error { return e.cycleFocus(-1) } }

func (e *Engine) cycleFocus(dir int) error {
	ws := e.visibleWorkspace()
	if ws == nil || len(ws.clients) == 0 {
		return nil
	}
	idx := ws.indexOf(e.focused)
	if idx < 0 {
		idx = 0
	} else {
		idx = (idx + dir + len(ws.clients)) % len(ws.clients)
	}
	if c, ok := e.registry.Lookup(ws.clients[idx]); ok {
		e.focusClient(c, true)
	}
	return nil
}

// SwapMaster exchanges the focused client with the first client in
// the workspace order, so it takes the layout's primary position.
func SwapMaster() Action {
	return func(e *Engine) error {
		ws := e.visibleWorkspace()
		if ws == nil || len(ws.clients) < 2 {
			return nil
		}
		idx := ws.indexOf(e.focused)
		if idx <= 0 {
			return nil
		}
		ws.clients[0], ws.clients[idx] = ws.clients[idx], ws.clients[0]
		e.retile(ws.Name)
		return nil
	}
}

// SwapNext exchanges the focused client with the one after it in the
// workspace order, wrapping; SwapPrev with the one before it. Focus
// stays on the moved client.
func SwapNext() Action { return func(e *Engine) error { return e.swapAdjacent(1) } }
func SwapPrev() Action { return func(e *Engine) error { return e.swapAdjacent(-1) } }

func (e *Engine) swapAdjacent(dir int) error {
	ws := e.visibleWorkspace()
	if ws == nil || len(ws.clients) < 2 {
		return nil
	}
	idx := ws.indexOf(e.focused)
	if idx < 0 {
		return nil
	}
	other := (idx + dir + len(ws.clients)) % len(ws.clients)
	ws.clients[idx], ws.clients[other] = ws.clients[other], ws.clients[idx]
	e.retile(ws.Name)
	return nil
}

// RotateUp shifts every client one position earlier in the order; the
// first wraps to the end.
func RotateUp() Action { return func(e *Engine) error { return e.rotate(-1) } }

// RotateDown shifts every client one position later; the last wraps
// to the front.
func RotateDown() Action { return func(e *Engine) error { return e.rotate(1) } }

func (e *Engine) rotate(dir int) error {
	ws := e.visibleWorkspace()
	if ws == nil || len(ws.clients) < 2 {
		return nil
	}
	if dir > 0 {
		last := ws.clients[len(ws.clients)-1]
		copy(ws.clients[1:], ws.clients[:len(ws.clients)-1])
		ws.clients[0] = last
	} else {
		first := ws.clients[0]
		copy(ws.clients[:len(ws.clients)-1], ws.clients[1:])
		ws.clients[len(ws.clients)-1] = first
	}
	e.retile(ws.Name)
	return nil
}

// GotoWorkspace shows the named workspace on the focused output. If
// the workspace is already visible on another output, focus moves to
// that output instead of tearing the workspace away.
func GotoWorkspace(name string) Action {
	return func(e *Engine) error { return e.switchWorkspace(name) }
}

func (e *Engine) switchWorkspace(name string) error {
	target, ok := e.workspaces.Get(name)
	if !ok {
		return fmt.Errorf("switch: %w: %q", ErrUnknownWorkspace, name)
	}
	if e.workspaceVisible(name) {
		e.focusedOutput = target.Output
		e.focusWorkspaceClient(target)
		e.session.SetCurrentDesktop(e.workspaces.Index(name))
		return nil
	}
	out, ok := e.outputs.Get(e.focusedOutput)
	if !ok {
		return fmt.Errorf("switch: no focused output")
	}
	if prev, ok := e.workspaces.Get(out.Workspace); ok {
		e.hideWorkspace(prev)
	}
	out.Workspace = name
	target.Output = out.Name
	e.showWorkspace(target)
	e.retile(name)
	e.session.SetCurrentDesktop(e.workspaces.Index(name))
	e.focusWorkspaceClient(target)
	return nil
}

func (e *Engine) focusWorkspaceClient(ws *Workspace) {
	if c, ok := e.registry.Lookup(ws.Focused); ok {
		e.focusClient(c, false)
		return
	}
	e.focusFallback(ws, 0)
}

// SendToWorkspace moves the focused client to the named workspace.
// The client keeps its mode; if the destination is hidden the client
// is unmapped and flagged urgent so it can be found again.
func SendToWorkspace(name string) Action {
	return func(e *Engine) error {
		c, ok := e.registry.Lookup(e.focused)
		if !ok {
			return nil
		}
		if _, ok := e.workspaces.Get(name); !ok {
			return fmt.Errorf("send: %w: %q", ErrUnknownWorkspace, name)
		}
		if c.Workspace == name {
			return nil
		}
		from, _ := e.workspaces.Get(c.Workspace)
		idx := -1
		if from != nil {
			idx = from.indexOf(c.ID)
		}
		if err := e.workspaces.Assign(c, name); err != nil {
			return err
		}
		if e.workspaceVisible(name) {
			c.Mapped = true
			e.session.MapWindow(c.ID)
			e.retile(name)
		} else if c.Mapped {
			c.Mapped = false
			e.markUrgent(c)
			e.pendingUnmaps[c.ID]++
			e.session.UnmapWindow(c.ID)
		}
		if from != nil && e.workspaceVisible(from.Name) {
			e.retile(from.Name)
			if e.focused == c.ID {
				e.focused = 0
				e.focusFallback(from, idx)
			}
		}
		return nil
	}
}

// FocusNextOutput moves focus to the next connected output, wrapping;
// FocusPrevOutput goes the other way.
func FocusNextOutput() Action { return func(e *Engine) error { return e.focusOutputStep(1) } }
func FocusPrevOutput() Action { return func(e *Engine) error { return e.focusOutputStep(-1) } }

func (e *Engine) focusOutputStep(dir int) error {
	target := e.outputs.step(e.focusedOutput, dir)
	if target == nil {
		return nil
	}
	e.focusedOutput = target.Name
	if ws, ok := e.workspaces.Get(target.Workspace); ok {
		e.focusWorkspaceClient(ws)
	}
	return nil
}

// SendToNextOutput moves the focused client to the workspace shown on
// the next output; SendToPrevOutput to the previous one.
func SendToNextOutput() Action { return func(e *Engine) error { return e.sendOutputStep(1) } }
func SendToPrevOutput() Action { return func(e *Engine) error { return e.sendOutputStep(-1) } }

func (e *Engine) sendOutputStep(dir int) error {
	target := e.outputs.step(e.focusedOutput, dir)
	if target == nil || target.Workspace == "" {
		return nil
	}
	return SendToWorkspace(target.Workspace)(e)
}

// ToggleFloating flips the focused client between tiled and floating.
// Leaving the tiled set restores the geometry the client had before
// it was first tiled, clamped to the output.
func ToggleFloating() Action {
	return func(e *Engine) error {
		c, ok := e.registry.Lookup(e.focused)
		if !ok || c.Mode == ModeFullscreen {
			return nil
		}
		if c.Mode == ModeFloating {
			c.Mode = ModeTiled
		} else {
			c.Mode = ModeFloating
		}
		e.retile(c.Workspace)
		if c.Mode == ModeFloating {
			e.session.Raise(c.ID)
		}
		return nil
	}
}

// ToggleFullscreen flips the focused client in and out of fullscreen,
// restoring its prior mode and geometry on the way out.
func ToggleFullscreen() Action {
	return func(e *Engine) error {
		c, ok := e.registry.Lookup(e.focused)
		if !ok {
			return nil
		}
		e.setFullscreen(c, c.Mode != ModeFullscreen)
		return nil
	}
}

func (e *Engine) setFullscreen(c *Client, on bool) {
	if on == (c.Mode == ModeFullscreen) {
		return
	}
	if on {
		c.savedMode = c.Mode
		c.savedGeometry = c.Geometry
		c.Mode = ModeFullscreen
	} else {
		c.Mode = c.savedMode
		c.Geometry = c.savedGeometry
	}
	e.session.SetFullscreenState(c.ID, on)
	e.retile(c.Workspace)
	if on {
		e.focusClient(c, true)
	}
}

// NextLayout advances the visible workspace to the next configured
// layout; PrevLayout goes back.
func NextLayout() Action { return func(e *Engine) error { return e.shiftLayout(1) } }
func PrevLayout() Action { return func(e *Engine) error { return e.shiftLayout(-1) } }

func (e *Engine) shiftLayout(dir int) error {
	ws := e.visibleWorkspace()
	if ws == nil {
		return nil
	}
	n := len(e.cfg.Layouts)
	ws.Layout = (ws.Layout + dir + n) % n
	e.retile(ws.Name)
	e.log.Info().Str("workspace", ws.Name).
		Str("layout", e.activeLayout(ws.Name).Name()).Msg("layout changed")
	return nil
}

// SetLayout selects a layout by name on the visible workspace.
func SetLayout(name string) Action {
	return func(e *Engine) error {
		ws := e.visibleWorkspace()
		if ws == nil {
			return nil
		}
		for i, lay := range e.cfg.Layouts {
			if lay.Name() == name {
				ws.Layout = i
				e.retile(ws.Name)
				return nil
			}
		}
		return fmt.Errorf("unknown layout %q", name)
	}
}

// Spawn launches an external command, fire and forget. The command
// line is split on whitespace; the child is released so it never
// becomes a zombie the engine has to reap.
func Spawn(cmdline string) Action {
	return func(e *Engine) error {
		argv := strings.Fields(cmdline)
		if len(argv) == 0 {
			return nil
		}
		cmd := exec.Command(argv[0], argv[1:]...)
		if err := cmd.Start(); err != nil {
			return fmt.Errorf("spawn %q: %w", argv[0], err)
		}
		if err := cmd.Process.Release(); err != nil {
			e.log.Debug().Err(err).Str("cmd", argv[0]).Msg("release failed")
		}
		e.log.Debug().Str("cmd", cmdline).Msg("spawned")
		return nil
	}
}

// KillFocused asks the focused client to close. The client leaves the
// registry only when its destroy-notify arrives.
func KillFocused() Action {
	return func(e *Engine) error {
		if _, ok := e.registry.Lookup(e.focused); !ok {
			return nil
		}
		e.session.Kill(e.focused)
		return nil
	}
}

// EnterMode switches the input router to a declared mode, so an
// alternate binding table (a resize mode, say) takes over. The mode's
// extra chords are grabbed for the duration of the mode only.
func EnterMode(mode string) Action {
	return func(e *Engine) error {
		if err := e.enterMode(mode); err != nil {
			return err
		}
		e.log.Debug().Str("mode", mode).Msg("input mode entered")
		return nil
	}
}

// ExitMode returns the router to the normal mode and releases the
// exited mode's grabs.
func ExitMode() Action {
	return func(e *Engine) error {
		e.exitMode()
		e.log.Debug().Str("mode", input.ModeNormal).Msg("input mode restored")
		return nil
	}
}

// ToggleReservedSpace suspends or restores the configured edge insets,
// letting tiled clients use the space a bar normally occupies.
func ToggleReservedSpace() Action {
	return func(e *Engine) error {
		e.reservedOff = !e.reservedOff
		return e.reconcileOutputs()
	}
}

// Quit stops the event loop cleanly after the current event.
func Quit() Action {
	return func(e *Engine) error {
		e.quit = true
		return nil
	}
}

func (e *Engine) visibleWorkspace() *Workspace {
	ws, ok := e.workspaces.Get(e.activeWorkspaceName())
	if !ok || !e.workspaceVisible(ws.Name) {
		return nil
	}
	return ws
}
