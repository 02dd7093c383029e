package wm

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
)

// ErrUnknownWorkspace reports a reference to an undeclared workspace.
var ErrUnknownWorkspace = errors.New("wm: unknown workspace")

// Workspace is a named logical desktop. Client order is insertion
// order; layouts and focus cycling both use it, so it is the single
// tie-break for every per-workspace operation.
type Workspace struct {
	Name   string
	Layout int // index into the engine's layout list
	// Output is the output this workspace renders on, "" while
	// unbound. A workspace can be bound without being the output's
	// visible workspace.
	Output  string
	Focused xproto.Window // 0 when empty
	clients []xproto.Window
}

// Clients returns the workspace membership in insertion order.
func (w *Workspace) Clients() []xproto.Window {
	out := make([]xproto.Window, len(w.clients))
	copy(out, w.clients)
	return out
}

func (w *Workspace) indexOf(win xproto.Window) int {
	for i, c := range w.clients {
		if c == win {
			return i
		}
	}
	return -1
}

func (w *Workspace) contains(win xproto.Window) bool { return w.indexOf(win) >= 0 }

func (w *Workspace) remove(win xproto.Window) {
	if i := w.indexOf(win); i >= 0 {
		w.clients = append(w.clients[:i], w.clients[i+1:]...)
	}
	if w.Focused == win {
		w.Focused = 0
	}
}

// Workspaces is the ordered, named set of logical desktops, created
// once from configuration and never resized at runtime.
type Workspaces struct {
	order  []string
	byName map[string]*Workspace
}

func NewWorkspaces(names []string) (*Workspaces, error) {
	if len(names) == 0 {
		return nil, errors.New("wm: at least one workspace is required")
	}
	set := &Workspaces{byName: make(map[string]*Workspace, len(names))}
	for _, name := range names {
		if _, dup := set.byName[name]; dup {
			return nil, fmt.Errorf("wm: duplicate workspace name %q", name)
		}
		set.byName[name] = &Workspace{Name: name}
		set.order = append(set.order, name)
	}
	return set, nil
}

// Get returns the workspace by name.
func (s *Workspaces) Get(name string) (*Workspace, bool) {
	ws, ok := s.byName[name]
	return ws, ok
}

// Names returns the declared workspace names in order.
func (s *Workspaces) Names() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Index returns the position of a workspace in declaration order,
// used for _NET_CURRENT_DESKTOP.
func (s *Workspaces) Index(name string) int {
	for i, n := range s.order {
		if n == name {
			return i
		}
	}
	return -1
}

// Assign moves a client to a workspace, removing it from any prior
// membership first so a client is never in two workspaces at once.
func (s *Workspaces) Assign(c *Client, name string) error {
	target, ok := s.byName[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownWorkspace, name)
	}
	if c.Workspace != "" {
		if prior, ok := s.byName[c.Workspace]; ok {
			prior.remove(c.ID)
		}
	}
	target.clients = append(target.clients, c.ID)
	c.Workspace = name
	return nil
}

// Remove detaches a client from its workspace.
func (s *Workspaces) Remove(c *Client) {
	if ws, ok := s.byName[c.Workspace]; ok {
		ws.remove(c.ID)
	}
	c.Workspace = ""
}
