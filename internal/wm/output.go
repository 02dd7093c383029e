package wm

import (
	"github.com/1broseidon/lepus/internal/layout"
	"github.com/1broseidon/lepus/internal/x11"
)

// Insets is screen space permanently reserved on each output edge,
// typically for a status bar.
type Insets struct {
	Top    int
	Bottom int
	Left   int
	Right  int
}

func (in Insets) apply(r layout.Rect) layout.Rect {
	r.X += in.Left
	r.Y += in.Top
	r.Width -= in.Left + in.Right
	r.Height -= in.Top + in.Bottom
	if r.Width < 1 {
		r.Width = 1
	}
	if r.Height < 1 {
		r.Height = 1
	}
	return r
}

// Output is one physical display area.
type Output struct {
	Name     string
	Geometry layout.Rect
	Usable   layout.Rect
	// Workspace is the name of the workspace currently visible on
	// this output, "" while none is.
	Workspace string
	Connected bool
}

// Outputs models the connected display outputs.
type Outputs struct {
	order  []string
	byName map[string]*Output
}

func NewOutputs() *Outputs {
	return &Outputs{byName: make(map[string]*Output)}
}

func (s *Outputs) Get(name string) (*Output, bool) {
	o, ok := s.byName[name]
	return o, ok
}

// All returns connected outputs in discovery order.
func (s *Outputs) All() []*Output {
	out := make([]*Output, 0, len(s.order))
	for _, name := range s.order {
		if o := s.byName[name]; o.Connected {
			out = append(out, o)
		}
	}
	return out
}

func (s *Outputs) Len() int {
	n := 0
	for _, o := range s.byName {
		if o.Connected {
			n++
		}
	}
	return n
}

// update reconciles the output set against a fresh query, returning
// the outputs that disappeared. Existing outputs keep their visible
// workspace across geometry changes.
func (s *Outputs) update(infos []x11.OutputInfo, reserved Insets) (removed []*Output) {
	seen := make(map[string]bool, len(infos))
	for _, info := range infos {
		seen[info.Name] = true
		if o, ok := s.byName[info.Name]; ok {
			o.Geometry = info.Geometry
			o.Usable = reserved.apply(info.Geometry)
			o.Connected = true
			continue
		}
		s.byName[info.Name] = &Output{
			Name:      info.Name,
			Geometry:  info.Geometry,
			Usable:    reserved.apply(info.Geometry),
			Connected: true,
		}
		s.order = append(s.order, info.Name)
	}
	for _, name := range s.order {
		o := s.byName[name]
		if o.Connected && !seen[name] {
			o.Connected = false
			removed = append(removed, o)
		}
	}
	return removed
}

// step returns the connected output dir positions away from the given
// one in discovery order, wrapping. Returns nil with fewer than two
// outputs.
func (s *Outputs) step(name string, dir int) *Output {
	all := s.All()
	if len(all) < 2 {
		return nil
	}
	for i, o := range all {
		if o.Name == name {
			return all[(i+dir+len(all))%len(all)]
		}
	}
	return all[0]
}
