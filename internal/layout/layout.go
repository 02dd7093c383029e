package layout

// Rect represents a window position and size in root coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Contains reports whether the point (x, y) falls inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Layout computes geometries for the tiled clients of a workspace.
// Implementations must be pure: the same count and area always produce
// the same slice of rectangles, in workspace order.
type Layout interface {
	// Name identifies the layout in actions and logs.
	Name() string

	// Compute returns one geometry per tiled client. A nil return means
	// the layout leaves client geometry untouched (floating passthrough).
	Compute(n int, area Rect) []Rect

	// Motions reports whether pointer move/resize is allowed for tiled
	// clients under this layout.
	Motions() bool

	// BorderWidth is the border to apply to clients under this layout.
	BorderWidth() int
}

// Clamp constrains r to fit within bounds, shrinking it if necessary.
// Used for floating clients so they never leave the usable area.
func Clamp(r, bounds Rect) Rect {
	if r.Width > bounds.Width {
		r.Width = bounds.Width
	}
	if r.Height > bounds.Height {
		r.Height = bounds.Height
	}
	if r.X < bounds.X {
		r.X = bounds.X
	}
	if r.Y < bounds.Y {
		r.Y = bounds.Y
	}
	if r.X+r.Width > bounds.X+bounds.Width {
		r.X = bounds.X + bounds.Width - r.Width
	}
	if r.Y+r.Height > bounds.Y+bounds.Height {
		r.Y = bounds.Y + bounds.Height - r.Height
	}
	return r
}

// inset shrinks area by gap pixels on every side, clamping to 1x1.
func inset(area Rect, gap int) Rect {
	area.X += gap
	area.Y += gap
	area.Width -= 2 * gap
	area.Height -= 2 * gap
	if area.Width < 1 {
		area.Width = 1
	}
	if area.Height < 1 {
		area.Height = 1
	}
	return area
}
