package layout

import "math"

// Stacked arranges clients as full-width horizontal bands of equal
// height, in workspace order from top to bottom.
type Stacked struct {
	Gaps    int
	Borders int
}

func (s Stacked) Name() string     { return "stacked" }
func (s Stacked) Motions() bool    { return false }
func (s Stacked) BorderWidth() int { return s.Borders }

func (s Stacked) Compute(n int, area Rect) []Rect {
	if n == 0 {
		return nil
	}
	inner := inset(area, s.Gaps)
	bandHeight := (inner.Height - (n-1)*s.Gaps) / n
	if bandHeight < 1 {
		bandHeight = 1
	}

	rects := make([]Rect, n)
	for i := 0; i < n; i++ {
		h := bandHeight
		if i == n-1 {
			h = inner.Height - i*(bandHeight+s.Gaps)
			if h < 1 {
				h = 1
			}
		}
		rects[i] = Rect{
			X:      inner.X,
			Y:      inner.Y + i*(bandHeight+s.Gaps),
			Width:  inner.Width,
			Height: h,
		}
	}
	return rects
}

// Grid arranges clients in a near-square grid: columns are the ceiling
// of the square root of the client count, rows fill as needed.
type Grid struct {
	Gaps    int
	Borders int
}

func (g Grid) Name() string     { return "grid" }
func (g Grid) Motions() bool    { return false }
func (g Grid) BorderWidth() int { return g.Borders }

func (g Grid) Compute(n int, area Rect) []Rect {
	if n == 0 {
		return nil
	}
	inner := inset(area, g.Gaps)
	cols := int(math.Ceil(math.Sqrt(float64(n))))
	rows := int(math.Ceil(float64(n) / float64(cols)))

	cellWidth := (inner.Width - (cols-1)*g.Gaps) / cols
	cellHeight := (inner.Height - (rows-1)*g.Gaps) / rows
	if cellWidth < 1 {
		cellWidth = 1
	}
	if cellHeight < 1 {
		cellHeight = 1
	}

	rects := make([]Rect, n)
	for i := 0; i < n; i++ {
		row := i / cols
		col := i % cols
		rects[i] = Rect{
			X:      inner.X + col*(cellWidth+g.Gaps),
			Y:      inner.Y + row*(cellHeight+g.Gaps),
			Width:  cellWidth,
			Height: cellHeight,
		}
	}
	return rects
}

// Floating leaves every client's geometry untouched and allows pointer
// move/resize motions.
type Floating struct {
	Borders int
}

func (f Floating) Name() string             { return "floating" }
func (f Floating) Motions() bool            { return true }
func (f Floating) BorderWidth() int         { return f.Borders }
func (f Floating) Compute(int, Rect) []Rect { return nil }
