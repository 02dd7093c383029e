package layout

// MasterStack places the first client in a master column on the left and
// stacks the remaining clients in a single column on the right.
type MasterStack struct {
	// Ratio is the fraction of the usable width given to the master
	// column when at least one stack client exists. Ranges (0, 1).
	Ratio   float64
	Gaps    int
	Borders int
}

// NewMasterStack returns a master-stack layout with a 0.55 ratio and no
// gaps or borders.
func NewMasterStack() MasterStack {
	return MasterStack{Ratio: 0.55}
}

func (m MasterStack) Name() string     { return "master-stack" }
func (m MasterStack) Motions() bool    { return false }
func (m MasterStack) BorderWidth() int { return m.Borders }

func (m MasterStack) Compute(n int, area Rect) []Rect {
	if n == 0 {
		return nil
	}
	inner := inset(area, m.Gaps)
	if n == 1 {
		return []Rect{inner}
	}

	masterWidth := int(float64(inner.Width) * m.Ratio)
	if masterWidth < 1 {
		masterWidth = 1
	}
	stackX := inner.X + masterWidth + m.Gaps
	stackWidth := inner.Width - masterWidth - m.Gaps
	if stackWidth < 1 {
		stackWidth = 1
	}

	rects := make([]Rect, n)
	rects[0] = Rect{X: inner.X, Y: inner.Y, Width: masterWidth, Height: inner.Height}

	rows := n - 1
	rowHeight := (inner.Height - (rows-1)*m.Gaps) / rows
	if rowHeight < 1 {
		rowHeight = 1
	}
	for i := 0; i < rows; i++ {
		h := rowHeight
		if i == rows-1 {
			// Last row absorbs integer-division remainder.
			h = inner.Height - i*(rowHeight+m.Gaps)
			if h < 1 {
				h = 1
			}
		}
		rects[i+1] = Rect{
			X:      stackX,
			Y:      inner.Y + i*(rowHeight+m.Gaps),
			Width:  stackWidth,
			Height: h,
		}
	}
	return rects
}
