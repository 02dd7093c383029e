package layout

import (
	"reflect"
	"testing"
)

var fullHD = Rect{X: 0, Y: 0, Width: 1920, Height: 1080}

func TestMasterStackThreeClients(t *testing.T) {
	ms := MasterStack{Ratio: 0.6}
	got := ms.Compute(3, fullHD)

	want := []Rect{
		{X: 0, Y: 0, Width: 1152, Height: 1080},
		{X: 1152, Y: 0, Width: 768, Height: 540},
		{X: 1152, Y: 540, Width: 768, Height: 540},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestStackedThreeClients(t *testing.T) {
	st := Stacked{}
	got := st.Compute(3, fullHD)

	want := []Rect{
		{X: 0, Y: 0, Width: 1920, Height: 360},
		{X: 0, Y: 360, Width: 1920, Height: 360},
		{X: 0, Y: 720, Width: 1920, Height: 360},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestSingleClientFillsUsableArea(t *testing.T) {
	area := Rect{X: 10, Y: 20, Width: 800, Height: 600}
	layouts := []Layout{
		MasterStack{Ratio: 0.6},
		Stacked{},
		Grid{},
	}
	for _, l := range layouts {
		rects := l.Compute(1, area)
		if len(rects) != 1 {
			t.Fatalf("%s: expected 1 rect, got %d", l.Name(), len(rects))
		}
		if rects[0] != area {
			t.Errorf("%s: expected %v, got %v", l.Name(), area, rects[0])
		}
	}
}

func TestZeroClientsYieldsNoGeometry(t *testing.T) {
	layouts := []Layout{
		MasterStack{Ratio: 0.5},
		Stacked{},
		Grid{},
		Floating{},
	}
	for _, l := range layouts {
		if rects := l.Compute(0, fullHD); rects != nil {
			t.Errorf("%s: expected nil for zero clients, got %v", l.Name(), rects)
		}
	}
}

func TestComputeIsDeterministic(t *testing.T) {
	layouts := []Layout{
		MasterStack{Ratio: 0.55, Gaps: 8},
		Stacked{Gaps: 4},
		Grid{Gaps: 6},
	}
	for _, l := range layouts {
		for n := 1; n <= 7; n++ {
			first := l.Compute(n, fullHD)
			second := l.Compute(n, fullHD)
			if !reflect.DeepEqual(first, second) {
				t.Errorf("%s: n=%d not deterministic", l.Name(), n)
			}
			if len(first) != n {
				t.Errorf("%s: n=%d returned %d rects", l.Name(), n, len(first))
			}
		}
	}
}

func TestTiledRectsStayInsideArea(t *testing.T) {
	area := Rect{X: 100, Y: 50, Width: 1280, Height: 720}
	layouts := []Layout{
		MasterStack{Ratio: 0.5, Gaps: 10},
		Stacked{Gaps: 10},
		Grid{Gaps: 10},
	}
	for _, l := range layouts {
		for n := 1; n <= 9; n++ {
			for i, r := range l.Compute(n, area) {
				if r.X < area.X || r.Y < area.Y ||
					r.X+r.Width > area.X+area.Width ||
					r.Y+r.Height > area.Y+area.Height {
					t.Errorf("%s: n=%d rect %d escapes area: %v", l.Name(), n, i, r)
				}
				if r.Width < 1 || r.Height < 1 {
					t.Errorf("%s: n=%d rect %d degenerate: %v", l.Name(), n, i, r)
				}
			}
		}
	}
}

func TestGridDimensions(t *testing.T) {
	cases := []struct {
		n          int
		cols, rows int
	}{
		{1, 1, 1},
		{2, 2, 1},
		{4, 2, 2},
		{5, 3, 2},
		{9, 3, 3},
		{10, 4, 3},
	}
	g := Grid{}
	for _, tc := range cases {
		rects := g.Compute(tc.n, fullHD)
		want := Rect{
			X:      0,
			Y:      0,
			Width:  fullHD.Width / tc.cols,
			Height: fullHD.Height / tc.rows,
		}
		if rects[0] != want {
			t.Errorf("n=%d: expected first cell %v, got %v", tc.n, want, rects[0])
		}
	}
}

func TestFloatingLeavesGeometryUntouched(t *testing.T) {
	f := Floating{Borders: 2}
	if rects := f.Compute(5, fullHD); rects != nil {
		t.Fatalf("expected nil, got %v", rects)
	}
	if !f.Motions() {
		t.Fatal("floating layout must allow motions")
	}
}

func TestClamp(t *testing.T) {
	bounds := Rect{X: 0, Y: 0, Width: 1000, Height: 800}
	cases := []struct {
		name string
		in   Rect
		want Rect
	}{
		{"inside", Rect{X: 10, Y: 10, Width: 100, Height: 100}, Rect{X: 10, Y: 10, Width: 100, Height: 100}},
		{"off right edge", Rect{X: 950, Y: 0, Width: 100, Height: 100}, Rect{X: 900, Y: 0, Width: 100, Height: 100}},
		{"off top left", Rect{X: -50, Y: -20, Width: 100, Height: 100}, Rect{X: 0, Y: 0, Width: 100, Height: 100}},
		{"oversized", Rect{X: 0, Y: 0, Width: 2000, Height: 900}, Rect{X: 0, Y: 0, Width: 1000, Height: 800}},
	}
	for _, tc := range cases {
		if got := Clamp(tc.in, bounds); got != tc.want {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}
