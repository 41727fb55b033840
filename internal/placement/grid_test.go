package placement

import "testing"

func TestGrid_Snap(t *testing.T) {
	g := Grid{CellSize: 40}
	cases := []struct {
		pointer, grab Point
		want          Cell
	}{
		{Point{0, 0}, Point{}, Cell{0, 0}},
		{Point{19, 19}, Point{}, Cell{0, 0}},
		{Point{20, 20}, Point{}, Cell{1, 1}},
		{Point{-20, -21}, Point{}, Cell{0, -1}},
		{Point{0, 0}, g.CenterGrab(), Cell{0, 0}},
		{Point{100, 100}, g.CenterGrab(), Cell{2, 2}},
	}
	for _, tc := range cases {
		if got := g.Snap(tc.pointer, tc.grab); got != tc.want {
			t.Errorf("Snap(%v, %v) = %v, want %v", tc.pointer, tc.grab, got, tc.want)
		}
	}
}

func TestGrid_Origin(t *testing.T) {
	g := Grid{CellSize: 40}
	if got := g.Origin(Cell{3, -2}); got != (Point{120, -80}) {
		t.Errorf("Origin = %v, want (120,-80)", got)
	}
}

func TestGrid_ZeroCellSizeUsesDefault(t *testing.T) {
	var g Grid
	if got := g.Origin(Cell{1, 1}); got.X != DefaultCellSize {
		t.Errorf("Origin.X = %v, want %d", got.X, DefaultCellSize)
	}
}

func TestRotation_Next(t *testing.T) {
	r := Rotate0
	for i := 0; i < 4; i++ {
		r = r.Next()
	}
	if r != Rotate0 {
		t.Errorf("four turns = %d, want 0", r)
	}
	if Rotate270.Next() != Rotate0 {
		t.Errorf("270.Next() = %d, want 0", Rotate270.Next())
	}
}
