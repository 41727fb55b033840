package placement

import "math"

// DefaultCellSize is the edge of one grid cell in pixels.
const DefaultCellSize = 40

// Grid converts between canvas pixels and grid cells.
type Grid struct {
	CellSize int
}

// Point is a pixel position relative to the canvas origin.
type Point struct {
	X float64
	Y float64
}

// Cell is an integer grid position.
type Cell struct {
	X int
	Y int
}

// Snap returns the cell whose top-left corner sits nearest to pointer-grab.
// Halves round up, so -0.5 cells snaps to 0 and 1.5 cells to 2.
func (g Grid) Snap(pointer, grab Point) Cell {
	size := float64(g.size())
	return Cell{
		X: int(math.Floor((pointer.X-grab.X)/size + 0.5)),
		Y: int(math.Floor((pointer.Y-grab.Y)/size + 0.5)),
	}
}

// Origin returns the pixel position of a cell's top-left corner.
func (g Grid) Origin(c Cell) Point {
	size := float64(g.size())
	return Point{X: float64(c.X) * size, Y: float64(c.Y) * size}
}

// CenterGrab is the grab offset used for fresh placements: the pointer
// sits over the middle of the item's first cell.
func (g Grid) CenterGrab() Point {
	half := float64(g.size()) / 2
	return Point{X: half, Y: half}
}

func (g Grid) size() int {
	if g.CellSize <= 0 {
		return DefaultCellSize
	}
	return g.CellSize
}
