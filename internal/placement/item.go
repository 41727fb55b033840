package placement

import (
	"github.com/google/uuid"

	"cozycorner/internal/catalog"
)

// Rotation is a quarter-turn angle in degrees.
type Rotation int

const (
	Rotate0   Rotation = 0
	Rotate90  Rotation = 90
	Rotate180 Rotation = 180
	Rotate270 Rotation = 270
)

// Next advances by 90 degrees, wrapping 270 back to 0.
func (r Rotation) Next() Rotation {
	switch r {
	case Rotate0:
		return Rotate90
	case Rotate90:
		return Rotate180
	case Rotate180:
		return Rotate270
	default:
		return Rotate0
	}
}

// DefaultDepth is the depth key every placed item starts with.
const DefaultDepth = 1

// PlacedItem is one positioned copy of a catalog definition.
type PlacedItem struct {
	catalog.ItemDefinition
	InstanceID string
	X          int
	Y          int
	Rotation   Rotation
	Depth      int
}

// Cell returns the item's grid position.
func (p PlacedItem) Cell() Cell {
	return Cell{X: p.X, Y: p.Y}
}

// IDFunc produces candidate instance identifiers.
type IDFunc func() string

func newInstanceID() string {
	return uuid.NewString()
}
