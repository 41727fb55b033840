package placement

import "sort"

// depthBase lifts item depths above the canvas background layers.
const depthBase = 10

// Drawable pairs an item with its derived draw depth.
type Drawable struct {
	Item     PlacedItem
	Depth    int
	Selected bool
}

// DrawOrder returns the room back to front. Items lower in the room (larger
// y) draw in front; the selected item always draws frontmost. Ties keep
// placement order.
func (e *Engine) DrawOrder() []Drawable {
	out := make([]Drawable, 0, len(e.items))
	maxDepth := depthBase
	for _, item := range e.items {
		d := depthBase + item.Depth + item.Y
		if d > maxDepth {
			maxDepth = d
		}
		out = append(out, Drawable{Item: item, Depth: d})
	}
	for i := range out {
		if out[i].Item.InstanceID == e.selID {
			out[i].Depth = maxDepth + 1
			out[i].Selected = true
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Depth < out[j].Depth
	})
	return out
}
