package placement

import (
	"cozycorner/internal/catalog"
)

// Mode is the canvas interaction state.
type Mode int

const (
	ModeIdle Mode = iota
	ModeSelected
	ModeDragging
	ModePlacing
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeSelected:
		return "selected"
	case ModeDragging:
		return "dragging"
	case ModePlacing:
		return "placing"
	}
	return "unknown"
}

// maxIDAttempts bounds the retries when the id source collides.
const maxIDAttempts = 16

// Engine owns the room's placed items and the selection, drag and pending
// placement state. It is not safe for concurrent use; callers serialise
// access through a single owner.
type Engine struct {
	grid    Grid
	newID   IDFunc
	items   []PlacedItem
	index   map[string]int
	issued  map[string]struct{}
	selID   string
	drag    bool
	grab    Point
	pending *catalog.ItemDefinition
}

// Option configures an Engine.
type Option func(*Engine)

// WithCellSize sets the grid cell edge in pixels.
func WithCellSize(size int) Option {
	return func(e *Engine) {
		e.grid = Grid{CellSize: size}
	}
}

// WithIDFunc replaces the instance id source.
func WithIDFunc(fn IDFunc) Option {
	return func(e *Engine) {
		if fn != nil {
			e.newID = fn
		}
	}
}

// NewEngine creates an empty room.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		grid:   Grid{CellSize: DefaultCellSize},
		newID:  newInstanceID,
		index:  make(map[string]int),
		issued: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Grid returns the engine's pixel/cell conversion.
func (e *Engine) Grid() Grid {
	return e.grid
}

// Mode derives the interaction state. A pending placement wins over
// everything else, then an active drag, then a selection.
func (e *Engine) Mode() Mode {
	switch {
	case e.pending != nil:
		return ModePlacing
	case e.drag && e.selID != "":
		return ModeDragging
	case e.selID != "":
		return ModeSelected
	default:
		return ModeIdle
	}
}

// SetPending arms click-to-place with def. Any drag in progress ends.
func (e *Engine) SetPending(def catalog.ItemDefinition) {
	e.pending = &def
	e.drag = false
}

// ClearPending disarms click-to-place.
func (e *Engine) ClearPending() {
	e.pending = nil
}

// Pending returns the definition awaiting a target click.
func (e *Engine) Pending() (catalog.ItemDefinition, bool) {
	if e.pending == nil {
		return catalog.ItemDefinition{}, false
	}
	return *e.pending, true
}

// Place appends a new instance of def centred under the pointer and clears
// the pending placement. Any cell is accepted, including negative ones.
func (e *Engine) Place(def catalog.ItemDefinition, pointer Point) PlacedItem {
	cell := e.grid.Snap(pointer, e.grid.CenterGrab())
	item := PlacedItem{
		ItemDefinition: def,
		InstanceID:     e.issueID(),
		X:              cell.X,
		Y:              cell.Y,
		Rotation:       Rotate0,
		Depth:          DefaultDepth,
	}
	e.index[item.InstanceID] = len(e.items)
	e.items = append(e.items, item)
	e.pending = nil
	return item
}

func (e *Engine) issueID() string {
	var id string
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id = e.newID()
		if _, taken := e.issued[id]; !taken && id != "" {
			break
		}
		id = ""
	}
	if id == "" {
		// The id source keeps colliding; fall back to random uuids.
		for {
			id = newInstanceID()
			if _, taken := e.issued[id]; !taken {
				break
			}
		}
	}
	e.issued[id] = struct{}{}
	return id
}

// BeginDrag selects the item and records where inside it the pointer
// grabbed, so later moves keep that point under the pointer. It is a no-op
// while a placement is pending or when id is unknown.
func (e *Engine) BeginDrag(id string, pointer Point) {
	if e.pending != nil {
		return
	}
	i, ok := e.index[id]
	if !ok {
		return
	}
	origin := e.grid.Origin(e.items[i].Cell())
	e.selID = id
	e.drag = true
	e.grab = Point{X: pointer.X - origin.X, Y: pointer.Y - origin.Y}
}

// UpdateDrag moves the selected item to follow the pointer. It returns the
// moved item, or false when no drag is active.
func (e *Engine) UpdateDrag(pointer Point) (PlacedItem, bool) {
	if !e.drag || e.selID == "" {
		return PlacedItem{}, false
	}
	i, ok := e.index[e.selID]
	if !ok {
		return PlacedItem{}, false
	}
	cell := e.grid.Snap(pointer, e.grab)
	e.items[i].X = cell.X
	e.items[i].Y = cell.Y
	return e.items[i], true
}

// EndDrag leaves dragging mode. The selection and last position stay.
func (e *Engine) EndDrag() {
	e.drag = false
	e.grab = Point{}
}

// Rotate turns the item a quarter turn clockwise.
func (e *Engine) Rotate(id string) {
	i, ok := e.index[id]
	if !ok {
		return
	}
	e.items[i].Rotation = e.items[i].Rotation.Next()
}

// Remove deletes the item, clearing the selection if it was selected.
// Unknown ids are ignored.
func (e *Engine) Remove(id string) {
	i, ok := e.index[id]
	if !ok {
		return
	}
	e.items = append(e.items[:i], e.items[i+1:]...)
	delete(e.index, id)
	for j := i; j < len(e.items); j++ {
		e.index[e.items[j].InstanceID] = j
	}
	if e.selID == id {
		e.selID = ""
		e.drag = false
	}
}

// Click handles a click on the canvas. id is the clicked item, or empty
// for bare canvas. With a pending placement the click places it at pointer
// and returns the new item; otherwise it selects id or clears the selection.
func (e *Engine) Click(id string, pointer Point) (PlacedItem, bool) {
	if e.pending != nil {
		return e.Place(*e.pending, pointer), true
	}
	if id == "" {
		e.Deselect()
		return PlacedItem{}, false
	}
	if _, ok := e.index[id]; ok {
		e.selID = id
	}
	return PlacedItem{}, false
}

// Deselect clears the selection and any drag.
func (e *Engine) Deselect() {
	e.selID = ""
	e.drag = false
}

// Selected returns the selected instance id, if any.
func (e *Engine) Selected() (string, bool) {
	return e.selID, e.selID != ""
}

// Dragging reports whether a drag is in progress.
func (e *Engine) Dragging() bool {
	return e.drag && e.selID != ""
}

// Item returns a copy of one placed item.
func (e *Engine) Item(id string) (PlacedItem, bool) {
	i, ok := e.index[id]
	if !ok {
		return PlacedItem{}, false
	}
	return e.items[i], true
}

// Items returns a copy of the room in placement order.
func (e *Engine) Items() []PlacedItem {
	return append([]PlacedItem(nil), e.items...)
}

// Len returns the number of placed items.
func (e *Engine) Len() int {
	return len(e.items)
}

// Reset empties the room and forgets all state, as on logout.
func (e *Engine) Reset() {
	e.items = nil
	e.index = make(map[string]int)
	e.issued = make(map[string]struct{})
	e.selID = ""
	e.drag = false
	e.grab = Point{}
	e.pending = nil
}
