package session

import (
	"errors"
	"sync"

	"cozycorner/internal/advisor"
	"cozycorner/internal/catalog"
	"cozycorner/internal/placement"
	"cozycorner/internal/profile"
)

var (
	ErrViewForbidden  = errors.New("view not available for this role")
	ErrNotInInventory = errors.New("item not in inventory")
)

// Session is one logged-in player: profile, room and assistant chat.
// Every room mutation goes through the session lock.
type Session struct {
	ID string

	mu      sync.Mutex
	profile *profile.Profile
	engine  *placement.Engine
	chat    *advisor.Chat
	view    profile.View
}

// Snapshot is a consistent copy of the session for rendering.
type Snapshot struct {
	ID         string
	Profile    profile.Profile
	View       profile.View
	Mode       placement.Mode
	CellSize   int
	Items      []placement.Drawable
	SelectedID string
	Pending    *catalog.ItemDefinition
	Messages   []advisor.Message
	Loading    bool
}

// Snapshot captures the state needed for rendering pages and fragments.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := *s.profile
	p.Inventory = append([]catalog.ItemDefinition(nil), s.profile.Inventory...)
	selected, _ := s.engine.Selected()
	var pending *catalog.ItemDefinition
	if def, ok := s.engine.Pending(); ok {
		pending = &def
	}
	return Snapshot{
		ID:         s.ID,
		Profile:    p,
		View:       s.view,
		Mode:       s.engine.Mode(),
		CellSize:   s.engine.Grid().CellSize,
		Items:      s.engine.DrawOrder(),
		SelectedID: selected,
		Pending:    pending,
		Messages:   s.chat.Messages(),
		Loading:    s.chat.Loading(),
	}
}

// View returns the current top-level view.
func (s *Session) View() profile.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

// SwitchView moves to v. Leaving the room clears the selection and any
// pending placement.
func (s *Session) SwitchView(v profile.View) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.profile.CanView(v) {
		return ErrViewForbidden
	}
	if v != profile.ViewRoom {
		s.engine.EndDrag()
		s.engine.Deselect()
		s.engine.ClearPending()
	}
	s.view = v
	return nil
}

// SelectFromInventory arms placement of the owned item at index and opens
// the room.
func (s *Session) SelectFromInventory(index int) (catalog.ItemDefinition, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	def, ok := s.profile.InventoryItem(index)
	if !ok {
		return catalog.ItemDefinition{}, ErrNotInInventory
	}
	s.engine.SetPending(def)
	s.view = profile.ViewRoom
	return def, nil
}

// CancelPending disarms click-to-place.
func (s *Session) CancelPending() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.ClearPending()
}

// Click forwards a canvas click; see placement.Engine.Click.
func (s *Session) Click(instanceID string, pointer placement.Point) (placement.PlacedItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Click(instanceID, pointer)
}

// BeginDrag starts dragging an item.
func (s *Session) BeginDrag(instanceID string, pointer placement.Point) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.BeginDrag(instanceID, pointer)
	return s.engine.Dragging()
}

// UpdateDrag moves the dragged item.
func (s *Session) UpdateDrag(pointer placement.Point) (placement.PlacedItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.UpdateDrag(pointer)
}

// EndDrag finishes a drag; the selection stays.
func (s *Session) EndDrag() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.EndDrag()
}

// Rotate turns an item a quarter turn.
func (s *Session) Rotate(instanceID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.Rotate(instanceID)
}

// Remove deletes an item from the room.
func (s *Session) Remove(instanceID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.Remove(instanceID)
}

// Buy purchases def for the profile.
func (s *Session) Buy(def catalog.ItemDefinition) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile.Buy(def)
}

// CellSize returns the room grid size in pixels.
func (s *Session) CellSize() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Grid().CellSize
}

// PlacedCount returns the number of items in the room.
func (s *Session) PlacedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Len()
}

// Ask sends a question with the current room to the assistant.
func (s *Session) Ask(question string) bool {
	s.mu.Lock()
	items := s.engine.Items()
	s.mu.Unlock()
	room := make([]advisor.RoomItem, 0, len(items))
	for _, item := range items {
		room = append(room, advisor.RoomItem{Name: item.Name, Color: item.Color, X: item.X, Y: item.Y})
	}
	return s.chat.Ask(room, question)
}

func (s *Session) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.Reset()
}
