// Package viewmodel defines the view-layer types. They are free of domain
// imports so templ components can use them without an import cycle.
package viewmodel

// LoginPage holds data for the login form.
type LoginPage struct {
	Error    string
	Username string
}

// InventorySlot is one owned item in the HUD inventory bar.
type InventorySlot struct {
	Index int
	Name  string
	Color string
}

// HUD holds the header shown on every in-game page.
type HUD struct {
	Username      string
	Initial       string
	Level         int
	Currency      int
	ShowInventory bool
	Inventory     []InventorySlot
}

// NavLink is one entry in the bottom navigation dock.
type NavLink struct {
	Href   string
	Label  string
	Active bool
}

// Layout wraps every in-game page.
type Layout struct {
	Title string
	HUD   HUD
	Nav   []NavLink
}

// CanvasItem is a placed item positioned in pixels.
type CanvasItem struct {
	InstanceID string
	Name       string
	Color      string
	Icon       string
	Left       int
	Top        int
	Width      int
	Height     int
	Rotation   int
	Depth      int
	Selected   bool
}

// CanvasFragment holds the room canvas.
type CanvasFragment struct {
	CellSize    int
	WidthPx     int
	HeightPx    int
	Mode        string
	PendingName string
	Items       []CanvasItem
}

// ChatMessage is one line of the assistant panel.
type ChatMessage struct {
	FromUser bool
	Text     string
}

// ChatFragment holds the assistant conversation.
type ChatFragment struct {
	Messages []ChatMessage
	Loading  bool
}

// RoomPage holds data for the room page.
type RoomPage struct {
	Layout Layout
	Canvas CanvasFragment
	Chat   ChatFragment
}

// CategoryTab is a store filter.
type CategoryTab struct {
	Value  string
	Label  string
	Active bool
}

// StoreItem is one card in the shop.
type StoreItem struct {
	ID          string
	Name        string
	Category    string
	Description string
	Price       int
	Color       string
	Owned       int
	CanAfford   bool
}

// StorePage holds data for the shop.
type StorePage struct {
	Layout   Layout
	Currency int
	Tabs     []CategoryTab
	Items    []StoreItem
	Notice   string
}

// StatSlice is one category in the collection chart.
type StatSlice struct {
	Label   string
	Count   int
	Percent int
	Color   string
}

// Achievement is a profile badge.
type Achievement struct {
	Icon        string
	Title       string
	Description string
	Unlocked    bool
}

// ProfilePage holds data for the profile page.
type ProfilePage struct {
	Layout       Layout
	Username     string
	Initial      string
	Joined       string
	Level        int
	ItemCount    int
	Stats        []StatSlice
	Achievements []Achievement
}

// StatCard is one admin headline figure.
type StatCard struct {
	Label string
	Value string
	Trend string
	Color string
}

// Bar is one column of a bar or line chart.
type Bar struct {
	Label   string
	Value   int
	Percent int
}

// Transaction is an admin activity row.
type Transaction struct {
	User   string
	Item   string
	Amount string
	Status string
}

// AdminPage holds data for the dashboard.
type AdminPage struct {
	Layout       Layout
	Cards        []StatCard
	Revenue      []Bar
	Users        []Bar
	Transactions []Transaction
}
