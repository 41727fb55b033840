package profile

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"cozycorner/internal/catalog"
)

// Role gates which views a profile may open.
type Role string

const (
	RoleStandard Role = "standard"
	RoleAdmin    Role = "admin"
)

// View names a top-level page of the app.
type View string

const (
	ViewRoom    View = "room"
	ViewStore   View = "store"
	ViewProfile View = "profile"
	ViewAdmin   View = "admin"
)

const (
	maxUsernameLen = 20
	adminUsername  = "admin"
	bigSpenderMark = 1000
)

var (
	ErrUsernameRequired  = errors.New("username required")
	ErrInsufficientFunds = errors.New("not enough coins")
)

// Profile is the in-memory player record created at login.
type Profile struct {
	Username  string
	Role      Role
	Level     int
	XP        int
	Currency  int
	Spent     int
	Inventory []catalog.ItemDefinition
	JoinedAt  time.Time
}

// Login synthesises a profile for username. The name "admin" (any case)
// yields the administrator profile.
func Login(username string, startingCurrency int, now time.Time) (*Profile, error) {
	name := strings.TrimSpace(username)
	if name == "" {
		return nil, ErrUsernameRequired
	}
	if utf8.RuneCountInString(name) > maxUsernameLen {
		name = string([]rune(name)[:maxUsernameLen])
	}
	if strings.EqualFold(name, adminUsername) {
		return &Profile{
			Username: "Administrator",
			Role:     RoleAdmin,
			Level:    99,
			XP:       99999,
			Currency: 999999,
			JoinedAt: now,
		}, nil
	}
	return &Profile{
		Username: name,
		Role:     RoleStandard,
		Level:    1,
		Currency: startingCurrency,
		JoinedAt: now,
	}, nil
}

// CanView reports whether the profile's role may open v.
func (p *Profile) CanView(v View) bool {
	switch v {
	case ViewRoom, ViewStore, ViewProfile:
		return true
	case ViewAdmin:
		switch p.Role {
		case RoleAdmin:
			return true
		case RoleStandard:
			return false
		}
	}
	return false
}

// HomeView is where the profile lands after login.
func (p *Profile) HomeView() View {
	switch p.Role {
	case RoleAdmin:
		return ViewAdmin
	default:
		return ViewRoom
	}
}

// CanAfford reports whether the profile has enough coins for def.
func (p *Profile) CanAfford(def catalog.ItemDefinition) bool {
	return p.Currency >= def.Price
}

// Buy deducts the price and adds def to the inventory.
func (p *Profile) Buy(def catalog.ItemDefinition) error {
	if !p.CanAfford(def) {
		return ErrInsufficientFunds
	}
	p.Currency -= def.Price
	p.Spent += def.Price
	p.Inventory = append(p.Inventory, def)
	return nil
}

// OwnedCount returns how many copies of a catalog item are owned.
func (p *Profile) OwnedCount(defID string) int {
	n := 0
	for _, item := range p.Inventory {
		if item.ID == defID {
			n++
		}
	}
	return n
}

// InventoryItem returns the owned item at index.
func (p *Profile) InventoryItem(index int) (catalog.ItemDefinition, bool) {
	if index < 0 || index >= len(p.Inventory) {
		return catalog.ItemDefinition{}, false
	}
	return p.Inventory[index], true
}

// CategoryCount is one slice of the collection chart.
type CategoryCount struct {
	Category catalog.Category
	Label    string
	Count    int
}

// CategoryStats counts owned items per category in catalog category order,
// omitting empty categories.
func (p *Profile) CategoryStats() []CategoryCount {
	counts := make(map[catalog.Category]int)
	for _, item := range p.Inventory {
		counts[item.Category]++
	}
	out := make([]CategoryCount, 0, len(counts))
	for _, c := range catalog.Categories() {
		if counts[c] == 0 {
			continue
		}
		out = append(out, CategoryCount{Category: c, Label: capitalize(string(c)), Count: counts[c]})
	}
	return out
}

// Achievement is a profile badge.
type Achievement struct {
	Icon        string
	Title       string
	Description string
	Unlocked    bool
}

// Achievements derives badges from spending and the room's item count.
func (p *Profile) Achievements(placedCount int) []Achievement {
	return []Achievement{
		{
			Icon:        "🏠",
			Title:       "First Decorator",
			Description: "Place your first item",
			Unlocked:    placedCount > 0,
		},
		{
			Icon:        "💰",
			Title:       "Big Spender",
			Description: "Spend over 1000 coins",
			Unlocked:    p.Spent > bigSpenderMark,
		},
	}
}

// Initial is the avatar letter.
func (p *Profile) Initial() string {
	r, _ := utf8.DecodeRuneInString(p.Username)
	if r == utf8.RuneError {
		return "?"
	}
	return strings.ToUpper(string(r))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
