package catalog

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed items.yaml
var itemsYAML []byte

// Category groups items in the shop.
type Category string

const (
	CategoryFurniture  Category = "furniture"
	CategoryDecoration Category = "decoration"
	CategorySurface    Category = "surface"
	CategoryPlant      Category = "plant"
	CategoryLighting   Category = "lighting"
)

// Categories returns every category in display order.
func Categories() []Category {
	return []Category{
		CategoryFurniture,
		CategoryDecoration,
		CategorySurface,
		CategoryPlant,
		CategoryLighting,
	}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryFurniture, CategoryDecoration, CategorySurface, CategoryPlant, CategoryLighting:
		return true
	}
	return false
}

// ErrUnknownItem is returned when an item id is not in the catalog.
var ErrUnknownItem = errors.New("unknown item")

// ItemDefinition is the immutable template an item is placed from.
// Width and Height are in grid cells.
type ItemDefinition struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Category    Category `yaml:"category"`
	Price       int      `yaml:"price"`
	Description string   `yaml:"description"`
	Width       int      `yaml:"width"`
	Height      int      `yaml:"height"`
	Color       string   `yaml:"color"`
	Icon        string   `yaml:"icon"`
}

// Catalog is an ordered, read-only list of item definitions.
type Catalog struct {
	items []ItemDefinition
	byID  map[string]int
}

// Load decodes the embedded catalog.
func Load() (*Catalog, error) {
	return Parse(itemsYAML)
}

// MustLoad is Load for program start-up; the embedded file is fixed at build time.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

// Parse builds a catalog from YAML, keeping file order.
func Parse(data []byte) (*Catalog, error) {
	var items []ItemDefinition
	if err := yaml.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return New(items)
}

// New builds a catalog from definitions, rejecting duplicates and bad footprints.
func New(items []ItemDefinition) (*Catalog, error) {
	c := &Catalog{
		items: make([]ItemDefinition, 0, len(items)),
		byID:  make(map[string]int, len(items)),
	}
	for _, item := range items {
		if item.ID == "" {
			return nil, errors.New("catalog item without id")
		}
		if _, dup := c.byID[item.ID]; dup {
			return nil, fmt.Errorf("duplicate catalog item %q", item.ID)
		}
		if !item.Category.Valid() {
			return nil, fmt.Errorf("catalog item %q: unknown category %q", item.ID, item.Category)
		}
		if item.Width < 1 || item.Height < 1 {
			return nil, fmt.Errorf("catalog item %q: footprint must be at least 1x1", item.ID)
		}
		c.byID[item.ID] = len(c.items)
		c.items = append(c.items, item)
	}
	return c, nil
}

// All returns a copy of every definition in catalog order.
func (c *Catalog) All() []ItemDefinition {
	return append([]ItemDefinition(nil), c.items...)
}

// Len returns the number of definitions.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Get looks up a definition by its catalog id.
func (c *Catalog) Get(id string) (ItemDefinition, bool) {
	i, ok := c.byID[id]
	if !ok {
		return ItemDefinition{}, false
	}
	return c.items[i], true
}

// Filter returns the definitions in category, or all of them when category is empty.
func (c *Catalog) Filter(category Category) []ItemDefinition {
	if category == "" {
		return c.All()
	}
	out := make([]ItemDefinition, 0, len(c.items))
	for _, item := range c.items {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out
}
