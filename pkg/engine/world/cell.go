// Package world provides generic tile-map primitives.
// These are engine-level constructs usable by any tile-based game.
package world

// Tile represents a single tile of a local map.
// This is a generic engine primitive; terrain and furniture ids are interpreted by the game.
type Tile struct {
	// Grid position
	Pos Point

	Terrain   string
	Furniture string
	Trap      string

	// Items lying on the tile
	Items []*Item

	// Fields (smoke, gas, ...) keyed by field id with their intensity
	Fields map[string]int

	Radiation int

	// GameData holds game-specific extensions.
	// Games should cast this to their specific type.
	GameData interface{}
}

// NewTile creates a new tile at the given position
func NewTile(pos Point, terrain string) *Tile {
	return &Tile{
		Pos:     pos,
		Terrain: terrain,
		Fields:  make(map[string]int),
	}
}

// AddItem puts an item on the tile
func (t *Tile) AddItem(it *Item) {
	t.Items = append(t.Items, it)
}

// RemoveItem removes the given item from the tile, returns false if it was not there
func (t *Tile) RemoveItem(it *Item) bool {
	for i, cur := range t.Items {
		if cur == it {
			t.Items = append(t.Items[:i], t.Items[i+1:]...)
			return true
		}
	}
	return false
}

// ClearItems removes every item from the tile
func (t *Tile) ClearItems() {
	t.Items = nil
}

// HasField returns true if the tile has the given field with a positive intensity
func (t *Tile) HasField(field string) bool {
	return t.Fields[field] > 0
}

// SetField sets a field intensity, removing it when intensity is not positive
func (t *Tile) SetField(field string, intensity int) {
	if intensity <= 0 {
		delete(t.Fields, field)
		return
	}
	t.Fields[field] = intensity
}
