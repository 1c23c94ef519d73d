package world

// Item represents an item lying on a tile or carried by the operator
type Item struct {
	ID       string
	Name     string
	Charges  int
	Contents []*Item

	// MissionID links software and similar items to the mission that produced them (-1 = none)
	MissionID int

	Rotten bool
	Liquid bool
	Bionic bool

	// Source is the monster type a sample (e.g. blood) was taken from; empty means human
	Source string
}

// NewItem creates a new item with the given type id
func NewItem(id string) *Item {
	return &Item{ID: id, Name: id, MissionID: -1}
}

// NewItemWithCharges creates a stackable item such as a liquid
func NewItemWithCharges(id string, charges int) *Item {
	it := NewItem(id)
	it.Charges = charges
	return it
}

// PutIn replaces the item contents with a single inner item
func (i *Item) PutIn(inner *Item) {
	i.Contents = []*Item{inner}
}

// First returns the first contained item, or nil if empty
func (i *Item) First() *Item {
	if len(i.Contents) == 0 {
		return nil
	}
	return i.Contents[0]
}

// Convert changes the item type in place
func (i *Item) Convert(id string) {
	i.ID = id
	i.Name = id
}
