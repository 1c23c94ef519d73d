package state

import (
	"github.com/zyedidia/generic/mapset"

	"darkconsole/pkg/engine/calendar"
	"darkconsole/pkg/engine/world"
	"darkconsole/pkg/game/computer"
)

// maxMessages is the number of messages kept in the message log
const maxMessages = 5

const (
	itemUSBDrive  = "usb_drive"
	startingMoves = 100
	startingHP    = 84
)

// Mission is an active mission of the operator
type Mission struct {
	Type string
	Step int
}

// TypeID returns the mission type id
func (m *Mission) TypeID() string {
	return m.Type
}

// StepComplete records the completed mission step
func (m *Mission) StepComplete(step int) {
	if step > m.Step {
		m.Step = step
	}
}

// Game represents the state of the operator at a terminal
type Game struct {
	Position world.Point

	Moves             int
	MovesSpent        int
	SecurityClearance int
	Skill             int // computer skill
	HP                int
	Rads              int

	Psyshield  bool
	ElecImmune bool

	OwnedItems  mapset.Set[*world.Item]
	Missions    []*Mission
	Effects     map[string]calendar.Duration
	Messages    []string
	MemorialLog []string
}

// NewGame creates a new game state with the operator standing at pos
func NewGame(pos world.Point) *Game {
	return &Game{
		Position:   pos,
		Moves:      startingMoves,
		HP:         startingHP,
		OwnedItems: mapset.New[*world.Item](),
		Effects:    make(map[string]calendar.Duration),
		Messages:   make([]string, 0),
	}
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// PickUpItem adds an item to the operator's inventory
func (g *Game) PickUpItem(item *world.Item) {
	g.OwnedItems.Put(item)
}

// HasItem checks if the operator has a specific item
func (g *Game) HasItem(item *world.Item) bool {
	return g.OwnedItems.Has(item)
}

// AddMission starts a mission of the given type
func (g *Game) AddMission(typeID string) *Mission {
	m := &Mission{Type: typeID}
	g.Missions = append(g.Missions, m)
	return m
}

// Pos returns the operator position
func (g *Game) Pos() world.Point {
	return g.Position
}

// SpendMoves takes n moves from the operator. Moves may go negative; the turn loop pays it back.
func (g *Game) SpendMoves(n int) {
	g.Moves -= n
	g.MovesSpent += n
}

// ComputerSkill returns the operator's computer skill
func (g *Game) ComputerSkill() int {
	return g.Skill
}

// Clearance returns the security level the operator is cleared for
func (g *Game) Clearance() int {
	return g.SecurityClearance
}

// amount counts the inventory items with the given id. Stacks count their charges.
func (g *Game) amount(itemID string) int {
	n := 0
	g.OwnedItems.Each(func(it *world.Item) {
		if it.ID != itemID {
			return
		}
		if it.Charges > 0 {
			n += it.Charges
		} else {
			n++
		}
	})
	return n
}

// HasAmount returns true if the operator carries at least n of the item
func (g *Game) HasAmount(itemID string, n int) bool {
	return g.amount(itemID) >= n
}

// UseAmount consumes n of the item from the inventory
func (g *Game) UseAmount(itemID string, n int) {
	var used []*world.Item
	g.OwnedItems.Each(func(it *world.Item) {
		if n <= 0 || it.ID != itemID {
			return
		}
		if it.Charges > n {
			it.Charges -= n
			n = 0
			return
		}
		n -= max(1, it.Charges)
		used = append(used, it)
	})
	for _, it := range used {
		g.OwnedItems.Remove(it)
	}
}

// PickUSB returns a USB drive from the inventory, preferring an empty one
func (g *Game) PickUSB() *world.Item {
	var found *world.Item
	g.OwnedItems.Each(func(it *world.Item) {
		if it.ID != itemUSBDrive {
			return
		}
		if found == nil || (len(found.Contents) > 0 && len(it.Contents) == 0) {
			found = it
		}
	})
	return found
}

// ActiveMissions returns the missions in progress
func (g *Game) ActiveMissions() []computer.Mission {
	out := make([]computer.Mission, len(g.Missions))
	for i, m := range g.Missions {
		out[i] = m
	}
	return out
}

// AddMemorial records an entry in the memorial log
func (g *Game) AddMemorial(msg string) {
	g.MemorialLog = append(g.MemorialLog, msg)
}

// AddEffect applies an effect for the given duration, extending an active one
func (g *Game) AddEffect(effect string, d calendar.Duration) {
	g.Effects[effect] += d
}

// HasEffect returns true if the effect is active
func (g *Game) HasEffect(effect string) bool {
	return g.Effects[effect] > 0
}

// HasPsyshield returns true if the operator is protected from psychic effects
func (g *Game) HasPsyshield() bool {
	return g.Psyshield
}

// ElectricImmune returns true if the operator is protected from electric shocks
func (g *Game) ElectricImmune() bool {
	return g.ElecImmune
}

// Hurt damages the operator
func (g *Game) Hurt(damage int) {
	g.HP -= damage
}

// Irradiate adds a radiation dose
func (g *Game) Irradiate(dose int) {
	if dose > 0 {
		g.Rads += dose
	}
}

// Radiation returns the accumulated radiation dose
func (g *Game) Radiation() int {
	return g.Rads
}
