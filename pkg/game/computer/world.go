package computer

import (
	"darkconsole/pkg/engine/calendar"
	"darkconsole/pkg/engine/world"
)

// Severity classifies a message added to the message log
type Severity int

// Message severities
const (
	MsgInfo Severity = iota
	MsgNeutral
	MsgGood
	MsgBad
	MsgWarning
)

// Events scheduled by terminals
const (
	EventAmigara = "EVENT_AMIGARA"
	EventWanted  = "EVENT_WANTED"
)

// Mission is an active mission of the operator
type Mission interface {
	TypeID() string
	StepComplete(step int)
}

// Operator is the character using a terminal
type Operator interface {
	Pos() world.Point
	SpendMoves(n int)

	// Clearance is the security level the operator is cleared for
	Clearance() int
	// ComputerSkill is used for forced access attempts
	ComputerSkill() int

	HasAmount(itemID string, n int) bool
	UseAmount(itemID string, n int)
	// PickUSB asks the operator for a USB drive, nil if none was chosen
	PickUSB() *world.Item

	ActiveMissions() []Mission

	AddMemorial(msg string)
	AddEffect(effect string, d calendar.Duration)
	HasPsyshield() bool
	ElectricImmune() bool
	Hurt(damage int)
	Irradiate(dose int)
	Radiation() int
}

// Map is the local map around the terminal
type Map interface {
	Terrain(p world.Point) string
	SetTerrain(p world.Point, ter string)
	Furniture(p world.Point) string
	HasFlag(flag string, p world.Point) bool
	Passable(p world.Point) bool

	// LocalPoints returns every tile of the loaded local map on the operator's level
	LocalPoints() []world.Point
	PointsInRadius(center world.Point, radius int) []world.Point
	TranslateRadius(from, to string, radius float64, center world.Point, toggle bool)

	Items(p world.Point) []*world.Item
	AddItem(p world.Point, it *world.Item)
	RemoveItem(p world.Point, it *world.Item)
	ClearItems(p world.Point)
	HasItemTemplate(itemID string) bool

	AddField(p world.Point, field string, intensity int)
	RemoveField(p world.Point, field string)
	HasField(p world.Point, field string) bool
	Radiation(p world.Point) int
	AdjustRadiation(p world.Point, delta int)

	Trap(p world.Point) string
	SetTrap(p world.Point, trap string)
	RemoveTrap(p world.Point)

	MakeRubble(p world.Point, furniture string)
	Explosion(p world.Point, power int)
	ResonanceCascade(p world.Point)
	Sound(p world.Point, volume int, description string)
	// OperatorSees reports whether the operator has line of sight to p within the given range
	OperatorSees(p world.Point, rng int) bool
}

// Creatures spawns and removes monsters
type Creatures interface {
	// IsEmpty reports whether a creature could be placed at p
	IsEmpty(p world.Point) bool
	SpawnMonster(kind string, p world.Point) bool
	// KillMonster kills the monster at p, returns false if there is none
	KillMonster(p world.Point) bool
	HasMonster(p world.Point) bool
	// RemoveTurrets disarms the automated defenses of the current map section
	RemoveTurrets()
}

// Overworld gives access to the world beyond the local map
type Overworld interface {
	// RevealArea reveals the overmap around the operator
	RevealArea(radius int)
	// RevealMatching reveals the overmap tiles within radius whose id matches
	RevealMatching(radius int, match func(overmapID string) bool)
	MarkRefugeeCenter()
	// LevelX, LevelY and LevelZ locate the local map in the world
	LevelX() int
	LevelY() int
	LevelZ() int

	ScheduleEvent(event string, at calendar.TimePoint)
	EventQueued(event string) bool

	// Snippet returns a deterministic text snippet of the category for the seed
	Snippet(category string, seed int) string
	RandomSnippet(category string) string
	// MissionItem returns the item produced by a mission, false if the mission is unknown
	MissionItem(missionID int) (string, bool)

	Now() calendar.TimePoint
}

// Console is the terminal screen and keyboard
type Console interface {
	Reset()
	PrintLine(format string, args ...any)
	PrintError(format string, args ...any)
	PrintGibberish()
	// QueryAny shows a message and waits for any key
	QueryAny(msg string)
	// QueryBool asks a yes/no question that can be answered with a single key
	QueryBool(msg string) bool
	// QueryYN asks a yes/no question that has to be confirmed
	QueryYN(msg string) bool
	WaitForAnyKey()
	// Choose shows a menu and returns the selected index, false if the operator quit
	Choose(title string, choices []string) (int, bool)
}

// World is everything a terminal can affect. It is passed to every action explicitly.
type World interface {
	Map
	Creatures
	Overworld
	Console

	Operator() Operator
	AddMessage(severity Severity, msg string)
	// Diagnostic reports an internal error
	Diagnostic(msg string)
}
