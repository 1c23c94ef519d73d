// Package station is the in-memory game world terminals act upon: one level of a station built
// from content, the operator standing in it and the console they are typing at.
package station

import (
	"math/rand"
	"strings"

	"github.com/leonelquinteros/gotext"
	"github.com/zyedidia/generic/mapset"

	"darkconsole/pkg/engine/calendar"
	"darkconsole/pkg/engine/world"
	"darkconsole/pkg/game/computer"
	"darkconsole/pkg/game/renderer"
	"darkconsole/pkg/game/state"
	"darkconsole/pkg/game/terrain"
	gameworld "darkconsole/pkg/game/world"
)

const (
	turretPrefix = "mon_turret"

	missionRefugeeCenter = "MISSION_REACH_REFUGEE_CENTER"

	// cascadeRadius is the size of the area torn up by a resonance cascade
	cascadeRadius = 8
)

// Blast is an explosion that happened on the map
type Blast struct {
	At    world.Point
	Power int
}

// Noise is a sound made on the map
type Noise struct {
	At          world.Point
	Volume      int
	Description string
}

// Terminal is a terminal standing on the map
type Terminal struct {
	At       world.Point
	Computer *computer.Computer
}

// World implements computer.World for one station level
type World struct {
	*Console

	Name  string
	Grid  *world.Grid
	Game  *state.Game
	Clock *calendar.Clock

	Overmap *Overmap

	levelX, levelY int

	rand          *rand.Rand
	snippets      map[string][]string
	missionItems  map[int]string
	itemTemplates mapset.Set[string]
	events        map[string]calendar.TimePoint

	Explosions  []Blast
	Sounds      []Noise
	Cascades    []world.Point
	Diagnostics []string
}

var _ computer.World = (*World)(nil)

func (w *World) intn(n int) int {
	if n <= 0 {
		return 0
	}
	if w.rand != nil {
		return w.rand.Intn(n)
	}
	return rand.Intn(n)
}

func (w *World) tile(p world.Point) *world.Tile {
	return w.Grid.GetTile(p)
}

// Terminals returns every terminal of the level in map order
func (w *World) Terminals() []Terminal {
	var out []Terminal
	w.Grid.ForEachTile(func(p world.Point, t *world.Tile) {
		if gameworld.HasTerminal(t) {
			out = append(out, Terminal{At: p, Computer: gameworld.GetGameData(t).Terminal})
		}
	})
	return out
}

// TerminalAt returns the terminal installed at p, nil if there is none
func (w *World) TerminalAt(p world.Point) *computer.Computer {
	t := w.tile(p)
	if t == nil {
		return nil
	}
	return gameworld.GetGameData(t).Terminal
}

// SetTerminal installs a terminal at p, replacing any previous one
func (w *World) SetTerminal(p world.Point, c *computer.Computer) bool {
	t := w.tile(p)
	if t == nil {
		return false
	}
	gameworld.GetGameData(t).Terminal = c
	return true
}

// StandAt moves the operator next to the console at p. Returns false if no tile around it is free.
func (w *World) StandAt(p world.Point) bool {
	for _, q := range w.Grid.PointsInRadius(p, 1) {
		if q != p && w.IsEmpty(q) {
			w.Game.Position = q
			return true
		}
	}
	return false
}

// Operator returns the character using the terminal
func (w *World) Operator() computer.Operator {
	return w.Game
}

// AddMessage adds a message to the operator's message log
func (w *World) AddMessage(severity computer.Severity, msg string) {
	w.Game.AddMessage(renderer.MessageMarkup(severity, msg))
}

// Diagnostic records an internal error and shows it in the message log
func (w *World) Diagnostic(msg string) {
	w.Diagnostics = append(w.Diagnostics, msg)
	w.Game.AddMessage("DENIED{" + msg + "}")
}

// Map

func (w *World) Terrain(p world.Point) string {
	if t := w.tile(p); t != nil {
		return t.Terrain
	}
	return ""
}

func (w *World) SetTerrain(p world.Point, ter string) {
	if t := w.tile(p); t != nil {
		t.Terrain = ter
	}
}

func (w *World) Furniture(p world.Point) string {
	if t := w.tile(p); t != nil {
		return t.Furniture
	}
	return ""
}

func (w *World) HasFlag(flag string, p world.Point) bool {
	return terrain.HasFlag(w.Terrain(p), flag)
}

func (w *World) Passable(p world.Point) bool {
	return terrain.Passable(w.Terrain(p))
}

func (w *World) LocalPoints() []world.Point {
	return w.Grid.Points()
}

func (w *World) PointsInRadius(center world.Point, radius int) []world.Point {
	return w.Grid.PointsInRadius(center, radius)
}

func (w *World) TranslateRadius(from, to string, radius float64, center world.Point, toggle bool) {
	w.Grid.TranslateRadius(from, to, radius, center, toggle)
}

// Items returns a copy of the items lying at p
func (w *World) Items(p world.Point) []*world.Item {
	t := w.tile(p)
	if t == nil {
		return nil
	}
	out := make([]*world.Item, len(t.Items))
	copy(out, t.Items)
	return out
}

func (w *World) AddItem(p world.Point, it *world.Item) {
	if t := w.tile(p); t != nil {
		t.AddItem(it)
	}
}

func (w *World) RemoveItem(p world.Point, it *world.Item) {
	if t := w.tile(p); t != nil {
		t.RemoveItem(it)
	}
}

func (w *World) ClearItems(p world.Point) {
	if t := w.tile(p); t != nil {
		t.ClearItems()
	}
}

func (w *World) HasItemTemplate(itemID string) bool {
	return w.itemTemplates.Has(itemID)
}

// AddField raises the field at p to at least the given intensity
func (w *World) AddField(p world.Point, field string, intensity int) {
	if t := w.tile(p); t != nil {
		t.SetField(field, max(t.Fields[field], intensity))
	}
}

func (w *World) RemoveField(p world.Point, field string) {
	if t := w.tile(p); t != nil {
		t.SetField(field, 0)
	}
}

func (w *World) HasField(p world.Point, field string) bool {
	if t := w.tile(p); t != nil {
		return t.HasField(field)
	}
	return false
}

func (w *World) Radiation(p world.Point) int {
	if t := w.tile(p); t != nil {
		return t.Radiation
	}
	return 0
}

// AdjustRadiation changes the radiation at p; it never drops below zero
func (w *World) AdjustRadiation(p world.Point, delta int) {
	if t := w.tile(p); t != nil {
		t.Radiation = max(0, t.Radiation+delta)
	}
}

func (w *World) Trap(p world.Point) string {
	if t := w.tile(p); t != nil {
		return t.Trap
	}
	return ""
}

func (w *World) SetTrap(p world.Point, trap string) {
	if t := w.tile(p); t != nil {
		t.Trap = trap
	}
}

func (w *World) RemoveTrap(p world.Point) {
	w.SetTrap(p, "")
}

// MakeRubble leaves rubble furniture at p. Walls and machinery collapse into floor.
func (w *World) MakeRubble(p world.Point, furniture string) {
	t := w.tile(p)
	if t == nil {
		return
	}
	if !terrain.Passable(t.Terrain) {
		t.Terrain = terrain.Floor
	}
	t.Furniture = furniture
	w.RemoveTrap(p)
}

// Explosion hurts the operator when close enough and fills the area with smoke
func (w *World) Explosion(p world.Point, power int) {
	w.Explosions = append(w.Explosions, Blast{At: p, Power: power})
	for _, q := range w.Grid.PointsInRadius(p, 1) {
		w.AddField(q, terrain.FieldSmoke, 2)
	}
	w.Sound(p, power, gotext.Get("a huge explosion!"))

	dist := world.Dist(w.Game.Pos(), p)
	if reach := power / 10; dist <= reach {
		w.AddMessage(computer.MsgBad, gotext.Get("You are caught in the blast!"))
		w.Game.Hurt(power / (dist + 1))
	}
}

// ResonanceCascade tears open portals around p and wrecks the machinery nearby
func (w *World) ResonanceCascade(p world.Point) {
	w.Cascades = append(w.Cascades, p)
	w.AddMessage(computer.MsgWarning, gotext.Get("The air shimmers and tears open!"))
	for _, q := range w.Grid.PointsInRadius(p, cascadeRadius) {
		switch w.intn(10) {
		case 0:
			w.SetTrap(q, terrain.TrapPortal)
		case 1:
			if !w.Passable(q) && !w.HasFlag(terrain.FlagWall, q) {
				w.MakeRubble(q, terrain.FurnRubble)
			}
		}
	}
	w.Explosion(p, 20)
}

// Sound records a sound. The operator hears it when within its volume.
func (w *World) Sound(p world.Point, volume int, description string) {
	w.Sounds = append(w.Sounds, Noise{At: p, Volume: volume, Description: description})
	if world.Dist(w.Game.Pos(), p) <= volume {
		w.AddMessage(computer.MsgWarning, gotext.Get("You hear %s", description))
	}
}

// OperatorSees reports whether the operator has line of sight to p
func (w *World) OperatorSees(p world.Point, rng int) bool {
	return world.HasLineOfSight(w.Grid, w.Game.Pos(), p, rng, func(t *world.Tile) bool {
		return terrain.Opaque(t.Terrain)
	})
}

// Creatures

// IsEmpty reports whether p is passable, free of creatures and not the operator's tile
func (w *World) IsEmpty(p world.Point) bool {
	t := w.tile(p)
	if t == nil || !terrain.Passable(t.Terrain) {
		return false
	}
	return !gameworld.HasMonster(t) && p != w.Game.Pos()
}

func (w *World) SpawnMonster(kind string, p world.Point) bool {
	if !w.IsEmpty(p) {
		return false
	}
	return gameworld.PlaceMonster(w.tile(p), kind)
}

func (w *World) KillMonster(p world.Point) bool {
	t := w.tile(p)
	if t == nil {
		return false
	}
	return gameworld.RemoveMonster(t)
}

func (w *World) HasMonster(p world.Point) bool {
	t := w.tile(p)
	return t != nil && gameworld.HasMonster(t)
}

// Monster returns the kind of creature at p, empty if there is none
func (w *World) Monster(p world.Point) string {
	if t := w.tile(p); t != nil {
		return gameworld.GetGameData(t).Monster
	}
	return ""
}

// RemoveTurrets removes every turret of the level
func (w *World) RemoveTurrets() {
	w.Grid.ForEachTile(func(_ world.Point, t *world.Tile) {
		if strings.HasPrefix(gameworld.GetGameData(t).Monster, turretPrefix) {
			gameworld.RemoveMonster(t)
		}
	})
}

// Overworld

func (w *World) RevealArea(radius int) {
	w.Overmap.RevealArea(radius)
}

func (w *World) RevealMatching(radius int, match func(overmapID string) bool) {
	w.Overmap.RevealMatching(radius, match)
}

// MarkRefugeeCenter looks up the nearest evacuation center, reveals it and starts a mission to
// reach it
func (w *World) MarkRefugeeCenter() {
	w.PrintLine("%s", gotext.Get("SEARCHING FOR NEAREST REFUGEE CENTER, PLEASE WAIT ... "))
	c, ok := w.Overmap.Nearest(func(id string) bool {
		return strings.HasPrefix(id, "evac_center")
	})
	if !ok {
		w.PrintError("%s", gotext.Get("ERROR: NO REFUGEE CENTER FOUND."))
		w.QueryAny(gotext.Get("Press any key to continue..."))
		return
	}
	w.Overmap.Mark(c)
	w.Game.AddMission(missionRefugeeCenter)
	w.PrintLine("%s", gotext.Get("\nREFUGEE CENTER FOUND! LOCATION: %d %s\n", c.dist(), compass(c)))
	w.QueryAny(gotext.Get("Press any key to continue..."))
}

// compass names the direction of an overmap offset
func compass(c OvermapCoord) string {
	var dir string
	switch {
	case c.Y < 0:
		dir = "NORTH"
	case c.Y > 0:
		dir = "SOUTH"
	}
	switch {
	case c.X > 0:
		dir += "EAST"
	case c.X < 0:
		dir += "WEST"
	}
	if dir == "" {
		return "HERE"
	}
	return dir
}

func (w *World) LevelX() int {
	return w.levelX
}

func (w *World) LevelY() int {
	return w.levelY
}

func (w *World) LevelZ() int {
	return w.Grid.Z()
}

func (w *World) ScheduleEvent(event string, at calendar.TimePoint) {
	w.events[event] = at
}

func (w *World) EventQueued(event string) bool {
	_, ok := w.events[event]
	return ok
}

// EventTime returns when a queued event fires
func (w *World) EventTime(event string) (calendar.TimePoint, bool) {
	at, ok := w.events[event]
	return at, ok
}

// Snippet picks the snippet of the category for the seed, the same seed always gives the same text
func (w *World) Snippet(category string, seed int) string {
	list := w.snippets[category]
	if len(list) == 0 {
		return ""
	}
	return list[abs(seed)%len(list)]
}

func (w *World) RandomSnippet(category string) string {
	list := w.snippets[category]
	if len(list) == 0 {
		return ""
	}
	return list[w.intn(len(list))]
}

func (w *World) MissionItem(missionID int) (string, bool) {
	id, ok := w.missionItems[missionID]
	return id, ok
}

func (w *World) Now() calendar.TimePoint {
	return w.Clock.Now()
}
