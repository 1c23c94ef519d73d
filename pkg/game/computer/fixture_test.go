package computer_test

import (
	"io"
	"math/rand"
	"testing"

	"darkconsole/pkg/engine/world"
	"darkconsole/pkg/game/computer"
	"darkconsole/pkg/game/content"
	"darkconsole/pkg/game/station"
	"darkconsole/pkg/game/terrain"
)

var testLegend = map[string]string{
	"#": terrain.ConcreteWall,
	".": terrain.Floor,
	"6": terrain.Console,
	"+": terrain.DoorMetalLocked,
	"d": terrain.DoorMetalClosed,
	"|": terrain.ReinforcedGlass,
	"&": terrain.SewagePump,
	"_": terrain.Floor + "/" + terrain.FurnCounter,
	"T": terrain.RadioTower,
	"o": terrain.RadPlatform,
	"R": terrain.FloorRed,
	"G": terrain.FloorGreen,
	"B": terrain.FloorBlue,
	"C": terrain.Centrifuge,
	"S": terrain.ShutterOpen,
	"E": terrain.ElevatorControlOff,
	"~": terrain.WaterPool,
}

// room is a small walled room with a console in the north west corner
var room = []string{
	"##########",
	"#6.......#",
	"#........#",
	"#+.......#",
	"##########",
}

type fixture struct {
	w *station.World
	e *computer.Engine
	c *computer.Computer
}

// stationOpts adjusts the station definition before the world is built
type stationOpts func(st *content.Station)

// newFixture builds a world from rows with the operator at the given position. Prompts are
// answered from in, which may be nil.
func newFixture(t *testing.T, rows []string, at content.Coord, in *station.Scripted, opts ...stationOpts) *fixture {
	t.Helper()
	st := &content.Station{
		Name:     "test",
		Legend:   testLegend,
		Map:      rows,
		Operator: content.OperatorDef{At: at},
		Snippets: map[string][]string{
			"lab_notes":     {"note one", "note two"},
			"radio_archive": {"static"},
		},
		MissionItems: map[int]string{1: "software_hacking"},
	}
	st.Level.Z = -1
	for _, opt := range opts {
		opt(st)
	}
	if in == nil {
		in = station.NewScripted()
	}
	con := station.NewConsole(io.Discard, in, 80)
	w, err := station.New(st, con, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("station.New: %v", err)
	}
	return &fixture{
		w: w,
		e: computer.NewEngine(rand.New(rand.NewSource(5))),
		c: computer.NewComputer("Test Terminal", 0),
	}
}

// at returns the point x, y on the fixture's level
func (f *fixture) at(x, y int) world.Point {
	return world.Point{X: x, Y: y, Z: f.w.LevelZ()}
}

func (f *fixture) count(ter string) int {
	n := 0
	for _, p := range f.w.LocalPoints() {
		if f.w.Terrain(p) == ter {
			n++
		}
	}
	return n
}

func (f *fixture) monsters() int {
	n := 0
	for _, p := range f.w.LocalPoints() {
		if f.w.HasMonster(p) {
			n++
		}
	}
	return n
}
