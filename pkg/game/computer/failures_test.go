package computer_test

import (
	"testing"

	"darkconsole/pkg/engine/calendar"
	"darkconsole/pkg/engine/world"
	"darkconsole/pkg/game/computer"
	"darkconsole/pkg/game/content"
	"darkconsole/pkg/game/terrain"
)

func TestTriggerRandomFailureEmptyTable(t *testing.T) {
	f := newFixture(t, room, content.Coord{X: 2, Y: 1}, nil)
	f.w.Clock.Advance(calendar.Minutes(5))

	if got := f.e.TriggerRandomFailure(f.c, f.w); got != computer.FailureShutdown {
		t.Errorf("TriggerRandomFailure() = %v, want shutdown", got)
	}
	if f.w.Terrain(f.at(1, 1)) != terrain.ConsoleBroken {
		t.Error("console not shut down")
	}
	want := calendar.TimePoint(0).Add(calendar.Minutes(5 + computer.DefaultFailureMinutes))
	if f.c.NextAttempt != want {
		t.Errorf("NextAttempt = %d, want %d", f.c.NextAttempt, want)
	}
	if f.c.FailureReady(f.w.Now()) {
		t.Error("FailureReady right after a failure = true")
	}
}

func TestPickFailureUsesTable(t *testing.T) {
	f := newFixture(t, room, content.Coord{X: 2, Y: 1}, nil)
	f.c.AddFailureKind(computer.FailureAlarm)
	f.c.AddFailureKind(computer.FailureDamage)

	seen := make(map[computer.FailureKind]int)
	for i := 0; i < 200; i++ {
		seen[f.e.PickFailure(f.c)]++
	}
	if len(seen) != 2 || seen[computer.FailureAlarm] == 0 || seen[computer.FailureDamage] == 0 {
		t.Errorf("picked %v, want only alarm and damage", seen)
	}
}

func TestShutdownNearbyConsolesFirst(t *testing.T) {
	rows := []string{
		"##########",
		"#6......6#",
		"#........#",
		"##########",
	}
	f := newFixture(t, rows, content.Coord{X: 2, Y: 1}, nil)
	f.e.TriggerFailure(f.c, f.w, computer.FailureShutdown)
	if f.w.Terrain(f.at(1, 1)) != terrain.ConsoleBroken {
		t.Error("adjacent console not shut down")
	}
	if f.w.Terrain(f.at(8, 1)) != terrain.Console {
		t.Error("distant console shut down although one was adjacent")
	}

	f.w.Game.Position = f.at(4, 2)
	f.e.TriggerFailure(f.c, f.w, computer.FailureShutdown)
	if f.w.Terrain(f.at(8, 1)) != terrain.ConsoleBroken {
		t.Error("without adjacent consoles the rest of the map was not shut down")
	}
}

func TestAlarmAboveGroundCallsWanted(t *testing.T) {
	f := newFixture(t, room, content.Coord{X: 2, Y: 1}, nil, func(st *content.Station) { st.Level.Z = 1 })
	f.e.TriggerFailure(f.c, f.w, computer.FailureAlarm)
	at, ok := f.w.EventTime(computer.EventWanted)
	if !ok || at != calendar.TimePoint(0).Add(calendar.Minutes(30)) {
		t.Errorf("wanted event at %d, %v, want in 30 minutes", at, ok)
	}
	if len(f.w.Sounds) != 1 || f.w.Sounds[0].Volume != 60 {
		t.Errorf("sounds = %+v, want one alarm at volume 60", f.w.Sounds)
	}

	f.w.ScheduleEvent(computer.EventWanted, 5)
	f.e.TriggerFailure(f.c, f.w, computer.FailureAlarm)
	if at, _ := f.w.EventTime(computer.EventWanted); at != 5 {
		t.Errorf("queued wanted event moved to %d", at)
	}
}

func TestAlarmUndergroundNoWanted(t *testing.T) {
	f := newFixture(t, room, content.Coord{X: 2, Y: 1}, nil)
	f.e.TriggerFailure(f.c, f.w, computer.FailureAlarm)
	if f.w.EventQueued(computer.EventWanted) {
		t.Error("wanted event scheduled underground")
	}
	if len(f.w.Game.MemorialLog) != 1 {
		t.Error("alarm not recorded in the memorial log")
	}
}

var hall = []string{
	"###############",
	"#6............#",
	"#.............#",
	"#.............#",
	"#.............#",
	"#.............#",
	"#.............#",
	"#.............#",
	"#.............#",
	"###############",
}

func TestManhacksSpawnNearOperator(t *testing.T) {
	f := newFixture(t, hall, content.Coord{X: 7, Y: 5}, nil)
	f.e.TriggerFailure(f.c, f.w, computer.FailureManhacks)

	n := 0
	for _, p := range f.w.LocalPoints() {
		if !f.w.HasMonster(p) {
			continue
		}
		n++
		if f.w.Monster(p) != terrain.MonManhack {
			t.Errorf("spawned %q, want manhacks", f.w.Monster(p))
		}
		if d := world.Dist(p, f.w.Game.Pos()); d > 3 {
			t.Errorf("manhack spawned %d tiles away", d)
		}
	}
	if n < 4 || n > 8 {
		t.Errorf("spawned %d manhacks, want 4 to 8", n)
	}
}

func TestSecubotsSpawnOne(t *testing.T) {
	f := newFixture(t, hall, content.Coord{X: 7, Y: 5}, nil)
	f.e.TriggerFailure(f.c, f.w, computer.FailureSecubots)
	if n := f.monsters(); n != 1 {
		t.Errorf("spawned %d secubots, want 1", n)
	}
}

func TestDamage(t *testing.T) {
	f := newFixture(t, room, content.Coord{X: 2, Y: 1}, nil)
	hp := f.w.Game.HP
	f.e.TriggerFailure(f.c, f.w, computer.FailureDamage)
	if lost := hp - f.w.Game.HP; lost < 1 || lost > 10 {
		t.Errorf("lost %d HP, want 1 to 10", lost)
	}

	f.w.Game.ElecImmune = true
	hp = f.w.Game.HP
	f.e.TriggerFailure(f.c, f.w, computer.FailureDamage)
	if f.w.Game.HP != hp {
		t.Error("immune operator was hurt")
	}
}

var pumpRoom = []string{
	"##########",
	"#6.......#",
	"#...&....#",
	"#........#",
	"##########",
}

func TestPumpExplode(t *testing.T) {
	f := newFixture(t, pumpRoom, content.Coord{X: 2, Y: 1}, nil)
	f.e.TriggerFailure(f.c, f.w, computer.FailurePumpExplode)
	if f.count(terrain.SewagePump) != 0 || f.w.Furniture(f.at(4, 2)) != terrain.FurnRubble {
		t.Error("pump not destroyed")
	}
	if len(f.w.Explosions) != 1 {
		t.Errorf("got %d explosions, want 1", len(f.w.Explosions))
	}
}

func TestPumpLeak(t *testing.T) {
	f := newFixture(t, pumpRoom, content.Coord{X: 2, Y: 1}, nil)
	f.e.TriggerFailure(f.c, f.w, computer.FailurePumpLeak)
	n := f.count(terrain.Sewage)
	if n < 1 || n > 10 {
		t.Errorf("leaked onto %d tiles, want 1 to 10", n)
	}
	if f.count(terrain.SewagePump) != 1 {
		t.Error("leak replaced the pump")
	}
}

func TestAmigaraFailure(t *testing.T) {
	f := newFixture(t, hall, content.Coord{X: 7, Y: 5}, nil)
	f.c.AddAction("Start", computer.ActionAmigaraStart, 0)
	f.e.TriggerFailure(f.c, f.w, computer.FailureAmigara)

	if at, ok := f.w.EventTime(computer.EventAmigara); !ok || at != calendar.TimePoint(0).Add(calendar.Seconds(30)) {
		t.Errorf("amigara event at %d, %v, want in 30 seconds", at, ok)
	}
	if len(f.w.Explosions) != 2 {
		t.Errorf("got %d explosions, want 2", len(f.w.Explosions))
	}
	if len(f.c.Options()) != 0 {
		t.Error("amigara_start still offered")
	}
}

func TestDestroyBlood(t *testing.T) {
	rows := []string{
		"#######",
		"#6.C..#",
		"#.....#",
		"#######",
	}
	f := newFixture(t, rows, content.Coord{X: 2, Y: 1}, nil, func(st *content.Station) {
		st.Items = []content.PlacedItem{{At: content.Coord{X: 3, Y: 1}, ID: "vacutainer", Contents: []string{"blood"}}}
	})
	f.e.TriggerFailure(f.c, f.w, computer.FailureDestroyBlood)
	if len(f.w.Items(f.at(3, 1))) != 0 {
		t.Error("blood sample survived")
	}
}

func TestDestroyBloodKeepsOtherSamples(t *testing.T) {
	rows := []string{
		"#######",
		"#6.C..#",
		"#.....#",
		"#######",
	}
	f := newFixture(t, rows, content.Coord{X: 2, Y: 1}, nil, withItem("jar_glass", 3, 1))
	f.e.TriggerFailure(f.c, f.w, computer.FailureDestroyBlood)
	if len(f.w.Items(f.at(3, 1))) != 1 {
		t.Error("non-blood item destroyed")
	}
}

func TestDestroyData(t *testing.T) {
	rows := []string{
		"#######",
		"#6..B.#",
		"#...B.#",
		"#######",
	}
	f := newFixture(t, rows, content.Coord{X: 2, Y: 1}, nil, func(st *content.Station) {
		st.Items = []content.PlacedItem{
			{At: content.Coord{X: 4, Y: 1}, ID: "usb_drive", Contents: []string{"software_hacking"}},
			{At: content.Coord{X: 4, Y: 2}, ID: "usb_drive"},
		}
	})
	f.e.TriggerFailure(f.c, f.w, computer.FailureDestroyData)
	if len(f.w.Items(f.at(4, 1))) != 0 {
		t.Error("drive with data survived")
	}
	if len(f.w.Items(f.at(4, 2))) != 1 {
		t.Error("empty drive destroyed")
	}
}

func TestTriggerFailureInvalid(t *testing.T) {
	f := newFixture(t, room, content.Coord{X: 2, Y: 1}, nil)
	f.e.TriggerFailure(f.c, f.w, computer.FailureKind(77))
	if len(f.w.Diagnostics) != 1 {
		t.Errorf("got %d diagnostics, want 1", len(f.w.Diagnostics))
	}
	if f.w.Terrain(f.at(1, 1)) != terrain.Console {
		t.Error("invalid failure changed the map")
	}
}
