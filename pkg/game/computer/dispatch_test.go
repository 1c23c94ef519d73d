package computer_test

import (
	"strings"
	"testing"

	"darkconsole/pkg/engine/world"
	"darkconsole/pkg/game/computer"
	"darkconsole/pkg/game/content"
	"darkconsole/pkg/game/station"
	"darkconsole/pkg/game/terrain"
)

func withMonster(kind string, x, y int) stationOpts {
	return func(st *content.Station) {
		st.Monsters = append(st.Monsters, content.PlacedMonster{At: content.Coord{X: x, Y: y}, Kind: kind})
	}
}

func withItem(id string, x, y int) stationOpts {
	return func(st *content.Station) {
		st.Items = append(st.Items, content.PlacedItem{At: content.Coord{X: x, Y: y}, ID: id})
	}
}

func TestExecuteUnavailable(t *testing.T) {
	f := newFixture(t, room, content.Coord{X: 2, Y: 1}, nil)
	if got := f.e.Execute(f.c, f.w, computer.ActionOpen); got != computer.OutcomeUnavailable {
		t.Errorf("Execute() = %v, want unavailable", got)
	}
	if len(f.w.Diagnostics) != 1 {
		t.Errorf("got %d diagnostics, want 1", len(f.w.Diagnostics))
	}
	if f.w.Game.MovesSpent != 0 {
		t.Errorf("MovesSpent = %d, want 0", f.w.Game.MovesSpent)
	}
}

func TestExecuteDenied(t *testing.T) {
	f := newFixture(t, room, content.Coord{X: 2, Y: 1}, nil)
	f.c.SetAccessDeniedMessage("Intruder!")
	f.c.AddAction("Open", computer.ActionOpen, 3)
	f.w.Game.SecurityClearance = 2

	if got := f.e.Execute(f.c, f.w, computer.ActionOpen); got != computer.OutcomeDenied {
		t.Fatalf("Execute() = %v, want denied", got)
	}
	if f.count(terrain.DoorMetalLocked) != 1 {
		t.Error("denied action opened the door")
	}
	if f.w.Game.MovesSpent != 0 {
		t.Errorf("MovesSpent = %d, want 0", f.w.Game.MovesSpent)
	}
	lines := f.w.Transcript()
	if len(lines) == 0 || lines[len(lines)-1] != "Intruder!" {
		t.Errorf("transcript %q does not end with the access denied message", lines)
	}
}

func TestExecuteClearanceEqualSecurity(t *testing.T) {
	f := newFixture(t, room, content.Coord{X: 2, Y: 1}, nil)
	f.c.AddAction("Open", computer.ActionOpen, 3)
	f.w.Game.SecurityClearance = 3

	if got := f.e.Execute(f.c, f.w, computer.ActionOpen); got != computer.OutcomeDone {
		t.Fatalf("Execute() = %v, want done", got)
	}
	if f.count(terrain.DoorMetalLocked) != 0 {
		t.Error("door still locked")
	}
	if f.w.Game.MovesSpent != computer.DefaultActionMoveCost {
		t.Errorf("MovesSpent = %d, want %d", f.w.Game.MovesSpent, computer.DefaultActionMoveCost)
	}
}

func TestExecuteUsesFirstDuplicate(t *testing.T) {
	f := newFixture(t, room, content.Coord{X: 2, Y: 1}, nil)
	f.c.AddAction("Open", computer.ActionOpen, 5)
	f.c.AddAction("Open too", computer.ActionOpen, 0)
	if got := f.e.Execute(f.c, f.w, computer.ActionOpen); got != computer.OutcomeDenied {
		t.Errorf("Execute() = %v, want denied by the first option", got)
	}
}

func TestExecuteBypass(t *testing.T) {
	f := newFixture(t, room, content.Coord{X: 2, Y: 1}, nil)
	if got := f.e.ExecuteBypass(f.c, f.w, computer.ActionUnlock); got != computer.OutcomeDone {
		t.Fatalf("ExecuteBypass() = %v, want done", got)
	}
	if f.count(terrain.DoorMetalClosed) != 1 {
		t.Error("door not unlocked")
	}
}

func TestExecuteInvalidKind(t *testing.T) {
	f := newFixture(t, room, content.Coord{X: 2, Y: 1}, nil)
	f.c.AddOption(computer.Option{Name: "Broken", Action: computer.ActionKind(999)})
	if got := f.e.Execute(f.c, f.w, computer.ActionKind(999)); got != computer.OutcomeFailed {
		t.Errorf("Execute() = %v, want failed", got)
	}
	if len(f.w.Diagnostics) != 1 {
		t.Errorf("got %d diagnostics, want 1", len(f.w.Diagnostics))
	}
}

func TestExecuteSentinelKindsDoNothing(t *testing.T) {
	for _, kind := range []computer.ActionKind{computer.ActionNull, computer.NumActions} {
		f := newFixture(t, room, content.Coord{X: 2, Y: 1}, nil)
		if got := f.e.ExecuteBypass(f.c, f.w, kind); got != computer.OutcomeDone {
			t.Errorf("ExecuteBypass(%d) = %v, want done", int(kind), got)
		}
		if len(f.w.Diagnostics) != 0 {
			t.Errorf("ExecuteBypass(%d) diagnostics = %v, want none", int(kind), f.w.Diagnostics)
		}
		if f.w.Game.MovesSpent != f.e.ActionMoveCost {
			t.Errorf("ExecuteBypass(%d) MovesSpent = %d, want %d", int(kind), f.w.Game.MovesSpent, f.e.ActionMoveCost)
		}
	}
}

var glassRoom = []string{
	"##########",
	"#6...|...#",
	"#....|...#",
	"#+.......#",
	"##########",
}

func TestDisarmRemovesTurretsAndRunsAction(t *testing.T) {
	tests := []struct {
		kind  computer.ActionKind
		check func(f *fixture) bool
	}{
		{computer.ActionOpenDisarm, func(f *fixture) bool { return f.count(terrain.DoorMetalLocked) == 0 }},
		{computer.ActionUnlockDisarm, func(f *fixture) bool { return f.count(terrain.DoorMetalClosed) == 1 }},
		{computer.ActionReleaseDisarm, func(f *fixture) bool { return f.w.Terrain(f.at(5, 1)) == terrain.ThickConcFloor }},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			f := newFixture(t, glassRoom, content.Coord{X: 2, Y: 1}, nil,
				withMonster("mon_turret", 7, 2), withMonster("mon_zombie", 7, 3))
			f.c.AddAction("Disarm", tt.kind, 0)
			if got := f.e.Execute(f.c, f.w, tt.kind); got != computer.OutcomeDone {
				t.Fatalf("Execute() = %v, want done", got)
			}
			if f.w.HasMonster(f.at(7, 2)) {
				t.Error("turret not removed")
			}
			if !f.w.HasMonster(f.at(7, 3)) {
				t.Error("non-turret monster removed")
			}
			if !tt.check(f) {
				t.Error("base action did not run")
			}
		})
	}
}

// recordingWorld logs the calls made by disarm actions and their base effects
type recordingWorld struct {
	computer.World
	calls []string
}

func (r *recordingWorld) RemoveTurrets() {
	r.calls = append(r.calls, "RemoveTurrets")
	r.World.RemoveTurrets()
}

func (r *recordingWorld) TranslateRadius(from, to string, radius float64, center world.Point, toggle bool) {
	r.calls = append(r.calls, "TranslateRadius")
	r.World.TranslateRadius(from, to, radius, center, toggle)
}

func (r *recordingWorld) Sound(p world.Point, volume int, description string) {
	r.calls = append(r.calls, "Sound")
	r.World.Sound(p, volume, description)
}

func TestDisarmRunsBeforeBaseEffect(t *testing.T) {
	tests := []struct {
		kind computer.ActionKind
		want string
	}{
		{computer.ActionOpenDisarm, "RemoveTurrets,TranslateRadius"},
		{computer.ActionUnlockDisarm, "RemoveTurrets,TranslateRadius"},
		{computer.ActionReleaseDisarm, "RemoveTurrets,Sound,TranslateRadius"},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			f := newFixture(t, glassRoom, content.Coord{X: 2, Y: 1}, nil, withMonster("mon_turret", 7, 2))
			rec := &recordingWorld{World: f.w}
			if got := f.e.ExecuteBypass(f.c, rec, tt.kind); got != computer.OutcomeDone {
				t.Fatalf("ExecuteBypass() = %v, want done", got)
			}
			if got := strings.Join(rec.calls, ","); got != tt.want {
				t.Errorf("calls = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestReleaseBionicsRadius(t *testing.T) {
	f := newFixture(t, glassRoom, content.Coord{X: 2, Y: 1}, nil)
	f.e.ExecuteBypass(f.c, f.w, computer.ActionReleaseBionics)
	if f.w.Terrain(f.at(5, 1)) != terrain.ThickConcFloor {
		t.Error("glass within 3 tiles not opened")
	}
	if f.w.Terrain(f.at(5, 2)) != terrain.ReinforcedGlass {
		t.Error("glass beyond 3 tiles opened")
	}
}

func TestCascadeDeclined(t *testing.T) {
	f := newFixture(t, room, content.Coord{X: 2, Y: 1}, station.NewScripted("n"))
	f.c.AddAction("Cascade", computer.ActionCascade, 0)
	if got := f.e.Execute(f.c, f.w, computer.ActionCascade); got != computer.OutcomeCancelled {
		t.Fatalf("Execute() = %v, want cancelled", got)
	}
	if len(f.w.Cascades) != 0 || len(f.w.Game.MemorialLog) != 0 {
		t.Error("declined cascade changed the world")
	}
}

func TestCascadeConfirmed(t *testing.T) {
	f := newFixture(t, room, content.Coord{X: 2, Y: 1}, station.NewScripted("y"))
	if got := f.e.ExecuteBypass(f.c, f.w, computer.ActionCascade); got != computer.OutcomeDone {
		t.Fatalf("ExecuteBypass() = %v, want done", got)
	}
	if len(f.w.Cascades) != 1 {
		t.Errorf("got %d cascades, want 1", len(f.w.Cascades))
	}
}

func TestResearchLogsAlerts(t *testing.T) {
	f := newFixture(t, room, content.Coord{X: 2, Y: 1}, nil)
	f.c.AddAction("Research", computer.ActionResearch, 0)
	f.e.Execute(f.c, f.w, computer.ActionResearch)
	f.e.Execute(f.c, f.w, computer.ActionResearch)
	if f.c.Alerts != 2 {
		t.Errorf("Alerts = %d, want 2", f.c.Alerts)
	}
	if !strings.Contains(strings.Join(f.w.Transcript(), "\n"), "anomalous archive-access") {
		t.Error("second read did not warn about anomalous access")
	}
}

func TestMapsRemovesItself(t *testing.T) {
	f := newFixture(t, room, content.Coord{X: 2, Y: 1}, nil, func(st *content.Station) {
		st.Overmap = map[string]string{"0,0": "lab", "12,-3": "field", "50,0": "forest"}
	})
	f.c.AddAction("Maps", computer.ActionMaps, 0)
	f.c.AddAction("Open", computer.ActionOpen, 0)

	if got := f.e.Execute(f.c, f.w, computer.ActionMaps); got != computer.OutcomeDone {
		t.Fatalf("Execute() = %v, want done", got)
	}
	if _, ok := f.c.FindOption(computer.ActionMaps); ok {
		t.Error("maps option still offered")
	}
	if len(f.c.Options()) != 1 {
		t.Errorf("got %d options, want 1", len(f.c.Options()))
	}
	if f.c.Alerts != 1 {
		t.Errorf("Alerts = %d, want 1", f.c.Alerts)
	}
	if f.w.Overmap.SeenCount() != 2 {
		t.Errorf("revealed %d overmap tiles, want 2", f.w.Overmap.SeenCount())
	}
	if got := f.e.Execute(f.c, f.w, computer.ActionMaps); got != computer.OutcomeUnavailable {
		t.Errorf("second Execute() = %v, want unavailable", got)
	}
}

func TestMapSewerRevealsSewers(t *testing.T) {
	f := newFixture(t, room, content.Coord{X: 2, Y: 1}, nil, func(st *content.Station) {
		st.Overmap = map[string]string{"1,0": "sewer_ns", "2,0": "sewage_treatment", "3,0": "house_north"}
	})
	f.e.ExecuteBypass(f.c, f.w, computer.ActionMapSewer)
	if f.w.Overmap.SeenCount() != 2 || f.w.Overmap.Seen(station.OvermapCoord{X: 3}) {
		t.Errorf("revealed %d tiles, want the two sewer tiles", f.w.Overmap.SeenCount())
	}
}

func TestDownloadSoftware(t *testing.T) {
	f := newFixture(t, room, content.Coord{X: 2, Y: 1}, nil, func(st *content.Station) {
		st.Operator.Items = []string{"usb_drive"}
	})
	f.c.SetMission(1)
	if got := f.e.ExecuteBypass(f.c, f.w, computer.ActionDownloadSoftware); got != computer.OutcomeDone {
		t.Fatalf("ExecuteBypass() = %v, want done", got)
	}
	usb := f.w.Game.PickUSB()
	if sw := usb.First(); sw == nil || sw.ID != "software_hacking" || sw.MissionID != 1 {
		t.Errorf("usb contents = %+v, want the mission software", usb.Contents)
	}
}

func TestDownloadSoftwareUnknownMission(t *testing.T) {
	f := newFixture(t, room, content.Coord{X: 2, Y: 1}, nil, func(st *content.Station) {
		st.Operator.Items = []string{"usb_drive"}
	})
	f.c.SetMission(42)
	if got := f.e.ExecuteBypass(f.c, f.w, computer.ActionDownloadSoftware); got != computer.OutcomeFailed {
		t.Fatalf("ExecuteBypass() = %v, want failed", got)
	}
	if len(f.w.Diagnostics) != 1 {
		t.Errorf("got %d diagnostics, want 1", len(f.w.Diagnostics))
	}
}

func TestShuttersToggle(t *testing.T) {
	rows := []string{
		"#######",
		"#6..S.#",
		"#..S..#",
		"#######",
	}
	f := newFixture(t, rows, content.Coord{X: 2, Y: 1}, nil)
	f.e.ExecuteBypass(f.c, f.w, computer.ActionShutters)
	if f.count(terrain.ShutterClosed) != 2 {
		t.Fatalf("got %d closed shutters, want 2", f.count(terrain.ShutterClosed))
	}
	f.e.ExecuteBypass(f.c, f.w, computer.ActionShutters)
	if f.count(terrain.ShutterOpen) != 2 {
		t.Errorf("got %d open shutters after toggling back, want 2", f.count(terrain.ShutterOpen))
	}
}

func TestSampleFillsContainer(t *testing.T) {
	rows := []string{
		"#######",
		"#6.&_.#",
		"#.....#",
		"#######",
	}
	f := newFixture(t, rows, content.Coord{X: 2, Y: 2}, nil, withItem("jar_glass", 4, 1))
	f.e.ExecuteBypass(f.c, f.w, computer.ActionSample)
	f.e.ExecuteBypass(f.c, f.w, computer.ActionSample)
	items := f.w.Items(f.at(4, 1))
	if len(items) != 1 {
		t.Fatalf("counter holds %d items, want 1", len(items))
	}
	if s := items[0].First(); s == nil || s.ID != "sewage" || s.Charges != 2 {
		t.Errorf("jar contents = %+v, want 2 charges of sewage", items[0].Contents)
	}
}

func TestSampleSpillsWithoutContainer(t *testing.T) {
	rows := []string{
		"#######",
		"#6.&_.#",
		"#.....#",
		"#######",
	}
	f := newFixture(t, rows, content.Coord{X: 2, Y: 2}, nil)
	f.e.ExecuteBypass(f.c, f.w, computer.ActionSample)
	items := f.w.Items(f.at(4, 1))
	if len(items) != 1 || !items[0].Liquid || items[0].ID != "sewage" {
		t.Errorf("counter holds %+v, want spilled sewage", items)
	}
}

func TestTerminateKillsCellSpecimens(t *testing.T) {
	rows := []string{
		"#########",
		"#6......#",
		"#.|.....#",
		"#.......#",
		"#.#.....#",
		"#########",
	}
	f := newFixture(t, rows, content.Coord{X: 3, Y: 1}, nil,
		withMonster("mon_specimen", 2, 3), withMonster("mon_zombie", 5, 3))
	f.e.ExecuteBypass(f.c, f.w, computer.ActionTerminate)
	if f.w.HasMonster(f.at(2, 3)) {
		t.Error("specimen in the cell survived")
	}
	if !f.w.HasMonster(f.at(5, 3)) {
		t.Error("monster outside a cell was killed")
	}
}

func TestMissDisarm(t *testing.T) {
	in := &station.Scripted{Lines: []string{"yes"}}
	f := newFixture(t, room, content.Coord{X: 2, Y: 1}, in)
	f.c.AddAction("Disarm", computer.ActionMissDisarm, 0)
	if got := f.e.Execute(f.c, f.w, computer.ActionMissDisarm); got != computer.OutcomeDone {
		t.Fatalf("Execute() = %v, want done", got)
	}
	if len(f.c.Options()) != 0 {
		t.Error("terminal still offers options")
	}
	if f.w.Terrain(f.at(1, 1)) != terrain.ConsoleBroken {
		t.Error("console not shut down")
	}
}

func TestExtractRadSourceDeclined(t *testing.T) {
	in := &station.Scripted{Lines: []string{"no"}}
	f := newFixture(t, room, content.Coord{X: 2, Y: 1}, in)
	f.c.AddAction("Extract", computer.ActionExtractRadSource, 0)
	f.c.AddAction("Irradiate", computer.ActionIrradiator, 0)
	if got := f.e.Execute(f.c, f.w, computer.ActionExtractRadSource); got != computer.OutcomeCancelled {
		t.Fatalf("Execute() = %v, want cancelled", got)
	}
	if len(f.c.Options()) != 2 {
		t.Errorf("got %d options, want both kept", len(f.c.Options()))
	}
}

var irradiationRoom = []string{
	"##########",
	"#6..o....#",
	"#..R..G..#",
	"##########",
}

func TestExtractRadSource(t *testing.T) {
	in := &station.Scripted{Lines: []string{"yes"}}
	f := newFixture(t, irradiationRoom, content.Coord{X: 2, Y: 1}, in)
	f.c.AddAction("Extract", computer.ActionExtractRadSource, 0)
	f.c.AddAction("Irradiate", computer.ActionIrradiator, 0)
	f.c.AddAction("Geiger", computer.ActionGeiger, 0)
	f.e.Execute(f.c, f.w, computer.ActionExtractRadSource)

	if f.w.Terrain(f.at(4, 1)) != terrain.Concrete {
		t.Errorf("platform terrain = %q, want concrete", f.w.Terrain(f.at(4, 1)))
	}
	items := f.w.Items(f.at(4, 1))
	if len(items) != 1 || items[0].ID != "cobalt_60" || items[0].Charges < 8 || items[0].Charges > 15 {
		t.Errorf("platform holds %+v, want 8 to 15 cobalt", items)
	}
	if opts := f.c.Options(); len(opts) != 1 || opts[0].Action != computer.ActionGeiger {
		t.Errorf("options = %+v, want only geiger left", opts)
	}
}

func TestIrradiatorConvertsItems(t *testing.T) {
	f := newFixture(t, irradiationRoom, content.Coord{X: 2, Y: 1}, nil, withItem("apple", 4, 1),
		func(st *content.Station) { st.ItemTemplates = []string{"irradiated_apple"} })
	f.e.ExecuteBypass(f.c, f.w, computer.ActionIrradiator)
	items := f.w.Items(f.at(4, 1))
	if len(items) != 1 || items[0].ID != "irradiated_apple" {
		t.Errorf("platform holds %+v, want an irradiated apple", items)
	}
	if f.w.Radiation(f.at(4, 1)) < 20 {
		t.Errorf("platform radiation = %d, want at least 20", f.w.Radiation(f.at(4, 1)))
	}
}

func TestIrradiatorMeltdown(t *testing.T) {
	f := newFixture(t, irradiationRoom, content.Coord{X: 2, Y: 1}, nil, withItem("c4", 4, 1))
	f.c.AddAction("Irradiate", computer.ActionIrradiator, 0)
	f.e.Execute(f.c, f.w, computer.ActionIrradiator)

	if len(f.c.Options()) != 0 {
		t.Error("terminal survived the meltdown")
	}
	if f.w.Terrain(f.at(1, 1)) != terrain.ConsoleBroken {
		t.Error("console not shut down")
	}
	if len(f.w.Explosions) == 0 {
		t.Error("no explosion")
	}
	if !f.w.HasField(f.at(4, 1), terrain.FieldNukeGas) {
		t.Error("no nuclear gas on the platform")
	}
	if f.w.Game.Rads == 0 {
		t.Error("operator not irradiated")
	}
}

func TestConveyor(t *testing.T) {
	f := newFixture(t, irradiationRoom, content.Coord{X: 2, Y: 1}, nil,
		withItem("apple", 4, 1), withItem("canned_beans", 3, 2))
	f.e.ExecuteBypass(f.c, f.w, computer.ActionConveyor)

	if items := f.w.Items(f.at(6, 2)); len(items) != 1 || items[0].ID != "apple" {
		t.Errorf("unloading bay holds %+v, want the apple", items)
	}
	if items := f.w.Items(f.at(4, 1)); len(items) != 1 || items[0].ID != "canned_beans" {
		t.Errorf("platform holds %+v, want the beans", items)
	}
	if items := f.w.Items(f.at(3, 2)); len(items) != 0 {
		t.Errorf("loading bay still holds %+v", items)
	}
}

func TestElevatorOn(t *testing.T) {
	rows := []string{
		"######",
		"#6.E.#",
		"######",
	}
	f := newFixture(t, rows, content.Coord{X: 2, Y: 1}, nil)
	f.e.ExecuteBypass(f.c, f.w, computer.ActionElevatorOn)
	if f.w.Terrain(f.at(3, 1)) != terrain.ElevatorControl {
		t.Errorf("elevator terrain = %q, want powered controls", f.w.Terrain(f.at(3, 1)))
	}
}

func TestPortalToggles(t *testing.T) {
	rows := []string{
		"#######",
		"#6....#",
		"#.T.T.#",
		"#.....#",
		"#.T.T.#",
		"#######",
	}
	f := newFixture(t, rows, content.Coord{X: 1, Y: 3}, nil)
	f.e.ExecuteBypass(f.c, f.w, computer.ActionPortal)
	if f.w.Trap(f.at(3, 3)) != terrain.TrapPortal {
		t.Fatal("no portal between the towers")
	}
	f.e.ExecuteBypass(f.c, f.w, computer.ActionPortal)
	if f.w.Trap(f.at(3, 3)) != "" {
		t.Error("portal not closed by the second activation")
	}
}

func TestAmigaraStart(t *testing.T) {
	f := newFixture(t, room, content.Coord{X: 2, Y: 1}, nil)
	f.c.AddAction("Start", computer.ActionAmigaraStart, 0)
	f.e.Execute(f.c, f.w, computer.ActionAmigaraStart)
	if !f.w.EventQueued(computer.EventAmigara) {
		t.Error("amigara event not scheduled")
	}
	if !f.w.Game.HasEffect("amigara") {
		t.Error("operator not affected")
	}
	if len(f.c.Options()) != 0 {
		t.Error("amigara_start still offered")
	}
}

func TestRepeaterModCompletesMission(t *testing.T) {
	f := newFixture(t, room, content.Coord{X: 2, Y: 1}, nil, func(st *content.Station) {
		st.Operator.Items = []string{"radio_repeater_mod"}
		st.Operator.Missions = []string{"MISSION_OLD_GUARD_NEC_COMMO_3"}
	})
	f.c.AddAction("Install", computer.ActionRepeaterMod, 0)
	f.e.Execute(f.c, f.w, computer.ActionRepeaterMod)
	if f.w.Game.Missions[0].Step != 1 {
		t.Error("mission step not completed")
	}
	if f.w.Game.HasAmount("radio_repeater_mod", 1) {
		t.Error("repeater mod not used up")
	}
	if len(f.c.Options()) != 0 || f.w.Terrain(f.at(1, 1)) != terrain.ConsoleBroken {
		t.Error("terminal did not shut down")
	}
}

func TestListBionics(t *testing.T) {
	f := newFixture(t, room, content.Coord{X: 2, Y: 1}, nil, func(st *content.Station) {
		for i := 0; i < 18; i++ {
			st.Items = append(st.Items, content.PlacedItem{
				At: content.Coord{X: 1 + i%8, Y: 2}, ID: "bio_cbm", Name: "CBM", Bionic: true,
			})
		}
	})
	f.e.ExecuteBypass(f.c, f.w, computer.ActionListBionics)
	if !strings.Contains(strings.Join(f.w.Transcript(), "\n"), "2 OTHERS FOUND") {
		t.Errorf("manifest does not summarize the rest: %q", f.w.Transcript())
	}
}

func TestGeigerReportsReadings(t *testing.T) {
	f := newFixture(t, room, content.Coord{X: 2, Y: 1}, nil)
	f.w.Game.Irradiate(12)
	f.e.ExecuteBypass(f.c, f.w, computer.ActionGeiger)
	for _, want := range []string{"GEIGER COUNTER @ CONSOLE: .... 0 mSv/h.", "PERSONAL DOSIMETRY: .... 12 mSv."} {
		if !printed(f, want) {
			t.Errorf("transcript misses %q: %q", want, f.w.Transcript())
		}
	}
}

func TestPowerDiagnosticsPercentages(t *testing.T) {
	f := newFixture(t, room, content.Coord{X: 2, Y: 1}, nil)
	f.e.ExecuteBypass(f.c, f.w, computer.ActionDeactivateShockVent)
	for _, want := range []string{"85% OFFLINE", "100% OFFLINE"} {
		if !printed(f, want) {
			t.Errorf("transcript misses %q: %q", want, f.w.Transcript())
		}
	}
}
