package computer

import (
	"fmt"

	"github.com/leonelquinteros/gotext"

	"darkconsole/pkg/engine/calendar"
	"darkconsole/pkg/engine/world"
	"darkconsole/pkg/game/terrain"
)

// DefaultFailure is inflicted by terminals with an empty failure table
const DefaultFailure = FailureShutdown

// spawnTries is the number of attempts to find a free tile for each summoned robot
const spawnTries = 10

type failureFunc func(e *Engine, c *Computer, w World)

var failureEffects = [NumFailures]failureFunc{
	FailureNull:         func(*Engine, *Computer, World) {},
	FailureShutdown:     failShutdown,
	FailureAlarm:        failAlarm,
	FailureManhacks:     summon(terrain.MonManhack, 4, 8, "Manhacks drop from compartments in the ceiling."),
	FailureSecubots:     summon(terrain.MonSecubot, 1, 1, "Secubots emerge from compartments in the floor."),
	FailureDamage:       failDamage,
	FailurePumpExplode:  failPumpExplode,
	FailurePumpLeak:     failPumpLeak,
	FailureAmigara:      failAmigara,
	FailureDestroyBlood: failDestroyBlood,
	FailureDestroyData:  failDestroyData,
}

// PickFailure selects a failure uniformly from the failure table, or DefaultFailure when it is empty
func (e *Engine) PickFailure(c *Computer) FailureKind {
	if len(c.failures) == 0 {
		return DefaultFailure
	}
	return c.failures[e.intn(len(c.failures))].Type
}

// TriggerRandomFailure starts the failure cooldown and inflicts a random failure of the terminal.
// Callers check FailureReady first.
func (e *Engine) TriggerRandomFailure(c *Computer, w World) FailureKind {
	c.NextAttempt = w.Now().Add(e.FailureCooldown)
	kind := e.PickFailure(c)
	e.TriggerFailure(c, w, kind)
	return kind
}

// TriggerFailure inflicts the failure of the given kind
func (e *Engine) TriggerFailure(c *Computer, w World, kind FailureKind) {
	if !kind.Valid() {
		w.Diagnostic(fmt.Sprintf("computer %q: %v: %d", c.Name, ErrUnknownFailure, int(kind)))
		return
	}
	failureEffects[kind](e, c, w)
}

// failShutdown breaks the consoles next to the operator. Only when there are none is every console
// of the local map broken.
func failShutdown(_ *Engine, _ *Computer, w World) {
	if shutdownConsoles(w, w.PointsInRadius(w.Operator().Pos(), 1)) {
		return
	}
	shutdownConsoles(w, w.LocalPoints())
}

func shutdownConsoles(w World, points []world.Point) bool {
	found := false
	for _, p := range points {
		if w.HasFlag(terrain.FlagConsole, p) {
			w.SetTerrain(p, terrain.ConsoleBroken)
			w.AddMessage(MsgBad, gotext.Get("The console shuts down."))
			found = true
		}
	}
	return found
}

func failAlarm(_ *Engine, _ *Computer, w World) {
	w.Operator().AddMemorial(gotext.Get("Set off an alarm."))
	alarm(w, 60)
	if w.LevelZ() > 0 && !w.EventQueued(EventWanted) {
		w.ScheduleEvent(EventWanted, w.Now().Add(calendar.Minutes(30)))
	}
}

// summon spawns between lo and hi robots of the given kind around the operator
func summon(kind string, lo, hi int, msg string) failureFunc {
	return func(e *Engine, _ *Computer, w World) {
		n := e.rng(lo, hi)
		for i := 0; i < n; i++ {
			p, ok := e.freeSpot(w)
			if !ok {
				continue
			}
			w.AddMessage(MsgWarning, dynamicGet(msg))
			w.SpawnMonster(kind, p)
		}
	}
}

// freeSpot looks for an empty tile within 3 tiles of the operator
func (e *Engine) freeSpot(w World) (world.Point, bool) {
	pos := w.Operator().Pos()
	for tries := 0; tries < spawnTries; tries++ {
		p := pos.Offset(e.rng(-3, 3), e.rng(-3, 3))
		if w.IsEmpty(p) {
			return p, true
		}
	}
	return world.Point{}, false
}

func failDamage(e *Engine, _ *Computer, w World) {
	w.AddMessage(MsgNeutral, gotext.Get("The console shocks you."))
	if w.Operator().ElectricImmune() {
		w.AddMessage(MsgGood, gotext.Get("You're protected from electric shocks."))
		return
	}
	w.AddMessage(MsgBad, gotext.Get("Your body is damaged by the electric shock!"))
	w.Operator().Hurt(e.rng(1, 10))
}

func failPumpExplode(_ *Engine, _ *Computer, w World) {
	w.AddMessage(MsgWarning, gotext.Get("The pump explodes!"))
	for _, p := range localTerrain(w, terrain.SewagePump) {
		w.MakeRubble(p, terrain.FurnRubble)
		w.Explosion(p, 10)
	}
}

// failPumpLeak floods a random walk of 4 to 10 tiles from every sewage pump
func failPumpLeak(e *Engine, _ *Computer, w World) {
	w.AddMessage(MsgWarning, gotext.Get("Sewage leaks!"))
	for _, pump := range localTerrain(w, terrain.SewagePump) {
		p := pump
		size := e.rng(4, 10)
		for i := 0; i < size; i++ {
			var next []world.Point
			for _, d := range world.AllDirections() {
				if q := p.Step(d); w.Passable(q) {
					next = append(next, q)
				}
			}
			if len(next) == 0 {
				break
			}
			p = next[e.intn(len(next))]
			w.SetTerrain(p, terrain.Sewage)
		}
	}
}

func failAmigara(e *Engine, c *Computer, w World) {
	w.ScheduleEvent(EventAmigara, w.Now().Add(calendar.Seconds(30)))
	w.Operator().AddEffect(effectAmigara, calendar.Minutes(2))
	if points := w.LocalPoints(); len(points) > 0 {
		for i := 0; i < 2; i++ {
			w.Explosion(points[e.intn(len(points))], 10)
		}
	}
	c.RemoveOption(ActionAmigaraStart)
}

func failDestroyBlood(_ *Engine, _ *Computer, w World) {
	w.PrintError("%s", gotext.Get("ERROR: Disruptive Spin"))
	for _, p := range nearbyTerrain(w, terrain.Centrifuge, 2) {
		it, msg := onlyItem(w, p,
			gotext.Get("ERROR: Please place sample in centrifuge."),
			gotext.Get("ERROR: Please remove all but one sample from centrifuge."))
		switch {
		case it == nil:
			w.PrintError("%s", msg)
		case it.ID != itemVacutainer:
			w.PrintError("%s", gotext.Get("ERROR: Please use blood-contained samples."))
		case it.First() == nil:
			w.PrintError("%s", gotext.Get("ERROR: Blood draw kit, empty."))
		case it.First().ID != itemBlood:
			w.PrintError("%s", gotext.Get("ERROR: Please only use blood samples."))
		default:
			w.PrintError("%s", gotext.Get("ERROR: Blood sample destroyed."))
			w.ClearItems(p)
		}
	}
	w.WaitForAnyKey()
}

func failDestroyData(_ *Engine, _ *Computer, w World) {
	w.PrintError("%s", gotext.Get("ERROR: ACCESSING DATA MALFUNCTION"))
	for _, p := range localTerrain(w, terrain.FloorBlue) {
		it, msg := onlyItem(w, p,
			gotext.Get("ERROR: Please place memory bank in scan area."),
			gotext.Get("ERROR: Please only scan one item at a time."))
		switch {
		case it == nil:
			w.PrintError("%s", msg)
		case it.ID != itemUSBDrive:
			w.PrintError("%s", gotext.Get("ERROR: Memory bank destroyed or not present."))
		case len(it.Contents) == 0:
			w.PrintError("%s", gotext.Get("ERROR: Memory bank is empty."))
		default:
			w.PrintError("%s", gotext.Get("ERROR: Data bank destroyed."))
			w.ClearItems(p)
		}
	}
	w.WaitForAnyKey()
}
