package computer

import (
	"fmt"
	"strings"

	"github.com/leonelquinteros/gotext"

	"darkconsole/pkg/engine/calendar"
	"darkconsole/pkg/engine/world"
	"darkconsole/pkg/game/terrain"
)

// effectFunc is the effect procedure of one action kind
type effectFunc func(e *Engine, c *Computer, w World) error

// Item and mission ids used by terminal actions
const (
	itemSewage             = "sewage"
	itemBlood              = "blood"
	itemVacutainer         = "vacutainer"
	itemUSBDrive           = "usb_drive"
	itemBlackBox           = "black_box"
	itemBlackBoxTranscript = "black_box_transcript"
	itemBloodData          = "software_blood_data"
	itemRepeaterMod        = "radio_repeater_mod"
	itemAccessCode         = "sarcophagus_access_code"
	itemCobalt             = "cobalt_60"
	irradiatedPrefix       = "irradiated_"

	missionCommo2 = "MISSION_OLD_GUARD_NEC_COMMO_2"
	missionCommo3 = "MISSION_OLD_GUARD_NEC_COMMO_3"
	missionCommo4 = "MISSION_OLD_GUARD_NEC_COMMO_4"

	effectAmigara = "amigara"
)

// manifestLines is the number of item names the bionic manifest prints before summarizing
const manifestLines = 16

// actionEffects holds the effect procedure of every action kind
var actionEffects = [NumActions]effectFunc{
	ActionNull:                         actNothing,
	ActionOpen:                         actOpen,
	ActionLock:                         actLock,
	ActionUnlock:                       actUnlock,
	ActionToll:                         actToll,
	ActionSample:                       actSample,
	ActionRelease:                      actRelease,
	ActionReleaseBionics:               actReleaseBionics,
	ActionTerminate:                    actTerminate,
	ActionPortal:                       actPortal,
	ActionCascade:                      actCascade,
	ActionResearch:                     actResearch,
	ActionMaps:                         actMaps,
	ActionMapSewer:                     actMapSewer,
	ActionMapSubway:                    actMapSubway,
	ActionMissDisarm:                   actMissDisarm,
	ActionListBionics:                  actListBionics,
	ActionElevatorOn:                   actElevatorOn,
	ActionAmigaraLog:                   actAmigaraLog,
	ActionAmigaraStart:                 actAmigaraStart,
	ActionCompleteDisableExternalPower: actCompleteDisableExternalPower,
	ActionRepeaterMod:                  actRepeaterMod,
	ActionDownloadSoftware:             actDownloadSoftware,
	ActionBloodAnal:                    actBloodAnal,
	ActionDataAnal:                     actDataAnal,
	ActionDisconnect:                   actDisconnect,
	ActionEmergMess:                    actEmergMess,
	ActionEmergRefCenter:               actEmergRefCenter,
	ActionTowerUnresponsive:            actTowerUnresponsive,
	ActionSR1Mess:                      memo(sr1Memo),
	ActionSR2Mess:                      memo(sr2Memo),
	ActionSR3Mess:                      memo(sr3Memo),
	ActionSR4Mess:                      memo(sr4Memo),
	ActionSRCF1Mess:                    memo(srcf1Memo, srcf1Signature),
	ActionSRCF2Mess:                    memo(srcf2Memo, srcf2MemoEnd),
	ActionSRCF3Mess:                    memo(srcf3Memo),
	ActionSRCFSealOrder:                memo(srcfSealOrder),
	ActionSRCFSeal:                     actSRCFSeal,
	ActionSRCFElevator:                 actSRCFElevator,
	ActionOpenDisarm:                   disarm(actOpen),
	ActionUnlockDisarm:                 disarm(actUnlock),
	ActionReleaseDisarm:                disarm(actReleaseBionics),
	ActionIrradiator:                   actIrradiator,
	ActionGeiger:                       actGeiger,
	ActionConveyor:                     actConveyor,
	ActionShutters:                     actShutters,
	ActionExtractRadSource:             actExtractRadSource,
	ActionDeactivateShockVent:          actDeactivateShockVent,
	ActionRadioArchive:                 actRadioArchive,
}

func actNothing(_ *Engine, _ *Computer, _ World) error {
	return nil
}

// disarm removes the automated defenses of the map section, then runs the base action
func disarm(base effectFunc) effectFunc {
	return func(e *Engine, c *Computer, w World) error {
		w.RemoveTurrets()
		return base(e, c, w)
	}
}

// localTerrain returns every point of the local map with the given terrain
func localTerrain(w World, ter string) []world.Point {
	var out []world.Point
	for _, p := range w.LocalPoints() {
		if w.Terrain(p) == ter {
			out = append(out, p)
		}
	}
	return out
}

// nearbyTerrain returns the points around the operator with the given terrain
func nearbyTerrain(w World, ter string, radius int) []world.Point {
	var out []world.Point
	for _, p := range w.PointsInRadius(w.Operator().Pos(), radius) {
		if w.Terrain(p) == ter {
			out = append(out, p)
		}
	}
	return out
}

func alarm(w World, volume int) {
	w.Sound(w.Operator().Pos(), volume, gotext.Get("an alarm sound!"))
}

func actOpen(_ *Engine, _ *Computer, w World) error {
	w.TranslateRadius(terrain.DoorMetalLocked, terrain.Floor, 25.0, w.Operator().Pos(), false)
	w.QueryAny(gotext.Get("Doors opened.  Press any key..."))
	return nil
}

func actLock(_ *Engine, _ *Computer, w World) error {
	w.TranslateRadius(terrain.DoorMetalClosed, terrain.DoorMetalLocked, 8.0, w.Operator().Pos(), false)
	w.QueryAny(gotext.Get("Lock enabled.  Press any key..."))
	return nil
}

func actUnlock(_ *Engine, _ *Computer, w World) error {
	w.TranslateRadius(terrain.DoorMetalLocked, terrain.DoorMetalClosed, 8.0, w.Operator().Pos(), false)
	w.QueryAny(gotext.Get("Lock disabled.  Press any key..."))
	return nil
}

func actToll(_ *Engine, _ *Computer, w World) error {
	w.Sound(w.Operator().Pos(), 120, gotext.Get("Bohm... Bohm... Bohm..."))
	return nil
}

// actSample fills the containers on the counters around each sewage pump with sewage
func actSample(_ *Engine, _ *Computer, w World) error {
	w.Operator().SpendMoves(30)
	for _, pump := range localTerrain(w, terrain.SewagePump) {
		for _, p := range w.PointsInRadius(pump, 1) {
			if w.Furniture(p) != terrain.FurnCounter {
				continue
			}
			filled := false
			for _, it := range w.Items(p) {
				if it.Liquid {
					continue
				}
				inner := it.First()
				if inner == nil {
					it.PutIn(world.NewItemWithCharges(itemSewage, 1))
				} else if inner.ID == itemSewage {
					inner.Charges++
				} else {
					continue
				}
				filled = true
				break
			}
			if !filled {
				sewage := world.NewItemWithCharges(itemSewage, 1)
				sewage.Liquid = true
				w.AddItem(p, sewage)
			}
		}
	}
	return nil
}

func actRelease(_ *Engine, _ *Computer, w World) error {
	w.Operator().AddMemorial(gotext.Get("Released subspace specimens."))
	alarm(w, 40)
	w.TranslateRadius(terrain.ReinforcedGlass, terrain.ThickConcFloor, 25.0, w.Operator().Pos(), false)
	w.QueryAny(gotext.Get("Containment shields opened.  Press any key..."))
	return nil
}

func actReleaseBionics(_ *Engine, _ *Computer, w World) error {
	alarm(w, 40)
	w.TranslateRadius(terrain.ReinforcedGlass, terrain.ThickConcFloor, 3.0, w.Operator().Pos(), false)
	w.QueryAny(gotext.Get("Containment shields opened.  Press any key..."))
	return nil
}

// actTerminate kills every specimen held in a cell between reinforced glass and a concrete wall
func actTerminate(_ *Engine, _ *Computer, w World) error {
	w.Operator().AddMemorial(gotext.Get("Terminated subspace specimens."))
	for _, p := range w.LocalPoints() {
		if !w.HasMonster(p) {
			continue
		}
		above, below := w.Terrain(p.Offset(0, -1)), w.Terrain(p.Offset(0, 1))
		if (above == terrain.ReinforcedGlass && below == terrain.ConcreteWall) ||
			(below == terrain.ReinforcedGlass && above == terrain.ConcreteWall) {
			w.KillMonster(p)
		}
	}
	w.QueryAny(gotext.Get("Subjects terminated.  Press any key..."))
	return nil
}

// actPortal toggles a portal on every tile surrounded by at least four radio towers
func actPortal(_ *Engine, _ *Computer, w World) error {
	w.Operator().AddMemorial(gotext.Get("Opened a portal."))
	for _, p := range w.LocalPoints() {
		towers := 0
		for _, q := range w.PointsInRadius(p, 2) {
			if w.Terrain(q) == terrain.RadioTower {
				towers++
			}
		}
		if towers < 4 {
			continue
		}
		if w.Trap(p) == terrain.TrapPortal {
			w.RemoveTrap(p)
		} else {
			w.SetTrap(p, terrain.TrapPortal)
		}
	}
	return nil
}

func actCascade(e *Engine, _ *Computer, w World) error {
	if !w.QueryBool(gotext.Get("WARNING: Resonance cascade carries severe risk!  Continue?")) {
		return errCancelled
	}
	w.Operator().AddMemorial(gotext.Get("Caused a resonance cascade."))
	towers := nearbyTerrain(w, terrain.RadioTower, 10)
	target := w.Operator().Pos()
	if len(towers) > 0 {
		target = towers[e.intn(len(towers))]
	}
	w.ResonanceCascade(target)
	return nil
}

// actResearch shows the lab notes of this terminal. Every read is logged.
func actResearch(_ *Engine, c *Computer, w World) error {
	seed := w.LevelX() + w.LevelY() + w.LevelZ() + c.Alerts
	log := w.Snippet("lab_notes", seed)
	if log == "" {
		log = gotext.Get("No data found.")
	} else {
		w.Operator().SpendMoves(70)
	}
	w.PrintLine("%s", log)

	if c.Alerts == 0 {
		w.QueryAny(gotext.Get("Local data-access error logged, alerting helpdesk. Press any key..."))
	} else {
		w.QueryAny(gotext.Get("Warning: anomalous archive-access activity detected at this node. Press any key..."))
	}
	c.Alerts++
	return nil
}

func actRadioArchive(e *Engine, c *Computer, w World) error {
	w.Operator().SpendMoves(300)
	w.PrintLine("%s", gotext.Get("Accessing archive. Playing audio recording nr %d.\n%s", e.rng(1, 9999),
		w.RandomSnippet("radio_archive")))
	if e.oneIn(3) {
		w.QueryAny(gotext.Get("Warning: resticted data access. Attempt logged. Press any key..."))
		c.Alerts++
	} else {
		w.QueryAny(pressAnyKey())
	}
	return nil
}

func actMaps(_ *Engine, c *Computer, w World) error {
	w.Operator().SpendMoves(30)
	w.RevealArea(40)
	w.QueryAny(gotext.Get("Surface map data downloaded.  Local anomalous-access error logged.  Press any key..."))
	c.RemoveOption(ActionMaps)
	c.Alerts++
	return nil
}

func actMapSewer(_ *Engine, c *Computer, w World) error {
	w.Operator().SpendMoves(30)
	w.RevealMatching(60, func(id string) bool {
		return overmapType(id) == "sewer" || strings.HasPrefix(id, "sewage")
	})
	w.QueryAny(gotext.Get("Sewage map data downloaded.  Press any key..."))
	c.RemoveOption(ActionMapSewer)
	return nil
}

func actMapSubway(_ *Engine, c *Computer, w World) error {
	w.Operator().SpendMoves(30)
	w.RevealMatching(60, func(id string) bool {
		return overmapType(id) == "subway" || strings.Contains(id, "lab_train_depot")
	})
	w.QueryAny(gotext.Get("Subway map data downloaded.  Press any key..."))
	c.RemoveOption(ActionMapSubway)
	return nil
}

// overmapSuffixes are the rotation and connection suffixes of overmap terrain ids, longest first
var overmapSuffixes = []string{
	"_end_north", "_end_east", "_end_south", "_end_west", "_isolated",
	"_north", "_east", "_south", "_west",
	"_nesw", "_nes", "_new", "_nsw", "_esw",
	"_ns", "_ew", "_ne", "_es", "_sw", "_wn",
}

// overmapType strips the rotation or connection suffix from an overmap terrain id
func overmapType(id string) string {
	for _, suffix := range overmapSuffixes {
		if strings.HasSuffix(id, suffix) {
			return strings.TrimSuffix(id, suffix)
		}
	}
	return id
}

func actMissDisarm(e *Engine, c *Computer, w World) error {
	if !w.QueryYN(gotext.Get("Disarm missile.")) {
		w.AddMessage(MsgNeutral, gotext.Get("Nuclear missile remains active."))
		return errCancelled
	}
	w.Operator().AddMemorial(gotext.Get("Disarmed a nuclear missile."))
	w.AddMessage(MsgInfo, gotext.Get("Nuclear missile disarmed!"))
	c.ClearOptions()
	e.TriggerFailure(c, w, FailureShutdown)
	return nil
}

func actListBionics(_ *Engine, _ *Computer, w World) error {
	w.Operator().SpendMoves(30)
	var names []string
	more := 0
	for _, p := range w.LocalPoints() {
		for _, it := range w.Items(p) {
			if !it.Bionic {
				continue
			}
			if len(names) < manifestLines {
				names = append(names, it.Name)
			} else {
				more++
			}
		}
	}

	w.Reset()
	w.PrintLine("")
	w.PrintLine("%s", gotext.Get("Bionic access - Manifest:"))
	w.PrintLine("")
	for _, name := range names {
		w.PrintLine("%s", name)
	}
	if more > 0 {
		w.PrintLine("%s", gotext.GetN("%d OTHER FOUND...", "%d OTHERS FOUND...", more, more))
	}
	w.PrintLine("")
	w.QueryAny(pressAnyKey())
	return nil
}

// powerElevators switches every powerless elevator control on the local map back on
func powerElevators(w World) {
	for _, p := range localTerrain(w, terrain.ElevatorControlOff) {
		w.SetTerrain(p, terrain.ElevatorControl)
	}
}

func actElevatorOn(_ *Engine, _ *Computer, w World) error {
	powerElevators(w)
	w.QueryAny(gotext.Get("Elevator activated.  Press any key..."))
	return nil
}

// actAmigaraLog pages through the mine foreman logs. Each page has to be confirmed.
func actAmigaraLog(_ *Engine, _ *Computer, w World) error {
	for _, category := range []string{"amigara1", "amigara2", "amigara3"} {
		w.Operator().SpendMoves(30)
		w.Reset()
		w.PrintLine("%s", gotext.Get("NEPower Mine(%d:%d) Log", w.LevelX(), w.LevelY()))
		w.PrintLine("%s", w.RandomSnippet(category))
		if !w.QueryBool(gotext.Get("Continue reading?")) {
			return errCancelled
		}
	}

	w.Reset()
	for i := 0; i < 10; i++ {
		w.PrintGibberish()
	}
	w.PrintLine("\n\n")
	w.PrintLine("%s", gotext.Get("AMIGARA PROJECT"))
	w.PrintLine("\n")
	if !w.QueryBool(gotext.Get("Continue reading?")) {
		return errCancelled
	}

	w.Operator().SpendMoves(30)
	w.Reset()
	w.PrintLine("%s", gotext.Get("SITE %d%d%d\nPERTINENT FOREMAN LOGS WILL BE PREPENDED TO NOTES",
		w.LevelX(), w.LevelY(), abs(w.LevelZ())))
	w.PrintLine("%s", w.RandomSnippet("amigara4"))
	w.PrintGibberish()
	w.PrintGibberish()
	w.PrintLine("")
	w.PrintError("%s", gotext.Get("FILE CORRUPTED, PRESS ANY KEY..."))
	w.WaitForAnyKey()
	w.Reset()
	return nil
}

func actAmigaraStart(_ *Engine, c *Computer, w World) error {
	w.ScheduleEvent(EventAmigara, w.Now().Add(calendar.Minutes(1)))
	if !w.Operator().HasPsyshield() {
		w.Operator().AddEffect(effectAmigara, calendar.Minutes(2))
	}
	c.RemoveOption(ActionAmigaraStart)
	return nil
}

func actCompleteDisableExternalPower(_ *Engine, _ *Computer, w World) error {
	for _, m := range w.Operator().ActiveMissions() {
		if m.TypeID() == missionCommo2 {
			w.PrintError("%s", gotext.Get("--ACCESS GRANTED--"))
			w.PrintError("%s", gotext.Get("Mission Complete!"))
			m.StepComplete(1)
			w.WaitForAnyKey()
			return nil
		}
	}
	w.PrintError("%s", gotext.Get("ACCESS DENIED"))
	w.WaitForAnyKey()
	return nil
}

// actRepeaterMod installs a radio repeater mod for a mission. The terminal shuts down afterwards.
func actRepeaterMod(e *Engine, c *Computer, w World) error {
	op := w.Operator()
	if !op.HasAmount(itemRepeaterMod, 1) {
		w.PrintError("%s", gotext.Get("You do not have a repeater mod to install..."))
		w.WaitForAnyKey()
		return nil
	}
	for _, m := range op.ActiveMissions() {
		if m.TypeID() != missionCommo3 && m.TypeID() != missionCommo4 {
			continue
		}
		m.StepComplete(1)
		w.PrintError("%s", gotext.Get("Repeater mod installed..."))
		w.PrintError("%s", gotext.Get("Mission Complete!"))
		op.UseAmount(itemRepeaterMod, 1)
		w.WaitForAnyKey()
		c.ClearOptions()
		e.TriggerFailure(c, w, FailureShutdown)
		break
	}
	return nil
}

func actDownloadSoftware(_ *Engine, c *Computer, w World) error {
	usb := w.Operator().PickUSB()
	if usb == nil {
		w.PrintError("%s", gotext.Get("USB drive required!"))
		w.WaitForAnyKey()
		return nil
	}
	itemID, ok := w.MissionItem(c.MissionID)
	if !ok {
		return fmt.Errorf("couldn't find mission %d", c.MissionID)
	}
	w.Operator().SpendMoves(30)
	software := world.NewItem(itemID)
	software.MissionID = c.MissionID
	usb.PutIn(software)
	w.PrintLine("%s", gotext.Get("Software downloaded."))
	w.WaitForAnyKey()
	return nil
}

// onlyItem returns the single item on p, or an error message if there is not exactly one
func onlyItem(w World, p world.Point, emptyMsg, manyMsg string) (*world.Item, string) {
	items := w.Items(p)
	switch {
	case len(items) == 0:
		return nil, emptyMsg
	case len(items) > 1:
		return nil, manyMsg
	}
	return items[0], ""
}

func actBloodAnal(_ *Engine, _ *Computer, w World) error {
	w.Operator().SpendMoves(70)
	for _, p := range nearbyTerrain(w, terrain.Centrifuge, 2) {
		it, msg := onlyItem(w, p,
			gotext.Get("ERROR: Please place sample in centrifuge."),
			gotext.Get("ERROR: Please remove all but one sample from centrifuge."))
		if it == nil {
			w.PrintError("%s", msg)
			continue
		}
		blood := it.First()
		if blood == nil {
			w.PrintError("%s", gotext.Get("ERROR: Please only use container with blood sample."))
			continue
		}
		if blood.ID != itemBlood {
			w.PrintError("%s", gotext.Get("ERROR: Please only use blood samples."))
			continue
		}

		switch {
		case blood.Source == "":
			w.PrintLine("%s", gotext.Get("Result:  Human blood, no pathogens found."))
		case strings.Contains(blood.Source, "zombie"):
			if strings.HasPrefix(blood.Source, "mon_zombie") {
				w.PrintLine("%s", gotext.Get("Result:  Human blood.  Unknown pathogen found."))
			} else {
				w.PrintLine("%s", gotext.Get("Result:  Unknown blood type.  Unknown pathogen found."))
			}
			w.PrintLine("%s", gotext.Get("Pathogen bonded to erythrocytes and leukocytes."))
			if w.QueryBool(gotext.Get("Download data?")) {
				if usb := w.Operator().PickUSB(); usb != nil {
					usb.PutIn(world.NewItem(itemBloodData))
					w.PrintLine("%s", gotext.Get("Software downloaded."))
				} else {
					w.PrintError("%s", gotext.Get("USB drive required!"))
				}
			}
		default:
			w.PrintLine("%s", gotext.Get("Result: Unknown blood type.  Test non-conclusive."))
		}
	}
	w.QueryAny(pressAnyKey())
	return nil
}

func actDataAnal(_ *Engine, _ *Computer, w World) error {
	w.Operator().SpendMoves(30)
	for _, p := range nearbyTerrain(w, terrain.FloorBlue, 2) {
		w.PrintError("%s", gotext.Get("PROCESSING DATA"))
		it, msg := onlyItem(w, p,
			gotext.Get("ERROR: Please place memory bank in scan area."),
			gotext.Get("ERROR: Please only scan one item at a time."))
		switch {
		case it == nil:
			w.PrintError("%s", msg)
		case it.ID != itemUSBDrive && it.ID != itemBlackBox:
			w.PrintError("%s", gotext.Get("ERROR: Memory bank destroyed or not present."))
		case it.ID == itemUSBDrive && len(it.Contents) == 0:
			w.PrintError("%s", gotext.Get("ERROR: Memory bank is empty."))
		case it.ID == itemBlackBox:
			w.PrintLine("%s", gotext.Get("Memory Bank:  Military Hexron Encryption\nPrinting Transcript\n"))
			w.AddItem(w.Operator().Pos(), world.NewItem(itemBlackBoxTranscript))
		default:
			w.PrintLine("%s", gotext.Get("Memory Bank:  Unencrypted\nNothing of interest.\n"))
		}
	}
	w.QueryAny(pressAnyKey())
	return nil
}

func actDisconnect(_ *Engine, _ *Computer, w World) error {
	w.Reset()
	w.PrintLine("%s", gotext.Get("\nERROR:  NETWORK DISCONNECT \n"+
		"UNABLE TO REACH NETWORK ROUTER OR PROXY.  PLEASE CONTACT YOUR\n"+
		"SYSTEM ADMINISTRATOR TO RESOLVE THIS ISSUE.\n"))
	w.QueryAny(pressAnyKeyToContinue())
	return nil
}

func actEmergMess(_ *Engine, _ *Computer, w World) error {
	w.PrintLine("%s", gotext.Get("GREETINGS CITIZEN. A BIOLOGICAL ATTACK HAS TAKEN PLACE AND A STATE OF \n"+
		"EMERGENCY HAS BEEN DECLARED. EMERGENCY PERSONNEL WILL BE AIDING YOU \n"+
		"SHORTLY. TO ENSURE YOUR SAFETY PLEASE FOLLOW THE STEPS BELOW. \n\n"+
		"1. PLEASE REMAIN CALM \n"+
		"2. PLEASE REMAIN INSIDE THE BUILDING. \n"+
		"3. PLEASE SEEK SHELTER IN THE BASEMENT. \n"+
		"4. IN CASE OF CHEMICAL ATTACK, UTILIZE PROVIDED GAS MASKS. \n"+
		"5. PLEASE AWAIT FURTHER INSTRUCTIONS FROM YOUR GOVERNMENT REPRESENTATIVES. \n"))
	w.QueryAny(pressAnyKeyToContinue())
	return nil
}

func actEmergRefCenter(_ *Engine, _ *Computer, w World) error {
	w.Reset()
	w.MarkRefugeeCenter()
	w.Reset()
	return nil
}

func actTowerUnresponsive(_ *Engine, _ *Computer, w World) error {
	w.PrintLine("%s", gotext.Get("  WARNING, RADIO TOWER IS UNRESPONSIVE. \n\n"+
		"  BACKUP POWER INSUFFICIENT TO MEET BROADCASTING REQUIREMENTS. \n"+
		"  IN THE EVENT OF AN EMERGENCY, CONTACT LOCAL NATIONAL GUARD \n"+
		"  UNITS TO RECEIVE PRIORITY WHEN GENERATORS ARE BEING DEPLOYED. \n"))
	w.QueryAny(pressAnyKeyToContinue())
	return nil
}

// memo shows a stored message one page at a time
func memo(pages ...string) effectFunc {
	return func(_ *Engine, _ *Computer, w World) error {
		for _, page := range pages {
			w.Reset()
			w.PrintLine("%s", dynamicGet(page))
			w.QueryAny(pressAnyKeyToContinue())
		}
		return nil
	}
}

// actSRCFSeal detonates the sarcophagus charges and seals the facility
func actSRCFSeal(e *Engine, c *Computer, w World) error {
	w.Operator().AddMemorial(gotext.Get("Sealed a Hazardous Material Sarcophagus."))
	w.PrintLine("%s", gotext.Get("Charges Detonated"))
	w.PrintLine("%s", gotext.Get("Backup Generator Power Failing"))
	w.PrintLine("%s", gotext.Get("Evacuate Immediately"))
	w.AddMessage(MsgWarning, gotext.Get("Evacuate Immediately!"))
	for _, p := range w.LocalPoints() {
		switch w.Terrain(p) {
		case terrain.Elevator, terrain.Vat:
			w.MakeRubble(p, terrain.FurnRubbleRock)
			w.Explosion(p, 40)
		case terrain.WallGlass, terrain.SewagePipe, terrain.Sewage, terrain.Grate:
			w.MakeRubble(p, terrain.FurnRubbleRock)
		case terrain.SewagePump:
			w.MakeRubble(p, terrain.FurnRubbleRock)
			w.Explosion(p, 50)
		}
	}
	c.ClearOptions()
	e.TriggerFailure(c, w, FailureShutdown)
	return nil
}

func actSRCFElevator(_ *Engine, _ *Computer, w World) error {
	op := w.Operator()
	if !op.HasAmount(itemAccessCode, 1) {
		w.PrintError("%s", gotext.Get("Access code required!"))
	} else {
		op.UseAmount(itemAccessCode, 1)
		w.Reset()
		w.PrintLine("%s", gotext.Get("\nPower:         Backup Only\nRadiation Level:  Very Dangerous\nOperational:   Overridden\n\n"))
		powerElevators(w)
	}
	w.QueryAny(pressAnyKey())
	return nil
}

// irradiate spreads radiation from src to the surrounding tiles, weakened by distance
func (e *Engine) irradiate(w World, src world.Point, lo, hi int) {
	w.AdjustRadiation(src, e.rng(lo, hi))
	for _, p := range w.PointsInRadius(src, 5) {
		w.AdjustRadiation(p, e.rng(lo, hi)/max(1, world.Dist(p, src)))
	}
}

func isDetonator(id string) bool {
	return id == "mininuke" || id == "mininuke_act" || id == "c4"
}

// actIrradiator processes the items on the radiation platform. Explosives on the platform cause a
// meltdown which disables the terminal.
func actIrradiator(e *Engine, c *Computer, w World) error {
	op := w.Operator()
	op.SpendMoves(30)
	platforms := nearbyTerrain(w, terrain.RadPlatform, 10)
	for _, dest := range platforms {
		items := w.Items(dest)
		if len(items) == 0 {
			w.PrintError("%s", gotext.Get("ERROR: Processing platform empty."))
			continue
		}
		op.SpendMoves(300)
		dist := max(1, world.Dist(op.Pos(), dest))
		for _, it := range items {
			if !it.Rotten && w.HasItemTemplate(irradiatedPrefix+it.ID) {
				it.Convert(irradiatedPrefix + it.ID)
			}
			if isDetonator(it.ID) {
				meltdown(e, c, w, dest, it, dist)
				return nil
			}
			e.irradiate(w, dest, 20, 50)
			if w.OperatorSees(dest, 10) {
				op.Irradiate(e.rng(5, 25) / dist)
			}
		}
		w.PrintError("%s", gotext.Get("PROCESSING...  CYCLE COMPLETE."))
		w.PrintError("%s", gotext.Get("GEIGER COUNTER @ PLATFORM: %d mSv/h.", w.Radiation(dest)))
	}
	if len(platforms) == 0 {
		w.PrintError("%s", gotext.Get("CRITICAL ERROR... RADIATION PLATFORM UNRESPONSIVE.  COMPLY TO PROCEDURE RP_M_01_rev.03."))
	}
	w.QueryAny(pressAnyKey())
	return nil
}

func meltdown(e *Engine, c *Computer, w World, dest world.Point, it *world.Item, dist int) {
	w.Explosion(dest, 40)
	w.Reset()
	w.PrintError("%s", gotext.Get("WARNING [409]: Primary sensors offline!"))
	w.PrintError("%s", gotext.Get("  >> Initialize secondary sensors:  Geiger profiling..."))
	w.PrintError("%s", gotext.Get("  >> Radiation spike detected!\n"))
	w.PrintError("%s", gotext.Get("WARNING [912]: Catastrophic malfunction!  Contamination detected! "))
	w.PrintError("%s", gotext.Get("EMERGENCY PROCEDURE [1]:  Evacuate.  Evacuate.  Evacuate.\n"))
	alarm(w, 30)
	w.RemoveItem(dest, it)
	w.MakeRubble(dest, terrain.FurnRubble)
	w.AddField(dest, terrain.FieldNukeGas, 3)
	w.TranslateRadius(terrain.WaterPool, terrain.Sewage, 8.0, dest, false)
	e.irradiate(w, dest, 50, 500)
	if w.OperatorSees(dest, 10) {
		w.Operator().Irradiate(e.rng(50, 250) / dist)
	} else {
		w.Operator().Irradiate(e.rng(20, 100) / dist)
	}
	w.QueryAny(gotext.Get("EMERGENCY SHUTDOWN!  Press any key..."))
	c.ClearOptions()
	e.TriggerFailure(c, w, FailureShutdown)
}

// actGeiger measures radiation around the platform and at the console
func actGeiger(_ *Engine, _ *Computer, w World) error {
	w.Operator().SpendMoves(30)
	w.PrintError("%s", gotext.Get("RADIATION MEASUREMENTS:"))
	if platforms := nearbyTerrain(w, terrain.RadPlatform, 10); len(platforms) > 0 {
		platform := platforms[len(platforms)-1]
		sum, peak, tiles := 0, 0, 0
		for _, p := range w.PointsInRadius(platform, 3) {
			rad := w.Radiation(p)
			sum += rad
			tiles++
			peak = max(peak, rad)
		}
		w.PrintError("%s", gotext.Get("GEIGER COUNTER @ ZONE:... AVG %d mSv/h.", sum/max(1, tiles)))
		w.PrintError("%s", gotext.Get("GEIGER COUNTER @ ZONE:... MAX %d mSv/h.", peak))
		w.PrintLine("")
	}
	w.PrintError("%s", gotext.Get("GEIGER COUNTER @ CONSOLE: .... %d mSv/h.", w.Radiation(w.Operator().Pos())))
	w.PrintError("%s", gotext.Get("PERSONAL DOSIMETRY: .... %d mSv.", w.Operator().Radiation()))
	w.PrintLine("")
	w.QueryAny(pressAnyKey())
	return nil
}

// actConveyor moves the platform items to the unloading bay and the loading bay items to the
// platform. Liquids stay behind.
func actConveyor(_ *Engine, _ *Computer, w World) error {
	w.Operator().SpendMoves(300)
	var loading, unloading, platform world.Point
	var hasLoading, hasUnloading, hasPlatform bool
	for _, p := range w.PointsInRadius(w.Operator().Pos(), 10) {
		switch w.Terrain(p) {
		case terrain.RadPlatform:
			platform, hasPlatform = p, true
		case terrain.FloorRed:
			loading, hasLoading = p, true
		case terrain.FloorGreen:
			unloading, hasUnloading = p, true
		}
	}
	if !hasLoading || !hasPlatform || !hasUnloading {
		w.PrintError("%s", gotext.Get("Conveyor belt malfunction.  Consult maintenance team."))
		w.QueryAny(pressAnyKey())
		return nil
	}

	items := w.Items(platform)
	if len(items) > 0 {
		w.PrintLine("%s", gotext.Get("Moving items: PLATFORM --> UNLOADING BAY."))
	} else {
		w.PrintLine("%s", gotext.Get("No items detected at: PLATFORM."))
	}
	for _, it := range items {
		w.AddItem(unloading, it)
	}
	w.ClearItems(platform)

	items = w.Items(loading)
	if len(items) > 0 {
		w.PrintLine("%s", gotext.Get("Moving items: LOADING BAY --> PLATFORM."))
	} else {
		w.PrintLine("%s", gotext.Get("No items detected at: LOADING BAY."))
	}
	for _, it := range items {
		if !it.Liquid {
			w.AddItem(platform, it)
		}
	}
	w.ClearItems(loading)
	w.QueryAny(gotext.Get("Conveyor belt cycle complete.  Press any key..."))
	return nil
}

func actShutters(_ *Engine, _ *Computer, w World) error {
	w.Operator().SpendMoves(300)
	w.TranslateRadius(terrain.ShutterOpen, terrain.ShutterClosed, 8.0, w.Operator().Pos(), true)
	w.QueryAny(gotext.Get("Toggling shutters.  Press any key..."))
	return nil
}

func actExtractRadSource(e *Engine, c *Computer, w World) error {
	if !w.QueryYN(gotext.Get("Operation irreversible.  Extract radioactive material?")) {
		return errCancelled
	}
	w.Operator().SpendMoves(300)
	platforms := nearbyTerrain(w, terrain.RadPlatform, 10)
	if len(platforms) == 0 {
		w.QueryAny(gotext.Get("ERROR!  Radiation platform unresponsive... Press any key."))
		return nil
	}
	w.AddItem(platforms[len(platforms)-1], world.NewItemWithCharges(itemCobalt, e.rng(8, 15)))
	w.TranslateRadius(terrain.RadPlatform, terrain.Concrete, 8.0, w.Operator().Pos(), false)
	c.RemoveOption(ActionIrradiator)
	c.RemoveOption(ActionExtractRadSource)
	w.QueryAny(gotext.Get("Extraction sequence complete... Press any key."))
	return nil
}

func actDeactivateShockVent(_ *Engine, _ *Computer, w World) error {
	w.Operator().SpendMoves(30)
	hasVent, hasGenerator := false, false
	for _, p := range w.PointsInRadius(w.Operator().Pos(), 10) {
		if w.HasField(p, terrain.FieldShockVent) {
			hasVent = true
		}
		if w.Terrain(p) == terrain.PlutGenerator {
			hasGenerator = true
		}
		w.RemoveField(p, terrain.FieldShockVent)
	}
	w.PrintLine("%s", gotext.Get("Initiating POWER-DIAG ver.2.34 ..."))
	if hasVent {
		w.PrintError("%s", gotext.Get("Short circuit detected!"))
		w.PrintError("%s", gotext.Get("Short circuit rerouted."))
		w.PrintError("%s", gotext.Get("Fuse reseted."))
		w.PrintError("%s", gotext.Get("Ground re-enabled."))
	} else {
		w.PrintLine("%s", gotext.Get("Internal power lines status: %d%% OFFLINE. Reason: DAMAGED.", 85))
	}
	w.PrintLine("%s", gotext.Get("External power lines status: %d%% OFFLINE. Reason: NO EXTERNAL POWER DETECTED.", 100))
	if hasGenerator {
		w.PrintLine("%s", gotext.Get("Backup power status: STANDBY MODE."))
	} else {
		w.PrintError("%s", gotext.Get("Backup power status: OFFLINE. Reason: UNKNOWN"))
	}
	w.QueryAny(pressAnyKey())
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
