package computer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrLegacyFormat is returned when a legacy save string cannot be parsed
var ErrLegacyFormat = errors.New("malformed legacy computer data")

// legacyMissileLaunch is the legacy code of the missile launch action, which was removed
// before actions were saved as string ids. Options carrying it are dropped on load.
const legacyMissileLaunch = 15

// legacyActions maps the integer codes of the legacy save format to action kinds.
// Used to migrate old saves: never change the numbers.
var legacyActions = map[int]ActionKind{
	0:  ActionNull,
	1:  ActionOpen,
	2:  ActionLock,
	3:  ActionUnlock,
	4:  ActionToll,
	5:  ActionSample,
	6:  ActionRelease,
	7:  ActionReleaseBionics,
	8:  ActionTerminate,
	9:  ActionPortal,
	10: ActionCascade,
	11: ActionResearch,
	12: ActionMaps,
	13: ActionMapSewer,
	14: ActionMapSubway,
	16: ActionMissDisarm,
	17: ActionListBionics,
	18: ActionElevatorOn,
	19: ActionAmigaraLog,
	20: ActionAmigaraStart,
	21: ActionCompleteDisableExternalPower,
	22: ActionRepeaterMod,
	23: ActionDownloadSoftware,
	24: ActionBloodAnal,
	25: ActionDataAnal,
	26: ActionDisconnect,
	27: ActionEmergMess,
	28: ActionEmergRefCenter,
	29: ActionTowerUnresponsive,
	30: ActionSR1Mess,
	31: ActionSR2Mess,
	32: ActionSR3Mess,
	33: ActionSR4Mess,
	34: ActionSRCF1Mess,
	35: ActionSRCF2Mess,
	36: ActionSRCF3Mess,
	37: ActionSRCFSealOrder,
	38: ActionSRCFSeal,
	39: ActionSRCFElevator,
	40: ActionOpenDisarm,
	41: ActionUnlockDisarm,
	42: ActionReleaseDisarm,
	43: ActionIrradiator,
	44: ActionGeiger,
	45: ActionConveyor,
	46: ActionShutters,
	47: ActionExtractRadSource,
	48: ActionDeactivateShockVent,
	49: ActionRadioArchive,
}

// legacyFailures maps the integer codes of the legacy save format to failure kinds.
// Used to migrate old saves: never change the numbers.
var legacyFailures = map[int]FailureKind{
	0:  FailureNull,
	1:  FailureShutdown,
	2:  FailureAlarm,
	3:  FailureManhacks,
	4:  FailureSecubots,
	5:  FailureDamage,
	6:  FailurePumpExplode,
	7:  FailurePumpLeak,
	8:  FailureAmigara,
	9:  FailureDestroyBlood,
	10: FailureDestroyData,
}

// ActionFromLegacy maps a legacy integer code to an action kind. Unknown codes map to ActionNull.
func ActionFromLegacy(code int) ActionKind {
	if a, ok := legacyActions[code]; ok {
		return a
	}
	return ActionNull
}

// FailureFromLegacy maps a legacy integer code to a failure kind. Unknown codes map to FailureNull.
func FailureFromLegacy(code int) FailureKind {
	if f, ok := legacyFailures[code]; ok {
		return f
	}
	return FailureNull
}

// legacyReader walks the whitespace separated tokens of a legacy save string
type legacyReader struct {
	tokens []string
	pos    int
}

func newLegacyReader(data string) *legacyReader {
	return &legacyReader{tokens: strings.Fields(data)}
}

// next returns the next token, or false at the end of the stream
func (r *legacyReader) next() (string, bool) {
	if r.pos >= len(r.tokens) {
		return "", false
	}
	tok := r.tokens[r.pos]
	r.pos++
	return tok, true
}

func (r *legacyReader) str(field string) (string, error) {
	tok, ok := r.next()
	if !ok {
		return "", fmt.Errorf("%w: missing %s", ErrLegacyFormat, field)
	}
	return tok, nil
}

func (r *legacyReader) int(field string) (int, error) {
	tok, err := r.str(field)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not a number", ErrLegacyFormat, field, tok)
	}
	return v, nil
}

// unescapeLegacy restores the spaces the legacy format stored as underscores
func unescapeLegacy(s string) string {
	return strings.ReplaceAll(s, "_", " ")
}

// LoadLegacy replaces the terminal state with the contents of a legacy save string:
//
//	name security mission option_count [name action security]... failure_count [failure]... access_denied
//
// Options carrying the removed missile launch code are dropped. Alerts and NextAttempt are not
// part of the legacy format and are left untouched. On error the terminal is not modified.
func (c *Computer) LoadLegacy(data string) error {
	r := newLegacyReader(data)

	name, err := r.str("name")
	if err != nil {
		return err
	}
	security, err := r.int("security")
	if err != nil {
		return err
	}
	mission, err := r.int("mission")
	if err != nil {
		return err
	}

	optCount, err := r.int("option count")
	if err != nil {
		return err
	}
	var options []Option
	for n := 0; n < optCount; n++ {
		optName, err := r.str("option name")
		if err != nil {
			return err
		}
		action, err := r.int("option action")
		if err != nil {
			return err
		}
		optSecurity, err := r.int("option security")
		if err != nil {
			return err
		}
		if action == legacyMissileLaunch {
			continue
		}
		options = append(options, NewOption(unescapeLegacy(optName), ActionFromLegacy(action), optSecurity))
	}

	failCount, err := r.int("failure count")
	if err != nil {
		return err
	}
	var failures []Failure
	for n := 0; n < failCount; n++ {
		code, err := r.int("failure")
		if err != nil {
			return err
		}
		failures = append(failures, Failure{Type: FailureFromLegacy(code)})
	}

	// Saves from before the message existed end here; keep the current message then.
	denied, _ := r.next()

	c.Name = unescapeLegacy(name)
	c.Security = security
	c.MissionID = mission
	c.options = options
	c.failures = failures
	if denied != "" {
		c.AccessDenied = unescapeLegacy(denied)
	}
	return nil
}
