package computer

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownAction is returned when an action id is not part of the action table.
	ErrUnknownAction = errors.New("unknown computer action")
	// ErrUnknownFailure is returned when a failure id is not part of the failure table.
	ErrUnknownFailure = errors.New("unknown computer failure")
)

// ActionKind identifies a selectable terminal action.
// The string ids are part of the save format: append new kinds, never rename an id.
type ActionKind int

// Action kinds
const (
	ActionNull ActionKind = iota
	ActionOpen
	ActionLock
	ActionUnlock
	ActionToll
	ActionSample
	ActionRelease
	ActionReleaseBionics
	ActionTerminate
	ActionPortal
	ActionCascade
	ActionResearch
	ActionMaps
	ActionMapSewer
	ActionMapSubway
	ActionMissDisarm
	ActionListBionics
	ActionElevatorOn
	ActionAmigaraLog
	ActionAmigaraStart
	ActionCompleteDisableExternalPower
	ActionRepeaterMod
	ActionDownloadSoftware
	ActionBloodAnal
	ActionDataAnal
	ActionDisconnect
	ActionEmergMess
	ActionEmergRefCenter
	ActionTowerUnresponsive
	ActionSR1Mess
	ActionSR2Mess
	ActionSR3Mess
	ActionSR4Mess
	ActionSRCF1Mess
	ActionSRCF2Mess
	ActionSRCF3Mess
	ActionSRCFSealOrder
	ActionSRCFSeal
	ActionSRCFElevator
	ActionOpenDisarm
	ActionUnlockDisarm
	ActionReleaseDisarm
	ActionIrradiator
	ActionGeiger
	ActionConveyor
	ActionShutters
	ActionExtractRadSource
	ActionDeactivateShockVent
	ActionRadioArchive

	// NumActions is the number of action kinds. It is never stored.
	NumActions
)

var actionIDs = [NumActions]string{
	ActionNull:                         "null",
	ActionOpen:                         "open",
	ActionLock:                         "lock",
	ActionUnlock:                       "unlock",
	ActionToll:                         "toll",
	ActionSample:                       "sample",
	ActionRelease:                      "release",
	ActionReleaseBionics:               "release_bionics",
	ActionTerminate:                    "terminate",
	ActionPortal:                       "portal",
	ActionCascade:                      "cascade",
	ActionResearch:                     "research",
	ActionMaps:                         "maps",
	ActionMapSewer:                     "map_sewer",
	ActionMapSubway:                    "map_subway",
	ActionMissDisarm:                   "miss_disarm",
	ActionListBionics:                  "list_bionics",
	ActionElevatorOn:                   "elevator_on",
	ActionAmigaraLog:                   "amigara_log",
	ActionAmigaraStart:                 "amigara_start",
	ActionCompleteDisableExternalPower: "complete_disable_external_power",
	ActionRepeaterMod:                  "repeater_mod",
	ActionDownloadSoftware:             "download_software",
	ActionBloodAnal:                    "blood_anal",
	ActionDataAnal:                     "data_anal",
	ActionDisconnect:                   "disconnect",
	ActionEmergMess:                    "emerg_mess",
	ActionEmergRefCenter:               "emerg_ref_center",
	ActionTowerUnresponsive:            "tower_unresponsive",
	ActionSR1Mess:                      "sr1_mess",
	ActionSR2Mess:                      "sr2_mess",
	ActionSR3Mess:                      "sr3_mess",
	ActionSR4Mess:                      "sr4_mess",
	ActionSRCF1Mess:                    "srcf_1_mess",
	ActionSRCF2Mess:                    "srcf_2_mess",
	ActionSRCF3Mess:                    "srcf_3_mess",
	ActionSRCFSealOrder:                "srcf_seal_order",
	ActionSRCFSeal:                     "srcf_seal",
	ActionSRCFElevator:                 "srcf_elevator",
	ActionOpenDisarm:                   "open_disarm",
	ActionUnlockDisarm:                 "unlock_disarm",
	ActionReleaseDisarm:                "release_disarm",
	ActionIrradiator:                   "irradiator",
	ActionGeiger:                       "geiger",
	ActionConveyor:                     "conveyor",
	ActionShutters:                     "shutters",
	ActionExtractRadSource:             "extract_rad_source",
	ActionDeactivateShockVent:          "deactivate_shock_vent",
	ActionRadioArchive:                 "radio_archive",
}

var actionsByID = func() map[string]ActionKind {
	m := make(map[string]ActionKind, NumActions)
	for i, id := range actionIDs {
		m[id] = ActionKind(i)
	}
	return m
}()

// Valid returns true if a is a storable action kind
func (a ActionKind) Valid() bool {
	return a >= ActionNull && a < NumActions
}

// String returns the stable string id of the action
func (a ActionKind) String() string {
	if !a.Valid() {
		return fmt.Sprintf("ActionKind(%d)", int(a))
	}
	return actionIDs[a]
}

// ParseActionKind returns the action kind for a stable string id
func ParseActionKind(id string) (ActionKind, error) {
	a, ok := actionsByID[id]
	if !ok {
		return ActionNull, fmt.Errorf("%w: %q", ErrUnknownAction, id)
	}
	return a, nil
}

// MarshalText encodes the action as its string id
func (a ActionKind) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAction, int(a))
	}
	return []byte(actionIDs[a]), nil
}

// UnmarshalText decodes an action from its string id
func (a *ActionKind) UnmarshalText(text []byte) error {
	parsed, err := ParseActionKind(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// FailureKind identifies an automatic adverse outcome of a failed access attempt.
// The string ids are part of the save format: append new kinds, never rename an id.
type FailureKind int

// Failure kinds
const (
	FailureNull FailureKind = iota
	FailureShutdown
	FailureAlarm
	FailureManhacks
	FailureSecubots
	FailureDamage
	FailurePumpExplode
	FailurePumpLeak
	FailureAmigara
	FailureDestroyBlood
	FailureDestroyData

	// NumFailures is the number of failure kinds. It is never stored.
	NumFailures
)

var failureIDs = [NumFailures]string{
	FailureNull:         "null",
	FailureShutdown:     "shutdown",
	FailureAlarm:        "alarm",
	FailureManhacks:     "manhacks",
	FailureSecubots:     "secubots",
	FailureDamage:       "damage",
	FailurePumpExplode:  "pump_explode",
	FailurePumpLeak:     "pump_leak",
	FailureAmigara:      "amigara",
	FailureDestroyBlood: "destroy_blood",
	FailureDestroyData:  "destroy_data",
}

var failuresByID = func() map[string]FailureKind {
	m := make(map[string]FailureKind, NumFailures)
	for i, id := range failureIDs {
		m[id] = FailureKind(i)
	}
	return m
}()

// Valid returns true if f is a storable failure kind
func (f FailureKind) Valid() bool {
	return f >= FailureNull && f < NumFailures
}

// String returns the stable string id of the failure
func (f FailureKind) String() string {
	if !f.Valid() {
		return fmt.Sprintf("FailureKind(%d)", int(f))
	}
	return failureIDs[f]
}

// ParseFailureKind returns the failure kind for a stable string id
func ParseFailureKind(id string) (FailureKind, error) {
	f, ok := failuresByID[id]
	if !ok {
		return FailureNull, fmt.Errorf("%w: %q", ErrUnknownFailure, id)
	}
	return f, nil
}

// MarshalText encodes the failure as its string id
func (f FailureKind) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFailure, int(f))
	}
	return []byte(failureIDs[f]), nil
}

// UnmarshalText decodes a failure from its string id
func (f *FailureKind) UnmarshalText(text []byte) error {
	parsed, err := ParseFailureKind(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
