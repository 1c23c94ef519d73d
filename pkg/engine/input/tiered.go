package input

import (
	"sort"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceTerminal
	DeviceScript
)

// Action represents a high‑level intent at a terminal prompt.
type Action int

const (
	ActionNone Action = iota

	// Menu navigation
	ActionUp
	ActionDown
	ActionSelect // Pick a numbered entry, see Intent.Index

	// Prompts
	ActionConfirm
	ActionYes
	ActionNo
	ActionQuit
)

// Intent is the 4th‑layer, high‑level description of what the operator wants to do.
type Intent struct {
	Action Action
	// Index is the zero based menu entry for ActionSelect
	Index int
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "k", "enter", "escape").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after debouncing/deduplication.
// Terminal raw mode already delivers one event per key press, but the layer is
// kept distinct so scripted and interactive input share the mapping below.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// KeyCode names a key byte read in raw mode
func KeyCode(b byte) string {
	switch b {
	case '\r', '\n':
		return "enter"
	case 27:
		return "escape"
	case ' ':
		return "space"
	}
	return string(rune(b))
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Navigation (arrows, Vim)
	"arrow_up":   ActionUp,
	"k":          ActionUp,
	"arrow_down": ActionDown,
	"j":          ActionDown,

	// Confirmation
	"enter": ActionConfirm,
	"space": ActionConfirm,

	"y": ActionYes,
	"Y": ActionYes,
	"n": ActionNo,
	"N": ActionNo,

	// Quit
	"quit":   ActionQuit,
	"q":      ActionQuit,
	"Q":      ActionQuit,
	"escape": ActionQuit,
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high‑level Intent. Digits select menu entries.
func MapToIntent(ev DebouncedInput) Intent {
	if len(ev.Code) == 1 && ev.Code[0] >= '1' && ev.Code[0] <= '9' {
		return Intent{Action: ActionSelect, Index: int(ev.Code[0] - '1')}
	}
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionSelect:
		return "Select"
	case ActionConfirm:
		return "Confirm"
	case ActionYes:
		return "Yes"
	case ActionNo:
		return "No"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Ensure stable ordering of codes within each action so help text doesn't change.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
