// Package terrain defines the terrain, furniture, field and creature ids terminals interact with.
package terrain

import (
	"github.com/zyedidia/generic/mapset"
)

// Terrain ids
const (
	Floor              = "t_floor"
	MetalFloor         = "t_metal_floor"
	ThickConcFloor     = "t_thconc_floor"
	Concrete           = "t_concrete"
	ConcreteWall       = "t_concrete_wall"
	WallGlass          = "t_wall_glass"
	ReinforcedGlass    = "t_reinforced_glass"
	ShutterOpen        = "t_reinforced_glass_shutter_open"
	ShutterClosed      = "t_reinforced_glass_shutter"
	DoorMetalClosed    = "t_door_metal_c"
	DoorMetalLocked    = "t_door_metal_locked"
	Console            = "t_console"
	ConsoleBroken      = "t_console_broken"
	SewagePump         = "t_sewage_pump"
	SewagePipe         = "t_sewage_pipe"
	Sewage             = "t_sewage"
	Grate              = "t_grate"
	WaterPool          = "t_water_pool"
	RadioTower         = "t_radio_tower"
	Elevator           = "t_elevator"
	ElevatorControl    = "t_elevator_control"
	ElevatorControlOff = "t_elevator_control_off"
	Vat                = "t_vat"
	Centrifuge         = "t_centrifuge"
	FloorBlue          = "t_floor_blue"
	FloorRed           = "t_floor_red"
	FloorGreen         = "t_floor_green"
	RadPlatform        = "t_rad_platform"
	PlutGenerator      = "t_plut_generator"
	Hole               = "t_hole"
)

// Furniture ids
const (
	FurnCounter    = "f_counter"
	FurnRubbleRock = "f_rubble_rock"
	FurnRubble     = "f_rubble"
)

// Field ids
const (
	FieldSmoke     = "fd_smoke"
	FieldNukeGas   = "fd_nuke_gas"
	FieldShockVent = "fd_shock_vent"
)

// Trap and creature ids
const (
	TrapPortal = "tr_portal"
	MonManhack = "mon_manhack"
	MonSecubot = "mon_secubot"
)

// Terrain flags
const (
	FlagConsole  = "CONSOLE"
	FlagWall     = "WALL"
	FlagLiquid   = "LIQUID"
	FlagPassable = "PASSABLE"
	FlagOpaque   = "OPAQUE"
)

// Info contains display information for each terrain id
type Info struct {
	Name   string
	Symbol string
	Flags  mapset.Set[string]
}

func info(name, symbol string, flags ...string) Info {
	set := mapset.New[string]()
	for _, f := range flags {
		set.Put(f)
	}
	return Info{Name: name, Symbol: symbol, Flags: set}
}

// Types maps terrain ids to their display information
var Types = map[string]Info{
	Floor:              info("floor", ".", FlagPassable),
	MetalFloor:         info("metal floor", ".", FlagPassable),
	ThickConcFloor:     info("thick concrete floor", ".", FlagPassable),
	Concrete:           info("concrete", ".", FlagPassable),
	ConcreteWall:       info("concrete wall", "#", FlagWall, FlagOpaque),
	WallGlass:          info("glass wall", "|", FlagWall),
	ReinforcedGlass:    info("reinforced glass", "|", FlagWall),
	ShutterOpen:        info("reinforced glass with open shutters", "|", FlagWall),
	ShutterClosed:      info("reinforced glass shutters", "#", FlagWall, FlagOpaque),
	DoorMetalClosed:    info("closed metal door", "+", FlagWall, FlagOpaque),
	DoorMetalLocked:    info("locked metal door", "+", FlagWall, FlagOpaque),
	Console:            info("computer console", "6", FlagConsole),
	ConsoleBroken:      info("broken console", "6"),
	SewagePump:         info("sewage pump", "&"),
	SewagePipe:         info("sewage pipe", "1"),
	Sewage:             info("sewage", "~", FlagPassable, FlagLiquid),
	Grate:              info("grate", "#", FlagPassable),
	WaterPool:          info("pool of water", "~", FlagPassable, FlagLiquid),
	RadioTower:         info("radio tower", "&"),
	Elevator:           info("elevator", ".", FlagPassable),
	ElevatorControl:    info("elevator controls", "6", FlagConsole),
	ElevatorControlOff: info("powerless controls", "6"),
	Vat:                info("cloning vat", "0"),
	Centrifuge:         info("centrifuge", "{", FlagPassable),
	FloorBlue:          info("blue floor", ".", FlagPassable),
	FloorRed:           info("red floor", ".", FlagPassable),
	FloorGreen:         info("green floor", ".", FlagPassable),
	RadPlatform:        info("radiation platform", "o", FlagPassable),
	PlutGenerator:      info("plutonium generator", "&"),
	Hole:               info("hole", " "),
}

// HasFlag returns true if the terrain id carries the given flag. Unknown terrain has no flags.
func HasFlag(id, flag string) bool {
	ti, ok := Types[id]
	if !ok {
		return false
	}
	return ti.Flags.Has(flag)
}

// Passable returns true if creatures can walk over the terrain
func Passable(id string) bool {
	return HasFlag(id, FlagPassable)
}

// Opaque returns true if the terrain blocks line of sight
func Opaque(id string) bool {
	return HasFlag(id, FlagOpaque)
}
