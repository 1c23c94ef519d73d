// Package world provides game-specific world extensions for the station.
// It extends the generic engine/world primitives with terminals and creatures.
package world

import (
	"darkconsole/pkg/engine/world"
	"darkconsole/pkg/game/computer"
)

// GameTileData holds game-specific entity references for a tile.
// This is stored in the engine Tile's GameData field.
type GameTileData struct {
	Terminal *computer.Computer // Terminal installed in this tile's console (if any)
	Monster  string             // Creature standing on this tile (if any)
}

// InitGameData initializes game data for a tile if not already set
func InitGameData(tile *world.Tile) *GameTileData {
	if tile.GameData == nil {
		tile.GameData = &GameTileData{}
	}
	return tile.GameData.(*GameTileData)
}

// GetGameData retrieves game data from a tile, initializing if needed
func GetGameData(tile *world.Tile) *GameTileData {
	return InitGameData(tile)
}

// HasTerminal returns true if this tile holds a terminal
func HasTerminal(tile *world.Tile) bool {
	return GetGameData(tile).Terminal != nil
}

// HasMonster returns true if a creature stands on this tile
func HasMonster(tile *world.Tile) bool {
	return GetGameData(tile).Monster != ""
}

// PlaceMonster puts a creature on the tile, returns false if the tile is occupied
func PlaceMonster(tile *world.Tile, kind string) bool {
	data := GetGameData(tile)
	if data.Monster != "" {
		return false
	}
	data.Monster = kind
	return true
}

// RemoveMonster removes the creature from the tile, returns false if there was none
func RemoveMonster(tile *world.Tile) bool {
	data := GetGameData(tile)
	if data.Monster == "" {
		return false
	}
	data.Monster = ""
	return true
}
