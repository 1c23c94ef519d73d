// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"darkconsole/pkg/engine/world"
	"darkconsole/pkg/game/computer"
	"darkconsole/pkg/game/renderer"
	"darkconsole/pkg/game/station"
	"darkconsole/pkg/game/terrain"
	gameworld "darkconsole/pkg/game/world"
)

// MapDumpFilename is the file DumpMapToFile writes to
const MapDumpFilename = "map.txt"

// tileSymbol returns the single-character symbol for a tile, without the operator overlay
func tileSymbol(t *world.Tile) string {
	data := gameworld.GetGameData(t)
	switch {
	case data.Monster != "":
		return "M"
	case data.Terminal != nil:
		return "T"
	case len(t.Items) > 0:
		return "i"
	case t.Trap != "":
		return "^"
	case t.Furniture != "":
		return "F"
	}
	if ti, ok := terrain.Types[t.Terrain]; ok {
		return ti.Symbol
	}
	return "?"
}

func writeMapGrid(out io.Writer, w *station.World) {
	op := w.Game.Pos()
	for y := 0; y < w.Grid.Height(); y++ {
		for x := 0; x < w.Grid.Width(); x++ {
			p := world.Point{X: x, Y: y, Z: w.Grid.Z()}
			if p == op {
				fmt.Fprint(out, "@")
				continue
			}
			fmt.Fprint(out, tileSymbol(w.Grid.GetTile(p)))
		}
		fmt.Fprintln(out)
	}
}

// DumpMap writes a debug dump of the level: metadata, legend, map, terminals, creatures, items
// and the overmap. Sections are plain "key: value" text.
func DumpMap(out io.Writer, w *station.World) {
	op := w.Game.Pos()

	fmt.Fprintln(out, "=== MAP DUMP DEBUG (station level, terminals, entities) ===")
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "--- Metadata ---")
	fmt.Fprintf(out, "station: %q\n", w.Name)
	fmt.Fprintf(out, "level: %d,%d,%d\n", w.LevelX(), w.LevelY(), w.LevelZ())
	fmt.Fprintf(out, "grid_width: %d\n", w.Grid.Width())
	fmt.Fprintf(out, "grid_height: %d\n", w.Grid.Height())
	fmt.Fprintf(out, "operator: %d,%d\n", op.X, op.Y)
	fmt.Fprintf(out, "turn: %d\n", w.Now())
	fmt.Fprintf(out, "moves: %d\n", w.Game.Moves)
	fmt.Fprintf(out, "hp: %d\n", w.Game.HP)
	var owned []*world.Item
	w.Game.OwnedItems.Each(func(it *world.Item) {
		owned = append(owned, it)
	})
	fmt.Fprintf(out, "inventory: %s\n", renderer.ItemNames(owned))
	fmt.Fprintln(out, "")

	fmt.Fprintln(out, "--- Legend (tile symbols) ---")
	fmt.Fprintln(out, "terrain symbols as in the station legend  T = terminal  M = monster  i = items  ^ = trap  F = furniture  @ = operator")
	fmt.Fprintln(out, "")

	fmt.Fprintln(out, "--- Map ---")
	writeMapGrid(out, w)
	fmt.Fprintln(out, "")

	fmt.Fprintln(out, "--- Entities (x,y and state) ---")

	fmt.Fprintln(out, "Terminals:")
	for _, t := range w.Terminals() {
		c := t.Computer
		fmt.Fprintf(out, "  x: %d y: %d name: %q security: %d options: %d failures: %d alerts: %d next_attempt: %d terrain: %q\n",
			t.At.X, t.At.Y, c.Name, c.Security, len(c.Options()), len(c.Failures()), c.Alerts, c.NextAttempt, w.Terrain(t.At))
	}
	fmt.Fprintln(out, "")

	fmt.Fprintln(out, "Monsters:")
	for _, p := range w.LocalPoints() {
		if w.HasMonster(p) {
			fmt.Fprintf(out, "  x: %d y: %d kind: %q\n", p.X, p.Y, w.Monster(p))
		}
	}
	fmt.Fprintln(out, "")

	fmt.Fprintln(out, "Items:")
	for _, p := range w.LocalPoints() {
		for _, it := range w.Items(p) {
			fmt.Fprintf(out, "  x: %d y: %d id: %q charges: %d contents: %q\n", p.X, p.Y, it.ID, it.Charges, renderer.ItemNames(it.Contents))
		}
	}
	fmt.Fprintln(out, "")

	fmt.Fprintln(out, "Traps:")
	for _, p := range w.LocalPoints() {
		if trap := w.Trap(p); trap != "" {
			fmt.Fprintf(out, "  x: %d y: %d trap: %q\n", p.X, p.Y, trap)
		}
	}
	fmt.Fprintln(out, "")

	fmt.Fprintln(out, "Radiation:")
	for _, p := range w.LocalPoints() {
		if rad := w.Radiation(p); rad > 0 {
			fmt.Fprintf(out, "  x: %d y: %d level: %d\n", p.X, p.Y, rad)
		}
	}
	fmt.Fprintln(out, "")

	fmt.Fprintln(out, "Events:")
	for _, event := range []string{computer.EventAmigara, computer.EventWanted} {
		if at, ok := w.EventTime(event); ok {
			fmt.Fprintf(out, "  event: %s turn: %d\n", event, at)
		}
	}
	fmt.Fprintln(out, "")

	fmt.Fprintln(out, "--- Overmap (dx,dy relative to the station) ---")
	for _, c := range w.Overmap.Coords() {
		fmt.Fprintf(out, "  dx: %d dy: %d id: %q seen: %v\n", c.X, c.Y, w.Overmap.ID(c), w.Overmap.Seen(c))
	}

	if len(w.Diagnostics) > 0 {
		fmt.Fprintln(out, "")
		fmt.Fprintln(out, "--- Diagnostics ---")
		for _, d := range w.Diagnostics {
			fmt.Fprintf(out, "  %s\n", d)
		}
	}
}

// DumpMapToFile writes DumpMap to map.txt in the working directory and returns its absolute path
func DumpMapToFile(w *station.World) (string, error) {
	absPath, err := filepath.Abs(MapDumpFilename)
	if err != nil {
		return "", err
	}
	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()
	DumpMap(f, w)
	return absPath, nil
}
