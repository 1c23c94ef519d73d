package station

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/zyedidia/generic/mapset"
)

// OvermapCoord is an overmap tile relative to the station's own tile
type OvermapCoord struct {
	X int
	Y int
}

func (c OvermapCoord) dist() int {
	return max(abs(c.X), abs(c.Y))
}

// Overmap is the coarse map of the world around the station and what the operator has seen of it
type Overmap struct {
	tiles map[OvermapCoord]string
	seen  mapset.Set[OvermapCoord]
}

// NewOvermap parses overmap tiles keyed by "dx,dy"
func NewOvermap(tiles map[string]string) (*Overmap, error) {
	o := &Overmap{tiles: make(map[OvermapCoord]string, len(tiles)), seen: mapset.New[OvermapCoord]()}
	for key, id := range tiles {
		xs, ys, ok := strings.Cut(key, ",")
		if !ok {
			return nil, fmt.Errorf("overmap key %q: want dx,dy", key)
		}
		x, err := strconv.Atoi(strings.TrimSpace(xs))
		if err != nil {
			return nil, fmt.Errorf("overmap key %q: %w", key, err)
		}
		y, err := strconv.Atoi(strings.TrimSpace(ys))
		if err != nil {
			return nil, fmt.Errorf("overmap key %q: %w", key, err)
		}
		o.tiles[OvermapCoord{X: x, Y: y}] = id
	}
	return o, nil
}

// ID returns the overmap terrain at c, empty when unknown
func (o *Overmap) ID(c OvermapCoord) string {
	return o.tiles[c]
}

// Seen reports whether the operator knows the tile at c
func (o *Overmap) Seen(c OvermapCoord) bool {
	return o.seen.Has(c)
}

// SeenCount returns the number of known tiles
func (o *Overmap) SeenCount() int {
	return o.seen.Size()
}

// RevealArea marks every tile within radius as seen and returns how many were new
func (o *Overmap) RevealArea(radius int) int {
	return o.RevealMatching(radius, func(string) bool { return true })
}

// RevealMatching marks the tiles within radius whose id matches as seen and returns how many
// were new
func (o *Overmap) RevealMatching(radius int, match func(id string) bool) int {
	revealed := 0
	for c, id := range o.tiles {
		if c.dist() > radius || !match(id) || o.seen.Has(c) {
			continue
		}
		o.seen.Put(c)
		revealed++
	}
	return revealed
}

// Nearest returns the closest tile whose id matches. Ties are broken by position.
func (o *Overmap) Nearest(match func(id string) bool) (OvermapCoord, bool) {
	var found []OvermapCoord
	for c, id := range o.tiles {
		if match(id) {
			found = append(found, c)
		}
	}
	if len(found) == 0 {
		return OvermapCoord{}, false
	}
	sort.Slice(found, func(i, j int) bool {
		a, b := found[i], found[j]
		if a.dist() != b.dist() {
			return a.dist() < b.dist()
		}
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})
	return found[0], true
}

// Mark marks a single tile as seen
func (o *Overmap) Mark(c OvermapCoord) {
	o.seen.Put(c)
}

// Coords returns every known tile, north to south then west to east
func (o *Overmap) Coords() []OvermapCoord {
	out := make([]OvermapCoord, 0, len(o.tiles))
	for c := range o.tiles {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
