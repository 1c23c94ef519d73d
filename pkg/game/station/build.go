package station

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/zyedidia/generic/mapset"

	"darkconsole/pkg/engine/calendar"
	"darkconsole/pkg/engine/world"
	"darkconsole/pkg/game/content"
	"darkconsole/pkg/game/state"
	"darkconsole/pkg/game/terrain"
	gameworld "darkconsole/pkg/game/world"
)

// New builds the level described by st. The console answers prompts; r drives every random
// choice the world makes and may be nil.
func New(st *content.Station, con *Console, r *rand.Rand) (*World, error) {
	if err := st.Validate(); err != nil {
		return nil, err
	}

	height := len(st.Map)
	width := len(st.Map[0])
	z := st.Level.Z
	grid := world.NewGrid(width, height, z, terrain.Floor)

	for y, row := range st.Map {
		for x, ch := range row {
			ter, furn, _ := strings.Cut(st.Legend[string(ch)], "/")
			if _, ok := terrain.Types[ter]; !ok {
				return nil, fmt.Errorf("station %s: unknown terrain %q for %q", st.Name, ter, ch)
			}
			t := grid.GetTile(world.Point{X: x, Y: y, Z: z})
			t.Terrain = ter
			t.Furniture = furn
		}
	}

	at := func(c content.Coord) world.Point {
		return world.Point{X: c.X, Y: c.Y, Z: z}
	}

	game := state.NewGame(at(st.Operator.At))
	game.SecurityClearance = st.Operator.Clearance
	game.Skill = st.Operator.Skill
	for _, id := range st.Operator.Items {
		game.PickUpItem(world.NewItem(id))
	}
	for _, m := range st.Operator.Missions {
		game.AddMission(m)
	}

	overmap, err := NewOvermap(st.Overmap)
	if err != nil {
		return nil, fmt.Errorf("station %s: %w", st.Name, err)
	}

	w := &World{
		Console:       con,
		Name:          st.Name,
		Grid:          grid,
		Game:          game,
		Clock:         calendar.NewClock(calendar.Turn),
		Overmap:       overmap,
		levelX:        st.Level.X,
		levelY:        st.Level.Y,
		rand:          r,
		snippets:      st.Snippets,
		missionItems:  st.MissionItems,
		itemTemplates: mapset.New[string](),
		events:        make(map[string]calendar.TimePoint),
	}
	for _, id := range st.ItemTemplates {
		w.itemTemplates.Put(id)
	}

	for _, pt := range st.Terminals {
		p := at(pt.At)
		if !w.HasFlag(terrain.FlagConsole, p) {
			return nil, fmt.Errorf("station %s: terminal %q does not stand on a console", st.Name, pt.Name)
		}
		c, err := pt.Template.Build()
		if err != nil {
			return nil, fmt.Errorf("station %s: %w", st.Name, err)
		}
		w.SetTerminal(p, c)
	}

	for _, pi := range st.Items {
		w.AddItem(at(pi.At), placedItem(pi))
	}

	for _, pm := range st.Monsters {
		if !gameworld.PlaceMonster(grid.GetTile(at(pm.At)), pm.Kind) {
			return nil, fmt.Errorf("station %s: two monsters at %d,%d", st.Name, pm.At.X, pm.At.Y)
		}
	}

	return w, nil
}

// placedItem creates an item from its definition. The source is given to the contents, or to the
// item itself when it holds nothing.
func placedItem(pi content.PlacedItem) *world.Item {
	it := world.NewItem(pi.ID)
	if pi.Name != "" {
		it.Name = pi.Name
	}
	it.Charges = pi.Charges
	it.Bionic = pi.Bionic
	it.Liquid = pi.Liquid
	for _, id := range pi.Contents {
		inner := world.NewItem(id)
		inner.Source = pi.Source
		it.Contents = append(it.Contents, inner)
	}
	if len(pi.Contents) == 0 {
		it.Source = pi.Source
	}
	return it
}
