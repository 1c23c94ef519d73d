package world

// Grid represents one level of a local map with encapsulated tile storage
type Grid struct {
	tileMap map[int]map[int]*Tile
	width   int
	height  int
	z       int
}

// NewGrid creates a new grid with the given dimensions, filled with the given terrain
func NewGrid(width, height, z int, terrain string) *Grid {
	g := &Grid{}
	g.Build(width, height, z, terrain)
	return g
}

// Width returns the number of columns in the grid
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows in the grid
func (g *Grid) Height() int {
	return g.height
}

// Z returns the vertical level of the grid
func (g *Grid) Z() int {
	return g.z
}

// IsValidPosition checks if a point is within grid bounds and on the grid level
func (g *Grid) IsValidPosition(p Point) bool {
	return p.Z == g.z && p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// GetTile returns the tile at the given position, or nil if out of bounds
func (g *Grid) GetTile(p Point) *Tile {
	if !g.IsValidPosition(p) {
		return nil
	}

	if g.tileMap == nil {
		return nil
	}

	row, found := g.tileMap[p.Y]
	if !found {
		return nil
	}

	return row[p.X]
}

// Build initializes the grid with the given dimensions
func (g *Grid) Build(width, height, z int, terrain string) {
	if width <= 0 || height <= 0 {
		panic("Grid dimensions must be positive")
	}

	g.width = width
	g.height = height
	g.z = z

	g.tileMap = make(map[int]map[int]*Tile, height)

	for y := 0; y < height; y++ {
		g.tileMap[y] = make(map[int]*Tile, width)
		for x := 0; x < width; x++ {
			g.tileMap[y][x] = NewTile(Point{X: x, Y: y, Z: z}, terrain)
		}
	}
}

// ForEachTile iterates over all tiles in row-major order, calling the provided function for each
func (g *Grid) ForEachTile(fn func(p Point, t *Tile)) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			p := Point{X: x, Y: y, Z: g.z}
			if t := g.GetTile(p); t != nil {
				fn(p, t)
			}
		}
	}
}

// Points returns every position of the grid in row-major order
func (g *Grid) Points() []Point {
	points := make([]Point, 0, g.width*g.height)
	g.ForEachTile(func(p Point, _ *Tile) {
		points = append(points, p)
	})
	return points
}

// PointsInRadius returns the in-bounds points of the square of the given radius around center
func (g *Grid) PointsInRadius(center Point, radius int) []Point {
	var points []Point
	for y := center.Y - radius; y <= center.Y+radius; y++ {
		for x := center.X - radius; x <= center.X+radius; x++ {
			p := Point{X: x, Y: y, Z: center.Z}
			if g.IsValidPosition(p) {
				points = append(points, p)
			}
		}
	}
	return points
}

// TranslateRadius converts terrain `from` into `to` on every tile within the euclidean radius of
// center. With toggle set, tiles already of terrain `to` are converted back into `from`.
// Returns the number of converted tiles.
func (g *Grid) TranslateRadius(from, to string, radius float64, center Point, toggle bool) int {
	converted := 0
	g.ForEachTile(func(p Point, t *Tile) {
		if TrigDist(p, center) > radius {
			return
		}
		switch {
		case t.Terrain == from:
			t.Terrain = to
			converted++
		case toggle && t.Terrain == to:
			t.Terrain = from
			converted++
		}
	})
	return converted
}
