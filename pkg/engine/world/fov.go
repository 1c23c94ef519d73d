package world

// HasLineOfSight returns true if there's a clear path from a to b within radius (Chebyshev).
// Uses Bresenham's line algorithm; vision is blocked by tiles for which opaque returns true.
// The end points themselves never block.
func HasLineOfSight(grid *Grid, a, b Point, radius int, opaque func(t *Tile) bool) bool {
	if grid == nil || Dist(a, b) > radius {
		return false
	}

	dx := b.X - a.X
	dy := b.Y - a.Y
	if dx == 0 && dy == 0 {
		return true
	}

	absDx, absDy := abs(dx), abs(dy)

	// Bresenham: step along the longer axis
	var stepX, stepY int
	if dx > 0 {
		stepX = 1
	} else if dx < 0 {
		stepX = -1
	}
	if dy > 0 {
		stepY = 1
	} else if dy < 0 {
		stepY = -1
	}

	x, y := a.X, a.Y

	blocked := func() bool {
		if x == b.X && y == b.Y {
			return false
		}
		t := grid.GetTile(Point{X: x, Y: y, Z: a.Z})
		return t == nil || opaque(t)
	}

	if absDy >= absDx {
		// Step along rows
		err := 2*absDx - absDy
		for y != b.Y {
			y += stepY
			if err > 0 {
				x += stepX
				err -= 2 * absDy
			}
			err += 2 * absDx
			if blocked() {
				return false
			}
		}
	} else {
		// Step along cols
		err := 2*absDy - absDx
		for x != b.X {
			x += stepX
			if err > 0 {
				y += stepY
				err -= 2 * absDx
			}
			err += 2 * absDy
			if blocked() {
				return false
			}
		}
	}

	return true
}
