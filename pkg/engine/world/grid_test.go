package world

import "testing"

func TestGetTile_OutOfBounds(t *testing.T) {
	g := NewGrid(3, 2, 0, "t_floor")
	if g.GetTile(Point{X: 3, Y: 0}) != nil {
		t.Error("GetTile(3,0) on 3x2 grid = non-nil, want nil")
	}
	if g.GetTile(Point{X: 0, Y: 0, Z: -1}) != nil {
		t.Error("GetTile on another level = non-nil, want nil")
	}
	if g.GetTile(Point{X: 2, Y: 1}) == nil {
		t.Error("GetTile(2,1) on 3x2 grid = nil, want tile")
	}
}

func TestPointsInRadius_ClipsToBounds(t *testing.T) {
	g := NewGrid(5, 5, 0, "t_floor")
	points := g.PointsInRadius(Point{X: 0, Y: 0}, 1)
	if len(points) != 4 {
		t.Fatalf("PointsInRadius(corner, 1) returned %d points, want 4", len(points))
	}
	points = g.PointsInRadius(Point{X: 2, Y: 2}, 1)
	if len(points) != 9 {
		t.Errorf("PointsInRadius(center, 1) returned %d points, want 9", len(points))
	}
}

func TestTranslateRadius_Toggle(t *testing.T) {
	g := NewGrid(5, 1, 0, "t_floor")
	g.GetTile(Point{X: 0}).Terrain = "t_shutter_open"
	g.GetTile(Point{X: 1}).Terrain = "t_shutter"
	g.GetTile(Point{X: 4}).Terrain = "t_shutter_open"

	n := g.TranslateRadius("t_shutter_open", "t_shutter", 2, Point{}, true)
	if n != 2 {
		t.Errorf("TranslateRadius converted %d tiles, want 2", n)
	}
	if got := g.GetTile(Point{X: 0}).Terrain; got != "t_shutter" {
		t.Errorf("tile 0 terrain = %q, want t_shutter", got)
	}
	if got := g.GetTile(Point{X: 1}).Terrain; got != "t_shutter_open" {
		t.Errorf("tile 1 terrain = %q, want t_shutter_open (toggled back)", got)
	}
	if got := g.GetTile(Point{X: 4}).Terrain; got != "t_shutter_open" {
		t.Errorf("tile 4 terrain = %q, want untouched t_shutter_open", got)
	}
}

func TestTileRemoveItem(t *testing.T) {
	tile := NewTile(Point{}, "t_floor")
	a, b := NewItem("a"), NewItem("b")
	tile.AddItem(a)
	tile.AddItem(b)
	if !tile.RemoveItem(a) {
		t.Fatal("RemoveItem(a) = false, want true")
	}
	if tile.RemoveItem(a) {
		t.Error("second RemoveItem(a) = true, want false")
	}
	if len(tile.Items) != 1 || tile.Items[0] != b {
		t.Errorf("items after removal = %v, want [b]", tile.Items)
	}
}

func TestDist(t *testing.T) {
	if d := Dist(Point{X: 1, Y: 1}, Point{X: 4, Y: -1}); d != 3 {
		t.Errorf("Dist = %d, want 3", d)
	}
}
