package station

import (
	"strings"
	"testing"
)

func TestNewOvermapBadKey(t *testing.T) {
	for _, key := range []string{"1", "a,2", "3,b"} {
		if _, err := NewOvermap(map[string]string{key: "lab"}); err == nil {
			t.Errorf("NewOvermap(%q) succeeded, want error", key)
		}
	}
}

func TestRevealMatching(t *testing.T) {
	o, err := NewOvermap(map[string]string{
		"0,0":  "lab",
		"1,0":  "sewer_ns",
		"5,5":  "sewer_ew",
		"0,-1": "field",
	})
	if err != nil {
		t.Fatalf("NewOvermap: %v", err)
	}
	n := o.RevealMatching(2, func(id string) bool { return strings.HasPrefix(id, "sewer") })
	if n != 1 || !o.Seen(OvermapCoord{X: 1}) || o.Seen(OvermapCoord{X: 5, Y: 5}) {
		t.Errorf("RevealMatching revealed %d tiles, want only the close sewer", n)
	}
	if n := o.RevealArea(1); n != 2 {
		t.Errorf("RevealArea(1) revealed %d new tiles, want 2", n)
	}
	if o.SeenCount() != 3 {
		t.Errorf("SeenCount() = %d, want 3", o.SeenCount())
	}
}

func TestNearest(t *testing.T) {
	o, _ := NewOvermap(map[string]string{"4,0": "evac_center_north", "-2,1": "evac_center_east"})
	c, ok := o.Nearest(func(id string) bool { return strings.HasPrefix(id, "evac_center") })
	if !ok || c != (OvermapCoord{X: -2, Y: 1}) {
		t.Errorf("Nearest() = %v, %v, want -2,1", c, ok)
	}
	if compass(c) != "SOUTHWEST" {
		t.Errorf("compass(%v) = %q, want SOUTHWEST", c, compass(c))
	}
	if _, ok := o.Nearest(func(string) bool { return false }); ok {
		t.Error("Nearest() without match = ok")
	}
}
