package chart

import "testing"

func TestScaleEndpointsAndMidpoint(t *testing.T) {
	t.Parallel()

	scale, ok := LookupScale("blues")
	if !ok {
		t.Fatal("expected Blues scale")
	}
	if got := hexColor(scale.At(0)); got != "#f7fbff" {
		t.Fatalf("At(0) = %s", got)
	}
	if got := hexColor(scale.At(1)); got != "#08306b" {
		t.Fatalf("At(1) = %s", got)
	}
	if got := hexColor(scale.At(0.5)); got != "#6baed6" {
		t.Fatalf("At(0.5) = %s", got)
	}
	if got := hexColor(scale.At(-3)); got != "#f7fbff" {
		t.Fatalf("At(-3) = %s, want clamp", got)
	}
}

func TestScaleNamesResolve(t *testing.T) {
	t.Parallel()

	for _, name := range ScaleNames() {
		if _, ok := LookupScale(name); !ok {
			t.Fatalf("scale %q does not resolve", name)
		}
	}
	if _, ok := LookupScale("Rainbow"); ok {
		t.Fatal("unexpected scale")
	}
}

func TestBaseMapTilesAreUnique(t *testing.T) {
	t.Parallel()

	if len(usTiles) != 51 {
		t.Fatalf("tiles = %d, want 51", len(usTiles))
	}
	cells := map[[2]int]string{}
	for _, tile := range usTiles {
		if tile.Col < 0 || tile.Col >= usMapCols || tile.Row < 0 || tile.Row >= usMapRows {
			t.Fatalf("tile %s outside grid", tile.Code)
		}
		key := [2]int{tile.Col, tile.Row}
		if other, ok := cells[key]; ok {
			t.Fatalf("tiles %s and %s share a cell", other, tile.Code)
		}
		cells[key] = tile.Code
	}
	if InBaseMap("ZZ") || !InBaseMap("DC") {
		t.Fatal("base map membership wrong")
	}
}

func TestFormatValue(t *testing.T) {
	t.Parallel()

	if got := FormatValue(324074); got != "324,074" {
		t.Fatalf("FormatValue = %q", got)
	}
	if got := FormatValue(43.98); got != "43.98" {
		t.Fatalf("FormatValue = %q", got)
	}
	if got := FormatShare(0.4193); got != "41.9%" {
		t.Fatalf("FormatShare = %q", got)
	}
}
