package globe

import (
	"reflect"
	"testing"
)

// A 10x10 degree square: vertical edges at lon 0 and 10, horizontal
// edges at lat 0 and 10.
func squareBoundary(lat0, lon0, size float64) Boundary {
	return Boundary{
		Name: "square",
		Outline: []GeoPoint{
			{lat0, lon0},
			{lat0, lon0 + size},
			{lat0 + size, lon0 + size},
			{lat0 + size, lon0},
		},
	}
}

func TestBuildLandLookupDeterministic(t *testing.T) {
	boundaries := Boundaries()
	a := BuildLandLookup(boundaries)
	b := BuildLandLookup(boundaries)
	if !reflect.DeepEqual(a.bits, b.bits) {
		t.Error("Expected identical lookup contents across builds")
	}
	if a.CellCount() == 0 {
		t.Error("Expected built-in dataset to mark land cells")
	}
}

func TestRectangleFill(t *testing.T) {
	// Convention: a cell is land iff its center lies inside the
	// polygon, so the square [0,10]x[0,10] owns exactly the hundred
	// cells with corners 0..9.
	look := BuildLandLookup([]Boundary{squareBoundary(0, 0, 10)})

	for lat := 0; lat < 10; lat++ {
		for lon := 0; lon < 10; lon++ {
			if !look.Query(float64(lat)+0.5, float64(lon)+0.5) {
				t.Fatalf("Expected land at cell (%d, %d)", lat, lon)
			}
		}
	}

	outside := []GeoPoint{
		{-0.5, 5}, {10.5, 5}, {5, -0.5}, {5, 10.5},
		{45, 45}, {-45, -45},
	}
	for _, pt := range outside {
		if look.Query(pt.Lat, pt.Lon) {
			t.Errorf("Expected ocean at (%v, %v)", pt.Lat, pt.Lon)
		}
	}

	if got := look.CellCount(); got != 100 {
		t.Errorf("Expected 100 land cells, got %d", got)
	}
}

func TestDegenerateBoundaries(t *testing.T) {
	tests := []struct {
		name    string
		outline []GeoPoint
	}{
		{"Empty", nil},
		{"Single vertex", []GeoPoint{{1, 1}}},
		{"Two vertices", []GeoPoint{{0, 0}, {10, 10}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			look := BuildLandLookup([]Boundary{{Name: "bad", Outline: tt.outline}})
			if got := look.CellCount(); got != 0 {
				t.Errorf("Expected no land cells, got %d", got)
			}
		})
	}
}

func TestHorizontalEdgesContributeNothing(t *testing.T) {
	// A polygon collapsed onto one latitude has only horizontal edges.
	look := BuildLandLookup([]Boundary{{
		Name:    "flat",
		Outline: []GeoPoint{{5, 0}, {5, 10}, {5, 20}},
	}})
	if got := look.CellCount(); got != 0 {
		t.Errorf("Expected no land cells from a flat polygon, got %d", got)
	}
}

func TestQueryClampsOutOfRange(t *testing.T) {
	look := BuildLandLookup([]Boundary{squareBoundary(0, 0, 10)})
	// Must not panic, and far out-of-range coordinates snap to edge
	// cells, which are ocean here.
	pts := []GeoPoint{{90, 180}, {-90, -180}, {400, -700}}
	for _, pt := range pts {
		if look.Query(pt.Lat, pt.Lon) {
			t.Errorf("Expected ocean at clamped (%v, %v)", pt.Lat, pt.Lon)
		}
	}
}

func TestAntarcticBandCoversAllLongitudes(t *testing.T) {
	look := BuildLandLookup(Boundaries())
	for lon := -179.5; lon < 180; lon += 30 {
		if !look.Query(-75, lon) {
			t.Errorf("Expected Antarctic land at lon %v", lon)
		}
	}
}
