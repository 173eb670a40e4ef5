package globe

import (
	"os"
	"path/filepath"
	"testing"
)

const polygonJSON = `{
	"type": "FeatureCollection",
	"features": [{
		"type": "Feature",
		"properties": {"name": "Testland"},
		"geometry": {
			"type": "Polygon",
			"coordinates": [[[0, 0], [10, 0], [10, 10], [0, 10], [0, 0]]]
		}
	}]
}`

const multiPolygonJSON = `{
	"type": "FeatureCollection",
	"features": [{
		"type": "Feature",
		"properties": {"ADMIN": "Archipelago"},
		"geometry": {
			"type": "MultiPolygon",
			"coordinates": [
				[[[0, 0], [5, 0], [5, 5], [0, 0]]],
				[[[20, 20], [25, 20], [25, 25], [20, 20]]]
			]
		}
	}]
}`

func TestParsePolygon(t *testing.T) {
	bounds, err := ParseBoundaries([]byte(polygonJSON))
	if err != nil {
		t.Fatalf("ParseBoundaries failed: %v", err)
	}
	if len(bounds) != 1 {
		t.Fatalf("Expected 1 boundary, got %d", len(bounds))
	}

	b := bounds[0]
	if b.Name != "Testland" {
		t.Errorf("Expected name Testland, got %q", b.Name)
	}
	// The repeated closing vertex is trimmed.
	if len(b.Outline) != 4 {
		t.Fatalf("Expected 4 vertices, got %d", len(b.Outline))
	}
	// GeoJSON order is lon, lat.
	if b.Outline[1] != (GeoPoint{Lat: 0, Lon: 10}) {
		t.Errorf("Vertex 1 = %+v, axes swapped?", b.Outline[1])
	}
}

func TestParseMultiPolygon(t *testing.T) {
	bounds, err := ParseBoundaries([]byte(multiPolygonJSON))
	if err != nil {
		t.Fatalf("ParseBoundaries failed: %v", err)
	}
	if len(bounds) != 2 {
		t.Fatalf("Expected 2 boundaries, got %d", len(bounds))
	}
	if bounds[0].Name != "Archipelago-0" || bounds[1].Name != "Archipelago-1" {
		t.Errorf("Expected suffixed part names, got %q and %q", bounds[0].Name, bounds[1].Name)
	}
}

func TestParseSkipsUnusableFeatures(t *testing.T) {
	tests := []struct {
		name string
		json string
		want int
	}{
		{
			"Point geometry",
			`{"type":"FeatureCollection","features":[{"type":"Feature","properties":{},"geometry":{"type":"Point","coordinates":[1,2]}}]}`,
			0,
		},
		{
			"Degenerate ring",
			`{"type":"FeatureCollection","features":[{"type":"Feature","properties":{},"geometry":{"type":"Polygon","coordinates":[[[0,0],[1,1],[0,0]]]}}]}`,
			0,
		},
		{
			"Empty collection",
			`{"type":"FeatureCollection","features":[]}`,
			0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bounds, err := ParseBoundaries([]byte(tt.json))
			if err != nil {
				t.Fatalf("ParseBoundaries failed: %v", err)
			}
			if len(bounds) != tt.want {
				t.Errorf("Expected %d boundaries, got %d", tt.want, len(bounds))
			}
		})
	}
}

func TestParseUnnamedFeature(t *testing.T) {
	raw := `{"type":"FeatureCollection","features":[{"type":"Feature","properties":{},"geometry":{"type":"Polygon","coordinates":[[[0,0],[10,0],[10,10]]]}}]}`
	bounds, err := ParseBoundaries([]byte(raw))
	if err != nil {
		t.Fatalf("ParseBoundaries failed: %v", err)
	}
	if len(bounds) != 1 || bounds[0].Name != "feature-0" {
		t.Fatalf("Expected fallback name feature-0, got %+v", bounds)
	}
}

func TestParseMalformed(t *testing.T) {
	if _, err := ParseBoundaries([]byte(`{"type": "FeatureCollection", "features": [`)); err == nil {
		t.Error("Expected error for truncated JSON")
	}
	raw := `{"type":"FeatureCollection","features":[{"type":"Feature","properties":{},"geometry":{"type":"Polygon","coordinates":"oops"}}]}`
	if _, err := ParseBoundaries([]byte(raw)); err == nil {
		t.Error("Expected error for malformed coordinates")
	}
}

func TestLoadBoundaries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "land.geojson")
	if err := os.WriteFile(path, []byte(polygonJSON), 0o644); err != nil {
		t.Fatal(err)
	}

	bounds, err := LoadBoundaries(path)
	if err != nil {
		t.Fatalf("LoadBoundaries failed: %v", err)
	}
	if len(bounds) != 1 {
		t.Fatalf("Expected 1 boundary, got %d", len(bounds))
	}

	if _, err := LoadBoundaries(filepath.Join(t.TempDir(), "missing.geojson")); err == nil {
		t.Error("Expected error for a missing file")
	}
}

func TestLoadedBoundariesFillLand(t *testing.T) {
	bounds, err := ParseBoundaries([]byte(polygonJSON))
	if err != nil {
		t.Fatalf("ParseBoundaries failed: %v", err)
	}
	look := BuildLandLookup(bounds)
	if !look.Query(5, 5) {
		t.Error("Expected land inside the loaded polygon")
	}
	if look.Query(5, 50) {
		t.Error("Expected ocean outside the loaded polygon")
	}
}
