package globe

import (
	"encoding/json"
	"fmt"
	"os"
)

// GeoJSON loading for higher-resolution coastlines. Only Polygon and
// MultiPolygon geometries carry land outlines; everything else is
// skipped. Coordinates follow the GeoJSON order, longitude first.

type geoJSONCollection struct {
	Type     string           `json:"type"`
	Features []geoJSONFeature `json:"features"`
}

type geoJSONFeature struct {
	Type       string          `json:"type"`
	Properties map[string]any  `json:"properties"`
	Geometry   geoJSONGeometry `json:"geometry"`
}

type geoJSONGeometry struct {
	Type string `json:"type"`
	// Shape depends on Type, so decoding is deferred.
	Coordinates json.RawMessage `json:"coordinates"`
}

// LoadBoundaries reads a GeoJSON FeatureCollection and converts its
// polygon outer rings into boundaries compatible with the built-in
// dataset. Inner rings (holes) are dropped; at 1-degree resolution a
// lake-sized hole never survives quantization anyway.
func LoadBoundaries(path string) ([]Boundary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read boundary file: %w", err)
	}
	return ParseBoundaries(data)
}

// ParseBoundaries converts raw GeoJSON into boundaries.
func ParseBoundaries(data []byte) ([]Boundary, error) {
	var fc geoJSONCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parse geojson: %w", err)
	}

	var out []Boundary
	for i, f := range fc.Features {
		name := featureName(f.Properties)
		if name == "" {
			name = fmt.Sprintf("feature-%d", i)
		}

		switch f.Geometry.Type {
		case "Polygon":
			var rings [][][]float64
			if err := json.Unmarshal(f.Geometry.Coordinates, &rings); err != nil {
				return nil, fmt.Errorf("feature %q: %w", name, err)
			}
			if b, ok := ringBoundary(name, rings); ok {
				out = append(out, b)
			}
		case "MultiPolygon":
			var polys [][][][]float64
			if err := json.Unmarshal(f.Geometry.Coordinates, &polys); err != nil {
				return nil, fmt.Errorf("feature %q: %w", name, err)
			}
			for j, rings := range polys {
				part := name
				if len(polys) > 1 {
					part = fmt.Sprintf("%s-%d", name, j)
				}
				if b, ok := ringBoundary(part, rings); ok {
					out = append(out, b)
				}
			}
		}
	}
	return out, nil
}

func ringBoundary(name string, rings [][][]float64) (Boundary, bool) {
	if len(rings) == 0 {
		return Boundary{}, false
	}
	outer := rings[0]
	b := Boundary{Name: name}
	for _, c := range outer {
		if len(c) < 2 {
			continue
		}
		b.Outline = append(b.Outline, GeoPoint{Lat: c[1], Lon: c[0]})
	}
	// GeoJSON rings repeat the first vertex at the end; the outline
	// contract closes implicitly.
	if n := len(b.Outline); n > 1 && b.Outline[0] == b.Outline[n-1] {
		b.Outline = b.Outline[:n-1]
	}
	if len(b.Outline) < 3 {
		return Boundary{}, false
	}
	return b, true
}

func featureName(props map[string]any) string {
	for _, key := range []string{"name", "NAME", "admin", "ADMIN"} {
		if v, ok := props[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}
