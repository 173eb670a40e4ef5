package globe

import (
	"math"
	"reflect"
	"testing"
)

func colorSet(p [bandCount]Color) map[Color]bool {
	set := make(map[Color]bool, len(p))
	for _, c := range p {
		set[c] = true
	}
	return set
}

func TestRenderLandFacesViewer(t *testing.T) {
	// A single land square centered on (0, 0). At zero rotation that
	// point faces the viewer, so land glyphs must appear, colored from
	// the land palette, with the rest of the disc in ocean colors.
	look := BuildLandLookup([]Boundary{squareBoundary(-5, -5, 10)})
	r := NewRenderer(look)

	opt := Options{Quality: 1}
	frame, err := r.Render(opt, 20, 10, 0)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	land := colorSet(landDayPalette)
	ocean := colorSet(oceanDayPalette)
	for c := range land {
		if ocean[c] {
			t.Fatalf("Land and ocean palettes share color %d", c)
		}
	}

	landCells, oceanCells := 0, 0
	for y := 0; y < frame.Height; y++ {
		for x := 0; x < frame.Width; x++ {
			cell := frame.At(x, y)
			if cell.Rune == ' ' {
				continue
			}
			switch {
			case land[cell.Color]:
				landCells++
			case ocean[cell.Color]:
				oceanCells++
			default:
				t.Fatalf("Cell (%d,%d) has color %d from neither palette", x, y, cell.Color)
			}
		}
	}
	if landCells == 0 {
		t.Error("Expected land glyphs facing the viewer, found none")
	}
	if oceanCells == 0 {
		t.Error("Expected ocean glyphs around the land, found none")
	}
}

func TestRenderLandRotatedAway(t *testing.T) {
	look := BuildLandLookup([]Boundary{squareBoundary(-5, -5, 10)})
	r := NewRenderer(look)

	// Half a turn puts the only land on the far hemisphere.
	frame, err := r.Render(Options{Quality: 1}, 20, 10, math.Pi)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	land := colorSet(landDayPalette)
	for y := 0; y < frame.Height; y++ {
		for x := 0; x < frame.Width; x++ {
			cell := frame.At(x, y)
			if cell.Rune != ' ' && land[cell.Color] {
				t.Fatalf("Cell (%d,%d) shows land from the back hemisphere", x, y)
			}
		}
	}
}

func TestRenderQualityClamps(t *testing.T) {
	look := BuildLandLookup([]Boundary{squareBoundary(-5, -5, 10)})
	r := NewRenderer(look)

	high, err := r.Render(Options{Quality: 99}, 40, 20, 0.5)
	if err != nil {
		t.Fatalf("Render with excessive quality failed: %v", err)
	}
	max, err := r.Render(Options{Quality: MaxQuality}, 40, 20, 0.5)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !reflect.DeepEqual(high, max) {
		t.Error("Quality above the maximum should clamp to the maximum")
	}

	low, err := r.Render(Options{Quality: -3}, 40, 20, 0.5)
	if err != nil {
		t.Fatalf("Render with negative quality failed: %v", err)
	}
	min, err := r.Render(Options{Quality: MinQuality}, 40, 20, 0.5)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !reflect.DeepEqual(low, min) {
		t.Error("Quality below the minimum should clamp to the minimum")
	}
}

func TestRenderTerminalTooSmall(t *testing.T) {
	r := NewRenderer(BuildLandLookup(nil))

	tests := []struct {
		name          string
		width, height int
	}{
		{"Zero width", 0, 10},
		{"Zero height", 10, 0},
		{"Both zero", 0, 0},
		{"Negative", -5, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := r.Render(DefaultOptions(), tt.width, tt.height, 0); err != ErrTerminalTooSmall {
				t.Errorf("Expected ErrTerminalTooSmall, got %v", err)
			}
		})
	}
}

func TestRenderSurvivesTinyAndOddSizes(t *testing.T) {
	r := NewRenderer(BuildLandLookup(Boundaries()))
	opt := DefaultOptions()
	opt.NightMode = true

	sizes := [][2]int{{1, 1}, {2, 1}, {1, 2}, {3, 2}, {7, 31}, {200, 3}}
	for _, size := range sizes {
		frame, err := r.Render(opt, size[0], size[1], 1.3)
		if err != nil {
			t.Fatalf("Render at %dx%d failed: %v", size[0], size[1], err)
		}
		if frame.Width != size[0] || frame.Height != size[1] {
			t.Fatalf("Frame size %dx%d does not match request %dx%d",
				frame.Width, frame.Height, size[0], size[1])
		}
		if len(frame.Cells) != size[0]*size[1] {
			t.Fatalf("Frame at %dx%d has %d cells", size[0], size[1], len(frame.Cells))
		}
	}
}

func TestRenderAtmosphereStaysOutsideDisc(t *testing.T) {
	r := NewRenderer(BuildLandLookup(nil))
	opt := Options{Quality: MaxQuality, Atmosphere: true}

	frame, err := r.Render(opt, 40, 20, 0)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	vp := NewViewport(40, 20)
	found := false
	for y := 0; y < frame.Height; y++ {
		for x := 0; x < frame.Width; x++ {
			cell := frame.At(x, y)
			if cell.Rune == ' ' || cell.Color != atmosphereColor {
				continue
			}
			found = true
			d := vp.RadialDistance(x, y)
			if d <= atmosphereInner || d >= atmosphereOuter {
				t.Fatalf("Atmosphere cell (%d,%d) at radial distance %v", x, y, d)
			}
		}
	}
	if !found {
		t.Error("Expected an atmosphere ring, found no glow cells")
	}
}

func TestRenderDeterministic(t *testing.T) {
	r := NewRenderer(BuildLandLookup(Boundaries()))
	opt := DefaultOptions()
	opt.NightMode = true

	a, err := r.Render(opt, 60, 24, 2.1)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	b, err := r.Render(opt, 60, 24, 2.1)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("Identical inputs produced different frames")
	}
}

func TestRotationStateWraps(t *testing.T) {
	tests := []struct {
		name  string
		start float64
		step  float64
		want  float64
	}{
		{"Simple advance", 0, 1, 1},
		{"Wrap forward", 6, 1, 7 - 2*math.Pi},
		{"Wrap backward", 0.1, -0.3, 0.1 - 0.3 + 2*math.Pi},
		{"Full turn", 1, 2 * math.Pi, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rot := RotationState(tt.start)
			rot.Advance(tt.step)
			got := rot.Angle()
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Advance(%v) from %v = %v, want %v", tt.step, tt.start, got, tt.want)
			}
			if got < 0 || got >= 2*math.Pi {
				t.Errorf("Angle %v outside [0, 2 pi)", got)
			}
		})
	}
}
