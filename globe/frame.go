package globe

import (
	"errors"
	"math"
)

// ErrTerminalTooSmall is returned when the target grid has no room to
// render anything. It is the only error the renderer surfaces; every
// per-sample anomaly just drops the sample.
var ErrTerminalTooSmall = errors.New("terminal too small to render")

// Quality levels subsample the fixed surface grid.
const (
	MinQuality = 1
	MaxQuality = 4
)

// Options is the per-frame configuration snapshot. Values are plain
// data; the renderer never mutates the caller's copy.
type Options struct {
	Quality       int
	Atmosphere    bool
	CityLights    bool
	Clouds        bool
	OceanSpecular bool
	PolarIce      bool
	NightMode     bool
}

// DefaultOptions enables every effect at full quality in day mode.
func DefaultOptions() Options {
	return Options{
		Quality:       MaxQuality,
		Atmosphere:    true,
		CityLights:    true,
		Clouds:        true,
		OceanSpecular: true,
		PolarIce:      true,
	}
}

// normalized clamps out-of-range values instead of failing mid-frame.
func (o Options) normalized() Options {
	if o.Quality < MinQuality {
		o.Quality = MinQuality
	} else if o.Quality > MaxQuality {
		o.Quality = MaxQuality
	}
	return o
}

// RotationState is the spin angle in radians, the only value that
// persists across frames. The caller advances it once per tick.
type RotationState float64

// Advance adds a step and wraps into [0, 2 pi).
func (r *RotationState) Advance(step float64) {
	a := math.Mod(float64(*r)+step, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	*r = RotationState(a)
}

// Angle returns the current angle in radians.
func (r RotationState) Angle() float64 {
	return float64(r)
}

// Cell is one rendered character: a code point and its foreground
// color index.
type Cell struct {
	Rune  rune
	Color Color
}

// Frame is a completed render: a row-major grid of cells.
type Frame struct {
	Width  int
	Height int
	Cells  []Cell
}

// At returns the cell at a grid position.
func (f *Frame) At(x, y int) Cell {
	return f.Cells[y*f.Width+x]
}

// gridSample is one precomputed point of the fixed surface sampling
// grid: its geographic position and unrotated unit vector.
type gridSample struct {
	pt GeoPoint
	v  Vec3
}

// Renderer renders frames of the globe. It owns only immutable data:
// the land lookup, the precomputed sampling grid, and the city and
// cloud point sets. Safe to reuse across every frame and terminal size.
type Renderer struct {
	look   *LandLookup
	rows   [][]gridSample // 1-degree surface grid, row per latitude
	cities []cityPoint
	clouds []Vec3
}

type cityPoint struct {
	name string
	v    Vec3
}

// NewRenderer precomputes the sampling grid from an immutable land
// lookup. The grid is fixed at 1-degree steps; coarser quality levels
// stride over it rather than building their own.
func NewRenderer(look *LandLookup) *Renderer {
	r := &Renderer{look: look}

	r.rows = make([][]gridSample, latCells)
	for i := 0; i < latCells; i++ {
		lat := float64(i) - 90 + 0.5
		row := make([]gridSample, lonCells)
		for j := 0; j < lonCells; j++ {
			lon := float64(j) - 180 + 0.5
			pt := GeoPoint{Lat: lat, Lon: lon}
			row[j] = gridSample{pt: pt, v: ToCartesian(lat, lon)}
		}
		r.rows[i] = row
	}

	for _, c := range Cities() {
		r.cities = append(r.cities, cityPoint{
			name: c.Name,
			v:    ToCartesian(c.Loc.Lat, c.Loc.Lon),
		})
	}

	// Clouds sit slightly above the surface so they out-rotate the
	// silhouette a little.
	for _, pt := range CloudField() {
		r.clouds = append(r.clouds, ToCartesian(pt.Lat, pt.Lon).Scale(cloudRadius))
	}

	return r
}

const cloudRadius = 1.02

// Render composites one frame at the given rotation angle. It is a
// pure function of its arguments and the renderer's immutable data;
// the grid is rebuilt from scratch every call, so resizes between
// frames need no special handling.
func (r *Renderer) Render(opt Options, width, height int, theta float64) (*Frame, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrTerminalTooSmall
	}
	opt = opt.normalized()

	vp := NewViewport(width, height)
	shader := NewShader(r.look, opt)
	grid := NewDotGrid(width, height)
	sin, cos := math.Sincos(theta)

	// Surface pass: rotate, cull, shade, composite.
	stride := MaxQuality + 1 - opt.Quality
	for i := 0; i < len(r.rows); i += stride {
		row := r.rows[i]
		for j := 0; j < len(row); j += stride {
			s := row[j]
			p := rotateZ(s.v, sin, cos)
			u, v, ok := vp.Project(p)
			if !ok {
				continue
			}
			cat, color, intensity := shader.Surface(s.pt, p)
			if intensity <= 0 {
				continue
			}
			grid.Plot(u, v, cat, color)
		}
	}

	// City lights, night side only.
	for _, c := range r.cities {
		p := rotateZ(c.v, sin, cos)
		u, v, ok := vp.Project(p)
		if !ok {
			continue
		}
		color, intensity, lit := shader.CityLight(p)
		if !lit || intensity <= 0 {
			continue
		}
		grid.Plot(u, v, CategoryCityLight, color)
	}

	// Cloud layer.
	if opt.Clouds {
		for _, cv := range r.clouds {
			p := rotateZ(cv, sin, cos)
			u, v, ok := vp.Project(p)
			if !ok {
				continue
			}
			color, intensity := shader.Cloud(p)
			if intensity <= 0 {
				continue
			}
			grid.Plot(u, v, CategoryCloud, color)
		}
	}

	// Atmosphere ring: screen-space band just outside the silhouette,
	// drawn only into cells the sphere left empty.
	if opt.Atmosphere {
		r.atmosphere(vp, grid)
	}

	frame := &Frame{Width: width, Height: height, Cells: make([]Cell, width*height)}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			cell := grid.Cell(x, y)
			frame.Cells[y*width+x] = Cell{Rune: cell.Rune(), Color: cell.color}
		}
	}
	return frame, nil
}

// Atmosphere band bounds, in units of the globe radius.
const (
	atmosphereInner = 0.95
	atmosphereOuter = 1.15
)

func (r *Renderer) atmosphere(vp Viewport, grid *DotGrid) {
	for y := 0; y < vp.Height; y++ {
		for x := 0; x < vp.Width; x++ {
			if grid.Cell(x, y).mask != 0 {
				continue
			}
			d := vp.RadialDistance(x, y)
			if d <= atmosphereInner || d >= atmosphereOuter {
				continue
			}
			glow := 1 - math.Abs(d-1)/(atmosphereOuter-1)
			if glow <= 0 {
				continue
			}
			mask := uint8(0x02)
			if glow >= 0.5 {
				mask = 0x80
			}
			grid.PlotMask(x, y, mask, CategoryAtmosphere, atmosphereColor)
		}
	}
}
