package globe

import "math"

// cellAspect is the assumed height/width ratio of a terminal character
// cell. The vertical projection scale divides by it so the globe stays
// round on screen.
const cellAspect = 2.0

// Viewport maps rotated unit-sphere points onto a character grid using
// an orthographic projection.
type Viewport struct {
	Width  int
	Height int
	Radius float64 // globe radius in character-width units
}

// NewViewport sizes the globe to fit a width x height character grid.
func NewViewport(width, height int) Viewport {
	r := math.Min(float64(width)/2.5, float64(height)*cellAspect/2.5)
	if r < 1 {
		r = 1
	}
	return Viewport{Width: width, Height: height, Radius: r}
}

// Project maps a rotated point to fractional character coordinates.
// Points on the back hemisphere (y <= 0) are culled; the boundary is
// exclusive, a point rotated exactly onto the silhouette plane is not
// drawn. The returned coordinates may fall outside the grid; the
// compositor discards those.
func (vp Viewport) Project(p Vec3) (u, v float64, ok bool) {
	if p.Y <= 0 {
		return 0, 0, false
	}
	u = float64(vp.Width)/2 + p.X*vp.Radius
	v = float64(vp.Height)/2 - p.Z*vp.Radius/cellAspect
	return u, v, true
}

// RadialDistance returns the screen-space distance of a cell center
// from the globe center, in units of the globe radius. Distances just
// above 1 lie outside the silhouette, where the atmosphere ring lives.
func (vp Viewport) RadialDistance(x, y int) float64 {
	dx := float64(x) + 0.5 - float64(vp.Width)/2
	dy := (float64(y) + 0.5 - float64(vp.Height)/2) * cellAspect
	return math.Hypot(dx, dy) / vp.Radius
}
