package globe

import (
	"math"
	"math/bits"
	"sort"
)

// GeoPoint is a position on the globe in degrees, latitude first.
type GeoPoint struct {
	Lat float64
	Lon float64
}

// Boundary is a named closed polygon outline. The last vertex connects
// back to the first; it does not need to be repeated.
type Boundary struct {
	Name    string
	Outline []GeoPoint
}

// Land classification resolution: 1 degree cells.
const (
	latCells = 180
	lonCells = 360
)

// LandLookup answers point-in-land queries against a 1-degree cell grid
// built once from boundary polygons. It is immutable after
// BuildLandLookup returns and safe to share across render calls.
type LandLookup struct {
	bits []uint64
}

// BuildLandLookup rasterizes the boundary polygons into the cell grid
// with an even-odd scanline fill. Boundaries with fewer than three
// vertices are skipped; they cannot enclose anything.
func BuildLandLookup(boundaries []Boundary) *LandLookup {
	l := &LandLookup{bits: make([]uint64, (latCells*lonCells+63)/64)}
	for row := 0; row < latCells; row++ {
		scanLat := float64(row) - 90 + 0.5
		for _, b := range boundaries {
			if len(b.Outline) < 3 {
				continue
			}
			crossings := scanlineCrossings(b.Outline, scanLat)
			sort.Float64s(crossings)
			for i := 0; i+1 < len(crossings); i += 2 {
				l.markSpan(row, crossings[i], crossings[i+1])
			}
		}
	}
	return l
}

// scanlineCrossings collects the longitudes where polygon edges cross a
// latitude scanline. An edge crosses only when the scanline lies
// strictly between its endpoint latitudes, so horizontal edges and
// vertices touching the line contribute nothing.
func scanlineCrossings(outline []GeoPoint, lat float64) []float64 {
	var xs []float64
	n := len(outline)
	for i := 0; i < n; i++ {
		a := outline[i]
		b := outline[(i+1)%n]
		lo, hi := a.Lat, b.Lat
		if lo > hi {
			lo, hi = hi, lo
		}
		if lat <= lo || lat >= hi {
			continue
		}
		t := (lat - a.Lat) / (b.Lat - a.Lat)
		xs = append(xs, a.Lon+t*(b.Lon-a.Lon))
	}
	return xs
}

// markSpan sets every cell on a scanline row whose center longitude
// falls between a pair of crossings.
func (l *LandLookup) markSpan(row int, lo, hi float64) {
	for col := 0; col < lonCells; col++ {
		center := float64(col) - 180 + 0.5
		if center > lo && center < hi {
			idx := row*lonCells + col
			l.bits[idx/64] |= 1 << (idx % 64)
		}
	}
}

// Query reports whether the cell containing (lat, lon) was marked as
// land. Coordinates are snapped to their cell by flooring; values
// outside the valid range clamp to the nearest edge cell.
func (l *LandLookup) Query(lat, lon float64) bool {
	row := int(math.Floor(lat)) + 90
	col := int(math.Floor(lon)) + 180
	if row < 0 {
		row = 0
	} else if row >= latCells {
		row = latCells - 1
	}
	if col < 0 {
		col = 0
	} else if col >= lonCells {
		col = lonCells - 1
	}
	idx := row*lonCells + col
	return l.bits[idx/64]&(1<<(idx%64)) != 0
}

// CellCount returns the number of cells classified as land.
func (l *LandLookup) CellCount() int {
	n := 0
	for _, w := range l.bits {
		n += bits.OnesCount64(w)
	}
	return n
}
