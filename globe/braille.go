package globe

import "math"

// Braille patterns give every glyph cell 8 addressable dots in a 2x4
// layout. The code point is the base plus the dot mask:
//
//	bit 0x01 0x08
//	    0x02 0x10
//	    0x04 0x20
//	    0x40 0x80
const brailleBase = 0x2800

var dotBits = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// GlyphCell accumulates dots and a display color for one character
// position. Dot bits are OR-only within a frame; the color is resolved
// by category priority, later writes winning ties.
type GlyphCell struct {
	mask  uint8
	cat   Category
	color Color
}

// Rune returns the braille code point for the accumulated dots, or a
// space when no dot is lit.
func (c *GlyphCell) Rune() rune {
	if c.mask == 0 {
		return ' '
	}
	return rune(brailleBase + int(c.mask))
}

// DotGrid is the frame's dot-matrix canvas: width x height glyph cells,
// each holding 2x4 sub-positions. Zeroed at frame start, accumulated
// during compositing, then read out once.
type DotGrid struct {
	width  int
	height int
	cells  []GlyphCell
}

func NewDotGrid(width, height int) *DotGrid {
	return &DotGrid{
		width:  width,
		height: height,
		cells:  make([]GlyphCell, width*height),
	}
}

// Plot lights the dot under a fractional screen coordinate. Samples
// outside the grid are discarded.
func (g *DotGrid) Plot(u, v float64, cat Category, color Color) {
	cx := int(math.Floor(u))
	cy := int(math.Floor(v))
	if cx < 0 || cx >= g.width || cy < 0 || cy >= g.height {
		return
	}
	g.merge(cx, cy, dotBit(u-float64(cx), v-float64(cy)), cat, color)
}

// PlotMask lights an explicit dot pattern in one cell. Used for the
// atmosphere ring, which is addressed per cell rather than per sample.
func (g *DotGrid) PlotMask(cx, cy int, mask uint8, cat Category, color Color) {
	if cx < 0 || cx >= g.width || cy < 0 || cy >= g.height {
		return
	}
	g.merge(cx, cy, mask, cat, color)
}

func (g *DotGrid) merge(cx, cy int, mask uint8, cat Category, color Color) {
	cell := &g.cells[cy*g.width+cx]
	cell.mask |= mask
	if cat >= cell.cat {
		cell.cat = cat
		cell.color = color
	}
}

// Cell returns the accumulated cell at a grid position.
func (g *DotGrid) Cell(cx, cy int) *GlyphCell {
	return &g.cells[cy*g.width+cx]
}

// dotBit quantizes a fractional in-cell position to one of the 8 dots:
// 2 buckets across, 4 down.
func dotBit(fu, fv float64) uint8 {
	col := 0
	if fu >= 0.5 {
		col = 1
	}
	row := int(fv * 4)
	if row > 3 {
		row = 3
	} else if row < 0 {
		row = 0
	}
	return dotBits[row][col]
}
