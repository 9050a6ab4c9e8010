package render

import (
	"bytes"
	"fmt"

	"github.com/palletlab/warevis/pkg/warehouse"
)

// Default rendering parameters. Scale converts layout centimeters to SVG
// user units.
const (
	DefaultScale   = 0.25
	DefaultPadding = 20.0

	blockStroke  = "#2F4F4F"
	blockFill    = "#F5F5F0"
	rackStroke   = "#708090"
	rackFill     = "#FFFFFF"
	labelColor   = "#2F4F4F"
	palletStroke = "#463020"
)

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	floor   int
	scale   float64
	padding float64
	labels  bool
}

// WithFloor selects which floor's rack cells to draw (1-based). Defaults to 1.
func WithFloor(n int) SVGOption { return func(r *svgRenderer) { r.floor = n } }

// WithScale overrides the centimeter-to-pixel scale factor.
func WithScale(s float64) SVGOption { return func(r *svgRenderer) { r.scale = s } }

// WithLabels draws block and rack identifiers into the plan.
func WithLabels() SVGOption { return func(r *svgRenderer) { r.labels = true } }

// RenderSVG renders a top-down floor plan of the layout.
// X in the layout (width axis, centered on the warehouse midline) maps to SVG
// x, Y (length axis, front wall at zero) maps to SVG y, so the front of the
// warehouse is at the top of the image.
func RenderSVG(l warehouse.Layout, opts ...SVGOption) []byte {
	r := svgRenderer{floor: 1, scale: DefaultScale, padding: DefaultPadding}
	for _, opt := range opts {
		opt(&r)
	}

	minX, maxX, maxY := bounds(l)
	width := (maxX-minX)*r.scale + 2*r.padding
	height := maxY*r.scale + 2*r.padding

	// Shift so the leftmost block edge lands at the padding offset.
	toX := func(x float64) float64 { return (x-minX)*r.scale + r.padding }
	toY := func(y float64) float64 { return y*r.scale + r.padding }

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		width, height, width, height)

	for _, b := range l.Blocks {
		renderBlock(&buf, &r, b, toX, toY)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderBlock(buf *bytes.Buffer, r *svgRenderer, b warehouse.Block, toX, toY func(float64) float64) {
	x := toX(b.Position.X - b.Dimensions.Width/2)
	y := toY(b.Position.Y - b.Dimensions.Length/2)
	w := b.Dimensions.Width * r.scale
	h := b.Dimensions.Length * r.scale

	fmt.Fprintf(buf, `  <g id=%q>`+"\n", b.ID)
	fmt.Fprintf(buf, `    <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill=%q stroke=%q stroke-width="2"/>`+"\n",
		x, y, w, h, blockFill, blockStroke)

	for _, cell := range b.Racks {
		if cell.Indices.Floor != r.floor {
			continue
		}
		renderCell(buf, r, cell, toX, toY)
	}

	if r.labels {
		fmt.Fprintf(buf, `    <text x="%.1f" y="%.1f" font-size="12" fill=%q text-anchor="middle">%s</text>`+"\n",
			toX(b.Position.X), y+14, labelColor, b.ID)
	}

	buf.WriteString("  </g>\n")
}

func renderCell(buf *bytes.Buffer, r *svgRenderer, cell warehouse.RackFloor, toX, toY func(float64) float64) {
	x := toX(cell.Position.X - cell.Dimensions.Width/2)
	y := toY(cell.Position.Y - cell.Dimensions.Length/2)
	w := cell.Dimensions.Width * r.scale
	h := cell.Dimensions.Length * r.scale

	fill := rackFill
	stroke := rackStroke
	if len(cell.Pallets) > 0 {
		// Occupied cells take the color of their first pallet.
		fill = cell.Pallets[0].Color
		stroke = palletStroke
	}

	fmt.Fprintf(buf, `    <rect id=%q x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill=%q stroke=%q stroke-width="1"/>`+"\n",
		cell.ID, x, y, w, h, fill, stroke)

	if r.labels {
		fmt.Fprintf(buf, `    <text x="%.1f" y="%.1f" font-size="8" fill=%q text-anchor="middle">%d-%d</text>`+"\n",
			toX(cell.Position.X), toY(cell.Position.Y), labelColor, cell.Indices.Row, cell.Indices.Col)
	}
}

// bounds computes the plan extent from block envelopes. An empty layout still
// yields a small non-degenerate canvas.
func bounds(l warehouse.Layout) (minX, maxX, maxY float64) {
	if len(l.Blocks) == 0 {
		return 0, 1, 1
	}
	first := true
	for _, b := range l.Blocks {
		lo := b.Position.X - b.Dimensions.Width/2
		hi := b.Position.X + b.Dimensions.Width/2
		back := b.Position.Y + b.Dimensions.Length/2
		if first {
			minX, maxX, maxY = lo, hi, back
			first = false
			continue
		}
		if lo < minX {
			minX = lo
		}
		if hi > maxX {
			maxX = hi
		}
		if back > maxY {
			maxY = back
		}
	}
	return minX, maxX, maxY
}
