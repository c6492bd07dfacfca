package gridgen

import "math"

// HexGenerator draws a flat-top hexagon tessellation where the spacing
// parameter is the hexagon side length. Odd columns are shifted down by half
// a row so the hexagons interlock seamlessly. All hexagon outlines are
// emitted as a single stroked path with no fill.
type HexGenerator struct{}

func (HexGenerator) Generate(width, height, spacing, strokeWidth float64, color string) []Element {
	side := spacing
	hexW := side * 2
	hexH := side * math.Sqrt(3)
	colStep := hexW * 0.75
	rowStep := hexH

	var cmds []PathCmd
	col := 0
	for cx := 0.0; cx-side <= width; cx += colStep {
		rowOffset := 0.0
		if col%2 == 1 {
			rowOffset = hexH / 2
		}
		for cy := rowOffset; cy-hexH/2 <= height; cy += rowStep {
			// The six vertices of a flat-top hexagon, at 60 degree steps
			// starting on the positive x axis.
			for i := 0; i < 6; i++ {
				angle := math.Pi / 3 * float64(i)
				px := cx + side*math.Cos(angle)
				py := cy + side*math.Sin(angle)
				op := LineTo
				if i == 0 {
					op = MoveTo
				}
				cmds = append(cmds, PathCmd{Op: op, X: px, Y: py})
			}
			cmds = append(cmds, PathCmd{Op: ClosePath})
		}
		col++
	}

	return []Element{Path{
		Cmds:        cmds,
		Stroke:      color,
		StrokeWidth: strokeWidth,
		Fill:        "none",
	}}
}
