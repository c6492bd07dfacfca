package gridgen

import "math"

// IsoGenerator draws an isometric grid out of three families of parallel
// lines at 0, +60 and -60 degrees. The spacing parameter is the distance
// between two adjacent lines of a family, measured perpendicular to the
// line direction.
type IsoGenerator struct{}

func (IsoGenerator) Generate(width, height, spacing, strokeWidth float64, color string) []Element {
	var elems []Element

	for y := 0.0; y <= height+boundaryEps; y += spacing {
		elems = append(elems, Line{
			X1: 0, Y1: y, X2: width, Y2: y,
			Stroke:      color,
			StrokeWidth: strokeWidth,
		})
	}

	// A diagonal line spans the full area height, so its horizontal run is
	// height/tan(60). Stepping the x intercept by spacing/sin(60) keeps the
	// perpendicular distance between neighbours at exactly one spacing.
	dx := spacing / math.Sin(math.Pi/3)
	run := height / math.Tan(math.Pi/3)

	// Rising lines, bottom-left to upper-right.
	for x := -run; x <= width; x += dx {
		elems = append(elems, Line{
			X1: x, Y1: height, X2: x + run, Y2: 0,
			Stroke:      color,
			StrokeWidth: strokeWidth,
		})
	}

	// Falling lines, upper-left to bottom-right.
	for x := -run; x <= width; x += dx {
		elems = append(elems, Line{
			X1: x, Y1: 0, X2: x + run, Y2: height,
			Stroke:      color,
			StrokeWidth: strokeWidth,
		})
	}

	return elems
}
