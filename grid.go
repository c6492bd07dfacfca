package gridgen

// GridGenerator draws a square grid: edge aligned vertical and horizontal
// lines spaced by the spacing parameter.
type GridGenerator struct{}

func (GridGenerator) Generate(width, height, spacing, strokeWidth float64, color string) []Element {
	var elems []Element

	for x := 0.0; x <= width+boundaryEps; x += spacing {
		elems = append(elems, Line{
			X1: x, Y1: 0, X2: x, Y2: height,
			Stroke:      color,
			StrokeWidth: strokeWidth,
		})
	}

	for y := 0.0; y <= height+boundaryEps; y += spacing {
		elems = append(elems, Line{
			X1: 0, Y1: y, X2: width, Y2: y,
			Stroke:      color,
			StrokeWidth: strokeWidth,
		})
	}

	return elems
}

// DotsGenerator draws a dot grid with a filled circle at every grid
// intersection. The strokeWidth parameter denotes the dot diameter here,
// not a line thickness.
type DotsGenerator struct{}

func (DotsGenerator) Generate(width, height, spacing, strokeWidth float64, color string) []Element {
	var elems []Element
	r := strokeWidth / 2

	for x := 0.0; x <= width+boundaryEps; x += spacing {
		for y := 0.0; y <= height+boundaryEps; y += spacing {
			elems = append(elems, Circle{Cx: x, Cy: y, R: r, Fill: color})
		}
	}

	return elems
}

// LinedGenerator draws horizontal ruled writing lines. The first line sits
// one full spacing below the top edge, leaving the top margin line blank.
type LinedGenerator struct{}

func (LinedGenerator) Generate(width, height, spacing, strokeWidth float64, color string) []Element {
	var elems []Element

	for y := spacing; y <= height+boundaryEps; y += spacing {
		elems = append(elems, Line{
			X1: 0, Y1: y, X2: width, Y2: y,
			Stroke:      color,
			StrokeWidth: strokeWidth,
		})
	}

	return elems
}
