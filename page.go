package gridgen

import "fmt"

// Orientation selects which way round the fixed physical page size is used.
type Orientation int

const (
	Portrait Orientation = iota
	Landscape
)

// ParseOrientation maps a CLI orientation name to its Orientation.
func ParseOrientation(s string) (Orientation, error) {
	switch s {
	case "portrait":
		return Portrait, nil
	case "landscape":
		return Landscape, nil
	}
	return 0, fmt.Errorf("unsupported orientation: %q (expected portrait or landscape)", s)
}

// Layout selects how the page is subdivided into panels.
type Layout int

const (
	// FullLayout is a single panel covering the whole page.
	FullLayout Layout = iota
	// HalfLayout splits the page into two side by side panels with a
	// vertical fold line between them.
	HalfLayout
	// QuarterLayout splits the page into four panels in a 2x2 arrangement.
	QuarterLayout
)

// ParseLayout maps a CLI layout name to its Layout.
func ParseLayout(s string) (Layout, error) {
	switch s {
	case "full":
		return FullLayout, nil
	case "half":
		return HalfLayout, nil
	case "quarter":
		return QuarterLayout, nil
	}
	return 0, fmt.Errorf("unsupported layout: %q (expected full, half or quarter)", s)
}

// Fold line styling shared by all layouts.
const (
	foldColor   = "#999999"
	foldWidthMM = 0.2
	foldDashMM  = 2.0
)

// frames returns the panel descriptors of the layout for a page of
// pageWMM x pageHMM millimeters, in layout order.
func (l Layout) frames(pageWMM, pageHMM float64) []PanelFrame {
	switch l {
	case HalfLayout:
		halfW := pageWMM / 2
		return []PanelFrame{
			{WidthMM: halfW, HeightMM: pageHMM, OffsetX: 0, OffsetY: 0},
			{WidthMM: halfW, HeightMM: pageHMM, OffsetX: ToUnits(halfW), OffsetY: 0},
		}
	case QuarterLayout:
		halfW, halfH := pageWMM/2, pageHMM/2
		frames := make([]PanelFrame, 0, 4)
		for _, q := range [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
			frames = append(frames, PanelFrame{
				WidthMM:  halfW,
				HeightMM: halfH,
				OffsetX:  ToUnits(halfW) * float64(q[0]),
				OffsetY:  ToUnits(halfH) * float64(q[1]),
			})
		}
		return frames
	default:
		return []PanelFrame{{WidthMM: pageWMM, HeightMM: pageHMM}}
	}
}

// foldLines returns the dashed markers drawn between panels. The quarter
// layout marks are a policy choice: booklet style sheets want them, flat
// sheets for cutting do not, so they stay behind the quarterFolds switch.
// pageW and pageH are in document units.
func (l Layout) foldLines(pageW, pageH float64, quarterFolds bool) []Element {
	dash := fmt.Sprintf("%.3f,%.3f", ToUnits(foldDashMM), ToUnits(foldDashMM))
	vertical := Line{
		X1: pageW / 2, Y1: 0, X2: pageW / 2, Y2: pageH,
		Stroke:      foldColor,
		StrokeWidth: ToUnits(foldWidthMM),
		Dash:        dash,
	}

	switch l {
	case HalfLayout:
		return []Element{vertical}
	case QuarterLayout:
		if !quarterFolds {
			return nil
		}
		horizontal := Line{
			X1: 0, Y1: pageH / 2, X2: pageW, Y2: pageH / 2,
			Stroke:      foldColor,
			StrokeWidth: ToUnits(foldWidthMM),
			Dash:        dash,
		}
		return []Element{vertical, horizontal}
	}
	return nil
}
