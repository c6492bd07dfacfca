package gridgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposePanel_ClipMatchesInnerArea(t *testing.T) {
	// A "half" layout panel: 139.7x279.4mm with a 10mm margin.
	frame := PanelFrame{WidthMM: 139.7, HeightMM: 279.4}
	spacing, strokeWidth := ToUnits(5), ToUnits(0.3)

	group := ComposePanel(GridGenerator{}, frame, 10, spacing, strokeWidth, testColor, "clip-0")

	innerW := ToUnits(139.7 - 20)
	innerH := ToUnits(279.4 - 20)
	assert.InDelta(t, innerW, group.ClipW, 1e-9)
	assert.InDelta(t, innerH, group.ClipH, 1e-9)
	assert.InDelta(t, ToUnits(10), group.Tx, 1e-9)
	assert.InDelta(t, ToUnits(10), group.Ty, 1e-9)
	assert.Equal(t, "clip-0", group.ClipID)
}

func TestComposePanel_PatternStaysInsideClip(t *testing.T) {
	frame := PanelFrame{WidthMM: 139.7, HeightMM: 279.4, OffsetX: ToUnits(139.7)}
	spacing, strokeWidth := ToUnits(5), ToUnits(0.3)

	group := ComposePanel(GridGenerator{}, frame, 10, spacing, strokeWidth, testColor, "clip-1")
	assert.InDelta(t, frame.OffsetX+ToUnits(10), group.Tx, 1e-9)

	// The grid generator never overshoots by more than the boundary
	// tolerance, so every emitted coordinate sits inside the clip rectangle.
	for _, el := range group.Elements {
		line := el.(Line)
		for _, x := range []float64{line.X1, line.X2} {
			assert.GreaterOrEqual(t, x, -boundaryEps)
			assert.LessOrEqual(t, x, group.ClipW+boundaryEps)
		}
		for _, y := range []float64{line.Y1, line.Y2} {
			assert.GreaterOrEqual(t, y, -boundaryEps)
			assert.LessOrEqual(t, y, group.ClipH+boundaryEps)
		}
	}
}

func TestComposePanel_GeneratorReceivesShrunkArea(t *testing.T) {
	frame := PanelFrame{WidthMM: 100, HeightMM: 100}
	rec := &recordingGenerator{}

	ComposePanel(rec, frame, 10, ToUnits(5), ToUnits(0.3), testColor, "clip-0")

	assert.InDelta(t, ToUnits(80), rec.width, 1e-9)
	assert.InDelta(t, ToUnits(80), rec.height, 1e-9)
}

// recordingGenerator captures the area it was asked to tile.
type recordingGenerator struct {
	width, height float64
}

func (r *recordingGenerator) Generate(width, height, spacing, strokeWidth float64, color string) []Element {
	r.width, r.height = width, height
	return nil
}
