package gridgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testProcessor() *Processor {
	return &Processor{
		Pattern:   PatternGrid,
		Size:      5,
		LineWidth: 0.3,
		Color:     testColor,
		Margin:    10,
	}
}

func TestAssemblePage_FullPortrait(t *testing.T) {
	doc, err := testProcessor().AssemblePage()
	assert.NoError(t, err)

	assert.InDelta(t, 612.0, doc.Width, 1e-9)
	assert.InDelta(t, 792.0, doc.Height, 1e-9)

	// Background first, a single clipped panel group next, no fold lines.
	assert.Len(t, doc.Elements, 2)

	bg, ok := doc.Elements[0].(Rect)
	if !ok {
		t.Fatalf("First element expected to be the background rectangle. Got %T", doc.Elements[0])
	}
	assert.Equal(t, "white", bg.Fill)
	assert.Equal(t, doc.Width, bg.W)
	assert.Equal(t, doc.Height, bg.H)

	group, ok := doc.Elements[1].(PanelGroup)
	if !ok {
		t.Fatalf("Second element expected to be a panel group. Got %T", doc.Elements[1])
	}
	assert.Equal(t, "clip-0", group.ClipID)
	assert.InDelta(t, ToUnits(10), group.Tx, 1e-9)
}

func TestAssemblePage_LandscapeSwapsDimensions(t *testing.T) {
	p := testProcessor()
	p.Orientation = Landscape

	doc, err := p.AssemblePage()
	assert.NoError(t, err)
	assert.InDelta(t, 792.0, doc.Width, 1e-9)
	assert.InDelta(t, 612.0, doc.Height, 1e-9)
}

func TestAssemblePage_HalfLayoutFoldLine(t *testing.T) {
	p := testProcessor()
	p.Layout = HalfLayout

	doc, err := p.AssemblePage()
	assert.NoError(t, err)

	// Background, two panels, one fold line.
	assert.Len(t, doc.Elements, 4)

	first := doc.Elements[1].(PanelGroup)
	second := doc.Elements[2].(PanelGroup)
	assert.Equal(t, "clip-0", first.ClipID)
	assert.Equal(t, "clip-1", second.ClipID)
	assert.InDelta(t, ToUnits(PageWidthMM/2)+ToUnits(10), second.Tx, 1e-9)

	fold, ok := doc.Elements[3].(Line)
	if !ok {
		t.Fatalf("Last element expected to be the fold line. Got %T", doc.Elements[3])
	}
	assert.NotEmpty(t, fold.Dash)
	assert.InDelta(t, doc.Width/2, fold.X1, 1e-9)
	assert.InDelta(t, doc.Width/2, fold.X2, 1e-9)
	assert.Equal(t, 0.0, fold.Y1)
	assert.InDelta(t, doc.Height, fold.Y2, 1e-9)
}

func TestAssemblePage_QuarterLayout(t *testing.T) {
	p := testProcessor()
	p.Layout = QuarterLayout

	doc, err := p.AssemblePage()
	assert.NoError(t, err)

	// Fold marks are suppressed by default: background plus four panels.
	assert.Len(t, doc.Elements, 5)

	halfW, halfH := ToUnits(PageWidthMM/2), ToUnits(PageHeightMM/2)
	margin := ToUnits(10.0)
	wantOffsets := [][2]float64{
		{margin, margin},
		{halfW + margin, margin},
		{margin, halfH + margin},
		{halfW + margin, halfH + margin},
	}
	for i, want := range wantOffsets {
		group := doc.Elements[i+1].(PanelGroup)
		assert.InDelta(t, want[0], group.Tx, 1e-9)
		assert.InDelta(t, want[1], group.Ty, 1e-9)
	}
}

func TestAssemblePage_QuarterFoldsEnabled(t *testing.T) {
	p := testProcessor()
	p.Layout = QuarterLayout
	p.QuarterFolds = true

	doc, err := p.AssemblePage()
	assert.NoError(t, err)

	// Background, four panels, a vertical and a horizontal fold line.
	assert.Len(t, doc.Elements, 7)

	vertical := doc.Elements[5].(Line)
	horizontal := doc.Elements[6].(Line)
	assert.Equal(t, vertical.X1, vertical.X2)
	assert.Equal(t, horizontal.Y1, horizontal.Y2)
}

func TestAssemblePage_DistinctClipIDs(t *testing.T) {
	p := testProcessor()
	p.Layout = QuarterLayout

	doc, err := p.AssemblePage()
	assert.NoError(t, err)

	seen := map[string]bool{}
	for _, el := range doc.Elements {
		if group, ok := el.(PanelGroup); ok {
			assert.False(t, seen[group.ClipID], "clip id %s reused", group.ClipID)
			seen[group.ClipID] = true
		}
	}
	assert.Len(t, seen, 4)
}
