package gridgen

// PanelFrame describes the place of one panel on the page: its physical size
// in millimeters and its page offset in document user units.
type PanelFrame struct {
	WidthMM, HeightMM float64
	OffsetX, OffsetY  float64
}

// ComposePanel generates the pattern for a single panel and wraps it into a
// positioned, clipped group. The drawable area is the panel shrunk by the
// margin on every side; the generator runs on that inner area, the clip
// rectangle matches it exactly and the whole group is translated to the
// panel's page offset plus margin. The clip, not the generator, guarantees
// that nothing paints outside the margin-inset rectangle.
//
// spacing and strokeWidth arrive already converted to document units;
// marginMM is physical.
func ComposePanel(gen Generator, frame PanelFrame, marginMM, spacing, strokeWidth float64, color, clipID string) PanelGroup {
	innerW := ToUnits(frame.WidthMM - 2*marginMM)
	innerH := ToUnits(frame.HeightMM - 2*marginMM)
	margin := ToUnits(marginMM)

	return PanelGroup{
		Tx:       frame.OffsetX + margin,
		Ty:       frame.OffsetY + margin,
		ClipID:   clipID,
		ClipW:    innerW,
		ClipH:    innerH,
		Elements: gen.Generate(innerW, innerH, spacing, strokeWidth, color),
	}
}
