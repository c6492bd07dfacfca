package gridgen

import (
	"fmt"
	"io"

	"github.com/Icodextrin/grid-gen/utils"
)

// Processor holds the options of one page generation run.
type Processor struct {
	// Pattern selects which of the five generators tiles the panels.
	Pattern PatternType
	// Size is the pattern spacing in millimeters.
	Size float64
	// LineWidth is the stroke width in millimeters. The dots pattern reads
	// it as the dot diameter.
	LineWidth float64
	// Color is the pattern color as a CSS color value.
	Color       string
	Orientation Orientation
	Layout      Layout
	// Margin is the inset around each panel in millimeters.
	Margin float64
	// QuarterFolds enables the fold marks between the quarter layout panels.
	QuarterFolds bool
	// Preview opens a window showing the rasterized page.
	Preview bool
	Spinner *utils.Spinner
}

// Validate rejects option combinations that would otherwise produce
// degenerate geometry or unbounded generator loops.
func (p *Processor) Validate() error {
	if p.Size <= 0 {
		return fmt.Errorf("pattern size must be positive, got %vmm", p.Size)
	}
	if p.LineWidth <= 0 {
		return fmt.Errorf("line width must be positive, got %vmm", p.LineWidth)
	}
	if p.Margin < 0 {
		return fmt.Errorf("margin must not be negative, got %vmm", p.Margin)
	}

	pageWMM, pageHMM := p.pageSize()
	for _, frame := range p.Layout.frames(pageWMM, pageHMM) {
		if 2*p.Margin >= frame.WidthMM || 2*p.Margin >= frame.HeightMM {
			return fmt.Errorf("a %vmm margin leaves no drawable area inside a %vx%vmm panel",
				p.Margin, frame.WidthMM, frame.HeightMM)
		}
	}
	return nil
}

// pageSize returns the physical page dimensions in millimeters,
// honoring the orientation.
func (p *Processor) pageSize() (w, h float64) {
	if p.Orientation == Landscape {
		return PageHeightMM, PageWidthMM
	}
	return PageWidthMM, PageHeightMM
}

// AssemblePage builds the complete document descriptor: an opaque page
// background, one composed panel per layout frame and the fold line markers,
// in that paint order. This is the single place where physical lengths are
// converted to document units before pattern generation.
func (p *Processor) AssemblePage() (*Document, error) {
	gen, err := NewGenerator(p.Pattern)
	if err != nil {
		return nil, err
	}

	pageWMM, pageHMM := p.pageSize()
	pageW, pageH := ToUnits(pageWMM), ToUnits(pageHMM)
	spacing := ToUnits(p.Size)
	strokeWidth := ToUnits(p.LineWidth)

	doc := &Document{Width: pageW, Height: pageH}
	doc.Elements = append(doc.Elements, Rect{W: pageW, H: pageH, Fill: "white"})

	for i, frame := range p.Layout.frames(pageWMM, pageHMM) {
		clipID := fmt.Sprintf("clip-%d", i)
		doc.Elements = append(doc.Elements,
			ComposePanel(gen, frame, p.Margin, spacing, strokeWidth, p.Color, clipID))
	}

	doc.Elements = append(doc.Elements, p.Layout.foldLines(pageW, pageH, p.QuarterFolds)...)
	return doc, nil
}

// Process validates the options, assembles the page and encodes it as an SVG
// document into w. We are using the io package, since the output can be a
// file, a pipe or an in-memory buffer, as long as it implements io.Writer.
func (p *Processor) Process(w io.Writer) error {
	if err := p.Validate(); err != nil {
		return err
	}

	doc, err := p.AssemblePage()
	if err != nil {
		return err
	}
	return WriteSVG(doc, w)
}
