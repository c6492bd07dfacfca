package gridgen

import (
	"fmt"
	"io"
	"strings"

	svg "github.com/ajstarks/svgo/float"
)

// svgDecimals fixes the coordinate precision of the serialized output, which
// keeps repeated runs with identical options byte for byte identical.
const svgDecimals = 3

// WriteSVG renders the document descriptor as an SVG document into w.
func WriteSVG(doc *Document, w io.Writer) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Decimals = svgDecimals

	canvas.Startview(doc.Width, doc.Height, 0, 0, doc.Width, doc.Height)
	for _, el := range doc.Elements {
		writeElement(canvas, el)
	}
	canvas.End()

	if ew.err != nil {
		return fmt.Errorf("unable to serialize the document: %w", ew.err)
	}
	return nil
}

func writeElement(canvas *svg.SVG, el Element) {
	switch e := el.(type) {
	case Rect:
		canvas.Rect(e.X, e.Y, e.W, e.H, fmt.Sprintf(`fill="%s"`, e.Fill))
	case Line:
		canvas.Line(e.X1, e.Y1, e.X2, e.Y2, strokeAttrs(e.Stroke, e.StrokeWidth, e.Dash)...)
	case Circle:
		canvas.Circle(e.Cx, e.Cy, e.R, fmt.Sprintf(`fill="%s"`, e.Fill))
	case Path:
		attrs := strokeAttrs(e.Stroke, e.StrokeWidth, "")
		attrs = append(attrs, fmt.Sprintf(`fill="%s"`, e.Fill))
		canvas.Path(pathData(e.Cmds), attrs...)
	case PanelGroup:
		canvas.Def()
		canvas.ClipPath(fmt.Sprintf(`id="%s"`, e.ClipID))
		canvas.Rect(0, 0, e.ClipW, e.ClipH)
		canvas.ClipEnd()
		canvas.DefEnd()

		canvas.Translate(e.Tx, e.Ty)
		canvas.Group(fmt.Sprintf(`clip-path="url(#%s)"`, e.ClipID))
		for _, child := range e.Elements {
			writeElement(canvas, child)
		}
		canvas.Gend()
		canvas.Gend()
	}
}

func strokeAttrs(color string, width float64, dash string) []string {
	attrs := []string{
		fmt.Sprintf(`stroke="%s"`, color),
		fmt.Sprintf(`stroke-width="%.*f"`, svgDecimals, width),
	}
	if dash != "" {
		attrs = append(attrs, fmt.Sprintf(`stroke-dasharray="%s"`, dash))
	}
	return attrs
}

func pathData(cmds []PathCmd) string {
	var b strings.Builder
	for i, c := range cmds {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch c.Op {
		case MoveTo:
			fmt.Fprintf(&b, "M%.*f %.*f", svgDecimals, c.X, svgDecimals, c.Y)
		case LineTo:
			fmt.Fprintf(&b, "L%.*f %.*f", svgDecimals, c.X, svgDecimals, c.Y)
		case ClosePath:
			b.WriteByte('Z')
		}
	}
	return b.String()
}

// errWriter retains the first write error so that a failing sink surfaces as
// a single error after serialization instead of being silently dropped.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return len(p), nil
	}
	n, err := ew.w.Write(p)
	if err != nil {
		ew.err = err
	}
	return n, err
}
