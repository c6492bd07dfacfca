package gridgen

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteSVG_PanelStructure(t *testing.T) {
	p := testProcessor()
	p.Layout = HalfLayout

	doc, err := p.AssemblePage()
	assert.NoError(t, err)

	var buf bytes.Buffer
	assert.NoError(t, WriteSVG(doc, &buf))
	out := buf.String()

	// Each panel contributes a clip definition and a clipped, translated group.
	assert.True(t, strings.Contains(out, `id="clip-0"`))
	assert.True(t, strings.Contains(out, `id="clip-1"`))
	assert.True(t, strings.Contains(out, `clip-path="url(#clip-0)"`))
	assert.True(t, strings.Contains(out, `clip-path="url(#clip-1)"`))
	assert.True(t, strings.Contains(out, "translate("))
	assert.True(t, strings.Contains(out, "stroke-dasharray"))
}

func TestWriteSVG_PathData(t *testing.T) {
	doc := &Document{Width: 100, Height: 100}
	doc.Elements = append(doc.Elements, Path{
		Cmds: []PathCmd{
			{Op: MoveTo, X: 10, Y: 10},
			{Op: LineTo, X: 20, Y: 10},
			{Op: ClosePath},
		},
		Stroke:      testColor,
		StrokeWidth: 1,
		Fill:        "none",
	})

	var buf bytes.Buffer
	assert.NoError(t, WriteSVG(doc, &buf))

	out := buf.String()
	assert.True(t, strings.Contains(out, "M10.000 10.000 L20.000 10.000 Z"))
	assert.True(t, strings.Contains(out, `fill="none"`))
}

func TestWriteSVG_SurfacesWriterErrors(t *testing.T) {
	doc := &Document{Width: 100, Height: 100}
	doc.Elements = append(doc.Elements, Rect{W: 100, H: 100, Fill: "white"})

	err := WriteSVG(doc, failingWriter{})
	assert.Error(t, err)
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("sink closed")
}
