package gridgen

import (
	"image"

	"gioui.org/app"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"github.com/Icodextrin/grid-gen/utils"
	"github.com/disintegration/imaging"
)

const (
	maxScreenX = 1366
	maxScreenY = 768
)

// previewScale oversamples the raster so the preview stays crisp after
// being fitted to the window.
const previewScale = 2

// previewSize returns the preview window dimensions: the page scaled to the
// screen bounds with its aspect ratio retained.
func previewSize(doc *Document) (int, int) {
	ratio := utils.Min(maxScreenX/doc.Width, maxScreenY/doc.Height)
	return int(doc.Width * ratio), int(doc.Height * ratio)
}

// ShowPreview spawns a new Gio GUI window displaying the rasterized page and
// blocks until the window is closed or ESC is pressed.
func (p *Processor) ShowPreview(doc *Document, svgData []byte) error {
	width, height := previewSize(doc)

	img, err := RasterizeSVG(svgData, width*previewScale, height*previewScale)
	if err != nil {
		return err
	}
	view := imaging.Fit(img, width, height, imaging.Lanczos)

	w := app.NewWindow(
		app.Title("gridgen preview"),
		app.Size(unit.Dp(float32(width)), unit.Dp(float32(height))),
	)
	return runWindow(w, view)
}

// runWindow drives the Gio event loop until a DestroyEvent or an ESC key event is captured.
func runWindow(w *app.Window, img image.Image) error {
	var ops op.Ops
	for {
		e := <-w.Events()
		switch e := e.(type) {
		case system.FrameEvent:
			gtx := layout.NewContext(&ops, e)

			src := paint.NewImageOp(img)
			src.Add(gtx.Ops)

			widget.Image{
				Src:   src,
				Scale: 1 / gtx.Metric.PxPerDp,
				Fit:   widget.Contain,
			}.Layout(gtx)

			e.Frame(gtx.Ops)
		case key.Event:
			if e.Name == key.NameEscape {
				w.Perform(system.ActionClose)
			}
		case system.DestroyEvent:
			return e.Err
		}
	}
}
