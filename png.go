package gridgen

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"math"

	"github.com/Icodextrin/grid-gen/utils"
	"github.com/disintegration/imaging"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// rasterDPI is the resolution used for in-process PNG rendering.
const rasterDPI = 300

// RasterizeSVG renders serialized SVG bytes to an image of width x height pixels.
func RasterizeSVG(data []byte, width, height int) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("unable to parse the generated svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(width), float64(height))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(width, height, scanner), 1)

	return img, nil
}

// EncodePNG rasterizes the serialized document at rasterDPI and encodes the
// result as PNG into w.
func EncodePNG(doc *Document, svgData []byte, w io.Writer) error {
	width := utils.Max(1, int(math.Round(doc.Width/72*rasterDPI)))
	height := utils.Max(1, int(math.Round(doc.Height/72*rasterDPI)))

	img, err := RasterizeSVG(svgData, width, height)
	if err != nil {
		return err
	}
	return imaging.Encode(w, img, imaging.PNG)
}
