package gridgen

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// pdfRasterizers lists the external SVG to PDF converters probed on PATH, in
// preference order, together with the arguments converting src to dst.
var pdfRasterizers = []struct {
	name string
	args func(src, dst string) []string
}{
	{"rsvg-convert", func(src, dst string) []string {
		return []string{"-f", "pdf", "-o", dst, src}
	}},
	{"cairosvg", func(src, dst string) []string {
		return []string{src, "-o", dst}
	}},
	{"inkscape", func(src, dst string) []string {
		return []string{src, "--export-type=pdf", "--export-filename=" + dst}
	}},
}

// Rasterizer converts a serialized SVG document to PDF by invoking an
// external tool. It is only ever constructed when PDF output is requested;
// the pure document generation path never touches it.
type Rasterizer struct {
	path string
	args func(src, dst string) []string
}

// DiscoverRasterizer probes PATH for a supported SVG rasterizer.
func DiscoverRasterizer() (*Rasterizer, error) {
	probed := make([]string, 0, len(pdfRasterizers))
	for _, r := range pdfRasterizers {
		if path, err := exec.LookPath(r.name); err == nil {
			return &Rasterizer{path: path, args: r.args}, nil
		}
		probed = append(probed, r.name)
	}
	return nil, fmt.Errorf("PDF output requires an SVG rasterizer, but none was found on PATH (probed: %s)",
		strings.Join(probed, ", "))
}

// Name returns the base name of the discovered rasterizer binary.
func (r *Rasterizer) Name() string {
	return filepath.Base(r.path)
}

// ToPDF writes the SVG bytes to a temporary file and converts it to dst.
// A failed conversion never leaves a partial output file behind.
func (r *Rasterizer) ToPDF(svgData []byte, dst string) error {
	tmp, err := os.CreateTemp("", "gridgen-*.svg")
	if err != nil {
		return fmt.Errorf("unable to create a temporary svg file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(svgData); err != nil {
		tmp.Close()
		return fmt.Errorf("unable to write the temporary svg file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("unable to close the temporary svg file: %w", err)
	}

	out, err := exec.Command(r.path, r.args(tmp.Name(), dst)...).CombinedOutput()
	if err != nil {
		os.Remove(dst)
		return fmt.Errorf("%s failed: %v: %s", r.Name(), err, bytes.TrimSpace(out))
	}
	return nil
}
