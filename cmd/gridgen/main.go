package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gioui.org/app"
	gridgen "github.com/Icodextrin/grid-gen"
	"github.com/Icodextrin/grid-gen/utils"
)

const helpBanner = `
┌─┐┬─┐┬┌┬┐┌─┐┌─┐┌┐┌
│ ┬├┬┘│ │││ ┬├┤ │││
└─┘┴└─┴─┴┘└─┘└─┘┘└┘

Printable pattern paper generator.
    Version: %s

`

// pipeName is the file name that indicates stdout is being used.
const pipeName = "-"

// Version indicates the current build version.
var Version string

var (
	// Flags
	patternType = flag.String("type", "grid", "Pattern type: grid, dots, hex, lined or iso")
	size        = flag.Float64("size", 5.0, "Pattern spacing in mm")
	lineWidth   = flag.Float64("line-width", 0.3, "Line width (dot diameter for the dots pattern) in mm")
	color       = flag.String("color", "#cccccc", "Pattern color as a CSS color")
	orientation = flag.String("orientation", "portrait", "Page orientation: portrait or landscape")
	layout      = flag.String("layout", "full", "Page layout: full, half (2 panels) or quarter (4 panels)")
	margin      = flag.Float64("margin", 10.0, "Margin around each panel in mm")
	folds       = flag.Bool("folds", false, "Draw fold marks between the quarter layout panels")
	gui         = flag.Bool("gui", false, "Show a preview window of the generated page")
	output      = flag.String("output", "output.svg", "Output file path; use the .pdf or .png extension for rasterized output")
)

func main() {
	log.SetFlags(0)

	flag.StringVar(output, "o", *output, "Output file path (shorthand)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, helpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	pattern, err := gridgen.ParsePattern(*patternType)
	if err != nil {
		log.Fatalf(utils.DecorateText(err.Error(), utils.ErrorMessage))
	}
	orient, err := gridgen.ParseOrientation(*orientation)
	if err != nil {
		log.Fatalf(utils.DecorateText(err.Error(), utils.ErrorMessage))
	}
	lay, err := gridgen.ParseLayout(*layout)
	if err != nil {
		log.Fatalf(utils.DecorateText(err.Error(), utils.ErrorMessage))
	}

	proc := &gridgen.Processor{
		Pattern:      pattern,
		Size:         *size,
		LineWidth:    *lineWidth,
		Color:        utils.NormalizeColor(*color),
		Orientation:  orient,
		Layout:       lay,
		Margin:       *margin,
		QuarterFolds: *folds,
		Preview:      *gui,
	}
	op := &gridgen.Ops{Dst: *output, PipeName: pipeName}

	if proc.Preview {
		// The Gio event loop has to own the main OS thread, so the
		// generation process moves to a separate goroutine.
		go func() {
			proc.Execute(op)
			os.Exit(0)
		}()
		app.Main()
	} else {
		proc.Execute(op)
	}
}
