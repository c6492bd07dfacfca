package gridgen

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/Icodextrin/grid-gen/utils"
	"golang.org/x/term"
)

// Ops bundles the output destination of a single run.
type Ops struct {
	Dst      string
	PipeName string
}

// Execute runs the document generation process and routes the result to the
// output backend selected by the destination file extension: `.pdf` goes
// through an external rasterizer, `.png` through the in-process raster
// renderer, everything else receives the serialized SVG verbatim.
func (p *Processor) Execute(op *Ops) {
	now := time.Now()
	err := p.run(op)
	p.printOpStatus(op, err)

	fmt.Fprintf(os.Stderr, "\nExecution time: %s\n",
		utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))
}

// run generates and serializes the document, then writes it out.
func (p *Processor) run(op *Ops) error {
	if err := p.Validate(); err != nil {
		return err
	}

	doc, err := p.AssemblePage()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := WriteSVG(doc, &buf); err != nil {
		return err
	}

	if p.Preview {
		if err := p.ShowPreview(doc, buf.Bytes()); err != nil {
			return err
		}
	}

	// Check if the destination is a pipe name or a regular file.
	if op.Dst == op.PipeName {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New("`-` should be used with a pipe for stdout")
		}
		_, err := os.Stdout.Write(buf.Bytes())
		return err
	}

	// Capture CTRL-C and restore the cursor visibility.
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signalChan
		if p.Spinner != nil {
			p.Spinner.RestoreCursor()
		}
		os.Remove(op.Dst)
		os.Exit(1)
	}()

	switch strings.ToLower(filepath.Ext(op.Dst)) {
	case ".pdf":
		return p.writePDF(op.Dst, buf.Bytes())
	case ".png":
		return p.writePNG(op.Dst, doc, buf.Bytes())
	default:
		return writeFile(op.Dst, buf.Bytes())
	}
}

// writePDF hands the serialized document to the discovered external
// rasterizer. Discovery runs here, never on the generation path.
func (p *Processor) writePDF(dst string, svgData []byte) error {
	r, err := DiscoverRasterizer()
	if err != nil {
		return err
	}

	// The spinner only accompanies the rasterization step; the pure vector
	// paths finish too quickly to need a progress indicator.
	p.Spinner = utils.NewSpinner(fmt.Sprintf("%s %s",
		utils.DecorateText("▦ GRIDGEN", utils.StatusMessage),
		utils.DecorateText("⇢ rasterizing the generated page...", utils.DefaultMessage),
	), time.Millisecond*80)
	p.Spinner.Start()
	err = r.ToPDF(svgData, dst)
	if err != nil {
		p.Spinner.StopMsg = fmt.Sprintf("%s %s %s",
			utils.DecorateText("▦ GRIDGEN", utils.StatusMessage),
			utils.DecorateText("rasterizing the page failed...", utils.DefaultMessage),
			utils.DecorateText("✘", utils.ErrorMessage),
		)
	} else {
		p.Spinner.StopMsg = fmt.Sprintf("%s %s %s",
			utils.DecorateText("▦ GRIDGEN", utils.StatusMessage),
			utils.DecorateText("⇢", utils.DefaultMessage),
			utils.DecorateText(fmt.Sprintf("the page has been rasterized with %s ✔", r.Name()), utils.SuccessMessage),
		)
	}
	p.Spinner.Stop()

	return err
}

// writePNG renders the document in-process and encodes it as PNG.
func (p *Processor) writePNG(dst string, doc *Document, svgData []byte) error {
	f, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("unable to create the destination file: %w", err)
	}
	if err := EncodePNG(doc, svgData, f); err != nil {
		f.Close()
		os.Remove(dst)
		return err
	}
	return f.Close()
}

// writeFile writes data to dst, removing the file again if the write fails
// so no partial document is left behind.
func writeFile(dst string, data []byte) error {
	f, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("unable to create the destination file: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(dst)
		return err
	}
	return f.Close()
}

// printOpStatus displays the relevant information about the generation process.
func (p *Processor) printOpStatus(op *Ops, err error) {
	if err != nil {
		log.Fatalf(
			utils.DecorateText("\nError generating the pattern page: %s", utils.ErrorMessage),
			utils.DecorateText(fmt.Sprintf("\n\tReason: %v\n", err.Error()), utils.DefaultMessage),
		)
	} else if op.Dst != op.PipeName {
		fmt.Fprintf(os.Stderr, "\nThe document has been saved as: %s %s\n",
			utils.DecorateText(filepath.Base(op.Dst), utils.SuccessMessage),
			utils.DefaultColor,
		)
	}
}
