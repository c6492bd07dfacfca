package gridgen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExecute_PlainSVGPathSkipsSpinner(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "page.svg")

	p := testProcessor()
	p.Execute(&Ops{Dst: dst, PipeName: "-"})

	// The progress indicator only accompanies external rasterization; the
	// vector path must finish without ever creating one.
	assert.Nil(t, p.Spinner)

	data, err := os.ReadFile(dst)
	assert.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
}
