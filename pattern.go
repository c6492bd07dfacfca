package gridgen

import "fmt"

// PatternType selects one of the supported repeating patterns.
type PatternType int

const (
	PatternGrid PatternType = iota
	PatternDots
	PatternLined
	PatternHex
	PatternIso
)

// String returns the CLI name of the pattern type.
func (pt PatternType) String() string {
	switch pt {
	case PatternGrid:
		return "grid"
	case PatternDots:
		return "dots"
	case PatternLined:
		return "lined"
	case PatternHex:
		return "hex"
	case PatternIso:
		return "iso"
	}
	return "unknown"
}

// ParsePattern maps a CLI pattern name to its PatternType.
func ParsePattern(s string) (PatternType, error) {
	switch s {
	case "grid":
		return PatternGrid, nil
	case "dots":
		return PatternDots, nil
	case "lined":
		return PatternLined, nil
	case "hex":
		return PatternHex, nil
	case "iso":
		return PatternIso, nil
	}
	return 0, fmt.Errorf("unsupported pattern type: %q (expected grid, dots, lined, hex or iso)", s)
}

// boundaryEps guards against floating point truncation excluding a line
// nearly coincident with the area edge.
const boundaryEps = 0.01

// Generator produces the elements tiling a width x height area anchored at
// the local origin. Every argument is expressed in document user units; the
// conversion from millimeters happens once, before dispatch, so generators
// never touch the unit converter. Generators may overshoot the nominal area:
// clipping is the panel compositor's responsibility.
type Generator interface {
	Generate(width, height, spacing, strokeWidth float64, color string) []Element
}

// NewGenerator returns the generator implementing the given pattern type.
func NewGenerator(pt PatternType) (Generator, error) {
	switch pt {
	case PatternGrid:
		return GridGenerator{}, nil
	case PatternDots:
		return DotsGenerator{}, nil
	case PatternLined:
		return LinedGenerator{}, nil
	case PatternHex:
		return HexGenerator{}, nil
	case PatternIso:
		return IsoGenerator{}, nil
	}
	return nil, fmt.Errorf("no generator registered for pattern type %d", pt)
}
