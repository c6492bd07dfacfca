package gridgen

// Element is a single drawable item of the output document. The concrete
// types form a closed set which the serializer switches over. All coordinates
// are expressed in document user units and every value is immutable once constructed.
type Element interface {
	element()
}

// Line is a straight stroked segment.
type Line struct {
	X1, Y1, X2, Y2 float64
	Stroke         string
	StrokeWidth    float64
	// Dash holds an optional stroke-dasharray value. Empty means a solid line.
	Dash string
}

// Circle is a filled dot without an outline.
type Circle struct {
	Cx, Cy, R float64
	Fill      string
}

// Rect is an axis aligned filled rectangle.
type Rect struct {
	X, Y, W, H float64
	Fill       string
}

// PathOp enumerates the supported subpath commands.
type PathOp int

const (
	MoveTo PathOp = iota
	LineTo
	ClosePath
)

// PathCmd is one subpath command. X and Y are unused for ClosePath.
type PathCmd struct {
	Op   PathOp
	X, Y float64
}

// Path is an ordered sequence of subpath commands stroked as a whole.
type Path struct {
	Cmds        []PathCmd
	Stroke      string
	StrokeWidth float64
	Fill        string
}

// PanelGroup is one composed panel: a group of pattern elements restricted to
// a clip rectangle anchored at the group origin and translated to its
// position on the page. Each panel in a document carries a distinct ClipID.
type PanelGroup struct {
	Tx, Ty       float64
	ClipID       string
	ClipW, ClipH float64
	Elements     []Element
}

func (Line) element()       {}
func (Circle) element()     {}
func (Rect) element()       {}
func (Path) element()       {}
func (PanelGroup) element() {}

// Document describes one complete page. Elements are kept in paint order:
// the background rectangle first, the panel groups next and the fold
// line markers last.
type Document struct {
	Width, Height float64
	Elements      []Element
}
