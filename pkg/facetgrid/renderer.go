package facetgrid

// RendererPort abstracts the drawing surface. The engine calls it to
// request redraws and relies on it for text measurement; it receives
// pointer input already normalized into the shared grid coordinate
// space. The engine assumes nothing about the surface behind it.
type RendererPort interface {
	// RequestRedraw asks the surface to repaint from the current
	// engine state.
	RequestRedraw()
	// MeasureText returns the pixel width of a string, used by auto-fit.
	MeasureText(s string) int
}

// approxCharWidth backs text measurement when no renderer is attached.
const approxCharWidth = 8

// nullRenderer measures text by character count and ignores redraws.
type nullRenderer struct{}

func (nullRenderer) RequestRedraw() {}

func (nullRenderer) MeasureText(s string) int { return len(s) * approxCharWidth }
