package interact

import (
	"github.com/facetgrid/facetgrid-go/pkg/facetgrid/models"
)

// ResizeController owns column/row sizing gestures: single drag resize,
// bulk sibling resize, and auto-fit. Sizes never fall below the
// configured minimum; out-of-range requests clamp silently.
type ResizeController struct {
	minSize int

	active        bool
	headerID      string
	orientation   models.Orientation
	startSize     int
	currentSize   int
	originPointer int

	// onLive reports the clamped size during the drag, before commit.
	onLive func(headerID string, size int)
}

// NewResizeController creates a resize controller. minSize <= 0 falls
// back to the default grid minimum.
func NewResizeController(minSize int, onLive func(string, int)) *ResizeController {
	if minSize <= 0 {
		minSize = models.DefaultGridConfig().MinSize
	}
	return &ResizeController{minSize: minSize, onLive: onLive}
}

// InProgress reports whether a resize gesture is active.
func (c *ResizeController) InProgress() bool { return c.active }

// HeaderID returns the header being resized, empty when idle.
func (c *ResizeController) HeaderID() string {
	if !c.active {
		return ""
	}
	return c.headerID
}

// Start captures the header, its orientation, and its starting size
// along the resize axis. Starting while a gesture is active fails.
func (c *ResizeController) Start(h models.HeaderDescriptor, originPointer int) bool {
	if c.active {
		return false
	}
	size := h.Bounds.Width
	if h.Orientation == models.OrientRow {
		size = h.Bounds.Height
	}
	c.active = true
	c.headerID = h.ID
	c.orientation = h.Orientation
	c.startSize = size
	c.currentSize = size
	c.originPointer = originPointer
	return true
}

// Update computes the live size max(minSize, startSize + delta) and
// reports it without committing.
func (c *ResizeController) Update(pointer int) int {
	if !c.active {
		return 0
	}
	size := c.startSize + (pointer - c.originPointer)
	if size < c.minSize {
		size = c.minSize
	}
	c.currentSize = size
	if c.onLive != nil {
		c.onLive(c.headerID, size)
	}
	return size
}

// End commits the current size and clears the gesture state.
func (c *ResizeController) End() (headerID string, size int, ok bool) {
	if !c.active {
		return "", 0, false
	}
	headerID, size = c.headerID, c.currentSize
	c.reset()
	return headerID, size, true
}

// Cancel discards the gesture and restores the starting size.
func (c *ResizeController) Cancel() (headerID string, size int) {
	if !c.active {
		return "", 0
	}
	headerID, size = c.headerID, c.startSize
	if c.onLive != nil {
		c.onLive(headerID, size)
	}
	c.reset()
	return headerID, size
}

func (c *ResizeController) reset() {
	c.active = false
	c.headerID = ""
	c.startSize = 0
	c.currentSize = 0
	c.originPointer = 0
}

// BulkResize applies a resize ratio to every sibling header at the same
// hierarchy level: each receives max(minSize, originalSize * ratio).
func (c *ResizeController) BulkResize(siblings []models.HeaderDescriptor, ratio float64) map[string]int {
	sizes := make(map[string]int, len(siblings))
	for _, h := range siblings {
		original := h.Bounds.Width
		if h.Orientation == models.OrientRow {
			original = h.Bounds.Height
		}
		size := int(float64(original) * ratio)
		if size < c.minSize {
			size = c.minSize
		}
		sizes[h.ID] = size
	}
	return sizes
}

// AutoFit computes the width that fits the header label and every cell's
// primary text in the header's column range: the maximum measured width
// plus padding, floored at minSize. measure converts text to pixels and
// is supplied by the renderer port.
func (c *ResizeController) AutoFit(label string, cellTexts []string, measure func(string) int, padding int) int {
	widest := measure(label)
	for _, t := range cellTexts {
		if w := measure(t); w > widest {
			widest = w
		}
	}
	size := widest + padding
	if size < c.minSize {
		size = c.minSize
	}
	return size
}
