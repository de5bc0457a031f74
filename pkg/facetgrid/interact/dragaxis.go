package interact

import (
	"github.com/facetgrid/facetgrid-go/pkg/facetgrid/models"
)

// DragAxisController detects header drags into the opposite axis's drop
// region and requests an axis swap through a caller-supplied callback.
type DragAxisController struct {
	cfg models.GridConfig

	dragging bool
	source   models.Axis

	// requestSwap is invoked on a drop inside the opposite band.
	requestSwap func()
}

// NewDragAxisController creates a drag controller.
func NewDragAxisController(cfg models.GridConfig, requestSwap func()) *DragAxisController {
	return &DragAxisController{cfg: cfg, requestSwap: requestSwap}
}

// columnBand is the column header band rectangle; rowBand the row header
// band. Both derive from the header extents and the current grid size.
func (c *DragAxisController) columnBand(dims models.GridDimensions) models.Rect {
	return models.Rect{
		X:      c.cfg.RowBandWidth,
		Y:      0,
		Width:  dims.Width - c.cfg.RowBandWidth,
		Height: c.cfg.ColumnBandHeight,
	}
}

func (c *DragAxisController) rowBand(dims models.GridDimensions) models.Rect {
	return models.Rect{
		X:      0,
		Y:      c.cfg.ColumnBandHeight,
		Width:  c.cfg.RowBandWidth,
		Height: dims.Height - c.cfg.ColumnBandHeight,
	}
}

// Start begins a drag, inferring the source axis from the header band
// the point falls in. Points outside both bands do not start a drag, and
// starting during an active drag fails.
func (c *DragAxisController) Start(px, py int, dims models.GridDimensions) bool {
	if c.dragging {
		return false
	}
	switch {
	case c.columnBand(dims).Contains(px, py):
		c.source = models.AxisX
	case c.rowBand(dims).Contains(px, py):
		c.source = models.AxisY
	default:
		return false
	}
	c.dragging = true
	return true
}

// OverDropRegion reports whether the point is inside the opposite axis's
// drop region. Used for live feedback during the drag.
func (c *DragAxisController) OverDropRegion(px, py int, dims models.GridDimensions) bool {
	if !c.dragging {
		return false
	}
	if c.source == models.AxisX {
		return c.rowBand(dims).Contains(px, py)
	}
	return c.columnBand(dims).Contains(px, py)
}

// Drop ends the drag. Inside the opposite region it requests an axis
// swap; anywhere else it is a no-op. It reports whether a swap was
// requested.
func (c *DragAxisController) Drop(px, py int, dims models.GridDimensions) bool {
	if !c.dragging {
		return false
	}
	over := c.OverDropRegion(px, py, dims)
	c.dragging = false
	if over && c.requestSwap != nil {
		c.requestSwap()
	}
	return over
}

// Cancel discards the drag without requesting a swap.
func (c *DragAxisController) Cancel() { c.dragging = false }

// IsDragging reports whether a drag is in progress.
func (c *DragAxisController) IsDragging() bool { return c.dragging }

// SourceAxis returns the axis the drag started from.
func (c *DragAxisController) SourceAxis() models.Axis { return c.source }
