package interact

import (
	"github.com/facetgrid/facetgrid-go/pkg/facetgrid/models"
)

// Modifier is the keyboard modifier held during a click.
type Modifier int

const (
	ModNone Modifier = iota
	ModCmdCtrl
	ModShift
)

// SelectionController owns single/multi/range/lasso selection state.
// It keeps a grid-coordinate index of the current cells so range and
// lasso selection work without reaching into other controllers.
type SelectionController struct {
	state models.SelectionState
	cells map[string]models.Cell
	cfg   models.GridConfig

	lassoActive bool
	lassoOrigin models.Rect // zero-size rect at the start point
	preview     map[string]bool

	onChange func(models.SelectionState)
}

// NewSelectionController creates an empty selection controller. onChange
// is invoked once per mutating operation with the new state.
func NewSelectionController(cfg models.GridConfig, onChange func(models.SelectionState)) *SelectionController {
	return &SelectionController{
		state:    models.NewSelectionState(),
		cells:    make(map[string]models.Cell),
		cfg:      cfg,
		onChange: onChange,
	}
}

// Reconcile replaces the cell index after regeneration and prunes ids
// that no longer exist. Pruning does not count as a mutation and emits
// no notification unless the selection actually shrank.
func (c *SelectionController) Reconcile(cells []models.Cell) {
	c.cells = make(map[string]models.Cell, len(cells))
	for _, cell := range cells {
		c.cells[cell.ID] = cell
	}
	changed := false
	for id := range c.state.CellIDs {
		if _, ok := c.cells[id]; !ok {
			delete(c.state.CellIDs, id)
			changed = true
		}
	}
	if c.state.AnchorID != "" {
		if _, ok := c.cells[c.state.AnchorID]; !ok {
			c.state.AnchorID = ""
			changed = true
		}
	}
	if changed {
		c.emit()
	}
}

// State returns the current selection.
func (c *SelectionController) State() models.SelectionState { return c.state }

// SelectSingle clears the selection, selects the cell, and sets the anchor.
// An unknown id clears the selection.
func (c *SelectionController) SelectSingle(id string) {
	c.state.CellIDs = make(map[string]bool)
	c.state.AnchorID = ""
	c.state.Mode = models.SelectionSingle
	if _, ok := c.cells[id]; ok {
		c.state.CellIDs[id] = true
		c.state.AnchorID = id
	}
	c.emit()
}

// Toggle adds or removes the cell symmetrically and sets the anchor.
// Unknown ids are ignored.
func (c *SelectionController) Toggle(id string) {
	if _, ok := c.cells[id]; !ok {
		return
	}
	if c.state.CellIDs[id] {
		delete(c.state.CellIDs, id)
	} else {
		c.state.CellIDs[id] = true
	}
	c.state.AnchorID = id
	c.state.Mode = models.SelectionToggle
	c.emit()
}

// SelectRange selects the rectangular closed range between the anchor's
// and the target's grid coordinates, inclusive and order-independent.
// Without an anchor, or with an unknown target, it is a no-op.
func (c *SelectionController) SelectRange(toID string) {
	from, ok := c.cells[c.state.AnchorID]
	if !ok {
		return
	}
	to, ok := c.cells[toID]
	if !ok {
		return
	}

	x0, x1 := minMax(from.GridX, to.GridX)
	y0, y1 := minMax(from.GridY, to.GridY)

	c.state.CellIDs = make(map[string]bool)
	for id, cell := range c.cells {
		if cell.GridX >= x0 && cell.GridX <= x1 && cell.GridY >= y0 && cell.GridY <= y1 {
			c.state.CellIDs[id] = true
		}
	}
	c.state.Mode = models.SelectionRange
	c.emit()
}

// SelectMultiple replaces the selection with the given ids and clears
// the anchor. Unknown ids are dropped.
func (c *SelectionController) SelectMultiple(ids []string) {
	c.state.CellIDs = make(map[string]bool, len(ids))
	for _, id := range ids {
		if _, ok := c.cells[id]; ok {
			c.state.CellIDs[id] = true
		}
	}
	c.state.AnchorID = ""
	c.state.Mode = models.SelectionMulti
	c.emit()
}

// Clear empties the selection.
func (c *SelectionController) Clear() {
	c.state = models.NewSelectionState()
	c.emit()
}

// HandleClick dispatches a cell click by modifier: plain → SelectSingle,
// cmd/ctrl → Toggle, shift → SelectRange (no-op without an anchor).
func (c *SelectionController) HandleClick(id string, mod Modifier) {
	switch mod {
	case ModCmdCtrl:
		c.Toggle(id)
	case ModShift:
		c.SelectRange(id)
	default:
		c.SelectSingle(id)
	}
}

// StartLasso begins a lasso drag at the given point. It fails when a
// lasso is already in progress.
func (c *SelectionController) StartLasso(px, py int) bool {
	if c.lassoActive {
		return false
	}
	c.lassoActive = true
	c.lassoOrigin = models.Rect{X: px, Y: py}
	c.preview = make(map[string]bool)
	return true
}

// UpdateLasso extends the drag rectangle to the given point and refreshes
// the live preview set of intersecting cells.
func (c *SelectionController) UpdateLasso(px, py int) {
	if !c.lassoActive {
		return
	}
	x0, x1 := minMax(c.lassoOrigin.X, px)
	y0, y1 := minMax(c.lassoOrigin.Y, py)
	box := models.Rect{X: x0, Y: y0, Width: x1 - x0 + 1, Height: y1 - y0 + 1}

	c.preview = make(map[string]bool)
	for id, cell := range c.cells {
		if CellBounds(cell, c.cfg).Intersects(box) {
			c.preview[id] = true
		}
	}
}

// LassoPreview returns the live preview set.
func (c *SelectionController) LassoPreview() map[string]bool { return c.preview }

// LassoActive reports whether a lasso drag is in progress.
func (c *SelectionController) LassoActive() bool { return c.lassoActive }

// EndLasso commits the preview as a multi selection.
func (c *SelectionController) EndLasso() {
	if !c.lassoActive {
		return
	}
	ids := make([]string, 0, len(c.preview))
	for id := range c.preview {
		ids = append(ids, id)
	}
	c.lassoActive = false
	c.preview = nil
	c.SelectMultiple(ids)
}

// CancelLasso discards the drag without mutating the selection.
func (c *SelectionController) CancelLasso() {
	c.lassoActive = false
	c.preview = nil
}

func (c *SelectionController) emit() {
	if c.onChange != nil {
		c.onChange(c.state)
	}
}

func minMax(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}
