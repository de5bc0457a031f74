// Package interact resolves pointer input into semantic zones and owns
// the selection, sort, filter, resize, and axis-drag controllers.
package interact

import (
	"github.com/facetgrid/facetgrid-go/pkg/facetgrid/models"
)

// Zone is the semantic region a pointer point resolves to.
type Zone string

const (
	ZoneResizeEdge  Zone = "resize-edge"
	ZoneFilterIcon  Zone = "filter-icon"
	ZoneParentLabel Zone = "parent-label"
	ZoneChildBody   Zone = "child-body"
	ZoneDataCell    Zone = "data-cell"
	ZoneNone        Zone = "none"
)

// zonePriority orders zones for hit resolution, highest first.
var zonePriority = map[Zone]int{
	ZoneResizeEdge:  5,
	ZoneFilterIcon:  4,
	ZoneParentLabel: 3,
	ZoneChildBody:   2,
	ZoneDataCell:    1,
	ZoneNone:        0,
}

// CursorStyle names the pointer cursor for a zone.
type CursorStyle string

const (
	CursorResize  CursorStyle = "resize"
	CursorPointer CursorStyle = "pointer"
	CursorCell    CursorStyle = "cell"
	CursorDefault CursorStyle = "default"
)

// ClickAction names the operation a click in a zone dispatches to.
type ClickAction string

const (
	ActionStartResize    ClickAction = "start-resize"
	ActionOpenFilter     ClickAction = "open-filter"
	ActionToggleCollapse ClickAction = "toggle-collapse"
	ActionSort           ClickAction = "sort"
	ActionSelect         ClickAction = "select"
	ActionNone           ClickAction = "none"
)

// Cursor and dispatch are pure functions of the zone, decoupled from
// geometry.
var (
	zoneCursors = map[Zone]CursorStyle{
		ZoneResizeEdge:  CursorResize,
		ZoneFilterIcon:  CursorPointer,
		ZoneParentLabel: CursorPointer,
		ZoneChildBody:   CursorPointer,
		ZoneDataCell:    CursorCell,
		ZoneNone:        CursorDefault,
	}
	zoneActions = map[Zone]ClickAction{
		ZoneResizeEdge:  ActionStartResize,
		ZoneFilterIcon:  ActionOpenFilter,
		ZoneParentLabel: ActionToggleCollapse,
		ZoneChildBody:   ActionSort,
		ZoneDataCell:    ActionSelect,
		ZoneNone:        ActionNone,
	}
)

// CursorFor returns the cursor style for a zone.
func CursorFor(z Zone) CursorStyle { return zoneCursors[z] }

// ActionFor returns the click action for a zone.
func ActionFor(z Zone) ClickAction { return zoneActions[z] }

// HitResult is the outcome of resolving a pointer point.
type HitResult struct {
	Zone   Zone
	Header *models.HeaderDescriptor
	Cell   *models.Cell
}

// HitZoneResolver maps pointer coordinates (already in the shared grid
// coordinate space) to semantic zones.
type HitZoneResolver struct {
	cfg models.GridConfig
}

// NewHitZoneResolver creates a resolver for the given geometry.
func NewHitZoneResolver(cfg models.GridConfig) *HitZoneResolver {
	return &HitZoneResolver{cfg: cfg}
}

// Resolve maps the point to the highest-priority zone it falls in.
// Column headers are scanned only when the point lies within the column
// header band; row headers symmetrically. A point outside all geometry
// resolves to ZoneNone, never an error.
func (h *HitZoneResolver) Resolve(
	px, py int,
	columns, rows []models.HeaderDescriptor,
	cells []models.Cell,
	dims models.GridDimensions,
) HitResult {
	best := HitResult{Zone: ZoneNone}

	if py >= 0 && py < h.cfg.ColumnBandHeight {
		h.scanHeaders(px, py, columns, &best)
	}
	if px >= 0 && px < h.cfg.RowBandWidth {
		h.scanHeaders(px, py, rows, &best)
	}
	if best.Zone != ZoneNone {
		return best
	}

	if cell := h.cellAt(px, py, cells, dims); cell != nil {
		return HitResult{Zone: ZoneDataCell, Cell: cell}
	}
	return best
}

func (h *HitZoneResolver) scanHeaders(px, py int, headers []models.HeaderDescriptor, best *HitResult) {
	for i := range headers {
		hd := &headers[i]
		if !hd.Bounds.Contains(px, py) {
			continue
		}
		z := h.headerZone(px, py, hd)
		if zonePriority[z] > zonePriority[best.Zone] {
			best.Zone = z
			best.Header = hd
			best.Cell = nil
		}
	}
}

// headerZone classifies a point known to be inside the header bounds.
func (h *HitZoneResolver) headerZone(px, py int, hd *models.HeaderDescriptor) Zone {
	b := hd.Bounds
	if hd.Orientation == models.OrientRow {
		// Trailing edge is the bottom; the filter icon anchors at the
		// trailing corner's leading side.
		if py >= b.Y+b.Height-h.cfg.ResizeEdgeWidth {
			return ZoneResizeEdge
		}
		if py >= b.Y+b.Height-h.cfg.FilterIconSize && px < b.X+h.cfg.FilterIconSize {
			return ZoneFilterIcon
		}
		if !hd.IsLeaf && px < b.X+h.cfg.LabelHeight {
			return ZoneParentLabel
		}
		return ZoneChildBody
	}

	if px >= b.X+b.Width-h.cfg.ResizeEdgeWidth {
		return ZoneResizeEdge
	}
	if px >= b.X+b.Width-h.cfg.FilterIconSize && py < b.Y+h.cfg.FilterIconSize {
		return ZoneFilterIcon
	}
	if !hd.IsLeaf && py < b.Y+h.cfg.LabelHeight {
		return ZoneParentLabel
	}
	return ZoneChildBody
}

// cellAt floors the point (minus header offsets) by cell size and matches
// by exact grid coordinate.
func (h *HitZoneResolver) cellAt(px, py int, cells []models.Cell, dims models.GridDimensions) *models.Cell {
	if px < h.cfg.RowBandWidth || py < h.cfg.ColumnBandHeight {
		return nil
	}
	if px >= dims.Width || py >= dims.Height {
		return nil
	}
	gx := (px - h.cfg.RowBandWidth) / h.cfg.CellWidth
	gy := (py - h.cfg.ColumnBandHeight) / h.cfg.CellHeight
	for i := range cells {
		if cells[i].GridX == gx && cells[i].GridY == gy {
			return &cells[i]
		}
	}
	return nil
}

// CellBounds computes the pixel rectangle of a data cell.
func CellBounds(c models.Cell, cfg models.GridConfig) models.Rect {
	return models.Rect{
		X:      cfg.RowBandWidth + c.GridX*cfg.CellWidth,
		Y:      cfg.ColumnBandHeight + c.GridY*cfg.CellHeight,
		Width:  cfg.CellWidth,
		Height: cfg.CellHeight,
	}
}
