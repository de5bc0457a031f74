// Package position owns the logical (axis-relative, not pixel)
// coordinates per record, so record identity survives axis remapping and
// filtering.
package position

import (
	"log/slog"
	"sort"
	"time"

	"github.com/facetgrid/facetgrid-go/pkg/facetgrid/layout"
	"github.com/facetgrid/facetgrid-go/pkg/facetgrid/models"
)

// Tracker caches one logical coordinate per record. A position is derived
// the first time a record is seen and reused indefinitely, even while
// the record is excluded by a filter, so placement stays stable across
// filter toggles. Re-derivation happens only when the axis
// configuration itself changes.
type Tracker struct {
	axisCfg      models.AxisConfiguration
	positions    map[string]models.CardPosition
	customOrders map[string][]string
	xRank        map[string]int
	yRank        map[string]int
	logger       *slog.Logger
	now          func() time.Time
}

// NewTracker creates an empty tracker.
func NewTracker(logger *slog.Logger) *Tracker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Tracker{
		positions:    make(map[string]models.CardPosition),
		customOrders: make(map[string][]string),
		logger:       logger,
		now:          time.Now,
	}
}

// Position returns the cached position for a record.
func (t *Tracker) Position(recordID string) (models.CardPosition, bool) {
	p, ok := t.positions[recordID]
	return p, ok
}

// SetCustomOrder records an explicit record ordering for a group key
// (a cell id). Cells for that group list the ordered ids first.
func (t *Tracker) SetCustomOrder(groupKey string, orderedIDs []string) {
	t.customOrders[groupKey] = append([]string{}, orderedIDs...)
}

// RecalculateAll returns a fresh cell list built from cached-or-derived
// positions and, as a side effect, rebuilds the axis value → rank index
// used by Resolve. Changing the axis configuration invalidates the whole
// cache; otherwise cached positions are reused as-is.
func (t *Tracker) RecalculateAll(records []models.Record, axisCfg models.AxisConfiguration, cfg models.GridConfig) layout.CoordinateResult {
	if axisCfg != t.axisCfg {
		t.positions = make(map[string]models.CardPosition)
		t.axisCfg = axisCfg
	}

	for _, r := range records {
		if _, ok := t.positions[r.ID]; ok {
			continue
		}
		t.positions[r.ID] = t.derive(r, axisCfg)
	}

	// Ranks come from the positions of the records currently present.
	xValues := t.distinctValues(records, func(p models.CardPosition) string { return p.X.Value })
	yValues := t.distinctValues(records, func(p models.CardPosition) string { return p.Y.Value })
	t.xRank = rankIndex(xValues)
	t.yRank = rankIndex(yValues)

	byID := make(map[string]*models.Cell)
	order := make([]string, 0)
	for _, r := range records {
		p := t.positions[r.ID]
		id := layout.CellID(p.X.Value, p.Y.Value)
		cell, ok := byID[id]
		if !ok {
			cell = &models.Cell{
				ID:     id,
				GridX:  t.xRank[p.X.Value],
				GridY:  t.yRank[p.Y.Value],
				XValue: p.X.Value,
				YValue: p.Y.Value,
				Kind:   models.CellData,
			}
			byID[id] = cell
			order = append(order, id)
		}
		cell.RecordIDs = append(cell.RecordIDs, r.ID)
		cell.RecordCount = len(cell.RecordIDs)
	}

	cells := make([]models.Cell, 0, len(order))
	for _, id := range order {
		cell := byID[id]
		cell.RecordIDs = t.applyCustomOrder(id, cell.RecordIDs)
		cells = append(cells, *cell)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].GridY != cells[j].GridY {
			return cells[i].GridY < cells[j].GridY
		}
		return cells[i].GridX < cells[j].GridX
	})

	return layout.CoordinateResult{
		Cells:   cells,
		XValues: xValues,
		YValues: yValues,
		Dims: models.GridDimensions{
			Columns: len(xValues),
			Rows:    len(yValues),
			Width:   cfg.RowBandWidth + len(xValues)*cfg.CellWidth,
			Height:  cfg.ColumnBandHeight + len(yValues)*cfg.CellHeight,
		},
	}
}

// Resolve maps a cached position to its grid coordinate, or (-1, -1)
// when either axis value is not present in the current rank index.
func (t *Tracker) Resolve(p models.CardPosition) (gridX, gridY int) {
	x, okX := t.xRank[p.X.Value]
	y, okY := t.yRank[p.Y.Value]
	if !okX || !okY {
		return -1, -1
	}
	return x, y
}

func (t *Tracker) derive(r models.Record, axisCfg models.AxisConfiguration) models.CardPosition {
	return models.CardPosition{
		RecordID: r.ID,
		X: models.AxisValue{
			Kind:  axisCfg.X.Kind,
			Facet: axisCfg.X.Facet,
			Value: layout.AxisFacetValue(r, axisCfg.X.Facet),
		},
		Y: models.AxisValue{
			Kind:  axisCfg.Y.Kind,
			Facet: axisCfg.Y.Facet,
			Value: layout.AxisFacetValue(r, axisCfg.Y.Facet),
		},
		Z:           models.AxisValue{Kind: axisCfg.X.Kind},
		LastUpdated: t.now(),
	}
}

func (t *Tracker) distinctValues(records []models.Record, pick func(models.CardPosition) string) []string {
	seen := make(map[string]bool)
	values := make([]string, 0)
	for _, r := range records {
		v := pick(t.positions[r.ID])
		if !seen[v] {
			seen[v] = true
			values = append(values, v)
		}
	}
	sort.Strings(values)
	return values
}

// applyCustomOrder lists the group's ordered ids first (those present),
// then the remaining ids in their existing order.
func (t *Tracker) applyCustomOrder(groupKey string, ids []string) []string {
	custom, ok := t.customOrders[groupKey]
	if !ok {
		return ids
	}
	present := make(map[string]bool, len(ids))
	for _, id := range ids {
		present[id] = true
	}
	out := make([]string, 0, len(ids))
	used := make(map[string]bool, len(ids))
	for _, id := range custom {
		if present[id] && !used[id] {
			out = append(out, id)
			used[id] = true
		}
	}
	for _, id := range ids {
		if !used[id] {
			out = append(out, id)
		}
	}
	return out
}

func rankIndex(values []string) map[string]int {
	ranks := make(map[string]int, len(values))
	for i, v := range values {
		ranks[v] = i
	}
	return ranks
}
