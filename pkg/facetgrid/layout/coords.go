package layout

import (
	"sort"

	"github.com/facetgrid/facetgrid-go/pkg/facetgrid/models"
)

// CoordinateResult is the output of the coordinate pass: the occupied
// cells, the ranked distinct axis values, and the grid's dimensions.
type CoordinateResult struct {
	Cells []models.Cell
	// XValues and YValues hold the distinct axis values in rank order;
	// a value's slice index is its grid rank.
	XValues []string
	YValues []string
	Dims    models.GridDimensions
}

// CellID builds the stable identifier for the cell grouping (xValue, yValue).
func CellID(xValue, yValue string) string {
	return xValue + CellIDSeparator + yValue
}

// AxisFacetValue resolves a record's value for an axis facet, applying
// the Unassigned sentinel for missing or empty values.
func AxisFacetValue(r models.Record, facet string) string {
	if facet == "" {
		return UnassignedValue
	}
	v := r.Facet(facet)
	if v == "" {
		return UnassignedValue
	}
	return v
}

// BuildCells derives the sparse cell grid from records and the two axis
// facets. Distinct stringified values per axis are sorted
// lexicographically and assigned rank indices; records group by
// (rankX, rankY). Identical input always yields identical ranks.
func BuildCells(records []models.Record, xFacet, yFacet string, cfg models.GridConfig) CoordinateResult {
	xValues := distinctFacetValues(records, xFacet)
	yValues := distinctFacetValues(records, yFacet)

	xRank := rankIndex(xValues)
	yRank := rankIndex(yValues)

	// Group records by (rankX, rankY), preserving input record order
	// within each cell.
	byID := make(map[string]*models.Cell)
	order := make([]string, 0)
	for _, r := range records {
		xv := AxisFacetValue(r, xFacet)
		yv := AxisFacetValue(r, yFacet)
		id := CellID(xv, yv)
		cell, ok := byID[id]
		if !ok {
			cell = &models.Cell{
				ID:     id,
				GridX:  xRank[xv],
				GridY:  yRank[yv],
				XValue: xv,
				YValue: yv,
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
		cells = append(cells, *byID[id])
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].GridY != cells[j].GridY {
			return cells[i].GridY < cells[j].GridY
		}
		return cells[i].GridX < cells[j].GridX
	})

	return CoordinateResult{
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

// distinctFacetValues collects the distinct (sentinel-normalized) values
// of a facet across records, sorted lexicographically.
func distinctFacetValues(records []models.Record, facet string) []string {
	seen := make(map[string]bool)
	values := make([]string, 0)
	for _, r := range records {
		v := AxisFacetValue(r, facet)
		if !seen[v] {
			seen[v] = true
			values = append(values, v)
		}
	}
	sort.Strings(values)
	return values
}

// rankIndex maps each value to its slice index.
func rankIndex(values []string) map[string]int {
	ranks := make(map[string]int, len(values))
	for i, v := range values {
		ranks[v] = i
	}
	return ranks
}
