package layout

import (
	"sort"

	"github.com/facetgrid/facetgrid-go/pkg/facetgrid/models"
)

// AggregationMode selects the summary-row metric.
type AggregationMode string

const (
	AggregationOff   AggregationMode = "off"
	AggregationCount AggregationMode = "count"
	AggregationSum   AggregationMode = "sum"
	AggregationAvg   AggregationMode = "avg"
)

// SummaryCell is one aggregation-row cell with its pixel bounds. The
// column cells take the owning column header's width; the grand total has
// a fixed width.
type SummaryCell struct {
	models.Cell
	Bounds models.Rect `json:"bounds"`
}

// BuildSummaryRow produces one summary cell per column-owning header,
// positioned one row below the last occupied row, plus a grand-total
// cell after the last owner. A column is owned by its leaf header, or by
// a collapsed header standing in for its hidden descendants; a collapsed
// owner's cell spans and aggregates its whole column range, so no column
// ever drops out of the summary. Columns with zero records still produce
// a zero-valued cell. AggregationOff yields an empty result.
func BuildSummaryRow(
	cells []models.Cell,
	columns []models.HeaderDescriptor,
	records map[string]models.Record,
	mode AggregationMode,
	cfg models.GridConfig,
) []SummaryCell {
	if mode == AggregationOff || mode == "" {
		return nil
	}

	owners := make([]models.HeaderDescriptor, 0, len(columns))
	for _, c := range columns {
		if c.IsLeaf || c.Collapsed {
			owners = append(owners, c)
		}
	}
	sort.Slice(owners, func(i, j int) bool { return owners[i].StartIndex < owners[j].StartIndex })
	if len(owners) == 0 {
		return nil
	}

	summaryRow := 0
	for _, c := range cells {
		if c.GridY+1 > summaryRow {
			summaryRow = c.GridY + 1
		}
	}
	rowY := cfg.ColumnBandHeight + summaryRow*cfg.CellHeight

	out := make([]SummaryCell, 0, len(owners)+1)
	grandTotal := 0.0
	for _, col := range owners {
		value := spanValue(cells, col.StartIndex, col.EndIndex, records, mode)
		grandTotal += value
		v := value
		out = append(out, SummaryCell{
			Cell: models.Cell{
				ID:        "summary" + CellIDSeparator + col.ID,
				GridX:     col.StartIndex,
				GridY:     summaryRow,
				XValue:    col.ID,
				YValue:    "summary",
				Aggregate: &v,
				Kind:      models.CellAggregation,
			},
			Bounds: models.Rect{
				X:      col.Bounds.X,
				Y:      rowY,
				Width:  col.Bounds.Width,
				Height: cfg.SummaryRowHeight,
			},
		})
	}

	total := grandTotal
	last := owners[len(owners)-1]
	out = append(out, SummaryCell{
		Cell: models.Cell{
			ID:        "summary" + CellIDSeparator + "total",
			GridX:     len(owners),
			GridY:     summaryRow,
			XValue:    "total",
			YValue:    "summary",
			Aggregate: &total,
			Kind:      models.CellAggregation,
		},
		Bounds: models.Rect{
			X:      last.Bounds.X + last.Bounds.Width,
			Y:      rowY,
			Width:  cfg.GrandTotalWidth,
			Height: cfg.SummaryRowHeight,
		},
	})
	return out
}

// spanValue computes the metric across all cells in the column range.
func spanValue(cells []models.Cell, start, end int, records map[string]models.Record, mode AggregationMode) float64 {
	count := 0
	sum := 0.0
	for _, c := range cells {
		if c.GridX < start || c.GridX > end {
			continue
		}
		count += c.RecordCount
		if mode == AggregationSum || mode == AggregationAvg {
			for _, id := range c.RecordIDs {
				sum += records[id].Value
			}
		}
	}
	switch mode {
	case AggregationSum:
		return sum
	case AggregationAvg:
		if count == 0 {
			return 0
		}
		return sum / float64(count)
	default:
		return float64(count)
	}
}
