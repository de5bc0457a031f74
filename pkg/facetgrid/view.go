package facetgrid

import (
	"github.com/facetgrid/facetgrid-go/pkg/facetgrid/layout"
	"github.com/facetgrid/facetgrid-go/pkg/facetgrid/models"
)

// GridView is a serializable snapshot of the laid-out grid, suitable for
// JSON output and renderer handoff.
type GridView struct {
	Axis       models.AxisConfiguration  `json:"axis"`
	Dimensions models.GridDimensions     `json:"dimensions"`
	Cells      []models.Cell             `json:"cells"`
	Columns    []models.HeaderDescriptor `json:"columns"`
	Rows       []models.HeaderDescriptor `json:"rows"`
	Summary    []layout.SummaryCell      `json:"summary,omitempty"`
}

// View captures the current layout state.
func (e *Engine) View() GridView {
	return GridView{
		Axis:       e.axis,
		Dimensions: e.dims,
		Cells:      e.cells,
		Columns:    e.columns,
		Rows:       e.rows,
		Summary:    e.summary,
	}
}
