package models

// CellKind classifies a visual cell. Structural cells (headers,
// aggregation row) are excluded from search and selection semantics.
type CellKind string

const (
	CellData        CellKind = "data"
	CellHeader      CellKind = "header"
	CellAggregation CellKind = "aggregation"
)

// Cell is one occupied position of the derived sparse grid.
type Cell struct {
	// ID is the cell identifier, stable for a given (xValue, yValue) pair.
	ID string `json:"id"`
	// GridX is the rank index of XValue among all distinct X-axis values,
	// sorted ascending. GridY likewise for the Y axis.
	GridX int `json:"gridX"`
	GridY int `json:"gridY"`
	// XValue and YValue are the stringified axis values the cell groups by.
	XValue string `json:"xValue"`
	YValue string `json:"yValue"`
	// RecordIDs lists the member records in order. RecordCount always
	// equals len(RecordIDs).
	RecordIDs   []string `json:"recordIds"`
	RecordCount int      `json:"recordCount"`
	// Aggregate is the optional per-cell rollup value.
	Aggregate *float64 `json:"aggregate,omitempty"`
	// Kind classifies the cell (data, header, aggregation).
	Kind CellKind `json:"kind"`
}

// GridDimensions is the derived pixel and logical extent of the grid.
type GridDimensions struct {
	// Columns and Rows are the distinct value counts per axis.
	Columns int `json:"columns"`
	Rows    int `json:"rows"`
	// Width and Height are the pixel extents including header bands.
	Width  int `json:"width"`
	Height int `json:"height"`
}
