package models

// GridConfig holds the fixed pixel geometry the layout and hit-testing
// passes share. All values are in the grid's own coordinate space.
type GridConfig struct {
	// CellWidth and CellHeight are the pixel size of one data cell.
	CellWidth  int `yaml:"cellWidth" json:"cellWidth"`
	CellHeight int `yaml:"cellHeight" json:"cellHeight"`

	// ColumnBandHeight is the fixed extent of the column header band at
	// the top; RowBandWidth the row header band at the left.
	ColumnBandHeight int `yaml:"columnBandHeight" json:"columnBandHeight"`
	RowBandWidth     int `yaml:"rowBandWidth" json:"rowBandWidth"`

	// LevelDepth is the thickness of one header hierarchy level.
	LevelDepth int `yaml:"levelDepth" json:"levelDepth"`

	// LabelHeight is the clickable label strip of a non-leaf header.
	LabelHeight int `yaml:"labelHeight" json:"labelHeight"`
	// ResizeEdgeWidth is the grab margin at a header's trailing edge.
	ResizeEdgeWidth int `yaml:"resizeEdgeWidth" json:"resizeEdgeWidth"`
	// FilterIconSize is the side of the filter icon square.
	FilterIconSize int `yaml:"filterIconSize" json:"filterIconSize"`

	// MinSize is the smallest size a resize can produce.
	MinSize int `yaml:"minSize" json:"minSize"`
	// AutoFitPadding is added to measured text width on auto-fit.
	AutoFitPadding int `yaml:"autoFitPadding" json:"autoFitPadding"`

	// SummaryRowHeight is the fixed height of the aggregation row;
	// GrandTotalWidth the fixed width of the grand-total cell.
	SummaryRowHeight int `yaml:"summaryRowHeight" json:"summaryRowHeight"`
	GrandTotalWidth  int `yaml:"grandTotalWidth" json:"grandTotalWidth"`
}

// DefaultGridConfig returns the default geometry.
func DefaultGridConfig() GridConfig {
	return GridConfig{
		CellWidth:        120,
		CellHeight:       80,
		ColumnBandHeight: 56,
		RowBandWidth:     140,
		LevelDepth:       28,
		LabelHeight:      18,
		ResizeEdgeWidth:  6,
		FilterIconSize:   14,
		MinSize:          40,
		AutoFitPadding:   16,
		SummaryRowHeight: 32,
		GrandTotalWidth:  96,
	}
}
