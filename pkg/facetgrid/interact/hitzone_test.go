package interact

import (
	"testing"

	"github.com/facetgrid/facetgrid-go/pkg/facetgrid/models"
)

// hitFixture builds a two-level column band (Q1 spanning Jan, Feb), one
// row header, and two data cells, using the default geometry:
// row band 140 wide, column band 56 tall, cells 120x80, levels 28 deep.
func hitFixture() (columns, rows []models.HeaderDescriptor, cells []models.Cell, dims models.GridDimensions) {
	columns = []models.HeaderDescriptor{
		{ID: "Q1", Value: "Q1", Level: 0, Span: 2, StartIndex: 0, EndIndex: 1,
			Orientation: models.OrientColumn, Bounds: models.Rect{X: 140, Y: 0, Width: 240, Height: 28}},
		{ID: "Q1|Jan", Value: "Jan", Level: 1, Span: 1, StartIndex: 0, EndIndex: 0, IsLeaf: true,
			Orientation: models.OrientColumn, Bounds: models.Rect{X: 140, Y: 28, Width: 120, Height: 28}},
		{ID: "Q1|Feb", Value: "Feb", Level: 1, Span: 1, StartIndex: 1, EndIndex: 1, IsLeaf: true,
			Orientation: models.OrientColumn, Bounds: models.Rect{X: 260, Y: 28, Width: 120, Height: 28}},
	}
	rows = []models.HeaderDescriptor{
		{ID: "core", Value: "core", Level: 0, Span: 1, StartIndex: 0, EndIndex: 0, IsLeaf: true,
			Orientation: models.OrientRow, Bounds: models.Rect{X: 0, Y: 56, Width: 28, Height: 80}},
	}
	cells = []models.Cell{
		{ID: "c0", GridX: 0, GridY: 0},
		{ID: "c1", GridX: 1, GridY: 0},
	}
	dims = models.GridDimensions{Columns: 2, Rows: 1, Width: 380, Height: 136}
	return
}

func TestResolveZones(t *testing.T) {
	columns, rows, cells, dims := hitFixture()
	r := NewHitZoneResolver(models.DefaultGridConfig())

	tests := []struct {
		name     string
		px, py   int
		zone     Zone
		headerID string
		cellID   string
	}{
		{"column resize edge", 375, 30, ZoneResizeEdge, "Q1|Feb", ""},
		{"column filter icon", 248, 30, ZoneFilterIcon, "Q1|Jan", ""},
		{"parent label strip", 150, 10, ZoneParentLabel, "Q1", ""},
		{"leaf child body", 150, 40, ZoneChildBody, "Q1|Jan", ""},
		{"row child body", 10, 100, ZoneChildBody, "core", ""},
		{"row resize edge", 10, 132, ZoneResizeEdge, "core", ""},
		{"data cell", 200, 100, ZoneDataCell, "", "c0"},
		{"second data cell", 300, 100, ZoneDataCell, "", "c1"},
		{"below grid", 200, 140, ZoneNone, "", ""},
		{"row band gap", 50, 100, ZoneNone, "", ""},
		{"negative coordinates", -5, -5, ZoneNone, "", ""},
	}
	for _, tt := range tests {
		got := r.Resolve(tt.px, tt.py, columns, rows, cells, dims)
		if got.Zone != tt.zone {
			t.Errorf("%s: zone %q, expected %q", tt.name, got.Zone, tt.zone)
			continue
		}
		if tt.headerID != "" && (got.Header == nil || got.Header.ID != tt.headerID) {
			t.Errorf("%s: header %v, expected %s", tt.name, got.Header, tt.headerID)
		}
		if tt.cellID != "" && (got.Cell == nil || got.Cell.ID != tt.cellID) {
			t.Errorf("%s: cell %v, expected %s", tt.name, got.Cell, tt.cellID)
		}
	}
}

func TestResolvePriorityResizeOverFilter(t *testing.T) {
	columns, rows, cells, dims := hitFixture()
	r := NewHitZoneResolver(models.DefaultGridConfig())

	// (255, 30) lies inside both Jan's filter-icon region (x >= 246,
	// y < 42) and its resize-edge strip (x >= 254).
	got := r.Resolve(255, 30, columns, rows, cells, dims)
	if got.Zone != ZoneResizeEdge {
		t.Errorf("overlapping zones resolved to %q, expected resize-edge to win", got.Zone)
	}
}

func TestResolveLeafNoParentLabel(t *testing.T) {
	columns, rows, cells, dims := hitFixture()
	r := NewHitZoneResolver(models.DefaultGridConfig())

	// Top strip of a leaf header is still child body, not a parent label.
	got := r.Resolve(150, 30, columns, rows, cells, dims)
	if got.Zone != ZoneChildBody || got.Header == nil || got.Header.ID != "Q1|Jan" {
		t.Errorf("leaf top strip: %q on %v, expected child-body on Q1|Jan", got.Zone, got.Header)
	}
}

func TestCursorAndActionMapping(t *testing.T) {
	tests := []struct {
		zone   Zone
		cursor CursorStyle
		action ClickAction
	}{
		{ZoneResizeEdge, CursorResize, ActionStartResize},
		{ZoneFilterIcon, CursorPointer, ActionOpenFilter},
		{ZoneParentLabel, CursorPointer, ActionToggleCollapse},
		{ZoneChildBody, CursorPointer, ActionSort},
		{ZoneDataCell, CursorCell, ActionSelect},
		{ZoneNone, CursorDefault, ActionNone},
	}
	for _, tt := range tests {
		if got := CursorFor(tt.zone); got != tt.cursor {
			t.Errorf("CursorFor(%s) = %q, expected %q", tt.zone, got, tt.cursor)
		}
		if got := ActionFor(tt.zone); got != tt.action {
			t.Errorf("ActionFor(%s) = %q, expected %q", tt.zone, got, tt.action)
		}
	}
}

func TestCellBounds(t *testing.T) {
	cfg := models.DefaultGridConfig()
	b := CellBounds(models.Cell{GridX: 1, GridY: 2}, cfg)
	want := models.Rect{X: 140 + 120, Y: 56 + 160, Width: 120, Height: 80}
	if b != want {
		t.Errorf("CellBounds = %+v, expected %+v", b, want)
	}
}
