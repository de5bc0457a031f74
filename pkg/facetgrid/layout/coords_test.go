package layout

import (
	"reflect"
	"testing"

	"github.com/facetgrid/facetgrid-go/pkg/facetgrid/models"
)

func rec(id, status, team string) models.Record {
	r := models.Record{ID: id, Title: "card " + id, Facets: map[string]string{}}
	if status != "" {
		r.Facets["status"] = status
	}
	if team != "" {
		r.Facets["team"] = team
	}
	return r
}

func TestAxisFacetValue(t *testing.T) {
	tests := []struct {
		name     string
		record   models.Record
		facet    string
		expected string
	}{
		{"present value", rec("1", "doing", ""), "status", "doing"},
		{"missing facet", rec("1", "", ""), "status", UnassignedValue},
		{"empty facet name", rec("1", "doing", ""), "", UnassignedValue},
		{"nil facet map", models.Record{ID: "1"}, "status", UnassignedValue},
	}
	for _, tt := range tests {
		if got := AxisFacetValue(tt.record, tt.facet); got != tt.expected {
			t.Errorf("%s: AxisFacetValue = %q, expected %q", tt.name, got, tt.expected)
		}
	}
}

func TestBuildCellsGroups(t *testing.T) {
	records := []models.Record{
		rec("1", "backlog", "core"),
		rec("2", "backlog", "core"),
		rec("3", "backlog", "core"),
		rec("4", "doing", "core"),
		rec("5", "doing", "core"),
		rec("6", "done", "core"),
	}
	res := BuildCells(records, "status", "team", models.DefaultGridConfig())

	if len(res.Cells) != 3 {
		t.Fatalf("expected 3 cells, got %d", len(res.Cells))
	}

	// Lexicographic ranks: backlog=0, doing=1, done=2.
	expectedCounts := []int{3, 2, 1}
	for i, c := range res.Cells {
		if c.GridX != i || c.GridY != 0 {
			t.Errorf("cell %d: grid (%d,%d), expected (%d,0)", i, c.GridX, c.GridY, i)
		}
		if c.RecordCount != expectedCounts[i] {
			t.Errorf("cell %d: count %d, expected %d", i, c.RecordCount, expectedCounts[i])
		}
		if c.Kind != models.CellData {
			t.Errorf("cell %d: kind %q, expected %q", i, c.Kind, models.CellData)
		}
	}

	if res.Cells[0].ID != CellID("backlog", "core") {
		t.Errorf("cell id %q, expected %q", res.Cells[0].ID, CellID("backlog", "core"))
	}
	if !reflect.DeepEqual(res.Cells[0].RecordIDs, []string{"1", "2", "3"}) {
		t.Errorf("record order %v, expected input order", res.Cells[0].RecordIDs)
	}
}

func TestBuildCellsRanksArePermutation(t *testing.T) {
	records := []models.Record{
		rec("1", "zeta", "b"),
		rec("2", "alpha", "a"),
		rec("3", "mid", "c"),
		rec("4", "alpha", "b"),
	}
	res := BuildCells(records, "status", "team", models.DefaultGridConfig())

	if !reflect.DeepEqual(res.XValues, []string{"alpha", "mid", "zeta"}) {
		t.Errorf("XValues = %v, expected lexicographic order", res.XValues)
	}
	// Each cell's rank must equal its value's index in the ranked list.
	for _, c := range res.Cells {
		if res.XValues[c.GridX] != c.XValue {
			t.Errorf("cell %s: GridX %d does not match XValue %q", c.ID, c.GridX, c.XValue)
		}
		if res.YValues[c.GridY] != c.YValue {
			t.Errorf("cell %s: GridY %d does not match YValue %q", c.ID, c.GridY, c.YValue)
		}
	}
}

func TestBuildCellsUnassigned(t *testing.T) {
	records := []models.Record{
		rec("1", "doing", "core"),
		rec("2", "", "core"),
	}
	res := BuildCells(records, "status", "team", models.DefaultGridConfig())

	found := false
	for _, c := range res.Cells {
		if c.XValue == UnassignedValue {
			found = true
		}
	}
	if !found {
		t.Error("expected a cell under the Unassigned sentinel value")
	}
}

func TestBuildCellsDeterministic(t *testing.T) {
	records := []models.Record{
		rec("1", "doing", "core"),
		rec("2", "done", "infra"),
		rec("3", "backlog", "core"),
	}
	cfg := models.DefaultGridConfig()
	first := BuildCells(records, "status", "team", cfg)
	second := BuildCells(records, "status", "team", cfg)
	if !reflect.DeepEqual(first, second) {
		t.Error("identical input produced different results")
	}
}

func TestBuildCellsDimensions(t *testing.T) {
	records := []models.Record{
		rec("1", "a", "x"),
		rec("2", "b", "y"),
	}
	cfg := models.DefaultGridConfig()
	res := BuildCells(records, "status", "team", cfg)

	if res.Dims.Columns != 2 || res.Dims.Rows != 2 {
		t.Errorf("dims %dx%d, expected 2x2", res.Dims.Columns, res.Dims.Rows)
	}
	wantWidth := cfg.RowBandWidth + 2*cfg.CellWidth
	wantHeight := cfg.ColumnBandHeight + 2*cfg.CellHeight
	if res.Dims.Width != wantWidth || res.Dims.Height != wantHeight {
		t.Errorf("pixel dims %dx%d, expected %dx%d", res.Dims.Width, res.Dims.Height, wantWidth, wantHeight)
	}
}

func TestBuildCellsEmpty(t *testing.T) {
	res := BuildCells(nil, "status", "team", models.DefaultGridConfig())
	if len(res.Cells) != 0 || res.Dims.Columns != 0 || res.Dims.Rows != 0 {
		t.Errorf("empty input produced non-empty grid: %+v", res.Dims)
	}
}
