package facetgrid

import (
	"errors"
	"io"
	"log/slog"
	"reflect"
	"testing"

	"github.com/facetgrid/facetgrid-go/pkg/facetgrid/interact"
	"github.com/facetgrid/facetgrid-go/pkg/facetgrid/layout"
	"github.com/facetgrid/facetgrid-go/pkg/facetgrid/models"
	"github.com/facetgrid/facetgrid-go/pkg/facetgrid/store"
)

func testAxis() models.AxisConfiguration {
	return models.AxisConfiguration{
		X: models.AxisMapping{Kind: models.KindStatus, Facet: "status"},
		Y: models.AxisMapping{Kind: models.KindCategory, Facet: "team"},
	}
}

func testRecords() []models.Record {
	mk := func(id, status, team string, value float64) models.Record {
		return models.Record{
			ID: id, Title: "card " + id, Value: value,
			Facets: map[string]string{"status": status, "team": team},
		}
	}
	return []models.Record{
		mk("1", "backlog", "core", 10),
		mk("2", "backlog", "core", 20),
		mk("3", "backlog", "core", 30),
		mk("4", "doing", "core", 5),
		mk("5", "doing", "core", 15),
		mk("6", "done", "core", 100),
	}
}

func newTestEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	base := []Option{
		WithAxisConfiguration(testAxis()),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	}
	e := New(append(base, opts...)...)
	e.SetRecords(testRecords())
	return e
}

func TestEngineBuildsGrid(t *testing.T) {
	e := newTestEngine(t)

	cells := e.Cells()
	if len(cells) != 3 {
		t.Fatalf("expected 3 cells, got %d", len(cells))
	}
	wantCounts := []int{3, 2, 1} // backlog, doing, done
	for i, c := range cells {
		if c.RecordCount != wantCounts[i] {
			t.Errorf("cell %d: count %d, expected %d", i, c.RecordCount, wantCounts[i])
		}
	}

	dims := e.Dimensions()
	if dims.Columns != 3 || dims.Rows != 1 {
		t.Errorf("dims %dx%d, expected 3x1", dims.Columns, dims.Rows)
	}

	summary := e.SummaryRow()
	if len(summary) != 4 {
		t.Fatalf("summary cells %d, expected 3 columns + total", len(summary))
	}
	if *summary[3].Aggregate != 6 {
		t.Errorf("grand total %v, expected 6", *summary[3].Aggregate)
	}
}

func TestLoadFromSource(t *testing.T) {
	e := New(
		WithAxisConfiguration(testAxis()),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	if err := e.LoadFrom(store.SliceSource(testRecords())); err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if len(e.Cells()) != 3 {
		t.Errorf("cells %d, expected 3", len(e.Cells()))
	}
}

type failingSource struct{}

func (failingSource) Records() ([]models.Record, error) {
	return nil, errors.New("connection refused")
}

func TestLoadFromFailureEmitsOnce(t *testing.T) {
	e := New(
		WithAxisConfiguration(testAxis()),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	var errEvents []Event
	e.Subscribe(func(ev Event) {
		if ev.Kind == EventError {
			errEvents = append(errEvents, ev)
		}
	})

	err := e.LoadFrom(failingSource{})
	if err == nil {
		t.Fatal("expected a load error")
	}
	var ee *EngineError
	if !errors.As(err, &ee) || ee.Component != "store" {
		t.Errorf("err = %v, expected a store-component engine error", err)
	}
	if len(errEvents) != 1 || errEvents[0].Error.Context != "load" {
		t.Errorf("error events %+v, expected one naming the load operation", errEvents)
	}
}

func TestNotificationOrdering(t *testing.T) {
	e := newTestEngine(t)

	doneID := layout.CellID("done", "core")
	e.ClickCell(doneID, interact.ModNone)

	var kinds []EventKind
	e.Subscribe(func(ev Event) { kinds = append(kinds, ev.Kind) })

	// Removing the selected cell's records defers the selection prune
	// until after regeneration completes.
	e.SetRecords(testRecords()[:5])

	want := []EventKind{EventDataChanged, EventSelectionChanged, EventRenderComplete}
	if !reflect.DeepEqual(kinds, want) {
		t.Errorf("event order %v, expected %v", kinds, want)
	}
	if len(e.Selection().CellIDs) != 0 {
		t.Error("stale selection survived regeneration")
	}
}

func TestEventPayloadIsCopied(t *testing.T) {
	e := newTestEngine(t)

	var got *models.SelectionState
	e.Subscribe(func(ev Event) {
		if ev.Kind == EventSelectionChanged {
			got = ev.Selection
		}
	})

	id := layout.CellID("backlog", "core")
	e.ClickCell(id, interact.ModNone)
	if got == nil || !got.CellIDs[id] {
		t.Fatalf("selection event payload %+v", got)
	}

	// Mutating the payload must not reach engine state.
	got.CellIDs["injected"] = true
	if e.Selection().CellIDs["injected"] {
		t.Error("event payload aliases controller state")
	}
}

func TestPointerOperationGating(t *testing.T) {
	e := newTestEngine(t)
	headerID := e.ColumnHeaders()[0].ID

	if err := e.StartLasso(200, 100); err != nil {
		t.Fatalf("StartLasso: %v", err)
	}
	if err := e.StartResize(headerID, 300); !errors.Is(err, ErrOperationActive) {
		t.Errorf("resize during lasso: %v, expected ErrOperationActive", err)
	}
	if err := e.StartAxisDrag(200, 10); !errors.Is(err, ErrOperationActive) {
		t.Errorf("drag during lasso: %v, expected ErrOperationActive", err)
	}
	e.EndLasso()

	if err := e.StartResize(headerID, 300); err != nil {
		t.Fatalf("StartResize after lasso ended: %v", err)
	}
	if err := e.StartLasso(0, 0); !errors.Is(err, ErrOperationActive) {
		t.Errorf("lasso during resize: %v, expected ErrOperationActive", err)
	}
	// Cursor stays the resize cursor over any zone while resizing.
	if got := e.CursorAt(5000, 5000); got != interact.CursorResize {
		t.Errorf("cursor during resize %q, expected resize", got)
	}
	e.CancelResize()
	if got := e.CursorAt(5000, 5000); got == interact.CursorResize {
		t.Error("resize cursor persisted after cancel")
	}
}

func TestResizeCommit(t *testing.T) {
	e := newTestEngine(t)
	headerID := e.ColumnHeaders()[0].ID

	if err := e.StartResize(headerID, 300); err != nil {
		t.Fatalf("StartResize: %v", err)
	}
	if got := e.UpdateResize(340); got != models.DefaultGridConfig().CellWidth+40 {
		t.Errorf("live size %d", got)
	}
	e.EndResize()

	size, err := e.HeaderSize(headerID)
	if err != nil || size != models.DefaultGridConfig().CellWidth+40 {
		t.Errorf("committed size = (%d, %v)", size, err)
	}

	if _, err := e.HeaderSize("missing"); !errors.Is(err, ErrUnknownHeader) {
		t.Errorf("unknown header size err = %v", err)
	}
}

func TestSwapAxesTransposesGrid(t *testing.T) {
	e := newTestEngine(t)
	e.SwapAxes()

	axis := e.AxisConfiguration()
	if axis.X.Facet != "team" || axis.Y.Facet != "status" {
		t.Errorf("axis after swap: %s/%s", axis.X.Facet, axis.Y.Facet)
	}
	dims := e.Dimensions()
	if dims.Columns != 1 || dims.Rows != 3 {
		t.Errorf("dims %dx%d after swap, expected 1x3", dims.Columns, dims.Rows)
	}
}

func TestClickHeaderSortCycle(t *testing.T) {
	e := newTestEngine(t)
	headerID := e.ColumnHeaders()[0].ID

	if err := e.ClickHeader(headerID, interact.ModNone); err != nil {
		t.Fatalf("ClickHeader: %v", err)
	}
	if got := e.CompileOrderBy(); got != "status ASC" {
		t.Errorf("order by %q, expected %q", got, "status ASC")
	}

	e.ClickHeader(headerID, interact.ModNone)
	if got := e.CompileOrderBy(); got != "status DESC" {
		t.Errorf("order by %q, expected %q", got, "status DESC")
	}

	e.ClickHeader(headerID, interact.ModNone)
	if got := e.CompileOrderBy(); got != "" {
		t.Errorf("order by %q, expected empty after full cycle", got)
	}

	if err := e.ClickHeader("missing", interact.ModNone); !errors.Is(err, ErrUnknownHeader) {
		t.Errorf("unknown header click err = %v", err)
	}
}

func TestFilterFlowAndQuery(t *testing.T) {
	e := newTestEngine(t)

	f, err := e.OpenFilter("done")
	if err != nil {
		t.Fatalf("OpenFilter: %v", err)
	}
	if !reflect.DeepEqual(f.AllValues, []string{"backlog", "doing", "done"}) {
		t.Fatalf("filter values %v", f.AllValues)
	}

	e.ToggleFilterValue("done", "backlog")
	e.ApplyFilter("done")

	if got := e.CompilePredicate(); got != "status IN ('doing', 'done')" {
		t.Errorf("predicate %q", got)
	}

	e.ClickHeader("done", interact.ModNone)
	q := e.BuildQuery()
	if q.Predicate != "status IN ('doing', 'done')" || q.OrderBy != "status ASC" {
		t.Errorf("query %+v", q)
	}

	dq := e.DensityQuery("month")
	if dq.GroupBy != "month" || dq.Predicate != q.Predicate {
		t.Errorf("density query %+v", dq)
	}
}

func TestToggleCollapse(t *testing.T) {
	e := newTestEngine(t)

	if err := e.ToggleCollapse("missing"); !errors.Is(err, ErrUnknownHeader) {
		t.Errorf("unknown header collapse err = %v", err)
	}

	if err := e.ToggleCollapse("backlog"); err != nil {
		t.Fatalf("ToggleCollapse: %v", err)
	}
	if got := e.CollapsedHeaders(); len(got) != 1 || got[0] != "backlog" {
		t.Errorf("collapsed headers %v", got)
	}
	e.ToggleCollapse("backlog")
	if got := e.CollapsedHeaders(); len(got) != 0 {
		t.Errorf("collapsed headers after re-expand %v", got)
	}
}

func TestPositionSnapshotRoundtrip(t *testing.T) {
	e := newTestEngine(t)
	snap := e.PositionSnapshot()
	if len(snap.Positions) != len(testRecords()) {
		t.Fatalf("snapshot positions %d", len(snap.Positions))
	}

	restored := newTestEngine(t)
	if err := restored.RestorePositionSnapshot(snap); err != nil {
		t.Fatalf("RestorePositionSnapshot: %v", err)
	}
}

func TestRestoreMalformedSnapshot(t *testing.T) {
	e := newTestEngine(t)

	var errEvents []Event
	e.Subscribe(func(ev Event) {
		if ev.Kind == EventError {
			errEvents = append(errEvents, ev)
		}
	})

	err := e.RestorePositionSnapshot(models.GridSnapshot{})
	if !errors.Is(err, ErrMalformedSnapshot) {
		t.Errorf("err = %v, expected ErrMalformedSnapshot", err)
	}
	if len(errEvents) != 1 || errEvents[0].Error.Context != "restore" {
		t.Errorf("error events %+v", errEvents)
	}
	// Prior positions intact.
	if len(e.PositionSnapshot().Positions) != len(testRecords()) {
		t.Error("prior positions discarded on rejected restore")
	}
}

func TestAxisDragSwap(t *testing.T) {
	e := newTestEngine(t)

	// Start in the column band, drop in the row band.
	if err := e.StartAxisDrag(200, 10); err != nil {
		t.Fatalf("StartAxisDrag: %v", err)
	}
	if !e.AxisDragOverDrop(50, 100) {
		t.Error("row band not a drop region for a column drag")
	}
	if !e.DropAxisDrag(50, 100) {
		t.Error("drop in the opposite band did not swap")
	}
	if e.AxisConfiguration().X.Facet != "team" {
		t.Errorf("axis X %q after drop, expected team", e.AxisConfiguration().X.Facet)
	}
}

func TestHitTestIntegration(t *testing.T) {
	e := newTestEngine(t)
	cfg := models.DefaultGridConfig()

	// Centre of cell (0,0).
	hit := e.HitTest(cfg.RowBandWidth+cfg.CellWidth/2, cfg.ColumnBandHeight+cfg.CellHeight/2)
	if hit.Zone != interact.ZoneDataCell || hit.Cell == nil {
		t.Fatalf("hit = %+v, expected the backlog data cell", hit)
	}
	if hit.Cell.XValue != "backlog" {
		t.Errorf("cell value %q", hit.Cell.XValue)
	}

	// Column header body.
	hit = e.HitTest(cfg.RowBandWidth+10, 10)
	if hit.Zone != interact.ZoneChildBody || hit.Header == nil || hit.Header.ID != "backlog" {
		t.Errorf("header hit = %+v", hit)
	}
}

func TestViewSnapshot(t *testing.T) {
	e := newTestEngine(t)
	v := e.View()
	if len(v.Cells) != 3 || len(v.Columns) != 3 || len(v.Rows) != 1 {
		t.Errorf("view = %d cells, %d columns, %d rows", len(v.Cells), len(v.Columns), len(v.Rows))
	}
	if v.Axis.X.Facet != "status" {
		t.Errorf("view axis %q", v.Axis.X.Facet)
	}
}
