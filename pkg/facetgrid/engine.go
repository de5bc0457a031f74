// Package facetgrid is an interactive grid layout and interaction
// engine: records plus two axis facet mappings derive a sparse 2-D cell
// grid with hierarchical headers, pointer input resolves to semantic
// zones, and selection, sort, filter, resize, and logical-position state
// stay consistent as the axis mapping or the data set changes.
//
// All operations are synchronous and single-threaded: they run to
// completion on the calling goroutine, and notifications are emitted
// only after regeneration has finished.
package facetgrid

import (
	"log/slog"
	"time"

	"github.com/facetgrid/facetgrid-go/pkg/facetgrid/interact"
	"github.com/facetgrid/facetgrid-go/pkg/facetgrid/layout"
	"github.com/facetgrid/facetgrid-go/pkg/facetgrid/models"
	"github.com/facetgrid/facetgrid-go/pkg/facetgrid/position"
	"github.com/facetgrid/facetgrid-go/pkg/facetgrid/store"
)

// opKind tracks the single in-progress pointer operation. Overlapping
// operations of different kinds are rejected, not queued.
type opKind int

const (
	opNone opKind = iota
	opResize
	opDrag
	opLasso
)

// ViewportState is the scroll position and size of the visible window.
type ViewportState struct {
	ScrollX int `json:"scrollX"`
	ScrollY int `json:"scrollY"`
	Width   int `json:"width"`
	Height  int `json:"height"`
}

// Engine composes the layout passes and interaction controllers. Each
// controller owns its state exclusively; everything else reads through
// accessors.
type Engine struct {
	cfg           models.GridConfig
	logger        *slog.Logger
	aggMode       layout.AggregationMode
	density       layout.ExtentDensity
	maxSortLevels int
	renderer      RendererPort

	records     []models.Record
	recordsByID map[string]models.Record
	axis        models.AxisConfiguration

	tracker   *position.Tracker
	selection *interact.SelectionController
	sorts     *interact.SortController
	filters   *interact.FilterController
	resizes   *interact.ResizeController
	drag      *interact.DragAxisController
	hit       *interact.HitZoneResolver

	cells      []models.Cell
	xValues    []string
	yValues    []string
	columnTree []*models.HeaderNode
	rowTree    []*models.HeaderNode
	columns    []models.HeaderDescriptor
	rows       []models.HeaderDescriptor
	summary    []layout.SummaryCell
	dims       models.GridDimensions

	sizes     map[string]int  // committed resize overrides by header id
	collapsed map[string]bool // progressive-disclosure state by header id
	viewport  ViewportState

	activeOp opKind

	dispatcher
	deferring bool
	deferred  []Event
}

// New creates an engine with the given options. The engine starts empty;
// call SetRecords or LoadFrom to populate it.
func New(opts ...Option) *Engine {
	e := &Engine{
		cfg:           models.DefaultGridConfig(),
		logger:        slog.Default(),
		aggMode:       layout.AggregationCount,
		density:       layout.DensityUltraSparse,
		maxSortLevels: interact.DefaultMaxSortLevels,
		renderer:      nullRenderer{},
		recordsByID:   make(map[string]models.Record),
		sizes:         make(map[string]int),
		collapsed:     make(map[string]bool),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.tracker = position.NewTracker(e.logger)
	e.selection = interact.NewSelectionController(e.cfg, func(s models.SelectionState) {
		e.emitOrDefer(Event{Kind: EventSelectionChanged, Selection: &s})
	})
	e.sorts = interact.NewSortController(e.maxSortLevels, func(levels []models.SortLevel) {
		e.emitOrDefer(Event{Kind: EventSortChanged, SortBy: levels})
	})
	e.filters = interact.NewFilterController(func(active []models.HeaderFilter) {
		e.emitOrDefer(Event{Kind: EventFilterChanged, Filters: active})
	})
	e.resizes = interact.NewResizeController(e.cfg.MinSize, nil)
	e.drag = interact.NewDragAxisController(e.cfg, func() { e.SwapAxes() })
	e.hit = interact.NewHitZoneResolver(e.cfg)
	return e
}

// ── Data and axis ───────────────────────────────────────────────────────

// SetRecords replaces the record set and regenerates the grid.
func (e *Engine) SetRecords(records []models.Record) {
	e.records = records
	e.recordsByID = make(map[string]models.Record, len(records))
	for _, r := range records {
		e.recordsByID[r.ID] = r
	}
	e.regenerate(EventDataChanged)
}

// LoadFrom pulls records from a store source. A source failure is
// surfaced once as an error notification naming the failing operation
// and is not retried.
func (e *Engine) LoadFrom(src store.Source) error {
	records, err := src.Records()
	if err != nil {
		e.emit(Event{Kind: EventError, Error: &ErrorInfo{Kind: "data-source", Context: "load"}})
		return NewEngineError("store", "load", err)
	}
	e.SetRecords(records)
	return nil
}

// SetAxisConfiguration replaces the axis mapping and regenerates.
func (e *Engine) SetAxisConfiguration(axis models.AxisConfiguration) {
	e.axis = axis
	e.regenerate(EventAxisChanged)
}

// SwapAxes exchanges the X and Y mappings.
func (e *Engine) SwapAxes() {
	e.axis = e.axis.Swapped()
	e.regenerate(EventAxisChanged)
}

// AxisConfiguration returns the current axis mapping.
func (e *Engine) AxisConfiguration() models.AxisConfiguration { return e.axis }

// regenerate rebuilds cells, headers, and the summary row, reconciles
// controller state against the new grid, and only then emits
// notifications: the change event first, deferred controller events
// next, render-complete last.
func (e *Engine) regenerate(kind EventKind) {
	start := time.Now()
	e.deferring = true

	res := e.tracker.RecalculateAll(e.records, e.axis, e.cfg)
	e.cells = res.Cells
	e.xValues = res.XValues
	e.yValues = res.YValues
	e.dims = res.Dims

	e.columnTree = layout.BuildHeaderTree(res.XValues)
	e.rowTree = layout.BuildHeaderTree(res.YValues)
	e.markCollapsed(e.columnTree)
	e.markCollapsed(e.rowTree)
	e.columns = layout.FlattenHeaders(e.columnTree, models.OrientColumn, e.cfg)
	e.rows = layout.FlattenHeaders(e.rowTree, models.OrientRow, e.cfg)
	e.summary = layout.BuildSummaryRow(e.cells, e.columns, e.recordsByID, e.aggMode, e.cfg)

	e.selection.Reconcile(e.cells)
	e.sorts.Prune(e.headerExists)

	e.deferring = false
	e.emit(Event{Kind: kind, Cells: e.cells, Axis: &e.axis})
	for _, ev := range e.deferred {
		e.emit(ev)
	}
	e.deferred = nil
	e.emit(Event{Kind: EventRenderComplete, Render: &RenderStats{
		Duration:  time.Since(start),
		CellCount: len(e.cells),
	}})
	e.renderer.RequestRedraw()
}

func (e *Engine) markCollapsed(nodes []*models.HeaderNode) {
	for _, n := range nodes {
		n.Collapsed = e.collapsed[n.ID]
		e.markCollapsed(n.Children)
	}
}

func (e *Engine) emitOrDefer(ev Event) {
	if e.deferring {
		e.deferred = append(e.deferred, ev)
		return
	}
	e.emit(ev)
}

// ── Accessors ───────────────────────────────────────────────────────────

// Cells returns the current data cells.
func (e *Engine) Cells() []models.Cell { return e.cells }

// SummaryRow returns the aggregation row, empty when disabled.
func (e *Engine) SummaryRow() []layout.SummaryCell { return e.summary }

// ColumnHeaders and RowHeaders return the flattened header descriptors.
func (e *Engine) ColumnHeaders() []models.HeaderDescriptor { return e.columns }
func (e *Engine) RowHeaders() []models.HeaderDescriptor    { return e.rows }

// ColumnTree and RowTree return the nested header trees.
func (e *Engine) ColumnTree() []*models.HeaderNode { return e.columnTree }
func (e *Engine) RowTree() []*models.HeaderNode    { return e.rowTree }

// Dimensions returns the current grid dimensions.
func (e *Engine) Dimensions() models.GridDimensions { return e.dims }

// Selection returns the current selection state.
func (e *Engine) Selection() models.SelectionState { return e.selection.State() }

// SortLevels returns the current sort levels in priority order.
func (e *Engine) SortLevels() []models.SortLevel { return e.sorts.Levels() }

// ActiveFilters returns the applied, restricting filters.
func (e *Engine) ActiveFilters() []models.HeaderFilter { return e.filters.ActiveFilters() }

// Viewport returns the viewport state; SetViewport replaces it.
func (e *Engine) Viewport() ViewportState { return e.viewport }

func (e *Engine) SetViewport(vp ViewportState) { e.viewport = vp }

// CollapsedHeaders returns the ids collapsed by progressive disclosure.
func (e *Engine) CollapsedHeaders() []string {
	ids := make([]string, 0, len(e.collapsed))
	for id, c := range e.collapsed {
		if c {
			ids = append(ids, id)
		}
	}
	return ids
}

// VisibleCoords returns the grid positions to display under the
// configured extent density.
func (e *Engine) VisibleCoords() []layout.GridCoord {
	return layout.VisibleCoords(e.cells, e.dims.Columns, e.dims.Rows, e.density)
}

// HeaderSize returns the committed size override for a header, or its
// laid-out size along the resize axis.
func (e *Engine) HeaderSize(headerID string) (int, error) {
	if size, ok := e.sizes[headerID]; ok {
		return size, nil
	}
	hd, ok := e.headerByID(headerID)
	if !ok {
		return 0, ErrUnknownHeader
	}
	if hd.Orientation == models.OrientRow {
		return hd.Bounds.Height, nil
	}
	return hd.Bounds.Width, nil
}

// ── Hit testing ─────────────────────────────────────────────────────────

// HitTest resolves a pointer point to its semantic zone.
func (e *Engine) HitTest(px, py int) interact.HitResult {
	return e.hit.Resolve(px, py, e.columns, e.rows, e.cells, e.dims)
}

// CursorAt returns the cursor style for a point. While a resize is in
// progress it stays the resize cursor regardless of the zone underneath.
func (e *Engine) CursorAt(px, py int) interact.CursorStyle {
	if e.activeOp == opResize {
		return interact.CursorResize
	}
	return interact.CursorFor(e.HitTest(px, py).Zone)
}

// ── Selection ───────────────────────────────────────────────────────────

// ClickCell dispatches a cell click by modifier: plain → single,
// cmd/ctrl → toggle, shift → range (no-op without an anchor). A click on
// a since-removed id degrades to an empty selection for that operand.
func (e *Engine) ClickCell(id string, mod interact.Modifier) {
	e.selection.HandleClick(id, mod)
}

// SelectSingle, ToggleSelect, SelectRange, SelectMultiple, and
// ClearSelection mirror the selection controller operations.
func (e *Engine) SelectSingle(id string)      { e.selection.SelectSingle(id) }
func (e *Engine) ToggleSelect(id string)      { e.selection.Toggle(id) }
func (e *Engine) SelectRange(toID string)     { e.selection.SelectRange(toID) }
func (e *Engine) SelectMultiple(ids []string) { e.selection.SelectMultiple(ids) }
func (e *Engine) ClearSelection()             { e.selection.Clear() }

// StartLasso begins a lasso drag. It fails while another pointer
// operation is active.
func (e *Engine) StartLasso(px, py int) error {
	if e.activeOp != opNone {
		return ErrOperationActive
	}
	if !e.selection.StartLasso(px, py) {
		return ErrOperationActive
	}
	e.activeOp = opLasso
	return nil
}

// UpdateLasso extends the drag rectangle and refreshes the preview.
func (e *Engine) UpdateLasso(px, py int) {
	e.selection.UpdateLasso(px, py)
	e.renderer.RequestRedraw()
}

// LassoPreview returns the live preview set of the active lasso.
func (e *Engine) LassoPreview() map[string]bool { return e.selection.LassoPreview() }

// EndLasso commits the preview as a multi selection.
func (e *Engine) EndLasso() {
	e.selection.EndLasso()
	e.activeOp = opNone
}

// CancelLasso discards the drag without mutating the selection.
func (e *Engine) CancelLasso() {
	e.selection.CancelLasso()
	e.activeOp = opNone
}

// ── Sort ────────────────────────────────────────────────────────────────

// ClickHeader dispatches a header-body click to the sort controller:
// plain clicks cycle/replace, modifier clicks append or toggle a
// secondary level.
func (e *Engine) ClickHeader(headerID string, mod interact.Modifier) error {
	facet, ok := e.facetForHeader(headerID)
	if !ok {
		return ErrUnknownHeader
	}
	if mod == interact.ModCmdCtrl || mod == interact.ModShift {
		e.sorts.ModifierClick(headerID, facet)
	} else {
		e.sorts.Click(headerID, facet)
	}
	return nil
}

// ClearSort drops all sort levels.
func (e *Engine) ClearSort() { e.sorts.Clear() }

// CompileOrderBy builds the ordering expression for the record store.
func (e *Engine) CompileOrderBy() string { return e.sorts.CompileOrderBy() }

// ── Filter ──────────────────────────────────────────────────────────────

// OpenFilter lazily initializes the header's filter with all distinct
// facet values selected and returns its state.
func (e *Engine) OpenFilter(headerID string) (models.HeaderFilter, error) {
	facet, ok := e.facetForHeader(headerID)
	if !ok {
		return models.HeaderFilter{}, ErrUnknownHeader
	}
	values := e.xValues
	if hd, found := e.headerByID(headerID); found && hd.Orientation == models.OrientRow {
		values = e.yValues
	}
	return e.filters.Open(headerID, facet, values), nil
}

// ToggleFilterValue, SelectAllFilterValues, ClearFilterValues, and
// ApplyFilter mirror the filter controller operations.
func (e *Engine) ToggleFilterValue(headerID, value string) { e.filters.ToggleValue(headerID, value) }
func (e *Engine) SelectAllFilterValues(headerID string)    { e.filters.SelectAll(headerID) }
func (e *Engine) ClearFilterValues(headerID string)        { e.filters.Clear(headerID) }
func (e *Engine) ApplyFilter(headerID string)              { e.filters.Apply(headerID) }

// CompilePredicate builds the predicate expression for the record store.
func (e *Engine) CompilePredicate() string { return e.filters.CompilePredicate() }

// BuildQuery combines the compiled ordering and predicate expressions.
func (e *Engine) BuildQuery() store.Query {
	return store.Query{
		Predicate: e.CompilePredicate(),
		OrderBy:   e.CompileOrderBy(),
	}
}

// DensityQuery builds the value-density collapsing request for a coarser
// grouping facet, preserving the current predicate.
func (e *Engine) DensityQuery(coarseFacet string) store.Query {
	return store.DensityQuery(coarseFacet, e.BuildQuery())
}

// ── Resize ──────────────────────────────────────────────────────────────

// StartResize begins a resize gesture on a header. It fails while
// another pointer operation is active or the header is unknown.
func (e *Engine) StartResize(headerID string, originPointer int) error {
	if e.activeOp != opNone {
		return ErrOperationActive
	}
	hd, ok := e.headerByID(headerID)
	if !ok {
		return ErrUnknownHeader
	}
	if !e.resizes.Start(hd, originPointer) {
		return ErrOperationActive
	}
	e.activeOp = opResize
	return nil
}

// UpdateResize reports the live clamped size without committing.
func (e *Engine) UpdateResize(pointer int) int {
	size := e.resizes.Update(pointer)
	e.renderer.RequestRedraw()
	return size
}

// EndResize commits the size and clears the gesture.
func (e *Engine) EndResize() {
	if id, size, ok := e.resizes.End(); ok {
		e.sizes[id] = size
	}
	e.activeOp = opNone
	e.renderer.RequestRedraw()
}

// CancelResize restores the starting size.
func (e *Engine) CancelResize() {
	e.resizes.Cancel()
	e.activeOp = opNone
	e.renderer.RequestRedraw()
}

// BulkResize applies a ratio to every header at the given level of an
// orientation and commits the resulting sizes.
func (e *Engine) BulkResize(orient models.Orientation, level int, ratio float64) map[string]int {
	headers := e.columns
	if orient == models.OrientRow {
		headers = e.rows
	}
	var siblings []models.HeaderDescriptor
	for _, h := range headers {
		if h.Level == level {
			siblings = append(siblings, h)
		}
	}
	sizes := e.resizes.BulkResize(siblings, ratio)
	for id, size := range sizes {
		e.sizes[id] = size
	}
	e.renderer.RequestRedraw()
	return sizes
}

// AutoFit sizes a column header to its widest content: the maximum of
// the measured label width and every member cell's primary text, plus
// padding, floored at the minimum size.
func (e *Engine) AutoFit(headerID string) (int, error) {
	hd, ok := e.headerByID(headerID)
	if !ok {
		return 0, ErrUnknownHeader
	}
	var texts []string
	for _, c := range e.cells {
		if c.GridX < hd.StartIndex || c.GridX > hd.EndIndex {
			continue
		}
		for _, rid := range c.RecordIDs {
			texts = append(texts, e.recordsByID[rid].Title)
		}
	}
	size := e.resizes.AutoFit(hd.Value, texts, e.renderer.MeasureText, e.cfg.AutoFitPadding)
	e.sizes[headerID] = size
	e.renderer.RequestRedraw()
	return size, nil
}

// ── Axis drag ───────────────────────────────────────────────────────────

// StartAxisDrag begins a header drag toward the opposite axis. It fails
// while another pointer operation is active or the point is outside both
// header bands.
func (e *Engine) StartAxisDrag(px, py int) error {
	if e.activeOp != opNone {
		return ErrOperationActive
	}
	if !e.drag.Start(px, py, e.dims) {
		return ErrUnknownHeader
	}
	e.activeOp = opDrag
	return nil
}

// AxisDragOverDrop reports whether the point is over the opposite
// axis's drop region, for live feedback.
func (e *Engine) AxisDragOverDrop(px, py int) bool {
	return e.drag.OverDropRegion(px, py, e.dims)
}

// DropAxisDrag ends the drag, swapping the axes when dropped inside the
// opposite region. Dropping anywhere else is a no-op.
func (e *Engine) DropAxisDrag(px, py int) bool {
	e.activeOp = opNone
	return e.drag.Drop(px, py, e.dims)
}

// CancelAxisDrag discards the drag.
func (e *Engine) CancelAxisDrag() {
	e.drag.Cancel()
	e.activeOp = opNone
}

// AxisDragging reports whether an axis drag is in progress, and
// AxisDragSource its origin axis.
func (e *Engine) AxisDragging() bool          { return e.drag.IsDragging() }
func (e *Engine) AxisDragSource() models.Axis { return e.drag.SourceAxis() }

// ── Progressive disclosure ──────────────────────────────────────────────

// ToggleCollapse flips a header node's collapsed flag and regenerates.
func (e *Engine) ToggleCollapse(headerID string) error {
	if _, ok := e.headerByID(headerID); !ok {
		return ErrUnknownHeader
	}
	e.collapsed[headerID] = !e.collapsed[headerID]
	e.regenerate(EventDataChanged)
	return nil
}

// ── Persistence ─────────────────────────────────────────────────────────

// PositionSnapshot exports the persisted state: cached logical positions
// plus custom per-group sort orders.
func (e *Engine) PositionSnapshot() models.GridSnapshot { return e.tracker.Snapshot() }

// RestorePositionSnapshot restores persisted state and regenerates. A
// malformed payload is discarded with a warning, leaving in-memory state
// untouched.
func (e *Engine) RestorePositionSnapshot(s models.GridSnapshot) error {
	if err := e.tracker.RestoreSnapshot(s); err != nil {
		e.emit(Event{Kind: EventError, Error: &ErrorInfo{Kind: "snapshot", Context: "restore"}})
		return err
	}
	e.regenerate(EventDataChanged)
	return nil
}

// SetCustomOrder records an explicit record ordering for a cell group
// and regenerates.
func (e *Engine) SetCustomOrder(groupKey string, orderedIDs []string) {
	e.tracker.SetCustomOrder(groupKey, orderedIDs)
	e.regenerate(EventDataChanged)
}

// ResolvePosition maps a logical position to its grid coordinate, or
// (-1, -1) when unresolvable.
func (e *Engine) ResolvePosition(p models.CardPosition) (int, int) {
	return e.tracker.Resolve(p)
}

// ── Internal lookups ────────────────────────────────────────────────────

func (e *Engine) headerByID(id string) (models.HeaderDescriptor, bool) {
	for _, h := range e.columns {
		if h.ID == id {
			return h, true
		}
	}
	for _, h := range e.rows {
		if h.ID == id {
			return h, true
		}
	}
	return models.HeaderDescriptor{}, false
}

func (e *Engine) headerExists(id string) bool {
	_, ok := e.headerByID(id)
	return ok
}

// facetForHeader resolves the facet a header sorts and filters by: the
// X-axis facet for column headers, the Y-axis facet for row headers.
func (e *Engine) facetForHeader(headerID string) (string, bool) {
	hd, ok := e.headerByID(headerID)
	if !ok {
		return "", false
	}
	if hd.Orientation == models.OrientRow {
		return e.axis.Y.Facet, true
	}
	return e.axis.X.Facet, true
}
