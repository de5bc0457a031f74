package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/facetgrid/facetgrid-go/pkg/facetgrid"
	"github.com/facetgrid/facetgrid-go/pkg/facetgrid/interact"
	"github.com/facetgrid/facetgrid-go/pkg/facetgrid/layout"
	"github.com/facetgrid/facetgrid-go/pkg/facetgrid/models"
)

// styles
var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("8"))
	selectedStyle = lipgloss.NewStyle().Background(lipgloss.Color("4")).Foreground(lipgloss.Color("15"))
	previewStyle  = lipgloss.NewStyle().Background(lipgloss.Color("6")).Foreground(lipgloss.Color("0"))
	summaryStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// contentTop is the number of chrome lines above the grid. Pointer
// coordinates shift by this much before hit testing.
const contentTop = 1

// teaRenderer adapts the bubbletea program to the engine's renderer
// port. Text is measured in terminal cells, and redraw requests are
// satisfied by bubbletea's own render loop after each Update, so the
// redraw hook has nothing to do.
type teaRenderer struct{}

func (teaRenderer) RequestRedraw()           {}
func (teaRenderer) MeasureText(s string) int { return len([]rune(s)) }

type tuiModel struct {
	engine *facetgrid.Engine
	cfg    models.GridConfig
	width  int
	height int
	err    error

	resizing bool
	lassoing bool

	filterHeaderID string
	filterState    models.HeaderFilter

	status string
}

func runView(cmd *cobra.Command, args []string) error {
	cfg := tuiGridConfig()
	engine, err := buildEngine(args[0], cfg, facetgrid.WithRenderer(teaRenderer{}))
	if err != nil {
		return err
	}

	m := tuiModel{engine: engine, cfg: cfg}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

func (m tuiModel) Init() tea.Cmd { return nil }

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.engine.SetViewport(facetgrid.ViewportState{Width: msg.Width, Height: msg.Height})
		return m, nil
	case tea.KeyMsg:
		if m.filterHeaderID != "" {
			return m.updateFilterPanel(msg)
		}
		return m.updateKeys(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	}
	return m, nil
}

func (m tuiModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "c":
		m.engine.ClearSelection()
		m.status = "selection cleared"
	case "x":
		m.engine.ClearSort()
		m.status = "sort cleared"
	case "s":
		m.engine.SwapAxes()
		m.status = "axes swapped"
	case "esc":
		switch {
		case m.resizing:
			m.engine.CancelResize()
			m.resizing = false
			m.status = "resize cancelled"
		case m.lassoing:
			m.engine.CancelLasso()
			m.lassoing = false
			m.status = "lasso cancelled"
		default:
			m.engine.ClearSelection()
		}
	}
	return m, nil
}

// updateFilterPanel handles keys while the filter value list is open.
// Digits toggle values, enter applies, esc discards.
func (m tuiModel) updateFilterPanel(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := msg.String()
	switch s {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.filterHeaderID = ""
		m.status = "filter closed"
		return m, nil
	case "enter":
		m.engine.ApplyFilter(m.filterHeaderID)
		m.filterHeaderID = ""
		m.status = "filter applied: " + m.engine.CompilePredicate()
		return m, nil
	case "a":
		m.engine.SelectAllFilterValues(m.filterHeaderID)
	case "n":
		m.engine.ClearFilterValues(m.filterHeaderID)
	default:
		if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
			idx := int(s[0] - '1')
			if idx < len(m.filterState.AllValues) {
				m.engine.ToggleFilterValue(m.filterHeaderID, m.filterState.AllValues[idx])
			}
		}
	}
	state, err := m.engine.OpenFilter(m.filterHeaderID)
	if err == nil {
		m.filterState = state
	}
	return m, nil
}

func (m tuiModel) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Button != tea.MouseButtonLeft && msg.Action != tea.MouseActionMotion {
		return m, nil
	}
	px, py := msg.X, msg.Y-contentTop

	switch msg.Action {
	case tea.MouseActionPress:
		return m.mousePress(px, py, modifierFor(msg))
	case tea.MouseActionMotion:
		if m.resizing {
			size := m.engine.UpdateResize(m.resizePointer(px, py))
			m.status = fmt.Sprintf("resizing: %d", size)
		} else if m.lassoing {
			m.engine.UpdateLasso(px, py)
		} else if m.engine.AxisDragging() {
			if m.engine.AxisDragOverDrop(px, py) {
				m.status = "release to swap axes"
			} else {
				m.status = "dragging axis"
			}
		}
	case tea.MouseActionRelease:
		switch {
		case m.resizing:
			m.engine.EndResize()
			m.resizing = false
			m.status = "resize committed"
		case m.lassoing:
			m.engine.EndLasso()
			m.lassoing = false
			m.status = fmt.Sprintf("%d selected", len(m.engine.Selection().CellIDs))
		case m.engine.AxisDragging():
			if m.engine.DropAxisDrag(px, py) {
				m.status = "axes swapped"
			} else {
				m.status = ""
			}
		}
	}
	return m, nil
}

func (m tuiModel) mousePress(px, py int, mod interact.Modifier) (tea.Model, tea.Cmd) {
	hit := m.engine.HitTest(px, py)
	switch interact.ActionFor(hit.Zone) {
	case interact.ActionStartResize:
		if err := m.engine.StartResize(hit.Header.ID, m.resizePointerFor(hit.Header, px, py)); err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.resizing = true
		m.status = "resizing " + hit.Header.Value
	case interact.ActionOpenFilter:
		state, err := m.engine.OpenFilter(hit.Header.ID)
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.filterHeaderID = hit.Header.ID
		m.filterState = state
		m.status = "filter: " + hit.Header.Value
	case interact.ActionToggleCollapse:
		if err := m.engine.ToggleCollapse(hit.Header.ID); err != nil {
			m.status = err.Error()
		} else {
			m.status = "toggled " + hit.Header.Value
		}
	case interact.ActionSort:
		if err := m.engine.ClickHeader(hit.Header.ID, mod); err != nil {
			m.status = err.Error()
		} else {
			m.status = "sort: " + m.engine.CompileOrderBy()
		}
	case interact.ActionSelect:
		m.engine.ClickCell(hit.Cell.ID, mod)
		m.status = fmt.Sprintf("%d selected", len(m.engine.Selection().CellIDs))
	case interact.ActionNone:
		if err := m.engine.StartLasso(px, py); err == nil {
			m.lassoing = true
		}
	}
	return m, nil
}

// resizePointerFor picks the pointer coordinate along the resize axis.
func (m tuiModel) resizePointerFor(hd *models.HeaderDescriptor, px, py int) int {
	if hd.Orientation == models.OrientRow {
		return py
	}
	return px
}

func (m tuiModel) resizePointer(px, py int) int {
	hd := m.engine.HitTest(px, py).Header
	if hd != nil && hd.Orientation == models.OrientRow {
		return py
	}
	return px
}

func modifierFor(msg tea.MouseMsg) interact.Modifier {
	switch {
	case msg.Ctrl:
		return interact.ModCmdCtrl
	case msg.Shift:
		return interact.ModShift
	}
	return interact.ModNone
}

// ── View ────────────────────────────────────────────────────────────────

func (m tuiModel) View() string {
	if m.width == 0 {
		return "loading..."
	}

	var b strings.Builder
	axis := m.engine.AxisConfiguration()
	b.WriteString(titleStyle.Render(fmt.Sprintf(" facetgrid  %s × %s", axis.X.Facet, axis.Y.Facet)))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(" error: "+m.err.Error()) + "\n")
	}

	m.renderColumnBand(&b)
	m.renderRows(&b)
	m.renderSummary(&b)

	if m.filterHeaderID != "" {
		m.renderFilterPanel(&b)
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(statusStyle.Render(" " + m.status))
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render(" click select  drag lasso  header sort  s swap  c clear  q quit"))
	return b.String()
}

// renderColumnBand draws one line per header level, labels placed at
// their laid-out X positions.
func (m tuiModel) renderColumnBand(b *strings.Builder) {
	dims := m.engine.Dimensions()
	for line := 0; line < m.cfg.ColumnBandHeight; line++ {
		row := make([]rune, dims.Width)
		for i := range row {
			row[i] = ' '
		}
		for _, hd := range m.engine.ColumnHeaders() {
			if hd.Level != line {
				continue
			}
			label := hd.Value
			if !hd.IsLeaf {
				label = "▸ " + label
			}
			paintLabel(row, hd.Bounds.X, hd.Bounds.Width, label)
		}
		b.WriteString(headerStyle.Render(string(row)))
		b.WriteString("\n")
	}
}

// renderRows draws each grid row: leaf row-header label on the left,
// data cells to the right. Cells outside the visible extent are dimmed.
func (m tuiModel) renderRows(b *strings.Builder) {
	dims := m.engine.Dimensions()
	cells := m.engine.Cells()
	selection := m.engine.Selection()
	preview := m.engine.LassoPreview()

	visible := make(map[layout.GridCoord]bool)
	for _, c := range m.engine.VisibleCoords() {
		visible[c] = true
	}

	byCoord := make(map[layout.GridCoord]models.Cell, len(cells))
	for _, c := range cells {
		byCoord[layout.GridCoord{X: c.GridX, Y: c.GridY}] = c
	}

	rowLabels := make(map[int]string)
	for _, hd := range m.engine.RowHeaders() {
		if hd.IsLeaf {
			rowLabels[hd.StartIndex] = hd.Value
		}
	}

	for gy := 0; gy < dims.Rows; gy++ {
		label := fmt.Sprintf(" %-*s", m.cfg.RowBandWidth-1, truncate(rowLabels[gy], m.cfg.RowBandWidth-2))
		b.WriteString(headerStyle.Render(label))

		for gx := 0; gx < dims.Columns; gx++ {
			coord := layout.GridCoord{X: gx, Y: gy}
			cell, ok := byCoord[coord]
			var text string
			switch {
			case ok:
				text = fmt.Sprintf(" %d", cell.RecordCount)
			case visible[coord]:
				text = " ·"
			}
			text = fmt.Sprintf("%-*s", m.cfg.CellWidth, truncate(text, m.cfg.CellWidth))
			switch {
			case ok && preview[cell.ID]:
				b.WriteString(previewStyle.Render(text))
			case ok && selection.CellIDs[cell.ID]:
				b.WriteString(selectedStyle.Render(text))
			case !ok:
				b.WriteString(dimStyle.Render(text))
			default:
				b.WriteString(text)
			}
		}
		b.WriteString("\n")
		// second line of each cell row stays blank at this cell height
		for extra := 1; extra < m.cfg.CellHeight; extra++ {
			b.WriteString(strings.Repeat(" ", dims.Width))
			b.WriteString("\n")
		}
	}
}

func (m tuiModel) renderSummary(b *strings.Builder) {
	summary := m.engine.SummaryRow()
	if len(summary) == 0 {
		return
	}
	b.WriteString(summaryStyle.Render(fmt.Sprintf(" %-*s", m.cfg.RowBandWidth-1, "Σ")))
	for _, s := range summary {
		value := 0.0
		if s.Aggregate != nil {
			value = *s.Aggregate
		}
		width := m.cfg.CellWidth
		if s.XValue == "total" {
			width = m.cfg.GrandTotalWidth
		}
		b.WriteString(summaryStyle.Render(fmt.Sprintf(" %-*.0f", width-1, value)))
	}
	b.WriteString("\n")
}

func (m tuiModel) renderFilterPanel(b *strings.Builder) {
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(fmt.Sprintf(" filter: %s", m.filterState.Facet)))
	b.WriteString("\n")
	for i, v := range m.filterState.AllValues {
		if i >= 9 {
			b.WriteString(dimStyle.Render(" ..."))
			b.WriteString("\n")
			break
		}
		mark := "[ ]"
		if m.filterState.Selected[v] {
			mark = "[x]"
		}
		b.WriteString(fmt.Sprintf(" %d %s %s\n", i+1, mark, v))
	}
	b.WriteString(dimStyle.Render(" 1-9 toggle  a all  n none  enter apply  esc close"))
	b.WriteString("\n")
}

// paintLabel writes a truncated label into the row buffer at x, bounded
// by the span width and the buffer length.
func paintLabel(row []rune, x, width int, label string) {
	for i, r := range []rune(truncate(label, width-1)) {
		pos := x + i
		if pos < 0 || pos >= len(row) {
			return
		}
		row[pos] = r
	}
}

func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max == 1 {
		return "."
	}
	return string(r[:max-1]) + "."
}
