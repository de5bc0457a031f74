package interact

import (
	"strings"

	"github.com/facetgrid/facetgrid-go/pkg/facetgrid/models"
)

// headerFilter pairs the public filter state with its committed flag.
// Only applied filters contribute to the compiled predicate.
type headerFilter struct {
	models.HeaderFilter
	committed bool
}

// FilterController owns the per-header value-inclusion filters.
type FilterController struct {
	filters map[string]*headerFilter
	order   []string // first-open order, keeps compilation deterministic
	// onApply receives the full set of currently-active filters.
	onApply func([]models.HeaderFilter)
}

// NewFilterController creates an empty filter controller.
func NewFilterController(onApply func([]models.HeaderFilter)) *FilterController {
	return &FilterController{
		filters: make(map[string]*headerFilter),
		onApply: onApply,
	}
}

// Open lazily initializes the filter for a header on first dropdown open,
// with all distinct values selected (inactive by definition), and returns
// the current state.
func (c *FilterController) Open(headerID, facet string, allValues []string) models.HeaderFilter {
	f, ok := c.filters[headerID]
	if !ok {
		selected := make(map[string]bool, len(allValues))
		for _, v := range allValues {
			selected[v] = true
		}
		f = &headerFilter{HeaderFilter: models.HeaderFilter{
			HeaderID:  headerID,
			Facet:     facet,
			Selected:  selected,
			AllValues: append([]string{}, allValues...),
		}}
		c.filters[headerID] = f
		c.order = append(c.order, headerID)
	}
	return f.HeaderFilter
}

// ToggleValue flips a value's membership in the selected set.
func (c *FilterController) ToggleValue(headerID, value string) {
	f, ok := c.filters[headerID]
	if !ok {
		return
	}
	if f.Selected[value] {
		delete(f.Selected, value)
	} else {
		f.Selected[value] = true
	}
}

// SelectAll restores every value to the selected set, deactivating the
// filter.
func (c *FilterController) SelectAll(headerID string) {
	f, ok := c.filters[headerID]
	if !ok {
		return
	}
	for _, v := range f.AllValues {
		f.Selected[v] = true
	}
}

// Clear empties the selected set.
func (c *FilterController) Clear(headerID string) {
	f, ok := c.filters[headerID]
	if !ok {
		return
	}
	f.Selected = make(map[string]bool)
}

// Apply commits the filter and emits a filter-changed notification
// carrying all currently-active filters.
func (c *FilterController) Apply(headerID string) {
	f, ok := c.filters[headerID]
	if !ok {
		return
	}
	f.committed = true
	if c.onApply != nil {
		c.onApply(c.ActiveFilters())
	}
}

// ActiveFilters returns the applied filters whose selected set is a
// proper non-empty subset of all values, in first-open order.
func (c *FilterController) ActiveFilters() []models.HeaderFilter {
	var active []models.HeaderFilter
	for _, id := range c.order {
		f := c.filters[id]
		if f.committed && f.Active() {
			active = append(active, f.HeaderFilter)
		}
	}
	return active
}

// State returns the filter for a header, if initialized.
func (c *FilterController) State(headerID string) (models.HeaderFilter, bool) {
	f, ok := c.filters[headerID]
	if !ok {
		return models.HeaderFilter{}, false
	}
	return f.HeaderFilter, ok
}

// CompilePredicate builds the predicate expression from the active
// filters. One selected value compiles to an equality comparison, more
// than one to a set-membership comparison; filters join with AND. A
// filter that has all values selected, or was never applied, contributes
// nothing. Empty state compiles to an empty string.
func (c *FilterController) CompilePredicate() string {
	var clauses []string
	for _, f := range c.ActiveFilters() {
		// Selected values in AllValues order for determinism.
		var values []string
		for _, v := range f.AllValues {
			if f.Selected[v] {
				values = append(values, quoteValue(v))
			}
		}
		switch len(values) {
		case 0:
			continue
		case 1:
			clauses = append(clauses, f.Facet+" = "+values[0])
		default:
			clauses = append(clauses, f.Facet+" IN ("+strings.Join(values, ", ")+")")
		}
	}
	return strings.Join(clauses, " AND ")
}

// quoteValue embeds a string value in the predicate, doubling any
// embedded quote character.
func quoteValue(v string) string {
	return "'" + strings.ReplaceAll(v, "'", "''") + "'"
}
