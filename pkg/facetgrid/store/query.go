package store

import "strings"

// Query is a query-shaped request handed to the record store: an
// ordering expression from the sort controller, a predicate expression
// from the filter controller, and optionally a grouping/aggregation
// expression from the density helper.
type Query struct {
	Select    string `json:"select,omitempty"`
	Predicate string `json:"predicate,omitempty"`
	GroupBy   string `json:"groupBy,omitempty"`
	OrderBy   string `json:"orderBy,omitempty"`
}

// IsZero reports whether the query carries no expression at all.
func (q Query) IsZero() bool {
	return q.Select == "" && q.Predicate == "" && q.GroupBy == "" && q.OrderBy == ""
}

// String renders the query in SQL-fragment form, mainly for logging and
// the error notification context.
func (q Query) String() string {
	var parts []string
	if q.Select != "" {
		parts = append(parts, "SELECT "+q.Select)
	}
	if q.Predicate != "" {
		parts = append(parts, "WHERE "+q.Predicate)
	}
	if q.GroupBy != "" {
		parts = append(parts, "GROUP BY "+q.GroupBy)
	}
	if q.OrderBy != "" {
		parts = append(parts, "ORDER BY "+q.OrderBy)
	}
	return strings.Join(parts, " ")
}

// DensityQuery builds the grouping/aggregation request for value-density
// collapsing: it substitutes the coarser grouping facet and injects
// count and average aggregates while preserving any existing predicate.
func DensityQuery(coarseFacet string, base Query) Query {
	q := base
	q.Select = coarseFacet + ", COUNT(*) AS record_count, AVG(value) AS avg_value"
	q.GroupBy = coarseFacet
	return q
}
