// Package layout derives the sparse cell grid, hierarchical headers, and
// aggregation row from records and axis mappings.
package layout

// UnassignedValue is the sentinel substituted when a record lacks the
// axis facet. Missing values are never an error.
const UnassignedValue = "Unassigned"

// PathDelimiter separates the levels of a multi-level axis value,
// e.g. "Q1|Jan|Week 1".
const PathDelimiter = "|"

// CellIDSeparator joins the X and Y values into a cell identifier. Axis
// values never contain it because the path delimiter splits first.
const CellIDSeparator = "\x1f"
