// Package models defines the data structures shared by the facetgrid engine.
package models

// Record is a single user row as seen by the engine. The core fields are
// fixed; any facet the engine does not know about lives in Facets. Records
// are normalized at the store boundary and read-only inside the engine.
type Record struct {
	// ID is the stable record identifier.
	ID string `json:"id"`
	// Title is the record's primary display text.
	Title string `json:"title,omitempty"`
	// Value is the record's numeric measure, used by sum/avg aggregation.
	Value float64 `json:"value,omitempty"`
	// Facets maps facet name to stringified value.
	Facets map[string]string `json:"facets,omitempty"`
}

// Facet returns the named facet value, or "" when the record lacks it.
func (r Record) Facet(name string) string {
	if r.Facets == nil {
		return ""
	}
	return r.Facets[name]
}

// AxisKind is one of the fixed taxonomy of grid dimension kinds.
type AxisKind string

const (
	KindCategory AxisKind = "category"
	KindTime     AxisKind = "time"
	KindStatus   AxisKind = "status"
	KindPerson   AxisKind = "person"
	KindPriority AxisKind = "priority"
)

// Axis identifies one of the grid axes.
type Axis string

const (
	AxisX Axis = "x"
	AxisY Axis = "y"
	AxisZ Axis = "z"
)

// Opposite returns the other planar axis. Z has no opposite and is
// returned unchanged.
func (a Axis) Opposite() Axis {
	switch a {
	case AxisX:
		return AxisY
	case AxisY:
		return AxisX
	}
	return a
}

// AxisMapping assigns a record facet to a grid dimension kind.
type AxisMapping struct {
	// Kind is the dimension kind assigned to the axis.
	Kind AxisKind `json:"kind"`
	// Facet is the record field sorted/grouped along the axis.
	// Empty means the axis carries no grouping facet.
	Facet string `json:"facet,omitempty"`
}

// AxisConfiguration is the full axis state of the grid: the X and Y
// mappings plus the origin-pattern flag.
type AxisConfiguration struct {
	X             AxisMapping `json:"x"`
	Y             AxisMapping `json:"y"`
	OriginPattern bool        `json:"originPattern,omitempty"`
}

// Swapped returns the configuration with the X and Y mappings exchanged.
func (c AxisConfiguration) Swapped() AxisConfiguration {
	c.X, c.Y = c.Y, c.X
	return c
}

// AxisValue is a record's logical coordinate on a single axis: the
// dimension kind, the facet it was derived from, and the facet value.
type AxisValue struct {
	Kind  AxisKind `json:"kind"`
	Facet string   `json:"facet,omitempty"`
	Value string   `json:"value"`
}
