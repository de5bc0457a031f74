package models

// SortDirection is the per-level sort direction.
type SortDirection string

const (
	SortAsc  SortDirection = "ASC"
	SortDesc SortDirection = "DESC"
)

// SortLevel is one prioritized sort criterion.
type SortLevel struct {
	HeaderID  string        `json:"headerId"`
	Facet     string        `json:"facet"`
	Direction SortDirection `json:"direction"`
	// Priority is 1-based and contiguous across the level sequence.
	Priority int `json:"priority"`
}
