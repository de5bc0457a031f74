package models

// HeaderFilter is a per-header value-inclusion filter.
//
// A filter is active iff Selected is a proper non-empty subset of
// AllValues. A filter with everything selected restricts nothing.
type HeaderFilter struct {
	HeaderID string          `json:"headerId"`
	Facet    string          `json:"facet"`
	Selected map[string]bool `json:"selected"`
	// AllValues lists every distinct value for the facet, in the order
	// they were collected.
	AllValues []string `json:"allValues"`
}

// Active reports whether the filter actually restricts records.
func (f HeaderFilter) Active() bool {
	if len(f.Selected) == 0 {
		return false
	}
	selected := 0
	for _, v := range f.AllValues {
		if f.Selected[v] {
			selected++
		}
	}
	return selected > 0 && selected < len(f.AllValues)
}
