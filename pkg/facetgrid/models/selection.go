package models

// SelectionMode records how the current selection was produced.
type SelectionMode string

const (
	SelectionNone   SelectionMode = "none"
	SelectionSingle SelectionMode = "single"
	SelectionToggle SelectionMode = "toggle"
	SelectionRange  SelectionMode = "range"
	SelectionMulti  SelectionMode = "multi"
)

// SelectionState is the current selection. Every id in the sets must
// exist among generated cells/headers; stale ids are pruned when the grid
// regenerates.
type SelectionState struct {
	CellIDs   map[string]bool `json:"cellIds"`
	HeaderIDs map[string]bool `json:"headerIds"`
	// AnchorID is the reference cell for range selection, empty when unset.
	AnchorID string        `json:"anchorId,omitempty"`
	Mode     SelectionMode `json:"mode"`
}

// NewSelectionState returns an empty selection.
func NewSelectionState() SelectionState {
	return SelectionState{
		CellIDs:   make(map[string]bool),
		HeaderIDs: make(map[string]bool),
		Mode:      SelectionNone,
	}
}

// SelectedCellIDs returns the selected cell ids as a slice. Order is not
// defined; callers needing determinism sort the result.
func (s SelectionState) SelectedCellIDs() []string {
	ids := make([]string, 0, len(s.CellIDs))
	for id := range s.CellIDs {
		ids = append(ids, id)
	}
	return ids
}

// IsEmpty reports whether nothing is selected.
func (s SelectionState) IsEmpty() bool {
	return len(s.CellIDs) == 0 && len(s.HeaderIDs) == 0
}
