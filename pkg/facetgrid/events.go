package facetgrid

import (
	"time"

	"github.com/tiendc/go-deepcopy"

	"github.com/facetgrid/facetgrid-go/pkg/facetgrid/models"
)

// EventKind names a notification emitted to the renderer/UI layer.
type EventKind string

const (
	EventDataChanged      EventKind = "data-changed"
	EventAxisChanged      EventKind = "axis-changed"
	EventSelectionChanged EventKind = "selection-changed"
	EventSortChanged      EventKind = "sort-changed"
	EventFilterChanged    EventKind = "filter-changed"
	EventRenderComplete   EventKind = "render-complete"
	EventError            EventKind = "error"
)

// RenderStats accompanies render-complete notifications.
type RenderStats struct {
	Duration  time.Duration `json:"duration"`
	CellCount int           `json:"cellCount"`
}

// ErrorInfo accompanies error notifications: the failure kind plus a
// context string naming the failing operation.
type ErrorInfo struct {
	Kind    string `json:"kind"`
	Context string `json:"context"`
}

// Event is one notification. Exactly the payload fields matching Kind
// are populated, and every payload is a deep-copied snapshot; observers
// never alias controller-owned state.
type Event struct {
	Kind      EventKind                 `json:"kind"`
	Cells     []models.Cell             `json:"cells,omitempty"`
	Axis      *models.AxisConfiguration `json:"axis,omitempty"`
	Selection *models.SelectionState    `json:"selection,omitempty"`
	SortBy    []models.SortLevel        `json:"sortBy,omitempty"`
	Filters   []models.HeaderFilter     `json:"filters,omitempty"`
	Render    *RenderStats              `json:"render,omitempty"`
	Error     *ErrorInfo                `json:"error,omitempty"`
}

// Listener receives engine notifications.
type Listener func(Event)

// dispatcher is an explicit observer list. Emission is synchronous and
// in subscription order; regeneration always completes before any event
// referencing the new state is dispatched.
type dispatcher struct {
	listeners []Listener
}

// Subscribe registers a listener for all notification kinds.
func (d *dispatcher) Subscribe(l Listener) {
	d.listeners = append(d.listeners, l)
}

func (d *dispatcher) emit(e Event) {
	if len(d.listeners) == 0 {
		return
	}
	var snapshot Event
	if err := deepcopy.Copy(&snapshot, &e); err != nil {
		snapshot = e
	}
	for _, l := range d.listeners {
		l(snapshot)
	}
}
