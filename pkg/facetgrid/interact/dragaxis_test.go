package interact

import (
	"testing"

	"github.com/facetgrid/facetgrid-go/pkg/facetgrid/models"
)

func dragFixture() (models.GridConfig, models.GridDimensions) {
	cfg := models.DefaultGridConfig()
	// 2x1 grid: width 140 + 2*120, height 56 + 80.
	return cfg, models.GridDimensions{Columns: 2, Rows: 1, Width: 380, Height: 136}
}

func TestStartInfersSourceAxis(t *testing.T) {
	cfg, dims := dragFixture()

	tests := []struct {
		name   string
		px, py int
		ok     bool
		source models.Axis
	}{
		{"column band", 200, 10, true, models.AxisX},
		{"row band", 50, 100, true, models.AxisY},
		{"data area", 200, 100, false, models.AxisX},
		{"corner gap", 50, 10, false, models.AxisX},
	}
	for _, tt := range tests {
		c := NewDragAxisController(cfg, nil)
		if got := c.Start(tt.px, tt.py, dims); got != tt.ok {
			t.Errorf("%s: Start = %v, expected %v", tt.name, got, tt.ok)
			continue
		}
		if tt.ok && c.SourceAxis() != tt.source {
			t.Errorf("%s: source %v, expected %v", tt.name, c.SourceAxis(), tt.source)
		}
	}
}

func TestStartWhileDraggingFails(t *testing.T) {
	cfg, dims := dragFixture()
	c := NewDragAxisController(cfg, nil)
	c.Start(200, 10, dims)
	if c.Start(50, 100, dims) {
		t.Error("second Start succeeded during an active drag")
	}
}

func TestOverDropRegion(t *testing.T) {
	cfg, dims := dragFixture()
	c := NewDragAxisController(cfg, nil)
	c.Start(200, 10, dims) // from the column band

	if !c.OverDropRegion(50, 100, dims) {
		t.Error("row band not recognized as the opposite drop region")
	}
	if c.OverDropRegion(200, 10, dims) {
		t.Error("source band counted as a drop region")
	}
	if c.OverDropRegion(200, 100, dims) {
		t.Error("data area counted as a drop region")
	}
}

func TestDropRequestsSwap(t *testing.T) {
	cfg, dims := dragFixture()
	swaps := 0
	c := NewDragAxisController(cfg, func() { swaps++ })

	c.Start(200, 10, dims)
	if !c.Drop(50, 100, dims) {
		t.Error("drop inside the opposite band reported false")
	}
	if swaps != 1 {
		t.Errorf("swap requested %d times, expected 1", swaps)
	}
	if c.IsDragging() {
		t.Error("still dragging after drop")
	}
}

func TestDropOutsideIsNoop(t *testing.T) {
	cfg, dims := dragFixture()
	swaps := 0
	c := NewDragAxisController(cfg, func() { swaps++ })

	c.Start(200, 10, dims)
	if c.Drop(200, 100, dims) {
		t.Error("drop in the data area reported a swap")
	}
	if swaps != 0 {
		t.Errorf("no-op drop requested %d swaps", swaps)
	}
}

func TestCancelDiscardsDrag(t *testing.T) {
	cfg, dims := dragFixture()
	swaps := 0
	c := NewDragAxisController(cfg, func() { swaps++ })

	c.Start(200, 10, dims)
	c.Cancel()
	if c.IsDragging() {
		t.Error("still dragging after cancel")
	}
	if c.Drop(50, 100, dims) || swaps != 0 {
		t.Error("drop after cancel requested a swap")
	}
}
