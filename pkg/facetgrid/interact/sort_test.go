package interact

import (
	"testing"

	"github.com/facetgrid/facetgrid-go/pkg/facetgrid/models"
)

func TestClickCycle(t *testing.T) {
	c := NewSortController(0, nil)

	c.Click("h1", "status")
	if got := c.Levels(); len(got) != 1 || got[0].Direction != models.SortAsc || got[0].Priority != 1 {
		t.Fatalf("first click: %+v, expected single ascending level", got)
	}

	c.Click("h1", "status")
	if got := c.Levels(); len(got) != 1 || got[0].Direction != models.SortDesc {
		t.Fatalf("second click: %+v, expected descending", got)
	}

	c.Click("h1", "status")
	if got := c.Levels(); len(got) != 0 {
		t.Fatalf("third click: %+v, expected unsorted", got)
	}
}

func TestClickReplacesOtherHeader(t *testing.T) {
	c := NewSortController(0, nil)
	c.Click("h1", "status")
	c.ModifierClick("h2", "priority")
	c.Click("h3", "team")

	got := c.Levels()
	if len(got) != 1 || got[0].HeaderID != "h3" || got[0].Direction != models.SortAsc {
		t.Errorf("plain click on a new header: %+v, expected single h3 asc", got)
	}
}

func TestModifierClickAppendsAndCaps(t *testing.T) {
	c := NewSortController(3, nil)
	c.ModifierClick("h1", "status")
	c.ModifierClick("h2", "priority")
	c.ModifierClick("h3", "team")
	c.ModifierClick("h4", "owner") // over the cap, ignored

	got := c.Levels()
	if len(got) != 3 {
		t.Fatalf("levels %d, expected cap of 3", len(got))
	}
	for i, l := range got {
		if l.Priority != i+1 {
			t.Errorf("level %s priority %d, expected %d", l.HeaderID, l.Priority, i+1)
		}
	}
}

func TestModifierClickCyclesInPlace(t *testing.T) {
	c := NewSortController(3, nil)
	c.ModifierClick("h1", "status")
	c.ModifierClick("h2", "priority")

	c.ModifierClick("h1", "status")
	got := c.Levels()
	if got[0].Direction != models.SortDesc || got[0].Priority != 1 {
		t.Errorf("in-place cycle: %+v, expected h1 desc at priority 1", got[0])
	}

	c.ModifierClick("h1", "status") // desc → removed
	got = c.Levels()
	if len(got) != 1 || got[0].HeaderID != "h2" || got[0].Priority != 1 {
		t.Errorf("after removal: %+v, expected h2 renumbered to priority 1", got)
	}
}

func TestRemoveRenumbers(t *testing.T) {
	c := NewSortController(3, nil)
	c.ModifierClick("h1", "status")
	c.ModifierClick("h2", "priority")
	c.ModifierClick("h3", "team")

	c.Remove("h2")
	got := c.Levels()
	if len(got) != 2 || got[0].HeaderID != "h1" || got[1].HeaderID != "h3" {
		t.Fatalf("after remove: %+v", got)
	}
	if got[0].Priority != 1 || got[1].Priority != 2 {
		t.Errorf("priorities %d, %d: expected contiguous 1..2", got[0].Priority, got[1].Priority)
	}
}

func TestPrune(t *testing.T) {
	changes := 0
	c := NewSortController(3, func([]models.SortLevel) { changes++ })
	c.ModifierClick("h1", "status")
	c.ModifierClick("h2", "priority")
	before := changes

	c.Prune(func(id string) bool { return id == "h2" })
	got := c.Levels()
	if len(got) != 1 || got[0].HeaderID != "h2" || got[0].Priority != 1 {
		t.Errorf("after prune: %+v", got)
	}
	if changes != before+1 {
		t.Errorf("prune emitted %d changes, expected 1", changes-before)
	}

	c.Prune(func(string) bool { return true })
	if changes != before+1 {
		t.Error("no-op prune emitted a change")
	}
}

func TestCompileOrderBy(t *testing.T) {
	c := NewSortController(3, nil)
	if got := c.CompileOrderBy(); got != "" {
		t.Errorf("empty state compiled to %q", got)
	}

	c.ModifierClick("h1", "status")
	c.ModifierClick("h2", "priority")
	c.ModifierClick("h2", "priority") // → desc

	if got := c.CompileOrderBy(); got != "status ASC, priority DESC" {
		t.Errorf("CompileOrderBy = %q, expected %q", got, "status ASC, priority DESC")
	}
}
