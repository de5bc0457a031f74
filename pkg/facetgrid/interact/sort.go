package interact

import (
	"strings"

	"github.com/facetgrid/facetgrid-go/pkg/facetgrid/models"
)

// DefaultMaxSortLevels caps the number of prioritized sort levels.
const DefaultMaxSortLevels = 3

// SortController owns the multi-level sort state. Each header cycles
// unsorted → asc → desc → unsorted on repeated plain clicks.
type SortController struct {
	levels    []models.SortLevel
	maxLevels int
	onChange  func([]models.SortLevel)
}

// NewSortController creates a sort controller. maxLevels <= 0 selects
// the default cap.
func NewSortController(maxLevels int, onChange func([]models.SortLevel)) *SortController {
	if maxLevels <= 0 {
		maxLevels = DefaultMaxSortLevels
	}
	return &SortController{maxLevels: maxLevels, onChange: onChange}
}

// Levels returns the current sort levels in priority order.
func (c *SortController) Levels() []models.SortLevel { return c.levels }

// Click handles a plain header click. On a new header it replaces all
// existing levels with a single ascending level at priority 1; on the
// current header it advances the cycle (asc → desc → unsorted).
func (c *SortController) Click(headerID, facet string) {
	next := models.SortAsc
	if found := c.find(headerID); found != nil {
		switch found.Direction {
		case models.SortAsc:
			next = models.SortDesc
		case models.SortDesc:
			c.levels = nil
			c.emit()
			return
		}
	}
	c.levels = []models.SortLevel{{HeaderID: headerID, Facet: facet, Direction: next, Priority: 1}}
	c.emit()
}

// ModifierClick handles a secondary-sort click. A new header appends a
// level at the next priority, capped at maxLevels. An already-present
// header cycles its direction in place without changing its priority,
// and is removed once the cycle completes.
func (c *SortController) ModifierClick(headerID, facet string) {
	for i := range c.levels {
		if c.levels[i].HeaderID != headerID {
			continue
		}
		if c.levels[i].Direction == models.SortAsc {
			c.levels[i].Direction = models.SortDesc
		} else {
			c.levels = append(c.levels[:i], c.levels[i+1:]...)
			c.renumber()
		}
		c.emit()
		return
	}
	if len(c.levels) >= c.maxLevels {
		return
	}
	c.levels = append(c.levels, models.SortLevel{
		HeaderID:  headerID,
		Facet:     facet,
		Direction: models.SortAsc,
		Priority:  len(c.levels) + 1,
	})
	c.emit()
}

// Remove deletes the level for a header and renumbers the remainder to a
// contiguous 1..N sequence.
func (c *SortController) Remove(headerID string) {
	for i := range c.levels {
		if c.levels[i].HeaderID == headerID {
			c.levels = append(c.levels[:i], c.levels[i+1:]...)
			c.renumber()
			c.emit()
			return
		}
	}
}

// Clear drops all sort levels.
func (c *SortController) Clear() {
	if len(c.levels) == 0 {
		return
	}
	c.levels = nil
	c.emit()
}

// Prune removes levels whose header no longer exists, preserving the
// order and renumbering priorities.
func (c *SortController) Prune(headerExists func(id string) bool) {
	kept := c.levels[:0]
	for _, l := range c.levels {
		if headerExists(l.HeaderID) {
			kept = append(kept, l)
		}
	}
	if len(kept) != len(c.levels) {
		c.levels = kept
		c.renumber()
		c.emit()
	}
}

// CompileOrderBy builds the ordering expression: one "<facet> <ASC|DESC>"
// clause per level, comma-joined in priority order. Empty state compiles
// to an empty string.
func (c *SortController) CompileOrderBy() string {
	if len(c.levels) == 0 {
		return ""
	}
	parts := make([]string, len(c.levels))
	for i, l := range c.levels {
		parts[i] = l.Facet + " " + string(l.Direction)
	}
	return strings.Join(parts, ", ")
}

func (c *SortController) find(headerID string) *models.SortLevel {
	for i := range c.levels {
		if c.levels[i].HeaderID == headerID {
			return &c.levels[i]
		}
	}
	return nil
}

func (c *SortController) renumber() {
	for i := range c.levels {
		c.levels[i].Priority = i + 1
	}
}

func (c *SortController) emit() {
	if c.onChange != nil {
		c.onChange(c.levels)
	}
}
