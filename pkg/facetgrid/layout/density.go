package layout

import (
	"sort"

	"github.com/facetgrid/facetgrid-go/pkg/facetgrid/models"
)

// ExtentDensity controls whether empty cells are shown.
type ExtentDensity string

const (
	// DensityDense shows every (column, row) position.
	DensityDense ExtentDensity = "dense"
	// DensitySparse shows occupied positions plus their 8-directional
	// neighbours. Diagonal inclusion is a carried-over policy choice.
	DensitySparse ExtentDensity = "sparse"
	// DensityUltraSparse shows occupied positions only.
	DensityUltraSparse ExtentDensity = "ultra-sparse"
)

// GridCoord is a logical (column, row) position.
type GridCoord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// VisibleCoords returns the grid positions to display under the given
// extent density, sorted row-major.
func VisibleCoords(cells []models.Cell, columns, rows int, density ExtentDensity) []GridCoord {
	if columns <= 0 || rows <= 0 {
		return nil
	}

	visible := make(map[GridCoord]bool)
	switch density {
	case DensityUltraSparse:
		for _, c := range cells {
			visible[GridCoord{c.GridX, c.GridY}] = true
		}
	case DensitySparse:
		for _, c := range cells {
			for dx := -1; dx <= 1; dx++ {
				for dy := -1; dy <= 1; dy++ {
					x, y := c.GridX+dx, c.GridY+dy
					if x >= 0 && x < columns && y >= 0 && y < rows {
						visible[GridCoord{x, y}] = true
					}
				}
			}
		}
	default:
		for x := 0; x < columns; x++ {
			for y := 0; y < rows; y++ {
				visible[GridCoord{x, y}] = true
			}
		}
	}

	out := make([]GridCoord, 0, len(visible))
	for c := range visible {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}
