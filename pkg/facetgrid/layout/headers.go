package layout

import (
	"strings"

	"github.com/facetgrid/facetgrid-go/pkg/facetgrid/models"
)

// BuildHeaderTree converts ranked axis values into a nested header tree.
// Multi-level values are split on PathDelimiter; single-level input
// degenerates to one leaf per value with span 1. Every distinct value
// owns exactly one leaf index, including a value that is also the prefix
// of deeper values. Empty input yields an empty tree.
func BuildHeaderTree(values []string) []*models.HeaderNode {
	if len(values) == 0 {
		return nil
	}
	paths := make([][]string, len(values))
	for i, v := range values {
		paths[i] = strings.Split(v, PathDelimiter)
	}
	nodes, _ := buildLevel(paths, nil, 0, 0)
	return nodes
}

// buildLevel groups value paths by their segment at the given depth and
// recurses into the next depth. The running leaf counter threads through
// the return value, keeping the builder free of shared mutable state.
func buildLevel(paths [][]string, prefix []string, level, startLeaf int) ([]*models.HeaderNode, int) {
	type bucket struct {
		value string
		paths [][]string
	}
	var buckets []*bucket
	index := make(map[string]*bucket)
	for _, p := range paths {
		if level >= len(p) {
			continue
		}
		b, ok := index[p[level]]
		if !ok {
			b = &bucket{value: p[level]}
			index[p[level]] = b
			buckets = append(buckets, b)
		}
		b.paths = append(b.paths, p)
	}

	leaf := startLeaf
	nodes := make([]*models.HeaderNode, 0, len(buckets))
	for _, b := range buckets {
		path := append(append([]string{}, prefix...), b.value)
		node := &models.HeaderNode{
			ID:    strings.Join(path, PathDelimiter),
			Value: b.value,
			Level: level,
		}

		var deeper [][]string
		for _, p := range b.paths {
			if len(p) > level+1 {
				deeper = append(deeper, p)
			}
		}

		if len(deeper) == 0 {
			node.Span = 1
			node.StartIndex = leaf
			node.EndIndex = leaf
			leaf++
		} else {
			next := leaf
			var children []*models.HeaderNode
			if len(deeper) < len(b.paths) {
				// The bucket also holds the value that terminates at
				// this level ("A" alongside "A|B"). It keeps its own
				// leaf slot as an implicit child ahead of the deeper
				// subtree, so every distinct value owns exactly one
				// leaf index.
				children = append(children, &models.HeaderNode{
					ID:         strings.Join(path, PathDelimiter) + PathDelimiter,
					Value:      b.value,
					Level:      level + 1,
					Span:       1,
					StartIndex: next,
					EndIndex:   next,
				})
				next++
			}
			deepChildren, after := buildLevel(deeper, path, level+1, next)
			children = append(children, deepChildren...)
			next = after
			node.Children = children
			node.StartIndex = leaf
			node.EndIndex = next - 1
			node.Span = next - leaf
			leaf = next
		}
		nodes = append(nodes, node)
	}
	return nodes, leaf
}

// LeafCount returns the total leaf count of a header forest, which equals
// the sum of the root spans.
func LeafCount(nodes []*models.HeaderNode) int {
	total := 0
	for _, n := range nodes {
		total += n.Span
	}
	return total
}

// FlattenHeaders walks the tree in traversal order and attaches absolute
// pixel geometry per orientation. Descendants of a collapsed node are
// omitted; the collapsed node itself is kept so it can be re-expanded.
func FlattenHeaders(nodes []*models.HeaderNode, orient models.Orientation, cfg models.GridConfig) []models.HeaderDescriptor {
	var out []models.HeaderDescriptor
	var walk func(ns []*models.HeaderNode)
	walk = func(ns []*models.HeaderNode) {
		for _, n := range ns {
			out = append(out, describe(n, orient, cfg))
			if n.Collapsed {
				continue
			}
			walk(n.Children)
		}
	}
	walk(nodes)
	return out
}

func describe(n *models.HeaderNode, orient models.Orientation, cfg models.GridConfig) models.HeaderDescriptor {
	var bounds models.Rect
	switch orient {
	case models.OrientRow:
		bounds = models.Rect{
			X:      n.Level * cfg.LevelDepth,
			Y:      cfg.ColumnBandHeight + n.StartIndex*cfg.CellHeight,
			Width:  cfg.LevelDepth,
			Height: n.Span * cfg.CellHeight,
		}
	default:
		bounds = models.Rect{
			X:      cfg.RowBandWidth + n.StartIndex*cfg.CellWidth,
			Y:      n.Level * cfg.LevelDepth,
			Width:  n.Span * cfg.CellWidth,
			Height: cfg.LevelDepth,
		}
	}
	return models.HeaderDescriptor{
		ID:          n.ID,
		Value:       n.Value,
		Level:       n.Level,
		Span:        n.Span,
		StartIndex:  n.StartIndex,
		EndIndex:    n.EndIndex,
		IsLeaf:      n.IsLeaf(),
		Collapsed:   n.Collapsed,
		Orientation: orient,
		Bounds:      bounds,
	}
}

// FindNode returns the node with the given id, searching depth-first.
func FindNode(nodes []*models.HeaderNode, id string) *models.HeaderNode {
	for _, n := range nodes {
		if n.ID == id {
			return n
		}
		if found := FindNode(n.Children, id); found != nil {
			return found
		}
	}
	return nil
}
