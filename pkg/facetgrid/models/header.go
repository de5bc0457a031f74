package models

// Orientation distinguishes column headers (along X) from row headers
// (along Y).
type Orientation string

const (
	OrientColumn Orientation = "column"
	OrientRow    Orientation = "row"
)

// Rect is an axis-aligned pixel rectangle.
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Contains reports whether the point (px, py) falls inside the rectangle.
// The trailing edges are exclusive.
func (r Rect) Contains(px, py int) bool {
	return px >= r.X && px < r.X+r.Width && py >= r.Y && py < r.Y+r.Height
}

// Intersects reports whether two rectangles overlap.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.Width && o.X < r.X+r.Width &&
		r.Y < o.Y+o.Height && o.Y < r.Y+r.Height
}

// HeaderNode is one node of the hierarchical header tree.
//
// Invariant: Span == EndIndex-StartIndex+1, and equals the sum of the
// children's spans when children exist, else 1. Sibling index ranges are
// contiguous and non-overlapping in value-path order.
type HeaderNode struct {
	// ID identifies the node by its full value path.
	ID string `json:"id"`
	// Value is the label at this level of the path.
	Value string `json:"value"`
	// Level is the depth in the tree, 0 at the root level.
	Level int `json:"level"`
	// Span is the number of leaf columns/rows the node covers.
	Span int `json:"span"`
	// StartIndex and EndIndex are the inclusive leaf index range.
	StartIndex int `json:"startIndex"`
	EndIndex   int `json:"endIndex"`
	// Collapsed marks the node hidden by progressive disclosure.
	Collapsed bool `json:"collapsed,omitempty"`
	// Children are the next-level nodes, in value-path order.
	Children []*HeaderNode `json:"children,omitempty"`
}

// IsLeaf reports whether the node has no children.
func (n *HeaderNode) IsLeaf() bool { return len(n.Children) == 0 }

// HeaderDescriptor is the flattened form of a HeaderNode with absolute
// pixel geometry, consumed by hit testing and rendering.
type HeaderDescriptor struct {
	ID          string      `json:"id"`
	Value       string      `json:"value"`
	Level       int         `json:"level"`
	Span        int         `json:"span"`
	StartIndex  int         `json:"startIndex"`
	EndIndex    int         `json:"endIndex"`
	IsLeaf      bool        `json:"isLeaf"`
	Collapsed   bool        `json:"collapsed,omitempty"`
	Orientation Orientation `json:"orientation"`
	Bounds      Rect        `json:"bounds"`
}
