package layout

import "slices"

// MeasureFunc returns the natural content size of a leaf, excluding padding.
type MeasureFunc func() (width, height int)

// Node represents an element in the layout tree.
type Node struct {
	// Configuration (user-set)
	Name     string
	Style    Style
	Children []*Node
	Measure  MeasureFunc

	// Computed (set by layout engine)
	Layout Layout

	// Internal state
	dirty  bool  // Needs recalculation
	parent *Node // Back-pointer for dirty propagation
}

// NewNode creates a new node with the given style. A grid in the style is
// attached so that template changes reach the node.
func NewNode(style Style) *Node {
	n := &Node{
		Style: style,
		dirty: true, // New nodes need layout
	}
	AttachGrid(style.Grid, n)
	return n
}

// AddChild appends children and marks this node dirty.
func (n *Node) AddChild(children ...*Node) {
	for _, child := range children {
		if child.parent != nil {
			child.parent.RemoveChild(child)
		}
		child.parent = n
		n.Children = append(n.Children, child)
	}
	n.MarkDirty()
}

// RemoveChild removes a child by pointer, keeping the order of the others,
// and marks dirty. Returns true if the child was found and removed.
func (n *Node) RemoveChild(child *Node) bool {
	i := slices.Index(n.Children, child)
	if i < 0 {
		return false
	}
	n.Children = slices.Delete(n.Children, i, i+1)
	child.parent = nil
	n.MarkDirty()
	return true
}

// Parent returns the node's container, or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Release detaches the grid templates used by n and its descendants.
// Call it when a subtree is discarded.
func (n *Node) Release() {
	DetachGrid(n.Style.Grid, n)
	for _, child := range n.Children {
		child.Release()
	}
}

// SetStyle updates the style and marks the node dirty.
func (n *Node) SetStyle(style Style) {
	if style.Grid != n.Style.Grid {
		DetachGrid(n.Style.Grid, n)
		AttachGrid(style.Grid, n)
	}
	n.Style = style
	n.MarkDirty()
}

// SetGrid makes n a grid container using g. Flex is disabled.
func (n *Node) SetGrid(g *Grid) {
	style := n.Style
	style.Grid = g
	if g != nil {
		style.Flex.Direction = DirectionNone
	}
	n.SetStyle(style)
}

// SetFlex makes n a flex container with cfg. A grid is detached.
func (n *Node) SetFlex(cfg FlexConfig) {
	style := n.Style
	style.Flex = cfg
	if cfg.Direction != DirectionNone {
		style.Grid = nil
	}
	n.SetStyle(style)
}

// SetCell sets the grid cell request of n and marks its container dirty.
func (n *Node) SetCell(column, row Cell) {
	n.Style.Column = column
	n.Style.Row = row
	n.MarkDirty()
}

// SetFlexItem sets the flex item properties of n and marks its container dirty.
func (n *Node) SetFlexItem(item FlexItem) {
	n.Style.Item = item
	n.MarkDirty()
}

// MarkDirty marks this node and all ancestors as needing recalculation.
func (n *Node) MarkDirty() {
	for node := n; node != nil && !node.dirty; node = node.parent {
		node.dirty = true
	}
}

// --- Implement Layoutable interface ---

// LayoutStyle returns the layout style properties for this node.
func (n *Node) LayoutStyle() Style {
	return n.Style
}

// LayoutChildren returns the children to be laid out.
func (n *Node) LayoutChildren() []Layoutable {
	result := make([]Layoutable, len(n.Children))
	for i, child := range n.Children {
		result[i] = child
	}
	return result
}

// SetLayout is called by the layout engine to store computed layout.
func (n *Node) SetLayout(l Layout) {
	n.Layout = l
}

// GetLayout returns the last computed layout.
func (n *Node) GetLayout() Layout {
	return n.Layout
}

// IsDirty returns whether this node needs recalculation.
func (n *Node) IsDirty() bool {
	return n.dirty
}

// SetDirty sets the dirty flag of this node only.
func (n *Node) SetDirty(dirty bool) {
	n.dirty = dirty
}

// IntrinsicSize returns the natural size of the node including padding.
// Leaves with a Measure function report the measured content; containers
// report their ContentExtent.
func (n *Node) IntrinsicSize() (width, height int) {
	var content Size
	switch {
	case n.Measure != nil:
		content.Width, content.Height = n.Measure()
	case len(n.Children) > 0:
		content = ContentExtent(n)
	}
	size := n.Style.Padding.Around(content)
	return size.Width, size.Height
}

// Rect returns the computed box.
func (n *Node) Rect() Rect {
	return n.Layout.Rect
}

// ContentRect returns the computed content area.
func (n *Node) ContentRect() Rect {
	return n.Layout.ContentRect
}
