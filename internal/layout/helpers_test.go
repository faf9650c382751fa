package layout

// testNode is a minimal Layoutable used to observe what the engine does.
type testNode struct {
	style    Style
	children []*testNode
	layout   Layout
	dirty    bool
	parent   *testNode

	intrinsicW, intrinsicH int

	setLayoutCalls int
	intrinsicCalls int
	onSetLayout    func()
}

func newTestNode(style Style) *testNode {
	return &testNode{style: style, dirty: true}
}

func (n *testNode) AddChild(children ...*testNode) {
	for _, c := range children {
		c.parent = n
		n.children = append(n.children, c)
	}
	n.MarkDirty()
}

func (n *testNode) MarkDirty() {
	for node := n; node != nil && !node.dirty; node = node.parent {
		node.dirty = true
	}
}

func (n *testNode) LayoutStyle() Style { return n.style }

func (n *testNode) LayoutChildren() []Layoutable {
	result := make([]Layoutable, len(n.children))
	for i, c := range n.children {
		result[i] = c
	}
	return result
}

func (n *testNode) SetLayout(l Layout) {
	n.layout = l
	n.setLayoutCalls++
	if n.onSetLayout != nil {
		n.onSetLayout()
	}
}

func (n *testNode) GetLayout() Layout   { return n.layout }
func (n *testNode) IsDirty() bool       { return n.dirty }
func (n *testNode) SetDirty(dirty bool) { n.dirty = dirty }

func (n *testNode) IntrinsicSize() (int, int) {
	n.intrinsicCalls++
	if len(n.children) > 0 {
		size := n.style.Padding.Around(ContentExtent(n))
		return size.Width, size.Height
	}
	return n.intrinsicW, n.intrinsicH
}

// fixedStyle returns a default style with a fixed size.
func fixedStyle(w, h int) Style {
	s := DefaultStyle()
	s.Width = Fixed(w)
	s.Height = Fixed(h)
	return s
}

// gridStyle returns a fixed-size container using g.
func gridStyle(g *Grid, w, h int) Style {
	s := fixedStyle(w, h)
	s.Grid = g
	return s
}

// flexStyle returns a fixed-size flex container.
func flexStyle(cfg FlexConfig, w, h int) Style {
	s := fixedStyle(w, h)
	s.Flex = cfg
	return s
}

// collectRects returns the rect of every node in depth-first order.
func collectRects(n *testNode) []Rect {
	rects := []Rect{n.layout.Rect}
	for _, c := range n.children {
		rects = append(rects, collectRects(c)...)
	}
	return rects
}

func alignPtr(a Align) *Align {
	return &a
}
