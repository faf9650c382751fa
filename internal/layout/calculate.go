package layout

import "github.com/grindlemire/go-gridflex/internal/debug"

// Calculate performs layout calculation on the tree rooted at root.
// The root and all descendants will have their Layout field populated.
// Clean nodes whose box did not change are skipped (incremental layout).
//
// availableWidth and availableHeight specify the root constraint
// (typically the window size). A root with a fixed size keeps it.
func Calculate(root Layoutable, availableWidth, availableHeight int) {
	if root == nil {
		return
	}

	style := root.LayoutStyle()
	width := style.Width.Resolve(availableWidth)
	height := style.Height.Resolve(availableHeight)

	p := newPass()
	defer p.release()
	calculateNode(root, NewRect(0, 0, width, height), p)
}

// Compute re-runs layout for container inside the box it was last given.
// It does nothing when the container is clean, so calling it twice without
// an intervening change yields identical rectangles.
func Compute(container Layoutable) {
	if container == nil {
		return
	}
	p := newPass()
	defer p.release()
	calculateNode(container, container.GetLayout().Rect, p)
}

// calculateNode computes the layout for a single node within the box its
// parent allocated, then recurses into the children. Natural sizes come from
// the pass memo.
func calculateNode(node Layoutable, box Rect, p *pass) {
	box.Width = max(0, box.Width)
	box.Height = max(0, box.Height)

	// Dirty propagates up, so a clean node given the same box has a clean subtree
	if !node.IsDirty() && node.GetLayout().Rect == box {
		return
	}

	if !enter(node) {
		debug.Log("layout: re-entrant compute of %T ignored", node)
		return
	}
	defer leave(node)

	style := node.LayoutStyle()
	content := box.Inset(style.Padding)

	children := node.LayoutChildren()
	if len(children) > 0 {
		rects := layoutChildren(style, children, content, p)
		for i, child := range children {
			calculateNode(child, rects[i], p)
		}
	}

	node.SetLayout(Layout{
		Rect:        box,
		ContentRect: content,
	})
	node.SetDirty(false)
}

// childInput is what a container needs to know about one child.
type childInput struct {
	style   Style
	natural Size
}

// gatherChildren reads each child's style once and queries its natural size
// only when it has an auto dimension.
func gatherChildren(children []Layoutable, p *pass) []childInput {
	inputs := make([]childInput, len(children))
	for i, child := range children {
		style := child.LayoutStyle()
		in := childInput{style: style}
		if style.Width.IsAuto() || style.Height.IsAuto() {
			in.natural = p.natural(child)
		}
		in.natural.Width = style.Width.Resolve(in.natural.Width)
		in.natural.Height = style.Height.Resolve(in.natural.Height)
		inputs[i] = in
	}
	return inputs
}

// layoutChildren returns the box of every child inside content.
func layoutChildren(style Style, children []Layoutable, content Rect, p *pass) []Rect {
	inputs := gatherChildren(children, p)

	switch style.mode() {
	case modeGrid:
		return LayoutGrid(style.Grid, gridChildren(inputs), content).Items
	case modeFlex:
		return LayoutFlex(style.Flex, flexChildren(inputs), content).Items
	default:
		rects := make([]Rect, len(inputs))
		for i, in := range inputs {
			rects[i] = Rect{X: content.X, Y: content.Y, Width: in.natural.Width, Height: in.natural.Height}
		}
		return rects
	}
}

// ContentExtent returns the size the container's children need, excluding
// the container's own padding. Axes with a fixed container size are laid out
// against that size; auto axes get no space to grow into and flex lines do
// not wrap along an auto main axis. Called from IntrinsicSize during a
// layout pass, it shares that pass's natural sizes.
func ContentExtent(container Layoutable) Size {
	if container == nil {
		return Size{}
	}
	children := container.LayoutChildren()
	if len(children) == 0 {
		return Size{}
	}

	style := container.LayoutStyle()
	inputs := gatherChildren(children, passFor(container))
	inner := style.Padding.Within(Size{Width: style.Width.Resolve(0), Height: style.Height.Resolve(0)})
	content := Rect{Width: inner.Width, Height: inner.Height}

	switch style.mode() {
	case modeGrid:
		return LayoutGrid(style.Grid, gridChildren(inputs), content).Extent
	case modeFlex:
		cfg := style.Flex
		if (cfg.Direction == Column && style.Height.IsAuto()) ||
			(cfg.Direction != Column && style.Width.IsAuto()) {
			cfg.Wrap = false
		}
		return LayoutFlex(cfg, flexChildren(inputs), content).Extent
	default:
		var ext Size
		for _, in := range inputs {
			ext.Width = max(ext.Width, in.natural.Width)
			ext.Height = max(ext.Height, in.natural.Height)
		}
		return ext
	}
}

func gridChildren(inputs []childInput) []GridChild {
	items := make([]GridChild, len(inputs))
	for i, in := range inputs {
		items[i] = GridChild{
			Cells:   CellRequest{Column: in.style.Column, Row: in.style.Row},
			Width:   in.style.Width,
			Height:  in.style.Height,
			Natural: in.natural,
		}
	}
	return items
}

func flexChildren(inputs []childInput) []FlexChild {
	items := make([]FlexChild, len(inputs))
	for i, in := range inputs {
		items[i] = FlexChild{
			Item:    in.style.Item,
			Width:   in.style.Width,
			Height:  in.style.Height,
			Natural: in.natural,
		}
	}
	return items
}
