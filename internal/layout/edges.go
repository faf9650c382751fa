package layout

// Edges holds a length for each side of a box, in CSS order.
type Edges struct {
	Top, Right, Bottom, Left int
}

// EdgeAll returns Edges with n on every side.
func EdgeAll(n int) Edges {
	return Edges{Top: n, Right: n, Bottom: n, Left: n}
}

// EdgeSymmetric returns Edges with v on top and bottom and h on the sides.
func EdgeSymmetric(v, h int) Edges {
	return Edges{Top: v, Right: h, Bottom: v, Left: h}
}

// EdgeTRBL returns Edges from top, right, bottom and left values.
func EdgeTRBL(t, r, b, l int) Edges {
	return Edges{Top: t, Right: r, Bottom: b, Left: l}
}

// Horizontal returns Left + Right.
func (e Edges) Horizontal() int {
	return e.Left + e.Right
}

// Vertical returns Top + Bottom.
func (e Edges) Vertical() int {
	return e.Top + e.Bottom
}

// Around returns the size of a box holding content s inside the edges.
func (e Edges) Around(s Size) Size {
	return Size{Width: s.Width + e.Horizontal(), Height: s.Height + e.Vertical()}
}

// Within returns the content size left inside a box of size s.
// Neither dimension goes below zero.
func (e Edges) Within(s Size) Size {
	return Size{
		Width:  max(0, s.Width-e.Horizontal()),
		Height: max(0, s.Height-e.Vertical()),
	}
}
