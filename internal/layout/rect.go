package layout

// Rect represents a rectangle with integer coordinates.
// X and Y are the top-left corner; Width and Height are dimensions.
type Rect struct {
	X, Y          int
	Width, Height int
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Inset returns a new Rect inset by the given Edges.
// The result never has a negative width or height.
func (r Rect) Inset(edges Edges) Rect {
	size := edges.Within(Size{Width: r.Width, Height: r.Height})
	return Rect{X: r.X + edges.Left, Y: r.Y + edges.Top, Width: size.Width, Height: size.Height}
}

// Size represents a width/height pair.
type Size struct {
	Width, Height int
}

// axisRect builds a Rect from main/cross coordinates.
func axisRect(horizontal bool, main, cross, mainLen, crossLen int) Rect {
	if horizontal {
		return Rect{X: main, Y: cross, Width: mainLen, Height: crossLen}
	}
	return Rect{X: cross, Y: main, Width: crossLen, Height: mainLen}
}
