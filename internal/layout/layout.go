package layout

// Layout holds the computed position and size after layout calculation.
type Layout struct {
	// Rect is the box allocated by the parent container.
	// Use for hit testing and bounds.
	Rect Rect

	// ContentRect is Rect minus padding, the area where children are placed.
	ContentRect Rect
}
