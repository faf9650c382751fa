package layout

// Layoutable is the interface for anything that can participate in layout calculation.
// The layout engine works entirely with this interface, enabling custom implementations.
// Implementations must be comparable, typically pointers: the engine keys its
// in-progress set, natural size memo and grid template registry by node.
type Layoutable interface {
	// LayoutStyle returns the layout style properties for this element.
	LayoutStyle() Style

	// LayoutChildren returns the children to be laid out.
	LayoutChildren() []Layoutable

	// SetLayout is called by the layout engine to store computed layout.
	// Implementations must not synchronously re-run layout on the same subtree.
	SetLayout(Layout)

	// GetLayout returns the last computed layout.
	GetLayout() Layout

	// IsDirty returns whether this element needs layout recalculation.
	IsDirty() bool

	// SetDirty marks this element as needing recalculation.
	SetDirty(dirty bool)

	// IntrinsicSize returns the natural content-based dimensions of this element.
	// For leaf elements (like text), this returns the size needed to display content.
	// For containers, this is usually ContentExtent plus padding.
	// The layout engine uses this for Auto-sized items and auto tracks.
	// It must be side-effect free.
	IntrinsicSize() (width, height int)
}
