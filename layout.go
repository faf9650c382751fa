// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package gridflex

import "github.com/grindlemire/go-gridflex/internal/layout"

// Direction specifies the main axis of a flex container.
type Direction = layout.Direction

const (
	DirectionNone = layout.DirectionNone
	Row           = layout.Row
	Column        = layout.Column
)

// Justify specifies how leftover space is distributed along an axis.
type Justify = layout.Justify

const (
	JustifyStart        = layout.JustifyStart
	JustifyEnd          = layout.JustifyEnd
	JustifyCenter       = layout.JustifyCenter
	JustifyStretch      = layout.JustifyStretch
	JustifySpaceBetween = layout.JustifySpaceBetween
	JustifySpaceAround  = layout.JustifySpaceAround
	JustifySpaceEvenly  = layout.JustifySpaceEvenly
)

// Align specifies how an item is positioned inside its cell or flex line.
type Align = layout.Align

const (
	AlignStart   = layout.AlignStart
	AlignEnd     = layout.AlignEnd
	AlignCenter  = layout.AlignCenter
	AlignStretch = layout.AlignStretch
)

// Flow selects the primary axis of grid auto-placement.
type Flow = layout.Flow

const (
	FlowRow    = layout.FlowRow
	FlowColumn = layout.FlowColumn
)

// Value represents a dimension value (fixed or auto).
type Value = layout.Value

// Unit specifies how a Value is interpreted.
type Unit = layout.Unit

const (
	UnitAuto  = layout.UnitAuto
	UnitFixed = layout.UnitFixed
)

// TrackKind identifies the variant held by a Track.
type TrackKind = layout.TrackKind

const (
	TrackFixed    = layout.TrackFixed
	TrackFraction = layout.TrackFraction
	TrackAuto     = layout.TrackAuto
	TrackRepeat   = layout.TrackRepeat
)

// MaxRepeat is the most instances a single repeat descriptor expands to.
const MaxRepeat = layout.MaxRepeat

// CellAuto is the position sentinel requesting auto-placement.
const CellAuto = layout.CellAuto

// LayoutStyle holds the layout properties for a node.
type LayoutStyle = layout.Style

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = layout.Edges

// Size represents a width/height pair.
type Size = layout.Size

// LayoutResult holds the computed layout for a node.
type LayoutResult = layout.Layout

// Layoutable is the interface that nodes must implement for layout calculation.
type Layoutable = layout.Layoutable

// Node is the reference Layoutable implementation.
type Node = layout.Node

// MeasureFunc reports the natural content size of a leaf node.
type MeasureFunc = layout.MeasureFunc

// Grid is a shared column and row template.
type Grid = layout.Grid

// Track describes one column or row, or a repeated group of them.
type Track = layout.Track

// Tracks is the resolved geometry of one grid axis.
type Tracks = layout.Tracks

// Cell is a grid cell request on one axis.
type Cell = layout.Cell

// CellRequest is the column and row request of one grid item.
type CellRequest = layout.CellRequest

// Area is the track range assigned to a grid item.
type Area = layout.Area

// FlexConfig holds the flex container properties.
type FlexConfig = layout.FlexConfig

// FlexItem holds the per-item flex properties.
type FlexItem = layout.FlexItem

// Fixed creates a Value with a fixed pixel length.
func Fixed(n int) Value {
	return layout.Fixed(n)
}

// Auto creates a Value that sizes to content.
func Auto() Value {
	return layout.Auto()
}

// Px returns a fixed track of n pixels.
func Px(n int) Track {
	return layout.Px(n)
}

// Fr returns a fraction track.
func Fr(weight int) Track {
	return layout.Fr(weight)
}

// AutoTrack returns a track sized by the natural size of its items.
func AutoTrack() Track {
	return layout.AutoTrack()
}

// Repeat returns a repeat descriptor that creates at least one instance.
func Repeat(minLength int, template ...Track) Track {
	return layout.Repeat(minLength, template...)
}

// RepeatFit returns a repeat descriptor that creates only whole instances
// that fit, and lets them absorb the leftover space.
func RepeatFit(minLength int, template ...Track) Track {
	return layout.RepeatFit(minLength, template...)
}

// NewGrid creates a grid template with the given column and row tracks.
func NewGrid(columns, rows []Track) *Grid {
	return layout.NewGrid(columns, rows)
}

// AutoCell requests auto-placement with the given span.
func AutoCell(span int, align Align) Cell {
	return layout.AutoCell(span, align)
}

// CellAt requests an explicit track position and span.
func CellAt(pos, span int, align Align) Cell {
	return layout.CellAt(pos, span, align)
}

// NewNode creates a node with the given style.
func NewNode(style LayoutStyle) *Node {
	return layout.NewNode(style)
}

// DefaultLayoutStyle returns a Style with default values.
func DefaultLayoutStyle() LayoutStyle {
	return layout.DefaultStyle()
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return layout.NewRect(x, y, width, height)
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n int) Edges {
	return layout.EdgeAll(n)
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal (left/right) values.
func EdgeSymmetric(v, h int) Edges {
	return layout.EdgeSymmetric(v, h)
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l int) Edges {
	return layout.EdgeTRBL(t, r, b, l)
}

// Calculate lays out the tree rooted at root inside the available size.
func Calculate(root Layoutable, availableWidth, availableHeight int) {
	layout.Calculate(root, availableWidth, availableHeight)
}

// Compute re-runs layout for container inside its current box.
func Compute(container Layoutable) {
	layout.Compute(container)
}

// ContentExtent reports the size container needs for its children.
func ContentExtent(container Layoutable) Size {
	return layout.ContentExtent(container)
}

// ResolveTracks expands and sizes track descriptors along one axis.
func ResolveTracks(descs []Track, available, gap int) Tracks {
	return layout.ResolveTracks(descs, available, gap)
}

// PlaceItems assigns every cell request a concrete track range.
func PlaceItems(reqs []CellRequest, columns, rows int, flow Flow) []Area {
	return layout.PlaceItems(reqs, columns, rows, flow)
}

// AttachGrid records container as a user of g.
func AttachGrid(g *Grid, container Layoutable) {
	layout.AttachGrid(g, container)
}

// DetachGrid removes container from the users of g.
func DetachGrid(g *Grid, container Layoutable) {
	layout.DetachGrid(g, container)
}

// ReportGridChange refreshes every container using g, or every container
// using any grid when g is nil.
func ReportGridChange(g *Grid) {
	layout.ReportGridChange(g)
}

// GridUsers returns the number of containers attached to g.
func GridUsers(g *Grid) int {
	return layout.GridUsers(g)
}
