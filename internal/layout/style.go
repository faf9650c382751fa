package layout

// Direction specifies the main axis of a flex container.
type Direction uint8

const (
	DirectionNone Direction = iota // Flex disabled
	Row                            // Children laid out left-to-right
	Column                         // Children laid out top-to-bottom
)

// Justify specifies how leftover space is distributed along an axis.
// Grid containers use it for content placement of tracks; flex containers use it
// for the main axis of lines without growing items.
type Justify uint8

const (
	JustifyStart        Justify = iota // Pack at start
	JustifyEnd                         // Pack at end
	JustifyCenter                      // Center
	JustifyStretch                     // Grow tracks equally (grid only; flex treats it as start)
	JustifySpaceBetween                // Even space between, none at edges
	JustifySpaceAround                 // Even space around each track or item
	JustifySpaceEvenly                 // Equal space between and at edges
)

// Align specifies how an item is positioned inside its cell or flex line.
type Align uint8

const (
	AlignStart   Align = iota // Align to start
	AlignEnd                  // Align to end
	AlignCenter               // Center
	AlignStretch              // Fill the cell or line
)

// Flow selects the primary axis of the grid auto-placement cursor.
type Flow uint8

const (
	FlowRow    Flow = iota // Fill columns, then move to the next row
	FlowColumn             // Fill rows, then move to the next column
)

// FlexConfig holds the flex container properties.
type FlexConfig struct {
	Direction  Direction
	Wrap       bool
	Reverse    bool
	Justify    Justify
	AlignItems Align
	Gap        int // Space between items and between wrapped lines
}

// FlexItem holds the per-item flex properties.
type FlexItem struct {
	Grow      int    // 0 keeps the natural size; >0 shares leftover space by weight
	AlignSelf *Align // Override of the container's AlignItems (nil = inherit)
}

// CellAuto is the position sentinel requesting auto-placement on an axis.
const CellAuto = -1

// Cell is a grid cell request on one axis.
// The zero value is not auto; use AutoCell or CellAt.
type Cell struct {
	Pos   int // Track index, or CellAuto
	Span  int // Number of tracks; values below 1 count as 1
	Align Align
}

// AutoCell requests auto-placement with the given span.
func AutoCell(span int, align Align) Cell {
	return Cell{Pos: CellAuto, Span: span, Align: align}
}

// CellAt requests an explicit track position and span.
func CellAt(pos, span int, align Align) Cell {
	return Cell{Pos: pos, Span: span, Align: align}
}

// IsAuto reports whether the position is left to the placement cursor.
func (c Cell) IsAuto() bool {
	return c.Pos < 0
}

func (c Cell) span() int {
	if c.Span < 1 {
		return 1
	}
	return c.Span
}

// Style contains all layout properties for a node.
// A container is a grid when Grid is set, a flex container when
// Flex.Direction is not DirectionNone, and otherwise stacks children at
// its content origin.
type Style struct {
	// Sizing
	Width  Value
	Height Value

	// Spacing
	Padding Edges

	// Container properties
	Grid *Grid
	Flex FlexConfig

	// Grid item properties
	Column Cell
	Row    Cell

	// Flex item properties
	Item FlexItem
}

// DefaultStyle returns a Style with sensible defaults.
func DefaultStyle() Style {
	return Style{
		Width:  Auto(),
		Height: Auto(),
		Flex: FlexConfig{
			Direction:  Row,
			AlignItems: AlignStretch,
		},
		Column: AutoCell(1, AlignStretch),
		Row:    AutoCell(1, AlignStretch),
	}
}

// mode reports which layout algorithm a container uses.
func (s Style) mode() mode {
	switch {
	case s.Grid != nil:
		return modeGrid
	case s.Flex.Direction != DirectionNone:
		return modeFlex
	default:
		return modeNone
	}
}

type mode uint8

const (
	modeNone mode = iota
	modeFlex
	modeGrid
)
