package layout

// Grid is a grid template. One Grid may be shared by many containers; change
// it through its setters so every container using it is marked dirty.
type Grid struct {
	Columns []Track
	Rows    []Track

	ColumnGap int
	RowGap    int

	// PlaceColumns and PlaceRows position the tracks when they do not fill
	// the container.
	PlaceColumns Justify
	PlaceRows    Justify

	Flow Flow
}

// NewGrid creates a grid template with the given tracks.
func NewGrid(columns, rows []Track) *Grid {
	return &Grid{Columns: columns, Rows: rows}
}

// SetTemplate replaces the column and row tracks.
func (g *Grid) SetTemplate(columns, rows []Track) {
	g.Columns = columns
	g.Rows = rows
	ReportGridChange(g)
}

// SetGap sets the space between columns and between rows.
func (g *Grid) SetGap(column, row int) {
	g.ColumnGap = max(0, column)
	g.RowGap = max(0, row)
	ReportGridChange(g)
}

// SetPlace sets how tracks are positioned in leftover space.
func (g *Grid) SetPlace(columns, rows Justify) {
	g.PlaceColumns = columns
	g.PlaceRows = rows
	ReportGridChange(g)
}

// SetFlow sets the primary axis of auto-placement.
func (g *Grid) SetFlow(flow Flow) {
	g.Flow = flow
	ReportGridChange(g)
}

// GridChild is the layout input for one grid item.
type GridChild struct {
	Cells   CellRequest
	Width   Value
	Height  Value
	Natural Size
}

// size returns the item's size on an axis: the declared length, or its
// natural size when auto.
func (c GridChild) size(horizontal bool) int {
	if horizontal {
		return c.Width.Resolve(c.Natural.Width)
	}
	return c.Height.Resolve(c.Natural.Height)
}

// GridResult is the outcome of one grid layout.
type GridResult struct {
	Columns Tracks
	Rows    Tracks
	Areas   []Area
	Items   []Rect // Absolute item rectangles, in item order

	// Extent is the size of the tracks plus gaps, before content placement.
	Extent Size
}

// LayoutGrid sizes the tracks of g inside content, places the items and
// aligns each one inside its cell.
func LayoutGrid(g *Grid, items []GridChild, content Rect) GridResult {
	if g == nil {
		g = &Grid{}
	}
	colGap, rowGap := max(0, g.ColumnGap), max(0, g.RowGap)

	cols := ExpandTracks(g.Columns, content.Width, colGap)
	rows := ExpandTracks(g.Rows, content.Height, rowGap)

	reqs := make([]CellRequest, len(items))
	for i, item := range items {
		reqs[i] = item.Cells
	}
	areas := PlaceItems(reqs, len(cols), len(rows), g.Flow)

	colNaturals := make([]int, len(cols))
	rowNaturals := make([]int, len(rows))
	for i, item := range items {
		a := areas[i]
		if a.ColumnSpan == 1 && a.Column < len(cols) && cols[a.Column].Kind == TrackAuto {
			colNaturals[a.Column] = max(colNaturals[a.Column], item.size(true))
		}
		if a.RowSpan == 1 && a.Row < len(rows) && rows[a.Row].Kind == TrackAuto {
			rowNaturals[a.Row] = max(rowNaturals[a.Row], item.size(false))
		}
	}

	res := GridResult{
		Columns: SizeTracks(cols, content.Width, colGap, colNaturals),
		Rows:    SizeTracks(rows, content.Height, rowGap, rowNaturals),
		Areas:   areas,
		Items:   make([]Rect, len(items)),
	}
	res.Extent = Size{Width: res.Columns.Extent(), Height: res.Rows.Extent()}

	res.Columns.place(g.PlaceColumns, content.Width)
	res.Rows.place(g.PlaceRows, content.Height)

	for i, item := range items {
		a := areas[i]
		cellX, cellW := res.Columns.Span(a.Column, a.ColumnSpan)
		cellY, cellH := res.Rows.Span(a.Row, a.RowSpan)

		x, w := alignInCell(item, true, item.Cells.Column.Align, cellW)
		y, h := alignInCell(item, false, item.Cells.Row.Align, cellH)
		res.Items[i] = Rect{
			X:      content.X + cellX + x,
			Y:      content.Y + cellY + y,
			Width:  w,
			Height: h,
		}
	}
	return res
}

// alignInCell returns the offset and length of an item on one axis of a cell.
// Stretch fills the cell whatever the item's declared size.
func alignInCell(item GridChild, horizontal bool, align Align, cell int) (offset, length int) {
	if align == AlignStretch {
		return 0, cell
	}
	n := max(0, item.size(horizontal))
	return alignOffset(align, cell, n), n
}
