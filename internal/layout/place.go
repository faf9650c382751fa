package layout

// CellRequest is the column and row request of one grid item.
type CellRequest struct {
	Column Cell
	Row    Cell
}

// Area is the track range assigned to a grid item.
type Area struct {
	Column, ColumnSpan int
	Row, RowSpan       int
}

// cursor is the auto-placement position: primary runs along a line, cross
// counts lines. It only ever moves forward.
type cursor struct {
	primary, cross int
}

// PlaceItems assigns every request a concrete track range.
//
// Fully explicit requests are used as given, even past the declared track
// count. Auto requests are placed in declaration order by a forward-only
// cursor that walks the primary axis (columns for FlowRow) and wraps to the
// next line when the span does not fit. An item with an explicit primary
// position and an auto cross position lands on the cursor's line, or the next
// one if its position lies behind the cursor, and moves the cursor past itself.
// An item with an auto primary position and an explicit cross position takes
// the cursor position when it is on the cursor's line and position 0
// otherwise. There is no collision detection and no backfilling.
func PlaceItems(reqs []CellRequest, columns, rows int, flow Flow) []Area {
	lineLen := columns
	if flow == FlowColumn {
		lineLen = rows
	}
	lineLen = max(1, lineLen)

	areas := make([]Area, len(reqs))
	var cur cursor
	for i, req := range reqs {
		p, c := req.Column, req.Row
		if flow == FlowColumn {
			p, c = req.Row, req.Column
		}
		pSpan, cSpan := p.span(), c.span()

		var pPos, cPos int
		switch {
		case !p.IsAuto() && !c.IsAuto():
			pPos, cPos = p.Pos, c.Pos

		case !p.IsAuto():
			pPos, cPos = p.Pos, cur.cross
			if pPos < cur.primary {
				cPos++
			}
			cur = cursor{primary: pPos + pSpan, cross: cPos}

		case !c.IsAuto():
			cPos = c.Pos
			if cPos == cur.cross {
				pPos = cur.primary
				if pPos > 0 && pPos+pSpan > lineLen {
					pPos = 0
				}
				cur.primary = pPos + pSpan
			}

		default:
			if cur.primary > 0 && cur.primary+pSpan > lineLen {
				cur = cursor{cross: cur.cross + 1}
			}
			pPos, cPos = cur.primary, cur.cross
			cur.primary += pSpan
		}

		if flow == FlowColumn {
			areas[i] = Area{Column: cPos, ColumnSpan: cSpan, Row: pPos, RowSpan: pSpan}
		} else {
			areas[i] = Area{Column: pPos, ColumnSpan: pSpan, Row: cPos, RowSpan: cSpan}
		}
	}
	return areas
}
