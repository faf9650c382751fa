package layout

// FlexChild is the layout input for one flex item.
type FlexChild struct {
	Item    FlexItem
	Width   Value
	Height  Value
	Natural Size
}

// Line is one run of flex items along the main axis.
type Line struct {
	Items     []int // Item indexes in placement order
	Cross     int   // Offset of the line on the cross axis
	Thickness int   // Cross size of the line
}

// FlexResult is the outcome of one flex layout.
type FlexResult struct {
	Items []Rect // Absolute item rectangles, in item order
	Lines []Line

	// Extent is the content size the items need at their natural sizes.
	Extent Size
}

// flexItem holds intermediate calculation state for a child.
// This is allocated per layout call, not stored on nodes.
type flexItem struct {
	main  int // natural main size
	cross int // natural cross size
	grow  int
	align Align
}

// LayoutFlex packs items along the main axis of cfg inside content.
//
// Items are taken in declaration order, or reversed when cfg.Reverse is set.
// With wrap enabled a new line starts when the next item and its gap would
// pass the main length; an item is never split, so an oversized item gets a
// line of its own. In each line, growing items share what fixed items and
// gaps leave over by weight. Lines without growing items are distributed by
// cfg.Justify. Items are aligned on the cross axis inside the line thickness,
// and stretched items fill it whatever their declared cross size.
//
// A wrapped line is as thick as the largest natural cross size among its
// items. The single line of a container that does not wrap spans the whole
// cross length instead, so end and center alignment are measured against
// the container and stretch fills it. Extent always uses natural sizes.
func LayoutFlex(cfg FlexConfig, children []FlexChild, content Rect) FlexResult {
	res := FlexResult{Items: make([]Rect, len(children))}
	if len(children) == 0 {
		return res
	}

	horizontal := cfg.Direction != Column
	mainLen, crossLen := content.Width, content.Height
	mainOrigin, crossOrigin := content.X, content.Y
	if !horizontal {
		mainLen, crossLen = crossLen, mainLen
		mainOrigin, crossOrigin = crossOrigin, mainOrigin
	}
	gap := max(0, cfg.Gap)

	// Phase 1: Natural sizes and per-item properties
	items := make([]flexItem, len(children))
	for i, child := range children {
		item := &items[i]
		mainValue, crossValue := child.Width, child.Height
		naturalMain, naturalCross := child.Natural.Width, child.Natural.Height
		if !horizontal {
			mainValue, crossValue = crossValue, mainValue
			naturalMain, naturalCross = naturalCross, naturalMain
		}
		item.main = max(0, mainValue.Resolve(naturalMain))
		item.cross = max(0, crossValue.Resolve(naturalCross))
		item.grow = max(0, child.Item.Grow)
		item.align = cfg.AlignItems
		if child.Item.AlignSelf != nil {
			item.align = *child.Item.AlignSelf
		}
	}

	order := make([]int, len(children))
	for i := range order {
		order[i] = i
		if cfg.Reverse {
			order[i] = len(children) - 1 - i
		}
	}

	// Phase 2: Break into lines
	var current []int
	used := 0
	for _, i := range order {
		m := items[i].main
		if cfg.Wrap && len(current) > 0 && used+gap+m > mainLen {
			res.Lines = append(res.Lines, Line{Items: current})
			current, used = nil, 0
		}
		if len(current) > 0 {
			used += gap
		}
		used += m
		current = append(current, i)
	}
	res.Lines = append(res.Lines, Line{Items: current})

	// Phase 3: Size and position each line
	crossPos, naturalCross := 0, 0
	for li := range res.Lines {
		line := &res.Lines[li]
		line.Cross = crossPos

		fixed, natural := 0, 0
		weights := make([]int, len(line.Items))
		anyGrow := false
		for k, i := range line.Items {
			natural += items[i].main
			line.Thickness = max(line.Thickness, items[i].cross)
			if items[i].grow > 0 {
				weights[k] = items[i].grow
				anyGrow = true
				continue
			}
			fixed += items[i].main
		}
		naturalCross += line.Thickness
		if !cfg.Wrap {
			line.Thickness = max(line.Thickness, crossLen)
		}
		totalGap := gap * (len(line.Items) - 1)
		leftover := max(0, mainLen-fixed-totalGap)

		var shares []int
		offset, spacing := 0, 0
		if anyGrow {
			shares = distribute(leftover, weights)
		} else {
			offset, spacing = justifyOffsets(cfg.Justify, leftover, len(line.Items))
		}

		pos := offset
		for k, i := range line.Items {
			item := items[i]
			size := item.main
			if item.grow > 0 {
				size = shares[k]
			}

			cross := item.cross
			if item.align == AlignStretch {
				cross = line.Thickness
			}
			crossOffset := alignOffset(item.align, line.Thickness, cross)

			res.Items[i] = axisRect(horizontal,
				mainOrigin+pos, crossOrigin+crossPos+crossOffset,
				size, cross)
			pos += size + gap + spacing
		}

		res.Extent.Width = max(res.Extent.Width, natural+totalGap)
		crossPos += line.Thickness + gap
	}
	res.Extent.Height = naturalCross + gap*(len(res.Lines)-1)

	if !horizontal {
		res.Extent.Width, res.Extent.Height = res.Extent.Height, res.Extent.Width
	}
	return res
}
