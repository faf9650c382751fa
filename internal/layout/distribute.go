package layout

import (
	"cmp"
	"slices"
)

// distribute splits total among weights proportionally using integer division.
// Entries with a weight below 1 receive nothing. The remainder left by the
// division is handed out one unit at a time, heaviest weight first and earliest
// index among equal weights, so the shares always sum to exactly total.
func distribute(total int, weights []int) []int {
	shares := make([]int, len(weights))
	if total <= 0 {
		return shares
	}

	sum := 0
	for _, w := range weights {
		if w > 0 {
			sum += w
		}
	}
	if sum == 0 {
		return shares
	}

	given := 0
	order := make([]int, 0, len(weights))
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		shares[i] = total * w / sum
		given += shares[i]
		order = append(order, i)
	}

	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(weights[b], weights[a])
	})
	for k := 0; given < total; k++ {
		shares[order[k%len(order)]]++
		given++
	}
	return shares
}

// justifyOffsets returns the leading offset and the extra spacing inserted
// between consecutive entries when leftover space is distributed over n
// entries. Stretch behaves like start here; callers that support stretch
// handle it before asking for offsets.
func justifyOffsets(justify Justify, leftover, n int) (offset, spacing int) {
	if leftover <= 0 || n == 0 {
		return 0, 0
	}

	switch justify {
	case JustifyEnd:
		return leftover, 0
	case JustifyCenter:
		return leftover / 2, 0
	case JustifySpaceBetween:
		if n == 1 {
			return 0, 0
		}
		return 0, leftover / (n - 1)
	case JustifySpaceAround:
		spacing = leftover / n
		return spacing / 2, spacing
	case JustifySpaceEvenly:
		spacing = leftover / (n + 1)
		return spacing, spacing
	default: // JustifyStart, JustifyStretch
		return 0, 0
	}
}

// alignOffset returns the offset of an item of size itemSize inside a slot of
// size slotSize. Stretch and start pin to the slot start.
func alignOffset(align Align, slotSize, itemSize int) int {
	switch align {
	case AlignEnd:
		return slotSize - itemSize
	case AlignCenter:
		return (slotSize - itemSize) / 2
	default: // AlignStart, AlignStretch
		return 0
	}
}
