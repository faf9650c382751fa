package layout

// MaxRepeat is the most instances a single repeat descriptor expands to.
const MaxRepeat = 2048

// TrackKind identifies the variant held by a Track.
type TrackKind uint8

const (
	TrackFixed    TrackKind = iota // Length pixels
	TrackFraction                  // Weight shares of the leftover space
	TrackAuto                      // Largest natural size of the items in the track
	TrackRepeat                    // Template repeated as often as space allows
)

// Track describes one column or row, or a repeated group of them.
type Track struct {
	Kind TrackKind

	// Length is the fixed length for TrackFixed and the minimum instance
	// length for TrackRepeat.
	Length int

	// Weight is the fraction weight for TrackFraction.
	Weight int

	// Fit selects the fit variant of TrackRepeat: only whole instances that fit
	// are created (possibly none) and they absorb the leftover space.
	Fit bool

	// Template is the track group repeated by TrackRepeat. An empty template
	// repeats a single track of Length pixels.
	Template []Track

	fill bool // expanded from a fit repeat
}

// Px returns a fixed track of n pixels.
func Px(n int) Track {
	return Track{Kind: TrackFixed, Length: max(0, n)}
}

// Fr returns a fraction track. Weights below 1 count as 1.
func Fr(weight int) Track {
	return Track{Kind: TrackFraction, Weight: max(1, weight)}
}

// AutoTrack returns a track sized by the natural size of its items.
func AutoTrack() Track {
	return Track{Kind: TrackAuto}
}

// Repeat returns an auto-fit repeat: the template is repeated as many times as
// instances of minLength fit the available space, and at least once.
func Repeat(minLength int, template ...Track) Track {
	return Track{Kind: TrackRepeat, Length: minLength, Template: template}
}

// RepeatFit returns the fit variant of Repeat.
func RepeatFit(minLength int, template ...Track) Track {
	return Track{Kind: TrackRepeat, Length: minLength, Template: template, Fit: true}
}

// Tracks is the resolved geometry of one grid axis.
type Tracks struct {
	Lengths   []int
	Positions []int // Offset of each track from the start of the grid
	Gap       int
}

// Count returns the number of materialized tracks.
func (t Tracks) Count() int {
	return len(t.Lengths)
}

// Extent returns the sum of all track lengths plus the gaps between them.
func (t Tracks) Extent() int {
	total := 0
	for _, l := range t.Lengths {
		total += l
	}
	if n := len(t.Lengths); n > 1 {
		total += t.Gap * (n - 1)
	}
	return total
}

// end returns the offset where the last track ends.
func (t Tracks) end() int {
	n := len(t.Lengths)
	if n == 0 {
		return 0
	}
	return t.Positions[n-1] + t.Lengths[n-1]
}

// Span returns the offset and length covered by span tracks starting at start.
// Tracks past the end have zero length and sit at the grid edge.
func (t Tracks) Span(start, span int) (offset, length int) {
	n := len(t.Lengths)
	edge := t.end()

	first := edge
	if start >= 0 && start < n {
		first = t.Positions[start]
	}
	last := start + max(1, span) - 1
	stop := edge
	if last >= 0 && last < n {
		stop = t.Positions[last] + t.Lengths[last]
	}
	return first, max(0, stop-first)
}

// ResolveTracks expands and sizes descs against available space. Auto tracks
// resolve to zero; use ExpandTracks and SizeTracks when natural sizes are known.
func ResolveTracks(descs []Track, available, gap int) Tracks {
	return SizeTracks(ExpandTracks(descs, available, gap), available, gap, nil)
}

// ExpandTracks replaces every repeat descriptor by its concrete instances.
//
// Instances are counted from the space left after fixed tracks and the gaps
// already committed; fraction and auto tracks count as zero. Available space
// or a minimum instance length of zero or less yields exactly one instance.
func ExpandTracks(descs []Track, available, gap int) []Track {
	gap = max(0, gap)

	committed, count := 0, 0
	for _, d := range descs {
		if d.Kind == TrackRepeat {
			continue
		}
		committed += fixedLength(d)
		count++
	}

	out := make([]Track, 0, len(descs))
	for _, d := range descs {
		if d.Kind != TrackRepeat {
			out = append(out, d)
			continue
		}

		template := repeatTemplate(d)
		free := available - committed - gap*max(0, count-1)
		n := repeatCount(d, template, available, free, gap, count == 0)
		for range n {
			for _, t := range template {
				t.fill = d.Fit
				out = append(out, t)
				committed += fixedLength(t)
				count++
			}
		}
	}
	return out
}

// repeatTemplate flattens a repeat's template. Nested repeats become fixed
// tracks of their minimum length.
func repeatTemplate(d Track) []Track {
	if len(d.Template) == 0 {
		return []Track{Px(d.Length)}
	}
	template := make([]Track, len(d.Template))
	for i, t := range d.Template {
		if t.Kind == TrackRepeat {
			t = Px(t.Length)
		}
		template[i] = t
	}
	return template
}

// repeatCount returns how many instances of a repeat fit in free space.
// leading is true when the repeat would be the first track, which saves one gap.
func repeatCount(d Track, template []Track, available, free, gap int, leading bool) int {
	if available <= 0 || d.Length <= 0 {
		return 1
	}

	if leading {
		free += gap
	}
	n := max(0, free) / (d.Length + gap*len(template))
	if !d.Fit {
		n = max(1, n)
	}
	return min(n, MaxRepeat)
}

// SizeTracks resolves the length of every expanded track.
//
// naturals holds the natural length of each auto track by index and may be
// nil or short. Leftover space after fixed lengths, auto lengths and gaps goes
// to fraction tracks by weight, or, without fraction tracks, equally to tracks
// expanded from a fit repeat. Without either, tracks keep their declared sizes
// even when they overflow.
func SizeTracks(tracks []Track, available, gap int, naturals []int) Tracks {
	gap = max(0, gap)
	n := len(tracks)
	result := Tracks{
		Lengths:   make([]int, n),
		Positions: make([]int, n),
		Gap:       gap,
	}
	if n == 0 {
		return result
	}

	used := gap * (n - 1)
	weights := make([]int, n)
	fills := make([]int, n)
	hasFraction, hasFill := false, false
	for i, t := range tracks {
		switch t.Kind {
		case TrackFraction:
			weights[i] = max(1, t.Weight)
			hasFraction = true
		case TrackAuto:
			if i < len(naturals) {
				result.Lengths[i] = max(0, naturals[i])
			}
		default:
			result.Lengths[i] = fixedLength(t)
		}
		if t.fill {
			fills[i] = 1
			hasFill = true
		}
		used += result.Lengths[i]
	}

	leftover := max(0, available-used)
	var shares []int
	switch {
	case hasFraction:
		shares = distribute(leftover, weights)
	case hasFill:
		shares = distribute(leftover, fills)
	}
	for i := range shares {
		result.Lengths[i] += shares[i]
	}

	result.layoutPositions(0, 0)
	return result
}

// layoutPositions recomputes Positions from Lengths with a leading offset and
// extra spacing added to every gap.
func (t *Tracks) layoutPositions(offset, spacing int) {
	pos := offset
	for i, l := range t.Lengths {
		t.Positions[i] = pos
		pos += l + t.Gap + spacing
	}
}

// place distributes the space between the track extent and available
// according to justify. Overflowing tracks are left start-aligned.
func (t *Tracks) place(justify Justify, available int) {
	leftover := available - t.Extent()
	if leftover <= 0 || len(t.Lengths) == 0 {
		return
	}

	if justify == JustifyStretch {
		ones := make([]int, len(t.Lengths))
		for i := range ones {
			ones[i] = 1
		}
		for i, s := range distribute(leftover, ones) {
			t.Lengths[i] += s
		}
		t.layoutPositions(0, 0)
		return
	}

	offset, spacing := justifyOffsets(justify, leftover, len(t.Lengths))
	t.layoutPositions(offset, spacing)
}

func fixedLength(t Track) int {
	if t.Kind == TrackFixed {
		return max(0, t.Length)
	}
	return 0
}
