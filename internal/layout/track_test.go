package layout

import (
	"slices"
	"testing"
)

func TestResolveTracks(t *testing.T) {
	type tc struct {
		descs         []Track
		available     int
		gap           int
		wantLengths   []int
		wantPositions []int
	}

	tests := map[string]tc{
		"fraction weights share leftover": {
			descs:         []Track{Fr(1), Fr(2)},
			available:     90,
			wantLengths:   []int{30, 60},
			wantPositions: []int{0, 30},
		},
		"fractions after fixed and gaps": {
			descs:         []Track{Px(10), Fr(1), Fr(2)},
			available:     110,
			gap:           5,
			wantLengths:   []int{10, 30, 60},
			wantPositions: []int{0, 15, 50},
		},
		"fraction remainder to earliest": {
			descs:         []Track{Fr(1), Fr(1), Fr(1)},
			available:     100,
			wantLengths:   []int{34, 33, 33},
			wantPositions: []int{0, 34, 67},
		},
		"auto-fit repeat leaves leftover": {
			descs:         []Track{Repeat(50)},
			available:     170,
			wantLengths:   []int{50, 50, 50},
			wantPositions: []int{0, 50, 100},
		},
		"auto-fit repeat counts gaps": {
			descs:         []Track{Repeat(50)},
			available:     170,
			gap:           10,
			wantLengths:   []int{50, 50, 50},
			wantPositions: []int{0, 60, 120},
		},
		"fit repeat absorbs leftover": {
			descs:         []Track{RepeatFit(50)},
			available:     170,
			wantLengths:   []int{57, 57, 56},
			wantPositions: []int{0, 57, 114},
		},
		"fit repeat with no room yields nothing": {
			descs:         []Track{Px(150), RepeatFit(50)},
			available:     170,
			wantLengths:   []int{150},
			wantPositions: []int{0},
		},
		"auto-fit repeat with no room yields one": {
			descs:         []Track{Px(150), Repeat(50)},
			available:     170,
			wantLengths:   []int{150, 50},
			wantPositions: []int{0, 150},
		},
		"repeat template with fractions": {
			descs:         []Track{Repeat(60, Px(40), Fr(1))},
			available:     200,
			wantLengths:   []int{40, 27, 40, 27, 40, 26},
			wantPositions: []int{0, 40, 67, 107, 134, 174},
		},
		"zero minimum yields one instance": {
			descs:         []Track{Repeat(0, Px(10))},
			available:     100,
			wantLengths:   []int{10},
			wantPositions: []int{0},
		},
		"no available space yields one instance": {
			descs:         []Track{RepeatFit(20)},
			available:     0,
			wantLengths:   []int{20},
			wantPositions: []int{0},
		},
		"fixed overflow keeps declared sizes": {
			descs:         []Track{Px(80), Px(80)},
			available:     100,
			wantLengths:   []int{80, 80},
			wantPositions: []int{0, 80},
		},
		"fraction after overflow is zero": {
			descs:         []Track{Px(120), Fr(1)},
			available:     100,
			wantLengths:   []int{120, 0},
			wantPositions: []int{0, 120},
		},
		"auto tracks without naturals are zero": {
			descs:         []Track{AutoTrack(), Fr(1)},
			available:     40,
			wantLengths:   []int{0, 40},
			wantPositions: []int{0, 0},
		},
		"fraction weight below one counts as one": {
			descs:         []Track{Fr(0), Fr(-2)},
			available:     10,
			wantLengths:   []int{5, 5},
			wantPositions: []int{0, 5},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := ResolveTracks(tt.descs, tt.available, tt.gap)
			if !slices.Equal(got.Lengths, tt.wantLengths) {
				t.Errorf("Lengths = %v, want %v", got.Lengths, tt.wantLengths)
			}
			if !slices.Equal(got.Positions, tt.wantPositions) {
				t.Errorf("Positions = %v, want %v", got.Positions, tt.wantPositions)
			}
		})
	}
}

func TestResolveTracks_FractionFillsExactly(t *testing.T) {
	descs := []Track{Px(7), Fr(3), Fr(5), Px(11), Fr(1)}
	for available := 0; available < 300; available++ {
		got := ResolveTracks(descs, available, 3)
		want := max(available, 7+11+4*3)
		if got.Extent() != want {
			t.Fatalf("available %d: Extent() = %d, want %d", available, got.Extent(), want)
		}
	}
}

func TestResolveTracks_RepeatCeiling(t *testing.T) {
	got := ResolveTracks([]Track{Repeat(1)}, 100000, 0)
	if got.Count() != MaxRepeat {
		t.Errorf("Count() = %d, want %d", got.Count(), MaxRepeat)
	}
}

func TestSizeTracks_AutoNaturals(t *testing.T) {
	tracks := []Track{AutoTrack(), Fr(1), AutoTrack()}
	got := SizeTracks(tracks, 100, 0, []int{30, 0, 12})

	want := []int{30, 58, 12}
	if !slices.Equal(got.Lengths, want) {
		t.Errorf("Lengths = %v, want %v", got.Lengths, want)
	}
}

func TestTracks_Span(t *testing.T) {
	tracks := ResolveTracks([]Track{Px(10), Px(20)}, 100, 5)

	type tc struct {
		start, span int
		wantOffset  int
		wantLength  int
	}

	tests := map[string]tc{
		"single track":          {start: 1, span: 1, wantOffset: 15, wantLength: 20},
		"both tracks with gap":  {start: 0, span: 2, wantOffset: 0, wantLength: 35},
		"span past the end":     {start: 1, span: 3, wantOffset: 15, wantLength: 20},
		"start past the end":    {start: 5, span: 1, wantOffset: 35, wantLength: 0},
		"zero span counts as 1": {start: 0, span: 0, wantOffset: 0, wantLength: 10},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			offset, length := tracks.Span(tt.start, tt.span)
			if offset != tt.wantOffset || length != tt.wantLength {
				t.Errorf("Span(%d, %d) = (%d, %d), want (%d, %d)",
					tt.start, tt.span, offset, length, tt.wantOffset, tt.wantLength)
			}
		})
	}
}

func TestTracks_Place(t *testing.T) {
	type tc struct {
		justify       Justify
		wantLengths   []int
		wantPositions []int
	}

	tests := map[string]tc{
		"start":         {justify: JustifyStart, wantLengths: []int{20, 20}, wantPositions: []int{0, 20}},
		"center":        {justify: JustifyCenter, wantLengths: []int{20, 20}, wantPositions: []int{30, 50}},
		"end":           {justify: JustifyEnd, wantLengths: []int{20, 20}, wantPositions: []int{60, 80}},
		"stretch":       {justify: JustifyStretch, wantLengths: []int{50, 50}, wantPositions: []int{0, 50}},
		"space between": {justify: JustifySpaceBetween, wantLengths: []int{20, 20}, wantPositions: []int{0, 80}},
		"space around":  {justify: JustifySpaceAround, wantLengths: []int{20, 20}, wantPositions: []int{15, 65}},
		"space evenly":  {justify: JustifySpaceEvenly, wantLengths: []int{20, 20}, wantPositions: []int{20, 60}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tracks := ResolveTracks([]Track{Px(20), Px(20)}, 100, 0)
			tracks.place(tt.justify, 100)
			if !slices.Equal(tracks.Lengths, tt.wantLengths) {
				t.Errorf("Lengths = %v, want %v", tracks.Lengths, tt.wantLengths)
			}
			if !slices.Equal(tracks.Positions, tt.wantPositions) {
				t.Errorf("Positions = %v, want %v", tracks.Positions, tt.wantPositions)
			}
		})
	}
}
