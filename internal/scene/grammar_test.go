package scene

import (
	"errors"
	"reflect"
	"testing"

	"github.com/grindlemire/go-gridflex/internal/layout"
)

func TestParseTrack(t *testing.T) {
	type tc struct {
		input    string
		expected layout.Track
		wantErr  bool
	}

	tests := map[string]tc{
		"bare length":        {input: "40", expected: layout.Px(40)},
		"px suffix":          {input: "40px", expected: layout.Px(40)},
		"fraction":           {input: "2fr", expected: layout.Fr(2)},
		"auto":               {input: "auto", expected: layout.AutoTrack()},
		"case and spaces":    {input: "  3FR ", expected: layout.Fr(3)},
		"repeat":             {input: "repeat(30)", expected: layout.Repeat(30)},
		"repeat template":    {input: "repeat(30, 1fr, 10)", expected: layout.Repeat(30, layout.Fr(1), layout.Px(10))},
		"fit":                {input: "fit(25, auto)", expected: layout.RepeatFit(25, layout.AutoTrack())},
		"empty":              {input: "", wantErr: true},
		"negative":           {input: "-5", wantErr: true},
		"not a number":       {input: "wide", wantErr: true},
		"decimal fraction":   {input: "1.5fr", wantErr: true},
		"unknown function":   {input: "minmax(10, 1fr)", wantErr: true},
		"nested repeat":      {input: "repeat(10, fit(5))", wantErr: true},
		"repeat without min": {input: "repeat()", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseTrack(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrSyntax) {
					t.Errorf("ParseTrack(%q) error = %v, want ErrSyntax", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTrack(%q) error = %v", tt.input, err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("ParseTrack(%q) = %+v, want %+v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseTracks_ReportsIndex(t *testing.T) {
	_, err := ParseTracks([]string{"10", "1fr", "oops"})
	if err == nil {
		t.Fatal("ParseTracks should fail")
	}
	if want := `track 2 "oops": invalid syntax: length "oops" is not an integer`; err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}
}

func TestParseCell(t *testing.T) {
	type tc struct {
		input    string
		expected layout.Cell
		wantErr  bool
	}

	tests := map[string]tc{
		"empty":           {input: "", expected: layout.AutoCell(1, layout.AlignStretch)},
		"auto":            {input: "auto", expected: layout.AutoCell(1, layout.AlignStretch)},
		"auto span":       {input: "auto/3", expected: layout.AutoCell(3, layout.AlignStretch)},
		"position":        {input: "2", expected: layout.CellAt(2, 1, layout.AlignStretch)},
		"position span":   {input: "0/2 center", expected: layout.CellAt(0, 2, layout.AlignCenter)},
		"align only":      {input: "end", expected: layout.AutoCell(1, layout.AlignEnd)},
		"auto with align": {input: "auto start", expected: layout.AutoCell(1, layout.AlignStart)},
		"zero span":       {input: "1/0", wantErr: true},
		"bad align":       {input: "1 middle", wantErr: true},
		"bad position":    {input: "x/2", wantErr: true},
		"too many fields": {input: "1 start end", wantErr: true},
		"negative":        {input: "-1", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseCell(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrSyntax) {
					t.Errorf("ParseCell(%q) error = %v, want ErrSyntax", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCell(%q) error = %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ParseCell(%q) = %+v, want %+v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseJustify(t *testing.T) {
	type tc struct {
		input    string
		expected layout.Justify
		wantErr  bool
	}

	tests := map[string]tc{
		"default":       {input: "", expected: layout.JustifyStart},
		"end":           {input: "end", expected: layout.JustifyEnd},
		"space-between": {input: "space-between", expected: layout.JustifySpaceBetween},
		"space-around":  {input: "Space-Around", expected: layout.JustifySpaceAround},
		"space-evenly":  {input: "space-evenly", expected: layout.JustifySpaceEvenly},
		"unknown":       {input: "spread", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseJustify(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseJustify(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.expected {
				t.Errorf("ParseJustify(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseDirectionAndFlow(t *testing.T) {
	if d, err := ParseDirection(""); err != nil || d != layout.Row {
		t.Errorf("ParseDirection(\"\") = %v, %v, want Row", d, err)
	}
	if d, err := ParseDirection("column"); err != nil || d != layout.Column {
		t.Errorf("ParseDirection(column) = %v, %v, want Column", d, err)
	}
	if d, err := ParseDirection("none"); err != nil || d != layout.DirectionNone {
		t.Errorf("ParseDirection(none) = %v, %v, want DirectionNone", d, err)
	}
	if _, err := ParseDirection("diagonal"); !errors.Is(err, ErrSyntax) {
		t.Errorf("ParseDirection(diagonal) error = %v, want ErrSyntax", err)
	}
	if f, err := ParseFlow("column"); err != nil || f != layout.FlowColumn {
		t.Errorf("ParseFlow(column) = %v, %v, want FlowColumn", f, err)
	}
	if _, err := ParseFlow("dense"); !errors.Is(err, ErrSyntax) {
		t.Errorf("ParseFlow(dense) error = %v, want ErrSyntax", err)
	}
}

func TestParseEdges(t *testing.T) {
	type tc struct {
		input    []int
		expected layout.Edges
		wantErr  bool
	}

	tests := map[string]tc{
		"none":      {input: nil, expected: layout.Edges{}},
		"all":       {input: []int{3}, expected: layout.EdgeAll(3)},
		"symmetric": {input: []int{1, 2}, expected: layout.EdgeSymmetric(1, 2)},
		"trbl":      {input: []int{1, 2, 3, 4}, expected: layout.EdgeTRBL(1, 2, 3, 4)},
		"three":     {input: []int{1, 2, 3}, wantErr: true},
		"negative":  {input: []int{-1}, wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseEdges(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseEdges(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.expected {
				t.Errorf("ParseEdges(%v) = %+v, want %+v", tt.input, got, tt.expected)
			}
		})
	}
}
