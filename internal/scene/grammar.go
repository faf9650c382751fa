package scene

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/grindlemire/go-gridflex/internal/layout"
)

// ErrSyntax is wrapped by every grammar error.
var ErrSyntax = errors.New("invalid syntax")

func syntaxErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrSyntax, fmt.Sprintf(format, args...))
}

// ParseTrack parses a single track descriptor.
func ParseTrack(s string) (layout.Track, error) {
	return parseTrack(strings.ToLower(strings.TrimSpace(s)), true)
}

func parseTrack(s string, allowRepeat bool) (layout.Track, error) {
	switch {
	case s == "":
		return layout.Track{}, syntaxErr("empty track")
	case s == "auto":
		return layout.AutoTrack(), nil
	case strings.HasSuffix(s, ")"):
		name, args, ok := strings.Cut(strings.TrimSuffix(s, ")"), "(")
		if !ok || (name != "repeat" && name != "fit") {
			return layout.Track{}, syntaxErr("unknown track function %q", s)
		}
		if !allowRepeat || strings.ContainsAny(args, "()") {
			return layout.Track{}, syntaxErr("%s() cannot be nested", name)
		}
		return parseRepeat(name == "fit", args)
	case strings.HasSuffix(s, "fr"):
		n, err := parseLength(strings.TrimSuffix(s, "fr"))
		if err != nil {
			return layout.Track{}, err
		}
		return layout.Fr(n), nil
	default:
		n, err := parseLength(strings.TrimSuffix(s, "px"))
		if err != nil {
			return layout.Track{}, err
		}
		return layout.Px(n), nil
	}
}

func parseRepeat(fit bool, args string) (layout.Track, error) {
	parts := strings.Split(args, ",")
	minLength, err := parseLength(strings.TrimSpace(parts[0]))
	if err != nil {
		return layout.Track{}, err
	}

	var template []layout.Track
	for _, p := range parts[1:] {
		t, err := parseTrack(strings.TrimSpace(p), false)
		if err != nil {
			return layout.Track{}, err
		}
		template = append(template, t)
	}

	if fit {
		return layout.RepeatFit(minLength, template...), nil
	}
	return layout.Repeat(minLength, template...), nil
}

func parseLength(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, syntaxErr("length %q is not an integer", s)
	}
	if n < 0 {
		return 0, syntaxErr("length %d is negative", n)
	}
	return n, nil
}

// ParseTracks parses a track list. Errors name the failing index.
func ParseTracks(list []string) ([]layout.Track, error) {
	tracks := make([]layout.Track, 0, len(list))
	for i, s := range list {
		t, err := ParseTrack(s)
		if err != nil {
			return nil, fmt.Errorf("track %d %q: %w", i, s, err)
		}
		tracks = append(tracks, t)
	}
	return tracks, nil
}

// ParseCell parses a cell request: "auto", "auto/SPAN", "POS" or "POS/SPAN",
// optionally followed by an alignment word. An alignment word alone requests
// an auto-placed cell. The empty string is an auto-placed stretched cell.
func ParseCell(s string) (layout.Cell, error) {
	fields := strings.Fields(strings.ToLower(s))
	cell := layout.AutoCell(1, layout.AlignStretch)

	switch len(fields) {
	case 0:
		return cell, nil
	case 1:
		if align, err := ParseAlign(fields[0]); err == nil {
			cell.Align = align
			return cell, nil
		}
	case 2:
		align, err := ParseAlign(fields[1])
		if err != nil {
			return layout.Cell{}, err
		}
		cell.Align = align
	default:
		return layout.Cell{}, syntaxErr("cell %q has too many fields", s)
	}

	pos, span, hasSpan := strings.Cut(fields[0], "/")
	if pos != "auto" {
		n, err := parseLength(pos)
		if err != nil {
			return layout.Cell{}, err
		}
		cell.Pos = n
	}
	if hasSpan {
		n, err := parseLength(span)
		if err != nil {
			return layout.Cell{}, err
		}
		if n < 1 {
			return layout.Cell{}, syntaxErr("span must be at least 1")
		}
		cell.Span = n
	}
	return cell, nil
}

var justifyWords = map[string]layout.Justify{
	"start":         layout.JustifyStart,
	"end":           layout.JustifyEnd,
	"center":        layout.JustifyCenter,
	"stretch":       layout.JustifyStretch,
	"space-between": layout.JustifySpaceBetween,
	"space-around":  layout.JustifySpaceAround,
	"space-evenly":  layout.JustifySpaceEvenly,
}

// ParseJustify parses a placement word. The empty string is start.
func ParseJustify(s string) (layout.Justify, error) {
	if s == "" {
		return layout.JustifyStart, nil
	}
	j, ok := justifyWords[strings.ToLower(s)]
	if !ok {
		return 0, syntaxErr("unknown placement %q", s)
	}
	return j, nil
}

var alignWords = map[string]layout.Align{
	"start":   layout.AlignStart,
	"end":     layout.AlignEnd,
	"center":  layout.AlignCenter,
	"stretch": layout.AlignStretch,
}

// ParseAlign parses an alignment word.
func ParseAlign(s string) (layout.Align, error) {
	a, ok := alignWords[strings.ToLower(s)]
	if !ok {
		return 0, syntaxErr("unknown alignment %q", s)
	}
	return a, nil
}

// ParseDirection parses a flex direction. The empty string is row.
func ParseDirection(s string) (layout.Direction, error) {
	switch strings.ToLower(s) {
	case "", "row":
		return layout.Row, nil
	case "column":
		return layout.Column, nil
	case "none":
		return layout.DirectionNone, nil
	}
	return 0, syntaxErr("unknown direction %q", s)
}

// ParseFlow parses a grid auto-placement flow. The empty string is row.
func ParseFlow(s string) (layout.Flow, error) {
	switch strings.ToLower(s) {
	case "", "row":
		return layout.FlowRow, nil
	case "column":
		return layout.FlowColumn, nil
	}
	return 0, syntaxErr("unknown flow %q", s)
}

// ParseEdges converts a padding list with CSS shorthand semantics:
// one value for all sides, two for vertical and horizontal, four for
// top, right, bottom, left.
func ParseEdges(values []int) (layout.Edges, error) {
	for _, v := range values {
		if v < 0 {
			return layout.Edges{}, syntaxErr("padding %d is negative", v)
		}
	}
	switch len(values) {
	case 0:
		return layout.Edges{}, nil
	case 1:
		return layout.EdgeAll(values[0]), nil
	case 2:
		return layout.EdgeSymmetric(values[0], values[1]), nil
	case 4:
		return layout.EdgeTRBL(values[0], values[1], values[2], values[3]), nil
	}
	return layout.Edges{}, syntaxErr("padding takes 1, 2 or 4 values, got %d", len(values))
}
