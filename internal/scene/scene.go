package scene

import (
	"fmt"
	"os"
	"slices"
	"strconv"

	"github.com/grindlemire/go-gridflex/internal/layout"
	"github.com/grindlemire/go-gridflex/internal/measure"
)

// Scene is a node tree built from a scene file.
type Scene struct {
	Width  int
	Height int
	Root   *layout.Node
	Grids  map[string]*layout.Grid

	texts map[*layout.Node]string
}

// Load reads and builds the scene file at path.
func Load(path string, m *measure.Text) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene: %w", err)
	}
	s, err := Parse(data, m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and builds a scene. Text leaves are measured with m.
func Parse(data []byte, m *measure.Text) (*Scene, error) {
	f, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return Build(f, m)
}

// Build creates the grids and node tree declared by f.
func Build(f *File, m *measure.Text) (*Scene, error) {
	if m == nil {
		m = measure.Default()
	}
	s := &Scene{
		Width:  f.Width,
		Height: f.Height,
		Grids:  make(map[string]*layout.Grid, len(f.Grids)),
		texts:  make(map[*layout.Node]string),
	}

	for name, spec := range f.Grids {
		g, err := buildGrid(spec)
		if err != nil {
			return nil, fmt.Errorf("grid %q: %w", name, err)
		}
		s.Grids[name] = g
	}

	root, err := s.buildNode(f.Root, f.Root.Name, m)
	if err != nil {
		return nil, err
	}
	s.Root = root
	return s, nil
}

func buildGrid(spec GridSpec) (*layout.Grid, error) {
	cols, err := ParseTracks(spec.Columns)
	if err != nil {
		return nil, fmt.Errorf("columns: %w", err)
	}
	rows, err := ParseTracks(spec.Rows)
	if err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	placeCols, err := ParseJustify(spec.PlaceColumns)
	if err != nil {
		return nil, fmt.Errorf("place_columns: %w", err)
	}
	placeRows, err := ParseJustify(spec.PlaceRows)
	if err != nil {
		return nil, fmt.Errorf("place_rows: %w", err)
	}
	flow, err := ParseFlow(spec.Flow)
	if err != nil {
		return nil, fmt.Errorf("flow: %w", err)
	}
	if spec.ColumnGap < 0 || spec.RowGap < 0 {
		return nil, fmt.Errorf("gap: %w: negative gap", ErrSyntax)
	}

	g := layout.NewGrid(cols, rows)
	g.SetGap(spec.ColumnGap, spec.RowGap)
	g.SetPlace(placeCols, placeRows)
	g.SetFlow(flow)
	return g, nil
}

// buildNode creates the node for spec. path names the node in errors.
func (s *Scene) buildNode(spec NodeSpec, path string, m *measure.Text) (*layout.Node, error) {
	style, err := s.nodeStyle(spec)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	n := layout.NewNode(style)
	n.Name = spec.Name
	if spec.Text != "" {
		n.Measure = m.Func(spec.Text)
		s.texts[n] = spec.Text
	}

	for i, childSpec := range spec.Children {
		childPath := path + "/" + strconv.Itoa(i)
		if childSpec.Name != "" {
			childPath = path + "/" + childSpec.Name
		}
		child, err := s.buildNode(childSpec, childPath, m)
		if err != nil {
			n.Release()
			return nil, err
		}
		n.AddChild(child)
	}
	return n, nil
}

func (s *Scene) nodeStyle(spec NodeSpec) (layout.Style, error) {
	style := layout.DefaultStyle()

	if spec.Width != nil {
		if *spec.Width < 0 {
			return style, fmt.Errorf("width: %w: negative size", ErrSyntax)
		}
		style.Width = layout.Fixed(*spec.Width)
	}
	if spec.Height != nil {
		if *spec.Height < 0 {
			return style, fmt.Errorf("height: %w: negative size", ErrSyntax)
		}
		style.Height = layout.Fixed(*spec.Height)
	}

	padding, err := ParseEdges(spec.Padding)
	if err != nil {
		return style, err
	}
	style.Padding = padding

	switch {
	case spec.Grid != "" && spec.Flex != nil:
		return style, fmt.Errorf("%w: grid and flex are exclusive", ErrSyntax)
	case spec.Grid != "":
		g, ok := s.Grids[spec.Grid]
		if !ok {
			return style, fmt.Errorf("unknown grid %q", spec.Grid)
		}
		style.Grid = g
		style.Flex.Direction = layout.DirectionNone
	case spec.Flex != nil:
		cfg, err := flexConfig(*spec.Flex)
		if err != nil {
			return style, fmt.Errorf("flex: %w", err)
		}
		style.Flex = cfg
	}

	if style.Column, err = ParseCell(spec.Column); err != nil {
		return style, fmt.Errorf("column: %w", err)
	}
	if style.Row, err = ParseCell(spec.Row); err != nil {
		return style, fmt.Errorf("row: %w", err)
	}

	if spec.Grow < 0 {
		return style, fmt.Errorf("grow: %w: negative weight", ErrSyntax)
	}
	style.Item.Grow = spec.Grow
	if spec.AlignSelf != "" {
		a, err := ParseAlign(spec.AlignSelf)
		if err != nil {
			return style, fmt.Errorf("align_self: %w", err)
		}
		style.Item.AlignSelf = &a
	}
	return style, nil
}

func flexConfig(spec FlexSpec) (layout.FlexConfig, error) {
	dir, err := ParseDirection(spec.Direction)
	if err != nil {
		return layout.FlexConfig{}, err
	}
	justify, err := ParseJustify(spec.Justify)
	if err != nil {
		return layout.FlexConfig{}, err
	}
	align := layout.AlignStretch
	if spec.Align != "" {
		if align, err = ParseAlign(spec.Align); err != nil {
			return layout.FlexConfig{}, err
		}
	}
	if spec.Gap < 0 {
		return layout.FlexConfig{}, fmt.Errorf("%w: negative gap", ErrSyntax)
	}
	return layout.FlexConfig{
		Direction:  dir,
		Wrap:       spec.Wrap,
		Reverse:    spec.Reverse,
		Justify:    justify,
		AlignItems: align,
		Gap:        spec.Gap,
	}, nil
}

// Text returns the text drawn in n, if any.
func (s *Scene) Text(n *layout.Node) string {
	return s.texts[n]
}

// Layout computes the tree inside the scene size.
func (s *Scene) Layout() {
	layout.Calculate(s.Root, s.Width, s.Height)
}

// Walk calls fn for every node in depth-first order.
func (s *Scene) Walk(fn func(n *layout.Node, depth int)) {
	var walk func(n *layout.Node, depth int)
	walk = func(n *layout.Node, depth int) {
		fn(n, depth)
		for _, c := range n.Children {
			walk(c, depth+1)
		}
	}
	if s.Root != nil {
		walk(s.Root, 0)
	}
}

// GridNames returns the names of the declared grids in sorted order.
func (s *Scene) GridNames() []string {
	names := make([]string, 0, len(s.Grids))
	for name := range s.Grids {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Close detaches the scene's containers from their grid templates.
func (s *Scene) Close() {
	if s.Root != nil {
		s.Root.Release()
	}
}
