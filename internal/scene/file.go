package scene

import (
	"bytes"
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// Default root size used when a scene does not declare one.
const (
	DefaultWidth  = 320
	DefaultHeight = 240
)

// File is the decoded form of a scene file.
type File struct {
	Width  int                 `toml:"width"`
	Height int                 `toml:"height"`
	Grids  map[string]GridSpec `toml:"grids"`
	Root   NodeSpec            `toml:"root"`
}

// GridSpec declares a shared grid template.
type GridSpec struct {
	Columns      []string `toml:"columns"`
	Rows         []string `toml:"rows"`
	ColumnGap    int      `toml:"column_gap"`
	RowGap       int      `toml:"row_gap"`
	PlaceColumns string   `toml:"place_columns"`
	PlaceRows    string   `toml:"place_rows"`
	Flow         string   `toml:"flow"`
}

// FlexSpec declares a flex container.
type FlexSpec struct {
	Direction string `toml:"direction"`
	Wrap      bool   `toml:"wrap"`
	Reverse   bool   `toml:"reverse"`
	Justify   string `toml:"justify"`
	Align     string `toml:"align"`
	Gap       int    `toml:"gap"`
}

// NodeSpec declares one node and its children.
type NodeSpec struct {
	Name    string `toml:"name"`
	Width   *int   `toml:"width"`
	Height  *int   `toml:"height"`
	Padding []int  `toml:"padding"`
	Text    string `toml:"text"`

	// Container, at most one of the two
	Grid string    `toml:"grid"`
	Flex *FlexSpec `toml:"flex"`

	// Grid item
	Column string `toml:"column"`
	Row    string `toml:"row"`

	// Flex item
	Grow      int    `toml:"grow"`
	AlignSelf string `toml:"align_self"`

	Children []NodeSpec `toml:"children"`
}

// Decode parses scene TOML. Unknown keys are rejected so that typos do not
// silently fall back to defaults.
func Decode(data []byte) (*File, error) {
	var f File
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decoding scene: %w", err)
	}

	if f.Width <= 0 {
		f.Width = DefaultWidth
	}
	if f.Height <= 0 {
		f.Height = DefaultHeight
	}
	if f.Root.Name == "" {
		f.Root.Name = "root"
	}
	return &f, nil
}
