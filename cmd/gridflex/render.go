package main

import (
	"flag"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/grindlemire/go-gridflex/internal/measure"
	"github.com/grindlemire/go-gridflex/internal/render"
	"github.com/grindlemire/go-gridflex/internal/scene"
)

// runRender implements the render subcommand.
func runRender(args []string) error {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	output := fs.String("o", "", "Output PNG path (default: scene name with .png)")
	scale := fs.Int("scale", 1, "Pixels per layout unit")
	labels := fs.Bool("labels", false, "Draw node names")
	content := fs.Bool("content", false, "Outline content rectangles")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("render takes exactly one scene file")
	}

	path := fs.Arg(0)
	out := *output
	if out == "" {
		out = pngName(path)
	}

	m := measure.Default()
	s, err := scene.Load(path, m)
	if err != nil {
		return err
	}
	defer s.Close()
	s.Layout()

	r := render.New(m, render.Options{Scale: *scale, Labels: *labels, Content: *content})
	if err := r.SavePNG(out, s); err != nil {
		return err
	}
	fmt.Printf("Rendered %s -> %s\n", path, out)
	return nil
}

// pngName converts a scene path to the default image path.
// Examples:
//
//	dashboard.toml       -> dashboard.png
//	scenes/menu.toml     -> scenes/menu.png
func pngName(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".png"
}
