package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/go-gridflex/internal/debug"
	"github.com/grindlemire/go-gridflex/internal/layout"
	"github.com/grindlemire/go-gridflex/internal/measure"
	"github.com/grindlemire/go-gridflex/internal/scene"
)

// runLayout implements the layout subcommand.
// Scenes are laid out concurrently and printed in argument order.
func runLayout(args []string) error {
	fs := flag.NewFlagSet("layout", flag.ExitOnError)
	verbose := fs.Bool("v", false, "Print content rects and container modes")
	debugPath := fs.String("debug", "", "Path to debug log file")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *debugPath != "" {
		if err := debug.Init(*debugPath); err != nil {
			return err
		}
		defer debug.Close()
	}

	paths := fs.Args()
	if len(paths) == 0 {
		paths = []string{"."}
	}

	files, err := collectSceneFiles(paths)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no %s files found", sceneExt)
	}

	return layoutFiles(os.Stdout, os.Stderr, files, *verbose)
}

// layoutFiles lays out every file and writes the trees to out in order.
// Per-file errors go to errOut and are counted.
func layoutFiles(out, errOut io.Writer, files []string, verbose bool) error {
	type result struct {
		text string
		err  error
	}
	results := make([]result, len(files))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range files {
		g.Go(func() error {
			text, err := layoutFile(path, verbose)
			results[i] = result{text: text, err: err}
			return nil
		})
	}
	g.Wait()

	var errorCount int
	for i, res := range results {
		if res.err != nil {
			fmt.Fprintf(errOut, "%v\n", res.err)
			errorCount++
			continue
		}
		if i > 0 {
			fmt.Fprintln(out)
		}
		io.WriteString(out, res.text)
	}

	if errorCount > 0 {
		return fmt.Errorf("%d file(s) had errors", errorCount)
	}
	return nil
}

// layoutFile loads one scene, computes it and returns the printed tree.
func layoutFile(path string, verbose bool) (string, error) {
	s, err := scene.Load(path, measure.Default())
	if err != nil {
		return "", err
	}
	defer s.Close()

	debug.Log("layout: %s (%dx%d)", path, s.Width, s.Height)
	s.Layout()
	if debug.Enabled() {
		for _, name := range s.GridNames() {
			g := s.Grids[name]
			debug.Log("layout: %s grid %q declares %d column(s), %d row(s)", path, name, len(g.Columns), len(g.Rows))
		}
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s (%dx%d)\n", path, s.Width, s.Height)
	writeTree(&buf, s, verbose)
	return buf.String(), nil
}

// writeTree prints one line per node: indented name, then the box.
func writeTree(w io.Writer, s *scene.Scene, verbose bool) {
	s.Walk(func(n *layout.Node, depth int) {
		name := n.Name
		if name == "" {
			name = "-"
		}
		fmt.Fprintf(w, "%s%s %s", strings.Repeat("  ", depth), name, formatRect(n.Rect()))
		if verbose {
			fmt.Fprintf(w, " content %s", formatRect(n.ContentRect()))
			if mode := containerMode(n); mode != "" {
				fmt.Fprintf(w, " %s", mode)
			}
		}
		fmt.Fprintln(w)
	})
}

func formatRect(r layout.Rect) string {
	return fmt.Sprintf("%d,%d %dx%d", r.X, r.Y, r.Width, r.Height)
}

// containerMode describes how a node lays out its children.
func containerMode(n *layout.Node) string {
	if len(n.Children) == 0 {
		return ""
	}
	style := n.Style
	switch {
	case style.Grid != nil:
		return fmt.Sprintf("grid %dx%d", len(style.Grid.Columns), len(style.Grid.Rows))
	case style.Flex.Direction == layout.Row:
		return "flex row"
	case style.Flex.Direction == layout.Column:
		return "flex column"
	}
	return ""
}
