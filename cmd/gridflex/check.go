package main

import (
	"fmt"
	"os"

	"github.com/grindlemire/go-gridflex/internal/layout"
	"github.com/grindlemire/go-gridflex/internal/measure"
	"github.com/grindlemire/go-gridflex/internal/scene"
)

// runCheck implements the check subcommand.
// It loads scene files and builds their trees without computing layout.
func runCheck(args []string) error {
	verbose := false
	var paths []string

	for _, arg := range args {
		if arg == "-v" || arg == "--verbose" {
			verbose = true
		} else {
			paths = append(paths, arg)
		}
	}

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

	if verbose {
		fmt.Printf("Checking %d scene file(s)\n", len(files))
	}

	m := measure.Default()
	var errorCount int
	for _, path := range files {
		summary, err := checkFile(path, m)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			errorCount++
			continue
		}
		if verbose {
			fmt.Printf("%s: %s\n", path, summary)
		}
	}

	if errorCount > 0 {
		return fmt.Errorf("%d file(s) had errors", errorCount)
	}

	if verbose {
		fmt.Printf("All %d file(s) passed checks\n", len(files))
	}
	return nil
}

// checkFile builds a scene and describes it.
func checkFile(path string, m *measure.Text) (string, error) {
	s, err := scene.Load(path, m)
	if err != nil {
		return "", err
	}
	defer s.Close()

	nodes := 0
	s.Walk(func(*layout.Node, int) { nodes++ })
	return fmt.Sprintf("%d node(s), grids %v", nodes, s.GridNames()), nil
}
