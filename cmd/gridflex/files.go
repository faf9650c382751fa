package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const sceneExt = ".toml"

// collectSceneFiles finds all scene files from the given paths.
// Supports:
//   - Direct file paths: "dashboard.toml"
//   - Directory paths: "./scenes"
//   - Recursive pattern: "./..."
func collectSceneFiles(paths []string) ([]string, error) {
	var files []string

	for _, path := range paths {
		if strings.HasSuffix(path, "/...") {
			root := strings.TrimSuffix(path, "/...")
			if root == "" {
				root = "."
			}

			err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if !d.IsDir() && strings.HasSuffix(p, sceneExt) {
					files = append(files, p)
				}
				return nil
			})
			if err != nil {
				return nil, fmt.Errorf("walking %s: %w", root, err)
			}
			continue
		}

		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}

		if info.IsDir() {
			// Non-recursive
			entries, err := os.ReadDir(path)
			if err != nil {
				return nil, fmt.Errorf("reading directory %s: %w", path, err)
			}
			for _, entry := range entries {
				if !entry.IsDir() && strings.HasSuffix(entry.Name(), sceneExt) {
					files = append(files, filepath.Join(path, entry.Name()))
				}
			}
		} else {
			// Explicit files are taken whatever their extension
			files = append(files, path)
		}
	}

	return files, nil
}
