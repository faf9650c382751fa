// Package main provides the CLI tool for gridflex scene files.
//
// Usage:
//
//	gridflex layout [path...]         Print the computed rectangles
//	gridflex render -o out.png scene  Draw a scene to PNG
//	gridflex check [path...]          Validate scene files
//	gridflex help                     Show help
//
// Examples:
//
//	gridflex layout ./...             Lay out every .toml scene recursively
//	gridflex layout -v dashboard.toml Include content rects and container modes
//	gridflex render dashboard.toml    Write dashboard.png next to the scene
package main

import (
	"fmt"
	"os"
)

const version = "0.1.0"

const usage = `gridflex - grid and flex layout for scene files

Usage:
  gridflex <command> [options] [path...]

Commands:
  layout      Compute and print the rectangles of each scene
  render      Draw a scene to a PNG image
  check       Validate scene files without laying them out
  version     Print version information
  help        Show this help message

Options:
  -v              Verbose output
  -debug <path>   Write engine debug messages to path (layout)
  -o <path>       Output image (render)
  -scale <n>      Pixels per layout unit (render)
  -labels         Draw node names (render)

Examples:
  gridflex layout ./...                   Lay out all scenes recursively
  gridflex layout -v dashboard.toml       Verbose rectangles
  gridflex layout -debug /tmp/gf.log a.toml
  gridflex render -o out.png -scale 2 dashboard.toml
  gridflex check scenes/

Debug logging can also be enabled with GRIDFLEX_DEBUG=<path>.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "layout":
		if err := runLayout(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "render":
		if err := runRender(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "check":
		if err := runCheck(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("gridflex version %s\n", version)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		fmt.Print(usage)
		os.Exit(1)
	}
}
