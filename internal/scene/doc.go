// Package scene loads layout trees from TOML scene files.
//
// A scene declares the root size, named grid templates that any number of
// containers may share, and a tree of nodes. Tracks are written as strings:
//
//	"40" or "40px"        fixed length
//	"2fr"                 fraction of the free space
//	"auto"                largest natural size of the items in the track
//	"repeat(30, 1fr)"     as many instances as fit, at least one
//	"fit(30)"             as many instances as fit, possibly none
//
// Cells are written as "POS", "POS/SPAN", "auto" or "auto/SPAN", optionally
// followed by an alignment word ("start", "end", "center", "stretch").
package scene
