// Package layout implements a pure-Go flex and grid layout engine for widget trees.
//
// Flex containers pack children along one axis with grow weights, wrapping and
// main-axis distribution. Grid containers size column and row tracks (fixed,
// fraction, auto and repeat descriptors), auto-place children with a forward
// cursor and align each child inside its cell. All arithmetic is integer.
// Types are re-exported through the root gridflex package for public consumption.
//
// The main entry point is [Calculate], which takes a [Layoutable] tree and
// computes absolute [Rect] positions for each node. [Compute] re-runs layout for
// a single container inside its current box, and [ContentExtent] reports the
// size an auto-sized container needs for its children.
package layout
