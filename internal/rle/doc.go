// Package rle encodes binary cell grids into the compact run-length text
// format emitted by img2rle.
//
// Encoding happens in two passes. The row pass turns every row into a
// fragment of runs ("3b2o"), dropping rows that are entirely alive. The
// separator pass joins the fragments with '$' and folds back-to-back
// separators into a counted separator ("4$"). A terminating '!' closes the
// stream.
//
// Encode is a pure function of the grid: it never mutates its input and
// has no failure modes for grids of at least one cell.
package rle
