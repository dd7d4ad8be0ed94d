// Package output delivers an encoded grid to its destination.
//
// Text mode writes the encoded string, optionally followed by a newline.
// JSON mode wraps it in a small envelope with the image dimensions. File
// destinations are replaced atomically while holding an advisory lock on
// "<path>.lock", so concurrent runs targeting the same file never interleave.
package output
