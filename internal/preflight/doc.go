// Package preflight checks that an input path is usable before any decoding
// work starts.
//
// The CLI runs RunAll ahead of image loading and turns the first failing
// Result into the user-facing error; `img2rle inspect` shows every result.
package preflight
