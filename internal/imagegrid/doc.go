// Package imagegrid turns image files into the binary cell grids consumed by
// the rle encoder.
//
// Decoding goes through the standard image registry. PNG, JPEG and GIF come
// from the standard library; BMP, TIFF and WebP are registered from
// golang.org/x/image. Each pixel is reduced to 8-bit luminance using Rec.709
// weights on its non-premultiplied RGB channels (alpha is ignored) and marked
// alive when the luminance reaches the configured threshold.
package imagegrid
