package testsupport

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// GrayImage builds an image from rows where 'b' is a white pixel and any
// other byte a black one. Rows must share one length.
func GrayImage(rows ...string) *image.Gray {
	width := 0
	if len(rows) > 0 {
		width = len(rows[0])
	}
	img := image.NewGray(image.Rect(0, 0, width, len(rows)))
	for y, row := range rows {
		for x := 0; x < len(row); x++ {
			if row[x] == 'b' {
				img.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return img
}

// WritePNG encodes img as PNG under a temp directory and returns its path.
func WritePNG(t testing.TB, name string, img image.Image) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
	return path
}
