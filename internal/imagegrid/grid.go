package imagegrid

import (
	"errors"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DefaultThreshold is the luminance at and above which a pixel is alive.
const DefaultThreshold uint8 = 128

// Grid is a classified image: one alive/dead bit per pixel, row-major.
// It satisfies rle.Grid and is never modified after construction.
type Grid struct {
	width  int
	height int
	cells  []bool
	format string
}

// Width returns the image width in pixels.
func (g *Grid) Width() int { return g.width }

// Height returns the image height in pixels.
func (g *Grid) Height() int { return g.height }

// Alive reports whether pixel (x, y) met the threshold.
func (g *Grid) Alive(x, y int) bool { return g.cells[y*g.width+x] }

// Format returns the decoder name ("png", "jpeg", ...) or "" for grids
// built from in-memory images.
func (g *Grid) Format() string { return g.format }

// Load decodes the image at path and classifies it with threshold.
func Load(path string, threshold uint8) (*Grid, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, NotFound(path)
		}
		return nil, OpenFailed(err)
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, OpenFailed(err)
	}
	grid, err := FromImage(img, threshold)
	if err != nil {
		return nil, err
	}
	grid.format = format
	return grid, nil
}

// FromImage classifies an already decoded image.
func FromImage(img image.Image, threshold uint8) (*Grid, error) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil, emptyImageError()
	}

	cells := make([]bool, width*height)
	for y := 0; y < height; y++ {
		row := cells[y*width : (y+1)*width]
		for x := 0; x < width; x++ {
			row[x] = Luminance(img.At(bounds.Min.X+x, bounds.Min.Y+y)) >= threshold
		}
	}
	return &Grid{width: width, height: height, cells: cells}, nil
}

// Luminance reduces c to 8-bit luma with Rec.709 weights applied to the
// non-premultiplied channels. Alpha does not contribute.
func Luminance(c color.Color) uint8 {
	switch v := c.(type) {
	case color.Gray:
		return v.Y
	case color.Gray16:
		return narrow16(uint32(v.Y))
	case color.NRGBA64, color.RGBA64:
		n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
		return narrow16(rec709(uint32(n.R), uint32(n.G), uint32(n.B)))
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return uint8(rec709(uint32(n.R), uint32(n.G), uint32(n.B)))
}

func rec709(r, g, b uint32) uint32 {
	return (2126*r + 7152*g + 722*b) / 10000
}

// narrow16 rounds a 16-bit channel to the nearest 8-bit value.
func narrow16(v uint32) uint8 {
	return uint8((v + 128) / 257)
}
