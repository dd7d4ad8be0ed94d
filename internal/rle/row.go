package rle

import (
	"strconv"
	"strings"
)

// Run is a maximal sequence of equal-state cells within one row.
type Run struct {
	Alive  bool
	Length int
	StartX int
}

// Symbol returns the alphabet symbol for the run's state.
func (r Run) Symbol() byte {
	return symbolFor(r.Alive)
}

// Runs partitions row y of g into maximal runs, left to right.
func Runs(g Grid, y int) []Run {
	width := g.Width()
	if width <= 0 {
		return nil
	}
	runs := make([]Run, 0, 4)
	current := Run{Alive: g.Alive(0, y), Length: 1}
	for x := 1; x < width; x++ {
		alive := g.Alive(x, y)
		if alive == current.Alive {
			current.Length++
			continue
		}
		runs = append(runs, current)
		current = Run{Alive: alive, Length: 1, StartX: x}
	}
	return append(runs, current)
}

// EncodeRow returns the fragment for row y. A row made of a single alive
// run encodes to the empty string; all-dead rows are always spelled out.
func EncodeRow(g Grid, y int) string {
	return encodeRuns(Runs(g, y))
}

// EncodeRows runs the row pass over every row of g, top to bottom.
func EncodeRows(g Grid) []string {
	height := g.Height()
	fragments := make([]string, height)
	for y := 0; y < height; y++ {
		fragments[y] = EncodeRow(g, y)
	}
	return fragments
}

func encodeRuns(runs []Run) string {
	if len(runs) == 1 && runs[0].Alive {
		return ""
	}
	var b strings.Builder
	for _, run := range runs {
		writeCounted(&b, run.Length, run.Symbol())
	}
	return b.String()
}

// writeCounted emits sym prefixed by n in decimal, omitting the count when
// n is 1.
func writeCounted(b *strings.Builder, n int, sym byte) {
	if n > 1 {
		b.WriteString(strconv.Itoa(n))
	}
	b.WriteByte(sym)
}
