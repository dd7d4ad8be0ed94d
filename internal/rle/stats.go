package rle

// Summary describes the shape of a grid as the encoder sees it.
type Summary struct {
	Width         int
	Height        int
	Cells         int
	AliveCells    int
	DeadCells     int
	Runs          int
	CollapsedRows int
	DeadRows      int
}

// Stats walks g once and tallies cells, runs, and rows that take the
// all-alive or all-dead shape.
func Stats(g Grid) Summary {
	s := Summary{Width: g.Width(), Height: g.Height()}
	s.Cells = s.Width * s.Height
	for y := 0; y < s.Height; y++ {
		runs := Runs(g, y)
		s.Runs += len(runs)
		for _, run := range runs {
			if run.Alive {
				s.AliveCells += run.Length
			}
		}
		if len(runs) == 1 {
			if runs[0].Alive {
				s.CollapsedRows++
			} else {
				s.DeadRows++
			}
		}
	}
	s.DeadCells = s.Cells - s.AliveCells
	return s
}
