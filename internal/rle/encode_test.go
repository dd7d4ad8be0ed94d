package rle_test

import (
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"img2rle/internal/rle"
)

func TestEncodeKnownGrids(t *testing.T) {
	tests := []struct {
		name string
		grid rle.BoolGrid
		want string
	}{
		{name: "single alive cell", grid: rle.ParseBoolGrid("b"), want: "!"},
		{name: "single dead cell", grid: rle.ParseBoolGrid("o"), want: "o!"},
		{name: "alive then dead", grid: rle.ParseBoolGrid("bo"), want: "bo!"},
		{name: "dead row", grid: rle.ParseBoolGrid("ooooo"), want: "5o!"},
		{name: "alive row", grid: rle.ParseBoolGrid("bbbbbbbbbbbb"), want: "!"},
		{name: "mixed runs", grid: rle.ParseBoolGrid("bbbooob"), want: "3b3ob!"},
		{
			name: "two alive rows between content",
			grid: rle.ParseBoolGrid("bo", "bb", "bb", "ob"),
			want: "bo3$ob!",
		},
		{
			name: "single alive row between content",
			grid: rle.ParseBoolGrid("bo", "bb", "ob"),
			want: "bo2$ob!",
		},
		{
			name: "dead rows are never collapsed",
			grid: rle.ParseBoolGrid("oo", "oo", "oo"),
			want: "2o$2o$2o!",
		},
		{
			name: "leading alive rows",
			grid: rle.ParseBoolGrid("bbb", "bbb", "obo"),
			want: "2$obo!",
		},
		{
			name: "trailing alive rows keep their separators",
			grid: rle.ParseBoolGrid("obo", "bbb", "bbb"),
			want: "obo2$!",
		},
		{
			name: "all alive grid",
			grid: rle.ParseBoolGrid("bb", "bb", "bb"),
			want: "2$!",
		},
		{
			name: "two row grid with one alive row",
			grid: rle.ParseBoolGrid("bb", "oo"),
			want: "$2o!",
		},
		{
			name: "long runs use multi-digit counts",
			grid: rle.ParseBoolGrid(strings.Repeat("o", 12) + strings.Repeat("b", 10) + "o"),
			want: "12o10bo!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rle.Encode(tt.grid); got != tt.want {
				t.Fatalf("Encode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEncodeTwoConsecutiveAliveRowsCompress(t *testing.T) {
	grid := rle.ParseBoolGrid("bob", "bbb", "bbb", "bob", "bob")
	got := rle.Encode(grid)
	if !strings.Contains(got, "3$") {
		t.Fatalf("expected compressed separator run in %q", got)
	}
	if strings.Contains(got, "$$") {
		t.Fatalf("expected no adjacent separators in %q", got)
	}
	if got != "bob3$bob$bob!" {
		t.Fatalf("unexpected encoding %q", got)
	}
}

func TestEncodeTerminatorAppearsOnceAtEnd(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		grid := randomGrid(rng, 1+rng.Intn(20), 1+rng.Intn(20))
		got := rle.Encode(grid)
		if !strings.HasSuffix(got, "!") {
			t.Fatalf("encoding %q does not end with terminator", got)
		}
		if strings.Count(got, "!") != 1 {
			t.Fatalf("encoding %q contains more than one terminator", got)
		}
	}
}

func TestEncodeRoundTripsThroughDecoder(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 300; i++ {
		width := 1 + rng.Intn(16)
		height := 1 + rng.Intn(16)
		grid := randomGrid(rng, width, height)
		encoded := rle.Encode(grid)
		decoded := decode(t, encoded, width, height)
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				if decoded[y][x] != grid[y][x] {
					t.Fatalf("cell (%d,%d) mismatch after decoding %q", x, y, encoded)
				}
			}
		}
	}
}

func TestEncodeIsDeterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	grid := randomGrid(rng, 64, 48)
	first := rle.Encode(grid)
	second := rle.Encode(grid)
	if first != second {
		t.Fatalf("encoding differs between calls:\n%q\n%q", first, second)
	}
}

func TestEncodeDoesNotMutateGrid(t *testing.T) {
	grid := rle.ParseBoolGrid("bob", "bbb", "ooo")
	snapshot := rle.ParseBoolGrid("bob", "bbb", "ooo")
	_ = rle.Encode(grid)
	for y := range grid {
		for x := range grid[y] {
			if grid[y][x] != snapshot[y][x] {
				t.Fatalf("cell (%d,%d) changed during encoding", x, y)
			}
		}
	}
}

func randomGrid(rng *rand.Rand, width, height int) rle.BoolGrid {
	// Bias toward alive cells so fully alive rows show up regularly.
	grid := make(rle.BoolGrid, height)
	for y := range grid {
		row := make([]bool, width)
		for x := range row {
			row[x] = rng.Intn(5) != 0
		}
		grid[y] = row
	}
	return grid
}

// decode inflates encoded text back into cells. Rows with no runs are
// treated as fully alive, which is the format's reading of an empty row.
func decode(t *testing.T, encoded string, width, height int) [][]bool {
	t.Helper()
	if !strings.HasSuffix(encoded, "!") {
		t.Fatalf("missing terminator in %q", encoded)
	}
	body := strings.TrimSuffix(encoded, "!")

	var rows [][]bool
	var current []bool
	count := ""
	flushRow := func() {
		if len(current) == 0 {
			current = make([]bool, width)
			for i := range current {
				current[i] = true
			}
		}
		rows = append(rows, current)
		current = nil
	}
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c >= '0' && c <= '9' {
			count += string(c)
			continue
		}
		n := 1
		if count != "" {
			var err error
			n, err = strconv.Atoi(count)
			if err != nil {
				t.Fatalf("bad count %q in %q", count, encoded)
			}
			count = ""
		}
		switch c {
		case rle.SymbolAlive, rle.SymbolDead:
			for k := 0; k < n; k++ {
				current = append(current, c == rle.SymbolAlive)
			}
		case rle.SymbolSeparator:
			for k := 0; k < n; k++ {
				flushRow()
			}
		default:
			t.Fatalf("unexpected symbol %q in %q", c, encoded)
		}
	}
	flushRow()

	if len(rows) != height {
		t.Fatalf("decoded %d rows from %q, want %d", len(rows), encoded, height)
	}
	for y, row := range rows {
		if len(row) != width {
			t.Fatalf("row %d decoded to %d cells from %q, want %d", y, len(row), encoded, width)
		}
	}
	return rows
}
