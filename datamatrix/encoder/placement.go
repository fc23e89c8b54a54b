package encoder

import (
	"fmt"

	"github.com/ericlevine/ecc200/bitutil"
)

// Position is a module in the mapping matrix.
type Position struct {
	Row, Col int
}

// CodewordLayout lists the modules of one codeword, most significant bit first.
type CodewordLayout [8]Position

// placement walks the ECC200 module placement order (ISO/IEC 16022 Annex F)
// over a mapping matrix of numRows x numCols, the symbol with its finder and
// timing patterns removed.
type placement struct {
	numRows int
	numCols int
	visited []bool
	layout  []CodewordLayout
}

// Layout returns the module positions of every codeword placed in a
// rows x cols mapping matrix, in placement order. It is shared by the
// encoder and the decoder.
func Layout(rows, cols int) ([]CodewordLayout, error) {
	if rows < 6 || cols < 6 {
		return nil, fmt.Errorf("%w: mapping matrix %dx%d too small", ErrInvariant, rows, cols)
	}
	p := &placement{
		numRows: rows,
		numCols: cols,
		visited: make([]bool, rows*cols),
	}
	if err := p.run(); err != nil {
		return nil, err
	}
	return p.layout, nil
}

func (p *placement) run() error {
	row := 4
	col := 0

	for {
		if row == p.numRows && col == 0 {
			p.corner1()
		}
		if row == p.numRows-2 && col == 0 && p.numCols%4 != 0 {
			p.corner2()
		}
		if row == p.numRows-2 && col == 0 && p.numCols%8 == 4 {
			p.corner3()
		}
		if row == p.numRows+4 && col == 2 && p.numCols%8 == 0 {
			p.corner4()
		}

		// up and to the right
		for {
			if row < p.numRows && col >= 0 && !p.isVisited(row, col) {
				p.utah(row, col)
			}
			row -= 2
			col += 2
			if row < 0 || col >= p.numCols {
				break
			}
		}
		row++
		col += 3

		// down and to the left
		for {
			if row >= 0 && col < p.numCols && !p.isVisited(row, col) {
				p.utah(row, col)
			}
			row += 2
			col -= 2
			if row >= p.numRows || col < 0 {
				break
			}
		}
		row += 3
		col++

		if row >= p.numRows && col >= p.numCols {
			break
		}
	}

	// every module belongs to at most one codeword
	seen := make([]bool, len(p.visited))
	for _, cw := range p.layout {
		for _, pos := range cw {
			i := pos.Row*p.numCols + pos.Col
			if seen[i] {
				return fmt.Errorf("%w: module (%d,%d) placed twice", ErrInvariant, pos.Row, pos.Col)
			}
			seen[i] = true
		}
	}
	return nil
}

func (p *placement) isVisited(row, col int) bool {
	return p.visited[row*p.numCols+col]
}

// module resolves a nominal position, wrapping coordinates that fall outside
// the matrix.
func (p *placement) module(row, col int) Position {
	if row < 0 {
		row += p.numRows
		col += 4 - ((p.numRows + 4) % 8)
	}
	if col < 0 {
		col += p.numCols
		row += 4 - ((p.numCols + 4) % 8)
	}
	p.visited[row*p.numCols+col] = true
	return Position{Row: row, Col: col}
}

func (p *placement) add(positions [8][2]int) {
	var cw CodewordLayout
	for i, rc := range positions {
		cw[i] = p.module(rc[0], rc[1])
	}
	p.layout = append(p.layout, cw)
}

// utah places the standard L-shaped codeword whose last bit is at (row, col).
func (p *placement) utah(row, col int) {
	p.add([8][2]int{
		{row - 2, col - 2}, {row - 2, col - 1},
		{row - 1, col - 2}, {row - 1, col - 1}, {row - 1, col},
		{row, col - 2}, {row, col - 1}, {row, col},
	})
}

func (p *placement) corner1() {
	r, c := p.numRows, p.numCols
	p.add([8][2]int{
		{r - 1, 0}, {r - 1, 1}, {r - 1, 2},
		{0, c - 2}, {0, c - 1}, {1, c - 1}, {2, c - 1}, {3, c - 1},
	})
}

func (p *placement) corner2() {
	r, c := p.numRows, p.numCols
	p.add([8][2]int{
		{r - 3, 0}, {r - 2, 0}, {r - 1, 0},
		{0, c - 4}, {0, c - 3}, {0, c - 2}, {0, c - 1}, {1, c - 1},
	})
}

func (p *placement) corner3() {
	r, c := p.numRows, p.numCols
	p.add([8][2]int{
		{r - 3, 0}, {r - 2, 0}, {r - 1, 0},
		{0, c - 2}, {0, c - 1}, {1, c - 1}, {2, c - 1}, {3, c - 1},
	})
}

func (p *placement) corner4() {
	r, c := p.numRows, p.numCols
	p.add([8][2]int{
		{r - 1, 0}, {r - 1, c - 1},
		{0, c - 3}, {0, c - 2}, {0, c - 1},
		{1, c - 3}, {1, c - 2}, {1, c - 1},
	})
}

// Place writes codewords into a rows x cols mapping matrix. Modules no
// codeword reaches get the fixed pattern with the bottom-right module and its
// diagonal neighbour dark.
func Place(codewords []byte, rows, cols int) (*bitutil.BitMatrix, error) {
	layout, err := Layout(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(layout) != len(codewords) {
		return nil, fmt.Errorf("%w: %dx%d holds %d codewords, got %d",
			ErrInvariant, rows, cols, len(layout), len(codewords))
	}

	m := bitutil.NewBitMatrixWithSize(cols, rows)
	written := make([]bool, rows*cols)
	for i, cw := range layout {
		for bit, pos := range cw {
			written[pos.Row*cols+pos.Col] = true
			if codewords[i]&(0x80>>uint(bit)) != 0 {
				m.Set(pos.Col, pos.Row)
			}
		}
	}
	if !written[rows*cols-1] {
		m.Set(cols-1, rows-1)
		m.Set(cols-2, rows-2)
	}
	return m, nil
}
