package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidInput reports a malformed flat cell sequence at construction:
// a length that is not a perfect square, a dimension that cannot be split
// into square blocks, or a value outside [0, dimension].
var ErrInvalidInput = errors.New("invalid board input")

// Board holds the current cell values and which cells are fixed givens.
// Dimension is the side length N. BlockSize is √N for N ≥ 4; boards with
// N ≤ 3 are treated as a single block covering the whole grid, so there
// BlockSize equals N.
type Board struct {
	Dimension int      `json:"dimension"`
	BlockSize int      `json:"blockSize"`
	Cells     [][]int  `json:"cells"`
	Fixed     [][]bool `json:"fixed,omitempty"`
}

// isqrt returns the integer square root of n, and whether n is a perfect
// square.
func isqrt(n int) (int, bool) {
	if n < 0 {
		return 0, false
	}
	r := 0
	for (r+1)*(r+1) <= n {
		r++
	}
	return r, r*r == n
}

// NewBoard builds a board from a flat row-major sequence of cell values,
// 0 meaning empty. The sequence length must be N² for a side length N that
// is either ≤ 3 or itself a perfect square, and every value must lie in
// [0, N]; anything else fails with ErrInvalidInput and no board is produced.
func NewBoard(numbers []int) (*Board, error) {
	dim, ok := isqrt(len(numbers))
	if !ok || dim == 0 {
		return nil, fmt.Errorf("%w: length %d is not a positive perfect square", ErrInvalidInput, len(numbers))
	}
	block := dim
	if dim >= 4 {
		b, ok := isqrt(dim)
		if !ok {
			return nil, fmt.Errorf("%w: dimension %d has no square block size", ErrInvalidInput, dim)
		}
		block = b
	}
	cells := make([][]int, dim)
	fixed := make([][]bool, dim)
	for r := 0; r < dim; r++ {
		cells[r] = make([]int, dim)
		fixed[r] = make([]bool, dim)
		for c := 0; c < dim; c++ {
			v := numbers[r*dim+c]
			if v < 0 || v > dim {
				return nil, fmt.Errorf("%w: value %d at cell (%d,%d) outside [0,%d]", ErrInvalidInput, v, r, c, dim)
			}
			cells[r][c] = v
			fixed[r][c] = v != 0
		}
	}
	return &Board{Dimension: dim, BlockSize: block, Cells: cells, Fixed: fixed}, nil
}

// NewEmptyBoard returns an all-empty board of the given dimension.
// The dimension must be valid in the NewBoard sense.
func NewEmptyBoard(dimension int) (*Board, error) {
	if dimension <= 0 {
		return nil, fmt.Errorf("%w: dimension %d", ErrInvalidInput, dimension)
	}
	return NewBoard(make([]int, dimension*dimension))
}

func (b *Board) checkCell(row, col int) {
	if row < 0 || row >= b.Dimension || col < 0 || col >= b.Dimension {
		panic(fmt.Sprintf("board: cell (%d,%d) out of range for dimension %d", row, col, b.Dimension))
	}
}

// Row returns a copy of the values in the given row.
// Out-of-range indices are a caller bug and panic.
func (b *Board) Row(row int) []int {
	b.checkCell(row, 0)
	out := make([]int, b.Dimension)
	copy(out, b.Cells[row])
	return out
}

// Column returns a copy of the values in the given column.
func (b *Board) Column(col int) []int {
	b.checkCell(0, col)
	out := make([]int, b.Dimension)
	for r := 0; r < b.Dimension; r++ {
		out[r] = b.Cells[r][col]
	}
	return out
}

// Block returns a copy of the BlockSize×BlockSize sub-grid at the given
// block coordinates. Boards with dimension ≤ 3 consist of a single block,
// so (0,0) is the only valid coordinate there and the whole grid comes back.
func (b *Board) Block(blockRow, blockCol int) [][]int {
	blocks := b.Dimension / b.BlockSize
	if blockRow < 0 || blockRow >= blocks || blockCol < 0 || blockCol >= blocks {
		panic(fmt.Sprintf("board: block (%d,%d) out of range for dimension %d", blockRow, blockCol, b.Dimension))
	}
	if b.Dimension <= 3 {
		out := make([][]int, b.Dimension)
		for r := 0; r < b.Dimension; r++ {
			out[r] = b.Row(r)
		}
		return out
	}
	out := make([][]int, b.BlockSize)
	for dr := 0; dr < b.BlockSize; dr++ {
		out[dr] = make([]int, b.BlockSize)
		for dc := 0; dc < b.BlockSize; dc++ {
			out[dr][dc] = b.Cells[blockRow*b.BlockSize+dr][blockCol*b.BlockSize+dc]
		}
	}
	return out
}

// IsValid reports whether number may be placed at (row, col): it must not
// already appear in the row, the column, or the block containing the cell.
// For dimension ≤ 3 the block is the whole grid. The candidate itself is
// not range-checked; callers only propose values in [1, Dimension].
func (b *Board) IsValid(row, col, number int) bool {
	for i := 0; i < b.Dimension; i++ {
		if b.Cells[row][i] == number || b.Cells[i][col] == number {
			return false
		}
	}
	if b.Dimension <= 3 {
		for r := 0; r < b.Dimension; r++ {
			for c := 0; c < b.Dimension; c++ {
				if b.Cells[r][c] == number {
					return false
				}
			}
		}
		return true
	}
	br, bc := (row/b.BlockSize)*b.BlockSize, (col/b.BlockSize)*b.BlockSize
	for dr := 0; dr < b.BlockSize; dr++ {
		for dc := 0; dc < b.BlockSize; dc++ {
			if b.Cells[br+dr][bc+dc] == number {
				return false
			}
		}
	}
	return true
}

// SetCell writes value at (row, col) without any legality check; a zero
// value clears the cell. Callers run IsValid first when they need to.
func (b *Board) SetCell(row, col, value int) {
	b.checkCell(row, col)
	b.Cells[row][col] = value
}

// FindEmpty returns the first empty cell in row-major order, or ok=false
// when the grid is fully filled.
func (b *Board) FindEmpty() (row, col int, ok bool) {
	for r := 0; r < b.Dimension; r++ {
		for c := 0; c < b.Dimension; c++ {
			if b.Cells[r][c] == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// IsFull reports whether no empty cell remains.
func (b *Board) IsFull() bool {
	_, _, ok := b.FindEmpty()
	return !ok
}

// EmptyCount returns the number of empty cells.
func (b *Board) EmptyCount() int {
	n := 0
	for r := 0; r < b.Dimension; r++ {
		for c := 0; c < b.Dimension; c++ {
			if b.Cells[r][c] == 0 {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy sharing no cell storage with the receiver.
func (b *Board) Clone() *Board {
	out := &Board{Dimension: b.Dimension, BlockSize: b.BlockSize}
	out.Cells = make([][]int, b.Dimension)
	for r := 0; r < b.Dimension; r++ {
		out.Cells[r] = make([]int, b.Dimension)
		copy(out.Cells[r], b.Cells[r])
	}
	if b.Fixed != nil {
		out.Fixed = make([][]bool, b.Dimension)
		for r := 0; r < b.Dimension; r++ {
			out.Fixed[r] = make([]bool, b.Dimension)
			copy(out.Fixed[r], b.Fixed[r])
		}
	}
	return out
}

// Flat returns the cells as a flat row-major sequence, the same shape
// NewBoard accepts.
func (b *Board) Flat() []int {
	out := make([]int, 0, b.Dimension*b.Dimension)
	for r := 0; r < b.Dimension; r++ {
		out = append(out, b.Cells[r]...)
	}
	return out
}

// Equal reports whether both boards have identical dimensions and cells.
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.Dimension != other.Dimension {
		return false
	}
	for r := 0; r < b.Dimension; r++ {
		for c := 0; c < b.Dimension; c++ {
			if b.Cells[r][c] != other.Cells[r][c] {
				return false
			}
		}
	}
	return true
}
