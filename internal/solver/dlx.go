package solver

import (
	"context"
	"fmt"
	"time"

	"svw.info/nsudoku/internal/domain"
	"svw.info/nsudoku/internal/ports"
)

// DLXSolver implements Algorithm X / Dancing Links for Sudoku of any
// dimension N with square blocks (B² = N).
// Exact-cover mapping for side length N (9×9 shown):
//
//	4·N² columns (constraints), N³ rows (r,c,v candidates).
//	Columns: 0..80    -> cell (r,c)
//	         81..161  -> row r has number v
//	         162..242 -> col c has number v
//	         243..323 -> block b has number v, b = (r/B)*B + (c/B)
//
// Boards with dimension ≤ 3 form a single block covering the whole grid,
// which is not an exact cover (each digit repeats across the block), so
// those fall back to the backtracking engine.
type DLXSolver struct{}

func NewDLXSolver() *DLXSolver { return &DLXSolver{} }

// node/column structures (classic dancing links)
type node struct {
	left, right, up, down *node
	col                   *column
	rowIdx                int // identifies the (r,c,v) row
}
type column struct {
	node
	size   int
	name   int
	active bool // whether this constraint column is currently uncovered
}

type dlx struct {
	size, block int
	nCells      int
	cols        []*column
	sol         []*node
	solLen      int
	nodes       int
	activeCnt   int // number of active (uncovered) columns
}

func newDLX(size, block int) *dlx {
	d := &dlx{size: size, block: block, nCells: size * size}
	nCols := 4 * d.nCells
	d.cols = make([]*column, nCols)
	d.sol = make([]*node, d.nCells)
	// build columns
	for i := 0; i < nCols; i++ {
		c := &column{name: i, active: true}
		c.up = &c.node
		c.down = &c.node
		d.cols[i] = c
	}
	d.activeCnt = nCols

	// build rows for all (r,c,v)
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			for v := 1; v <= size; v++ {
				row := d.rowIndex(r, c, v)
				cols := d.rowColumns(r, c, v)
				var first *node
				var prev *node
				for _, colID := range cols {
					col := d.cols[colID]
					n := &node{col: col, rowIdx: row}
					// vertical insert (at bottom)
					n.down = &col.node
					n.up = col.node.up
					col.node.up.down = n
					col.node.up = n
					col.size++
					// horizontal ring for the 4 nodes of the row
					if first == nil {
						first = n
						n.left = n
						n.right = n
					} else {
						// hook after prev
						n.left = prev
						n.right = prev.right
						prev.right.left = n
						prev.right = n
					}
					prev = n
				}
			}
		}
	}
	return d
}

func (d *dlx) rowIndex(r, c, v int) int {
	return (r*d.size+c)*d.size + (v - 1)
}

func (d *dlx) rowColumns(r, c, v int) [4]int {
	cell := r*d.size + c
	rowN := d.nCells + r*d.size + (v - 1)
	colN := 2*d.nCells + c*d.size + (v - 1)
	block := (r/d.block)*d.block + (c / d.block)
	blockN := 3*d.nCells + block*d.size + (v - 1)
	return [4]int{cell, rowN, colN, blockN}
}

func (d *dlx) decodeRow(row int) (r, c, v int) {
	cell := row / d.size
	v = (row % d.size) + 1
	r = cell / d.size
	c = cell % d.size
	return
}

// core operations
func cover(col *column, d *dlx) {
	if col.active {
		col.active = false
		d.activeCnt--
	}
	for i := col.down; i != &col.node; i = i.down {
		for j := i.right; j != i; j = j.right {
			j.down.up = j.up
			j.up.down = j.down
			j.col.size--
		}
	}
}

func uncover(col *column, d *dlx) {
	for i := col.up; i != &col.node; i = i.up {
		for j := i.left; j != i; j = j.left {
			j.col.size++
			j.down.up = j
			j.up.down = j
		}
	}
	if !col.active {
		col.active = true
		d.activeCnt++
	}
}

// choose the active column with the smallest size
func chooseColumn(d *dlx) *column {
	var best *column
	for _, c := range d.cols {
		if c.active {
			if best == nil || c.size < best.size {
				best = c
				if best.size == 0 {
					break
				}
			}
		}
	}
	return best
}

func (d *dlx) dlxSearch(ctx context.Context, k int, wantCount int, found *int) bool {
	// cancellation check
	select {
	case <-ctx.Done():
		return true // stop search
	default:
	}
	// all constraints covered → solution
	if d.activeCnt == 0 {
		d.solLen = k
		(*found)++
		return *found >= wantCount
	}

	c := chooseColumn(d)
	if c == nil || c.size == 0 {
		return false
	}
	cover(c, d)
	for r := c.down; r != &c.node; r = r.down {
		d.nodes++
		d.sol[k] = r
		// cover other columns for this row
		for j := r.right; j != r; j = j.right {
			if j.col.active {
				cover(j.col, d)
			}
		}
		if d.dlxSearch(ctx, k+1, wantCount, found) {
			// back out coverings done for this row before exiting
			for j := r.left; j != r; j = j.left {
				uncover(j.col, d)
			}
			uncover(c, d)
			return true
		}
		// backtrack: uncover in reverse order
		for j := r.left; j != r; j = j.left {
			uncover(j.col, d)
		}
	}
	uncover(c, d)
	return false
}

// applyGiven selects the (r,c,v) row at top level by covering its columns.
// A column that is already covered means an earlier given claimed the same
// cell, row-value, column-value or block-value slot, so no solution exists.
func (d *dlx) applyGiven(r, c, v int) error {
	cols := d.rowColumns(r, c, v)
	for _, id := range cols {
		if !d.cols[id].active {
			return fmt.Errorf("%w: conflicting given %d at (%d,%d)", ErrNoSolution, v, r, c)
		}
	}
	for _, id := range cols {
		cover(d.cols[id], d)
	}
	return nil
}

func (d *dlx) applyBoard(b *domain.Board) error {
	for r := 0; r < b.Dimension; r++ {
		for c := 0; c < b.Dimension; c++ {
			if v := b.Cells[r][c]; v > 0 {
				if v > b.Dimension {
					return fmt.Errorf("invalid given %d at (%d,%d)", v, r, c)
				}
				if err := d.applyGiven(r, c, v); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (s *DLXSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	if b.Dimension <= 3 {
		// degenerate single-block board, not an exact cover
		start := time.Now()
		out := b.Clone()
		nodes := 0
		if !search(ctx, out, &nodes) {
			st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
			if err := ctx.Err(); err != nil {
				return nil, st, err
			}
			return nil, st, ErrNoSolution
		}
		return out, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
	}

	start := time.Now()
	d := newDLX(b.Dimension, b.BlockSize)
	if err := d.applyBoard(b); err != nil {
		return nil, ports.Stats{}, err
	}
	found := 0
	_ = d.dlxSearch(ctx, 0, 1, &found)
	st := ports.Stats{Nodes: d.nodes, Duration: time.Since(start)}
	if err := ctx.Err(); err != nil {
		return nil, st, err
	}
	if found < 1 {
		return nil, st, ErrNoSolution
	}
	// reconstruct: givens from the input, searched cells from chosen rows
	out := b.Clone()
	for i := 0; i < d.solLen; i++ {
		r, c, v := d.decodeRow(d.sol[i].rowIdx)
		out.SetCell(r, c, v)
	}
	return out, st, nil
}

func (s *DLXSolver) Unique(ctx context.Context, b *domain.Board) (bool, ports.Stats, error) {
	if b.Dimension <= 3 {
		start := time.Now()
		count, nodes := countUpToTwo(ctx, b.Clone())
		st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
		if err := ctx.Err(); err != nil {
			return false, st, err
		}
		return count == 1, st, nil
	}

	start := time.Now()
	d := newDLX(b.Dimension, b.BlockSize)
	if err := d.applyBoard(b); err != nil {
		return false, ports.Stats{}, err
	}
	found := 0
	_ = d.dlxSearch(ctx, 0, 2, &found) // stop after finding 2 solutions
	st := ports.Stats{Nodes: d.nodes, Duration: time.Since(start)}
	if err := ctx.Err(); err != nil {
		return false, st, err
	}
	return found == 1, st, nil
}
