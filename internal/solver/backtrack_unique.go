package solver

import (
	"context"
	"time"

	"svw.info/nsudoku/internal/domain"
	"svw.info/nsudoku/internal/ports"
)

// countUpToTwo counts completed assignments of grid, stopping at 2.
// The grid is mutated during the count and restored before returning.
func countUpToTwo(ctx context.Context, grid *domain.Board) (count, nodes int) {
	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil || count >= 2 {
			return true // stop early
		}
		r, c, ok := grid.FindEmpty()
		if !ok {
			count++
			return count >= 2
		}
		for v := 1; v <= grid.Dimension; v++ {
			nodes++
			if grid.IsValid(r, c, v) {
				grid.SetCell(r, c, v)
				if dfs() {
					grid.SetCell(r, c, 0)
					return true
				}
				grid.SetCell(r, c, 0)
			}
		}
		return false
	}
	_ = dfs()
	return count, nodes
}

// Unique counts solutions up to 2 and reports whether exactly one exists.
// Plain row-major cell order; the MRV heuristic is not needed for the
// counting pass.
func (s *BacktrackingSolver) Unique(ctx context.Context, b *domain.Board) (bool, ports.Stats, error) {
	start := time.Now()
	count, nodes := countUpToTwo(ctx, b.Clone())
	if err := ctx.Err(); err != nil {
		return false, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
	}
	return count == 1, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
