package solver

import (
	"context"
	"errors"

	"svw.info/nsudoku/internal/domain"
)

// ErrNoSolution reports that a board admits no completed assignment.
// It is the service-level wrapper for the search running out of
// candidates; the search itself signals this with a plain false.
var ErrNoSolution = errors.New("puzzle has no solution")

// BacktrackingSolver is a recursive solver with a most-constrained-cell
// heuristic.
type BacktrackingSolver struct{}

func NewBacktrackingSolver() *BacktrackingSolver { return &BacktrackingSolver{} }

// findBestCell picks the empty cell with the fewest legal candidates,
// scanning row-major; ties keep the earlier cell. A cell with exactly one
// candidate is returned immediately without finishing the scan. ok is
// false when no empty cell remains, which is the search's success signal.
func findBestCell(b *domain.Board) (int, int, bool) {
	bestRow, bestCol := -1, -1
	bestCount := b.Dimension + 1
	for r := 0; r < b.Dimension; r++ {
		for c := 0; c < b.Dimension; c++ {
			if b.Cells[r][c] != 0 {
				continue
			}
			count := 0
			for v := 1; v <= b.Dimension; v++ {
				if b.IsValid(r, c, v) {
					count++
				}
			}
			if count == 1 {
				return r, c, true
			}
			if count < bestCount {
				bestRow, bestCol, bestCount = r, c, count
			}
		}
	}
	return bestRow, bestCol, bestRow >= 0
}

// search runs the depth-first backtracking in place. On true the board is
// complete; on false every tentative assignment has been undone and the
// board is exactly as it was entered.
func search(ctx context.Context, b *domain.Board, nodes *int) bool {
	if ctx.Err() != nil {
		return false
	}
	r, c, ok := findBestCell(b)
	if !ok {
		return true
	}
	for v := 1; v <= b.Dimension; v++ {
		*nodes++
		if b.IsValid(r, c, v) {
			b.SetCell(r, c, v)
			if search(ctx, b, nodes) {
				return true
			}
			b.SetCell(r, c, 0)
		}
	}
	return false
}

// The implementations for Solve and Unique are in backtrack_solve.go and
// backtrack_unique.go, and use the helpers above.
