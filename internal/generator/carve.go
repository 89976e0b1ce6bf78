package generator

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"svw.info/nsudoku/internal/domain"
	"svw.info/nsudoku/internal/ports"
)

// fraction of cells kept as givens per difficulty; on a 9×9 board these
// come out at 40/34/28/24 givens.
func givensFraction(d domain.Difficulty) float64 {
	switch d {
	case domain.Easy:
		return 0.494
	case domain.Medium:
		return 0.420
	case domain.Hard:
		return 0.346
	default:
		return 0.296 // Expert
	}
}

func targetGivens(d domain.Difficulty, dimension int) int {
	return int(math.Round(givensFraction(d) * float64(dimension*dimension)))
}

// Generate creates a puzzle of the given dimension with a unique solution,
// deterministic in seed for a fixed solver. Dimensions ≤ 3 cannot hold a
// completed assignment (the whole grid is one block) and are rejected.
func (g *UniqueGenerator) Generate(ctx context.Context, dimension int, seed int64, diff domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	if dimension < 4 {
		return nil, ports.Stats{}, fmt.Errorf("cannot generate a %d×%d puzzle: single-block boards have no completed assignment", dimension, dimension)
	}
	full, err := domain.NewEmptyBoard(dimension)
	if err != nil {
		return nil, ports.Stats{}, err
	}
	rng := rand.New(rand.NewSource(seed))
	// 1) full random solution
	if !fillRandom(ctx, rng, full) {
		return nil, ports.Stats{}, context.Canceled
	}
	// 2) carve out clues while preserving uniqueness
	puz := full.Clone()
	for r := 0; r < dimension; r++ {
		for c := 0; c < dimension; c++ {
			puz.Fixed[r][c] = true
		}
	}
	cellCount := dimension * dimension
	positions := make([]int, cellCount)
	for i := range positions {
		positions[i] = i
	}
	rng.Shuffle(len(positions), func(i, j int) { positions[i], positions[j] = positions[j], positions[i] })

	target := targetGivens(diff, dimension)
	deadline := start.Add(900 * time.Millisecond)
	nodes := 0

	for _, pos := range positions {
		if time.Now().After(deadline) {
			break
		}
		if cellCount-puz.EmptyCount() <= target {
			break
		}
		r, c := pos/dimension, pos%dimension
		if puz.Cells[r][c] == 0 {
			continue
		}
		old := puz.Cells[r][c]
		puz.SetCell(r, c, 0)
		puz.Fixed[r][c] = false
		unique, st, _ := g.Solver.Unique(ctx, puz)
		nodes += st.Nodes
		if !unique {
			// revert
			puz.SetCell(r, c, old)
			puz.Fixed[r][c] = true
		}
	}

	p := &domain.Puzzle{
		Seed:       seed,
		Difficulty: diff,
		Board:      puz,
		CreatedAt:  time.Now().UnixNano(),
	}
	return p, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

// fillRandom solves an empty grid into a full valid solution by trying
// candidates in random order per cell.
func fillRandom(ctx context.Context, rng *rand.Rand, b *domain.Board) bool {
	n := b.Dimension
	var dfs func(r, c int) bool
	dfs = func(r, c int) bool {
		if ctx.Err() != nil {
			return false
		}
		if r == n {
			return true
		}
		nr, nc := r, c+1
		if nc == n {
			nr, nc = r+1, 0
		}
		// per-call candidate order; recursion must not disturb it
		nums := rng.Perm(n)
		for _, i := range nums {
			v := i + 1
			if b.IsValid(r, c, v) {
				b.SetCell(r, c, v)
				if dfs(nr, nc) {
					return true
				}
				b.SetCell(r, c, 0)
			}
		}
		return false
	}
	return dfs(0, 0)
}
