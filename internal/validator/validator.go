package validator

import (
	"context"

	"svw.info/nsudoku/internal/domain"
)

type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

// Validate scans every row, column and block once, reporting each cell
// where a value repeats inside its unit. Dimension ≤ 3 boards are a single
// block covering the whole grid.
func (v *FastValidator) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	n := b.Dimension
	conf := make([]domain.CellCoord, 0, 8)
	seen := make([]bool, n+1)

	reset := func() {
		for i := range seen {
			seen[i] = false
		}
	}
	mark := func(r, c int) {
		val := b.Cells[r][c]
		if val == 0 {
			return
		}
		if seen[val] {
			conf = append(conf, domain.CellCoord{Row: r, Col: c})
			return
		}
		seen[val] = true
	}

	// rows
	for r := 0; r < n; r++ {
		reset()
		for c := 0; c < n; c++ {
			mark(r, c)
		}
	}
	// cols
	for c := 0; c < n; c++ {
		reset()
		for r := 0; r < n; r++ {
			mark(r, c)
		}
	}
	// blocks
	if n <= 3 {
		reset()
		for r := 0; r < n; r++ {
			for c := 0; c < n; c++ {
				mark(r, c)
			}
		}
		return len(conf) == 0, conf, nil
	}
	bs := b.BlockSize
	for br := 0; br < bs; br++ {
		for bc := 0; bc < bs; bc++ {
			reset()
			for dr := 0; dr < bs; dr++ {
				for dc := 0; dc < bs; dc++ {
					mark(br*bs+dr, bc*bs+dc)
				}
			}
		}
	}
	return len(conf) == 0, conf, nil
}
