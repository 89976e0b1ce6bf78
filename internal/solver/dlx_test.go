package solver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/nsudoku/internal/domain"
)

func TestDLXMatchesBacktracking(t *testing.T) {
	ctx := context.Background()
	in := mustBoard(t, samplePuzzle)

	bt, _, err := NewBacktrackingSolver().Solve(ctx, in)
	require.NoError(t, err)
	dl, _, err := NewDLXSolver().Solve(ctx, in)
	require.NoError(t, err)

	// the sample has a unique solution, so both engines must agree
	assert.True(t, bt.Equal(dl))
	assert.True(t, dl.Equal(mustBoard(t, sampleSolution)))
}

func TestDLXKeepsGivens(t *testing.T) {
	in := mustBoard(t, samplePuzzle)
	out, _, err := NewDLXSolver().Solve(context.Background(), in)
	require.NoError(t, err)
	for r := 0; r < in.Dimension; r++ {
		for c := 0; c < in.Dimension; c++ {
			if in.Cells[r][c] != 0 {
				assert.Equal(t, in.Cells[r][c], out.Cells[r][c], "given at (%d,%d) changed", r, c)
			}
		}
	}
}

func TestDLXUnsolvable(t *testing.T) {
	cells := append([]int(nil), samplePuzzle...)
	cells[1] = 5
	_, _, err := NewDLXSolver().Solve(context.Background(), mustBoard(t, cells))
	require.ErrorIs(t, err, ErrNoSolution)
}

func TestDLX4x4(t *testing.T) {
	in := mustBoard(t, []int{
		1, 0, 0, 4,
		0, 4, 1, 0,
		0, 1, 4, 0,
		4, 0, 0, 1,
	})
	out, _, err := NewDLXSolver().Solve(context.Background(), in)
	require.NoError(t, err)
	assert.True(t, out.IsFull())
	bt, _, err := NewBacktrackingSolver().Solve(context.Background(), in)
	require.NoError(t, err)
	assert.True(t, out.Equal(bt))
}

func TestDLXDegenerateFallback(t *testing.T) {
	// dimension ≤ 3 boards are a single block and route to backtracking
	out, _, err := NewDLXSolver().Solve(context.Background(), mustBoard(t, []int{0}))
	require.NoError(t, err)
	assert.Equal(t, 1, out.Cells[0][0])

	_, _, err = NewDLXSolver().Solve(context.Background(), mustBoard(t, make([]int, 9)))
	require.ErrorIs(t, err, ErrNoSolution)
}

func TestDLXUnique(t *testing.T) {
	ctx := context.Background()
	s := NewDLXSolver()

	unique, _, err := s.Unique(ctx, mustBoard(t, samplePuzzle))
	require.NoError(t, err)
	assert.True(t, unique)

	unique, _, err = s.Unique(ctx, mustBoard(t, make([]int, 16)))
	require.NoError(t, err)
	assert.False(t, unique)
}

func TestDLX16x16(t *testing.T) {
	if testing.Short() {
		t.Skip("16×16 solve in short mode")
	}
	b, err := domain.NewEmptyBoard(16)
	require.NoError(t, err)
	out, _, err := NewDLXSolver().Solve(context.Background(), b)
	require.NoError(t, err)
	assert.True(t, out.IsFull())
}
