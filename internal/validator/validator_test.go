package validator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/nsudoku/internal/domain"
)

func mustBoard(t *testing.T, cells []int) *domain.Board {
	t.Helper()
	b, err := domain.NewBoard(cells)
	require.NoError(t, err)
	return b
}

func TestValidateCleanBoard(t *testing.T) {
	b := mustBoard(t, []int{
		1, 2, 3, 4,
		3, 4, 1, 2,
		2, 1, 4, 3,
		4, 3, 2, 1,
	})
	ok, conf, err := New().Validate(context.Background(), b)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, conf)
}

func TestValidateRowConflict(t *testing.T) {
	cells := make([]int, 81)
	cells[0] = 5
	cells[3] = 5
	ok, conf, err := New().Validate(context.Background(), mustBoard(t, cells))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Contains(t, conf, domain.CellCoord{Row: 0, Col: 3})
}

func TestValidateColumnConflict(t *testing.T) {
	cells := make([]int, 81)
	cells[2] = 7      // (0,2)
	cells[7*9+2] = 7  // (7,2)
	ok, conf, err := New().Validate(context.Background(), mustBoard(t, cells))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Contains(t, conf, domain.CellCoord{Row: 7, Col: 2})
}

func TestValidateBlockConflict(t *testing.T) {
	// same block, different row and column
	cells := make([]int, 81)
	cells[0] = 9      // (0,0)
	cells[1*9+1] = 9  // (1,1)
	ok, conf, err := New().Validate(context.Background(), mustBoard(t, cells))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Contains(t, conf, domain.CellCoord{Row: 1, Col: 1})
}

func TestValidateDegenerateWholeGridBlock(t *testing.T) {
	// (0,0) and (1,1) share no row or column; on a 3×3 board the whole
	// grid is one block, so the repeat is still a conflict
	b := mustBoard(t, []int{
		2, 0, 0,
		0, 2, 0,
		0, 0, 0,
	})
	ok, conf, err := New().Validate(context.Background(), b)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Contains(t, conf, domain.CellCoord{Row: 1, Col: 1})
}

func TestValidateIgnoresEmptyCells(t *testing.T) {
	ok, conf, err := New().Validate(context.Background(), mustBoard(t, make([]int, 81)))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, conf)
}
