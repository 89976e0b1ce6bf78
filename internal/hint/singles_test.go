package hint

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/nsudoku/internal/domain"
)

func TestHintFindsNakedSingle(t *testing.T) {
	// column 3 holds 1..8, so (8,3) can only take 9
	cells := make([]int, 81)
	for r := 0; r < 8; r++ {
		cells[r*9+3] = r + 1
	}
	b, err := domain.NewBoard(cells)
	require.NoError(t, err)

	h, found, err := NewSingles().Hint(context.Background(), b, domain.StrategySingles)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 9, h.Value)
	assert.Equal(t, []domain.CellCoord{{Row: 8, Col: 3}}, h.Cells)
	assert.Equal(t, domain.StrategySingles, h.Strategy)
}

func TestHintNoneOnEmptyBoard(t *testing.T) {
	b, err := domain.NewBoard(make([]int, 81))
	require.NoError(t, err)
	_, found, err := NewSingles().Hint(context.Background(), b, domain.StrategyXWing)
	require.NoError(t, err)
	assert.False(t, found)
}
