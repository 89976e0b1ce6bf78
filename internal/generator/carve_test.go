package generator

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/nsudoku/internal/domain"
	"svw.info/nsudoku/internal/solver"
)

func TestGenerateAllDifficulties(t *testing.T) {
	s := solver.NewBacktrackingSolver()
	g := NewUniqueGenerator(s)

	cases := []struct {
		name string
		diff domain.Difficulty
	}{
		{"easy", domain.Easy},
		{"medium", domain.Medium},
		{"hard", domain.Hard},
		{"expert", domain.Expert},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			seed := int64(12345)
			p, st, err := g.Generate(ctx, 9, seed, tc.diff)
			require.NoError(t, err)
			assert.Less(t, st.Duration, 2*time.Second)

			givens := 81 - p.Board.EmptyCount()
			// 17 is the known minimum for a unique 9×9 puzzle
			assert.GreaterOrEqual(t, givens, 17)
			assert.LessOrEqual(t, givens, 81)

			// every given is marked fixed, every hole is not
			for r := 0; r < 9; r++ {
				for c := 0; c < 9; c++ {
					assert.Equal(t, p.Board.Cells[r][c] != 0, p.Board.Fixed[r][c])
				}
			}

			unique, _, err := s.Unique(ctx, p.Board)
			require.NoError(t, err)
			assert.True(t, unique, "puzzle for %s is not unique", tc.name)
		})
	}
}

func TestGenerateDeterministicInSeed(t *testing.T) {
	s := solver.NewBacktrackingSolver()
	g := NewUniqueGenerator(s)
	ctx := context.Background()

	p1, _, err := g.Generate(ctx, 4, 42, domain.Easy)
	require.NoError(t, err)
	p2, _, err := g.Generate(ctx, 4, 42, domain.Easy)
	require.NoError(t, err)
	assert.True(t, p1.Board.Equal(p2.Board))
}

func TestGenerate4x4(t *testing.T) {
	s := solver.NewBacktrackingSolver()
	g := NewUniqueGenerator(s)

	p, _, err := g.Generate(context.Background(), 4, 7, domain.Medium)
	require.NoError(t, err)
	assert.Equal(t, 4, p.Board.Dimension)

	unique, _, err := s.Unique(context.Background(), p.Board)
	require.NoError(t, err)
	assert.True(t, unique)
}

func TestGenerateRejectsDegenerateDimensions(t *testing.T) {
	g := NewUniqueGenerator(solver.NewBacktrackingSolver())
	_, _, err := g.Generate(context.Background(), 3, 1, domain.Easy)
	require.Error(t, err)
}
