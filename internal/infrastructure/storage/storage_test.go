package storage

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/nsudoku/internal/domain"
	"svw.info/nsudoku/internal/ports"
)

func testPuzzle(t *testing.T, id string) *domain.Puzzle {
	t.Helper()
	b, err := domain.NewBoard([]int{
		1, 0, 0, 4,
		0, 4, 1, 0,
		0, 1, 4, 0,
		4, 0, 0, 1,
	})
	require.NoError(t, err)
	return &domain.Puzzle{
		ID:         id,
		Seed:       99,
		Difficulty: domain.Hard,
		Board:      b,
		CreatedAt:  1700000000,
		Name:       "corner cross",
	}
}

func TestFSStore(t *testing.T) {
	runStorageTests(t, func(t *testing.T) ports.Storage {
		return NewFS(t.TempDir())
	})
}

func TestSQLiteStore(t *testing.T) {
	runStorageTests(t, func(t *testing.T) ports.Storage {
		s, err := NewSQLite(":memory:")
		require.NoError(t, err)
		t.Cleanup(func() { _ = s.Close() })
		return s
	})
}

func runStorageTests(t *testing.T, newStore func(t *testing.T) ports.Storage) {
	ctx := context.Background()

	t.Run("SaveAndLoad", func(t *testing.T) {
		st := newStore(t)
		p := testPuzzle(t, "p1")
		require.NoError(t, st.Save(ctx, p))

		got, err := st.Load(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, p.ID, got.ID)
		assert.Equal(t, p.Name, got.Name)
		assert.Equal(t, p.Difficulty, got.Difficulty)
		assert.True(t, p.Board.Equal(got.Board))
		assert.Equal(t, p.Board.BlockSize, got.Board.BlockSize)
	})

	t.Run("LoadMissing", func(t *testing.T) {
		st := newStore(t)
		_, err := st.Load(ctx, "nope")
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("SaveRejectsMissingID", func(t *testing.T) {
		st := newStore(t)
		p := testPuzzle(t, "")
		assert.Error(t, st.Save(ctx, p))
	})

	t.Run("Overwrite", func(t *testing.T) {
		st := newStore(t)
		p := testPuzzle(t, "p2")
		require.NoError(t, st.Save(ctx, p))
		p.Name = "renamed"
		require.NoError(t, st.Save(ctx, p))

		got, err := st.Load(ctx, "p2")
		require.NoError(t, err)
		assert.Equal(t, "renamed", got.Name)
	})

	t.Run("List", func(t *testing.T) {
		st := newStore(t)
		require.NoError(t, st.Save(ctx, testPuzzle(t, "a")))
		b := testPuzzle(t, "b")
		b.Difficulty = domain.Easy
		require.NoError(t, st.Save(ctx, b))

		metas, err := st.List(ctx)
		require.NoError(t, err)
		require.Len(t, metas, 2)
		ids := []string{metas[0].ID, metas[1].ID}
		assert.ElementsMatch(t, []string{"a", "b"}, ids)
		for _, m := range metas {
			assert.Equal(t, 4, m.Dimension)
		}
	})
}
