package recommender

import (
	"path/filepath"
	"testing"

	"cinimagic-be/internal/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sixTitleIndex(t *testing.T) *Index {
	t.Helper()
	ix, err := NewIndex(&Artifact{
		Titles: []string{"A", "B", "C", "D", "E", "F"},
		Matrix: [][]float64{
			{1.0, 0.9, 0.9, 0.5, 0.3, 0.1},
			{0.9, 1.0, 0.4, 0.3, 0.2, 0.1},
			{0.9, 0.4, 1.0, 0.6, 0.5, 0.2},
			{0.5, 0.3, 0.6, 1.0, 0.8, 0.7},
			{0.3, 0.2, 0.5, 0.8, 1.0, 0.9},
			{0.1, 0.1, 0.2, 0.7, 0.9, 1.0},
		},
	})
	require.NoError(t, err)
	return ix
}

func TestRecommendRanksDescendingAndExcludesSelf(t *testing.T) {
	ix := sixTitleIndex(t)

	got, err := ix.Recommend("D", 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"E", "F", "C", "A", "B"}, got)
	assert.NotContains(t, got, "D")
}

func TestRecommendStableTieBreak(t *testing.T) {
	ix := sixTitleIndex(t)

	// B and C both score 0.9 against A; equal scores keep catalog order.
	got, err := ix.Recommend("A", 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C", "D", "E", "F"}, got)
}

func TestRecommendDeterministic(t *testing.T) {
	ix, err := NewIndex(&Artifact{
		Titles: []string{"A", "B", "C", "D"},
		Matrix: [][]float64{
			{1.0, 0.5, 0.5, 0.5},
			{0.5, 1.0, 0.5, 0.5},
			{0.5, 0.5, 1.0, 0.5},
			{0.5, 0.5, 0.5, 1.0},
		},
	})
	require.NoError(t, err)

	first, err := ix.Recommend("B", 3)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := ix.Recommend("B", 3)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
	// All-equal off-diagonal scores fall back to catalog order.
	assert.Equal(t, []string{"A", "C", "D"}, first)
}

func TestRecommendUnknownTitle(t *testing.T) {
	ix := sixTitleIndex(t)

	got, err := ix.Recommend("Zardoz", 5)
	assert.Nil(t, got)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestRecommendShortCatalog(t *testing.T) {
	ix, err := NewIndex(&Artifact{
		Titles: []string{"A", "B", "C"},
		Matrix: [][]float64{
			{1.0, 0.8, 0.6},
			{0.8, 1.0, 0.4},
			{0.6, 0.4, 1.0},
		},
	})
	require.NoError(t, err)

	got, err := ix.Recommend("A", 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C"}, got)
}

func TestRecommendExclusionIsPositional(t *testing.T) {
	// C's row ties A at the maximum. A has the lower index so it takes
	// rank 0 and gets dropped, leaking C itself into the slate. This
	// mirrors how the offline pipeline has always behaved.
	ix, err := NewIndex(&Artifact{
		Titles: []string{"A", "B", "C"},
		Matrix: [][]float64{
			{1.0, 0.2, 1.0},
			{0.2, 1.0, 0.3},
			{1.0, 0.3, 1.0},
		},
	})
	require.NoError(t, err)

	got, err := ix.Recommend("C", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "B"}, got)
}

func TestNewIndexRejectsBadArtifacts(t *testing.T) {
	tests := []struct {
		name     string
		artifact *Artifact
	}{
		{"empty catalog", &Artifact{}},
		{"row count mismatch", &Artifact{
			Titles: []string{"A", "B"},
			Matrix: [][]float64{{1.0, 0.5}},
		}},
		{"row length mismatch", &Artifact{
			Titles: []string{"A", "B"},
			Matrix: [][]float64{{1.0, 0.5}, {0.5}},
		}},
		{"duplicate title", &Artifact{
			Titles: []string{"A", "A"},
			Matrix: [][]float64{{1.0, 1.0}, {1.0, 1.0}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewIndex(tt.artifact)
			assert.Error(t, err)
		})
	}
}

func TestLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.gob")

	artifact := &Artifact{
		Titles: []string{"A", "B"},
		Matrix: [][]float64{{1.0, 0.7}, {0.7, 1.0}},
	}
	require.NoError(t, SaveArtifact(path, artifact))

	ix, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, ix.Titles())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.gob"))
	assert.True(t, apperrors.IsConfiguration(err))
}
