package recommender

import (
	"fmt"
	"sort"

	"cinimagic-be/internal/pkg/apperrors"
)

// DefaultK is how many titles a recommendation returns unless the caller
// asks for fewer.
const DefaultK = 5

// Index answers top-K similarity queries over a fixed catalog. It is built
// once at startup and read-only afterwards, so it is shared across sessions
// without locks.
type Index struct {
	titles  []string
	byTitle map[string]int
	matrix  [][]float64
}

func NewIndex(a *Artifact) (*Index, error) {
	if len(a.Titles) == 0 {
		return nil, fmt.Errorf("artifact has an empty catalog")
	}
	if len(a.Matrix) != len(a.Titles) {
		return nil, fmt.Errorf("matrix has %d rows for %d titles", len(a.Matrix), len(a.Titles))
	}
	byTitle := make(map[string]int, len(a.Titles))
	for i, title := range a.Titles {
		if _, dup := byTitle[title]; dup {
			return nil, fmt.Errorf("duplicate title %q in catalog", title)
		}
		byTitle[title] = i
	}
	for i, row := range a.Matrix {
		if len(row) != len(a.Titles) {
			return nil, fmt.Errorf("matrix row %d has %d entries for %d titles", i, len(row), len(a.Titles))
		}
	}
	return &Index{titles: a.Titles, byTitle: byTitle, matrix: a.Matrix}, nil
}

// Load reads the artifact and builds the index. Any failure is a
// ConfigurationError: the recommendation feature stays down, the rest of
// the system keeps running.
func Load(path string) (*Index, error) {
	a, err := LoadArtifact(path)
	if err != nil {
		return nil, &apperrors.ConfigurationError{Component: "recommender", Err: err}
	}
	ix, err := NewIndex(a)
	if err != nil {
		return nil, &apperrors.ConfigurationError{Component: "recommender", Err: err}
	}
	return ix, nil
}

// Titles returns the catalog in its original order.
func (ix *Index) Titles() []string {
	out := make([]string, len(ix.titles))
	copy(out, ix.titles)
	return out
}

// Recommend returns up to k titles most similar to the given one, best
// first. The title must match a catalog entry exactly; otherwise a
// NotFoundError is returned and nothing else happens.
//
// Ranking is a stable descending sort of the title's matrix row, so equal
// scores keep catalog order. The top-ranked entry is dropped positionally:
// with self-similarity maximal that entry is the queried title itself.
func (ix *Index) Recommend(title string, k int) ([]string, error) {
	idx, ok := ix.byTitle[title]
	if !ok {
		return nil, &apperrors.NotFoundError{Resource: "movie", Key: title}
	}
	if k <= 0 {
		k = DefaultK
	}

	row := ix.matrix[idx]
	type scored struct {
		index int
		score float64
	}
	ranked := make([]scored, len(row))
	for i, score := range row {
		ranked[i] = scored{index: i, score: score}
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].score > ranked[b].score
	})

	// Drop rank 0 (the queried title) and take the next k.
	ranked = ranked[1:]
	if k > len(ranked) {
		k = len(ranked)
	}

	out := make([]string, 0, k)
	for _, r := range ranked[:k] {
		out = append(out, ix.titles[r.index])
	}
	return out, nil
}
