package recommender

import (
	"encoding/gob"
	"fmt"
	"os"
)

// Artifact is the precomputed catalog + similarity blob produced offline
// (see cmd/seed for a demo generator). Titles[i] corresponds to row i of
// Matrix; Matrix is square with self-similarity maximal on the diagonal.
type Artifact struct {
	Titles []string
	Matrix [][]float64
}

func LoadArtifact(path string) (*Artifact, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open artifact: %w", err)
	}
	defer f.Close()

	var a Artifact
	if err := gob.NewDecoder(f).Decode(&a); err != nil {
		return nil, fmt.Errorf("decode artifact: %w", err)
	}
	return &a, nil
}

func SaveArtifact(path string, a *Artifact) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create artifact: %w", err)
	}
	defer f.Close()

	if err := gob.NewEncoder(f).Encode(a); err != nil {
		return fmt.Errorf("encode artifact: %w", err)
	}
	return nil
}
