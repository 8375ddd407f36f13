package feature

import (
	"fmt"
)

// WordVectors is a read-only table of word embeddings. Implementations must be
// safe for concurrent reads so that one table can be shared by several
// extractors.
type WordVectors interface {
	// Vector returns the embedding of a word, if the table contains it.
	Vector(word string) ([]float64, bool)
	// Dim is the width of every embedding in the table.
	Dim() int
}

// VectorTable is a map-backed WordVectors.
type VectorTable struct {
	vectors map[string][]float64
	dim     int
}

// NewVectorTable creates a table from a word to vector mapping. Every vector
// must have the same width. The map is not copied and must not be modified
// afterwards.
func NewVectorTable(vectors map[string][]float64) (VectorTable, error) {
	dim := -1
	for word, v := range vectors {
		if dim == -1 {
			dim = len(v)
			continue
		}
		if len(v) != dim {
			return VectorTable{}, fmt.Errorf("vector for %q has width %d, expected %d", word, len(v), dim)
		}
	}
	if dim == -1 {
		dim = 0
	}
	return VectorTable{vectors: vectors, dim: dim}, nil
}

// EmptyVectorTable is a table with no words.
func EmptyVectorTable() VectorTable {
	return VectorTable{vectors: map[string][]float64{}}
}

func (t VectorTable) Vector(word string) ([]float64, bool) {
	v, ok := t.vectors[word]
	return v, ok
}

func (t VectorTable) Dim() int {
	return t.dim
}

// Len is the number of words in the table.
func (t VectorTable) Len() int {
	return len(t.vectors)
}
