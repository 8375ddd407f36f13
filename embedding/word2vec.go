// Package embedding loads pre-trained word embeddings.
package embedding

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/pit2015/paraphrase/feature"
)

// LoadBinary reads a word2vec binary model and keeps the vectors of the words
// in vocabulary. A nil vocabulary keeps every word.
//
// The model starts with a "<count> <dim>" header line, followed by count
// entries of a space terminated word and dim little endian float32 values.
// Some models separate entries with a newline.
func LoadBinary(r io.Reader, vocabulary []string) (feature.VectorTable, error) {
	br := bufio.NewReaderSize(r, 1<<20)
	header, err := br.ReadString('\n')
	if err != nil {
		return feature.VectorTable{}, errors.Wrap(err, "could not read word2vec header")
	}
	var count, dim int
	if _, err := fmt.Sscanf(strings.TrimSpace(header), "%d %d", &count, &dim); err != nil {
		return feature.VectorTable{}, errors.Wrapf(err, "malformed word2vec header %q", header)
	}
	if count < 0 || dim <= 0 {
		return feature.VectorTable{}, fmt.Errorf("malformed word2vec header %q", header)
	}

	var keep map[string]bool
	if vocabulary != nil {
		keep = make(map[string]bool, len(vocabulary))
		for _, w := range vocabulary {
			keep[w] = true
		}
	}

	vectors := make(map[string][]float64)
	raw := make([]float32, dim)
	var word strings.Builder
	for i := 0; i < count; i++ {
		word.Reset()
		for {
			c, err := br.ReadByte()
			if err != nil {
				return feature.VectorTable{}, errors.Wrapf(err, "entry %d of %d", i+1, count)
			}
			if c == ' ' {
				break
			}
			if c != '\n' {
				word.WriteByte(c)
			}
		}
		if err := binary.Read(br, binary.LittleEndian, raw); err != nil {
			return feature.VectorTable{}, errors.Wrapf(err, "vector of %q", word.String())
		}
		w := word.String()
		if keep != nil && !keep[w] {
			continue
		}
		v := make([]float64, dim)
		for j, f := range raw {
			v[j] = float64(f)
		}
		vectors[w] = v
	}
	return feature.NewVectorTable(vectors)
}

// LoadBinaryFile reads the word2vec binary model at path.
func LoadBinaryFile(path string, vocabulary []string) (feature.VectorTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return feature.VectorTable{}, err
	}
	defer f.Close()
	return LoadBinary(f, vocabulary)
}
